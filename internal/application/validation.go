package application

import (
	"fmt"
	"strings"

	"patternmap/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "patternID" -> "pattern ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"patternID": "pattern ID",
		"shortID":   "short ID",
		"layer":     "layer",
		"query":     "query",
		"output":    "output path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateLayers checks every key against the layers the dataset carries.
// Returns a ValidationError naming the first unknown key and the valid ones.
func ValidateLayers(data *domain.Dataset, keys []string) error {
	for _, k := range keys {
		if data.HasLayer(k) {
			continue
		}
		var valid []string
		for _, l := range data.ObservedLayers() {
			valid = append(valid, l.Key)
		}
		return &ValidationError{
			Field:   "layer",
			Message: fmt.Sprintf("unknown layer %q (expected one of: %s)", k, strings.Join(valid, ", ")),
		}
	}
	return nil
}

// SplitList splits a comma-separated flag value, dropping blanks
func SplitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
