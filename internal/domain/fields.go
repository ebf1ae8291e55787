package domain

import "strings"

// FieldKey identifies one of the recognized optional free-form pattern fields
type FieldKey int

const (
	FieldWhenToUse FieldKey = iota
	FieldUse
	FieldUseCases
	FieldBenefits
	FieldRisks
	FieldNotes
	FieldTradeoffs
	FieldCosts
	FieldCaveats
)

var fieldNames = [...]string{
	FieldWhenToUse: "when_to_use",
	FieldUse:       "use",
	FieldUseCases:  "use_cases",
	FieldBenefits:  "benefits",
	FieldRisks:     "risks",
	FieldNotes:     "notes",
	FieldTradeoffs: "tradeoffs",
	FieldCosts:     "costs",
	FieldCaveats:   "caveats",
}

// FieldKeys returns every recognized field key in display order
func FieldKeys() []FieldKey {
	keys := make([]FieldKey, len(fieldNames))
	for i := range fieldNames {
		keys[i] = FieldKey(i)
	}
	return keys
}

// ParseFieldKey maps a snake_case key to its FieldKey
func ParseFieldKey(name string) (FieldKey, bool) {
	for i, n := range fieldNames {
		if n == name {
			return FieldKey(i), true
		}
	}
	return 0, false
}

func (k FieldKey) String() string {
	if k < 0 || int(k) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[k]
}

// Title returns the display title, e.g. "when_to_use" -> "When To Use"
func (k FieldKey) Title() string {
	return TitleCase(k.String())
}

// FieldShape tags whether a field holds free text or a list of entries
type FieldShape int

const (
	ShapeText FieldShape = iota
	ShapeList
)

func (s FieldShape) String() string {
	if s == ShapeList {
		return "list"
	}
	return "text"
}

// Field is an optional free-form annotation on a pattern
type Field struct {
	Key   FieldKey
	Shape FieldShape
	Text  string   // Set when Shape == ShapeText
	Items []string // Set when Shape == ShapeList
}

// TextField builds a text-shaped field
func TextField(key FieldKey, text string) Field {
	return Field{Key: key, Shape: ShapeText, Text: text}
}

// ListField builds a list-shaped field
func ListField(key FieldKey, items []string) Field {
	return Field{Key: key, Shape: ShapeList, Items: items}
}

// IsEmpty reports whether the field has nothing to display
func (f Field) IsEmpty() bool {
	if f.Shape == ShapeList {
		return len(f.Items) == 0
	}
	return strings.TrimSpace(f.Text) == ""
}

// TitleCase converts a snake_case key to space-separated Title Case
func TitleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
