package commands

import (
	"context"
	"sort"
	"strings"

	"patternmap/internal/application"
	"patternmap/internal/domain"
)

// SearchResult is a pattern passing the search filter, with a relevance score
type SearchResult struct {
	Pattern     *domain.Pattern
	MatchedText string // The field that scored best
	Score       int
}

// SearchCommand filters the catalog with the engine's search and ranks the matches
type SearchCommand struct {
	cat   *application.Catalog
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(cat *application.Catalog, query string) *SearchCommand {
	return &SearchCommand{
		cat:   cat,
		Query: query,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]SearchResult, error) {
	if err := application.ValidateRequired("query", c.Query); err != nil {
		return nil, err
	}

	e := c.cat.NewEngine()
	e.SetSearchQuery(c.Query)

	var matches []*domain.Pattern
	for i := range c.cat.Data.Patterns {
		if e.Node(i).Visible {
			matches = append(matches, &c.cat.Data.Patterns[i])
		}
	}
	return FuzzySort(matches, c.Query), nil
}

// FuzzyScore calculates a relevance score for how well target matches query
func FuzzyScore(target, query string) int {
	target = strings.ToLower(target)
	query = strings.ToLower(query)

	if len(query) == 0 {
		return 0
	}

	// Exact substring match ranks highest
	if strings.Contains(target, query) {
		score := 100
		if strings.HasPrefix(target, query) {
			score += 50
		}
		return score
	}

	// Fuzzy match: check if chars appear in order
	score := 0
	queryIdx := 0
	prevMatchIdx := -1

	for i := 0; i < len(target) && queryIdx < len(query); i++ {
		if target[i] == query[queryIdx] {
			if prevMatchIdx == i-1 {
				score += 10 // consecutive chars
			}
			if i == 0 {
				score += 15 // start of string
			}
			if i > 0 && (target[i-1] == ' ' || target[i-1] == '-' || target[i-1] == '_') {
				score += 10 // after separator
			}
			score += 1
			prevMatchIdx = i
			queryIdx++
		}
	}

	if queryIdx == len(query) {
		return score
	}
	return 0
}

// FuzzySort scores patterns against the query by their best matching field.
// Ties keep catalog order.
func FuzzySort(patterns []*domain.Pattern, query string) []SearchResult {
	scored := make([]SearchResult, 0, len(patterns))

	for _, p := range patterns {
		best := SearchResult{Pattern: p}
		candidates := append([]string{p.Label, p.ID, p.ShortID}, p.Aliases...)
		for _, text := range candidates {
			if s := FuzzyScore(text, query); s > best.Score {
				best.Score = s
				best.MatchedText = text
			}
		}
		if best.Score > 0 {
			scored = append(scored, best)
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}
