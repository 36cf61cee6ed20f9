package catalog

import (
	"strings"

	"github.com/threadlab/threadlab-backend-go/models"
)

// maxSuggestions caps the autocomplete dropdown.
const maxSuggestions = 8

// BuildSuggestions returns the deduplicated set of product names and styles
// in first-seen order, for autocomplete.
func BuildSuggestions(products []models.Product) []string {
	seen := make(map[string]bool)
	var suggestions []string
	add := func(s string) {
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			return
		}
		seen[key] = true
		suggestions = append(suggestions, s)
	}
	for _, p := range products {
		add(p.Name)
		add(p.Style)
	}
	return suggestions
}

// MatchSuggestions filters suggestions by case-insensitive substring match
// against the partial query, capped at maxSuggestions. An empty partial
// yields nothing; the UI only asks once the user has typed.
func MatchSuggestions(suggestions []string, partial string) []string {
	partial = strings.ToLower(strings.TrimSpace(partial))
	if partial == "" {
		return nil
	}
	var out []string
	for _, s := range suggestions {
		if strings.Contains(strings.ToLower(s), partial) {
			out = append(out, s)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}
