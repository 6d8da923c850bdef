package itinerary

import (
	"strings"

	"github.com/samber/lo"
)

const (
	// suggestionMinLength filters out short descriptions that read poorly
	// as standalone suggestions.
	suggestionMinLength = 20

	// suggestionLimit caps the suggestion list.
	suggestionLimit = 10
)

// Suggestions derives the "more suggestions" list from the flat raw
// description list produced by Parse. Descriptions are deduplicated
// case-insensitively preserving first occurrence, filtered to those longer
// than 20 characters, and capped at 10 entries.
func Suggestions(raw []string) []string {
	unique := lo.UniqBy(raw, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
	long := lo.Filter(unique, func(s string, _ int) bool {
		return len(s) > suggestionMinLength
	})
	return lo.Subset(long, 0, suggestionLimit)
}
