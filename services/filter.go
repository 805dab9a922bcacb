package services

import "strings"

// Out-of-scope terms. Checked before the travel keywords and before the
// short-input fallback, so a blocked term always wins.
var blockedKeywords = []string{
	"scholarship", "nsp", "ai", "machine learning",
	"coding", "programming", "politics", "bitcoin", "exam",
}

var travelKeywords = []string{
	"trip", "travel", "tour", "itinerary",
	"destination", "places", "visit",
	"flight", "train", "bus", "budget",
	"weather", "hotel", "stay", "food",
}

// Inputs of up to this many tokens pass the filter even without a travel
// keyword, so greetings like "hi there" are not rejected.
const maxBenignTokens = 3

// IsAllowedQuery reports whether free-text chat input is in-domain.
// Matching is case-insensitive substring over the whole input.
func IsAllowedQuery(input string) bool {
	text := strings.ToLower(strings.TrimSpace(input))

	for _, word := range blockedKeywords {
		if strings.Contains(text, word) {
			return false
		}
	}

	for _, word := range travelKeywords {
		if strings.Contains(text, word) {
			return true
		}
	}

	return len(strings.Fields(text)) <= maxBenignTokens
}
