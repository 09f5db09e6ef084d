package match

import (
	"strings"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

// Substring and token-overlap bonuses. Like the classification thresholds in
// resolve.go these are exact policy values, not tunables.
const (
	substringBonus     = 0.9
	minSubstringLen    = 3
	tokenOverlapBase   = 0.7
	tokenOverlapWeight = 0.3
)

// Score computes a similarity in [0,1] between a free-text query and one
// catalogue entry. Signals only ever raise the running score:
//
//  1. an exact normalized name match short-circuits at 1.0
//  2. sequence ratios against the name and against the combined
//     name/subject/form/category string set the baseline
//  3. a substring hit of 3+ characters lifts the score to at least 0.9
//  4. token overlap lifts it to at least 0.7 + 0.3*overlap
//
// The layering lets short informal queries (a single distinctive word) score
// well even when character-level similarity to the full title is low.
func Score(query string, book models.Book) float64 {
	normQuery := Normalize(query)
	if normQuery == "" {
		return 0.0
	}

	normName := Normalize(book.Name)
	normAll := Normalize(book.Name + " " + book.Subject + " " + book.Form + " " + book.Category)

	if normQuery == normName {
		return 1.0
	}

	score := sequenceRatio(normQuery, normName)
	if r := sequenceRatio(normQuery, normAll); r > score {
		score = r
	}

	if len(normQuery) >= minSubstringLen && strings.Contains(normName, normQuery) && score < substringBonus {
		score = substringBonus
	}

	queryTokens := tokenSet(normQuery)
	if len(queryTokens) > 0 {
		nameTokens := tokenSet(normName)
		matched := 0
		for token := range queryTokens {
			if nameTokens[token] {
				matched++
			}
		}
		overlap := float64(matched) / float64(len(queryTokens))
		if overlap > 0 {
			if s := tokenOverlapBase + tokenOverlapWeight*overlap; s > score {
				score = s
			}
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

// sequenceRatio returns 2*M/T where M is the length of the longest common
// subsequence of a and b and T is the combined length of both strings.
// Symmetric, range [0,1]. Inputs are normalized ASCII so the DP runs over
// bytes with a single-row table.
func sequenceRatio(a, b string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	prev := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev = curr
	}
	return 2.0 * float64(prev[len(b)]) / float64(len(a)+len(b))
}

func tokenSet(s string) map[string]bool {
	fields := strings.Fields(s)
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
