package match

import (
	"math"
	"sort"
	"strings"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

// Classification policy. Clients depend on these exact values; do not retune.
const (
	// DefaultLimit caps how many ranked candidates an outcome carries.
	DefaultLimit = 5
	// matchFloor is the minimum top score that counts as any kind of match.
	matchFloor = 0.55
	// closenessBand groups candidates scoring within this distance of the top.
	closenessBand = 0.03
	// disambiguationCeiling: below it, several close candidates are ambiguous.
	disambiguationCeiling = 0.85
)

// Rank scores every book against the query and returns the top candidates
// sorted by descending confidence, ties broken by ascending name for
// determinism. Confidences are raw (unrounded) so classification can compare
// them exactly.
func Rank(query string, books []models.Book, limit int) []models.ScoredBook {
	if limit <= 0 {
		limit = DefaultLimit
	}
	scored := make([]models.ScoredBook, 0, len(books))
	for _, book := range books {
		scored = append(scored, models.ScoredBook{Book: book, Confidence: Score(query, book)})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Confidence != scored[j].Confidence {
			return scored[i].Confidence > scored[j].Confidence
		}
		return scored[i].Name < scored[j].Name
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// Resolve ranks the query against the catalogue and classifies the result:
// an empty trimmed query is no_query, a top score under the match floor is
// no_match with best-effort suggestions, several candidates within the
// closeness band of a sub-ceiling top score are multiple_matches, anything
// else is a single match. Emitted confidences are rounded to 3 decimals.
func Resolve(query string, books []models.Book) models.Outcome {
	return ResolveLimit(query, books, DefaultLimit)
}

// ResolveLimit is Resolve with an explicit candidate limit
func ResolveLimit(query string, books []models.Book, limit int) models.Outcome {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return models.NoQuery(trimmed)
	}

	ranked := Rank(trimmed, books, limit)
	if len(ranked) == 0 || ranked[0].Confidence < matchFloor {
		return models.NoMatch(trimmed, roundAll(ranked))
	}

	top := ranked[0].Confidence
	closeMatches := make([]models.ScoredBook, 0, len(ranked))
	for _, candidate := range ranked {
		if top-candidate.Confidence <= closenessBand {
			closeMatches = append(closeMatches, rounded(candidate))
		}
	}
	if len(closeMatches) > 1 && top < disambiguationCeiling {
		return models.MultipleMatches(trimmed, closeMatches)
	}

	return models.Match(trimmed, rounded(ranked[0]))
}

func rounded(sb models.ScoredBook) models.ScoredBook {
	sb.Confidence = math.Round(sb.Confidence*1000) / 1000
	return sb
}

func roundAll(scored []models.ScoredBook) []models.ScoredBook {
	out := make([]models.ScoredBook, 0, len(scored))
	for _, sb := range scored {
		out = append(out, rounded(sb))
	}
	return out
}
