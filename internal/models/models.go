package models

// Book represents one catalogue entry parsed from the book links document
type Book struct {
	Name     string `json:"name" yaml:"name" parquet:"name"`
	Form     string `json:"form" yaml:"form" parquet:"form"`
	Subject  string `json:"subject" yaml:"subject" parquet:"subject"`
	Category string `json:"category" yaml:"category" parquet:"category"`
	Link     string `json:"link" yaml:"link" parquet:"link"`
}

// ScoredBook pairs a Book with the confidence the matcher assigned to it.
// Produced only for output; never stored.
type ScoredBook struct {
	Book       `yaml:",inline"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Outcome statuses. Exactly one status is set per lookup and it determines
// which of Match or Matches carries the payload.
const (
	StatusNoQuery         = "no_query"
	StatusNoMatch         = "no_match"
	StatusMultipleMatches = "multiple_matches"
	StatusMatch           = "match"
)

// Outcome is the result of resolving a query against the catalogue
type Outcome struct {
	Status  string       `json:"status" yaml:"status"`
	Query   string       `json:"query" yaml:"query"`
	Matches []ScoredBook `json:"matches,omitempty" yaml:"matches,omitempty"`
	Match   *ScoredBook  `json:"match,omitempty" yaml:"match,omitempty"`
	Message string       `json:"message,omitempty" yaml:"message,omitempty"`
}

// NoQuery reports that the trimmed query was empty
func NoQuery(query string) Outcome {
	return Outcome{
		Status:  StatusNoQuery,
		Query:   query,
		Matches: []ScoredBook{},
		Message: "Provide a query using ?q=",
	}
}

// NoMatch reports that nothing scored above the match floor. Suggestions are
// the best-effort ranked candidates, possibly empty.
func NoMatch(query string, suggestions []ScoredBook) Outcome {
	return Outcome{Status: StatusNoMatch, Query: query, Matches: suggestions}
}

// MultipleMatches reports an ambiguous lookup with the close candidates
func MultipleMatches(query string, candidates []ScoredBook) Outcome {
	return Outcome{Status: StatusMultipleMatches, Query: query, Matches: candidates}
}

// Match reports a single confident answer
func Match(query string, best ScoredBook) Outcome {
	return Outcome{Status: StatusMatch, Query: query, Match: &best}
}
