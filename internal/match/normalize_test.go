package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases and strips punctuation",
			input:    "Macbeth!!",
			expected: "macbeth",
		},
		{
			name:     "collapses punctuation runs to one space",
			input:    "The  Great---Gatsby",
			expected: "the great gatsby",
		},
		{
			name:     "trims leading and trailing noise",
			input:    "  ...Chemistry Notes...  ",
			expected: "chemistry notes",
		},
		{
			name:     "keeps digits",
			input:    "Form 2 – Chemistry",
			expected: "form 2 chemistry",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "punctuation only",
			input:    "?!*&",
			expected: "",
		},
		{
			name:     "non-ascii letters become separators",
			input:    "naïve",
			expected: "na ve",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Macbeth!!",
		"  The   Great Gatsby  ",
		"FORM 2 BOOKS",
		"",
		"already normalized text",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
