package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

const (
	headingMarker  = "###"
	defaultContext = "General"
)

var (
	formToken   = regexp.MustCompile(`FORM\s*([1-6])`)
	pastPapers  = regexp.MustCompile(`(?i)past papers`)
	parenSuffix = regexp.MustCompile(`\s*\([^)]*\)`)
)

// entryPattern is one recognized line shape. Patterns are tried in order and
// the first regexp hit wins, even if its captures turn out empty.
type entryPattern struct {
	re *regexp.Regexp
	// strip trailing dash/space characters from the captured name
	strip bool
}

var entryPatterns = []entryPattern{
	// - **Name** <link>
	{re: regexp.MustCompile(`^- \*\*(.+?)\*\*\s*<(.+?)>\s*$`), strip: true},
	// - Name – <link>
	{re: regexp.MustCompile(`^- (.+?)\s*[–-]\s*<(.+?)>\s*$`)},
}

// headingContext is the running section state threaded through the line scan
type headingContext struct {
	sectionTitle string
	form         string
	subject      string
}

// Parse converts the raw book links document into an ordered catalogue.
// Heading lines (### ...) update the section context; entry lines produce
// books under that context. Malformed lines are skipped silently, so partial
// or irregular documents still yield whatever can be parsed.
func Parse(text string) []models.Book {
	ctx := headingContext{
		sectionTitle: defaultContext,
		form:         defaultContext,
		subject:      defaultContext,
	}

	var books []models.Book
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, headingMarker) {
			title := cleanTitle(strings.ReplaceAll(line, headingMarker, ""))
			ctx = headingContext{
				sectionTitle: title,
				form:         deriveForm(title),
				subject:      deriveSectionSubject(title),
			}
			continue
		}
		name, link, ok := matchEntry(line)
		if !ok {
			continue
		}
		books = append(books, models.Book{
			Name:     name,
			Form:     ctx.form,
			Subject:  deriveSubject(name, ctx.subject),
			Category: ctx.sectionTitle,
			Link:     link,
		})
	}
	return books
}

// matchEntry tries the ordered line patterns and returns the captured name
// and link. A pattern hit with an empty capture skips the line rather than
// falling through to the next pattern.
func matchEntry(line string) (name, link string, ok bool) {
	for _, pattern := range entryPatterns {
		m := pattern.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name = strings.TrimSpace(m[1])
		if pattern.strip {
			name = strings.TrimSpace(strings.TrimRight(name, "–- "))
		}
		link = strings.TrimSpace(m[2])
		if name == "" || link == "" {
			return "", "", false
		}
		return name, link, true
	}
	return "", "", false
}

// deriveForm classifies a section heading into a grade-level form
func deriveForm(title string) string {
	upper := strings.ToUpper(title)
	if m := formToken.FindStringSubmatch(upper); m != nil {
		return "Form " + m[1]
	}
	if strings.Contains(upper, "PAST PAPERS") {
		return "Past Papers"
	}
	return defaultContext
}

// deriveSectionSubject derives the subject label a heading implies: past
// paper sections keep their remaining title, generic book sections carry no
// subject of their own, and anything else is the title itself.
func deriveSectionSubject(title string) string {
	upper := strings.ToUpper(title)
	switch {
	case strings.Contains(upper, "PAST PAPERS"):
		subject := titleCase(strings.TrimSpace(pastPapers.ReplaceAllString(title, "")))
		if subject == "" {
			return "Past Papers"
		}
		return subject
	case strings.Contains(upper, "BOOKS"):
		return defaultContext
	default:
		if t := titleCase(title); t != "" {
			return t
		}
		return defaultContext
	}
}

// deriveSubject picks the subject for one entry: the section subject when the
// heading provided one, otherwise the entry name with any parenthesized
// suffix stripped.
func deriveSubject(name, sectionSubject string) string {
	if sectionSubject != "" && sectionSubject != defaultContext {
		return sectionSubject
	}
	base := strings.TrimSpace(parenSuffix.ReplaceAllString(name, ""))
	if base == "" {
		return name
	}
	return base
}

var foldSpaces = runes.Map(func(r rune) rune {
	if unicode.Is(unicode.Zs, r) {
		return ' '
	}
	return r
})

// cleanTitle folds non-breaking space variants to regular spaces and trims
func cleanTitle(title string) string {
	folded, _, err := transform.String(foldSpaces, title)
	if err != nil {
		folded = title
	}
	return strings.TrimSpace(folded)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
