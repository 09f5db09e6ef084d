package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

// DefaultSourcePath is where the book links document lives unless overridden
// by a flag or the BOOK_LINKS_PATH environment variable.
const DefaultSourcePath = "book_links.txt"

// SourcePath resolves the links document path: explicit flag value first,
// then BOOK_LINKS_PATH, then the default.
func SourcePath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("BOOK_LINKS_PATH"); env != "" {
		return env
	}
	return DefaultSourcePath
}

// Load reads and parses the book links document. The document is re-read on
// every call so external edits take effect on the next lookup. A missing
// document is an empty catalogue, not an error.
func Load(path string) ([]models.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("Book links document missing, serving empty catalogue", "path", path)
			return []models.Book{}, nil
		}
		return nil, fmt.Errorf("failed to read book links document: %w", err)
	}

	books := Parse(string(data))
	slog.Debug("Parsed book links document", "path", path, "books", len(books))
	return books, nil
}
