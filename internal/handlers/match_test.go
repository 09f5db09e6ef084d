package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

const testDocument = `### FORM 4 BOOKS
- **Macbeth** <http://m>
- **The Pearl** <http://p>
### Biology Past Papers
- **Biology Paper 1 2019** <http://b>
`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "book_links.txt")
	if err := os.WriteFile(path, []byte(testDocument), 0644); err != nil {
		t.Fatal(err)
	}
	return New(path)
}

func decodeOutcome(t *testing.T, rec *httptest.ResponseRecorder) models.Outcome {
	t.Helper()
	var outcome models.Outcome
	if err := json.NewDecoder(rec.Body).Decode(&outcome); err != nil {
		t.Fatalf("Failed to decode outcome: %v", err)
	}
	return outcome
}

func TestHandleMatch(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMatch(rec, httptest.NewRequest(http.MethodGet, "/match?q=macbeth", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected CORS header, got %q", got)
	}

	outcome := decodeOutcome(t, rec)
	if outcome.Status != models.StatusMatch {
		t.Fatalf("Expected status %q, got %q", models.StatusMatch, outcome.Status)
	}
	if outcome.Match == nil || outcome.Match.Name != "Macbeth" {
		t.Errorf("Expected match Macbeth, got %+v", outcome.Match)
	}
	if outcome.Match.Confidence != 1.0 {
		t.Errorf("Expected confidence 1.0, got %v", outcome.Match.Confidence)
	}
}

func TestHandleMatchQueryAlias(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMatch(rec, httptest.NewRequest(http.MethodGet, "/search?query=macbeth", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if outcome := decodeOutcome(t, rec); outcome.Status != models.StatusMatch {
		t.Errorf("Expected status %q, got %q", models.StatusMatch, outcome.Status)
	}
}

func TestHandleMatchNoQuery(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMatch(rec, httptest.NewRequest(http.MethodGet, "/match", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rec.Code)
	}
	if outcome := decodeOutcome(t, rec); outcome.Status != models.StatusNoQuery {
		t.Errorf("Expected status %q, got %q", models.StatusNoQuery, outcome.Status)
	}
}

func TestHandleMatchNoMatch(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMatch(rec, httptest.NewRequest(http.MethodGet, "/match?q=zzzz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if outcome := decodeOutcome(t, rec); outcome.Status != models.StatusNoMatch {
		t.Errorf("Expected status %q, got %q", models.StatusNoMatch, outcome.Status)
	}
}

func TestHandleMatchMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleMatch(rec, httptest.NewRequest(http.MethodPost, "/match?q=macbeth", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleBooks(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleBooks(rec, httptest.NewRequest(http.MethodGet, "/books.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var list bookList
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode book list: %v", err)
	}
	if list.Count != 3 || len(list.Books) != 3 {
		t.Errorf("Expected 3 books, got count=%d len=%d", list.Count, len(list.Books))
	}
	if list.Books[2].Form != "Past Papers" {
		t.Errorf("Expected past papers form on third book, got %q", list.Books[2].Form)
	}
}

func TestHandleBooksMissingDocument(t *testing.T) {
	handler := New(filepath.Join(t.TempDir(), "missing.txt"))

	rec := httptest.NewRecorder()
	handler.HandleBooks(rec, httptest.NewRequest(http.MethodGet, "/books.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Missing document should still serve an empty catalogue, got %d", rec.Code)
	}

	var list bookList
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("Failed to decode book list: %v", err)
	}
	if list.Count != 0 {
		t.Errorf("Expected empty catalogue, got %d", list.Count)
	}
}

func TestHandleRoot(t *testing.T) {
	handler := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200 from /health, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.HandleRoot(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 from unknown path, got %d", rec.Code)
	}
	var nf notFound
	if err := json.NewDecoder(rec.Body).Decode(&nf); err != nil {
		t.Fatalf("Failed to decode 404 body: %v", err)
	}
	if nf.Status != "not_found" || nf.Path != "/nope" {
		t.Errorf("Unexpected 404 body: %+v", nf)
	}
}
