package handlers

import (
	"net/http"

	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

type bookList struct {
	Count int           `json:"count"`
	Books []models.Book `json:"books"`
}

type serviceInfo struct {
	Status    string   `json:"status"`
	Endpoints []string `json:"endpoints"`
}

type notFound struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// HandleBooks returns the full parsed catalogue
func (h *Handler) HandleBooks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	books, ok := h.loadBooks(w)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, bookList{Count: len(books), Books: books})
}

// HandleRoot serves the service banner on / and /health and a JSON 404 for
// every other unrouted path.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/", "/health":
		h.writeJSON(w, http.StatusOK, serviceInfo{
			Status:    "ok",
			Endpoints: []string{"/books.json", "/match?q=macbeth", "/search?q=macbeth"},
		})
	default:
		h.writeJSON(w, http.StatusNotFound, notFound{Status: "not_found", Path: r.URL.Path})
	}
}
