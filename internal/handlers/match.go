package handlers

import (
	"net/http"
	"strings"

	"github.com/lehigh-university-libraries/booklinks/internal/match"
	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

// HandleMatch resolves a fuzzy name query against the catalogue. The query
// comes from ?q= (alias ?query=). Every failure mode short of a broken source
// document is a 200 with an outcome status; only an empty query is a 400.
func (h *Handler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		query = r.URL.Query().Get("query")
	}
	query = strings.TrimSpace(query)

	books, ok := h.loadBooks(w)
	if !ok {
		return
	}

	outcome := match.Resolve(query, books)
	status := http.StatusOK
	if outcome.Status == models.StatusNoQuery {
		status = http.StatusBadRequest
	}
	h.writeJSON(w, status, outcome)
}
