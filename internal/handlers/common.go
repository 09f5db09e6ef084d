package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lehigh-university-libraries/booklinks/internal/catalog"
	"github.com/lehigh-university-libraries/booklinks/internal/models"
)

type Handler struct {
	sourcePath string
}

func New(sourcePath string) *Handler {
	return &Handler{sourcePath: sourcePath}
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}

// loadBooks rebuilds the catalogue from the source document for this request
func (h *Handler) loadBooks(w http.ResponseWriter) ([]models.Book, bool) {
	books, err := catalog.Load(h.sourcePath)
	if err != nil {
		slog.Error("Unable to load catalogue", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return nil, false
	}
	return books, true
}
