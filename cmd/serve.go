package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lehigh-university-libraries/booklinks/internal/catalog"
	"github.com/lehigh-university-libraries/booklinks/internal/handlers"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	var source string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the book lookup API server",
		Long: `Starts the booklinks HTTP API on the specified port.

The API answers fuzzy book name queries against the catalogue parsed from
the book links document. The document is re-read on every request.`,
		Example: `  # Start server on default port 8080
  booklinks serve

  # Start server on custom port with an explicit links document
  booklinks serve --port 3000 --source ./book_links.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			handler := handlers.New(catalog.SourcePath(source))

			// Set up routes
			mux := http.NewServeMux()
			mux.HandleFunc("/books.json", handler.HandleBooks)
			mux.HandleFunc("/match", handler.HandleMatch)
			mux.HandleFunc("/search", handler.HandleMatch)
			mux.HandleFunc("/", handler.HandleRoot)
			mux.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
				if _, err := w.Write([]byte("OK")); err != nil {
					slog.Error("Unable to write healthcheck", "err", err)
				}
			})

			addr := ":" + port
			server := &http.Server{
				Addr:    addr,
				Handler: mux,
			}

			// Start server in goroutine
			serverErr := make(chan error, 1)
			go func() {
				slog.Info("Book API listening", "addr", addr, "url", "http://localhost"+addr)
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
			}()

			// Wait for context cancellation (Ctrl+C) or server error
			select {
			case <-cmd.Context().Done():
				slog.Info("Shutting down server...")
				// Give server 5 seconds to shut down gracefully
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := server.Shutdown(shutdownCtx); err != nil {
					slog.Error("Server shutdown failed", "err", err)
					return err
				}
				slog.Info("Server stopped")
				return nil
			case err := <-serverErr:
				return err
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "8080", "Port to listen on")
	cmd.Flags().StringVarP(&source, "source", "s", "", "Path to the book links document (default $BOOK_LINKS_PATH or book_links.txt)")

	return cmd
}
