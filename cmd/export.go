package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/booklinks/internal/catalog"
	"github.com/lehigh-university-libraries/booklinks/internal/export"
)

func newExportCmd() *cobra.Command {
	var source string
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the parsed catalogue to a structured file",
		Long: `Parses the book links document and writes the catalogue entries to a
structured file. Useful for inspecting what the parser extracted or for
feeding the catalogue into other tooling.`,
		Example: `  # Export to parquet
  booklinks export --format parquet --output books.parquet

  # Export to JSONL from an explicit source document
  booklinks export --source ./book_links.txt --format jsonl --output books.jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := catalog.Load(catalog.SourcePath(source))
			if err != nil {
				return err
			}

			if err := export.Write(books, output, format); err != nil {
				return err
			}

			slog.Info("Catalogue exported", "books", len(books), "path", output, "format", format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Path to the book links document (default $BOOK_LINKS_PATH or book_links.txt)")
	cmd.Flags().StringVarP(&output, "output", "o", "books.parquet", "Output file path")
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatParquet, "Output format (parquet, jsonl, or yaml)")

	return cmd
}
