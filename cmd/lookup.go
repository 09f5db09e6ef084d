package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/booklinks/internal/catalog"
	"github.com/lehigh-university-libraries/booklinks/internal/match"
)

func newLookupCmd() *cobra.Command {
	var source string
	var format string
	var limit int

	cmd := &cobra.Command{
		Use:   "lookup <query>",
		Short: "Resolve a book name against the catalogue",
		Long: `Scores the query against every catalogue entry and prints the outcome:
a single match, disambiguation candidates, or best-effort suggestions when
nothing qualifies.`,
		Example: `  # Look up a title
  booklinks lookup macbeth

  # JSON output with more suggestions
  booklinks lookup "chemistry notes" --format json --limit 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			books, err := catalog.Load(catalog.SourcePath(source))
			if err != nil {
				return err
			}

			outcome := match.ResolveLimit(args[0], books, limit)

			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(outcome)
			case "yaml":
				data, err := yaml.Marshal(outcome)
				if err != nil {
					return fmt.Errorf("failed to marshal outcome: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			default:
				return fmt.Errorf("unsupported output format: %s (supported: yaml, json)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Path to the book links document (default $BOOK_LINKS_PATH or book_links.txt)")
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format (yaml or json)")
	cmd.Flags().IntVarP(&limit, "limit", "l", match.DefaultLimit, "Maximum number of ranked candidates")

	return cmd
}
