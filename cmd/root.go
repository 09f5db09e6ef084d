package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "booklinks",
		Short: "Fuzzy lookup over a book links catalogue",
		Long: `Booklinks indexes a catalogue of book references parsed from a loosely
structured text document and answers fuzzy name queries with a ranked match
or disambiguation candidates.

The catalogue is rebuilt from the source document on every lookup, so edits
to the document take effect immediately.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newLookupCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
