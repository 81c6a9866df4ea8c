package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "astgen",
	Short: "Extract inheritance-aware type schemas from definition files",
	Long: `astgen parses annotated definition files, expands the inherit_variants!
construct and exports a schema of all tagged type declarations for a
downstream code generator.

Quick start:
  astgen generate ast.astdl           # Write ast.json next to the tool
  astgen generate --format yaml *.astdl
  astgen generate --watch ast.astdl   # Regenerate on every save`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}
