// Package main provides the scholarbib CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scholarbib",
	Short: "Generate a site bibliography from a Google Scholar profile",
	Long: `scholarbib regenerates an al-folio site's _bibliography/papers.bib
from the Google Scholar profile named in _data/socials.yml.

Each publication is fetched, enriched with DOIs, badge flags, and venue
abbreviations, and serialized as a BibTeX entry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env if present (e.g. SCHOLARBIB_USER_AGENT overrides)
	_ = godotenv.Load()

	rootCmd.Version = Version
}
