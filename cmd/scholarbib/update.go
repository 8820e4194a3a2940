package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scholarbib/internal/config"
	"scholarbib/internal/enrich"
	"scholarbib/internal/pipeline"
	"scholarbib/internal/scholar"
)

var (
	updateConfigPath string
	updateOutputPath string
	updateTablesPath string
	updateLimit      int
	updateTimeout    time.Duration
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Fetch publications and rewrite the bibliography file",
	Long: `Fetch all publications for the configured Scholar profile, enrich
them, and rewrite the bibliography file.

A publication that fails to fetch or enrich is skipped with a message on
stderr; the run continues and writes the entries that succeeded. If the
profile has no publications the output file is left untouched.

Examples:
  scholarbib update
  scholarbib update --config _data/socials.yml --output _bibliography/papers.bib
  scholarbib update --limit 20 --timeout 60s`,
	Args: cobra.NoArgs,
	Run:  runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateConfigPath, "config", config.DefaultPath, "Path to the socials YAML file")
	updateCmd.Flags().StringVar(&updateOutputPath, "output", config.DefaultOutputPath, "Path to the bibliography file to write")
	updateCmd.Flags().StringVar(&updateTablesPath, "tables", "", "Optional YAML file with extra override tables")
	updateCmd.Flags().IntVar(&updateLimit, "limit", 0, "Maximum publications to process (0 = all)")
	updateCmd.Flags().DurationVar(&updateTimeout, "timeout", scholar.DefaultTimeout, "HTTP request timeout")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	scholarID, err := config.LoadScholarUserID(updateConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	tables := enrich.DefaultTables()
	if updateTablesPath != "" {
		tables, err = enrich.LoadTables(updateTablesPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitConfigError)
		}
	}

	client := scholar.NewClient(clientOptions(updateTimeout)...)

	report, err := pipeline.Run(context.Background(), pipeline.Options{
		ScholarID:  scholarID,
		OutputPath: updateOutputPath,
		Limit:      updateLimit,
		Fetcher:    client,
		Serializer: scholar.SerializeBibTeX,
		Enricher:   enrich.New(tables),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if report != nil && report.Found > 0 && !report.Wrote {
			os.Exit(ExitWriteError)
		}
		os.Exit(ExitError)
	}
}

// clientOptions builds Scholar client options from flags and environment.
func clientOptions(timeout time.Duration) []scholar.ClientOption {
	opts := []scholar.ClientOption{scholar.WithTimeout(timeout)}
	if ua := os.Getenv("SCHOLARBIB_USER_AGENT"); ua != "" {
		opts = append(opts, scholar.WithUserAgent(ua))
	}
	if base := os.Getenv("SCHOLARBIB_BASE_URL"); base != "" {
		opts = append(opts, scholar.WithBaseURL(base))
	}
	return opts
}
