// Package pipeline orchestrates the fetch, enrich, and write stages that
// turn a Google Scholar profile into a bibliography file.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"scholarbib/internal/enrich"
	"scholarbib/internal/scholar"
)

// Fetcher retrieves author profiles and publication detail. The concrete
// implementation is the Scholar client; tests substitute a fake so the
// enrichment path runs without network access.
type Fetcher interface {
	FetchAuthor(ctx context.Context, userID string) (*scholar.Author, error)
	FetchDetail(ctx context.Context, s scholar.PublicationSummary) (*scholar.Publication, error)
}

// Serializer converts an enriched publication into its output text form.
type Serializer func(*scholar.Publication) (string, error)

// Options configures a pipeline run.
type Options struct {
	ScholarID  string
	OutputPath string
	Limit      int // Max publications to process; 0 means all

	Fetcher    Fetcher
	Serializer Serializer
	Enricher   *enrich.Enricher

	Stdout io.Writer // Defaults to os.Stdout
	Stderr io.Writer // Defaults to os.Stderr
}

// Report summarizes what a run did.
type Report struct {
	Found     int // Publications listed on the profile
	Processed int // Entries written
	Skipped   int // Publications dropped after a per-item error
	Wrote     bool
}

// Run executes one pipeline pass: fetch the author, sort the publications
// newest first, enrich and serialize each one, and write the bibliography.
//
// A failure while fetching or enriching a single publication drops that
// record and continues; author-fetch and output-write failures are
// returned to the caller.
func Run(ctx context.Context, opts Options) (*Report, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	if opts.Serializer == nil {
		opts.Serializer = scholar.SerializeBibTeX
	}
	if opts.Enricher == nil {
		opts.Enricher = enrich.New(enrich.DefaultTables())
	}

	fmt.Fprintf(stdout, "Fetching publications for Scholar ID: %s\n", opts.ScholarID)

	author, err := opts.Fetcher.FetchAuthor(ctx, opts.ScholarID)
	if err != nil {
		return nil, fmt.Errorf("fetching author data: %w", err)
	}

	report := &Report{Found: len(author.Publications)}
	if report.Found == 0 {
		// Leave any existing bibliography untouched.
		fmt.Fprintln(stdout, "No publications found.")
		return report, nil
	}

	fmt.Fprintf(stdout, "Found %d publications. Processing...\n", report.Found)

	summaries := author.Publications
	enrich.SortByYearDesc(summaries)
	if opts.Limit > 0 && len(summaries) > opts.Limit {
		summaries = summaries[:opts.Limit]
	}

	var entries []string
	for _, summary := range summaries {
		entry, err := processOne(ctx, opts, summary)
		if err != nil {
			fmt.Fprintf(stderr, "Error processing publication %q: %v\n", summary.Title, err)
			report.Skipped++
			continue
		}
		entries = append(entries, entry)
		report.Processed++
		fmt.Fprintf(stdout, "Processed: %s\n", summary.Title)
	}

	doc := strings.Join(entries, "\n\n")
	if err := os.WriteFile(opts.OutputPath, []byte(doc), 0644); err != nil {
		return report, fmt.Errorf("writing %s: %w", opts.OutputPath, err)
	}
	report.Wrote = true

	fmt.Fprintf(stdout, "Successfully updated %s with %d entries.\n", opts.OutputPath, report.Processed)
	return report, nil
}

// processOne fetches, enriches, and serializes a single publication. Any
// error drops the whole record; partially enriched records are never
// written.
func processOne(ctx context.Context, opts Options, summary scholar.PublicationSummary) (string, error) {
	pub, err := opts.Fetcher.FetchDetail(ctx, summary)
	if err != nil {
		return "", fmt.Errorf("fetching detail: %w", err)
	}
	if err := opts.Enricher.Enrich(pub); err != nil {
		return "", fmt.Errorf("enriching: %w", err)
	}
	entry, err := opts.Serializer(pub)
	if err != nil {
		return "", fmt.Errorf("serializing: %w", err)
	}
	return entry, nil
}
