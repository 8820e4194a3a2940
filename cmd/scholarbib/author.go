package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scholarbib/internal/config"
	"scholarbib/internal/scholar"
)

var (
	authorConfigPath string
	authorTimeout    time.Duration
)

var authorCmd = &cobra.Command{
	Use:   "author [user-id]",
	Short: "Show the Scholar profile and its publication list",
	Long: `Fetch the author profile and list its publications without writing
anything. The user ID comes from the argument, or from the socials YAML
file when omitted.

Examples:
  scholarbib author
  scholarbib author Da_TlhIAAAAJ`,
	Args: cobra.MaximumNArgs(1),
	Run:  runAuthor,
}

func init() {
	authorCmd.Flags().StringVar(&authorConfigPath, "config", config.DefaultPath, "Path to the socials YAML file")
	authorCmd.Flags().DurationVar(&authorTimeout, "timeout", scholar.DefaultTimeout, "HTTP request timeout")
	rootCmd.AddCommand(authorCmd)
}

func runAuthor(cmd *cobra.Command, args []string) {
	var scholarID string
	if len(args) == 1 {
		scholarID = args[0]
	} else {
		id, err := config.LoadScholarUserID(authorConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(ExitConfigError)
		}
		scholarID = id
	}

	client := scholar.NewClient(clientOptions(authorTimeout)...)
	author, err := client.FetchAuthor(context.Background(), scholarID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching author data: %v\n", err)
		os.Exit(ExitError)
	}

	fmt.Printf("%s (%s)\n", author.Name, author.ID)
	if author.Affiliation != "" {
		fmt.Println(author.Affiliation)
	}
	fmt.Printf("%d publications\n\n", len(author.Publications))
	for _, pub := range author.Publications {
		year := pub.Year
		if year == "" {
			year = "????"
		}
		fmt.Printf("  %s  %s", year, pub.Title)
		if pub.CitedBy > 0 {
			fmt.Printf("  (cited by %d)", pub.CitedBy)
		}
		fmt.Println()
	}
}
