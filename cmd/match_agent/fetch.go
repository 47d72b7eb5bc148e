package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/fetch"
)

var fetchShowHTML bool

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a job posting URL and print its extracted text",
	Args:  cobra.ExactArgs(1),
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().BoolVar(&fetchShowHTML, "html", false, "Print raw HTML instead of extracted text")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	fetcher := fetch.NewFetcher(nil)

	posting, err := fetcher.JobPosting(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch posting: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Platform: %s\n", posting.Platform)
	if fetchShowHTML {
		fmt.Fprintln(cmd.OutOrStdout(), posting.HTML)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), posting.Text)
	return nil
}
