// Package cmd implements the CLI commands for sumistock using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sumistock",
	Short: "sumistock — scrape SumStock listings into Markdown data pages",
	Long: `sumistock is a single-pass batch scraper: it fetches SumStock search
result pages, extracts one property record per listing, and writes a
Markdown table per URL under <output_dir>/<prefecture>/<city>/<date>.md.

Usage:
  sumistock scrape <url> [url...] [flags]`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
