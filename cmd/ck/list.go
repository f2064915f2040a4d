package main

import (
	"fmt"

	"citekit/internal/library"
	"github.com/spf13/cobra"
)

var listLimit int

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum results to return (0 = all)")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every publication with its citekey",
	Long: `List every publication in the library with its computed citekey,
newest first.

Publications that cannot produce a citekey (missing year, no citekey
base, neither DOI nor title) are skipped and counted, not fatal.

Examples:
  ck list
  ck list --limit 20 --human`,
	RunE: runList,
}

// ListResult is the response for the list command.
type ListResult struct {
	Citations []library.Entry `json:"citations"`
	Skipped   int             `json:"skipped"`
}

func runList(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	lib := mustOpenLibrary(cfg)
	defer lib.Close()

	entries, skipped, err := lib.List()
	if err != nil {
		exitWithError(ExitError, "listing citations: %v", err)
	}

	if listLimit > 0 && listLimit < len(entries) {
		entries = entries[:listLimit]
	}

	if humanOutput {
		if len(entries) == 0 {
			fmt.Println("No citations in library")
		} else {
			for _, e := range entries {
				fmt.Printf("  %-24s %s\n", e.Citekey, truncateString(e.Label, ListLabelMaxLen))
			}
		}
		if skipped > 0 {
			fmt.Printf("\n(%d skipped)\n", skipped)
		}
	} else {
		if entries == nil {
			entries = []library.Entry{}
		}
		outputJSON(ListResult{Citations: entries, Skipped: skipped})
	}

	return nil
}
