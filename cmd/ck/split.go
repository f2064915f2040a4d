package main

import (
	"fmt"

	"citekit/internal/citekey"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split <citekey>",
	Short: "Split a citekey into base, year and hash",
	Long: `Split a citekey into its base, year and hash suffix.

Examples:
  ck split smith:2020bc`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

// SplitResult is the response for the split command.
type SplitResult struct {
	Base string `json:"base"`
	Year string `json:"year"`
	Hash string `json:"hash"`
}

func runSplit(cmd *cobra.Command, args []string) error {
	key, err := citekey.Split(args[0])
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	if humanOutput {
		fmt.Printf("base: %s\nyear: %s\nhash: %s\n", key.Base, key.Year, key.Hash)
	} else {
		outputJSON(SplitResult{Base: key.Base, Year: key.Year, Hash: key.Hash})
	}

	return nil
}
