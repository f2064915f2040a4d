package main

import (
	"fmt"

	"citekit/internal/citekey"
	"citekit/internal/clipboard"
	"github.com/spf13/cobra"
)

var (
	keyBase  string
	keyYear  string
	keyDOI   string
	keyTitle string
	keyCopy  bool
)

func init() {
	keyCmd.Flags().StringVar(&keyBase, "base", "", "Citekey base (author surname prefix)")
	keyCmd.Flags().StringVar(&keyYear, "year", "", "4-digit publication year")
	keyCmd.Flags().StringVar(&keyDOI, "doi", "", "DOI (preferred hash source)")
	keyCmd.Flags().StringVar(&keyTitle, "title", "", "Canonical title (hash source when no DOI)")
	keyCmd.Flags().BoolVar(&keyCopy, "copy", false, "Copy the citekey to the clipboard")
	keyCmd.MarkFlagRequired("base")
	keyCmd.MarkFlagRequired("year")
	rootCmd.AddCommand(keyCmd)
}

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Compute a citekey from bibliographic fields",
	Long: `Compute the citekey for a publication from its fields.

The two-character hash suffix comes from the DOI when one is given,
otherwise from the title. The same fields always produce the same key.

Examples:
  ck key --base smith --year 2020 --doi 10.1234/xyz
  ck key --base wright --year 1931 --title "Evolution in Mendelian populations" --copy`,
	RunE: runKey,
}

// KeyResult is the response for the key command.
type KeyResult struct {
	Citekey string `json:"citekey"`
	Source  string `json:"source"` // "doi" or "title"
	Copied  bool   `json:"copied,omitempty"`
}

func runKey(cmd *cobra.Command, args []string) error {
	key, err := citekey.Make(keyBase, keyYear, keyDOI, keyTitle)
	if err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	source := "title"
	if keyDOI != "" {
		source = "doi"
	}

	copied := false
	if keyCopy {
		if err := clipboard.Copy(key); err != nil {
			exitWithError(ExitError, "copying to clipboard: %v", err)
		}
		copied = true
	}

	if humanOutput {
		fmt.Println(key)
		if copied {
			fmt.Println("(copied to clipboard)")
		}
	} else {
		outputJSON(KeyResult{Citekey: key, Source: source, Copied: copied})
	}

	return nil
}
