package main

import (
	"fmt"

	"citekit/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open <citekey>",
	Short: "Open a citekey's PDF in the configured viewer",
	Long: `Resolve a citekey and open its PDF in the configured viewer.

Examples:
  ck open smith:2020bc`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

// OpenResult is the response for the open command.
type OpenResult struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

func runOpen(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	result := resolvePDF(cfg, args[0])

	opener := pdf.NewOpener(cfg.LibraryRoot, cfg.PDFReader)
	if err := opener.Open(result.Path); err != nil {
		exitWithError(ExitError, "opening PDF: %v", err)
	}

	if humanOutput {
		fmt.Printf("Opening: %s\n", result.RelativePath)
	} else {
		outputJSON(OpenResult{Status: "opened", Path: result.Path})
	}

	return nil
}
