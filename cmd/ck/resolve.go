package main

import (
	"errors"
	"fmt"

	"citekit/internal/citekey"
	"citekit/internal/config"
	"citekit/internal/library"
	"citekit/internal/pdf"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <citekey>",
	Short: "Resolve a citekey to its PDF path",
	Long: `Resolve a citekey to the absolute path of its attached PDF.

The hash suffix of a citekey is never stored in the library, so
resolution recomputes it: publications matching the key's base and year
are fetched and their title and DOI hashes replayed until one
reproduces the suffix.

Examples:
  ck resolve smith:2020bc`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

// ResolveResult is the response for the resolve command.
type ResolveResult struct {
	Citekey      string `json:"citekey"`
	Path         string `json:"path"`
	RelativePath string `json:"relative_path"`
}

// resolvePDF runs the shared resolve pipeline: citekey to
// library-relative path to verified absolute path. It exits with the
// appropriate code on any failure.
func resolvePDF(cfg *config.Config, key string) ResolveResult {
	lib := mustOpenLibrary(cfg)
	defer lib.Close()

	relPath, err := lib.FindPDF(key)
	if err != nil {
		var malformed citekey.MalformedKeyError
		var noPDF library.NoPDFError
		switch {
		case errors.As(err, &malformed):
			exitWithError(ExitDataError, "%v", err)
		case errors.As(err, &noPDF):
			exitWithError(ExitNoPDF, "%v", err)
		default:
			exitWithError(ExitError, "resolving %s: %v", key, err)
		}
	}

	opener := pdf.NewOpener(cfg.LibraryRoot, cfg.PDFReader)
	fullPath, err := opener.ResolvePath(relPath)
	if err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	return ResolveResult{Citekey: key, Path: fullPath, RelativePath: relPath}
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	result := resolvePDF(cfg, args[0])

	if humanOutput {
		fmt.Println(result.Path)
	} else {
		outputJSON(result)
	}

	return nil
}
