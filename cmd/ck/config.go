package main

import (
	"fmt"
	"strings"

	"citekit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set configuration values.

Usage:
  ck config                               # Show all config
  ck config library-root                  # Get specific value
  ck config library-root ~/Papers         # Set value
  ck config pdf-reader skim               # Set PDF reader

Keys:
  library-root   Papers2 library folder (attachment paths are relative to it)
  database-path  SQLite database file (default: <library-root>/Library.papers2/Database.papersdb)
  pdf-reader     PDF reader preference (system, skim, preview, zathura, evince, okular)`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	LibraryRoot  string `json:"library_root,omitempty"`
	DatabasePath string `json:"database_path,omitempty"`
	PDFReader    string `json:"pdf_reader,omitempty"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()

	// No args: show all config
	if len(args) == 0 {
		if humanOutput {
			fmt.Printf("library-root:  %s\n", cfg.LibraryRoot)
			fmt.Printf("database-path: %s\n", cfg.DatabasePathOrDefault())
			fmt.Printf("pdf-reader:    %s\n", cfg.PDFReader)
		} else {
			outputJSON(ConfigResponse{
				LibraryRoot:  cfg.LibraryRoot,
				DatabasePath: cfg.DatabasePathOrDefault(),
				PDFReader:    cfg.PDFReader,
			})
		}
		return nil
	}

	key := normalizeKey(args[0])

	// One arg: get specific value
	if len(args) == 1 {
		var value string
		switch key {
		case "library-root":
			value = cfg.LibraryRoot
		case "database-path":
			value = cfg.DatabasePathOrDefault()
		case "pdf-reader":
			value = cfg.PDFReader
		default:
			exitWithError(ExitError, "unknown configuration key: %s", args[0])
		}
		if humanOutput {
			fmt.Println(value)
		} else {
			outputJSON(map[string]string{strings.ReplaceAll(key, "-", "_"): value})
		}
		return nil
	}

	// Two args: set value
	value := args[1]

	switch key {
	case "library-root":
		expanded := config.ExpandPath(value)
		if err := config.ValidateLibraryRoot(expanded); err != nil {
			exitWithError(ExitConfigError, "%v", err)
		}
		cfg.LibraryRoot = expanded
	case "database-path":
		cfg.DatabasePath = config.ExpandPath(value)
	case "pdf-reader":
		if err := config.ValidatePDFReader(value); err != nil {
			exitWithError(ExitError, "%v", err)
		}
		cfg.PDFReader = value
	default:
		exitWithError(ExitError, "unknown configuration key: %s", args[0])
	}

	if err := cfg.Save(); err != nil {
		exitWithError(ExitError, "saving config: %v", err)
	}

	if humanOutput {
		fmt.Printf("Updated %s to %s\n", key, value)
	} else {
		outputJSON(UpdateResponse{
			Status: "updated",
			Key:    key,
			Value:  value,
		})
	}

	return nil
}

// normalizeKey converts key formats (library-root, library_root) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
