// Package main provides the ck CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ck",
	Short: "Citekey tools for Papers2-style libraries",
	Long: `ck generates, parses, and resolves universal citekeys against a
Papers2-style library database.

A citekey (base:YYYYhh) is a deterministic identifier: its two-character
hash suffix is recomputed from a publication's DOI or title, never
stored. ck lists the citekeys of a library, resolves a citekey back to
its PDF, and finds/edits {key1, key2} citation groups in manuscript
text. All commands output JSON by default for easy integration with
editors, AI agents, and other tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// .env can carry CITEKIT_* overrides during development
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}
