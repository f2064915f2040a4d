package main

import (
	"fmt"

	"citekit/internal/citekey"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Find citation groups in text",
	Long: `Find every {key1, key2} citation group in a file (or stdin),
reporting byte offsets for each group and each key so editors can
modify citations in place.

Examples:
  ck scan manuscript.md
  echo 'see {smith:2020bc}' | ck scan`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

// ScanGroup is one citation group in the scan response.
type ScanGroup struct {
	Start int       `json:"start"`
	End   int       `json:"end"`
	Keys  []ScanKey `json:"keys"`
}

// ScanKey is one citekey token in a scanned group.
type ScanKey struct {
	Key   string `json:"key"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// ScanResult is the response for the scan command.
type ScanResult struct {
	Groups []ScanGroup `json:"groups"`
}

func runScan(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) == 1 {
		name = args[0]
	}
	text, err := readTextArg(name)
	if err != nil {
		exitWithError(ExitError, "reading input: %v", err)
	}

	matches := citekey.Scan(text)

	groups := make([]ScanGroup, 0, len(matches))
	for _, m := range matches {
		g := ScanGroup{Start: m.Start, End: m.End}
		for _, k := range m.Keys {
			g.Keys = append(g.Keys, ScanKey{Key: k.Key, Start: k.Start, End: k.End})
		}
		groups = append(groups, g)
	}

	if humanOutput {
		if len(groups) == 0 {
			fmt.Println("No citation groups found")
		}
		for _, g := range groups {
			fmt.Printf("[%d-%d]", g.Start, g.End)
			for _, k := range g.Keys {
				fmt.Printf(" %s", k.Key)
			}
			fmt.Println()
		}
	} else {
		outputJSON(ScanResult{Groups: groups})
	}

	return nil
}
