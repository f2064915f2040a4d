package main

import (
	"fmt"

	"citekit/internal/citekey"
	"github.com/spf13/cobra"
)

var (
	insertText     string
	insertFile     string
	insertOffset   int
	insertMarkdown bool
)

func init() {
	insertCmd.Flags().StringVar(&insertText, "text", "", "Text to edit")
	insertCmd.Flags().StringVar(&insertFile, "file", "", "File whose contents to edit (\"-\" for stdin)")
	insertCmd.Flags().IntVar(&insertOffset, "offset", 0, "Byte offset of the cursor in the text")
	insertCmd.Flags().BoolVar(&insertMarkdown, "markdown", false, "Render the group as markdown links")
	insertCmd.MarkFlagsMutuallyExclusive("text", "file")
	rootCmd.AddCommand(insertCmd)
}

var insertCmd = &cobra.Command{
	Use:   "insert <citekey>",
	Short: "Compute the edit that inserts a citekey into text",
	Long: `Compute the text edit that inserts a citekey at an offset.

When a citation group spans the offset, the key joins that group
(duplicates dropped, keys re-sorted by year) and the edit replaces the
whole group span. Otherwise the edit inserts a new single-key group at
the offset. The edit is returned as data (start, end, replacement);
applying it is the caller's job, so any editor can drive this.

Examples:
  ck insert jones:2019cd --text 'see {smith:2020bc} here' --offset 7
  ck insert smith:2020bc --file manuscript.md --offset 1024 --markdown`,
	Args: cobra.ExactArgs(1),
	RunE: runInsert,
}

// InsertResult is the response for the insert command.
type InsertResult struct {
	Start int           `json:"start"`
	End   int           `json:"end"`
	Text  string        `json:"text"`
	Group citekey.Group `json:"group"`
}

func runInsert(cmd *cobra.Command, args []string) error {
	key := args[0]
	if _, err := citekey.Split(key); err != nil {
		exitWithError(ExitDataError, "%v", err)
	}

	text := insertText
	if !cmd.Flags().Changed("text") {
		var err error
		text, err = readTextArg(insertFile)
		if err != nil {
			exitWithError(ExitError, "reading input: %v", err)
		}
	}
	if insertOffset < 0 || insertOffset > len(text) {
		exitWithError(ExitDataError, "offset %d outside text of %d bytes", insertOffset, len(text))
	}

	edit := citekey.InsertKey(text, insertOffset, key)

	replacement := edit.Group.Format()
	if insertMarkdown {
		replacement = edit.Group.MarkdownLinks()
	}

	if humanOutput {
		fmt.Println(text[:edit.Start] + replacement + text[edit.End:])
	} else {
		outputJSON(InsertResult{
			Start: edit.Start,
			End:   edit.End,
			Text:  replacement,
			Group: edit.Group,
		})
	}

	return nil
}
