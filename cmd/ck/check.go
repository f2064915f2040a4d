package main

import (
	"fmt"
	"os"
	"path/filepath"

	"citekit/internal/library"
	"citekit/internal/pdf"
	"github.com/spf13/cobra"
)

var checkExtractDOI bool

func init() {
	checkCmd.Flags().BoolVar(&checkExtractDOI, "extract-doi", false, "Cross-check stored DOIs against DOIs extracted from the PDFs")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify library integrity",
	Long: `Verify library integrity: publications that cannot produce a
citekey, attachment paths missing under the library root, and (with
--extract-doi) stored DOIs that disagree with the DOI printed in the
PDF itself.`,
	RunE: runCheck,
}

// CheckResult is the response for the check command.
type CheckResult struct {
	Status       string       `json:"status"`
	Publications int          `json:"publications"`
	Issues       []CheckIssue `json:"issues"`
}

// CheckIssue represents a single issue found during check.
type CheckIssue struct {
	Type         string `json:"type"`
	RowID        int64  `json:"row_id"`
	Citekey      string `json:"citekey,omitempty"`
	Reason       string `json:"reason,omitempty"`
	Expected     string `json:"expected,omitempty"`
	StoredDOI    string `json:"stored_doi,omitempty"`
	ExtractedDOI string `json:"extracted_doi,omitempty"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig()
	lib := mustOpenLibrary(cfg)
	defer lib.Close()

	pubs, err := lib.Publications()
	if err != nil {
		exitWithError(ExitError, "reading publications: %v", err)
	}

	var issues []CheckIssue
	for _, pub := range pubs {
		entry, err := library.EntryFor(pub)
		if err != nil {
			issues = append(issues, CheckIssue{
				Type:   "unkeyable",
				RowID:  pub.RowID,
				Reason: err.Error(),
			})
			continue
		}

		paths, err := lib.AttachmentPaths(pub.RowID)
		if err != nil {
			exitWithError(ExitError, "reading attachments: %v", err)
		}

		for _, relPath := range paths {
			fullPath := filepath.Join(cfg.LibraryRoot, relPath)
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				issues = append(issues, CheckIssue{
					Type:     "missing_pdf",
					RowID:    pub.RowID,
					Citekey:  entry.Citekey,
					Expected: relPath,
				})
				continue
			}

			if checkExtractDOI && pub.DOI != "" {
				extracted, err := pdf.ExtractDOI(fullPath)
				if err != nil || extracted == "" {
					continue // unreadable or DOI-less PDFs are not mismatches
				}
				if extracted != pub.DOI {
					issues = append(issues, CheckIssue{
						Type:         "doi_mismatch",
						RowID:        pub.RowID,
						Citekey:      entry.Citekey,
						Expected:     relPath,
						StoredDOI:    pub.DOI,
						ExtractedDOI: extracted,
					})
				}
			}
		}
	}

	status := "ok"
	if len(issues) > 0 {
		status = "issues"
	}
	if issues == nil {
		issues = []CheckIssue{}
	}

	if humanOutput {
		if len(issues) == 0 {
			fmt.Printf("Library check: OK\n\n%d publications checked\n", len(pubs))
		} else {
			fmt.Printf("Library check: %d issues found\n\n", len(issues))
			for _, issue := range issues {
				switch issue.Type {
				case "unkeyable":
					fmt.Printf("  [WARN] Unkeyable publication (row %d)\n", issue.RowID)
					fmt.Printf("         %s\n\n", issue.Reason)
				case "missing_pdf":
					fmt.Printf("  [WARN] Missing PDF for %s\n", issue.Citekey)
					fmt.Printf("         Expected: %s\n\n", issue.Expected)
				case "doi_mismatch":
					fmt.Printf("  [WARN] DOI mismatch for %s\n", issue.Citekey)
					fmt.Printf("         Stored: %s, in PDF: %s\n\n", issue.StoredDOI, issue.ExtractedDOI)
				}
			}
			fmt.Printf("%d publications checked\n", len(pubs))
		}
	} else {
		outputJSON(CheckResult{
			Status:       status,
			Publications: len(pubs),
			Issues:       issues,
		})
	}

	return nil
}
