package library

import (
	"database/sql"
	"fmt"

	"citekit/internal/citekey"
)

// NoPDFError reports that no publication matching a citekey has a PDF
// attached.
type NoPDFError struct {
	Citekey string
}

func (e NoPDFError) Error() string {
	return fmt.Sprintf("no PDF found for %s", e.Citekey)
}

// candidate is one publication narrowed by base and year, awaiting a
// hash comparison.
type candidate struct {
	rowID int64
	title string
	doi   string
}

// FindPDF resolves a citekey to the library-relative path of its first
// attached PDF.
//
// The hash suffix is never stored, so resolution replays generation: a
// coarse query narrows candidates to the key's base and year, then each
// candidate's title and DOI hashes are recomputed and compared against
// the key's suffix. A candidate whose hash matches but that has no
// attachment does not stop the scan, since libraries accumulate
// duplicate records of the same work.
func (l *Library) FindPDF(key string) (string, error) {
	parsed, err := citekey.Split(key)
	if err != nil {
		return "", err
	}

	candidates, err := l.candidates(parsed.Base, parsed.Year)
	if err != nil {
		return "", err
	}

	for _, c := range candidates {
		if !hashMatches(parsed.Hash, c.title, c.doi) {
			continue
		}
		paths, err := l.AttachmentPaths(c.rowID)
		if err != nil {
			return "", err
		}
		if len(paths) > 0 {
			return paths[0], nil
		}
	}
	return "", NoPDFError{Citekey: key}
}

// candidates fetches the publications whose citekey base and date year
// match. Results are materialized before returning so the single
// connection is free for the attachment queries that follow.
func (l *Library) candidates(base, year string) ([]candidate, error) {
	rows, err := l.db.Query(`
		SELECT ROWID, canonical_title, doi
		FROM Publication
		WHERE citekey_base = ? AND substr(publication_date, 3, 4) = ?
	`, base, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []candidate
	for rows.Next() {
		var c candidate
		var title, doi sql.NullString
		if err := rows.Scan(&c.rowID, &title, &doi); err != nil {
			return nil, err
		}
		c.title = title.String
		c.doi = doi.String
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// hashMatches reports whether recomputing either hash of a candidate
// reproduces the suffix being resolved.
func hashMatches(hash, title, doi string) bool {
	if h, ok := citekey.TitleHash(title); ok && h == hash {
		return true
	}
	if h, ok := citekey.DOIHash(doi); ok && h == hash {
		return true
	}
	return false
}
