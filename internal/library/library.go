// Package library provides read-only access to Papers2 library
// databases: the publications they hold, their PDF attachments, and
// the citekeys derived from them.
package library

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// Publication is the subset of a publication row that citekey
// generation and matching need. No field is ever written back.
type Publication struct {
	RowID           int64
	AuthorYear      string // preformatted "Author (2020)" display string
	AttributedTitle string // display title
	CanonicalTitle  string // normalized title, the title-hash input
	DOI             string
	CitekeyBase     string
	PublicationDate string // digit string whose bytes 2..5 are the year
}

// Library is a handle on one Papers2 database.
type Library struct {
	db *sql.DB
}

// Open opens the SQLite database at path. The file must already exist:
// a missing database means a misconfigured library, so it is reported
// rather than silently created.
func Open(path string) (*Library, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("library database not found: %s", path)
		}
		return nil, fmt.Errorf("failed to stat library database: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library database: %w", err)
	}
	db.SetMaxOpenConns(1)

	return &Library{db: db}, nil
}

// Close closes the database connection.
func (l *Library) Close() error {
	return l.db.Close()
}

// Publications returns every publication in the store's natural row
// order.
func (l *Library) Publications() ([]Publication, error) {
	rows, err := l.db.Query(`
		SELECT ROWID, author_year_string, attributed_title,
		       canonical_title, doi, citekey_base, publication_date
		FROM Publication
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query publications: %w", err)
	}
	defer rows.Close()

	var pubs []Publication
	for rows.Next() {
		pub, err := scanPublication(rows)
		if err != nil {
			return nil, err
		}
		pubs = append(pubs, pub)
	}
	return pubs, rows.Err()
}

// AttachmentPaths returns the library-relative paths of the PDFs
// attached to one publication, in store order. Publications without
// attachments yield an empty slice.
func (l *Library) AttachmentPaths(rowID int64) ([]string, error) {
	rows, err := l.db.Query(`SELECT Path FROM PDF WHERE object_id = ?`, rowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attachments: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var path sql.NullString
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		if path.Valid && path.String != "" {
			paths = append(paths, path.String)
		}
	}
	return paths, rows.Err()
}

// scanner abstracts sql.Row and sql.Rows for scanning.
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanPublication scans a publication row, mapping NULL text columns to
// empty strings.
func scanPublication(s scanner) (Publication, error) {
	var pub Publication
	var authorYear, attributed, canonical, doi, base, date sql.NullString

	err := s.Scan(&pub.RowID, &authorYear, &attributed, &canonical, &doi, &base, &date)
	if err != nil {
		return Publication{}, err
	}

	pub.AuthorYear = authorYear.String
	pub.AttributedTitle = attributed.String
	pub.CanonicalTitle = canonical.String
	pub.DOI = doi.String
	pub.CitekeyBase = base.String
	pub.PublicationDate = date.String
	return pub, nil
}
