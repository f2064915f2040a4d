package library

import (
	"fmt"

	"citekit/internal/citekey"
)

// Entry pairs a publication's display label with its computed citekey.
type Entry struct {
	Label   string `json:"label"`
	Citekey string `json:"citekey"`
}

// List builds a listing entry for every keyable publication, newest
// store rows first (the reverse of natural row order). Publications
// that cannot produce a citekey are skipped rather than fatal; the
// second return value counts them.
func (l *Library) List() ([]Entry, int, error) {
	pubs, err := l.Publications()
	if err != nil {
		return nil, 0, err
	}

	entries := make([]Entry, 0, len(pubs))
	skipped := 0
	for _, pub := range pubs {
		entry, err := EntryFor(pub)
		if err != nil {
			skipped++
			continue
		}
		entries = append(entries, entry)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, skipped, nil
}

// EntryFor derives the label and citekey for one publication. The
// error names exactly why a publication is unkeyable: a date too short
// to carry a year, an empty citekey base, or no DOI and no title.
func EntryFor(pub Publication) (Entry, error) {
	year, err := dateYear(pub.PublicationDate)
	if err != nil {
		return Entry{}, err
	}
	key, err := citekey.Make(pub.CitekeyBase, year, pub.DOI, pub.CanonicalTitle)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Label:   pub.AuthorYear + " " + pub.AttributedTitle,
		Citekey: key,
	}, nil
}

// dateYear extracts the year from a Papers2 publication date, a digit
// string like "99202006011200..." whose bytes 2 through 5 hold YYYY.
func dateYear(date string) (string, error) {
	if len(date) < 6 {
		return "", fmt.Errorf("publication date %q too short to hold a year", date)
	}
	return date[2:6], nil
}
