// Package citekey implements the universal citekey scheme used by
// Papers2-style libraries: deterministic base:YYYYhh identifiers whose
// two-character hash suffix is recomputed from a record's DOI or title
// rather than stored. The package also handles the {key1, key2}
// citation groups that carry these keys in manuscript text.
package citekey

import (
	"errors"
	"fmt"
	"strings"
)

// Key is a citekey decomposed into its parts.
type Key struct {
	Base string // author-derived prefix, stored on the record
	Year string // 4-digit publication year
	Hash string // 2-character hash suffix
}

// String reassembles the canonical base:YYYYhh form.
func (k Key) String() string {
	return k.Base + ":" + k.Year + k.Hash
}

// MalformedKeyError reports a string that does not decompose into the
// base:YYYYhh citekey form.
type MalformedKeyError struct {
	Key string
}

func (e MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed citekey %q (want base:YYYYhh)", e.Key)
}

// Errors returned by Make when a record cannot produce a citekey.
var (
	ErrEmptyBase    = errors.New("citekey base is empty")
	ErrBadYear      = errors.New("publication year must be 4 characters")
	ErrNoHashSource = errors.New("record has neither DOI nor title")
)

// Make computes the citekey for a record. The hash suffix comes from
// the DOI when the record has one, otherwise from the title. The year
// must already be the extracted 4-character string.
func Make(base, year, doi, title string) (string, error) {
	if base == "" {
		return "", ErrEmptyBase
	}
	if len(year) != 4 {
		return "", fmt.Errorf("%w: %q", ErrBadYear, year)
	}
	if h, ok := DOIHash(doi); ok {
		return Key{Base: base, Year: year, Hash: h}.String(), nil
	}
	if h, ok := TitleHash(title); ok {
		return Key{Base: base, Year: year, Hash: h}.String(), nil
	}
	return "", ErrNoHashSource
}

// Split decomposes a citekey on its ":" separator. The first four
// characters of the suffix are the year and anything after them is the
// hash. Suffixes shorter than four characters become the whole year
// with an empty hash; such keys simply never match during resolution.
func Split(citekey string) (Key, error) {
	parts := strings.Split(citekey, ":")
	if len(parts) != 2 {
		return Key{}, MalformedKeyError{Key: citekey}
	}
	suffix := parts[1]
	year := suffix
	if len(suffix) > 4 {
		year = suffix[:4]
	}
	return Key{Base: parts[0], Year: year, Hash: suffix[len(year):]}, nil
}
