package citekey

import (
	"fmt"
	"sort"
	"strings"
)

// markdownLinkTemplate renders one citekey as a Papers2 deep link.
const markdownLinkTemplate = "[%s](papers2://publication/citekey/%s)"

// Group is the ordered set of citekeys inside one citation span. Keys
// are unique within a group and kept sorted ascending by year.
type Group []string

// Contains reports whether key is already in the group.
func (g Group) Contains(key string) bool {
	for _, k := range g {
		if k == key {
			return true
		}
	}
	return false
}

// Add returns a group with key included. Adding a key that is already
// present returns the receiver unchanged. Otherwise the key is appended
// and the result re-sorted by year; the sort is stable, so keys from
// the same year keep their insertion order.
func (g Group) Add(key string) Group {
	if g.Contains(key) {
		return g
	}
	out := make(Group, len(g), len(g)+1)
	copy(out, g)
	out = append(out, key)
	sort.SliceStable(out, func(i, j int) bool {
		return yearOf(out[i]) < yearOf(out[j])
	})
	return out
}

// yearOf extracts the year part of a citekey for ordering. Keys that do
// not split sort on the empty year, ahead of everything else.
func yearOf(key string) string {
	k, err := Split(key)
	if err != nil {
		return ""
	}
	return k.Year
}

// Format renders the group in citation text form: {key1, key2}.
func (g Group) Format() string {
	return "{" + strings.Join(g, ", ") + "}"
}

// MarkdownLinks renders each key as a markdown link to its Papers2
// publication URL, joined by ", ".
func (g Group) MarkdownLinks() string {
	links := make([]string, len(g))
	for i, k := range g {
		links[i] = fmt.Sprintf(markdownLinkTemplate, k, k)
	}
	return strings.Join(links, ", ")
}
