package citekey

// GroupMatch is one citation group found in free text. Offsets are byte
// offsets into the scanned text: Start is the opening brace, End is one
// past the closing brace.
type GroupMatch struct {
	Keys  []KeyMatch
	Start int
	End   int
}

// KeyMatch is a single citekey token inside a group. Start is the
// key's first byte, End is one past its last.
type KeyMatch struct {
	Key   string
	Start int
	End   int
}

// Group returns the matched keys as a Group, in textual order.
func (m GroupMatch) Group() Group {
	g := make(Group, len(m.Keys))
	for i, k := range m.Keys {
		g[i] = k.Key
	}
	return g
}

// Scan finds every well-formed citation group in text, left to right.
// Matches never overlap: scanning resumes after each match. A '{' that
// does not open a well-formed group is skipped without consuming any
// text after it, so a group starting inside a stray brace is still
// found.
func Scan(text string) []GroupMatch {
	var matches []GroupMatch
	for i := 0; i < len(text); i++ {
		if text[i] != '{' {
			continue
		}
		m, ok := parseGroup(text, i)
		if !ok {
			continue
		}
		matches = append(matches, m)
		i = m.End - 1
	}
	return matches
}

// KeysAt locates the citation group whose span contains offset and the
// key under the offset within it. The key is empty when the offset
// falls inside the group but between keys. Span checks treat the end
// offset as inside, matching a cursor sitting just past the text. When
// no group contains offset, the group is nil and the returned span
// collapses to (offset, offset).
func KeysAt(text string, offset int) (key string, group Group, start, end int) {
	for _, m := range Scan(text) {
		if offset < m.Start || offset > m.End {
			continue
		}
		for _, k := range m.Keys {
			if offset >= k.Start && offset <= k.End {
				key = k.Key
				break
			}
		}
		return key, m.Group(), m.Start, m.End
	}
	return "", nil, offset, offset
}

// parseGroup parses a citation group whose opening brace sits at start:
// one or more citekeys, at most one comma between consecutive keys, a
// trailing comma allowed, whitespace allowed around tokens, closed by
// '}'. Reports false whenever the brace does not open such a group.
func parseGroup(text string, start int) (GroupMatch, bool) {
	m := GroupMatch{Start: start}
	afterKey := false
	i := start + 1
	for {
		i = skipSpace(text, i)
		if i >= len(text) {
			return GroupMatch{}, false
		}
		switch c := text[i]; {
		case c == '}':
			if len(m.Keys) == 0 {
				return GroupMatch{}, false
			}
			m.End = i + 1
			return m, true
		case c == ',':
			// A comma is only legal directly after a key.
			if !afterKey {
				return GroupMatch{}, false
			}
			afterKey = false
			i++
		default:
			key, end, ok := parseKey(text, i)
			if !ok {
				return GroupMatch{}, false
			}
			m.Keys = append(m.Keys, KeyMatch{Key: key, Start: i, End: end})
			afterKey = true
			i = end
		}
	}
}

// parseKey matches one citekey token at position i: one or more ASCII
// letters, a colon, exactly four digits, exactly two letters, with no
// whitespace inside the token. Returns the token and the offset one
// past it.
func parseKey(text string, i int) (string, int, bool) {
	start := i
	for i < len(text) && isAlpha(text[i]) {
		i++
	}
	if i == start || i >= len(text) || text[i] != ':' {
		return "", 0, false
	}
	i++
	for n := 0; n < 4; n++ {
		if i >= len(text) || !isDigit(text[i]) {
			return "", 0, false
		}
		i++
	}
	for n := 0; n < 2; n++ {
		if i >= len(text) || !isAlpha(text[i]) {
			return "", 0, false
		}
		i++
	}
	return text[start:i], i, true
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			i++
		default:
			return i
		}
	}
	return i
}

func isAlpha(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
