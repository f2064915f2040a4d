package citekey

// Edit is a replacement of text[Start:End] that inserts a citekey. It
// is returned as data rather than applied, so any front end (editor
// plugin, script) can perform the actual buffer change itself.
type Edit struct {
	Start int
	End   int
	Group Group
}

// InsertKey computes the edit that adds key to the citation at offset.
// When a citation group spans the offset, the key joins that group
// (deduplicated, year-sorted) and the edit replaces the whole group
// span. Otherwise the edit is a zero-width insertion of a new
// single-key group at offset.
func InsertKey(text string, offset int, key string) Edit {
	_, group, start, end := KeysAt(text, offset)
	if group == nil {
		return Edit{Start: offset, End: offset, Group: Group{key}}
	}
	return Edit{Start: start, End: end, Group: group.Add(key)}
}

// Apply returns text with the edit's group formatted in place.
func (e Edit) Apply(text string) string {
	return text[:e.Start] + e.Group.Format() + text[e.End:]
}
