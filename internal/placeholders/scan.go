package placeholders

import "strings"

const (
	openDelim  = "{{"
	closeDelim = "}}"
)

// marker is one {{...}} occurrence in a text.
// text[start:end] is the whole marker, inner is the raw text between the delimiters.
type marker struct {
	start int
	end   int
	inner string
}

// scanMarkers calls fn for every marker in s, left to right.
//
// A marker is "{{", one or more bytes that are neither '{' nor '}', then "}}".
// The first "}}" closes a marker. When a candidate at offset i does not close,
// scanning resumes at i+1, so "{{{a}}" holds the marker "{{a}}" at offset 1.
func scanMarkers(s string, fn func(m marker)) {
	i := 0
	for i < len(s) {
		k := strings.Index(s[i:], openDelim)
		if k < 0 {
			return
		}
		i += k

		j := i + len(openDelim)
		for j < len(s) && s[j] != '{' && s[j] != '}' {
			j++
		}

		if j > i+len(openDelim) && strings.HasPrefix(s[j:], closeDelim) {
			fn(marker{start: i, end: j + len(closeDelim), inner: s[i+len(openDelim) : j]})
			i = j + len(closeDelim)
			continue
		}

		i++
	}
}
