// Package placeholders provides placeholder extraction and substitution
// for {{name}} markers.
package placeholders

import (
	"fmt"
	"strings"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// Extract extracts all unique placeholder names from a string, in order of
// first appearance. Names are trimmed of enclosing spaces.
func Extract(s string) []string {
	seen := make(map[string]bool)
	result := []string{}

	scanMarkers(s, func(m marker) {
		name := strings.Trim(m.inner, " ")
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	})

	return result
}

// Substitute replaces every {{name}} marker whose name is a key of values.
// Matching uses the exact marker text, so "{{ name }}" is not replaced by
// the value for "name". Replacement values are inserted verbatim and never
// rescanned.
//
// Returns a *MissingError if any placeholder Extract finds has no value.
func Substitute(s string, values map[string]string) (string, error) {
	var missing []string
	for _, name := range Extract(s) {
		if _, ok := values[name]; !ok {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return "", &MissingError{MissingNames: missing}
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0

	scanMarkers(s, func(m marker) {
		value, ok := values[m.inner]
		if !ok {
			return
		}
		b.WriteString(s[last:m.start])
		b.WriteString(value)
		last = m.end
	})
	b.WriteString(s[last:])

	return b.String(), nil
}

// MissingError is returned when placeholders are missing values.
type MissingError struct {
	MissingNames []string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("missing placeholders: %s", strings.Join(e.MissingNames, ", "))
}

// Missing returns the list of missing placeholder names.
func (e *MissingError) Missing() []string {
	return e.MissingNames
}

// Is reports whether target is errors.ErrMissingReplacement.
func (e *MissingError) Is(target error) bool {
	return target == fillerrors.ErrMissingReplacement
}
