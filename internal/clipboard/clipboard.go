// Package clipboard provides best-effort copy-to-clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// Clipboard copies text to a clipboard.
// Callers treat a failure as non-fatal.
type Clipboard interface {
	Copy(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return &fillerrors.ClipboardError{Err: err}
	}
	return nil
}

// Nop discards the text. It is used when copying is disabled.
type Nop struct{}

// Copy does nothing.
func (Nop) Copy(string) error { return nil }

// New returns System when enabled is true and Nop otherwise.
func New(enabled bool) Clipboard {
	if enabled {
		return System{}
	}
	return Nop{}
}
