// Package errors provides a structured error type hierarchy for the fill CLI.
//
// This package defines base error types for the failure classes of a fill
// run, wrapped error types that add contextual information, and helper
// functions for error wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrFileRead - the template file could not be read
//   - ErrInput - the answer to a prompt could not be read
//   - ErrMissingReplacement - a placeholder had no value at substitution time
//   - ErrClipboard - the result could not be copied to the clipboard
//   - ErrInvalid - validation failed
//   - ErrCanceled - user canceled operation
//
// Wrapped error types (add context):
//   - FileReadError{Path, Err} - template read errors
//   - InputError{Name, Err} - prompt read errors
//   - ClipboardError{Err} - clipboard write errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use structured error types
//	return &errors.FileReadError{Path: path, Err: err}
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "resolve")
//
//	// Check error types
//	if errors.IsFileRead(err) {
//	    // handle unreadable template
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrFileRead indicates the template file could not be read.
	ErrFileRead = baseError("could not read file")

	// ErrInput indicates a prompt answer could not be read.
	ErrInput = baseError("could not read input")

	// ErrMissingReplacement indicates a placeholder had no replacement value.
	ErrMissingReplacement = baseError("missing replacement")

	// ErrClipboard indicates the clipboard could not be written.
	ErrClipboard = baseError("could not copy to clipboard")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// FileReadError represents a failure to load the template file.
type FileReadError struct {
	// Path is the file path as given on the command line.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("could not read file `%s`: %s", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// Is reports ErrFileRead for every FileReadError.
func (e *FileReadError) Is(target error) bool { return target == ErrFileRead }

// InputError represents a failure to read the answer for a placeholder.
type InputError struct {
	// Name is the placeholder being prompted for (may be empty).
	Name string
	// Err is the underlying error.
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s for %q: %s", ErrInput, e.Name, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Is reports ErrInput for every InputError.
func (e *InputError) Is(target error) bool { return target == ErrInput }

// ClipboardError represents a failure to write the system clipboard.
type ClipboardError struct {
	// Err is the underlying error.
	Err error
}

func (e *ClipboardError) Error() string {
	return fmt.Sprintf("%s: %s", ErrClipboard, e.Err)
}

func (e *ClipboardError) Unwrap() error { return e.Err }

// Is reports ErrClipboard for every ClipboardError.
func (e *ClipboardError) Is(target error) bool { return target == ErrClipboard }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error. Wrap returns nil for a nil error.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsFileRead reports whether err is or wraps ErrFileRead.
func IsFileRead(err error) bool {
	return errors.Is(err, ErrFileRead)
}

// IsInput reports whether err is or wraps ErrInput.
func IsInput(err error) bool {
	return errors.Is(err, ErrInput)
}

// IsMissingReplacement reports whether err is or wraps ErrMissingReplacement.
func IsMissingReplacement(err error) bool {
	return errors.Is(err, ErrMissingReplacement)
}

// IsClipboard reports whether err is or wraps ErrClipboard.
func IsClipboard(err error) bool {
	return errors.Is(err, ErrClipboard)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsFileReadError reports whether err can be typed as a *FileReadError.
func AsFileReadError(err error) (*FileReadError, bool) {
	var fe *FileReadError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// AsInputError reports whether err can be typed as an *InputError.
func AsInputError(err error) (*InputError, bool) {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
