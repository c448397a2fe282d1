package errors_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrFileRead", fillerrors.ErrFileRead, "could not read file"},
		{"ErrInput", fillerrors.ErrInput, "could not read input"},
		{"ErrMissingReplacement", fillerrors.ErrMissingReplacement, "missing replacement"},
		{"ErrClipboard", fillerrors.ErrClipboard, "could not copy to clipboard"},
		{"ErrInvalid", fillerrors.ErrInvalid, "invalid"},
		{"ErrCanceled", fillerrors.ErrCanceled, "canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestFileReadError verifies FileReadError formatting and matching.
func TestFileReadError(t *testing.T) {
	err := &fillerrors.FileReadError{Path: "notes.txt", Err: os.ErrNotExist}

	want := "could not read file `notes.txt`: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("errors.Is did not find the underlying error")
	}
	if !fillerrors.IsFileRead(err) {
		t.Error("IsFileRead() = false, want true")
	}
	if fillerrors.IsInput(err) {
		t.Error("IsInput() = true, want false")
	}

	wrapped := fmt.Errorf("fill: %w", err)
	fe, ok := fillerrors.AsFileReadError(wrapped)
	if !ok {
		t.Fatal("AsFileReadError() returned false for wrapped error")
	}
	if fe.Path != "notes.txt" {
		t.Errorf("Path = %q, want %q", fe.Path, "notes.txt")
	}
}

// TestInputError verifies InputError formatting and matching.
func TestInputError(t *testing.T) {
	err := &fillerrors.InputError{Name: "city", Err: io.EOF}

	want := `could not read input for "city": EOF`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, io.EOF) {
		t.Error("errors.Is did not find io.EOF")
	}
	if !fillerrors.IsInput(err) {
		t.Error("IsInput() = false, want true")
	}

	ie, ok := fillerrors.AsInputError(fillerrors.Wrap(err, "resolve"))
	if !ok {
		t.Fatal("AsInputError() returned false for wrapped error")
	}
	if ie.Name != "city" {
		t.Errorf("Name = %q, want %q", ie.Name, "city")
	}
}

// TestClipboardError verifies ClipboardError formatting and matching.
func TestClipboardError(t *testing.T) {
	err := &fillerrors.ClipboardError{Err: fmt.Errorf("no xclip")}

	if got, want := err.Error(), "could not copy to clipboard: no xclip"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !fillerrors.IsClipboard(err) {
		t.Error("IsClipboard() = false, want true")
	}
	if fillerrors.IsFileRead(err) {
		t.Error("IsFileRead() = true, want false")
	}
}

// TestConfigError verifies ConfigError formatting and unwrapping.
func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *fillerrors.ConfigError
		want string
	}{
		{
			name: "with path",
			err:  &fillerrors.ConfigError{Path: "/etc/fill.toml", Err: fillerrors.ErrInvalid},
			want: "config /etc/fill.toml: invalid",
		},
		{
			name: "without path",
			err:  &fillerrors.ConfigError{Err: fillerrors.ErrInvalid},
			want: "config: invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !fillerrors.IsInvalid(tt.err) {
				t.Error("IsInvalid() = false, want true")
			}
		})
	}

	if _, ok := fillerrors.AsConfigError(fmt.Errorf("load: %w", &fillerrors.ConfigError{Err: io.EOF})); !ok {
		t.Error("AsConfigError() returned false for wrapped error")
	}
}

// TestWrap verifies operation context and nil handling.
func TestWrap(t *testing.T) {
	if fillerrors.Wrap(nil, "op") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	err := fillerrors.Wrap(fillerrors.ErrCanceled, "prompt")
	if got, want := err.Error(), "prompt: canceled"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !fillerrors.IsCanceled(err) {
		t.Error("IsCanceled() = false for wrapped ErrCanceled")
	}
}
