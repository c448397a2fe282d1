// Package app provides the high-level fill pipeline.
package app

import (
	"context"
	"errors"
	"unicode/utf8"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/chazuruo/fill/internal/clipboard"
	"github.com/chazuruo/fill/internal/console"
	fillerrors "github.com/chazuruo/fill/internal/errors"
	"github.com/chazuruo/fill/internal/placeholders"
	"github.com/chazuruo/fill/internal/prompt"
)

// errInvalidUTF8 is reported when the template is not valid UTF-8 text.
var errInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// Filler runs the fill pipeline against injected collaborators.
type Filler struct {
	FS        afero.Fs
	Prompter  prompt.Prompter
	Console   *console.Console
	Clipboard clipboard.Clipboard
	Logger    *zap.Logger
}

// Result is the outcome of a successful run.
type Result struct {
	// Names are the placeholder names in order of first appearance.
	Names []string
	// Values are the resolved replacement values keyed by name.
	Values map[string]string
	// Output is the substituted text.
	Output string
	// Copied reports whether the output reached the clipboard.
	Copied bool
}

// Fill loads the template at path, asks for every placeholder value,
// prints the substituted text and copies it to the clipboard.
//
// A clipboard failure is logged and does not fail the run.
func (f *Filler) Fill(ctx context.Context, path string) (*Result, error) {
	logger := f.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("path", path))

	if err := ctx.Err(); err != nil {
		return nil, fillerrors.Wrap(err, "load")
	}

	content, err := f.load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("template loaded", zap.Int("bytes", len(content)))

	if err := ctx.Err(); err != nil {
		return nil, fillerrors.Wrap(err, "extract")
	}

	names := placeholders.Extract(content)
	logger.Debug("placeholders extracted", zap.Strings("names", names))

	values, err := prompt.Resolve(names, f.Prompter)
	if err != nil {
		return nil, err
	}
	f.Console.Mapping(names, values)

	if err := ctx.Err(); err != nil {
		return nil, fillerrors.Wrap(err, "substitute")
	}

	output, err := placeholders.Substitute(content, values)
	if err != nil {
		return nil, fillerrors.Wrap(err, "substitute")
	}

	if err := f.Console.Result(output); err != nil {
		return nil, fillerrors.Wrap(err, "write result")
	}

	res := &Result{Names: names, Values: values, Output: output}

	cb := f.Clipboard
	if cb == nil {
		cb = clipboard.Nop{}
	}
	if _, disabled := cb.(clipboard.Nop); disabled {
		return res, nil
	}

	if err := cb.Copy(output); err != nil {
		if !fillerrors.IsClipboard(err) {
			err = &fillerrors.ClipboardError{Err: err}
		}
		logger.Warn("clipboard copy failed", zap.Error(err))
		return res, nil
	}
	res.Copied = true
	f.Console.Copied()

	return res, nil
}

// load reads the template as text, echoing the status and content lines.
func (f *Filler) load(path string) (string, error) {
	f.Console.Opening(path)

	data, err := afero.ReadFile(f.FS, path)
	if err != nil {
		return "", &fillerrors.FileReadError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &fillerrors.FileReadError{Path: path, Err: errInvalidUTF8}
	}

	content := string(data)
	f.Console.Content(content)

	return content, nil
}
