// Package cli provides Cobra command definitions for fill.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/chazuruo/fill/internal/app"
	"github.com/chazuruo/fill/internal/clipboard"
	"github.com/chazuruo/fill/internal/config"
	"github.com/chazuruo/fill/internal/console"
	"github.com/chazuruo/fill/internal/logging"
	"github.com/chazuruo/fill/internal/prompt"
)

// FillOptions contains the options for a fill run.
type FillOptions struct {
	Path string

	In  io.Reader
	Out io.Writer
	Err io.Writer

	// FS defaults to the OS file system.
	FS afero.Fs
	// Clipboard overrides the clipboard chosen from configuration.
	Clipboard clipboard.Clipboard
}

// NewRootCommand creates the fill command.
func NewRootCommand(info VersionInfo) *cobra.Command {
	opts := &FillOptions{}

	cmd := &cobra.Command{
		Use:   "fill <path>",
		Short: "Fill {{placeholder}} markers in a text file",
		Long: `fill reads a text file, asks for a value for every distinct {{name}}
marker in order of first appearance, prints the filled-in text and copies it
to the clipboard.

Markers are written as {{name}}; spaces just inside the braces are ignored
when collecting names. Replacement values are inserted as-is and are never
scanned for further markers.

Settings are read from ~/.config/fill/config.toml (or $FILL_CONFIG) and
FILL_<SECTION>_<FIELD> environment variables.`,
		Version:       info.String(),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			opts.In = cmd.InOrStdin()
			opts.Out = cmd.OutOrStdout()
			opts.Err = cmd.ErrOrStderr()
			return runFill(cmd.Context(), opts)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

func runFill(ctx context.Context, opts *FillOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, opts.Err)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	con := console.New(opts.Out, diagnosticsWriter(cfg.Output.Diagnostics, opts), console.Options{
		Mapping: cfg.Output.Mapping,
		Color:   cfg.Output.Color,
	})

	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	cb := opts.Clipboard
	if cb == nil {
		cb = clipboard.New(cfg.Clipboard.Enabled)
	}

	filler := &app.Filler{
		FS:        fs,
		Prompter:  newPrompter(cfg.Prompt, opts, con),
		Console:   con,
		Clipboard: cb,
		Logger:    logger,
	}

	if _, err := filler.Fill(ctx, opts.Path); err != nil {
		logger.Debug("fill failed", zap.Error(err))
		return err
	}

	return nil
}

// diagnosticsWriter maps output.diagnostics to a writer; nil discards.
func diagnosticsWriter(target string, opts *FillOptions) io.Writer {
	switch target {
	case "stderr":
		return opts.Err
	case "none":
		return nil
	default:
		return opts.Out
	}
}

// newPrompter picks the form prompter only when stdin is a terminal.
func newPrompter(cfg config.PromptConfig, opts *FillOptions, con *console.Console) prompt.Prompter {
	if cfg.Style == "form" && isTerminal(opts.In) {
		return prompt.NewFormPrompter(cfg.Question, cfg.Accessible)
	}
	return prompt.NewLinePrompter(opts.In, opts.Out, cfg.Question, con.QuestionStyle())
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
