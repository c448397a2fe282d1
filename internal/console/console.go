// Package console writes the primary result and the diagnostic lines of a
// fill run.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
)

// Mapping formats for the value dump.
const (
	MappingLine  = "line"
	MappingTable = "table"
)

// Console routes output to a primary writer and a diagnostic writer.
type Console struct {
	out     io.Writer
	diag    io.Writer
	mapping string

	color    bool
	status   lipgloss.Style
	question lipgloss.Style
	header   lipgloss.Style
}

// Options configures a Console.
type Options struct {
	// Mapping is MappingLine or MappingTable. Empty means MappingLine.
	Mapping string
	// Color enables lipgloss styling on the diagnostic writer.
	Color bool
}

// New creates a Console. A nil diag discards diagnostics.
func New(out, diag io.Writer, opts Options) *Console {
	if diag == nil {
		diag = io.Discard
	}
	if opts.Mapping == "" {
		opts.Mapping = MappingLine
	}

	c := &Console{
		out:     out,
		diag:    diag,
		mapping: opts.Mapping,
	}

	if opts.Color {
		diagRenderer := lipgloss.NewRenderer(diag)
		c.status = diagRenderer.NewStyle().Foreground(lipgloss.Color("241"))
		c.header = diagRenderer.NewStyle().Bold(true)
		c.question = lipgloss.NewRenderer(out).NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
		c.color = true
	}

	return c
}

// Statusf writes a formatted status line to the diagnostic writer.
func (c *Console) Statusf(format string, args ...any) {
	fmt.Fprintln(c.diag, c.render(c.status, fmt.Sprintf(format, args...)))
}

// render applies style only when color is enabled, so plain output is byte exact.
func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}

// Opening reports the file about to be read.
func (c *Console) Opening(path string) {
	c.Statusf("Opening the file %s", path)
}

// Content echoes the raw template text.
func (c *Console) Content(text string) {
	fmt.Fprintf(c.diag, "%s %s\n", c.render(c.status, "file content:"), text)
}

// Mapping dumps the resolved values. names gives the row order for the
// table format; the line format is sorted by name.
func (c *Console) Mapping(names []string, values map[string]string) {
	if c.mapping == MappingTable {
		tbl := table.New("Placeholder", "Value").WithWriter(c.diag)
		if c.color {
			tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
				line := fmt.Sprintf(format, vals...)
				return c.header.Render(strings.TrimSuffix(line, "\n")) + "\n"
			})
		}
		for _, name := range names {
			tbl.AddRow(name, values[name])
		}
		tbl.Print()
		return
	}

	fmt.Fprintln(c.diag, values)
}

// Copied reports a successful clipboard copy.
func (c *Console) Copied() {
	c.Statusf("The content has been copied to clipboard")
}

// Result writes the substituted text to the primary writer.
func (c *Console) Result(text string) error {
	_, err := fmt.Fprintln(c.out, text)
	return err
}

// QuestionStyle returns a function that styles prompt questions.
func (c *Console) QuestionStyle() func(string) string {
	return func(s string) string { return c.render(c.question, s) }
}
