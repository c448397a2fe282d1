package prompt

import (
	"bufio"
	"fmt"
	"io"
)

// LinePrompter asks questions on a writer and reads one line per answer.
type LinePrompter struct {
	r        *bufio.Reader
	w        io.Writer
	question string
	style    func(string) string
}

// NewLinePrompter creates a LinePrompter. question is a format with one %s
// verb; an empty question selects DefaultQuestion. style, when non-nil,
// decorates the question before it is written.
func NewLinePrompter(r io.Reader, w io.Writer, question string, style func(string) string) *LinePrompter {
	return &LinePrompter{
		r:        bufio.NewReader(r),
		w:        w,
		question: question,
		style:    style,
	}
}

// Prompt writes the question for name and reads the next line.
// A last line without a trailing newline is accepted; end of input with
// nothing read is an error.
func (p *LinePrompter) Prompt(name string) (string, error) {
	q := Question(p.question, name)
	if p.style != nil {
		q = p.style(q)
	}
	if _, err := fmt.Fprintln(p.w, q); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		return "", err
	}

	return line, nil
}
