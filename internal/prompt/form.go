package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// FormPrompter asks for each value with a huh input form.
type FormPrompter struct {
	question   string
	accessible bool
}

// NewFormPrompter creates a FormPrompter with the given question format.
func NewFormPrompter(question string, accessible bool) *FormPrompter {
	return &FormPrompter{question: question, accessible: accessible}
}

// Prompt runs a single-field form for name.
func (p *FormPrompter) Prompt(name string) (string, error) {
	var value string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(Question(p.question, name)).
				Value(&value),
		),
	).WithAccessible(p.accessible)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", &fillerrors.InputError{Name: name, Err: fillerrors.ErrCanceled}
		}
		return "", fmt.Errorf("form error: %w", err)
	}

	return value, nil
}
