// Package prompt obtains replacement values for placeholders from the user.
package prompt

import (
	"fmt"
	"strings"

	fillerrors "github.com/chazuruo/fill/internal/errors"
)

// DefaultQuestion is the question shown before each answer is read.
// The single %s verb is replaced by the placeholder name.
const DefaultQuestion = "What is the value for %s?"

// Prompter asks for the value of one placeholder and returns the raw answer.
type Prompter interface {
	Prompt(name string) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(name string) (string, error)

// Prompt calls f(name).
func (f PrompterFunc) Prompt(name string) (string, error) { return f(name) }

// Resolve asks p for every name, in order, and returns the answers keyed by
// name with surrounding whitespace trimmed.
//
// If any prompt fails, Resolve returns an *errors.InputError and no values.
func Resolve(names []string, p Prompter) (map[string]string, error) {
	values := make(map[string]string, len(names))

	for _, name := range names {
		answer, err := p.Prompt(name)
		if err != nil {
			if _, ok := fillerrors.AsInputError(err); ok {
				return nil, err
			}
			return nil, &fillerrors.InputError{Name: name, Err: err}
		}
		values[name] = strings.TrimSpace(answer)
	}

	return values, nil
}

// Question formats the question for name using format, falling back to
// DefaultQuestion when format is empty.
func Question(format, name string) string {
	if format == "" {
		format = DefaultQuestion
	}
	return fmt.Sprintf(format, name)
}
