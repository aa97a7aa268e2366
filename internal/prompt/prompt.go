// Package prompt asks the user for a single line of input.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Prompter reads one answer from the user
type Prompter interface {
	Prompt(label string) (string, error)
}

// Func adapts a function to Prompter
type Func func(label string) (string, error)

// Prompt implements Prompter
func (f Func) Prompt(label string) (string, error) {
	return f(label)
}

// Readline prompts on the terminal
type Readline struct{}

// Prompt shows label and returns the trimmed line typed by the user.
// Ctrl+C and Ctrl+D count as an empty answer.
func (Readline) Prompt(label string) (string, error) {
	cyan := color.New(color.FgCyan).SprintFunc()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cyan(label),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return "", fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	line, err := rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}
