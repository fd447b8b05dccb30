package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
)

// Prompter asks the user for one value at a time.
type Prompter interface {
	Input(title, placeholder string) (string, error)
	Confirm(title string) (bool, error)
}

type huhPrompter struct{}

// NewPrompter returns a Prompter backed by interactive terminal forms.
func NewPrompter() Prompter {
	return huhPrompter{}
}

func (huhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return value, nil
}

func (huhPrompter) Confirm(title string) (bool, error) {
	var confirmed bool
	confirm := huh.NewConfirm().
		Title(title).
		Affirmative("yes").
		Negative("no").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// IsInteractive returns true if stdin is a terminal (not piped)
func IsInteractive() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
