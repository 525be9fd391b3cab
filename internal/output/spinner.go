package output

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RunWithSpinner executes action while a spinner titled title is shown.
// Without a TTY the action runs directly. Returns the action's error if any.
//
// The action must not read from stdin: the spinner owns the terminal.
func RunWithSpinner(ctx context.Context, title string, action func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !IsTTY() {
		return action()
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Action(func() { actionErr = action() }).
		Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}
	return actionErr
}
