package builtin

import (
	"context"

	"termfolio/pkg/consoletypes"
)

// ExitCommand closes the console through the same routine as the Escape key.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Close the console"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Execute requests that the console close after this entry is recorded.
func (c *ExitCommand) Execute(_ context.Context, _ []string, env consoletypes.Env) (string, error) {
	env.Controls.RequestClose()
	return "Closing console. Enter the sequence again to reopen it.", nil
}
