package builtin

import (
	"context"

	"termfolio/pkg/consoletypes"
)

// ClearCommand empties the console history.
type ClearCommand struct{}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clear the console output"
}

// Usage returns the syntax for the clear command.
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Execute asks the dispatcher to clear history once this command returns.
func (c *ClearCommand) Execute(_ context.Context, _ []string, env consoletypes.Env) (string, error) {
	env.Controls.RequestClear()
	return "", nil
}
