package builtin

import (
	"context"
	"strings"

	"termfolio/pkg/consoletypes"
)

// EchoCommand prints its arguments.
type EchoCommand struct{}

// Name returns the command name "echo" for registration and lookup.
func (c *EchoCommand) Name() string {
	return "echo"
}

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string {
	return "Print the given text"
}

// Usage returns the syntax for the echo command.
func (c *EchoCommand) Usage() string {
	return "echo <text>"
}

// Execute joins args with single spaces. Flags are printed as typed.
func (c *EchoCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	if len(args) == 0 {
		return "", usageError(c)
	}
	return strings.Join(args, " "), nil
}
