// Package consoletypes defines the shared types of the termfolio console engine.
// This file contains the command contract: the Command record held by the registry
// and the Handler interface every command body implements.
package consoletypes

import "context"

// Handler is the contract every command body implements.
// Args is the positional list after the command name with flags re-flattened
// (a true flag becomes "--name", a valued flag becomes "--name value").
// The returned text is appended to the history as-is; a returned error becomes
// an Error entry carrying the error message.
type Handler interface {
	Execute(ctx context.Context, args []string, env Env) (string, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx context.Context, args []string, env Env) (string, error)

// Execute calls f(ctx, args, env).
func (f HandlerFunc) Execute(ctx context.Context, args []string, env Env) (string, error) {
	return f(ctx, args, env)
}

// Command is a named, registered handler invoked by the first positional token of a line.
// Commands are immutable once handed to the registry.
type Command struct {
	// Name is matched case-insensitively and must be unique within a registry.
	Name string

	// Description is shown by help and searched by the fuzzy command search.
	Description string

	// Usage shows the argument syntax (e.g., "calc <expression>").
	Usage string

	// Handler executes the command.
	Handler Handler

	// Hidden commands resolve normally but are left out of help listings.
	Hidden bool
}

// CommandInfo is the read-only view of a command handed to handlers through Env.
type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Hidden      bool
}

// Info returns the read-only view of the command.
func (c Command) Info() CommandInfo {
	return CommandInfo{
		Name:        c.Name,
		Description: c.Description,
		Usage:       c.Usage,
		Hidden:      c.Hidden,
	}
}
