// Package commands provides the command registry for the termfolio console.
// A Registry is built once at startup from an ordered list of commands and never
// changes afterwards; independent consoles and tests each build their own.
package commands

import (
	"errors"
	"fmt"
	"strings"

	"termfolio/pkg/consoletypes"
)

var (
	// ErrEmptyName is returned when a command has no name.
	ErrEmptyName = errors.New("command name cannot be empty")

	// ErrDuplicateCommand is returned when two commands share a name, ignoring case.
	ErrDuplicateCommand = errors.New("command already registered")

	// ErrNilHandler is returned when a command has no handler.
	ErrNilHandler = errors.New("command handler cannot be nil")
)

// Registry is a fixed, ordered collection of commands with case-insensitive lookup.
// It is safe for concurrent use because it is never mutated after construction.
type Registry struct {
	commands []consoletypes.Command
	index    map[string]int
}

// NewRegistry builds a registry from cmds, preserving their order.
// Returns an error if a name is empty or blank, a handler is nil, or two names collide
// case-insensitively.
func NewRegistry(cmds ...consoletypes.Command) (*Registry, error) {
	r := &Registry{
		commands: make([]consoletypes.Command, 0, len(cmds)),
		index:    make(map[string]int, len(cmds)),
	}

	for _, cmd := range cmds {
		key := normalize(cmd.Name)
		if key == "" {
			return nil, ErrEmptyName
		}
		if strings.ContainsFunc(key, isSpace) {
			return nil, fmt.Errorf("command name %q cannot contain whitespace", cmd.Name)
		}
		if cmd.Handler == nil {
			return nil, fmt.Errorf("%s: %w", cmd.Name, ErrNilHandler)
		}
		if _, exists := r.index[key]; exists {
			return nil, fmt.Errorf("%s: %w", cmd.Name, ErrDuplicateCommand)
		}

		r.index[key] = len(r.commands)
		r.commands = append(r.commands, cmd)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// It is intended for fixed catalogs assembled at program start.
func MustNewRegistry(cmds ...consoletypes.Command) *Registry {
	r, err := NewRegistry(cmds...)
	if err != nil {
		panic(fmt.Sprintf("failed to build command registry: %v", err))
	}
	return r
}

// Lookup retrieves a command by exact, case-insensitive name.
func (r *Registry) Lookup(name string) (consoletypes.Command, bool) {
	i, ok := r.index[normalize(name)]
	if !ok {
		return consoletypes.Command{}, false
	}
	return r.commands[i], true
}

// All returns the commands in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) All() []consoletypes.Command {
	out := make([]consoletypes.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Infos returns the read-only view of every command in registration order.
func (r *Registry) Infos() []consoletypes.CommandInfo {
	out := make([]consoletypes.CommandInfo, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd.Info())
	}
	return out
}

// Names returns the lowercase command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, normalize(cmd.Name))
	}
	return out
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
