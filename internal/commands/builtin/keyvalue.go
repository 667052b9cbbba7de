package builtin

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/storage"
	"termfolio/pkg/consoletypes"
)

// SetCommand stores a value under a key in the persistent store.
type SetCommand struct{}

// Name returns the command name "set" for registration and lookup.
func (c *SetCommand) Name() string {
	return "set"
}

// Description returns a brief description of what the set command does.
func (c *SetCommand) Description() string {
	return "Save a value under a key"
}

// Usage returns the syntax for the set command.
func (c *SetCommand) Usage() string {
	return "set <key> <value>"
}

// Execute stores the remaining arguments, joined with spaces, under the first.
func (c *SetCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	if len(args) < 2 {
		return "", usageError(c)
	}
	if env.Store == nil {
		return "", fmt.Errorf("no store configured")
	}

	key := args[0]
	value := strings.Join(args[1:], " ")
	if err := env.Store.Set(key, value); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", key, err)
	}
	return fmt.Sprintf("%s = %s", key, value), nil
}

// GetCommand reads a value from the persistent store, or lists the stored keys.
type GetCommand struct{}

// Name returns the command name "get" for registration and lookup.
func (c *GetCommand) Name() string {
	return "get"
}

// Description returns a brief description of what the get command does.
func (c *GetCommand) Description() string {
	return "Read a saved value, or list saved keys"
}

// Usage returns the syntax for the get command.
func (c *GetCommand) Usage() string {
	return "get [key]"
}

// Execute prints the value stored under the key. Without a key it lists every key.
func (c *GetCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	if len(args) > 1 {
		return "", usageError(c)
	}
	if env.Store == nil {
		return "", fmt.Errorf("no store configured")
	}

	if len(args) == 0 {
		keys, err := env.Store.Keys()
		if err != nil {
			return "", fmt.Errorf("failed to list keys: %w", err)
		}
		if len(keys) == 0 {
			return "Nothing saved yet.", nil
		}
		return strings.Join(keys, "\n"), nil
	}

	return storage.Require(env.Store, args[0])
}

// UnsetCommand removes a key from the persistent store.
type UnsetCommand struct{}

// Name returns the command name "unset" for registration and lookup.
func (c *UnsetCommand) Name() string {
	return "unset"
}

// Description returns a brief description of what the unset command does.
func (c *UnsetCommand) Description() string {
	return "Remove a saved value"
}

// Usage returns the syntax for the unset command.
func (c *UnsetCommand) Usage() string {
	return "unset <key>"
}

// Execute deletes the key. Removing an absent key is reported, not treated as a failure.
func (c *UnsetCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	if len(args) != 1 {
		return "", usageError(c)
	}
	if env.Store == nil {
		return "", fmt.Errorf("no store configured")
	}

	_, existed, err := env.Store.Get(args[0])
	if err != nil {
		return "", err
	}
	if !existed {
		return fmt.Sprintf("%s was not set.", args[0]), nil
	}
	if err := env.Store.Delete(args[0]); err != nil {
		return "", fmt.Errorf("failed to remove %s: %w", args[0], err)
	}
	return fmt.Sprintf("Removed %s.", args[0]), nil
}
