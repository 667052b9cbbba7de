package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

const maxUUIDCount = 20

// UUIDCommand generates random version 4 UUIDs.
type UUIDCommand struct{}

// Name returns the command name "uuid" for registration and lookup.
func (c *UUIDCommand) Name() string {
	return "uuid"
}

// Description returns a brief description of what the uuid command does.
func (c *UUIDCommand) Description() string {
	return "Generate random UUIDs"
}

// Usage returns the syntax for the uuid command.
func (c *UUIDCommand) Usage() string {
	return "uuid [--count n]"
}

// Execute prints --count UUIDs, one per line.
func (c *UUIDCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	line := parser.ParseArgs(args)
	count := line.Number("count", 1)
	if count < 1 || count > maxUUIDCount || count != float64(int(count)) {
		return "", fmt.Errorf("count must be a whole number between 1 and %d", maxUUIDCount)
	}

	ids := make([]string, int(count))
	for i := range ids {
		ids[i] = uuid.New().String()
	}
	return strings.Join(ids, "\n"), nil
}
