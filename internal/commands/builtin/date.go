package builtin

import (
	"context"
	"strconv"
	"strings"
	"time"

	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

// namedLayouts maps friendly --format names to Go layouts.
var namedLayouts = map[string]string{
	"rfc3339": time.RFC3339,
	"rfc1123": time.RFC1123,
	"kitchen": time.Kitchen,
	"date":    time.DateOnly,
	"time":    time.TimeOnly,
}

// DateCommand prints the current date and time.
type DateCommand struct {
	deps Deps
}

// Name returns the command name "date" for registration and lookup.
func (c *DateCommand) Name() string {
	return "date"
}

// Description returns a brief description of what the date command does.
func (c *DateCommand) Description() string {
	return "Show the current date and time"
}

// Usage returns the syntax for the date command.
func (c *DateCommand) Usage() string {
	return "date [--utc] [--format rfc3339|rfc1123|kitchen|date|time|unix|<layout>]"
}

// Execute formats the current time. --format accepts a named layout, "unix", or a
// Go reference-time layout.
func (c *DateCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	line := parser.ParseArgs(args)

	now := c.deps.now()
	if line.Bool("utc") {
		now = now.UTC()
	}

	format := line.String("format", "rfc1123")
	if strings.EqualFold(format, "unix") {
		return strconv.FormatInt(now.Unix(), 10), nil
	}
	if layout, ok := namedLayouts[strings.ToLower(format)]; ok {
		format = layout
	}
	return now.Format(format), nil
}
