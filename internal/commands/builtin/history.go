package builtin

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"termfolio/internal/history"
	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

const defaultHistoryLimit = 20

// HistoryCommand lists recently submitted lines with how long ago they ran, or shows
// one of them with its output.
type HistoryCommand struct {
	deps Deps
}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "Show recently submitted commands"
}

// Usage returns the syntax for the history command.
func (c *HistoryCommand) Usage() string {
	return "history [--limit n] [index]"
}

// Execute lists the last submitted lines, oldest first. An index argument ("1" for
// the last line, ".1" for the first) shows that single line and its output instead.
// The line running this command is not yet recorded and so never appears.
func (c *HistoryCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	line := parser.ParseArgs(args)
	n := line.Number("limit", defaultHistoryLimit)
	if !(n >= 1) {
		return "", fmt.Errorf("limit must be positive")
	}
	limit := math.MaxInt32
	if n < math.MaxInt32 {
		limit = int(n)
	}
	if env.History == nil {
		return "No history yet.", nil
	}

	var submitted []consoletypes.HistoryEntry
	for _, entry := range env.History.Entries() {
		if entry.HasInput {
			submitted = append(submitted, entry)
		}
	}
	if len(submitted) == 0 {
		return "No history yet.", nil
	}

	if len(line.Positional) > 0 {
		return showEntry(submitted, line.Positional[0])
	}

	start := 0
	if len(submitted) > limit {
		start = len(submitted) - limit
	}

	now := c.deps.now()
	var b strings.Builder
	for i, entry := range submitted[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %s  (%s)", start+i+1, entry.Input, humanize.RelTime(entry.Timestamp, now, "ago", "from now"))
	}
	return b.String(), nil
}

func showEntry(submitted []consoletypes.HistoryEntry, raw string) (string, error) {
	idx, err := history.ParseIndex(raw, len(submitted))
	if err != nil {
		return "", err
	}
	entry := submitted[idx.Offset]
	out := fmt.Sprintf("%d (%s): %s", idx.Offset+1, idx.Description, entry.Input)
	if entry.Output != "" {
		out += "\n" + entry.Output
	}
	return out, nil
}
