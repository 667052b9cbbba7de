package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"termfolio/pkg/consoletypes"
)

// DiffCommand shows a character-level diff between two strings.
type DiffCommand struct{}

// Name returns the command name "diff" for registration and lookup.
func (c *DiffCommand) Name() string {
	return "diff"
}

// Description returns a brief description of what the diff command does.
func (c *DiffCommand) Description() string {
	return "Compare two pieces of text"
}

// Usage returns the syntax for the diff command.
func (c *DiffCommand) Usage() string {
	return `diff "<old text>" "<new text>"`
}

// Execute marks deletions as [-text-] and insertions as {+text+}, then reports the
// edit distance.
func (c *DiffCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	if len(args) != 2 {
		return "", usageError(c)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(args[0], args[1], false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s-]", d.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "{+%s+}", d.Text)
		default:
			b.WriteString(d.Text)
		}
	}
	fmt.Fprintf(&b, "\nedit distance: %d", dmp.DiffLevenshtein(diffs))
	return b.String(), nil
}
