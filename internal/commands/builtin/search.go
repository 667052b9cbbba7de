package builtin

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/fuzzy"
	"termfolio/pkg/consoletypes"
)

// SearchCommand finds commands by approximate name or description.
type SearchCommand struct{}

// Name returns the command name "search" for registration and lookup.
func (c *SearchCommand) Name() string {
	return "search"
}

// Description returns a brief description of what the search command does.
func (c *SearchCommand) Description() string {
	return "Find commands by approximate name or description"
}

// Usage returns the syntax for the search command.
func (c *SearchCommand) Usage() string {
	return "search <query>"
}

// Execute ranks visible commands against the query and prints the closest matches.
func (c *SearchCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return "", usageError(c)
	}

	docs := make([]fuzzy.Document, 0, len(env.Commands))
	for _, info := range env.Commands {
		if info.Hidden {
			continue
		}
		docs = append(docs, fuzzy.Document{Name: info.Name, Description: info.Description})
	}

	results := fuzzy.Search(query, docs, fuzzy.SearchThreshold, fuzzy.SearchLimit)
	if len(results) == 0 {
		return fmt.Sprintf("No commands match '%s'.", query), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Commands matching '%s':", query)
	for _, r := range results {
		fmt.Fprintf(&b, "\n  %s  %s", r.Document.Name, r.Document.Description)
	}
	return b.String(), nil
}
