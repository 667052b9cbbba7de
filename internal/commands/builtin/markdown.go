package builtin

import (
	"context"
	"fmt"
	"strings"

	"termfolio/internal/parser"
	"termfolio/pkg/consoletypes"
)

// MarkdownCommand renders markdown text for the terminal.
type MarkdownCommand struct {
	deps Deps
}

// Name returns the command name "md" for registration and lookup.
func (c *MarkdownCommand) Name() string {
	return "md"
}

// Description returns a brief description of what the md command does.
func (c *MarkdownCommand) Description() string {
	return "Render markdown text"
}

// Usage returns the syntax for the md command.
func (c *MarkdownCommand) Usage() string {
	return `md "<markdown>"`
}

// Execute renders the arguments as markdown. Backslash escapes such as "\n" and "\t"
// are interpreted first so multi-line markdown fits on one console line.
func (c *MarkdownCommand) Execute(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return "", usageError(c)
	}
	return renderMarkdown(c.deps, parser.InterpretEscapes(text))
}

func renderMarkdown(deps Deps, text string) (string, error) {
	if deps.Services == nil {
		return text, nil
	}
	renderer, err := deps.Services.Markdown()
	if err != nil {
		return "", fmt.Errorf("markdown rendering is not available: %w", err)
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(rendered, "\n"), nil
}
