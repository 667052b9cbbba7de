package builtin

import (
	"context"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"termfolio/internal/fuzzy"
	"termfolio/pkg/consoletypes"
)

// HelpCommand lists the available commands, or shows usage for one of them.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "List commands or show usage for one command"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help [command]"
}

// Execute lists every visible command, or describes the command named in args.
func (c *HelpCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	if len(args) > 0 {
		return c.showCommand(args[0], env.Commands)
	}
	return c.showAll(env.Commands), nil
}

func (c *HelpCommand) showAll(infos []consoletypes.CommandInfo) string {
	visible := make([]consoletypes.CommandInfo, 0, len(infos))
	width := 0
	for _, info := range infos {
		if info.Hidden {
			continue
		}
		visible = append(visible, info)
		if w := runewidth.StringWidth(info.Name); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, info := range visible {
		fmt.Fprintf(&b, "  %s  %s\n", runewidth.FillRight(info.Name, width), info.Description)
	}
	b.WriteString("\nType 'help <command>' for usage.")
	return b.String()
}

func (c *HelpCommand) showCommand(name string, infos []consoletypes.CommandInfo) (string, error) {
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if strings.EqualFold(info.Name, name) {
			return fmt.Sprintf("%s - %s\nUsage: %s", info.Name, info.Description, info.Usage), nil
		}
		if !info.Hidden {
			names = append(names, info.Name)
		}
	}

	if best, ok := fuzzy.Best(name, names, fuzzy.SuggestThreshold); ok {
		return "", fmt.Errorf("no help for '%s'. Did you mean '%s'?", name, best.Value)
	}
	return "", fmt.Errorf("no help for '%s'", name)
}
