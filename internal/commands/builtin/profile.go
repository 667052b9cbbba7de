package builtin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"termfolio/internal/data/embedded"
	"termfolio/internal/version"
	"termfolio/pkg/consoletypes"
)

// VersionCommand prints build information.
type VersionCommand struct{}

// Name returns the command name "version" for registration and lookup.
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string {
	return "Show version information"
}

// Usage returns the syntax for the version command.
func (c *VersionCommand) Usage() string {
	return "version"
}

// Execute prints the formatted version.
func (c *VersionCommand) Execute(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
	return version.GetFormattedVersion(), nil
}

// WhoamiCommand prints the portfolio owner's name and title.
type WhoamiCommand struct {
	deps Deps
}

// Name returns the command name "whoami" for registration and lookup.
func (c *WhoamiCommand) Name() string {
	return "whoami"
}

// Description returns a brief description of what the whoami command does.
func (c *WhoamiCommand) Description() string {
	return "Show who this portfolio belongs to"
}

// Usage returns the syntax for the whoami command.
func (c *WhoamiCommand) Usage() string {
	return "whoami"
}

// Execute prints "name - title", whichever parts are configured.
func (c *WhoamiCommand) Execute(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
	p := c.deps.Profile
	switch {
	case p.Name != "" && p.Title != "":
		return fmt.Sprintf("%s - %s", p.Name, p.Title), nil
	case p.Name != "":
		return p.Name, nil
	default:
		return "guest", nil
	}
}

// AboutCommand renders the profile's about text and links.
type AboutCommand struct {
	deps Deps
}

// Name returns the command name "about" for registration and lookup.
func (c *AboutCommand) Name() string {
	return "about"
}

// Description returns a brief description of what the about command does.
func (c *AboutCommand) Description() string {
	return "About this portfolio"
}

// Usage returns the syntax for the about command.
func (c *AboutCommand) Usage() string {
	return "about"
}

// Execute renders the configured about text, or the built-in one, followed by links.
func (c *AboutCommand) Execute(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
	about := strings.TrimSpace(c.deps.Profile.About)
	if about == "" {
		about = strings.TrimSpace(string(embedded.AboutData))
	}

	if len(c.deps.Profile.Links) > 0 {
		names := make([]string, 0, len(c.deps.Profile.Links))
		for name := range c.deps.Profile.Links {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		b.WriteString(about)
		b.WriteString("\n\n## Links\n")
		for _, name := range names {
			fmt.Fprintf(&b, "\n- %s: %s", name, c.deps.Profile.Links[name])
		}
		about = b.String()
	}

	return renderMarkdown(c.deps, about)
}
