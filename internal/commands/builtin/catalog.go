// Package builtin provides the commands available in every termfolio console.
// Each command is a small struct exposing its name, description and usage next to
// its Execute method; Catalog assembles them in help order.
package builtin

import (
	"fmt"
	"time"

	"termfolio/internal/commands"
	"termfolio/internal/console"
	"termfolio/internal/services"
	"termfolio/pkg/consoletypes"
)

// Profile is the portfolio owner's information shown by whoami and about.
type Profile struct {
	Name  string
	Title string
	About string
	Links map[string]string
}

// Deps carries the collaborators commands need beyond their Env.
type Deps struct {
	// Services must hold initialized markdown, trivia and HTTP services.
	Services *services.Registry

	Profile Profile

	// JokeURL is fetched by the joke command. Empty disables the command's network call.
	JokeURL string

	// Now is the clock used by date and history. Defaults to time.Now.
	Now func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// builtinCommand is implemented by every command in this package.
type builtinCommand interface {
	Name() string
	Description() string
	Usage() string
	consoletypes.Handler
}

// Catalog returns every built-in command in help order.
func Catalog(deps Deps) []consoletypes.Command {
	all := []builtinCommand{
		&HelpCommand{},
		&ClearCommand{},
		&ExitCommand{},
		&EchoCommand{},
		&HistoryCommand{deps: deps},
		&SearchCommand{},
		&TriviaCommand{deps: deps},
		&TriviaAnswerCommand{},
		&CalcCommand{},
		&UUIDCommand{},
		&DateCommand{deps: deps},
		&ColorCommand{},
		&HashCommand{},
		&DiffCommand{},
		&MarkdownCommand{deps: deps},
		&SetCommand{},
		&GetCommand{},
		&UnsetCommand{},
		&JokeCommand{deps: deps},
		&VersionCommand{},
		&WhoamiCommand{deps: deps},
		&AboutCommand{deps: deps},
	}

	out := make([]consoletypes.Command, 0, len(all))
	for _, c := range all {
		out = append(out, consoletypes.Command{
			Name:        c.Name(),
			Description: c.Description(),
			Usage:       c.Usage(),
			Handler:     c,
		})
	}
	return out
}

// NewRegistry builds the command registry for the built-in catalog.
func NewRegistry(deps Deps) (*commands.Registry, error) {
	registry, err := commands.NewRegistry(Catalog(deps)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build builtin registry: %w", err)
	}
	return registry, nil
}

// Interceptors returns the pre-dispatch interceptors the built-in command families install.
func Interceptors() []console.Interceptor {
	return []console.Interceptor{TriviaInterceptor{}}
}

func usageError(c builtinCommand) error {
	return fmt.Errorf("Usage: %s", c.Usage())
}
