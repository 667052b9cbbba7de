package builtin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"termfolio/pkg/consoletypes"
)

// jokePayload covers the two common joke API shapes: single-line and setup/punchline.
type jokePayload struct {
	Joke      string `json:"joke"`
	Setup     string `json:"setup"`
	Punchline string `json:"punchline"`
	Delivery  string `json:"delivery"`
}

// JokeCommand fetches a joke from a public API.
type JokeCommand struct {
	deps Deps
}

// Name returns the command name "joke" for registration and lookup.
func (c *JokeCommand) Name() string {
	return "joke"
}

// Description returns a brief description of what the joke command does.
func (c *JokeCommand) Description() string {
	return "Tell a joke fetched from the web"
}

// Usage returns the syntax for the joke command.
func (c *JokeCommand) Usage() string {
	return "joke"
}

// Execute fetches and formats one joke.
func (c *JokeCommand) Execute(ctx context.Context, _ []string, _ consoletypes.Env) (string, error) {
	if c.deps.JokeURL == "" || c.deps.Services == nil {
		return "", fmt.Errorf("joke service is not configured")
	}
	client, err := c.deps.Services.HTTP()
	if err != nil {
		return "", fmt.Errorf("joke service is not available: %w", err)
	}

	resp, err := client.Get(ctx, c.deps.JokeURL, map[string]string{"Accept": "application/json"})
	if err != nil {
		return "", fmt.Errorf("could not fetch a joke: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("could not fetch a joke: %s", resp.Status)
	}

	var payload jokePayload
	if err := json.Unmarshal([]byte(resp.Body), &payload); err != nil {
		return "", fmt.Errorf("unexpected joke response: %w", err)
	}

	joke := plainText(payload.Joke)
	setup := plainText(payload.Setup)
	punchline := plainText(payload.Punchline)
	if punchline == "" {
		punchline = plainText(payload.Delivery)
	}
	switch {
	case joke != "":
		return joke, nil
	case setup != "" && punchline != "":
		return setup + "\n" + punchline, nil
	default:
		return "", fmt.Errorf("unexpected joke response: no joke text")
	}
}

// plainText drops terminal escape sequences from remote text so a response cannot
// retitle, clear or recolor the terminal.
func plainText(s string) string {
	return strings.TrimSpace(ansi.Strip(s))
}
