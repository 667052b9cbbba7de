package main

import (
	"strings"

	"termfolio/internal/config"
	"termfolio/internal/data/embedded"
	"termfolio/internal/services"
)

// renderLanding renders the page shown while the console is closed: the configured
// about text, or the embedded default, through the markdown service. The raw
// markdown is returned alongside any rendering error.
func renderLanding(registry *services.Registry, cfg *config.Config) (string, error) {
	text := strings.TrimSpace(cfg.Profile.About)
	if text == "" {
		text = strings.TrimSpace(string(embedded.AboutData))
	}
	if cfg.Profile.Name != "" {
		heading := "# " + cfg.Profile.Name
		if cfg.Profile.Title != "" {
			heading += "\n\n_" + cfg.Profile.Title + "_"
		}
		text = heading + "\n\n" + text
	}

	md, err := registry.Markdown()
	if err != nil {
		return text, err
	}
	rendered, err := md.Render(text)
	if err != nil {
		return text, err
	}
	return strings.TrimRight(rendered, "\n"), nil
}
