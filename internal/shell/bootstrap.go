package shell

import (
	"fmt"

	"termfolio/internal/activation"
	"termfolio/internal/commands/builtin"
	"termfolio/internal/config"
	"termfolio/internal/console"
	"termfolio/internal/history"
	"termfolio/internal/logger"
	"termfolio/internal/services"
	"termfolio/internal/session"
	"termfolio/internal/storage"
	"termfolio/internal/testutils"
)

// InitializeServices registers and initializes the services behind the built-in
// commands. In test mode markdown renders without styling and trivia questions are
// asked in bank order so transcripts are reproducible.
func InitializeServices(cfg *config.Config, testMode bool) (*services.Registry, error) {
	registry := services.NewRegistry()

	style := cfg.MarkdownStyle
	if testMode {
		style = "notty"
	}
	trivia := services.NewTriviaService()

	for _, svc := range []services.Service{
		services.NewMarkdownService(style),
		trivia,
		services.NewHTTPRequestService(cfg.Network.Timeout, cfg.Network.RatePerMinute),
	} {
		if err := registry.RegisterService(svc); err != nil {
			return nil, err
		}
	}

	if err := registry.InitializeAll(); err != nil {
		return nil, err
	}

	if testMode {
		next := 0
		trivia.SetPicker(func(n int) int {
			i := next % n
			next++
			return i
		})
	}

	logger.Debug("Services initialized", "services", registry.Names())
	return registry, nil
}

// NewConsole assembles a console from configuration: the built-in catalog, the
// configured store and activation sequence, and deterministic IDs in test mode.
// The returned cleanup releases the store.
func NewConsole(cfg *config.Config, registry *services.Registry, testMode bool) (*console.Console, func(), error) {
	store, err := storage.New(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s store: %w", cfg.Storage.Driver, err)
	}
	cleanup := func() { storage.Close(store) }

	commands, err := builtin.NewRegistry(builtin.Deps{
		Services: registry,
		Profile: builtin.Profile{
			Name:  cfg.Profile.Name,
			Title: cfg.Profile.Title,
			About: cfg.Profile.About,
			Links: cfg.Profile.Links,
		},
		JokeURL: cfg.Network.JokeURL,
		Now:     testutils.Clock(testMode),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	c, err := console.New(console.Options{
		Registry: commands,
		Session:  session.NewState(),
		Store:    store,
		History: history.NewStore(
			history.WithIDGenerator(testutils.IDGenerator(testMode)),
			history.WithClock(testutils.Clock(testMode)),
		),
		Recall:       history.NewRecall(cfg.RecallCapacity),
		Detector:     activation.NewDetector(cfg.Activation.Sequence, cfg.Activation.Mode),
		Interceptors: builtin.Interceptors(),
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	logger.Debug("Console ready", "commands", commands.Len(), "store", cfg.Storage.Driver, "mode", cfg.Activation.Mode)
	return c, cleanup, nil
}
