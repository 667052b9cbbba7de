package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
	"termfolio/internal/services"
	"termfolio/internal/shell"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(viper.New(), config.Options{TestMode: true})
	require.NoError(t, err)
	return cfg
}

func TestRenderLanding_Default(t *testing.T) {
	cfg := testConfig(t)
	registry, err := shell.InitializeServices(cfg, true)
	require.NoError(t, err)

	landing, err := renderLanding(registry, cfg)
	require.NoError(t, err)
	assert.Contains(t, landing, "termfolio")
	assert.Contains(t, landing, "help")
}

func TestRenderLanding_Profile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile.Name = "Ada Example"
	cfg.Profile.Title = "Engineer"
	cfg.Profile.About = "Builds things."

	registry, err := shell.InitializeServices(cfg, true)
	require.NoError(t, err)

	landing, err := renderLanding(registry, cfg)
	require.NoError(t, err)
	assert.Contains(t, landing, "Ada Example")
	assert.Contains(t, landing, "Builds things.")
}

func TestRenderLanding_NoMarkdownService(t *testing.T) {
	cfg := testConfig(t)
	cfg.Profile.About = "plain about"

	landing, err := renderLanding(services.NewRegistry(), cfg)
	assert.Error(t, err)
	assert.Equal(t, "plain about", landing)
}
