package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/pkg/consoletypes"
)

func mockCommand(name string) consoletypes.Command {
	return consoletypes.Command{
		Name:        name,
		Description: "Mock command: " + name,
		Usage:       name,
		Handler: consoletypes.HandlerFunc(func(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
			return name + " ran", nil
		}),
	}
}

func TestNewRegistry_PreservesOrder(t *testing.T) {
	registry, err := NewRegistry(mockCommand("help"), mockCommand("Calc"), mockCommand("exit"))
	require.NoError(t, err)

	assert.Equal(t, 3, registry.Len())
	assert.Equal(t, []string{"help", "calc", "exit"}, registry.Names())

	all := registry.All()
	require.Len(t, all, 3)
	assert.Equal(t, "Calc", all[1].Name)
}

func TestNewRegistry_Validation(t *testing.T) {
	tests := []struct {
		name     string
		commands []consoletypes.Command
		target   error
	}{
		{
			name:     "empty name",
			commands: []consoletypes.Command{mockCommand("")},
			target:   ErrEmptyName,
		},
		{
			name:     "blank name",
			commands: []consoletypes.Command{mockCommand("   ")},
			target:   ErrEmptyName,
		},
		{
			name:     "duplicate ignoring case",
			commands: []consoletypes.Command{mockCommand("calc"), mockCommand("CALC")},
			target:   ErrDuplicateCommand,
		},
		{
			name:     "nil handler",
			commands: []consoletypes.Command{{Name: "broken"}},
			target:   ErrNilHandler,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			registry, err := NewRegistry(tt.commands...)
			assert.Nil(t, registry)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestNewRegistry_RejectsWhitespaceInName(t *testing.T) {
	_, err := NewRegistry(mockCommand("two words"))
	assert.Error(t, err)
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	registry := MustNewRegistry(mockCommand("trivia-answer"))

	for _, name := range []string{"trivia-answer", "TRIVIA-ANSWER", "Trivia-Answer"} {
		cmd, ok := registry.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, "trivia-answer", cmd.Name)
	}

	_, ok := registry.Lookup("trivia")
	assert.False(t, ok)
	_, ok = registry.Lookup("nope")
	assert.False(t, ok)
}

func TestRegistry_AllReturnsCopy(t *testing.T) {
	registry := MustNewRegistry(mockCommand("help"))

	all := registry.All()
	all[0].Name = "mutated"

	cmd, ok := registry.Lookup("help")
	require.True(t, ok)
	assert.Equal(t, "help", cmd.Name)
}

func TestRegistry_Infos(t *testing.T) {
	hidden := mockCommand("secret")
	hidden.Hidden = true
	registry := MustNewRegistry(mockCommand("help"), hidden)

	infos := registry.Infos()
	require.Len(t, infos, 2)
	assert.Equal(t, "Mock command: help", infos[0].Description)
	assert.True(t, infos[1].Hidden)
}

func TestMustNewRegistry_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustNewRegistry(mockCommand("a"), mockCommand("A"))
	})
}
