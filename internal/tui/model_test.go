package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/activation"
	"termfolio/internal/commands"
	"termfolio/internal/console"
	"termfolio/pkg/consoletypes"
)

func newConsole(t *testing.T, extra ...consoletypes.Command) *console.Console {
	t.Helper()
	registry := commands.MustNewRegistry(append([]consoletypes.Command{
		consoletypes.Command{
			Name:        "echo",
			Description: "Print text",
			Usage:       "echo <text>",
			Handler: consoletypes.HandlerFunc(func(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
				if len(args) == 0 {
					return "", nil
				}
				return args[0], nil
			}),
		},
		consoletypes.Command{
			Name:        "exit",
			Description: "Close",
			Usage:       "exit",
			Handler: consoletypes.HandlerFunc(func(_ context.Context, _ []string, env consoletypes.Env) (string, error) {
				env.Controls.RequestClose()
				return "bye", nil
			}),
		},
	}, extra...)...)
	c, err := console.New(console.Options{
		Registry: registry,
		Detector: activation.NewDetector([]string{"KeyO", "KeyK"}, activation.ModeRolling),
	})
	require.NoError(t, err)
	return c
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds msg to the model. Commands are dropped so cursor blinking never
// blocks the test; Enter goes through enter instead.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

// enter submits the input and delivers the submit result synchronously.
func enter(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	result, ok := cmd().(submittedMsg)
	require.True(t, ok)
	next, _ = next.(Model).Update(result)
	return next.(Model)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		if r == ' ' {
			m = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m = press(t, m, runes(string(r)))
	}
	return m
}

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected consoletypes.KeyEvent
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, consoletypes.KeyEvent{Code: consoletypes.CodeArrowUp}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, consoletypes.KeyEvent{Code: consoletypes.CodeEscape}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, consoletypes.KeyEvent{Code: consoletypes.CodeEnter}},
		{"lower letter", runes("b"), consoletypes.KeyEvent{Code: "KeyB", Key: "b"}},
		{"upper letter", runes("A"), consoletypes.KeyEvent{Code: "KeyA", Key: "A"}},
		{"digit", runes("7"), consoletypes.KeyEvent{Code: "Digit7", Key: "7"}},
		{"punctuation", runes("?"), consoletypes.KeyEvent{Key: "?"}},
		{"paste", runes("hello"), consoletypes.KeyEvent{Key: "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyEvent(tt.msg))
		})
	}
}

func TestModel_LandingUntilActivated(t *testing.T) {
	c := newConsole(t)
	m := New(c, Options{Prompt: "> ", Landing: "Welcome to my portfolio"})

	assert.Contains(t, m.View(), "Welcome to my portfolio")

	m = press(t, m, runes("o"))
	assert.False(t, c.IsOpen())
	m = press(t, m, runes("k"))
	require.True(t, c.IsOpen())

	assert.Contains(t, m.View(), console.ActivationMessage)
	assert.NotContains(t, m.View(), "Welcome to my portfolio")
}

func TestModel_SubmitAndRecall(t *testing.T) {
	c := newConsole(t)
	c.Open()
	m := New(c, Options{Prompt: "> "})

	m = typeText(t, m, "echo hello")
	assert.Equal(t, "echo hello", m.input.Value())

	m = enter(t, m)
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "> echo hello")
	assert.Contains(t, m.View(), "hello")

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "echo hello", m.input.Value())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.input.Value())
}

func TestModel_EscapeAndExitClose(t *testing.T) {
	c := newConsole(t)
	c.Open()
	m := New(c, Options{Prompt: "> ", Landing: "landing"})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, c.IsOpen())
	assert.Contains(t, m.View(), "landing")

	m = typeText(t, m, "ok")
	require.True(t, c.IsOpen())
	m = typeText(t, m, "exit")
	m = enter(t, m)
	assert.False(t, c.IsOpen())
	assert.Contains(t, m.View(), "landing")
}

func TestModel_Resize(t *testing.T) {
	c := newConsole(t)
	c.Open()
	m := New(c, Options{Prompt: "> "})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	assert.Equal(t, 120, m.viewport.Width)
	assert.Equal(t, 40-inputHeight, m.viewport.Height)
}

func TestModel_BusyStatus(t *testing.T) {
	c := newConsole(t)
	c.Open()
	m := New(c, Options{Prompt: "> "})

	next, _ := m.Update(submittedMsg{err: console.ErrBusy})
	m = next.(Model)

	assert.Contains(t, m.View(), "Still working")
}

func TestModel_BusyStatus_KeepsRestoredLine(t *testing.T) {
	c := newConsole(t)
	c.Open()
	m := New(c, Options{Prompt: "> "})

	next, _ := m.Update(submittedMsg{line: "echo again", err: console.ErrBusy})
	m = next.(Model)

	assert.Equal(t, "echo again", m.input.Value())
	assert.Equal(t, "echo again", c.Input())
}

func TestModel_TypeAheadWhileBusy(t *testing.T) {
	release := make(chan struct{})
	slow := consoletypes.Command{
		Name:        "slow",
		Description: "Wait until released",
		Usage:       "slow",
		Handler: consoletypes.HandlerFunc(func(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
			<-release
			return "done", nil
		}),
	}
	c := newConsole(t, slow)
	c.Open()
	m := New(c, Options{Prompt: "> "})

	m = typeText(t, m, "slow")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m = next.(Model)

	results := make(chan tea.Msg, 1)
	go func() { results <- cmd() }()
	require.Eventually(t, c.Busy, time.Second, 5*time.Millisecond)

	m = typeText(t, m, "echo typed ahead")
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	assert.Nil(t, cmd, "no second dispatch while busy")
	assert.Equal(t, "echo typed ahead", m.input.Value())
	assert.Contains(t, m.View(), "Still working")

	close(release)
	next, _ = m.Update(<-results)
	m = next.(Model)
	assert.Equal(t, "echo typed ahead", m.input.Value())

	m = enter(t, m)
	assert.Empty(t, m.input.Value())
	assert.Equal(t, []string{"slow", "echo typed ahead"}, c.Recall())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "echo typed ahead", entries[1].Input)
	assert.Equal(t, "typed", entries[1].Output)
}
