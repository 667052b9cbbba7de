package console

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/activation"
	"termfolio/internal/commands"
	"termfolio/internal/logger"
	"termfolio/internal/parser"
	"termfolio/internal/session"
	"termfolio/pkg/consoletypes"
)

func handler(fn func(args []string, env consoletypes.Env) (string, error)) consoletypes.Handler {
	return consoletypes.HandlerFunc(func(_ context.Context, args []string, env consoletypes.Env) (string, error) {
		return fn(args, env)
	})
}

func testRegistry(t *testing.T, extra ...consoletypes.Command) *commands.Registry {
	t.Helper()
	cmds := []consoletypes.Command{
		{Name: "help", Handler: handler(func(_ []string, _ consoletypes.Env) (string, error) { return "help text", nil })},
		{Name: "calc", Handler: handler(func(args []string, _ consoletypes.Env) (string, error) { return strings.Join(args, "|"), nil })},
		{Name: "echo", Handler: handler(func(args []string, _ consoletypes.Env) (string, error) { return strings.Join(args, " "), nil })},
		{Name: "fail", Handler: handler(func(_ []string, _ consoletypes.Env) (string, error) { return "", errors.New("network unreachable") })},
		{Name: "boom", Handler: handler(func(_ []string, _ consoletypes.Env) (string, error) { panic("kaboom") })},
		{Name: "clear", Handler: handler(func(_ []string, env consoletypes.Env) (string, error) {
			env.Controls.RequestClear()
			return "", nil
		})},
		{Name: "exit", Handler: handler(func(_ []string, env consoletypes.Env) (string, error) {
			env.Controls.RequestClose()
			return "Goodbye", nil
		})},
		{Name: "answer", Handler: handler(func(args []string, env consoletypes.Env) (string, error) {
			if len(args) != 1 {
				return "", errors.New("usage: answer <letter>")
			}
			result := env.Session.Consume(args[0])
			switch result.Status {
			case consoletypes.AnswerInvalid:
				return "", fmt.Errorf("%w: %s", session.ErrInvalidAnswer, args[0])
			case consoletypes.AnswerNothingPending:
				return "nothing pending", nil
			case consoletypes.AnswerCorrect:
				return "correct", nil
			default:
				return "wrong, it was " + result.CorrectLetter, nil
			}
		})},
	}
	registry, err := commands.NewRegistry(append(cmds, extra...)...)
	require.NoError(t, err)
	return registry
}

func answerInterceptor() Interceptor {
	return InterceptorFunc(func(raw string, _ parser.ParsedLine, env consoletypes.Env) (Route, bool) {
		letter := strings.TrimSpace(raw)
		if _, pending := env.Session.Pending(); !pending || !session.IsAnswerLetter(letter) {
			return Route{}, false
		}
		return Route{Command: "answer", Args: []string{letter}}, true
	})
}

func newOpenConsole(t *testing.T, opts Options) *Console {
	t.Helper()
	if opts.Registry == nil {
		opts.Registry = testRegistry(t)
	}
	c, err := New(opts)
	require.NoError(t, err)
	c.Open()
	return c
}

func TestNew_RequiresRegistry(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestSubmit_EmptyInputRecordsNothing(t *testing.T) {
	c := newOpenConsole(t, Options{})

	for _, line := range []string{"", "   ", "\t"} {
		_, ok, err := c.Submit(context.Background(), line)
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Empty(t, c.Entries())
	assert.Empty(t, c.Recall())
}

func TestSubmit_DuplicateLineDedupesRecallNotHistory(t *testing.T) {
	c := newOpenConsole(t, Options{})

	for i := 0; i < 2; i++ {
		_, ok, err := c.Submit(context.Background(), "help")
		require.NoError(t, err)
		require.True(t, ok)
	}

	assert.Equal(t, []string{"help"}, c.Recall())
	assert.Len(t, c.Entries(), 2)
}

func TestSubmit_ArgsAreFlattened(t *testing.T) {
	c := newOpenConsole(t, Options{})

	entry, _, err := c.Submit(context.Background(), `calc 1 --verbose --id 007 "two words"`)
	require.NoError(t, err)

	assert.Equal(t, consoletypes.OutcomeOK, entry.Outcome)
	assert.Equal(t, "1|two words|--verbose|--id|007", entry.Output)
	assert.Equal(t, `calc 1 --verbose --id 007 "two words"`, entry.Input)
	assert.True(t, entry.HasInput)
}

func TestSubmit_LookupIgnoresCase(t *testing.T) {
	c := newOpenConsole(t, Options{})

	entry, _, err := c.Submit(context.Background(), "ECHO hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", entry.Output)
}

func TestSubmit_SuggestionAndUnknown(t *testing.T) {
	c := newOpenConsole(t, Options{})

	suggested, _, err := c.Submit(context.Background(), "calcx")
	require.NoError(t, err)
	assert.Equal(t, consoletypes.OutcomeSuggested, suggested.Outcome)
	assert.Equal(t, consoletypes.KindInfo, suggested.Kind)
	assert.Equal(t, "calc", suggested.Suggestion)
	assert.Contains(t, suggested.Output, "'calc'")

	unknown, _, err := c.Submit(context.Background(), "zzzzz")
	require.NoError(t, err)
	assert.Equal(t, consoletypes.OutcomeUnknown, unknown.Outcome)
	assert.Equal(t, consoletypes.KindError, unknown.Kind)
	assert.Empty(t, unknown.Suggestion)
	assert.NotContains(t, unknown.Output, "Did you mean")
}

func TestSubmit_HandlerFailures(t *testing.T) {
	c := newOpenConsole(t, Options{})

	failed, _, err := c.Submit(context.Background(), "fail")
	require.NoError(t, err)
	assert.Equal(t, consoletypes.KindError, failed.Kind)
	assert.Equal(t, consoletypes.OutcomeHandlerFailure, failed.Outcome)
	assert.Equal(t, "network unreachable", failed.Output)

	panicked, _, err := c.Submit(context.Background(), "boom")
	require.NoError(t, err)
	assert.Equal(t, consoletypes.OutcomeHandlerFailure, panicked.Outcome)
	assert.Contains(t, panicked.Output, "kaboom")

	assert.Len(t, c.Entries(), 2)
}

func TestSubmit_AnswerInterceptor(t *testing.T) {
	state := session.NewState()
	c := newOpenConsole(t, Options{Session: state, Interceptors: []Interceptor{answerInterceptor()}})

	require.NoError(t, state.Set(consoletypes.PendingQuestion{
		Prompt:       "Pick",
		Choices:      []string{"w", "x", "y", "z"},
		CorrectIndex: 2,
	}))

	invalid, _, err := c.Submit(context.Background(), "answer E")
	require.NoError(t, err)
	assert.Equal(t, consoletypes.OutcomeInvalidAnswer, invalid.Outcome)
	assert.True(t, state.HasPending())

	correct, _, err := c.Submit(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, "correct", correct.Output)
	assert.False(t, state.HasPending())

	// With nothing pending the bare letter is no longer claimed and resolves normally.
	again, _, err := c.Submit(context.Background(), "c")
	require.NoError(t, err)
	assert.NotEqual(t, consoletypes.OutcomeOK, again.Outcome)

	explicit, _, err := c.Submit(context.Background(), "answer c")
	require.NoError(t, err)
	assert.Equal(t, "nothing pending", explicit.Output)
}

func TestSubmit_ClearEmptiesHistoryFirst(t *testing.T) {
	c := newOpenConsole(t, Options{})

	_, _, _ = c.Submit(context.Background(), "help")
	_, _, _ = c.Submit(context.Background(), "echo hi")
	entry, ok, err := c.Submit(context.Background(), "clear")
	require.NoError(t, err)
	require.True(t, ok)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, entry.ID, entries[0].ID)
	assert.Equal(t, "clear", entries[0].Input)
}

func TestSubmit_ExitClosesAfterRecording(t *testing.T) {
	c := newOpenConsole(t, Options{})
	closed := 0
	c.OnClose(func() { closed++ })

	entry, _, err := c.Submit(context.Background(), "exit")
	require.NoError(t, err)

	assert.Equal(t, "Goodbye", entry.Output)
	assert.False(t, c.IsOpen())
	assert.Equal(t, 1, closed)

	_, _, err = c.Submit(context.Background(), "help")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestSubmit_BusyRejectsSecondSubmission(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	slow := consoletypes.Command{
		Name: "slow",
		Handler: consoletypes.HandlerFunc(func(_ context.Context, _ []string, _ consoletypes.Env) (string, error) {
			close(started)
			<-release
			return "done", nil
		}),
	}
	c := newOpenConsole(t, Options{Registry: testRegistry(t, slow)})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, err := c.Submit(context.Background(), "slow")
		assert.NoError(t, err)
	}()

	<-started
	assert.True(t, c.Busy())
	_, _, err := c.Submit(context.Background(), "help")
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	wg.Wait()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "done", entries[0].Output)
	assert.False(t, c.Busy())
}

func TestHandleKey_ActivationOpensOnce(t *testing.T) {
	c, err := New(Options{Registry: testRegistry(t)})
	require.NoError(t, err)

	var results []KeyResult
	for _, code := range activation.DefaultSequence {
		results = append(results, c.HandleKey(consoletypes.KeyEvent{Code: code}))
	}

	opened := 0
	for _, r := range results {
		if r.Action == ActionOpened {
			opened++
			assert.True(t, r.SuppressDefault)
		}
	}
	assert.Equal(t, 1, opened)
	assert.True(t, c.IsOpen())

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, consoletypes.KindInfo, entries[0].Kind)
	assert.Equal(t, consoletypes.OutcomeNotice, entries[0].Outcome)
	assert.False(t, entries[0].HasInput)
}

func TestHandleKey_SubstitutedCodeNeverOpens(t *testing.T) {
	c, err := New(Options{Registry: testRegistry(t)})
	require.NoError(t, err)

	sequence := append([]string(nil), activation.DefaultSequence...)
	sequence[4] = "KeyQ"
	for _, code := range sequence {
		c.HandleKey(consoletypes.KeyEvent{Code: code})
	}

	assert.False(t, c.IsOpen())
	assert.Empty(t, c.Entries())
}

func TestHandleKey_OpenConsoleKeys(t *testing.T) {
	c := newOpenConsole(t, Options{})
	_, _, _ = c.Submit(context.Background(), "echo one")
	_, _, _ = c.Submit(context.Background(), "echo two")

	up := c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeArrowUp})
	assert.Equal(t, ActionRecall, up.Action)
	assert.Equal(t, "echo two", up.Input)

	up = c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeArrowUp})
	assert.Equal(t, "echo one", up.Input)

	down := c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeArrowDown})
	assert.Equal(t, "echo two", down.Input)

	down = c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeArrowDown})
	assert.Equal(t, ActionRecall, down.Action)
	assert.Equal(t, "", down.Input)
	assert.Equal(t, "", c.Input())

	text := c.HandleKey(consoletypes.KeyEvent{Code: "KeyB", Key: "b"})
	assert.Equal(t, ActionText, text.Action)

	c.SetInput("echo three")
	enter := c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeEnter})
	assert.Equal(t, ActionSubmit, enter.Action)
	assert.Equal(t, "echo three", enter.Input)

	esc := c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeEscape})
	assert.Equal(t, ActionClosed, esc.Action)
	assert.False(t, c.IsOpen())
}

func TestClose_IsIdempotent(t *testing.T) {
	c := newOpenConsole(t, Options{})
	closed := 0
	c.OnClose(func() { closed++ })

	c.Close()
	c.Close()
	c.HandleKey(consoletypes.KeyEvent{Code: consoletypes.CodeEscape})

	assert.Equal(t, 1, closed)
}

func TestDispatcher_Announce(t *testing.T) {
	c := newOpenConsole(t, Options{})

	entry := c.Dispatcher().Announce("hello")

	assert.Equal(t, "hello", entry.Output)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, 1, c.Dispatcher().History().Len())
}

func TestDispatcher_LogsThroughComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.ConfigureWriter(&buf, "debug")
	t.Cleanup(func() { logger.ConfigureWriter(os.Stderr, "info") })

	c := newOpenConsole(t, Options{})
	_, _, err := c.Submit(context.Background(), "zzzzz")
	require.NoError(t, err)
	_, _, err = c.Submit(context.Background(), "boom")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Dispatcher")
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "unknown_command")
	assert.Contains(t, out, "Command panicked")
}
