package shell

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/abiosoft/readline"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/config"
	"termfolio/internal/output"
	"termfolio/internal/testutils"
)

func newTestHost(t *testing.T) (*Host, *output.CaptureBuffer) {
	t.Helper()
	testutils.ResetTestCounters()

	cfg, err := config.Load(viper.New(), config.Options{TestMode: true})
	require.NoError(t, err)

	registry, err := InitializeServices(cfg, true)
	require.NoError(t, err)

	c, cleanup, err := NewConsole(cfg, registry, true)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	buf := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buf), output.TestMode())
	return NewHost(c, printer), buf
}

func TestInitializeServices(t *testing.T) {
	cfg, err := config.Load(viper.New(), config.Options{TestMode: true})
	require.NoError(t, err)

	registry, err := InitializeServices(cfg, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"markdown", "trivia", "http_request"}, registry.Names())

	trivia, err := registry.Trivia()
	require.NoError(t, err)
	first, err := trivia.Random()
	require.NoError(t, err)
	second, err := trivia.Random()
	require.NoError(t, err)
	assert.NotEqual(t, first.Question, second.Question, "test mode walks the bank in order")
}

func TestNewHost_OpensConsole(t *testing.T) {
	host, _ := newTestHost(t)
	assert.True(t, host.console.IsOpen())
}

func TestHost_Execute(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected string
		open     bool
	}{
		{name: "echo", line: "echo hello world", expected: "hello world\n", open: true},
		{name: "suggestion", line: "ecoh hi", expected: "ℹ Command not found: ecoh. Did you mean 'echo'?\n", open: true},
		{name: "unknown", line: "zzzzzz", expected: "✗ Command not found: zzzzzz. Type 'help' to see available commands.\n", open: true},
		{name: "empty", line: "   ", expected: "", open: true},
		{name: "exit", line: "exit", expected: "Closing console. Enter the sequence again to reopen it.\n", open: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, buf := newTestHost(t)
			open := host.Execute(context.Background(), tt.line)
			assert.Equal(t, tt.open, open)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestHost_ExecuteAfterClose(t *testing.T) {
	host, buf := newTestHost(t)
	host.console.Close()

	assert.False(t, host.Execute(context.Background(), "echo hi"))
	assert.Empty(t, buf.String())
}

type scriptedReader struct {
	lines []string
	errs  map[int]error
	calls int
}

func (r *scriptedReader) Readline() (string, error) {
	i := r.calls
	r.calls++
	if err, ok := r.errs[i]; ok {
		return "", err
	}
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func TestHost_ServePassesLinesUnchanged(t *testing.T) {
	host, buf := newTestHost(t)

	reader := &scriptedReader{lines: []string{
		`echo "unterminated  two`,
		`echo "a    b"`,
		"exit",
		"echo never",
	}}
	require.NoError(t, host.Serve(context.Background(), reader))

	assert.Equal(t, "unterminated  two\na    b\nClosing console. Enter the sequence again to reopen it.\n", buf.String())
	assert.False(t, host.console.IsOpen())

	entries := host.console.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, `echo "unterminated  two`, entries[0].Input)
	assert.Equal(t, []string{"echo never"}, reader.lines)
}

func TestHost_ServeInterruptAndEOF(t *testing.T) {
	host, buf := newTestHost(t)

	reader := &scriptedReader{
		lines: []string{"echo after interrupt"},
		errs:  map[int]error{0: readline.ErrInterrupt},
	}
	require.NoError(t, host.Serve(context.Background(), reader))

	assert.Equal(t, "after interrupt\n", buf.String())
	assert.False(t, host.console.IsOpen(), "EOF closes the console")
}

func TestHost_ServeReadError(t *testing.T) {
	host, _ := newTestHost(t)

	reader := &scriptedReader{errs: map[int]error{0: errors.New("terminal gone")}}
	assert.EqualError(t, host.Serve(context.Background(), reader), "terminal gone")
}

func TestHost_KeyValueRoundTrip(t *testing.T) {
	host, buf := newTestHost(t)

	host.Execute(context.Background(), "set theme dark")
	buf.Reset()
	host.Execute(context.Background(), "get theme")
	assert.Equal(t, "dark\n", buf.String())
}
