package orchestration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termfolio/internal/commands"
	"termfolio/internal/console"
	"termfolio/internal/output"
	"termfolio/pkg/consoletypes"
)

func newTestConsole(t *testing.T) *console.Console {
	t.Helper()
	registry := commands.MustNewRegistry(
		consoletypes.Command{
			Name:        "echo",
			Description: "Print arguments",
			Usage:       "echo [text]",
			Handler: consoletypes.HandlerFunc(func(_ context.Context, args []string, _ consoletypes.Env) (string, error) {
				return strings.Join(args, " "), nil
			}),
		},
		consoletypes.Command{
			Name:        "exit",
			Description: "Close the console",
			Usage:       "exit",
			Handler: consoletypes.HandlerFunc(func(_ context.Context, _ []string, env consoletypes.Env) (string, error) {
				env.Controls.RequestClose()
				return "bye", nil
			}),
		},
	)
	c, err := console.New(console.Options{Registry: registry})
	require.NoError(t, err)
	return c
}

func newTestPrinter() (*output.Printer, *output.CaptureBuffer) {
	buf := output.NewCaptureBuffer()
	return output.NewPrinter(output.WithWriter(buf), output.WithPrompt("> "), output.TestMode()), buf
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name      string
		script    string
		expected  string
		submitted int
		wantErr   string
	}{
		{
			name:      "comments and blank lines skipped",
			script:    "# greeting\n\necho hi\n   \necho there\n",
			expected:  "> echo hi\nhi\n> echo there\nthere\n",
			submitted: 2,
		},
		{
			name:      "unknown command fails the run",
			script:    "echo ok\nzzzzzz\necho still runs\n",
			expected:  "> echo ok\nok\n> zzzzzz\n✗ Command not found: zzzzzz. Type 'help' to see available commands.\n> echo still runs\nstill runs\n",
			submitted: 3,
			wantErr:   "1 of 3 commands failed",
		},
		{
			name:      "exit stops the script",
			script:    "exit\necho unreachable\n",
			expected:  "> exit\nbye\n",
			submitted: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestConsole(t)
			printer, buf := newTestPrinter()

			result, err := Execute(context.Background(), strings.NewReader(tt.script), c, printer)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.submitted, result.Submitted)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestExecute_CancelledContext(t *testing.T) {
	c := newTestConsole(t)
	printer, buf := newTestPrinter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute(ctx, strings.NewReader("echo hi\n"), c, printer)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestExecuteScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.tf")
	require.NoError(t, os.WriteFile(path, []byte("echo from file\n"), 0600))

	printer, buf := newTestPrinter()
	result, err := ExecuteScript(context.Background(), path, newTestConsole(t), printer)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Submitted)
	assert.Contains(t, buf.String(), "from file")

	_, err = ExecuteScript(context.Background(), filepath.Join(t.TempDir(), "missing.tf"), newTestConsole(t), printer)
	assert.ErrorContains(t, err, "failed to load script")
}
