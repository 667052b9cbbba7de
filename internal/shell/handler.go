// Package shell provides the line-mode host: a readline loop that submits each raw
// line to an already open console and prints the resulting entry.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"

	"termfolio/internal/console"
	"termfolio/internal/logger"
	"termfolio/internal/output"
)

// Host runs a console in line mode.
type Host struct {
	console *console.Console
	printer *output.Printer
}

// NewHost creates a line-mode host. The console is opened immediately; there is no
// activation sequence in line mode.
func NewHost(c *console.Console, printer *output.Printer) *Host {
	c.Open()
	return &Host{console: c, printer: printer}
}

// Execute submits line and prints the recorded entry. It reports whether the
// console is still open afterwards.
func (h *Host) Execute(ctx context.Context, line string) bool {
	entry, recorded, err := h.console.Submit(ctx, line)
	switch {
	case errors.Is(err, console.ErrClosed):
		return false
	case err != nil:
		logger.Error("Submit failed", "input", line, "error", err)
		h.printer.Error(err.Error())
		return h.console.IsOpen()
	}

	if recorded {
		// The prompt already shows the input in line mode
		entry.HasInput = false
		h.printer.Entry(entry)
	}
	return h.console.IsOpen()
}

// LineReader is the part of readline the host loop needs.
type LineReader interface {
	Readline() (string, error)
}

// Serve submits every line from r unchanged until the console closes or r reports
// EOF. Lines are never split or joined before the console's own parser sees them.
// Ctrl-C abandons the current line.
func (h *Host) Serve(ctx context.Context, r LineReader) error {
	for h.console.IsOpen() {
		line, err := r.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			h.console.Close()
			return nil
		case err != nil:
			return err
		}
		if !h.Execute(ctx, line) {
			return nil
		}
	}
	return nil
}

// Run starts the interactive loop and blocks until the console is closed or the
// user sends EOF. ishell shares the readline instance for its own output; lines are
// read from readline directly so quoting is left to the console.
func (h *Host) Run(prompt, banner string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start line editor: %w", err)
	}
	sh := ishell.NewWithReadline(rl)
	defer sh.Close()

	if banner != "" {
		sh.Println(banner)
	}
	return h.Serve(context.Background(), rl)
}
