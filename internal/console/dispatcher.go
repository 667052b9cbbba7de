package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"termfolio/internal/commands"
	"termfolio/internal/fuzzy"
	"termfolio/internal/history"
	"termfolio/internal/parser"
	"termfolio/internal/session"
	"termfolio/pkg/consoletypes"
)

// Dispatcher resolves submitted lines to commands and records exactly one history
// entry for every non-empty line. It is the only writer of its history store.
type Dispatcher struct {
	registry     *commands.Registry
	history      *history.Store
	session      *session.State
	store        consoletypes.Store
	interceptors []Interceptor
	log          *log.Logger

	mu      sync.Mutex
	onClose func()
}

// Dispatch parses raw and runs it. The returned bool is false when the line was
// empty and nothing was recorded. Handler errors and panics are recorded as Error
// entries; Dispatch itself never fails.
func (d *Dispatcher) Dispatch(ctx context.Context, raw string) (consoletypes.HistoryEntry, bool) {
	line := parser.Parse(raw)
	if line.IsEmpty() {
		return consoletypes.HistoryEntry{}, false
	}

	ctrl := &controls{}
	env := d.env(ctrl)

	route := Route{Command: line.Name(), Args: line.HandlerArgs()}
	for _, interceptor := range d.interceptors {
		if r, ok := interceptor.Intercept(raw, line, env); ok {
			d.log.Debug("Line claimed by interceptor", "input", raw, "command", r.Command)
			route = r
			break
		}
	}

	entry := consoletypes.HistoryEntry{
		Input:    strings.TrimSpace(raw),
		HasInput: true,
	}

	cmd, found := d.registry.Lookup(route.Command)
	if found {
		d.run(ctx, cmd, route.Args, env, &entry)
	} else {
		d.unresolved(route.Command, &entry)
	}

	if ctrl.clear {
		d.history.Clear()
	}
	stored := d.history.Append(entry)

	if ctrl.close {
		d.closeConsole()
	}
	return stored, true
}

// Announce records an engine notice that did not come from a submitted line.
func (d *Dispatcher) Announce(text string) consoletypes.HistoryEntry {
	return d.history.Append(consoletypes.HistoryEntry{
		Output:  text,
		Kind:    consoletypes.KindInfo,
		Outcome: consoletypes.OutcomeNotice,
	})
}

// History returns the store the dispatcher writes to.
func (d *Dispatcher) History() *history.Store {
	return d.history
}

func (d *Dispatcher) run(ctx context.Context, cmd consoletypes.Command, args []string, env consoletypes.Env, entry *consoletypes.HistoryEntry) {
	d.log.Debug("Executing command", "command", cmd.Name, "args", args)

	output, err := d.execute(ctx, cmd, args, env)
	if err != nil {
		d.log.Debug("Command failed", "command", cmd.Name, "error", err)
		entry.Output = err.Error()
		entry.Kind = consoletypes.KindError
		entry.Outcome = consoletypes.OutcomeHandlerFailure
		if errors.Is(err, session.ErrInvalidAnswer) {
			entry.Outcome = consoletypes.OutcomeInvalidAnswer
		}
		return
	}

	entry.Output = output
	entry.Kind = consoletypes.KindCommand
	entry.Outcome = consoletypes.OutcomeOK
}

func (d *Dispatcher) execute(ctx context.Context, cmd consoletypes.Command, args []string, env consoletypes.Env) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Command panicked", "command", cmd.Name, "panic", fmt.Sprint(r))
			output = ""
			err = fmt.Errorf("%s failed: %v", cmd.Name, r)
		}
	}()
	return cmd.Handler.Execute(ctx, args, env)
}

func (d *Dispatcher) unresolved(name string, entry *consoletypes.HistoryEntry) {
	if best, ok := fuzzy.Best(name, d.registry.Names(), fuzzy.SuggestThreshold); ok {
		entry.Output = fmt.Sprintf("Command not found: %s. Did you mean '%s'?", name, best.Value)
		entry.Kind = consoletypes.KindInfo
		entry.Outcome = consoletypes.OutcomeSuggested
		entry.Suggestion = best.Value
		d.log.Debug("Unknown command", "input", name, "outcome", entry.Outcome.String(), "suggestion", best.Value)
		return
	}

	entry.Output = fmt.Sprintf("Command not found: %s. Type 'help' to see available commands.", name)
	entry.Kind = consoletypes.KindError
	entry.Outcome = consoletypes.OutcomeUnknown
	d.log.Debug("Unknown command", "input", name, "outcome", entry.Outcome.String())
}

func (d *Dispatcher) env(ctrl *controls) consoletypes.Env {
	return consoletypes.Env{
		Session:  d.session,
		Store:    d.store,
		Commands: d.registry.Infos(),
		History:  d.history,
		Controls: ctrl,
	}
}

func (d *Dispatcher) setOnClose(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onClose = fn
}

func (d *Dispatcher) closeConsole() {
	d.mu.Lock()
	fn := d.onClose
	d.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// controls collects a handler's requests for the dispatcher to apply after it returns.
type controls struct {
	clear bool
	close bool
}

func (c *controls) RequestClear() { c.clear = true }
func (c *controls) RequestClose() { c.close = true }
