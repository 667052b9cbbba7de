// Package console ties the engine together: the activation detector decides when
// the console is open, key events drive recall browsing, and submitted lines go
// through the Dispatcher into the history store the host renders.
package console

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"termfolio/internal/activation"
	"termfolio/internal/commands"
	"termfolio/internal/history"
	"termfolio/internal/logger"
	"termfolio/internal/session"
	"termfolio/internal/storage"
	"termfolio/pkg/consoletypes"
)

var (
	// ErrBusy is returned by Submit while an earlier submission is still running.
	ErrBusy = errors.New("console is busy")

	// ErrClosed is returned by Submit while the console is closed.
	ErrClosed = errors.New("console is closed")
)

// ActivationMessage is announced when the secret sequence opens the console.
const ActivationMessage = "Console unlocked. Type 'help' to see available commands."

// Options configures a Console. Only Registry is required.
type Options struct {
	Registry     *commands.Registry
	Session      *session.State
	Store        consoletypes.Store
	History      *history.Store
	Recall       *history.Recall
	Detector     *activation.Detector
	Interceptors []Interceptor
}

// Action tells the host what a key event did.
type Action int

const (
	// ActionNone means the key was consumed with no visible effect.
	ActionNone Action = iota
	// ActionOpened means the key completed the activation sequence.
	ActionOpened
	// ActionClosed means the key closed the console.
	ActionClosed
	// ActionRecall means the input field should show KeyResult.Input.
	ActionRecall
	// ActionSubmit means the host should submit the current input.
	ActionSubmit
	// ActionText means the key is ordinary text input for the host's field.
	ActionText
)

// KeyResult is the console's response to one key event.
type KeyResult struct {
	Action          Action
	Input           string
	SuppressDefault bool
}

// Console is one independent console instance.
type Console struct {
	dispatcher *Dispatcher
	detector   *activation.Detector
	recall     *history.Recall
	busy       atomic.Bool

	mu      sync.Mutex
	input   string
	onClose []func()
}

// New builds a console from opts, filling unset collaborators with fresh defaults.
func New(opts Options) (*Console, error) {
	if opts.Registry == nil {
		return nil, errors.New("console requires a command registry")
	}
	if opts.Session == nil {
		opts.Session = session.NewState()
	}
	if opts.Store == nil {
		opts.Store = storage.NewMemoryStore()
	}
	if opts.History == nil {
		opts.History = history.NewStore()
	}
	if opts.Recall == nil {
		opts.Recall = history.NewRecall(history.DefaultRecallCapacity)
	}
	if opts.Detector == nil {
		opts.Detector = activation.NewDetector(nil, activation.ModeRolling)
	}

	c := &Console{
		dispatcher: &Dispatcher{
			registry:     opts.Registry,
			history:      opts.History,
			session:      opts.Session,
			store:        opts.Store,
			interceptors: append([]Interceptor(nil), opts.Interceptors...),
			log:          logger.NewStyledLogger("Dispatcher"),
		},
		detector: opts.Detector,
		recall:   opts.Recall,
	}
	c.dispatcher.setOnClose(c.Close)
	return c, nil
}

// HandleKey routes one key event. While closed every key feeds the activation
// detector; while open Escape closes, the arrow keys browse recall and Enter asks
// the host to submit.
func (c *Console) HandleKey(ev consoletypes.KeyEvent) KeyResult {
	if !c.detector.IsOpen() {
		if c.detector.Feed(ev.Code) {
			logger.KeyEvent(ev.Code, true)
			c.dispatcher.Announce(ActivationMessage)
			return KeyResult{Action: ActionOpened, SuppressDefault: true}
		}
		return KeyResult{Action: ActionNone}
	}

	switch ev.Code {
	case consoletypes.CodeEscape:
		c.Close()
		return KeyResult{Action: ActionClosed, SuppressDefault: true}
	case consoletypes.CodeArrowUp:
		if line, ok := c.recall.Older(); ok {
			c.SetInput(line)
			return KeyResult{Action: ActionRecall, Input: line, SuppressDefault: true}
		}
		return KeyResult{Action: ActionNone, Input: c.Input(), SuppressDefault: true}
	case consoletypes.CodeArrowDown:
		if line, ok := c.recall.Newer(); ok {
			c.SetInput(line)
			return KeyResult{Action: ActionRecall, Input: line, SuppressDefault: true}
		}
		return KeyResult{Action: ActionNone, Input: c.Input(), SuppressDefault: true}
	case consoletypes.CodeEnter:
		return KeyResult{Action: ActionSubmit, Input: c.Input(), SuppressDefault: true}
	default:
		return KeyResult{Action: ActionText}
	}
}

// Input returns the text the console last placed in, or was told about, the input field.
func (c *Console) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput records the host's current input text.
func (c *Console) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// Submit records line in recall and dispatches it. Only one submission runs at a
// time; a second call while the first is running returns ErrBusy and dispatches nothing.
// The returned bool is false for empty input.
func (c *Console) Submit(ctx context.Context, line string) (consoletypes.HistoryEntry, bool, error) {
	if !c.detector.IsOpen() {
		return consoletypes.HistoryEntry{}, false, ErrClosed
	}
	if !c.busy.CompareAndSwap(false, true) {
		return consoletypes.HistoryEntry{}, false, ErrBusy
	}
	defer c.busy.Store(false)

	c.recall.Push(strings.TrimSpace(line))
	c.SetInput("")

	entry, ok := c.dispatcher.Dispatch(ctx, line)
	return entry, ok, nil
}

// Busy reports whether a submission is running.
func (c *Console) Busy() bool {
	return c.busy.Load()
}

// Open opens the console without the activation sequence.
func (c *Console) Open() {
	c.detector.Open()
}

// Close closes the console and runs the close hooks. It is the single close routine
// for the Escape key, the exit command and host-initiated closes, and is a no-op
// when the console is already closed.
func (c *Console) Close() {
	if !c.detector.IsOpen() {
		return
	}
	c.detector.Close()
	c.recall.Reset()

	c.mu.Lock()
	c.input = ""
	hooks := append([]func(){}, c.onClose...)
	c.mu.Unlock()

	logger.KeyEvent(consoletypes.CodeEscape, false)
	for _, hook := range hooks {
		hook()
	}
}

// OnClose registers fn to run each time the console closes.
func (c *Console) OnClose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = append(c.onClose, fn)
}

// IsOpen reports whether the console surface should be shown.
func (c *Console) IsOpen() bool {
	return c.detector.IsOpen()
}

// Entries returns the rendered history.
func (c *Console) Entries() []consoletypes.HistoryEntry {
	return c.dispatcher.history.Entries()
}

// Recall returns the submitted lines available for browsing, oldest first.
func (c *Console) Recall() []string {
	return c.recall.Entries()
}

// Dispatcher returns the console's dispatcher.
func (c *Console) Dispatcher() *Dispatcher {
	return c.dispatcher
}
