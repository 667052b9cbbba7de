// Package activation recognizes the hidden key sequence that opens the console.
package activation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"termfolio/internal/logger"
	"termfolio/pkg/consoletypes"
)

// Mode selects how the detector matches the secret sequence.
type Mode int

const (
	// ModeRolling keeps the last len(secret) keys and opens when they equal the secret.
	// Any keystroke stream that contains the secret as a contiguous run opens the console.
	ModeRolling Mode = iota

	// ModeStrict tracks progress through the secret and resets on the first wrong key,
	// restarting at one when that key is the first key of the secret.
	ModeStrict
)

// String returns the config spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRolling:
		return "rolling"
	case ModeStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// ParseMode maps a config value to a Mode. An empty value selects ModeRolling.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rolling":
		return ModeRolling, nil
	case "strict":
		return ModeStrict, nil
	default:
		return ModeRolling, fmt.Errorf("unknown activation mode %q (want rolling or strict)", s)
	}
}

// DefaultSequence is the Konami code expressed as key codes.
var DefaultSequence = []string{
	consoletypes.CodeArrowUp,
	consoletypes.CodeArrowUp,
	consoletypes.CodeArrowDown,
	consoletypes.CodeArrowDown,
	consoletypes.CodeArrowLeft,
	consoletypes.CodeArrowRight,
	consoletypes.CodeArrowLeft,
	consoletypes.CodeArrowRight,
	"KeyB",
	"KeyA",
}

// Detector watches key codes while the console is closed and reports when the
// secret has been typed. It owns the open/closed flag.
type Detector struct {
	mu       sync.Mutex
	secret   []string
	mode     Mode
	window   []string
	progress int
	open     bool
	log      *log.Logger
}

// NewDetector creates a closed detector for secret. An empty secret selects
// DefaultSequence.
func NewDetector(secret []string, mode Mode) *Detector {
	if len(secret) == 0 {
		secret = DefaultSequence
	}
	s := make([]string, len(secret))
	copy(s, secret)
	return &Detector{
		secret: s,
		mode:   mode,
		window: make([]string, 0, len(s)),
		log:    logger.NewStyledLogger("Activation"),
	}
}

// Feed records one key code. It returns true exactly when this key completes the
// secret, at which point the detector is open and its window is cleared.
// Keys fed while open are ignored.
func (d *Detector) Feed(code string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.open {
		return false
	}

	var matched bool
	if d.mode == ModeStrict {
		matched = d.feedStrict(code)
	} else {
		matched = d.feedRolling(code)
	}

	if matched {
		d.log.Debug("Secret sequence matched", "mode", d.mode.String(), "code", code)
		d.open = true
		d.window = d.window[:0]
		d.progress = 0
	}
	return matched
}

func (d *Detector) feedRolling(code string) bool {
	if len(d.window) == len(d.secret) {
		copy(d.window, d.window[1:])
		d.window = d.window[:len(d.window)-1]
	}
	d.window = append(d.window, code)

	if len(d.window) != len(d.secret) {
		return false
	}
	for i := range d.secret {
		if d.window[i] != d.secret[i] {
			return false
		}
	}
	return true
}

func (d *Detector) feedStrict(code string) bool {
	switch {
	case code == d.secret[d.progress]:
		d.progress++
	case code == d.secret[0]:
		d.progress = 1
	default:
		if d.progress > 0 {
			d.log.Debug("Sequence progress reset", "code", code, "mode", d.mode.String())
		}
		d.progress = 0
	}

	d.window = append(d.window[:0], d.secret[:d.progress]...)
	return d.progress == len(d.secret)
}

// IsOpen reports whether the console is open.
func (d *Detector) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Open marks the console open without typing the secret, as the line-mode host does.
func (d *Detector) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.open = true
	d.window = d.window[:0]
	d.progress = 0
}

// Close marks the console closed. Calling it on a closed detector is a no-op.
func (d *Detector) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.open {
		return
	}
	d.open = false
	d.window = d.window[:0]
	d.progress = 0
}

// Window returns a copy of the keys currently counted toward the secret.
func (d *Detector) Window() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.window))
	copy(out, d.window)
	return out
}

// Mode returns the matching mode.
func (d *Detector) Mode() Mode {
	return d.mode
}

// Secret returns a copy of the secret sequence.
func (d *Detector) Secret() []string {
	out := make([]string, len(d.secret))
	copy(out, d.secret)
	return out
}
