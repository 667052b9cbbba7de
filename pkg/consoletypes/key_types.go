// Package consoletypes defines the shared types of the termfolio console engine.
// This file contains the host-neutral keyboard event consumed by the console.
package consoletypes

// Key codes used by the console. They follow the browser KeyboardEvent.code naming
// so activation sequences written for the web version keep working.
const (
	CodeEscape     = "Escape"
	CodeEnter      = "Enter"
	CodeArrowUp    = "ArrowUp"
	CodeArrowDown  = "ArrowDown"
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowRight = "ArrowRight"
	CodeBackspace  = "Backspace"
	CodeTab        = "Tab"
	CodeSpace      = "Space"
)

// KeyEvent is a raw keyboard event from the host.
// Code identifies the physical key (e.g., "KeyB", "ArrowUp"); Key is the produced
// text when the key is printable.
type KeyEvent struct {
	Code string
	Key  string
}
