// Package consoletypes defines the shared types of the termfolio console engine.
// This file contains the rendered history entry and its classification.
package consoletypes

import "time"

// EntryKind tells the host how to render a history entry.
type EntryKind int

const (
	// KindCommand is the normal result of a resolved command.
	KindCommand EntryKind = iota
	// KindError is an unknown command or a failed handler.
	KindError
	// KindInfo is a notice or soft hint (activation banner, did-you-mean).
	KindInfo
)

// String returns the lowercase name of the kind.
func (k EntryKind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindError:
		return "error"
	case KindInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Outcome records which dispatch path produced an entry.
type Outcome int

const (
	// OutcomeOK means a handler ran and returned text.
	OutcomeOK Outcome = iota
	// OutcomeUnknown means no command matched and nothing was close enough to suggest.
	OutcomeUnknown
	// OutcomeSuggested means no command matched but a close name was found.
	OutcomeSuggested
	// OutcomeHandlerFailure means the handler returned an error or panicked.
	OutcomeHandlerFailure
	// OutcomeInvalidAnswer means an answer letter fell outside the answer alphabet.
	OutcomeInvalidAnswer
	// OutcomeNotice is an engine announcement that did not come from a submitted line.
	OutcomeNotice
)

// String returns a short identifier for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeUnknown:
		return "unknown_command"
	case OutcomeSuggested:
		return "suggested_command"
	case OutcomeHandlerFailure:
		return "handler_failure"
	case OutcomeInvalidAnswer:
		return "invalid_answer"
	case OutcomeNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// HistoryEntry is one rendered item of console output.
// Output may contain a small inline-markup subset (image/container tags) which the
// engine treats as opaque; hosts sanitize it before display.
type HistoryEntry struct {
	ID         string    `json:"id"`
	Input      string    `json:"input,omitempty"`
	HasInput   bool      `json:"has_input"`
	Output     string    `json:"output"`
	Timestamp  time.Time `json:"timestamp"`
	Kind       EntryKind `json:"kind"`
	Outcome    Outcome   `json:"outcome"`
	Suggestion string    `json:"suggestion,omitempty"`
}

// IsError reports whether the entry should be rendered as a failure.
func (e HistoryEntry) IsError() bool {
	return e.Kind == KindError
}
