// Package consoletypes defines the shared types of the termfolio console engine.
// This file contains the narrow interfaces handed to command handlers through Env,
// so handlers cannot reach each other through hidden side channels.
package consoletypes

// Session is the handler-facing view of the cross-command pending-question slot.
type Session interface {
	// Set stores q as the pending question, replacing any existing one.
	Set(q PendingQuestion) error
	// Pending returns the current question, if any.
	Pending() (PendingQuestion, bool)
	// Consume answers the pending question with a single letter.
	Consume(letter string) AnswerResult
}

// Store is the generic opaque key/value store commands may persist into.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Keys() ([]string, error)
}

// HistoryReader gives handlers read-only access to the rendered history.
type HistoryReader interface {
	Entries() []HistoryEntry
	Len() int
}

// Controls lets a handler ask the console to act after the handler returns.
// Requests are applied by the dispatcher, which remains the only writer of history.
type Controls interface {
	RequestClear()
	RequestClose()
}

// Env is everything a handler may touch besides its arguments.
type Env struct {
	Session  Session
	Store    Store
	Commands []CommandInfo
	History  HistoryReader
	Controls Controls
}
