// Package session holds per-console state that outlives a single command.
// Today that is the pending-question slot linking a question command to the
// answer command that follows it.
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"termfolio/pkg/consoletypes"
)

// Alphabet is the set of answer letters, in choice order.
const Alphabet = "ABCD"

// ErrInvalidAnswer is reported when an answer letter is outside Alphabet.
var ErrInvalidAnswer = errors.New("invalid answer")

// State is the mutable session state shared by the handlers of one console.
// It implements consoletypes.Session.
type State struct {
	mu      sync.Mutex
	pending *consoletypes.PendingQuestion
}

// NewState creates a session with no pending question.
func NewState() *State {
	return &State{}
}

// Set stores q as the pending question, replacing any earlier one.
// The question must have between one and len(Alphabet) choices and a correct index
// that points at one of them.
func (s *State) Set(q consoletypes.PendingQuestion) error {
	if len(q.Choices) == 0 || len(q.Choices) > len(Alphabet) {
		return fmt.Errorf("question must have 1 to %d choices, got %d", len(Alphabet), len(q.Choices))
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return fmt.Errorf("correct index %d out of range for %d choices", q.CorrectIndex, len(q.Choices))
	}

	stored := q
	stored.Choices = append([]string(nil), q.Choices...)
	if q.Metadata != nil {
		stored.Metadata = make(map[string]string, len(q.Metadata))
		for k, v := range q.Metadata {
			stored.Metadata[k] = v
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = &stored
	return nil
}

// Pending returns the pending question, if any.
func (s *State) Pending() (consoletypes.PendingQuestion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return consoletypes.PendingQuestion{}, false
	}
	return *s.pending, true
}

// HasPending reports whether a question is waiting for an answer.
func (s *State) HasPending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Consume answers the pending question with letter.
//
// A letter outside Alphabet leaves the question pending and reports AnswerInvalid.
// With no question pending it reports AnswerNothingPending. Otherwise the question
// is cleared and the result carries the correct choice.
func (s *State) Consume(letter string) consoletypes.AnswerResult {
	letter = strings.ToUpper(strings.TrimSpace(letter))
	index, valid := LetterIndex(letter)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !valid {
		return consoletypes.AnswerResult{Status: consoletypes.AnswerInvalid, Letter: letter}
	}
	if s.pending == nil {
		return consoletypes.AnswerResult{Status: consoletypes.AnswerNothingPending, Letter: letter}
	}

	q := *s.pending
	s.pending = nil

	result := consoletypes.AnswerResult{
		Status:        consoletypes.AnswerWrong,
		Letter:        letter,
		CorrectIndex:  q.CorrectIndex,
		CorrectLetter: Letter(q.CorrectIndex),
		CorrectChoice: q.Choices[q.CorrectIndex],
		Question:      q,
	}
	if index == q.CorrectIndex {
		result.Status = consoletypes.AnswerCorrect
	}
	return result
}

// Clear drops any pending question.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// LetterIndex maps a single answer letter (any case) to its choice index.
func LetterIndex(letter string) (int, bool) {
	if len(letter) != 1 {
		return -1, false
	}
	i := strings.IndexByte(Alphabet, strings.ToUpper(letter)[0])
	return i, i >= 0
}

// Letter returns the answer letter for a choice index, or "" when out of range.
func Letter(index int) string {
	if index < 0 || index >= len(Alphabet) {
		return ""
	}
	return Alphabet[index : index+1]
}

// IsAnswerLetter reports whether s is exactly one answer letter, ignoring case.
func IsAnswerLetter(s string) bool {
	_, ok := LetterIndex(s)
	return ok
}
