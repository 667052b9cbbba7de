// Package consoletypes defines the shared types of the termfolio console engine.
// This file contains the pending-question types shared by session state and the
// commands that start and answer questions.
package consoletypes

// PendingQuestion links a "start" command to its paired "answer" command.
// At most one exists per session.
type PendingQuestion struct {
	Prompt       string
	Choices      []string
	CorrectIndex int
	Metadata     map[string]string
}

// AnswerStatus classifies the result of consuming an answer letter.
type AnswerStatus int

const (
	// AnswerCorrect means the letter matched the correct choice.
	AnswerCorrect AnswerStatus = iota
	// AnswerWrong means the letter selected a different choice.
	AnswerWrong
	// AnswerInvalid means the letter is outside the answer alphabet; the question stays pending.
	AnswerInvalid
	// AnswerNothingPending means there was no question to answer.
	AnswerNothingPending
)

// AnswerResult is returned by Session.Consume.
type AnswerResult struct {
	Status        AnswerStatus
	Letter        string
	CorrectIndex  int
	CorrectLetter string
	CorrectChoice string
	Question      PendingQuestion
}

// Correct reports whether the answer was right.
func (r AnswerResult) Correct() bool {
	return r.Status == AnswerCorrect
}
