package builtin

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"termfolio/internal/console"
	"termfolio/internal/logger"
	"termfolio/internal/parser"
	"termfolio/internal/session"
	"termfolio/pkg/consoletypes"
)

// Store keys for the trivia score.
const (
	triviaStreakKey = "trivia.streak"
	triviaBestKey   = "trivia.best"
)

// TriviaCommand asks a multiple-choice question and leaves it pending for an answer.
type TriviaCommand struct {
	deps Deps
}

// Name returns the command name "trivia" for registration and lookup.
func (c *TriviaCommand) Name() string {
	return "trivia"
}

// Description returns a brief description of what the trivia command does.
func (c *TriviaCommand) Description() string {
	return "Ask a multiple-choice trivia question"
}

// Usage returns the syntax for the trivia command.
func (c *TriviaCommand) Usage() string {
	return "trivia"
}

// Execute picks a question, stores it as the pending question and prints it with
// lettered choices. A question asked earlier and never answered is replaced.
func (c *TriviaCommand) Execute(_ context.Context, _ []string, env consoletypes.Env) (string, error) {
	if c.deps.Services == nil {
		return "", fmt.Errorf("trivia is not available")
	}
	bank, err := c.deps.Services.Trivia()
	if err != nil {
		return "", fmt.Errorf("trivia is not available: %w", err)
	}
	q, err := bank.Random()
	if err != nil {
		return "", err
	}

	pending := consoletypes.PendingQuestion{
		Prompt:       q.Question,
		Choices:      q.Choices,
		CorrectIndex: q.Answer,
		Metadata:     map[string]string{"source": "trivia", "category": q.Category},
	}
	if err := env.Session.Set(pending); err != nil {
		return "", fmt.Errorf("failed to start question: %w", err)
	}

	var b strings.Builder
	if q.Category != "" {
		fmt.Fprintf(&b, "[%s] ", q.Category)
	}
	b.WriteString(q.Question)
	for i, choice := range q.Choices {
		fmt.Fprintf(&b, "\n  %s) %s", session.Letter(i), choice)
	}
	fmt.Fprintf(&b, "\nType a letter (A-%s) to answer.", session.Letter(len(q.Choices)-1))
	return b.String(), nil
}

// TriviaAnswerCommand answers the pending question.
type TriviaAnswerCommand struct{}

// Name returns the command name "trivia-answer" for registration and lookup.
func (c *TriviaAnswerCommand) Name() string {
	return "trivia-answer"
}

// Description returns a brief description of what the trivia-answer command does.
func (c *TriviaAnswerCommand) Description() string {
	return "Answer the pending trivia question"
}

// Usage returns the syntax for the trivia-answer command.
func (c *TriviaAnswerCommand) Usage() string {
	return "trivia-answer <letter>"
}

// Execute consumes the pending question with the given letter and keeps the
// streak in the key/value store.
func (c *TriviaAnswerCommand) Execute(_ context.Context, args []string, env consoletypes.Env) (string, error) {
	positional := parser.ParseArgs(args).Positional
	if len(positional) != 1 {
		return "", usageError(c)
	}

	result := env.Session.Consume(positional[0])
	switch result.Status {
	case consoletypes.AnswerInvalid:
		return "", fmt.Errorf("%w: '%s' is not one of %s", session.ErrInvalidAnswer, positional[0], strings.Join(strings.Split(session.Alphabet, ""), ", "))
	case consoletypes.AnswerNothingPending:
		return "No question is pending. Type 'trivia' to get one.", nil
	case consoletypes.AnswerCorrect:
		streak, best := recordAnswer(env.Store, true)
		return fmt.Sprintf("Correct! %s) %s\nStreak: %d (best %d)", result.CorrectLetter, result.CorrectChoice, streak, best), nil
	default:
		_, best := recordAnswer(env.Store, false)
		return fmt.Sprintf("Wrong. The answer was %s) %s\nStreak reset (best %d)", result.CorrectLetter, result.CorrectChoice, best), nil
	}
}

// recordAnswer updates the streak counters. Store failures are logged and do not
// affect the answer.
func recordAnswer(store consoletypes.Store, correct bool) (streak, best int) {
	if store == nil {
		return 0, 0
	}

	streak = readCounter(store, triviaStreakKey)
	best = readCounter(store, triviaBestKey)

	if correct {
		streak++
	} else {
		streak = 0
	}
	if streak > best {
		best = streak
	}

	if err := errors.Join(
		store.Set(triviaStreakKey, strconv.Itoa(streak)),
		store.Set(triviaBestKey, strconv.Itoa(best)),
	); err != nil {
		logger.Warn("Failed to save trivia score", "error", err)
	}
	return streak, best
}

func readCounter(store consoletypes.Store, key string) int {
	raw, ok, err := store.Get(key)
	if err != nil {
		logger.Warn("Failed to read trivia score", "key", key, "error", err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// TriviaInterceptor routes a bare answer letter to trivia-answer so players can
// answer with "b" instead of "trivia-answer b". A letter that names a registered
// command is left alone unless a question is pending.
type TriviaInterceptor struct{}

// Intercept claims raw when it is exactly one answer letter.
func (TriviaInterceptor) Intercept(raw string, _ parser.ParsedLine, env consoletypes.Env) (console.Route, bool) {
	letter := strings.TrimSpace(raw)
	if !session.IsAnswerLetter(letter) {
		return console.Route{}, false
	}

	if _, pending := env.Session.Pending(); !pending {
		for _, info := range env.Commands {
			if strings.EqualFold(info.Name, letter) {
				return console.Route{}, false
			}
		}
	}

	return console.Route{Command: "trivia-answer", Args: []string{letter}}, true
}
