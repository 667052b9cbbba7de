package services

import (
	"fmt"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"termfolio/internal/data/embedded"
)

// TriviaServiceName is the registry name of the trivia service.
const TriviaServiceName = "trivia"

// TriviaQuestion is one multiple-choice question from the bank.
type TriviaQuestion struct {
	Question string   `yaml:"question"`
	Category string   `yaml:"category"`
	Choices  []string `yaml:"choices"`
	Answer   int      `yaml:"answer"`
}

// triviaData represents the structure of the trivia YAML file.
type triviaData struct {
	Questions []TriviaQuestion `yaml:"questions"`
}

// TriviaService serves questions from the embedded bank.
type TriviaService struct {
	data        []byte
	questions   []TriviaQuestion
	pick        func(n int) int
	initialized bool
}

// NewTriviaService creates a trivia service over the embedded bank.
func NewTriviaService() *TriviaService {
	return NewTriviaServiceFromData(embedded.TriviaData)
}

// NewTriviaServiceFromData creates a trivia service over a caller-supplied YAML bank.
func NewTriviaServiceFromData(data []byte) *TriviaService {
	return &TriviaService{
		data: data,
		pick: rand.IntN,
	}
}

// Name returns the service name "trivia" for registration.
func (s *TriviaService) Name() string {
	return TriviaServiceName
}

// Initialize parses and validates the question bank.
func (s *TriviaService) Initialize() error {
	var data triviaData
	if err := yaml.Unmarshal(s.data, &data); err != nil {
		return fmt.Errorf("failed to parse trivia YAML: %w", err)
	}

	s.questions = data.Questions
	if err := s.Validate(); err != nil {
		return fmt.Errorf("trivia data validation failed: %w", err)
	}

	s.initialized = true
	return nil
}

// Validate checks that every question has two to four choices and a valid answer.
func (s *TriviaService) Validate() error {
	if len(s.questions) == 0 {
		return fmt.Errorf("trivia bank is empty")
	}
	for i, q := range s.questions {
		if q.Question == "" {
			return fmt.Errorf("question %d has no text", i)
		}
		if len(q.Choices) < 2 || len(q.Choices) > 4 {
			return fmt.Errorf("question %d must have 2 to 4 choices, has %d", i, len(q.Choices))
		}
		if q.Answer < 0 || q.Answer >= len(q.Choices) {
			return fmt.Errorf("question %d answer %d out of range", i, q.Answer)
		}
	}
	return nil
}

// SetPicker replaces the random index source. pick(n) must return a value in [0, n).
func (s *TriviaService) SetPicker(pick func(n int) int) {
	if pick != nil {
		s.pick = pick
	}
}

// Random returns a question chosen by the picker.
func (s *TriviaService) Random() (TriviaQuestion, error) {
	if !s.initialized {
		return TriviaQuestion{}, fmt.Errorf("trivia service not initialized")
	}
	i := s.pick(len(s.questions))
	if i < 0 || i >= len(s.questions) {
		return TriviaQuestion{}, fmt.Errorf("picker returned %d for %d questions", i, len(s.questions))
	}
	return s.questions[i], nil
}

// Count returns the number of questions in the bank.
func (s *TriviaService) Count() int {
	return len(s.questions)
}
