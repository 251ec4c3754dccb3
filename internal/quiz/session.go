// Package quiz runs multiple-choice quiz sessions and applies the
// award policy that turns quiz and scenario results into XP, module
// progress and achievements.
package quiz

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/obrev/obrev/internal/content"
)

var (
	// ErrNoQuestions is returned when a session would have nothing to ask.
	ErrNoQuestions = errors.New("no questions for quiz session")

	// ErrSessionDone is returned by Answer after the last question.
	ErrSessionDone = errors.New("quiz session already finished")
)

// AnswerResult is the immediate outcome of answering one question.
type AnswerResult struct {
	Correct   bool
	Answer    int // index of the correct option
	Rationale string
	Last      bool
}

// Summary describes a finished quiz session. IncorrectQuestionIDs
// names the questions answered wrong, in the order they were missed.
type Summary struct {
	QuizID               string
	ModuleID             string
	TopicID              string
	Score                int // percentage 0-100
	TotalQuestions       int
	CorrectAnswers       int
	DurationSecs         int
	IncorrectQuestionIDs []string
}

// Session is one run through a fixed list of questions. Like the
// scenario engine it advances on logical seconds via Tick, so tests
// never need real time.
type Session struct {
	id       string
	moduleID string
	topicID  string
	qs       []content.Question

	index     int
	correct   int
	elapsed   int
	incorrect []string
}

// NewSession starts a quiz over the given questions.
func NewSession(moduleID, topicID string, qs []content.Question) (*Session, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: module %q topic %q", ErrNoQuestions, moduleID, topicID)
	}
	return &Session{
		id:       uuid.NewString(),
		moduleID: moduleID,
		topicID:  topicID,
		qs:       qs,
	}, nil
}

// ID returns the session's unique ID.
func (s *Session) ID() string { return s.id }

// Current returns the question awaiting an answer, nil when done.
func (s *Session) Current() *content.Question {
	if s.Done() {
		return nil
	}
	return &s.qs[s.index]
}

// Progress returns the 1-based question number and the total.
func (s *Session) Progress() (int, int) {
	n := s.index + 1
	if n > len(s.qs) {
		n = len(s.qs)
	}
	return n, len(s.qs)
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.index >= len(s.qs)
}

// Tick consumes one logical second.
func (s *Session) Tick() {
	if !s.Done() {
		s.elapsed++
	}
}

// Answer grades the choice against the current question and advances.
func (s *Session) Answer(choice int) (AnswerResult, error) {
	if s.Done() {
		return AnswerResult{}, ErrSessionDone
	}
	q := s.qs[s.index]
	correct := choice == q.Answer
	if correct {
		s.correct++
	} else {
		s.incorrect = append(s.incorrect, q.ID)
	}
	s.index++
	return AnswerResult{
		Correct:   correct,
		Answer:    q.Answer,
		Rationale: q.Rationale,
		Last:      s.Done(),
	}, nil
}

// Summary reports the session outcome. The score is the rounded
// percentage of correct answers.
func (s *Session) Summary() Summary {
	score := int(math.Round(float64(s.correct) / float64(len(s.qs)) * 100))
	return Summary{
		QuizID:               s.id,
		ModuleID:             s.moduleID,
		TopicID:              s.topicID,
		Score:                score,
		TotalQuestions:       len(s.qs),
		CorrectAnswers:       s.correct,
		DurationSecs:         s.elapsed,
		IncorrectQuestionIDs: append([]string(nil), s.incorrect...),
	}
}
