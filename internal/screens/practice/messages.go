package practice

import (
	"time"

	"github.com/obrev/obrev/internal/quiz"
)

// quizReadyMsg is sent when the question set has been assembled.
type quizReadyMsg struct {
	Session *quiz.Session
	Err     error
}

// timerTickMsg is sent every second to advance the quiz clock.
type timerTickMsg time.Time

// quizEndMsg is sent to trigger the scoring and summary flow.
type quizEndMsg struct{}
