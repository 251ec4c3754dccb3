package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/obrev/obrev/internal/content"
	"github.com/obrev/obrev/internal/progression"
	"github.com/obrev/obrev/internal/questiongen"
	"github.com/obrev/obrev/internal/quiz"
	"github.com/obrev/obrev/internal/router"
	"github.com/obrev/obrev/internal/screen"
	"github.com/obrev/obrev/internal/screens/results"
	"github.com/obrev/obrev/internal/ui/layout"
)

// questionsPerQuiz is how many questions one practice round serves.
const questionsPerQuiz = 5

// PracticeScreen runs one multiple-choice quiz round.
type PracticeScreen struct {
	generator questiongen.Generator
	awards    *quiz.Service
	prog      *progression.Service
	moduleID  string
	topicID   string

	session     *quiz.Session
	selected    int
	feedback    *quiz.AnswerResult
	answered    *content.Question
	quitConfirm bool
	finished    bool
	errMsg      string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given module and topic.
func New(generator questiongen.Generator, awards *quiz.Service, prog *progression.Service, moduleID, topicID string) *PracticeScreen {
	return &PracticeScreen{
		generator: generator,
		awards:    awards,
		prog:      prog,
		moduleID:  moduleID,
		topicID:   topicID,
	}
}

func (s *PracticeScreen) Title() string {
	return "Practice Quiz"
}

func (s *PracticeScreen) Init() tea.Cmd {
	return tea.Batch(s.loadQuestions(), tickCmd())
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

// loadQuestions assembles the question set asynchronously. The
// generator handles LLM fallback internally, so this always yields a
// playable quiz unless the bank itself is empty.
func (s *PracticeScreen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		mod := content.ModuleByID(s.moduleID)
		var topic *content.Topic
		if mod != nil {
			topic = mod.Topic(s.topicID)
		}

		var difficulty string
		if s.prog != nil {
			difficulty = s.prog.State().Preferences.Difficulty
		}

		var qs []content.Question
		var prior []string
		for i := 0; i < questionsPerQuiz; i++ {
			q, err := s.generator.Generate(ctx, questiongen.GenerateInput{
				Module:       mod,
				Topic:        topic,
				Difficulty:   difficulty,
				PriorPrompts: prior,
			})
			if err != nil {
				break
			}
			qs = append(qs, *q)
			prior = append(prior, q.Prompt)
		}

		sess, err := quiz.NewSession(s.moduleID, s.topicID, qs)
		if err != nil {
			return quizReadyMsg{Err: err}
		}
		return quizReadyMsg{Session: sess}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.session = msg.Session
		return s, nil

	case timerTickMsg:
		if s.session != nil && !s.finished {
			s.session.Tick()
		}
		if s.finished {
			return s, nil
		}
		return s, tickCmd()

	case quizEndMsg:
		return s.finishQuiz()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.session == nil {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay — any key advances.
	if s.feedback != nil {
		last := s.feedback.Last
		s.feedback = nil
		s.selected = 0
		if last {
			return s, func() tea.Msg { return quizEndMsg{} }
		}
		return s, nil
	}

	cur := s.session.Current()
	if cur == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(cur.Options) {
			s.selected = idx
			return s.submit()
		}
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(cur.Options)-1 {
			s.selected++
		}
	case "enter":
		return s.submit()
	}

	return s, nil
}

func (s *PracticeScreen) submit() (screen.Screen, tea.Cmd) {
	cur := s.session.Current()
	res, err := s.session.Answer(s.selected)
	if err != nil {
		return s, nil
	}
	s.answered = cur
	s.feedback = &res
	return s, nil
}

func (s *PracticeScreen) finishQuiz() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	s.finished = true

	sum := s.session.Summary()
	outcome := s.awards.RecordQuiz(context.Background(), sum, time.Now())

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{
			Screen: results.NewQuiz(sum, outcome),
		}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
