// Package challenge implements the timed quiz a mission is settled
// through. A Session is a pure state machine: the front-end feeds it
// answer selections and one-second ticks, then reads the score
// fraction when the run completes. Runs scoring below PassThreshold
// are failed and never reach mission settlement.
package challenge

import (
	"time"

	"github.com/IGOLIVIT/galaxy-quest/internal/content"
	"github.com/IGOLIVIT/galaxy-quest/internal/economy"
)

// PassThreshold is the minimum score fraction that counts as a pass.
const PassThreshold = 0.6

// TimeLimit returns the session time budget for a mission's tier.
func TimeLimit(tier economy.DifficultyTier) time.Duration {
	switch tier {
	case economy.DifficultyBeginner:
		return 5 * time.Minute
	case economy.DifficultyIntermediate:
		return 10 * time.Minute
	case economy.DifficultyAdvanced:
		return 15 * time.Minute
	default:
		return 20 * time.Minute
	}
}

// Phase is the session's position in the answer cycle.
type Phase int

const (
	PhaseAnswering Phase = iota
	PhaseExplaining
	PhaseCompleted
)

// Session is one quiz run for one mission.
type Session struct {
	mission   content.Mission
	questions []Question
	possible  int

	index     int
	selected  int
	score     int
	phase     Phase
	remaining time.Duration
}

// NewSession builds a run over the category bank for the mission's
// tier. The question order is the bank order; runs are deterministic.
func NewSession(m content.Mission) *Session {
	s := &Session{mission: m}
	s.restart()
	return s
}

func (s *Session) restart() {
	s.questions = QuestionsFor(s.mission.Category, s.mission.Difficulty)
	s.possible = 0
	for _, q := range s.questions {
		s.possible += q.Points
	}
	s.index = 0
	s.selected = -1
	s.score = 0
	s.phase = PhaseAnswering
	s.remaining = TimeLimit(s.mission.Difficulty)
	if len(s.questions) == 0 {
		s.phase = PhaseCompleted
	}
}

// Reset restarts the run from scratch with a fresh time budget.
func (s *Session) Reset() {
	s.restart()
}

// Mission returns the mission this run settles.
func (s *Session) Mission() content.Mission {
	return s.mission
}

// Current returns the active question. ok is false once the run is
// complete.
func (s *Session) Current() (Question, bool) {
	if s.phase == PhaseCompleted || s.index >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// QuestionNumber is the 1-based position of the active question.
func (s *Session) QuestionNumber() int {
	return s.index + 1
}

// TotalQuestions is the size of the run's question set.
func (s *Session) TotalQuestions() int {
	return len(s.questions)
}

// Select records an answer choice. Out-of-range indexes and
// selections outside the answering phase are ignored.
func (s *Session) Select(index int) {
	if s.phase != PhaseAnswering {
		return
	}
	q, ok := s.Current()
	if !ok || index < 0 || index >= len(q.Answers) {
		return
	}
	s.selected = index
}

// Selected returns the recorded choice, -1 when none.
func (s *Session) Selected() int {
	return s.selected
}

// Submit grades the recorded choice and moves to the explanation
// phase. It reports whether the answer was correct; with no selection
// it does nothing and returns false.
func (s *Session) Submit() bool {
	if s.phase != PhaseAnswering || s.selected < 0 {
		return false
	}
	q, ok := s.Current()
	if !ok {
		return false
	}
	correct := q.Correct(s.selected)
	if correct {
		s.score += q.Points
	}
	s.phase = PhaseExplaining
	return correct
}

// Next leaves the explanation phase: advance to the next question or
// complete the run after the last one.
func (s *Session) Next() {
	if s.phase != PhaseExplaining {
		return
	}
	s.selected = -1
	if s.index < len(s.questions)-1 {
		s.index++
		s.phase = PhaseAnswering
		return
	}
	s.phase = PhaseCompleted
}

// TickSecond burns one second of the time budget. Hitting zero
// completes the run with whatever was scored so far.
func (s *Session) TickSecond() {
	if s.phase == PhaseCompleted {
		return
	}
	s.remaining -= time.Second
	if s.remaining <= 0 {
		s.remaining = 0
		s.phase = PhaseCompleted
	}
}

// Remaining is the time budget left.
func (s *Session) Remaining() time.Duration {
	return s.remaining
}

// CurrentPhase returns the session's position in the answer cycle.
func (s *Session) CurrentPhase() Phase {
	return s.phase
}

// Completed reports whether the run is over.
func (s *Session) Completed() bool {
	return s.phase == PhaseCompleted
}

// Score is the points earned so far.
func (s *Session) Score() int {
	return s.score
}

// PointsPossible is the maximum score of the run's question set.
func (s *Session) PointsPossible() int {
	return s.possible
}

// ScoreFraction is points earned over points possible, in [0, 1].
func (s *Session) ScoreFraction() float64 {
	if s.possible == 0 {
		return 0
	}
	return float64(s.score) / float64(s.possible)
}

// Passed reports whether the run cleared the pass threshold.
func (s *Session) Passed() bool {
	return s.ScoreFraction() >= PassThreshold
}

// PerformanceRating maps a score fraction to a commander's verdict.
func PerformanceRating(fraction float64) string {
	switch {
	case fraction >= 0.9:
		return "Excellent!"
	case fraction >= 0.8:
		return "Great Job!"
	case fraction >= 0.7:
		return "Good Work!"
	case fraction >= PassThreshold:
		return "Not Bad!"
	default:
		return "Keep Learning!"
	}
}
