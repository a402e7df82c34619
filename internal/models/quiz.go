package models

import "fmt"

type Direction string

const (
	DirectionDeFr Direction = "de-fr"
	DirectionFrDe Direction = "fr-de"
)

// QA returns the prompt shown to the user and the expected answer for e.
func (d Direction) QA(e Entry) (prompt, answer string) {
	if d == DirectionFrDe {
		return e.Fr, e.De
	}
	return e.De, e.Fr
}

func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionDeFr, DirectionFrDe:
		return Direction(s), nil
	}
	return "", fmt.Errorf("unknown direction %q (want %q or %q)", s, DirectionDeFr, DirectionFrDe)
}

type Mode string

const (
	ModeMultipleChoice Mode = "choice"
	ModeFreeText       Mode = "text"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMultipleChoice, ModeFreeText:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown quiz mode %q (want %q or %q)", s, ModeMultipleChoice, ModeFreeText)
}

type Phase string

const (
	PhaseAsk      Phase = "ask"
	PhaseFeedback Phase = "feedback"
	PhaseDone     Phase = "done"
)

// HistoryRecord is one answered question in a finished or running session.
type HistoryRecord struct {
	Prompt   string
	Given    string
	Correct  bool
	Expected string
}

// QuizSession holds the state of one quiz run. Items and Order are fixed at
// creation; everything else is mutated only by the quiz service transitions.
type QuizSession struct {
	Direction Direction
	Mode      Mode
	Items     []Entry
	Order     []int
	Index     int
	Score     int
	History   []HistoryRecord
	Phase     Phase

	// Pending verdict, set on submit and committed on advance.
	LastGiven string
	LastOK    bool

	// Multiple-choice options per question index, generated once so they
	// stay stable across the ask/feedback transition.
	OptionCache map[int][]string
}

// Current returns the entry behind the active question, or false once the
// question list is exhausted.
func (q *QuizSession) Current() (Entry, bool) {
	if q.Index >= len(q.Order) {
		return Entry{}, false
	}
	return q.Items[q.Order[q.Index]], true
}

func (q *QuizSession) Total() int {
	return len(q.Order)
}

// Percent is the final score as a rounded percentage.
func (q *QuizSession) Percent() int {
	if len(q.Order) == 0 {
		return 0
	}
	return int(float64(q.Score)/float64(len(q.Order))*100 + 0.5)
}
