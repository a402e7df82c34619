package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/models"
	"github.com/lwenger/vocatrain/pkg/normalize"
)

var (
	// ErrPoolTooSmall is returned when a quiz is started over fewer
	// entries than a multiple-choice question needs options.
	ErrPoolTooSmall = errors.New("not enough entries to start a quiz")
	// ErrEmptyAnswer rejects a submit without input; the session stays
	// in the ask phase.
	ErrEmptyAnswer = errors.New("answer must not be empty")
	// ErrNoPendingAnswer means advance was called before submit.
	ErrNoPendingAnswer = errors.New("no answer has been checked yet")
	// ErrQuizFinished means the session is in its terminal phase.
	ErrQuizFinished = errors.New("quiz session is already finished")
)

const optionsPerQuestion = 4

// EntryProviderI supplies the global entry pool used to top up
// multiple-choice distractors.
type EntryProviderI interface {
	AllEntries() []models.Entry
}

// QuizS drives the session state machine: ask -> feedback -> ask ... -> done.
// All transitions mutate the passed session; nothing else does.
type QuizS struct {
	entries EntryProviderI
	rng     *rand.Rand
	minPool int
	log     *zap.Logger
}

func NewQuizService(entries EntryProviderI, rng *rand.Rand, log *zap.Logger) *QuizS {
	return &QuizS{
		entries: entries,
		rng:     rng,
		minPool: optionsPerQuestion,
		log:     log,
	}
}

// NewSession samples min(count, len(pool)) entries from pool without
// replacement, imposes a random presentation order and starts in the ask
// phase.
func (q *QuizS) NewSession(pool []models.Entry, direction models.Direction, mode models.Mode, count int) (*models.QuizSession, error) {
	if len(pool) < q.minPool {
		return nil, fmt.Errorf("%w: have %d, need at least %d", ErrPoolTooSmall, len(pool), q.minPool)
	}

	if count > len(pool) {
		count = len(pool)
	}
	if count < 1 {
		count = 1
	}

	items := make([]models.Entry, 0, count)
	for _, idx := range q.rng.Perm(len(pool))[:count] {
		items = append(items, pool[idx])
	}

	sess := &models.QuizSession{
		Direction:   direction,
		Mode:        mode,
		Items:       items,
		Order:       q.rng.Perm(count),
		Phase:       models.PhaseAsk,
		OptionCache: make(map[int][]string),
	}

	q.log.Info("quiz session started",
		zap.String("direction", string(direction)),
		zap.String("mode", string(mode)),
		zap.Int("questions", count))

	return sess, nil
}

// Submit checks the given answer against the current question and moves the
// session to the feedback phase. Score and history are not touched yet; the
// verdict is pending until Advance commits it.
func (q *QuizS) Submit(sess *models.QuizSession, given string) (bool, error) {
	switch sess.Phase {
	case models.PhaseDone:
		return false, ErrQuizFinished
	case models.PhaseFeedback:
		return false, errors.New("answer already checked, advance first")
	}

	if strings.TrimSpace(given) == "" {
		return false, ErrEmptyAnswer
	}

	entry, ok := sess.Current()
	if !ok {
		return false, ErrQuizFinished
	}

	_, expected := sess.Direction.QA(entry)

	correct := normalize.Equal(given, expected)
	sess.LastGiven = given
	sess.LastOK = correct
	sess.Phase = models.PhaseFeedback

	return correct, nil
}

// Advance commits the pending verdict into score and history and moves on
// to the next question, or to done when the list is exhausted.
func (q *QuizS) Advance(sess *models.QuizSession) error {
	switch sess.Phase {
	case models.PhaseDone:
		return ErrQuizFinished
	case models.PhaseAsk:
		return ErrNoPendingAnswer
	}

	entry, ok := sess.Current()
	if !ok {
		return ErrQuizFinished
	}

	prompt, expected := sess.Direction.QA(entry)

	if sess.LastOK {
		sess.Score++
	}
	sess.History = append(sess.History, models.HistoryRecord{
		Prompt:   prompt,
		Given:    sess.LastGiven,
		Correct:  sess.LastOK,
		Expected: expected,
	})

	sess.Index++
	sess.LastGiven = ""
	sess.LastOK = false

	if sess.Index >= len(sess.Order) {
		sess.Phase = models.PhaseDone
		q.log.Info("quiz session finished",
			zap.Int("score", sess.Score),
			zap.Int("total", sess.Total()))
		return nil
	}

	sess.Phase = models.PhaseAsk
	return nil
}

// Options returns the four multiple-choice options for the current
// question. They are generated once per question index and cached so they
// stay stable across the ask/feedback transition.
func (q *QuizS) Options(sess *models.QuizSession) []string {
	if opts, ok := sess.OptionCache[sess.Index]; ok {
		return opts
	}

	entry, ok := sess.Current()
	if !ok {
		return nil
	}

	_, correct := sess.Direction.QA(entry)

	opts := q.buildOptions(sess, correct)
	sess.OptionCache[sess.Index] = opts

	return opts
}

// buildOptions picks up to three distractors from the session's own
// answers, tops up from the global entry pool, and pads with the correct
// answer only when the pools cannot fill four options.
func (q *QuizS) buildOptions(sess *models.QuizSession, correct string) []string {
	correctKey := normalize.Fold(correct)

	seen := make(map[string]bool)
	var wrongs []string
	for _, item := range sess.Items {
		_, answer := sess.Direction.QA(item)
		if seen[answer] || normalize.Fold(answer) == correctKey {
			continue
		}
		seen[answer] = true
		wrongs = append(wrongs, answer)
	}

	q.rng.Shuffle(len(wrongs), func(i, j int) { wrongs[i], wrongs[j] = wrongs[j], wrongs[i] })
	if len(wrongs) > optionsPerQuestion-1 {
		wrongs = wrongs[:optionsPerQuestion-1]
	}

	options := append([]string{correct}, wrongs...)

	if len(options) < optionsPerQuestion && q.entries != nil {
		var global []string
		for _, e := range q.entries.AllEntries() {
			_, answer := sess.Direction.QA(e)
			if normalize.Fold(answer) != correctKey {
				global = append(global, answer)
			}
		}

		q.rng.Shuffle(len(global), func(i, j int) { global[i], global[j] = global[j], global[i] })

		for _, answer := range global {
			if len(options) == optionsPerQuestion {
				break
			}
			if lo.Contains(options, answer) {
				continue
			}
			options = append(options, answer)
		}
	}

	for len(options) < optionsPerQuestion {
		options = append(options, correct)
	}

	q.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return options
}
