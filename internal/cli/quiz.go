package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/models"
	"github.com/lwenger/vocatrain/internal/service"
)

func (c *CLI) quizCommand() *cobra.Command {
	var (
		collection string
		direction  string
		mode       string
		count      int
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run an interactive quiz session",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := models.ParseDirection(direction)
			if err != nil {
				return err
			}
			m, err := models.ParseMode(mode)
			if err != nil {
				return err
			}

			if count < c.quizCfg.MinQuestions {
				count = c.quizCfg.MinQuestions
			}
			if count > c.quizCfg.MaxQuestions {
				count = c.quizCfg.MaxQuestions
			}

			pool := c.service.EntriesFor(collection)

			sess, err := c.service.NewSession(pool, dir, m, count)
			if errors.Is(err, service.ErrPoolTooSmall) {
				return fmt.Errorf("not enough entries for a quiz (have %d); import more vocabulary first", len(pool))
			}
			if err != nil {
				return err
			}

			return c.runQuiz(sess)
		},
	}

	cmd.Flags().StringVar(&collection, "collection", "", "restrict questions to one collection (default: all)")
	cmd.Flags().StringVar(&direction, "direction", string(models.DirectionDeFr), `quiz direction: "de-fr" or "fr-de"`)
	cmd.Flags().StringVar(&mode, "mode", string(models.ModeMultipleChoice), `quiz mode: "choice" or "text"`)
	cmd.Flags().IntVar(&count, "count", c.quizCfg.DefaultQuestions, "number of questions")

	return cmd
}

// runQuiz drives one session to its terminal phase: each loop iteration is
// one ask -> feedback -> advance round.
func (c *CLI) runQuiz(sess *models.QuizSession) error {
	scanner := bufio.NewScanner(c.in)

	from, to := c.app.SourceLang, c.app.TargetLang
	if sess.Direction == models.DirectionFrDe {
		from, to = to, from
	}
	fmt.Fprintf(c.out, "Quiz %s → %s, %d questions. Accents and casing are ignored.\n", from, to, sess.Total())

	for sess.Phase != models.PhaseDone {
		entry, ok := sess.Current()
		if !ok {
			break
		}
		prompt, _ := sess.Direction.QA(entry)

		fmt.Fprintf(c.out, "\nQuestion %d/%d — score %d\n", sess.Index+1, sess.Total(), sess.Score)
		fmt.Fprintf(c.out, "Translate: %s\n", prompt)

		var options []string
		if sess.Mode == models.ModeMultipleChoice {
			options = c.service.Options(sess)
			for i, o := range options {
				fmt.Fprintf(c.out, "  %d) %s\n", i+1, o)
			}
		}

		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read answer: %w", err)
			}
			c.log.Warn("input closed mid-session",
				zap.Int("question", sess.Index+1),
				zap.Int("total", sess.Total()))
			return errors.New("input closed before the quiz was finished")
		}
		given := pickAnswer(scanner.Text(), options)

		correct, err := c.service.Submit(sess, given)
		if errors.Is(err, service.ErrEmptyAnswer) {
			fmt.Fprintln(c.out, "Please enter an answer.")
			continue
		}
		if err != nil {
			return err
		}

		if correct {
			fmt.Fprintln(c.out, "Correct!")
		} else {
			_, expected := sess.Direction.QA(entry)
			fmt.Fprintf(c.out, "Wrong. Correct answer: %s\n", expected)
		}

		if err := c.service.Advance(sess); err != nil {
			return err
		}
	}

	c.printSummary(sess)
	return nil
}

// pickAnswer resolves a numeric multiple-choice selection to its option
// text; any other input is taken literally.
func pickAnswer(input string, options []string) string {
	if len(options) == 0 {
		return input
	}

	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(options) {
		return input
	}

	return options[n-1]
}

func (c *CLI) printSummary(sess *models.QuizSession) {
	fmt.Fprintf(c.out, "\nDone! Score: %d/%d (%d%%)\n\n", sess.Score, sess.Total(), sess.Percent())

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Question\tYour answer\tCorrect\tExpected")
	for _, rec := range sess.History {
		verdict := "no"
		if rec.Correct {
			verdict = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.Prompt, rec.Given, verdict, rec.Expected)
	}
	w.Flush()
}
