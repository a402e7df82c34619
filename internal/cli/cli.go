package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/config"
	"github.com/lwenger/vocatrain/internal/models"
)

type CollectionSI interface {
	Collections() []models.Collection
	EntriesFor(name string) []models.Entry
	Export(w io.Writer) error
}

type ImportSI interface {
	ImportDocument(ctx context.Context, data []byte, nameHint string, overwrite bool) (models.Collection, error)
}

type QuizSI interface {
	NewSession(pool []models.Entry, direction models.Direction, mode models.Mode, count int) (*models.QuizSession, error)
	Submit(sess *models.QuizSession, given string) (bool, error)
	Advance(sess *models.QuizSession) error
	Options(sess *models.QuizSession) []string
}

type ServiceI interface {
	CollectionSI
	ImportSI
	QuizSI
}

// CLI is the interaction layer: it renders prompts, reads input and
// dispatches every user action to exactly one service transition.
type CLI struct {
	service ServiceI
	app     config.AppConfig
	quizCfg config.QuizConfig
	log     *zap.Logger
	in      io.Reader
	out     io.Writer
}

func New(cfg *config.Config, service ServiceI, log *zap.Logger) *CLI {
	return &CLI{
		service: service,
		app:     cfg.App,
		quizCfg: cfg.Quiz,
		log:     log,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "vocatrain",
		Short:         "German/French vocabulary trainer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.collectionsCommand(),
		c.importCommand(),
		c.exportCommand(),
		c.quizCommand(),
	)

	return root
}
