package cli

import (
	"bytes"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/config"
	"github.com/lwenger/vocatrain/internal/importer"
	"github.com/lwenger/vocatrain/internal/models"
	"github.com/lwenger/vocatrain/internal/service"
)

type repoStub struct {
	store models.Store
	saves int
}

func (r *repoStub) Load(_ context.Context) (models.Store, error) {
	return r.store, nil
}

func (r *repoStub) Save(_ context.Context, store models.Store) error {
	r.saves++
	r.store = store
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{SourceLang: "Deutsch", TargetLang: "Französisch"},
		Quiz:    config.QuizConfig{MinQuestions: 1, MaxQuestions: 100, DefaultQuestions: 4},
		Storage: config.StorageConfig{Backend: "json"},
		Env:     "development",
	}
}

// newTestCLI wires real services over an in-memory store so the commands
// run end to end. The optional parser backs the import command.
func newTestCLI(t *testing.T, store models.Store, parser importer.Parser, input string) (*CLI, *bytes.Buffer, *repoStub) {
	t.Helper()

	repo := &repoStub{store: store}
	services := service.InitServices(repo, importer.New(parser), rand.New(rand.NewSource(21)), zap.NewNop())
	services.Load(context.Background())

	c := New(testConfig(), services, zap.NewNop())

	out := &bytes.Buffer{}
	c.in = strings.NewReader(input)
	c.out = out

	return c, out, repo
}

func animalStore() models.Store {
	// Every answer is the same on purpose: the presentation order is
	// random, but "chien" is always the correct free-text answer.
	return models.Store{
		Collections: []models.Collection{
			{Name: "Tiere", Items: []models.Pair{
				{De: "Hund", Fr: "chien"},
				{De: "Rüde", Fr: "Chien"},
				{De: "Hündin", Fr: "CHIEN"},
				{De: "Welpe", Fr: "chien"},
			}},
		},
	}
}

func execute(c *CLI, args ...string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(c.out)
	root.SetErr(c.out)
	return root.Execute()
}

func TestQuizCommand_FreeTextAllCorrect(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, animalStore(), nil, "chien\nchien\nchien\nchien\n")

	err := execute(c, "quiz", "--mode", "text", "--count", "4")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Score: 4/4 (100%)")
	assert.Contains(t, out.String(), "Correct!")
}

func TestQuizCommand_FreeTextAllWrong(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, animalStore(), nil, "faux\nfaux\nfaux\nfaux\n")

	err := execute(c, "quiz", "--mode", "text", "--count", "4")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Score: 0/4 (0%)")
	assert.Contains(t, out.String(), "Wrong. Correct answer:")
}

func TestQuizCommand_EmptyAnswerRepromptsSameQuestion(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, animalStore(), nil, "\nchien\nchien\nchien\nchien\n")

	err := execute(c, "quiz", "--mode", "text", "--count", "4")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Please enter an answer.")
	assert.Contains(t, out.String(), "Score: 4/4 (100%)")
}

func TestQuizCommand_MultipleChoiceByNumber(t *testing.T) {
	t.Parallel()

	// All options normalize to "chien", so option 1 is always correct.
	c, out, _ := newTestCLI(t, animalStore(), nil, "1\n1\n1\n1\n")

	err := execute(c, "quiz", "--mode", "choice", "--count", "4")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "1)")
	assert.Contains(t, out.String(), "Score: 4/4 (100%)")
}

func TestQuizCommand_PoolTooSmall(t *testing.T) {
	t.Parallel()

	small := models.Store{
		Collections: []models.Collection{
			{Name: "Tiere", Items: []models.Pair{{De: "Hund", Fr: "chien"}}},
		},
	}
	c, _, _ := newTestCLI(t, small, nil, "")

	err := execute(c, "quiz", "--mode", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough entries")
}

func TestQuizCommand_UnknownDirection(t *testing.T) {
	t.Parallel()

	c, _, _ := newTestCLI(t, animalStore(), nil, "")

	err := execute(c, "quiz", "--direction", "de-en")
	require.Error(t, err)
}

func TestCollectionsCommand(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, animalStore(), nil, "")

	require.NoError(t, execute(c, "collections"))

	assert.Contains(t, out.String(), "Tiere: 4 entries")
	assert.Contains(t, out.String(), "Total: 4 entries")
}

func TestCollectionsCommand_EmptyStore(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, models.Store{}, nil, "")

	require.NoError(t, execute(c, "collections"))
	assert.Contains(t, out.String(), "No collections stored yet.")
}

func TestExportCommand(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestCLI(t, animalStore(), nil, "")

	require.NoError(t, execute(c, "export"))

	assert.Contains(t, out.String(), "\"collections\"")
	assert.Contains(t, out.String(), "\"Tiere\"")
}

func TestImportCommand_ParserUnavailable(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "woerter.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a real docx"), 0o644))

	// No parser wired in: the import action as a whole is unavailable.
	c, _, repo := newTestCLI(t, models.Store{}, nil, "")

	err := execute(c, "import", path)
	require.Error(t, err)
	assert.Zero(t, repo.saves)
}

type docParserStub struct {
	doc parsedDocStub
}

type parsedDocStub struct {
	tables     [][][]string
	paragraphs []string
}

func (d parsedDocStub) Tables() [][][]string { return d.tables }

func (d parsedDocStub) Paragraphs() []string { return d.paragraphs }

func (p docParserStub) Parse(_ []byte) (importer.Document, error) {
	return p.doc, nil
}

func TestImportCommand_NameHintFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Steinzeit.docx")
	require.NoError(t, os.WriteFile(path, []byte("doc"), 0o644))

	parser := docParserStub{doc: parsedDocStub{
		tables: [][][]string{{
			{"de", "fr"},
			{"Hund", "chien"},
		}},
	}}

	c, out, repo := newTestCLI(t, models.Store{}, parser, "")

	require.NoError(t, execute(c, "import", path))

	assert.Contains(t, out.String(), `Imported 1 entries into "Steinzeit".`)
	require.Len(t, repo.store.Collections, 1)
	assert.Equal(t, "Steinzeit", repo.store.Collections[0].Name)
	assert.Equal(t, []models.Pair{{De: "Hund", Fr: "chien"}}, repo.store.Collections[0].Items)

	// Re-import without overwrite is rejected and changes nothing.
	err := execute(c, "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--overwrite")
	assert.Equal(t, 1, repo.saves)
}
