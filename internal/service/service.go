package service

import (
	"context"
	"math/rand"

	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/models"
)

// StoreRI loads and persists the whole vocabulary store.
type StoreRI interface {
	Load(ctx context.Context) (models.Store, error)
	Save(ctx context.Context, store models.Store) error
}

// ImporterI extracts named, deduplicated pairs from raw document bytes.
type ImporterI interface {
	Import(data []byte, nameHint string) (string, []models.Pair, error)
}

type Service struct {
	*CollectionS
	*ImportS
	*QuizS
}

func InitServices(repo StoreRI, imp ImporterI, rng *rand.Rand, log *zap.Logger) *Service {
	colls := NewCollectionService(repo, log)

	return &Service{
		CollectionS: colls,
		ImportS:     NewImportService(imp, colls, log),
		QuizS:       NewQuizService(colls, rng, log),
	}
}
