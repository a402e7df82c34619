package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/models"
)

// CollectionWriterI is the slice of the collection service the importer
// needs to land its result.
type CollectionWriterI interface {
	AddOrReplace(ctx context.Context, coll models.Collection, overwrite bool) error
}

type ImportS struct {
	importer ImporterI
	colls    CollectionWriterI
	log      *zap.Logger
}

func NewImportService(importer ImporterI, colls CollectionWriterI, log *zap.Logger) *ImportS {
	return &ImportS{
		importer: importer,
		colls:    colls,
		log:      log,
	}
}

// ImportDocument parses raw document bytes and stores the result as a named
// collection. The error taxonomy passes through: an unavailable parser or
// an empty document from the importer, a duplicate name from the store.
func (s *ImportS) ImportDocument(ctx context.Context, data []byte, nameHint string, overwrite bool) (models.Collection, error) {
	name, pairs, err := s.importer.Import(data, nameHint)
	if err != nil {
		s.log.Warn("import failed", zap.String("name_hint", nameHint), zap.Error(err))
		return models.Collection{}, err
	}

	coll := models.Collection{Name: name, Items: pairs}

	if err := s.colls.AddOrReplace(ctx, coll, overwrite); err != nil {
		return models.Collection{}, err
	}

	s.log.Info("imported collection",
		zap.String("name", name),
		zap.Int("entries", len(pairs)),
		zap.Bool("overwrite", overwrite))

	return coll, nil
}
