package repository

import (
	"context"
	"fmt"

	"github.com/lwenger/vocatrain/internal/models"
)

// SQLiteStore persists the store in a local sqlite database. Like the JSON
// backend it is wholesale: save rewrites every row.
type SQLiteStore struct {
	db QueryI
}

func NewSQLiteStore(db QueryI) *SQLiteStore {
	return &SQLiteStore{
		db: db,
	}
}

type collectionRow struct {
	Name string `db:"name"`
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Store, error) {
	query := `SELECT name FROM collections ORDER BY pos`

	var colls []collectionRow
	if err := s.db.SelectContext(ctx, &colls, query); err != nil {
		return models.Store{}, fmt.Errorf("failed to load collections: %w", err)
	}

	var store models.Store
	for _, c := range colls {
		query := `SELECT de, fr FROM entries WHERE collection = ? ORDER BY pos`

		var items []models.Pair
		if err := s.db.SelectContext(ctx, &items, query, c.Name); err != nil {
			return models.Store{}, fmt.Errorf("failed to load entries of %q: %w", c.Name, err)
		}

		store.Collections = append(store.Collections, models.Collection{Name: c.Name, Items: items})
	}

	return store, nil
}

func (s *SQLiteStore) Save(ctx context.Context, store models.Store) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM collections`); err != nil {
		return fmt.Errorf("failed to clear collections: %w", err)
	}

	for ci, coll := range store.Collections {
		query := `INSERT INTO collections (name, pos) VALUES (?, ?)`
		if _, err := s.db.ExecContext(ctx, query, coll.Name, ci); err != nil {
			return fmt.Errorf("failed to insert collection %q: %w", coll.Name, err)
		}

		for pi, item := range coll.Items {
			query := `INSERT INTO entries (collection, de, fr, pos) VALUES (?, ?, ?, ?)`
			if _, err := s.db.ExecContext(ctx, query, coll.Name, item.De, item.Fr, pi); err != nil {
				return fmt.Errorf("failed to insert entry into %q: %w", coll.Name, err)
			}
		}
	}

	return nil
}
