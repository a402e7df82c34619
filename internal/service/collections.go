package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/lwenger/vocatrain/internal/models"
)

// ErrDuplicateCollection is returned when an import targets an existing
// collection name without explicit overwrite consent.
var ErrDuplicateCollection = errors.New("collection already exists")

// CollectionS owns the in-memory store. It is loaded wholesale at startup
// and persisted wholesale after every mutation; a failing save is a warning,
// never a crash, and the mutation stays visible in memory.
type CollectionS struct {
	repo  StoreRI
	log   *zap.Logger
	store models.Store
}

func NewCollectionService(repo StoreRI, log *zap.Logger) *CollectionS {
	return &CollectionS{
		repo: repo,
		log:  log,
	}
}

// Load reads the persisted store, falling back to an empty one when the
// backend reports it missing, unreadable or corrupt.
func (c *CollectionS) Load(ctx context.Context) {
	store, err := c.repo.Load(ctx)
	if err != nil {
		c.log.Warn("failed to load store, starting empty", zap.Error(err))
		store = models.Store{}
	}

	c.store = store
}

// EnsureBuiltin appends the builtin seed collection unless a collection of
// that name is already present. Idempotent.
func (c *CollectionS) EnsureBuiltin(ctx context.Context) {
	for _, coll := range c.store.Collections {
		if coll.Name == builtinCollection.Name {
			return
		}
	}

	c.store.Collections = append(c.store.Collections, builtinCollection)
	c.persist(ctx)
}

// AddOrReplace stores coll under its name. An existing collection of the
// same name is only replaced when overwrite is set.
func (c *CollectionS) AddOrReplace(ctx context.Context, coll models.Collection, overwrite bool) error {
	for i := range c.store.Collections {
		if c.store.Collections[i].Name != coll.Name {
			continue
		}
		if !overwrite {
			return fmt.Errorf("%w: %q", ErrDuplicateCollection, coll.Name)
		}

		c.store.Collections[i] = coll
		c.persist(ctx)
		return nil
	}

	c.store.Collections = append(c.store.Collections, coll)
	c.persist(ctx)
	return nil
}

func (c *CollectionS) Collections() []models.Collection {
	return c.store.Collections
}

// AllEntries flattens every collection, tagging each entry with the name of
// the collection it came from.
func (c *CollectionS) AllEntries() []models.Entry {
	var out []models.Entry
	for _, coll := range c.store.Collections {
		for _, item := range coll.Items {
			out = append(out, models.Entry{De: item.De, Fr: item.Fr, Source: coll.Name})
		}
	}
	return out
}

// EntriesFor returns the entries of one collection, or all entries when
// name is empty.
func (c *CollectionS) EntriesFor(name string) []models.Entry {
	if name == "" {
		return c.AllEntries()
	}

	var out []models.Entry
	for _, coll := range c.store.Collections {
		if coll.Name != name {
			continue
		}
		for _, item := range coll.Items {
			out = append(out, models.Entry{De: item.De, Fr: item.Fr, Source: coll.Name})
		}
	}
	return out
}

// Export writes the store to w in the same indented JSON shape as the
// persisted file.
func (c *CollectionS) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(c.store); err != nil {
		return fmt.Errorf("failed to export store: %w", err)
	}

	return nil
}

func (c *CollectionS) persist(ctx context.Context) {
	if err := c.repo.Save(ctx, c.store); err != nil {
		c.log.Warn("failed to save store, changes kept in memory only", zap.Error(err))
	}
}
