package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
	"github.com/lwenger/vocatrain/internal/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	name TEXT PRIMARY KEY,
	pos  INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	collection TEXT NOT NULL REFERENCES collections(name) ON DELETE CASCADE,
	de         TEXT NOT NULL,
	fr         TEXT NOT NULL,
	pos        INTEGER NOT NULL
);`

func InitDB(cfg config.SQLiteConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	// Single-user tool, single writer.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed init schema: %w", err)
	}

	return db, nil
}
