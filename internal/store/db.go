package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
	ErrConflict      = errors.New("record was modified concurrently")
)

type Store struct {
	DB *sql.DB
}

func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	// SQLite allows a single writer; serialize through one connection to avoid SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	return &Store{DB: db}, nil
}

// Initialize applies pending migrations and seeds the catalog on first run.
// It is safe to call on every start.
func (s *Store) Initialize(ctx context.Context) error {
	if err := s.Migrate(ctx, Migrations, "migrations"); err != nil {
		return err
	}
	if err := s.Seed(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func wrap(op string, err error) error {
	slog.Debug("Store operation failed", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
