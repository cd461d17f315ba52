package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"ticket-marketplace/internal/marketplace/repository"
	"ticket-marketplace/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a Ledger backed by the indexer's PostgreSQL read model.
func New(db *sql.DB, l log.Logger) repository.Ledger {
	if db == nil {
		panic("marketplace/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Open connects to PostgreSQL, waiting for the server to come up, and
// makes sure the read-model tables exist.
func Open(ctx context.Context, dsn string, attempts int, wait time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping failed after retries: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}
	return db, nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("marketplace/repository/postgre.%s", method)
}
