package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"github.com/kilnfi/cardano-schedule-reporter/migrations"
)

// Store keeps an audit trail of successful reports in a local sqlite
// database, one row per (pool, epoch).
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore wraps an existing database handle. Used by tests; production code
// goes through Open.
func NewStore(db *sqlx.DB) *Store {
	logger := slog.With(
		slog.String("component", "history-store"),
	)
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Open connects to the sqlite database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(cctx, "sqlite3", path+"?_journal=WAL&_timeout=15000&_fk=true")
	if err != nil {
		return nil, fmt.Errorf("unable to connect to history database: %w", err)
	}
	db.SetMaxOpenConns(1)

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("unable to migrate history database: %w", err)
	}
	if err := goose.Up(db.DB, "."); err != nil {
		return nil, fmt.Errorf("unable to migrate history database: %w", err)
	}

	return NewStore(db), nil
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("unable to close history database: %w", err)
	}
	return nil
}

// RecordReport stores the outcome of a successful report.
func (s *Store) RecordReport(ctx context.Context, poolID string, epoch int, slotQty int) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := "INSERT INTO reports (pool_id, epoch, slot_qty, reported_at) VALUES (?, ?, ?, ?)"
	if _, err := s.db.ExecContext(cctx, query, poolID, epoch, slotQty, time.Now()); err != nil {
		return fmt.Errorf("unable to record report for pool %s at epoch %d: %w", poolID, epoch, err)
	}

	s.logger.Debug("report recorded", slog.String("pool_id", poolID), slog.Int("epoch", epoch))
	return nil
}

// LastReported returns the highest epoch recorded for the pool, or 0 when the
// pool has no history yet.
func (s *Store) LastReported(ctx context.Context, poolID string) (int, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var epoch int
	query := "SELECT epoch FROM reports WHERE pool_id = ? ORDER BY epoch DESC LIMIT 1"
	err := s.db.GetContext(cctx, &epoch, query, poolID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("unable to find last reported epoch for pool %s: %w", poolID, err)
	}

	return epoch, nil
}
