package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Record is a row of ignitegen_generations.
type Record struct {
	Cluster        string
	Checksum       string
	CodegenVersion string
	FileNames      []string
	GeneratedAt    time.Time
}

// Ledger records completed generations in PostgreSQL.
type Ledger struct {
	db Execer
}

// NewLedger returns a ledger using db. The Execer is typically *sql.DB but
// can be *sql.Tx for testing.
func NewLedger(db Execer) *Ledger {
	return &Ledger{db: db}
}

// EnsureSchema creates the generations table if it doesn't exist.
func (l *Ledger) EnsureSchema(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, generationsDDL); err != nil {
		return fmt.Errorf("applying generations DDL: %w", err)
	}
	return nil
}

// Last returns the most recent record of cluster, or nil if none exists.
func (l *Ledger) Last(ctx context.Context, cluster string) (*Record, error) {
	// First check if the generations table exists
	var tableExists bool
	err := l.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pg_class c
			JOIN pg_namespace n ON n.oid = c.relnamespace
			WHERE c.relname = 'ignitegen_generations'
			AND n.nspname = current_schema()
		)
	`).Scan(&tableExists)
	if err != nil {
		return nil, fmt.Errorf("checking ignitegen_generations table: %w", err)
	}
	if !tableExists {
		return nil, nil
	}

	rec := Record{Cluster: cluster}
	err = l.db.QueryRowContext(ctx, `
		SELECT checksum, codegen_version, file_names, generated_at
		FROM ignitegen_generations
		WHERE cluster = $1
		ORDER BY id DESC
		LIMIT 1
	`, cluster).Scan(&rec.Checksum, &rec.CodegenVersion, pq.Array(&rec.FileNames), &rec.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying last generation of %s: %w", cluster, err)
	}
	return &rec, nil
}

// Record inserts rec.
func (l *Ledger) Record(ctx context.Context, rec Record) error {
	_, err := l.db.ExecContext(ctx, `
		INSERT INTO ignitegen_generations (cluster, checksum, codegen_version, file_names)
		VALUES ($1, $2, $3, $4)
	`, rec.Cluster, rec.Checksum, rec.CodegenVersion, pq.Array(rec.FileNames))
	if err != nil {
		return fmt.Errorf("inserting generation record: %w", err)
	}
	return nil
}

// ShouldSkip reports whether last already covers checksum at version.
func ShouldSkip(last *Record, checksum, version string) bool {
	if last == nil {
		return false
	}
	return last.Checksum == checksum && last.CodegenVersion == version
}
