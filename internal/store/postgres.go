package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ssidorov-gg/apache-ignite/pkg/model"
	"github.com/ssidorov-gg/apache-ignite/pkg/parser"
)

// Postgres stores documents in the ignitegen_clusters table. Decoded
// documents are kept in an LRU cache.
type Postgres struct {
	db     *sql.DB
	cache  *lru.Cache[string, model.Object]
	logger *slog.Logger

	schemaOnce sync.Once
	schemaErr  error
}

// NewPostgres connects to cfg.DSN with the pgx driver.
func NewPostgres(ctx context.Context, cfg Config) (*Postgres, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s, err := New(db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database. The store owns db and closes it on Close.
func New(db *sql.DB, cfg Config) (*Postgres, error) {
	cache, err := lru.New[string, model.Object](cfg.cacheSize())
	if err != nil {
		return nil, fmt.Errorf("creating document cache: %w", err)
	}
	return &Postgres{db: db, cache: cache, logger: cfg.logger()}, nil
}

// DB returns the underlying database, for use by a Ledger.
func (s *Postgres) DB() *sql.DB { return s.db }

// EnsureSchema creates the clusters table once per store.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	s.schemaOnce.Do(func() {
		if _, err := s.db.ExecContext(ctx, clustersDDL); err != nil {
			s.schemaErr = fmt.Errorf("applying clusters DDL: %w", err)
		}
	})
	return s.schemaErr
}

// List implements Store.
func (s *Postgres) List(ctx context.Context) ([]string, error) {
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM ignitegen_clusters ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying clusters: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning cluster id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Get implements Store.
func (s *Postgres) Get(ctx context.Context, id string) (model.Object, error) {
	if doc, ok := s.cache.Get(id); ok {
		s.logger.Debug("cluster cache hit", "cluster", id)
		return doc, nil
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document::text FROM ignitegen_clusters WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying cluster %s: %w", id, err)
	}

	doc, err := parser.ParseClusterBytes([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding cluster %s: %w", id, err)
	}
	s.cache.Add(id, doc)
	return doc, nil
}

// Put implements Store.
func (s *Postgres) Put(ctx context.Context, id string, doc model.Object) error {
	if !validID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding cluster %s: %w", id, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO ignitegen_clusters (id, document)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = now()
	`, id, string(data))
	if err != nil {
		return fmt.Errorf("storing cluster %s: %w", id, err)
	}

	s.cache.Remove(id)
	return nil
}

// Close implements Store.
func (s *Postgres) Close() error {
	s.cache.Purge()
	return s.db.Close()
}
