// Package store persists cluster documents and records generation history.
//
// Cluster documents live either in a directory of YAML/JSON files or in the
// PostgreSQL table ignitegen_clusters. The Ledger records, per cluster, the
// checksum of the last generation so unchanged clusters can be skipped.
package store

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// ErrNotFound is returned when a cluster does not exist.
var ErrNotFound = errors.New("cluster not found")

// ErrInvalidID is returned for cluster identifiers that cannot be stored.
var ErrInvalidID = errors.New("invalid cluster id")

// Store reads and writes cluster documents by identifier.
type Store interface {
	// List returns all cluster identifiers in sorted order.
	List(ctx context.Context) ([]string, error)

	// Get returns the document of cluster id or ErrNotFound.
	// Callers must not mutate the returned document.
	Get(ctx context.Context, id string) (model.Object, error)

	// Put creates or replaces the document of cluster id.
	Put(ctx context.Context, id string, doc model.Object) error

	Close() error
}

// Config selects and configures a Store.
type Config struct {
	// Dir is the directory of the file store.
	Dir string

	// DSN selects the PostgreSQL store when non-empty.
	DSN string

	// CacheSize bounds the decoded document cache of the PostgreSQL store.
	// Zero selects DefaultCacheSize.
	CacheSize int

	// Logger receives debug records. Nil selects slog.Default().
	Logger *slog.Logger
}

// DefaultCacheSize is the number of decoded documents kept in memory.
const DefaultCacheSize = 128

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c Config) cacheSize() int {
	if c.CacheSize <= 0 {
		return DefaultCacheSize
	}
	return c.CacheSize
}

// Open returns the PostgreSQL store when cfg.DSN is set, the file store
// otherwise.
func Open(ctx context.Context, cfg Config) (Store, error) {
	if strings.TrimSpace(cfg.DSN) != "" {
		return NewPostgres(ctx, cfg)
	}
	return NewFile(cfg.Dir), nil
}

func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && id != "." && id != ".."
}
