package store_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/store"
)

const (
	tableExists    = "SELECT EXISTS ("
	lastGeneration = "FROM ignitegen_generations"
	insertRecord   = "INSERT INTO ignitegen_generations"
)

func newMockLedger(t *testing.T) (*store.Ledger, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return store.NewLedger(db), mock
}

func TestLedgerEnsureSchema(t *testing.T) {
	l, mock := newMockLedger(t)
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS ignitegen_generations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, l.EnsureSchema(context.Background()))
}

func TestLedgerLast(t *testing.T) {
	ctx := context.Background()

	t.Run("missing table", func(t *testing.T) {
		l, mock := newMockLedger(t)
		mock.ExpectQuery(regexp.QuoteMeta(tableExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		rec, err := l.Last(ctx, "prod")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("no rows", func(t *testing.T) {
		l, mock := newMockLedger(t)
		mock.ExpectQuery(regexp.QuoteMeta(tableExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(regexp.QuoteMeta(lastGeneration)).
			WithArgs("prod").
			WillReturnRows(sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}))

		rec, err := l.Last(ctx, "prod")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("latest row", func(t *testing.T) {
		l, mock := newMockLedger(t)
		at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta(tableExists)).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery(regexp.QuoteMeta(lastGeneration)).
			WithArgs("prod").
			WillReturnRows(sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}).
				AddRow("abc", "1", "{a/B.java,C.java}", at))

		rec, err := l.Last(ctx, "prod")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "prod", rec.Cluster)
		assert.Equal(t, "abc", rec.Checksum)
		assert.Equal(t, "1", rec.CodegenVersion)
		assert.Equal(t, []string{"a/B.java", "C.java"}, rec.FileNames)
		assert.Equal(t, at, rec.GeneratedAt)
	})
}

func TestLedgerRecord(t *testing.T) {
	l, mock := newMockLedger(t)
	mock.ExpectExec(regexp.QuoteMeta(insertRecord)).
		WithArgs("prod", "abc", "1", "{\"a/B.java\"}").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := l.Record(context.Background(), store.Record{
		Cluster:        "prod",
		Checksum:       "abc",
		CodegenVersion: "1",
		FileNames:      []string{"a/B.java"},
	})
	require.NoError(t, err)
}

func TestShouldSkip(t *testing.T) {
	last := &store.Record{Checksum: "abc", CodegenVersion: "1"}

	tests := []struct {
		name     string
		last     *store.Record
		checksum string
		version  string
		want     bool
	}{
		{"no previous generation", nil, "abc", "1", false},
		{"unchanged", last, "abc", "1", true},
		{"document changed", last, "def", "1", false},
		{"codegen upgraded", last, "abc", "2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, store.ShouldSkip(tt.last, tt.checksum, tt.version))
		})
	}
}
