package doctor_test

import (
	"bytes"
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/doctor"
	"github.com/ssidorov-gg/apache-ignite/internal/store"
	"github.com/ssidorov-gg/apache-ignite/pkg/generator"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func healthyCluster() model.Object {
	return model.Object{
		"name":              "prod",
		"discovery":         map[string]any{"kind": "Vm", "Vm": map[string]any{"addresses": []any{"127.0.0.1:47500..47509"}}},
		"includeEventTypes": []any{"EVTS_CACHE"},
		"caches": []any{
			map[string]any{
				"name": "Person",
				"cacheStoreFactory": map[string]any{
					"kind": "CacheJdbcPojoStoreFactory",
					"CacheJdbcPojoStoreFactory": map[string]any{
						"dataSourceBean": "dsH2",
						"dialect":        "H2",
					},
				},
			},
		},
	}
}

func find(t *testing.T, r *doctor.Report, name string) doctor.CheckResult {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "check not found", "no check named %q", name)
	return doctor.CheckResult{}
}

func TestRunHealthyCluster(t *testing.T) {
	r, err := doctor.New(doctor.Options{}).Run(context.Background(), "prod", healthyCluster())
	require.NoError(t, err)

	assert.False(t, r.HasErrors())
	assert.Equal(t, doctor.StatusPass, find(t, r, "known").Status)
	assert.Equal(t, doctor.StatusPass, find(t, r, "groups").Status)
	assert.Equal(t, doctor.StatusPass, find(t, r, "generate").Status)

	sources := find(t, r, "singletons")
	assert.Equal(t, "1 data sources", sources.Message)
	assert.Equal(t, "dsH2", sources.Details)

	// Data source credentials are read from the secrets file.
	assert.Equal(t, doctor.StatusWarn, find(t, r, "secrets").Status)
}

func TestRunReportsProblems(t *testing.T) {
	cluster := healthyCluster()
	cluster["name"] = ""
	cluster["discovery"] = map[string]any{"kind": "Carrier"}
	cluster["includeEventTypes"] = []any{"EVTS_CACHE", "EVTS_BOGUS"}
	cluster["caches"] = []any{
		map[string]any{
			"name": "Person",
			"cacheStoreFactory": map[string]any{
				"kind": "CacheJdbcPojoStoreFactory",
				"CacheJdbcPojoStoreFactory": map[string]any{
					"dataSourceBean": "dsX",
					"dialect":        "Access",
				},
			},
			"evictionPolicy": map[string]any{"kind": "RANDOM"},
		},
		map[string]any{"name": "Person"},
	}

	r, err := doctor.New(doctor.Options{}).Run(context.Background(), "", cluster)
	require.NoError(t, err)

	assert.Equal(t, doctor.StatusWarn, find(t, r, "name").Status)

	dups := find(t, r, "cache_names")
	assert.Equal(t, doctor.StatusWarn, dups.Status)
	assert.Contains(t, dups.Message, "Person")

	kinds := find(t, r, "known")
	assert.Equal(t, doctor.StatusWarn, kinds.Status)
	assert.Contains(t, kinds.Details, `cluster: `)
	assert.Contains(t, kinds.Details, `kind "Carrier"`)
	assert.Contains(t, kinds.Details, `cache Person: `)
	assert.Contains(t, kinds.Details, `kind "RANDOM"`)

	events := find(t, r, "groups")
	assert.Equal(t, doctor.StatusWarn, events.Status)
	assert.Contains(t, events.Message, "EVTS_BOGUS")
	assert.NotContains(t, events.Message, "EVTS_CACHE")

	dialects := find(t, r, "dialects")
	assert.Equal(t, doctor.StatusFail, dialects.Status)
	assert.Contains(t, dialects.Details, `dialect "Access"`)
	assert.True(t, r.HasErrors())
}

func TestRunGenerationFailure(t *testing.T) {
	opts := doctor.Options{Generator: generator.Options{Dialect: "spring"}}
	r, err := doctor.New(opts).Run(context.Background(), "prod", healthyCluster())
	require.NoError(t, err)

	gen := find(t, r, "generate")
	assert.Equal(t, doctor.StatusFail, gen.Status)
	assert.Contains(t, gen.Details, "not implemented")
}

func TestRunLedger(t *testing.T) {
	cluster := healthyCluster()
	checksum := generator.Checksum(cluster, generator.Options{})

	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		status   doctor.Status
		contains string
	}{
		{
			name:     "never generated",
			rows:     sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}),
			status:   doctor.StatusWarn,
			contains: "No generation recorded",
		},
		{
			name: "in sync",
			rows: sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}).
				AddRow(checksum, generator.CodegenVersion, "{A.java}", time.Now()),
			status:   doctor.StatusPass,
			contains: "up to date",
		},
		{
			name: "changed",
			rows: sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}).
				AddRow("0000", generator.CodegenVersion, "{A.java}", time.Now()),
			status:   doctor.StatusWarn,
			contains: "changed since last generation",
		},
		{
			name: "codegen upgraded",
			rows: sqlmock.NewRows([]string{"checksum", "codegen_version", "file_names", "generated_at"}).
				AddRow(checksum, "0", "{A.java}", time.Now()),
			status:   doctor.StatusWarn,
			contains: "Codegen version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (")).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
			mock.ExpectQuery(regexp.QuoteMeta("FROM ignitegen_generations")).
				WithArgs("prod").
				WillReturnRows(tt.rows)

			d := doctor.New(doctor.Options{Ledger: store.NewLedger(db)})
			r, err := d.Run(context.Background(), "prod", cluster)
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())

			var state doctor.CheckResult
			for _, c := range r.Checks {
				if c.Category == "Generation State" {
					state = c
				}
			}
			assert.Equal(t, tt.status, state.Status)
			assert.Contains(t, state.Message, tt.contains)
		})
	}
}

func TestReportPrint(t *testing.T) {
	r := &doctor.Report{}
	r.AddCheck(doctor.CheckResult{Category: "A", Name: "a1", Status: doctor.StatusPass, Message: "fine"})
	r.AddCheck(doctor.CheckResult{Category: "B", Name: "b1", Status: doctor.StatusWarn, Message: "hmm", Details: "line1\nline2", FixHint: "do it"})
	r.AddCheck(doctor.CheckResult{Category: "A", Name: "a2", Status: doctor.StatusFail, Message: "broken"})

	var quiet, verbose bytes.Buffer
	r.Print(&quiet, false)
	r.Print(&verbose, true)

	assert.Equal(t, "\nA\n  ✓ fine\n  ✗ broken\n\nB\n  ⚠ hmm\n      Fix: do it\n\nSummary: 1 passed, 1 warnings, 1 errors\n", quiet.String())
	assert.Contains(t, verbose.String(), "      line1\n      line2\n")
	assert.True(t, r.HasErrors())
}
