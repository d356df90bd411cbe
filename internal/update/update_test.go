package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/version"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "patch", a: "1.0.0", b: "1.0.1", want: -1},
		{name: "patch reversed", a: "1.0.1", b: "1.0.0", want: 1},
		{name: "equal", a: "1.0.0", b: "1.0.0", want: 0},
		{name: "v prefix", a: "v1.0.0", b: "1.0.1", want: -1},
		{name: "mixed prefix equal", a: "v1.2.0", b: "1.2.0", want: 0},
		{name: "minor", a: "1.0.0", b: "1.1.0", want: -1},
		{name: "major", a: "2.0.0", b: "1.9.9", want: 1},
		{name: "two digit minor", a: "0.10.0", b: "0.9.0", want: 1},
		{name: "dev newer", a: "dev", b: "999.0.0", want: 1},
		{name: "release older than dev", a: "1.0.0", b: "dev", want: -1},
		{name: "prerelease older", a: "1.0.0-beta", b: "1.0.0", want: -1},
		{name: "garbage first", a: "unknown", b: "0.0.1", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareVersions(tt.a, tt.b))
		})
	}
}

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")

	dir, err := cacheDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "ignitegen"), dir)
}

func withVersion(t *testing.T, v string) {
	t.Helper()
	prev := version.Version
	version.Version = v
	t.Cleanup(func() { version.Version = prev })
}

func TestCheckFetchesAndCaches(t *testing.T) {
	withVersion(t, "1.0.0")

	var (
		hits  atomic.Int32
		agent atomic.Value
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		agent.Store(r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0","html_url":"https://example.com/r/1.2.0"}`))
	}))
	defer srv.Close()

	prevURL := ReleasesURL
	ReleasesURL = srv.URL
	t.Cleanup(func() { ReleasesURL = prevURL })

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c := &Checker{Dir: t.TempDir(), Client: srv.Client(), Now: func() time.Time { return now }}

	info, err := c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", info.LatestVersion)
	assert.Equal(t, "https://example.com/r/1.2.0", info.ReleaseURL)
	assert.True(t, info.UpdateAvailable)
	assert.FileExists(t, filepath.Join(c.Dir, cacheFile))
	assert.Equal(t, "ignitegen/1.0.0", agent.Load())

	// Served from the cache within the TTL.
	withVersion(t, "1.2.0")
	info, err = c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
	assert.False(t, info.UpdateAvailable)

	// Expired cache goes back to the endpoint.
	now = now.Add(cacheTTL + time.Minute)
	_, err = c.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, "ignitegen/1.2.0", agent.Load())
}

func TestCheckHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	prevURL := ReleasesURL
	ReleasesURL = srv.URL
	t.Cleanup(func() { ReleasesURL = prevURL })

	dir := t.TempDir()
	_, err := (&Checker{Dir: dir, Client: srv.Client()}).Check(context.Background())
	require.ErrorContains(t, err, "status 403")

	_, statErr := os.Stat(filepath.Join(dir, cacheFile))
	assert.True(t, os.IsNotExist(statErr))
}
