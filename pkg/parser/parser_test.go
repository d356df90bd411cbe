package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClusterBytes_YAML(t *testing.T) {
	content := []byte(`
name: prod
discovery:
  kind: Multicast
  Multicast:
    multicastGroup: 228.1.2.4
    multicastPort: 47401
swapSpaceSpi:
  FileSwapSpaceSpi:
    maximumSparsity: 0.7
caches:
  - name: people
    backups: 0
`)

	cluster, err := ParseClusterBytes(content)
	require.NoError(t, err)

	assert.Equal(t, "prod", cluster.String("name"))
	assert.Equal(t, int64(47401), cluster.Value("discovery.Multicast.multicastPort"))
	assert.Equal(t, 0.7, cluster.Value("swapSpaceSpi.FileSwapSpaceSpi.maximumSparsity"))

	caches := cluster.Caches()
	require.Len(t, caches, 1)
	assert.Equal(t, int64(0), caches[0].Value("backups"))
}

func TestParseClusterBytes_JSON(t *testing.T) {
	content := []byte(`{"name": "dev", "includeEventTypes": ["EVTS_CACHE", "EVTS_TASK_EXECUTION"]}`)

	cluster, err := ParseClusterBytes(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"EVTS_CACHE", "EVTS_TASK_EXECUTION"}, cluster.Strings("includeEventTypes"))
}

func TestParseClusterBytes_Errors(t *testing.T) {
	t.Run("list root", func(t *testing.T) {
		_, err := ParseClusterBytes([]byte("- a\n- b\n"))
		require.ErrorIs(t, err, ErrNotAnObject)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := ParseClusterBytes([]byte("name: [unclosed"))
		require.Error(t, err)
	})
}

func TestParseCluster_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\n"), 0o644))

	cluster, err := ParseCluster(path)
	require.NoError(t, err)
	assert.Equal(t, "file", cluster.String("name"))

	_, err = ParseCluster(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
