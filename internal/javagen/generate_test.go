package javagen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/javagen"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func sampleCluster() model.Object {
	return model.Object{
		"name": "sandbox",
		"discovery": map[string]any{
			"kind":      "Multicast",
			"localPort": int64(48500),
			"Multicast": map[string]any{
				"multicastGroup": "228.1.2.4",
			},
		},
		"includeEventTypes": []any{"EVTS_CACHE", "EVTS_DISCOVERY"},
		"caches": []any{
			map[string]any{
				"name":      "Person",
				"cacheMode": "PARTITIONED",
				"backups":   int64(1),
				"cacheStoreFactory": map[string]any{
					"kind": "CacheJdbcPojoStoreFactory",
					"CacheJdbcPojoStoreFactory": map[string]any{
						"dataSourceBean": "dsH2",
						"dialect":        "H2",
					},
				},
				"domains": []any{
					map[string]any{
						"keyType":       "Integer",
						"valueType":     "org.example.Person",
						"databaseTable": "PERSON",
					},
				},
				"clientNearConfiguration": map[string]any{"enabled": true, "nearStartSize": int64(1024)},
			},
		},
	}
}

func generate(t *testing.T, cluster model.Object, opts javagen.Options) string {
	t.Helper()
	out, err := javagen.Generate(cluster, opts)
	require.NoError(t, err)
	return string(out)
}

func TestGenerateServerConfiguration(t *testing.T) {
	out := generate(t, sampleCluster(), javagen.Options{Package: "org.example.config"})

	assert.True(t, strings.HasPrefix(out, "package org.example.config;\n\n"))
	assert.Contains(t, out, "import org.apache.ignite.configuration.IgniteConfiguration;\n")
	assert.Contains(t, out, "import static org.apache.ignite.events.EventType.EVTS_CACHE;\n")
	assert.Contains(t, out, "public class ServerConfigurationFactory {\n")
	assert.Contains(t, out, "    public static IgniteConfiguration createConfiguration() throws Exception {\n")
	assert.NotContains(t, out, "import java.lang.")

	// The discovery SPI is touched by two sections but built once.
	assert.Equal(t, 1, strings.Count(out, "new TcpDiscoverySpi()"))
	assert.Equal(t, 1, strings.Count(out, "discovery.setLocalPort(48500);"))
	assert.Contains(t, out, "discovery.setIpFinder(new TcpDiscoveryMulticastIpFinder());")
	assert.NotContains(t, out, "setMulticastGroup")

	// Event union.
	assert.Contains(t, out, "int[] events = new int[EVTS_CACHE.length + EVTS_DISCOVERY.length];")

	// Cache configuration split into its own method.
	assert.Contains(t, out, "cfg.setCacheConfiguration(cachePerson());")
	assert.Contains(t, out, "    public static CacheConfiguration cachePerson() throws Exception {\n")
	assert.Contains(t, out, "    public static JdbcType jdbcTypePerson() throws Exception {\n")
	assert.Contains(t, out, "types[0] = jdbcTypePerson();")

	// Store factory bound to the data source singleton.
	assert.Contains(t, out, "CacheJdbcPojoStoreFactory cacheStoreFactory = new CacheJdbcPojoStoreFactory() {")
	assert.Contains(t, out, "setDataSource(DataSources.INSTANCE_dsH2);")
	assert.Contains(t, out, "    public static class DataSources {\n")
	assert.Contains(t, out, "public static final JdbcDataSource INSTANCE_dsH2 = createDsH2();")
	assert.Contains(t, out, `dsH2.setURL(props.getProperty("dsH2.jdbc.url"));`)

	// Secrets loader.
	assert.Contains(t, out, "private static final Properties props = new Properties();")
	assert.Contains(t, out, `ServerConfigurationFactory.class.getClassLoader().getResourceAsStream("secret.properties")`)
	assert.Contains(t, out, "import java.io.InputStream;\n")

	// Server nodes get no near cache factories.
	assert.NotContains(t, out, "nearConfigurationPerson")
}

func TestGenerateSectionOrder(t *testing.T) {
	out := generate(t, sampleCluster(), javagen.Options{})

	order := []string{
		"private static final Properties props",
		"public static class DataSources",
		"public static IgniteConfiguration createConfiguration()",
		"public static CacheConfiguration cachePerson()",
		"public static JdbcType jdbcTypePerson()",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(out, s)
		require.GreaterOrEqual(t, i, 0, "missing %q", s)
		assert.Greater(t, i, last, "%q out of order", s)
		last = i
	}
}

func TestGenerateClientConfiguration(t *testing.T) {
	out := generate(t, sampleCluster(), javagen.Options{Client: true})

	assert.Contains(t, out, "public class ClientConfigurationFactory {\n")
	assert.Contains(t, out, "cfg.setClientMode(true);")
	assert.Contains(t, out, "import org.apache.ignite.configuration.NearCacheConfiguration;\n")
	assert.Contains(t, out, "    public static NearCacheConfiguration nearConfigurationPerson() throws Exception {\n")
	assert.Contains(t, out, "nearConfigurationPerson.setNearStartSize(1024);")

	near := strings.Index(out, "nearConfigurationPerson()")
	root := strings.Index(out, "createConfiguration()")
	assert.Less(t, near, root)
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := generate(t, sampleCluster(), javagen.Options{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, generate(t, sampleCluster(), javagen.Options{}))
	}
}

func TestGenerateEmptyCluster(t *testing.T) {
	out := generate(t, model.Object{}, javagen.Options{})

	assert.Contains(t, out, "        IgniteConfiguration cfg = new IgniteConfiguration();\n")
	assert.Contains(t, out, "        return cfg;\n")
	assert.NotContains(t, out, "cfg.setCacheConfiguration")
	assert.NotContains(t, out, "Properties")
	assert.NotContains(t, out, "DataSources")
	assert.NotContains(t, out, "import static")
}

func TestGenerateRejectsInvalidNames(t *testing.T) {
	_, err := javagen.Generate(model.Object{}, javagen.Options{Package: "org..bad"})
	assert.ErrorIs(t, err, javagen.ErrInvalidOptions)

	_, err = javagen.Generate(model.Object{}, javagen.Options{Class: "1Config"})
	assert.ErrorIs(t, err, javagen.ErrInvalidOptions)
}
