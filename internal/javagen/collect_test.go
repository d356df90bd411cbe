package javagen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func TestCollectImports(t *testing.T) {
	spi := bean.New("org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi")
	spi.BeanProperty("ipFinder", bean.New("org.apache.ignite.spi.discovery.tcp.ipfinder.vm.TcpDiscoveryVmIpFinder").
		CollectionProperty("addrs", "addresses", []any{"127.0.0.1"}, "String"))

	index := bean.New("org.apache.ignite.cache.QueryIndex")
	index.DerivedProperty(bean.KindString, "name", "idx")

	entity := bean.New("org.apache.ignite.cache.QueryEntity").
		BeanCollectionProperty("indexes", "indexes", []*bean.Bean{index}, "org.apache.ignite.cache.QueryIndex").
		MapEntriesProperty("fields", "fields", []model.Object{{"name": "id", "className": "java.lang.Integer"}},
			defaults.Map{KeyClass: "java.lang.String", ValClass: "java.lang.String", KeyField: "name", ValField: "className", Ordered: true})

	ccfg := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheC1", nil, nil)
	ccfg.Props = append(ccfg.Props, bean.Property{
		Kind:  bean.KindEnum,
		Name:  "cacheMode",
		Value: "LOCAL",
		Class: "org.apache.ignite.cache.CacheMode",
	})
	ccfg.VarArgProperty("indexedTypes", "indexedTypes", []any{"java.lang.Integer", "org.example.Person"}, "java.lang.Class").
		BeanCollectionProperty("entities", "queryEntities", []*bean.Bean{entity}, "org.apache.ignite.cache.QueryEntity")

	field := bean.New("org.apache.ignite.cache.store.jdbc.JdbcTypeField")
	field.Args = []bean.Argument{
		{Kind: bean.KindConstant, Class: "java.sql.Types", Value: "INTEGER"},
		{Kind: bean.KindClass, Value: "java.util.UUID"},
	}
	jdbcType := bean.New("org.apache.ignite.cache.store.jdbc.JdbcType").
		BeanVarArgProperty("keyFields", "keyFields", []*bean.Bean{field}, "org.apache.ignite.cache.store.jdbc.JdbcTypeField")

	cfg := newCfg()
	cfg.BeanProperty("discoverySpi", spi).
		BeanVarArgProperty("ccfgs", "cacheConfiguration", []*bean.Bean{ccfg}, "org.apache.ignite.configuration.CacheConfiguration").
		BeanProperty("type", jdbcType).
		BeanProperty("bin", bean.New("org.apache.ignite.binary.BinaryTypeConfiguration$Nested"))

	assert.Equal(t, []string{
		"java.sql.Types",
		"java.util.ArrayList",
		"java.util.Arrays",
		"java.util.Collection",
		"java.util.LinkedHashMap",
		"java.util.UUID",
		"org.apache.ignite.binary.BinaryTypeConfiguration",
		"org.apache.ignite.cache.CacheMode",
		"org.apache.ignite.cache.QueryEntity",
		"org.apache.ignite.cache.QueryIndex",
		"org.apache.ignite.cache.store.jdbc.JdbcType",
		"org.apache.ignite.cache.store.jdbc.JdbcTypeField",
		"org.apache.ignite.configuration.CacheConfiguration",
		"org.apache.ignite.configuration.IgniteConfiguration",
		"org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi",
		"org.apache.ignite.spi.discovery.tcp.ipfinder.vm.TcpDiscoveryVmIpFinder",
		"org.example.Person",
	}, javagen.CollectImports(cfg))
}

func TestCollectImportsStoreClass(t *testing.T) {
	ds := bean.New("org.h2.jdbcx.JdbcDataSource")
	factory := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcBlobStoreFactory").
		DataSource("dsH2", "dataSourceBean", ds)

	imports := javagen.CollectImports(bean.New("org.apache.ignite.configuration.CacheConfiguration").
		BeanProperty("cacheStoreFactory", factory))

	assert.Contains(t, imports, "org.apache.ignite.cache.store.jdbc.CacheJdbcBlobStore")
	assert.Contains(t, imports, "org.apache.ignite.cache.store.jdbc.CacheJdbcBlobStoreFactory")
	assert.Contains(t, imports, "org.h2.jdbcx.JdbcDataSource")
}

func TestCollectStaticImports(t *testing.T) {
	cfg := newCfg().EventTypes("events", "includeEventTypes", []string{"EVTS_IGFS", "EVTS_CACHE", "EVTS_BOGUS"})

	assert.Equal(t, []string{
		"org.apache.ignite.events.EventType.EVTS_CACHE",
		"org.apache.ignite.events.EventType.EVTS_IGFS",
	}, javagen.CollectStaticImports(cfg, groups()))

	assert.Empty(t, javagen.CollectStaticImports(newCfg(), groups()))
}

func TestCollectComplexBeans(t *testing.T) {
	jdbcType := bean.NewMethod("org.apache.ignite.cache.store.jdbc.JdbcType", "jdbcTypePerson", nil, nil)
	jdbcType.DerivedProperty(bean.KindString, "cacheName", "c1")

	factory := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcPojoStoreFactory").
		BeanArrayProperty("types", "types", []*bean.Bean{jdbcType}, "org.apache.ignite.cache.store.jdbc.JdbcType")

	c1 := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheC1", nil, nil)
	c1.DerivedProperty(bean.KindString, "name", "c1").
		BeanProperty("cacheStoreFactory", factory)

	c2 := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheC2", nil, nil)
	c2.DerivedProperty(bean.KindString, "name", "c2")

	empty := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheEmpty", nil, nil)

	cfg := newCfg().BeanVarArgProperty("ccfgs", "cacheConfiguration", []*bean.Bean{c1, c2, c1, empty},
		"org.apache.ignite.configuration.CacheConfiguration")

	got := javagen.CollectComplexBeans(cfg)
	require.Len(t, got, 3)
	assert.Same(t, c1, got[0])
	assert.Same(t, jdbcType, got[1])
	assert.Same(t, c2, got[2])

	assert.Empty(t, javagen.CollectComplexBeans(c2))
}

func TestCollectDataSources(t *testing.T) {
	ds1 := bean.New("org.h2.jdbcx.JdbcDataSource").SecretProperty("URL", "dsH2.jdbc.url")
	ds2 := bean.New("org.h2.jdbcx.JdbcDataSource").SecretProperty("URL", "dsH2.jdbc.url")
	ds3 := bean.New("com.mysql.jdbc.jdbc2.optional.MysqlDataSource")

	f1 := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcPojoStoreFactory").DataSource("dsH2", "dataSourceBean", ds1)
	f2 := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcBlobStoreFactory").DataSource("dsH2", "dataSourceBean", ds2)
	finder := bean.New("org.apache.ignite.spi.discovery.tcp.ipfinder.jdbc.TcpDiscoveryJdbcIpFinder").
		DataSource("dsMySQL", "dataSource", ds3)

	cfg := newCfg().
		BeanProperty("a", f1).
		BeanProperty("b", f2).
		BeanProperty("c", finder)

	got := javagen.CollectDataSources(cfg)
	require.Len(t, got, 2)
	assert.Same(t, ds1, got[0])
	assert.Same(t, ds3, got[1])
}

func TestHasSecrets(t *testing.T) {
	assert.False(t, javagen.HasSecrets(newCfg()))

	ds := bean.New("org.h2.jdbcx.JdbcDataSource").SecretProperty("password", "dsH2.jdbc.password")
	factory := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcPojoStoreFactory").DataSource("dsH2", "dataSourceBean", ds)
	assert.True(t, javagen.HasSecrets(newCfg().BeanProperty("f", factory)))

	ssl := bean.New("org.apache.ignite.ssl.SslContextFactory").SecretCharsProperty("keyStorePassword", "ssl.key.storage.password")
	assert.True(t, javagen.HasSecrets(newCfg().BeanProperty("sslContextFactory", ssl)))
}

func TestMethodNames(t *testing.T) {
	a := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheC1", nil, nil)
	b := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "cacheC1", nil, nil)
	c := bean.NewMethod("org.apache.ignite.configuration.CacheConfiguration", "createConfiguration", nil, nil)

	names := javagen.MethodNames([]*bean.Bean{a, b, c}, []string{"createConfiguration"})

	assert.Equal(t, "cacheC1", names[a])
	assert.Equal(t, "cacheC11", names[b])
	assert.Equal(t, "createConfiguration1", names[c])
}
