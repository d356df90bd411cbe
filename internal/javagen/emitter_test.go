package javagen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen/javadsl"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const (
	cfgClass   = "org.apache.ignite.configuration.IgniteConfiguration"
	cacheClass = "org.apache.ignite.configuration.CacheConfiguration"
)

func render(stmts []javadsl.Stmt) string {
	return javadsl.NewPrinter().Stmts(stmts)
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func groups() []defaults.EventGroup {
	return defaults.Standard().EventGroups
}

func newCfg() *bean.Bean {
	cfg := bean.New(cfgClass)
	cfg.ID = "cfg"
	return cfg
}

func countDecls(stmts []javadsl.Stmt, name string) int {
	n := 0
	for _, s := range stmts {
		if d, ok := s.(javadsl.Decl); ok && d.Name == name {
			n++
		}
	}
	return n
}

func TestEmitInlinesEmptyBeans(t *testing.T) {
	cfg := newCfg()
	cfg.BeanProperty("marshaller", bean.New("org.apache.ignite.marshaller.optimized.OptimizedMarshaller"))

	stmts := javagen.Emit(cfg, groups())

	assert.Equal(t, lines(
		"IgniteConfiguration cfg = new IgniteConfiguration();",
		"",
		"cfg.setMarshaller(new OptimizedMarshaller());",
	), render(stmts))
	assert.Equal(t, 0, countDecls(stmts, "optimizedMarshaller"))
}

func TestEmitHoistsComplexBeansDepthFirst(t *testing.T) {
	ipFinder := bean.New("org.apache.ignite.spi.discovery.tcp.ipfinder.multicast.TcpDiscoveryMulticastIpFinder")
	ipFinder.ID = "ipFinder"
	ipFinder.DerivedProperty(bean.KindString, "multicastGroup", "228.1.2.5")

	spi := bean.New("org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi")
	spi.ID = "discovery"
	spi.BeanProperty("ipFinder", ipFinder)

	cfg := newCfg()
	cfg.BeanProperty("discoverySpi", spi)

	assert.Equal(t, lines(
		"IgniteConfiguration cfg = new IgniteConfiguration();",
		"",
		"TcpDiscoverySpi discovery = new TcpDiscoverySpi();",
		"",
		"TcpDiscoveryMulticastIpFinder ipFinder = new TcpDiscoveryMulticastIpFinder();",
		"",
		`ipFinder.setMulticastGroup("228.1.2.5");`,
		"",
		"discovery.setIpFinder(ipFinder);",
		"",
		"cfg.setDiscoverySpi(discovery);",
	), render(javagen.Emit(cfg, groups())))
}

func TestEmitSeparatesHoistedDeclarations(t *testing.T) {
	spi := bean.New("org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi")
	spi.ID = "discovery"
	spi.DerivedProperty(bean.KindInt, "localPort", int64(48500))

	cfg := newCfg()
	cfg.DerivedProperty(bean.KindString, "gridName", "sandbox").
		BeanProperty("discoverySpi", spi)

	assert.Equal(t, lines(
		"IgniteConfiguration cfg = new IgniteConfiguration();",
		"",
		`cfg.setGridName("sandbox");`,
		"",
		"TcpDiscoverySpi discovery = new TcpDiscoverySpi();",
		"",
		"discovery.setLocalPort(48500);",
		"",
		"cfg.setDiscoverySpi(discovery);",
	), render(javagen.Emit(cfg, groups())))
}

func TestEmitReassignsDeclaredIdentifiers(t *testing.T) {
	first := bean.New("org.apache.ignite.cache.eviction.lru.LruEvictionPolicy")
	first.ID = "evictionPlc"
	first.DerivedProperty(bean.KindInt, "maxSize", int64(10))

	second := bean.New("org.apache.ignite.cache.eviction.fifo.FifoEvictionPolicy")
	second.ID = "evictionPlc"
	second.DerivedProperty(bean.KindInt, "maxSize", int64(20))

	ccfg := bean.New(cacheClass)
	ccfg.ID = "ccfg"
	ccfg.BeanProperty("evictionPolicy", first).
		BeanProperty("nearEvictionPolicy", second)

	stmts := javagen.Emit(ccfg, groups())

	assert.Equal(t, 1, countDecls(stmts, "evictionPlc"))
	assert.Contains(t, render(stmts), "ccfg.setEvictionPolicy(evictionPlc);\n\nevictionPlc = new FifoEvictionPolicy();\n")
	assert.Contains(t, render(stmts), "LruEvictionPolicy evictionPlc = new LruEvictionPolicy();\n")
}

func TestEmitBuildsSharedInstanceOnce(t *testing.T) {
	shared := bean.New("org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi")
	shared.ID = "discovery"
	shared.DerivedProperty(bean.KindInt, "localPort", int64(48500))

	holder := bean.New("org.example.Holder")
	holder.BeanProperty("spi", shared)

	cfg := newCfg()
	cfg.BeanProperty("discoverySpi", shared).
		BeanProperty("holder", holder)

	out := render(javagen.Emit(cfg, groups()))

	assert.Equal(t, 1, strings.Count(out, "new TcpDiscoverySpi()"))
	assert.Equal(t, 1, strings.Count(out, "discovery.setLocalPort(48500);"))
	assert.Contains(t, out, "holder.setSpi(discovery);")
}

func TestEmitEventTypes(t *testing.T) {
	t.Run("single group", func(t *testing.T) {
		cfg := newCfg().EventTypes("events", "includeEventTypes", []string{"EVTS_CACHE"})

		assert.Equal(t, lines(
			"IgniteConfiguration cfg = new IgniteConfiguration();",
			"",
			"cfg.setIncludeEventTypes(EVTS_CACHE);",
		), render(javagen.Emit(cfg, groups())))
	})

	t.Run("two groups", func(t *testing.T) {
		cfg := newCfg().EventTypes("events", "includeEventTypes", []string{"EVTS_CACHE", "EVTS_DISCOVERY"})

		assert.Equal(t, lines(
			"IgniteConfiguration cfg = new IgniteConfiguration();",
			"",
			"int[] events = new int[EVTS_CACHE.length + EVTS_DISCOVERY.length];",
			"",
			"int k = 0;",
			"",
			"System.arraycopy(EVTS_CACHE, 0, events, k, EVTS_CACHE.length);",
			"k += EVTS_CACHE.length;",
			"",
			"System.arraycopy(EVTS_DISCOVERY, 0, events, k, EVTS_DISCOVERY.length);",
			"",
			"cfg.setIncludeEventTypes(events);",
		), render(javagen.Emit(cfg, groups())))
	})
}

func TestEmitScalars(t *testing.T) {
	b := bean.New("org.example.Settings")
	b.DerivedProperty(bean.KindString, "name", `say "hi"`).
		DerivedProperty(bean.KindInt, "big", int64(10737418240)).
		DerivedProperty(bean.KindInt, "ratio", 0.75).
		DerivedProperty(bean.KindByte, "priority", int64(3)).
		DerivedProperty(bean.KindBool, "enabled", true).
		DerivedProperty(bean.KindPath, "workDir", `C:\ignite\work`).
		DerivedProperty(bean.KindClass, "keyType", "Integer").
		SecretProperty("password", "ds.password").
		SecretCharsProperty("keyStorePassword", "ssl.key.storage.password")

	out := render(javagen.Emit(b, groups()))

	for _, want := range []string{
		`settings.setName("say \"hi\"");`,
		"settings.setBig(10737418240L);",
		"settings.setRatio(0.75);",
		"settings.setPriority((byte) 3);",
		"settings.setEnabled(true);",
		`settings.setWorkDir("C:\\ignite\\work");`,
		"settings.setKeyType(Integer.class);",
		`settings.setPassword(props.getProperty("ds.password"));`,
		`settings.setKeyStorePassword(props.getProperty("ssl.key.storage.password").toCharArray());`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestEmitArrays(t *testing.T) {
	t.Run("bean array built element by element", func(t *testing.T) {
		key := bean.New("org.apache.ignite.cache.CacheKeyConfiguration")
		key.DerivedProperty(bean.KindString, "typeName", "Person")

		cfg := newCfg().BeanArrayProperty("keyConfigurations", "cacheKeyConfiguration",
			[]*bean.Bean{key, bean.New("org.apache.ignite.cache.CacheKeyConfiguration")}, "org.apache.ignite.cache.CacheKeyConfiguration")

		assert.Equal(t, lines(
			"IgniteConfiguration cfg = new IgniteConfiguration();",
			"",
			"CacheKeyConfiguration[] keyConfigurations = new CacheKeyConfiguration[2];",
			"",
			"keyConfigurations[0] = new CacheKeyConfiguration();",
			`keyConfigurations[0].setTypeName("Person");`,
			"",
			"keyConfigurations[1] = new CacheKeyConfiguration();",
			"",
			"cfg.setCacheKeyConfiguration(keyConfigurations);",
		), render(javagen.Emit(cfg, groups())))
	})

	t.Run("variable arity scalars", func(t *testing.T) {
		b := bean.New("org.example.Domain").VarArgProperty("indexedTypes", "indexedTypes",
			[]any{"java.lang.Integer", "org.example.Person"}, "java.lang.Class")

		assert.Contains(t, render(javagen.Emit(b, groups())), "domain.setIndexedTypes(Integer.class, Person.class);")
	})

	t.Run("array object of scalars", func(t *testing.T) {
		b := bean.New("org.example.Deployment").ArrayProperty("excl", "peerClassLoadingLocalClassPathExclude",
			[]any{"a.*", "b.*"}, "String")

		assert.Contains(t, render(javagen.Emit(b, groups())),
			`deployment.setPeerClassLoadingLocalClassPathExclude(new String[] {"a.*", "b.*"});`)
	})

	t.Run("variable arity beans", func(t *testing.T) {
		field := bean.New("org.apache.ignite.cache.store.jdbc.JdbcTypeField")
		field.Args = []bean.Argument{
			{Kind: bean.KindString, Value: "ID"},
			{Kind: bean.KindConstant, Class: "java.sql.Types", Value: "INTEGER"},
			{Kind: bean.KindString, Value: "id"},
			{Kind: bean.KindClass, Value: "int"},
		}

		b := bean.New("org.apache.ignite.cache.store.jdbc.JdbcType")
		b.ID = "type"
		b.BeanVarArgProperty("keyFields", "keyFields", []*bean.Bean{field}, "org.apache.ignite.cache.store.jdbc.JdbcTypeField")

		assert.Contains(t, render(javagen.Emit(b, groups())),
			`type.setKeyFields(new JdbcTypeField("ID", Types.INTEGER, "id", int.class));`)
	})
}

func TestEmitCollections(t *testing.T) {
	t.Run("scalar list", func(t *testing.T) {
		b := bean.New("org.example.Finder").CollectionProperty("addrs", "addresses", []any{"127.0.0.1", "10.0.0.1"}, "String")

		out := render(javagen.Emit(b, groups()))
		assert.Equal(t, lines(
			"Finder finder = new Finder();",
			"",
			`finder.setAddresses(Arrays.asList("127.0.0.1", "10.0.0.1"));`,
		), out)
	})

	t.Run("bean collection", func(t *testing.T) {
		index := bean.New("org.apache.ignite.cache.QueryIndex")
		index.ID = "index"
		index.DerivedProperty(bean.KindString, "name", "idx")

		b := bean.New("org.apache.ignite.cache.QueryEntity")
		b.ID = "qryEntity"
		b.BeanCollectionProperty("indexes", "indexes", []*bean.Bean{index}, "org.apache.ignite.cache.QueryIndex")

		assert.Equal(t, lines(
			"QueryEntity qryEntity = new QueryEntity();",
			"",
			"Collection<QueryIndex> indexes = new ArrayList<>();",
			"",
			"QueryIndex index = new QueryIndex();",
			"",
			`index.setName("idx");`,
			"",
			"indexes.add(index);",
			"",
			"qryEntity.setIndexes(indexes);",
		), render(javagen.Emit(b, groups())))
	})
}

func TestEmitMaps(t *testing.T) {
	m := defaults.Map{
		KeyClass: "java.lang.String",
		ValClass: "org.apache.ignite.igfs.IgfsMode",
		KeyField: "path",
		ValField: "mode",
		Ordered:  true,
	}
	b := bean.New("org.apache.ignite.configuration.FileSystemConfiguration")
	b.ID = "igfs"
	b.MapEntriesProperty("pathModes", "pathModes", []model.Object{
		{"path": "/tmp", "mode": "PRIMARY"},
		{"path": "/data", "mode": "DUAL_SYNC"},
	}, m)

	assert.Equal(t, lines(
		"FileSystemConfiguration igfs = new FileSystemConfiguration();",
		"",
		"LinkedHashMap<String, IgfsMode> pathModes = new LinkedHashMap<>();",
		"",
		`pathModes.put("/tmp", IgfsMode.PRIMARY);`,
		`pathModes.put("/data", IgfsMode.DUAL_SYNC);`,
		"",
		"igfs.setPathModes(pathModes);",
	), render(javagen.Emit(b, groups())))
}

func TestEmitPropertiesBag(t *testing.T) {
	b := bean.New("org.apache.ignite.cache.store.hibernate.CacheHibernateBlobStoreFactory")
	b.ID = "cacheStoreFactory"
	b.PropsProperty("props", "hibernateProperties", "hibernateProperties")
	assert.True(t, b.IsEmpty(), "bean without source records nothing")

	b = bean.NewDiff(b.Class, "cacheStoreFactory", model.Object{
		"hibernateProperties": []any{map[string]any{"name": "hibernate.show_sql", "value": "true"}},
	}, nil)
	b.PropsProperty("props", "hibernateProperties", "hibernateProperties")

	assert.Equal(t, lines(
		"CacheHibernateBlobStoreFactory cacheStoreFactory = new CacheHibernateBlobStoreFactory();",
		"",
		"Properties props = new Properties();",
		"",
		`props.setProperty("hibernate.show_sql", "true");`,
		"",
		"cacheStoreFactory.setHibernateProperties(props);",
	), render(javagen.Emit(b, groups())))
}

func TestEmitStoreFactoryWithDataSource(t *testing.T) {
	ds := bean.New("org.h2.jdbcx.JdbcDataSource")
	ds.ID = "dsH2"
	ds.SecretProperty("URL", "dsH2.jdbc.url")

	factory := bean.New("org.apache.ignite.cache.store.jdbc.CacheJdbcPojoStoreFactory")
	factory.ID = "cacheStoreFactory"
	factory.DataSource("dsH2", "dataSourceBean", ds).
		BeanProperty("dialect", bean.New("org.apache.ignite.cache.store.jdbc.dialect.H2Dialect"))

	ccfg := bean.New(cacheClass)
	ccfg.ID = "ccfg"
	ccfg.BeanProperty("cacheStoreFactory", factory)

	assert.Equal(t, lines(
		"CacheConfiguration ccfg = new CacheConfiguration();",
		"",
		"CacheJdbcPojoStoreFactory cacheStoreFactory = new CacheJdbcPojoStoreFactory() {",
		"    /** {@inheritDoc} **/",
		"    @Override public CacheJdbcPojoStore create() {",
		"        setDataSource(DataSources.INSTANCE_dsH2);",
		"",
		"        return super.create();",
		"    }",
		"};",
		"",
		"cacheStoreFactory.setDialect(new H2Dialect());",
		"",
		"ccfg.setCacheStoreFactory(cacheStoreFactory);",
	), render(javagen.Emit(ccfg, groups())))
}

func TestEmitReferencesFactoryMethods(t *testing.T) {
	c1 := bean.NewMethod(cacheClass, "cacheC1", nil, nil)
	c1.DerivedProperty(bean.KindString, "name", "c1")

	cfg := newCfg().BeanVarArgProperty("ccfgs", "cacheConfiguration", []*bean.Bean{c1}, cacheClass)

	stmts := javagen.Emit(cfg, groups())
	out := render(stmts)

	assert.Contains(t, out, "cfg.setCacheConfiguration(cacheC1());")
	assert.NotContains(t, out, "new CacheConfiguration()")
}

func TestEmitArgumentsHoistComplexBeans(t *testing.T) {
	inner := bean.New("org.example.Inner")
	inner.DerivedProperty(bean.KindInt, "size", int64(5))

	outer := bean.New("org.example.Outer").BeanArgument(inner)

	require.True(t, outer.IsComplex())

	assert.Equal(t, lines(
		"Inner inner = new Inner();",
		"",
		"inner.setSize(5);",
		"",
		"Outer outer = new Outer(inner);",
	), render(javagen.Emit(outer, groups())))
}
