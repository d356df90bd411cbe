package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const storeJdbc = "org.apache.ignite.cache.store.jdbc."

func nonNil(src model.Object) bool { return src != nil }

var evictionPolicies = &family{
	name: "evictionPolicy",
	id:   "evictionPlc",
	variants: map[string]variant{
		"LRU":    {class: "org.apache.ignite.cache.eviction.lru.LruEvictionPolicy", apply: evictionProps},
		"FIFO":   {class: "org.apache.ignite.cache.eviction.fifo.FifoEvictionPolicy", apply: evictionProps},
		"SORTED": {class: "org.apache.ignite.cache.eviction.sorted.SortedEvictionPolicy", apply: evictionProps},
	},
}

func evictionProps(_ *Assembler, b *bean.Bean, _ model.Object) {
	b.IntProperty("batchSize").
		IntProperty("maxMemorySize").
		IntProperty("maxSize")
}

var storeFactories = &family{
	name: "cacheStoreFactory",
	id:   "cacheStoreFactory",
	variants: map[string]variant{
		"CacheJdbcPojoStoreFactory": {
			class:  storeJdbc + "CacheJdbcPojoStoreFactory",
			accept: nonNil,
			apply: func(a *Assembler, b *bean.Bean, cache model.Object) {
				a.pojoStoreFactory(b, cache)
			},
		},
		"CacheJdbcBlobStoreFactory": {
			class:  storeJdbc + "CacheJdbcBlobStoreFactory",
			accept: nonNil,
			apply: func(a *Assembler, b *bean.Bean, _ model.Object) {
				a.blobStoreFactory(b)
			},
		},
		"CacheHibernateBlobStoreFactory": {
			class:  "org.apache.ignite.cache.store.hibernate.CacheHibernateBlobStoreFactory",
			accept: nonNil,
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.PropsProperty("props", "hibernateProperties", "hibernateProperties")
			},
		},
	},
}

var nodeFilters = &family{
	name: "nodeFilter",
	id:   "nodeFilter",
	variants: map[string]variant{
		"IGFS": {
			class: "org.apache.ignite.internal.processors.igfs.IgfsNodePredicate",
			accept: func(src model.Object) bool {
				return src.String("instance.name") != ""
			},
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.StringArgument("instance.name")
			},
		},
		"Custom": custom("className"),
	},
}

func (a *Assembler) pojoStoreFactory(b *bean.Bean, cache model.Object) {
	id, _ := b.ValueOf("dataSourceBean").(string)
	dialect := b.Source().String("dialect")

	b.DataSource(id, "dataSourceBean", a.dataSourceBean(id, dialect))
	if cls := a.dialectClass(dialect); cls != "" {
		b.BeanProperty("dialect", bean.New(cls))
	}

	var types []*bean.Bean
	for _, domain := range cache.Domains() {
		if domain.String("databaseTable") == "" {
			continue
		}

		src := make(model.Object, len(domain)+1)
		for k, v := range domain {
			src[k] = v
		}
		src["cacheName"] = cache.String("name")

		valueType := javatypes.ShortClassName(domain.String("valueType"))
		typeBean := bean.NewMethod(JdbcTypeClass, javatypes.ToJavaName("jdbcType", valueType), src, nil)
		typeBean.StringProperty("cacheName")

		setJdbcType(typeBean, "keyType")
		setJdbcType(typeBean, "valueType")

		a.DomainStore(domain, typeBean)

		types = append(types, typeBean)
	}

	b.BeanArrayProperty("types", "types", types, JdbcTypeClass)
}

// setJdbcType records user types by name and JDK types as class literals.
func setJdbcType(b *bean.Bean, path string) {
	cls, _ := b.ValueOf(path).(string)
	if javatypes.IsBuiltIn(cls) {
		b.ClassProperty(path)
		return
	}
	b.StringProperty(path)
}

func (a *Assembler) blobStoreFactory(b *bean.Bean) {
	if b.ValueOf("connectVia") == "DataSource" {
		id, _ := b.ValueOf("dataSourceBean").(string)
		dialect, _ := b.ValueOf("dialect").(string)
		b.DataSource(id, "dataSourceBean", a.dataSourceBean(id, dialect))
	} else {
		b.StringProperty("connectionUrl").
			StringProperty("user")
		if user := b.Source().String("user"); user != "" {
			b.SecretProperty("password", "ds."+user+".password")
		}
	}

	b.BoolProperty("initSchema").
		StringProperty("createTableQuery").
		StringProperty("loadQuery").
		StringProperty("insertQuery").
		StringProperty("updateQuery").
		StringProperty("deleteQuery")
}

// evictionPolicy attaches the eviction policy selected by src.kind as name.
func (a *Assembler) evictionPolicy(owner *bean.Bean, name string, src model.Object) {
	b := evictionPolicies.build(a, src.String("kind"), src, a.dflts.Cache.Sub("evictionPolicy"), nil)
	owner.BeanProperty(name, b)
}

func (a *Assembler) cacheBean(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	if ccfg == nil {
		return a.cacheConfigurationBean(cache)
	}
	return ccfg
}

// CacheGeneral records the cache name, topology and atomicity. Backups are
// only meaningful for partitioned caches with at least one backup.
func (a *Assembler) CacheGeneral(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	ccfg.StringProperty("name").
		EnumProperty("cacheMode").
		EnumProperty("atomicityMode")

	partitioned := ccfg.ValueOf("cacheMode") == "PARTITIONED"

	if partitioned && model.Truthy(ccfg.ValueOf("backups")) {
		ccfg.IntProperty("backups").
			BoolProperty("readFromBackup")
	}

	ccfg.BoolProperty("copyOnRead")

	if partitioned && ccfg.ValueOf("atomicityMode") == "TRANSACTIONAL" {
		ccfg.BoolProperty("invalidate")
	}

	return ccfg
}

// CacheMemory records the memory mode, off-heap limit and eviction policy.
func (a *Assembler) CacheMemory(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	ccfg.EnumProperty("memoryMode")

	if ccfg.ValueOf("memoryMode") != "OFFHEAP_VALUES" {
		ccfg.IntProperty("offHeapMaxMemory")
	}

	a.evictionPolicy(ccfg, "evictionPolicy", cache.Object("evictionPolicy"))

	return ccfg.IntProperty("startSize").
		BoolProperty("swapEnabled")
}

// CacheQuery records SQL settings and the types indexed through annotations.
func (a *Assembler) CacheQuery(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	var indexedTypes []any
	for _, domain := range cache.Domains() {
		if domain.String("queryMetadata") == "Annotations" {
			indexedTypes = append(indexedTypes,
				javatypes.FullClassName(domain.String("keyType")),
				javatypes.FullClassName(domain.String("valueType")))
		}
	}

	return ccfg.StringProperty("sqlSchema").
		IntProperty("sqlOnheapRowCacheSize").
		IntProperty("longQueryWarningTimeout").
		ArrayProperty("indexedTypes", "indexedTypes", indexedTypes, "java.lang.Class").
		ArrayProperty("sqlFunctionClasses", "sqlFunctionClasses", cache.List("sqlFunctionClasses"), "java.lang.Class").
		BoolProperty("snapshotableIndex").
		BoolProperty("sqlEscapeAll")
}

// CacheStore records the store factory selected by cacheStoreFactory.kind and
// the read/write-through flags. Write-behind tuning is only recorded when
// write-behind is enabled.
func (a *Assembler) CacheStore(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	factory := cache.Object("cacheStoreFactory")
	b := storeFactories.build(a, factory.String("kind"), factory, a.dflts.Cache.Sub("cacheStoreFactory"), cache)
	ccfg.BeanProperty("cacheStoreFactory", b)

	ccfg.BoolProperty("storeKeepBinary").
		BoolProperty("loadPreviousValue").
		BoolProperty("readThrough").
		BoolProperty("writeThrough")

	if model.Truthy(ccfg.ValueOf("writeBehindEnabled")) {
		ccfg.BoolProperty("writeBehindEnabled").
			IntProperty("writeBehindBatchSize").
			IntProperty("writeBehindFlushSize").
			IntProperty("writeBehindFlushFrequency").
			IntProperty("writeBehindFlushThreadCount")
	}

	return ccfg
}

// CacheConcurrency records concurrency control settings.
func (a *Assembler) CacheConcurrency(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	return ccfg.IntProperty("maxConcurrentAsyncOperations").
		IntProperty("defaultLockTimeout").
		EnumProperty("atomicWriteOrderMode").
		EnumProperty("writeSynchronizationMode")
}

// CacheNodeFilter records the node filter selected by nodeFilter.kind.
func (a *Assembler) CacheNodeFilter(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	filter := cache.Object("nodeFilter")
	b := nodeFilters.build(a, filter.String("kind"), filter, nil, cache)

	return ccfg.BeanProperty("nodeFilter", b)
}

// CacheRebalance records rebalancing for distributed caches and the IGFS
// affinity mapper when a group size is set.
func (a *Assembler) CacheRebalance(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	if ccfg.ValueOf("cacheMode") != "LOCAL" {
		ccfg.EnumProperty("rebalanceMode").
			IntProperty("rebalanceThreadPoolSize").
			IntProperty("rebalanceBatchSize").
			IntProperty("rebalanceBatchesPrefetchCount").
			IntProperty("rebalanceOrder").
			IntProperty("rebalanceDelay").
			IntProperty("rebalanceTimeout").
			IntProperty("rebalanceThrottle")
	}

	if ccfg.Includes("igfsAffinnityGroupSize") {
		mapper := bean.NewDiff("org.apache.ignite.igfs.IgfsGroupDataBlocksKeyMapper", "affinityMapper", cache, nil).
			IntArgument("igfsAffinnityGroupSize")

		ccfg.BeanProperty("affinityMapper", mapper)
	}

	return ccfg
}

func (a *Assembler) nearCacheBean(id string, src model.Object, dflts defaults.Table) *bean.Bean {
	b := bean.NewDiff(NearCacheClass, id, src, dflts)
	b.IntProperty("nearStartSize")
	a.evictionPolicy(b, "nearEvictionPolicy", src.Object("nearEvictionPolicy"))
	return b
}

// CacheNearServer records the server side near cache of a partitioned cache.
func (a *Assembler) CacheNearServer(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	if ccfg.ValueOf("cacheMode") != "PARTITIONED" || !cache.Bool("nearConfiguration.enabled") {
		return ccfg
	}

	near := a.nearCacheBean("nearConfiguration", cache.Object("nearConfiguration"), a.dflts.Cache.Sub("nearConfiguration"))

	return ccfg.BeanProperty("nearConfiguration", near)
}

// CacheNearClient returns the client near cache of a partitioned cache, or
// nil when the cache does not enable one. The bean is emitted as a factory
// method named after the cache.
func (a *Assembler) CacheNearClient(cache model.Object) *bean.Bean {
	if a.cacheConfigurationBean(cache).ValueOf("cacheMode") != "PARTITIONED" ||
		!cache.Bool("clientNearConfiguration.enabled") {
		return nil
	}

	id := javatypes.ToJavaName("nearConfiguration", cache.String("name"))
	b := a.nearCacheBean(id, cache.Object("clientNearConfiguration"), a.dflts.Cache.Sub("clientNearConfiguration"))
	b.Method = true

	return b
}

// CacheStatistics records statistics and management flags.
func (a *Assembler) CacheStatistics(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	return ccfg.BoolProperty("statisticsEnabled").
		BoolProperty("managementEnabled")
}

// CacheConfiguration runs every cache section in order.
func (a *Assembler) CacheConfiguration(cache model.Object, ccfg *bean.Bean) *bean.Bean {
	ccfg = a.cacheBean(cache, ccfg)

	a.CacheGeneral(cache, ccfg)
	a.CacheMemory(cache, ccfg)
	a.CacheQuery(cache, ccfg)
	a.CacheStore(cache, ccfg)
	a.CacheNodeFilter(cache, ccfg)
	a.CacheConcurrency(cache, ccfg)
	a.CacheRebalance(cache, ccfg)
	a.CacheNearServer(cache, ccfg)
	a.CacheStatistics(cache, ccfg)

	return ccfg
}
