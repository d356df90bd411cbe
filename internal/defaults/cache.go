package defaults

var evictionDefaults = Table{
	"LRU": Table{
		"batchSize": S(1),
		"maxSize":   S(100000),
	},
	"FIFO": Table{
		"batchSize": S(1),
		"maxSize":   S(100000),
	},
	"SORTED": Table{
		"batchSize": S(1),
		"maxSize":   S(100000),
	},
}

var cacheDefaults = Table{
	"cacheMode":                     E(cacheMode, "PARTITIONED"),
	"atomicityMode":                 E("org.apache.ignite.cache.CacheAtomicityMode", "ATOMIC"),
	"memoryMode":                    E("org.apache.ignite.cache.CacheMemoryMode", "ONHEAP_TIERED"),
	"atomicWriteOrderMode":          E("org.apache.ignite.cache.CacheAtomicWriteOrderMode", ""),
	"writeSynchronizationMode":      E("org.apache.ignite.cache.CacheWriteSynchronizationMode", "PRIMARY_SYNC"),
	"rebalanceMode":                 E("org.apache.ignite.cache.CacheRebalanceMode", "ASYNC"),
	"backups":                       S(0),
	"readFromBackup":                S(true),
	"copyOnRead":                    S(true),
	"invalidate":                    S(false),
	"offHeapMaxMemory":              S(-1),
	"startSize":                     S(1500000),
	"swapEnabled":                   S(false),
	"sqlOnheapRowCacheSize":         S(10240),
	"longQueryWarningTimeout":       S(3000),
	"snapshotableIndex":             S(false),
	"sqlEscapeAll":                  S(false),
	"storeKeepBinary":               S(false),
	"loadPreviousValue":             S(false),
	"readThrough":                   S(false),
	"writeThrough":                  S(false),
	"writeBehindEnabled":            S(false),
	"writeBehindBatchSize":          S(512),
	"writeBehindFlushSize":          S(10240),
	"writeBehindFlushFrequency":     S(5000),
	"writeBehindFlushThreadCount":   S(1),
	"maxConcurrentAsyncOperations":  S(500),
	"defaultLockTimeout":            S(0),
	"rebalanceThreadPoolSize":       S(1),
	"rebalanceBatchSize":            S(524288),
	"rebalanceBatchesPrefetchCount": S(2),
	"rebalanceOrder":                S(0),
	"rebalanceDelay":                S(0),
	"rebalanceTimeout":              S(10000),
	"rebalanceThrottle":             S(0),
	"statisticsEnabled":             S(false),
	"managementEnabled":             S(false),
	"nearConfiguration": Table{
		"nearStartSize": S(375000),
	},
	"clientNearConfiguration": Table{
		"nearStartSize": S(375000),
	},
	"evictionPolicy": evictionDefaults,
	"queryMetadata":  S("Configuration"),
	"fields": Map{
		KeyClass: "java.lang.String",
		ValClass: "java.lang.String",
		KeyField: "name",
		ValField: "className",
		Ordered:  true,
	},
	"aliases": Map{
		KeyClass: "java.lang.String",
		ValClass: "java.lang.String",
		KeyField: "field",
		ValField: "alias",
	},
	"indexes": Table{
		"indexType": E("org.apache.ignite.cache.QueryIndexType", ""),
		"fields": Map{
			KeyClass: "java.lang.String",
			ValClass: "java.lang.Boolean",
			KeyField: "name",
			ValField: "direction",
			Ordered:  true,
		},
	},
	"typeField": Table{
		"databaseFieldType": E("java.sql.Types", ""),
	},
	"cacheStoreFactory": Table{
		"CacheJdbcBlobStoreFactory": Table{
			"initSchema": S(false),
		},
	},
}
