package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

var collisionSpis = &family{
	name: "collision",
	id:   "colSpi",
	variants: map[string]variant{
		"JobStealing": {
			class: "org.apache.ignite.spi.collision.jobstealing.JobStealingCollisionSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("activeJobsThreshold").
					IntProperty("waitJobsThreshold").
					IntProperty("messageExpireTime").
					IntProperty("maximumStealingAttempts").
					BoolProperty("stealingEnabled").
					EmptyBeanProperty("externalCollisionListener").
					MapProperty("stealingAttrs", "stealingAttributes", "stealingAttributes")
			},
		},
		"FifoQueue": {
			class: "org.apache.ignite.spi.collision.fifoqueue.FifoQueueCollisionSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("parallelJobsNumber").
					IntProperty("waitingJobsNumber")
			},
		},
		"PriorityQueue": {
			class: "org.apache.ignite.spi.collision.priorityqueue.PriorityQueueCollisionSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("parallelJobsNumber").
					IntProperty("waitingJobsNumber").
					StringProperty("priorityAttributeKey").
					StringProperty("jobPriorityAttributeKey").
					IntProperty("defaultPriority").
					IntProperty("starvationIncrement").
					BoolProperty("starvationPreventionEnabled")
			},
		},
		"Custom": custom("class"),
	},
}

var failoverSpis = &family{
	name: "failover",
	id:   "failoverSpi",
	variants: map[string]variant{
		"JobStealing": {
			class: "org.apache.ignite.spi.failover.jobstealing.JobStealingFailoverSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("maximumFailoverAttempts")
			},
		},
		"Never": {class: "org.apache.ignite.spi.failover.never.NeverFailoverSpi"},
		"Always": {
			class: "org.apache.ignite.spi.failover.always.AlwaysFailoverSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("maximumFailoverAttempts")
			},
		},
		"Custom": custom("class"),
	},
}

var loggers = &family{
	name: "logger",
	id:   "logger",
	variants: map[string]variant{
		"Log4j": {
			class: "org.apache.ignite.logger.log4j.Log4JLogger",
			accept: func(src model.Object) bool {
				switch src.String("mode") {
				case "Default":
					return true
				case "Path":
					return src.String("path") != ""
				}
				return false
			},
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				if b.ValueOf("mode") == "Path" {
					b.PathArgument("path")
				}
				b.EnumProperty("level")
			},
		},
		"Log4j2": {
			class: "org.apache.ignite.logger.log4j2.Log4J2Logger",
			accept: func(src model.Object) bool {
				return src.String("path") != ""
			},
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.PathArgument("path").EnumProperty("level")
			},
		},
		"Null":   {class: "org.apache.ignite.logger.NullLogger"},
		"Java":   {class: "org.apache.ignite.logger.java.JavaLogger"},
		"JCL":    {class: "org.apache.ignite.logger.jcl.JclLogger"},
		"SLF4J":  {class: "org.apache.ignite.logger.slf4j.Slf4jLogger"},
		"Custom": custom("class"),
	},
}

var marshallers = &family{
	name: "marshaller",
	id:   "marshaller",
	variants: map[string]variant{
		"OptimizedMarshaller": {
			class: "org.apache.ignite.marshaller.optimized.OptimizedMarshaller",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntProperty("poolSize").
					BoolProperty("requireSerializable")
			},
		},
		"JdkMarshaller": {class: "org.apache.ignite.marshaller.jdk.JdkMarshaller"},
	},
}

var swapSpis = &family{
	name: "swap",
	id:   "swapSpaceSpi",
	variants: map[string]variant{
		"FileSwapSpaceSpi": {
			class: "org.apache.ignite.spi.swapspace.file.FileSwapSpaceSpi",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.PathProperty("baseDirectory").
					IntProperty("readStripesNumber").
					IntProperty("maximumSparsity").
					IntProperty("maxWriteQueueSize").
					IntProperty("writeBufferSize")
			},
		},
	},
}

// ClusterAtomics records the atomic data structures configuration.
func (a *Assembler) ClusterAtomics(atomics model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	acfg := bean.NewDiff("org.apache.ignite.configuration.AtomicConfiguration", "atomicCfg",
		atomics, a.dflts.Cluster.Sub("atomics"))

	acfg.EnumProperty("cacheMode").
		IntProperty("atomicSequenceReserveSize")

	if acfg.ValueOf("cacheMode") == "PARTITIONED" {
		acfg.IntProperty("backups")
	}

	if acfg.NonEmpty() {
		cfg.BeanProperty("atomicConfiguration", acfg)
	}

	return cfg
}

// ClusterBinary records binary marshalling settings and per-type overrides.
func (a *Assembler) ClusterBinary(binary model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	dflts := a.dflts.Cluster.Sub("binary")
	binaryCfg := bean.NewDiff("org.apache.ignite.configuration.BinaryConfiguration", "binaryCfg", binary, dflts)

	binaryCfg.EmptyBeanProperty("idMapper").
		EmptyBeanProperty("nameMapper").
		EmptyBeanProperty("serializer")

	var typeCfgs []*bean.Bean
	for _, typ := range binary.Objects("typeConfigurations") {
		typeCfg := bean.NewMethod("org.apache.ignite.binary.BinaryTypeConfiguration",
			javatypes.ToJavaName("binaryType", typ.String("typeName")), typ, dflts.Sub("typeConfigurations"))

		typeCfg.StringProperty("typeName").
			EmptyBeanProperty("idMapper").
			EmptyBeanProperty("nameMapper").
			EmptyBeanProperty("serializer").
			BoolProperty("enum")

		if typeCfg.NonEmpty() {
			typeCfgs = append(typeCfgs, typeCfg)
		}
	}

	binaryCfg.BeanCollectionProperty("types", "typeConfigurations", typeCfgs,
		"org.apache.ignite.binary.BinaryTypeConfiguration")

	binaryCfg.BoolProperty("compactFooter")

	if binaryCfg.NonEmpty() {
		cfg.BeanProperty("binaryConfiguration", binaryCfg)
	}

	return cfg
}

// ClusterCacheKeyConfiguration records affinity key fields of key types.
// Records missing either the type or the field are skipped.
func (a *Assembler) ClusterCacheKeyConfiguration(keyCfgs []model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	var items []*bean.Bean
	for _, keyCfg := range keyCfgs {
		if keyCfg.String("typeName") == "" || keyCfg.String("affinityKeyFieldName") == "" {
			continue
		}
		items = append(items, bean.NewDiff("org.apache.ignite.cache.CacheKeyConfiguration", "", keyCfg, nil).
			StringArgument("typeName").
			StringArgument("affinityKeyFieldName"))
	}

	return cfg.BeanArrayProperty("keyConfigurations", "cacheKeyConfiguration", items,
		"org.apache.ignite.cache.CacheKeyConfiguration")
}

// ClusterCollision records the collision SPI selected by kind.
func (a *Assembler) ClusterCollision(collision model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	spi := collisionSpis.build(a, collision.String("kind"), collision, a.dflts.Cluster.Sub("collision"), nil)

	return cfg.BeanProperty("collisionSpi", spi)
}

// ClusterCommunication records the TCP communication SPI and network retry
// settings.
func (a *Assembler) ClusterCommunication(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	commSpi := bean.NewDiff("org.apache.ignite.spi.communication.tcp.TcpCommunicationSpi", "communicationSpi",
		cluster.Object("communication"), a.dflts.Cluster.Sub("communication"))

	commSpi.EmptyBeanProperty("listener").
		StringProperty("localAddress").
		IntProperty("localPort").
		IntProperty("localPortRange").
		IntProperty("sharedMemoryPort").
		BoolProperty("directBuffer").
		BoolProperty("directSendBuffer").
		IntProperty("idleConnectionTimeout").
		IntProperty("connectTimeout").
		IntProperty("maxConnectTimeout").
		IntProperty("reconnectCount").
		IntProperty("socketSendBuffer").
		IntProperty("socketReceiveBuffer").
		IntProperty("messageQueueLimit").
		IntProperty("slowClientQueueLimit").
		BoolProperty("tcpNoDelay").
		IntProperty("ackSendThreshold").
		IntProperty("unacknowledgedMessagesBufferSize").
		IntProperty("socketWriteTimeout").
		IntProperty("selectorsCount").
		EmptyBeanProperty("addressResolver")

	if commSpi.NonEmpty() {
		cfg.BeanProperty("communicationSpi", commSpi)
	}

	cfg.IntProperty("networkTimeout").
		IntProperty("networkSendRetryDelay").
		IntProperty("networkSendRetryCount").
		IntProperty("discoveryStartupDelay")

	return cfg
}

// ClusterConnector records the REST connector when it is enabled.
func (a *Assembler) ClusterConnector(connector model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	connCfg := bean.NewDiff("org.apache.ignite.configuration.ConnectorConfiguration", "connectorConfiguration",
		connector, a.dflts.Cluster.Sub("connector"))

	if !model.Truthy(connCfg.ValueOf("enabled")) {
		return cfg
	}

	connCfg.PathProperty("jettyPath").
		StringProperty("host").
		IntProperty("port").
		IntProperty("portRange").
		IntProperty("idleTimeout").
		IntProperty("idleQueryCursorTimeout").
		IntProperty("idleQueryCursorCheckFrequency").
		IntProperty("receiveBufferSize").
		IntProperty("sendBufferSize").
		IntProperty("sendQueueLimit").
		BoolProperty("directBuffer").
		BoolProperty("noDelay").
		IntProperty("selectorCount").
		IntProperty("threadPoolSize").
		EmptyBeanProperty("messageInterceptor").
		StringProperty("secretKey")

	if model.Truthy(connCfg.ValueOf("sslEnabled")) {
		connCfg.BoolProperty("sslClientAuth").
			EmptyBeanProperty("sslFactory")
	}

	if connCfg.NonEmpty() {
		cfg.BeanProperty("connectorConfiguration", connCfg)
	}

	return cfg
}

// ClusterDeployment records the deployment mode and peer class loading.
func (a *Assembler) ClusterDeployment(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	cfg.EnumProperty("deploymentMode").
		BoolProperty("peerClassLoadingEnabled")

	if model.Truthy(cfg.ValueOf("peerClassLoadingEnabled")) {
		cfg.IntProperty("peerClassLoadingMissedResourcesCacheSize").
			IntProperty("peerClassLoadingThreadPoolSize").
			VarArgProperty("p2pLocClsPathExcl", "peerClassLoadingLocalClassPathExclude",
				cluster.List("peerClassLoadingLocalClassPathExclude"), "String")
	}

	return cfg
}

// ClusterEvents records the union of selected event groups.
func (a *Assembler) ClusterEvents(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	var groups []string
	for _, g := range cluster.Strings("includeEventTypes") {
		if _, ok := a.dflts.EventGroup(g); ok {
			groups = append(groups, g)
		}
	}

	return cfg.EventTypes("events", "includeEventTypes", groups)
}

// ClusterFailover records the failover SPIs in declaration order.
func (a *Assembler) ClusterFailover(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	dflts := a.dflts.Cluster.Sub("failoverSpi")

	var spis []*bean.Bean
	for _, spi := range cluster.Objects("failoverSpi") {
		if b := failoverSpis.build(a, spi.String("kind"), spi, dflts, cluster); b != nil {
			spis = append(spis, b)
		}
	}

	return cfg.BeanArrayProperty("failoverSpi", "failoverSpi", spis, "org.apache.ignite.spi.failover.FailoverSpi")
}

// ClusterLogger records the grid logger selected by kind.
func (a *Assembler) ClusterLogger(logger model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	b := loggers.build(a, logger.String("kind"), logger, a.dflts.Cluster.Sub("logger"), nil)

	return cfg.BeanProperty("gridLogger", b)
}

// ClusterMarshaller records the marshaller and marshaller cache settings.
func (a *Assembler) ClusterMarshaller(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	marshaller := cluster.Object("marshaller")
	cfg.BeanProperty("marshaller", marshallers.build(a, marshaller.String("kind"), marshaller, nil, cluster))

	cfg.BoolProperty("marshalLocalJobs").
		IntProperty("marshallerCacheKeepAliveTime").
		IntPropertyAs("marshallerCacheThreadPoolSize", "marshallerCachePoolSize")

	return cfg
}

// ClusterMetrics records metrics collection settings.
func (a *Assembler) ClusterMetrics(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	return cfg.IntProperty("metricsExpireTime").
		IntProperty("metricsHistorySize").
		IntProperty("metricsLogFrequency").
		IntProperty("metricsUpdateFrequency")
}

// ClusterODBC records the ODBC endpoint when it is enabled.
func (a *Assembler) ClusterODBC(odbc model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	if enabled, _ := odbc.Value("odbcEnabled").(bool); !enabled {
		return cfg
	}

	b := bean.NewDiff("org.apache.ignite.configuration.OdbcConfiguration", "odbcConfiguration",
		odbc, a.dflts.Cluster.Sub("odbcConfiguration"))

	b.StringProperty("endpointAddress").
		IntProperty("maxOpenCursors")

	return cfg.BeanProperty("odbcConfiguration", b)
}

// ClusterSsl records the SSL context factory when SSL is enabled. Trust
// managers, when listed, replace the trust store settings.
func (a *Assembler) ClusterSsl(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	factory := cluster.Object("sslContextFactory")
	if !cluster.Bool("sslEnabled") || factory == nil {
		return cfg
	}

	b := bean.NewDiff("org.apache.ignite.ssl.SslContextFactory", "sslContextFactory",
		factory, a.dflts.Cluster.Sub("sslContextFactory"))

	b.StringProperty("keyAlgorithm").
		PathProperty("keyStoreFilePath")

	if !model.IsEmpty(b.ValueOf("keyStoreFilePath")) {
		b.SecretCharsProperty("keyStorePassword", "ssl.key.storage.password")
	}

	b.StringProperty("keyStoreType").
		StringProperty("protocol")

	if trustManagers := factory.Strings("trustManagers"); len(trustManagers) > 0 {
		managers := make([]*bean.Bean, 0, len(trustManagers))
		for _, cls := range trustManagers {
			managers = append(managers, bean.New(cls))
		}
		b.BeanArrayProperty("trustManagers", "trustManagers", managers, "javax.net.ssl.TrustManager")
	} else {
		b.PathProperty("trustStoreFilePath")

		if !model.IsEmpty(b.ValueOf("trustStoreFilePath")) {
			b.SecretCharsProperty("trustStorePassword", "ssl.trust.storage.password")
		}

		b.StringProperty("trustStoreType")
	}

	return cfg.BeanProperty("sslContextFactory", b)
}

// ClusterSwap records the swap space SPI selected by kind.
func (a *Assembler) ClusterSwap(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	swap := cluster.Object("swapSpaceSpi")
	b := swapSpis.build(a, swap.String("kind"), swap, a.dflts.Cluster.Sub("swapSpaceSpi"), cluster)

	return cfg.BeanProperty("swapSpaceSpi", b)
}

// ClusterTime records clock synchronisation settings.
func (a *Assembler) ClusterTime(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	return cfg.IntProperty("clockSyncSamples").
		IntProperty("clockSyncFrequency").
		IntProperty("timeServerPortBase").
		IntProperty("timeServerPortRange")
}

// ClusterPools records thread pool sizes.
func (a *Assembler) ClusterPools(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	return cfg.IntProperty("publicThreadPoolSize").
		IntProperty("systemThreadPoolSize").
		IntProperty("managementThreadPoolSize").
		IntProperty("igfsThreadPoolSize").
		IntProperty("rebalanceThreadPoolSize")
}

// ClusterTransactions records the default transaction settings.
func (a *Assembler) ClusterTransactions(tx model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	b := bean.NewDiff("org.apache.ignite.configuration.TransactionConfiguration", "transactionConfiguration",
		tx, a.dflts.Cluster.Sub("transactionConfiguration"))

	b.EnumProperty("defaultTxConcurrency").
		EnumProperty("defaultTxIsolation").
		IntProperty("defaultTxTimeout").
		IntProperty("pessimisticTxLogLinger").
		IntProperty("pessimisticTxLogSize").
		BoolProperty("txSerializableEnabled").
		EmptyBeanProperty("txManagerFactory")

	if b.NonEmpty() {
		cfg.BeanProperty("transactionConfiguration", b)
	}

	return cfg
}

// ClusterUserAttributes records the node attribute map.
func (a *Assembler) ClusterUserAttributes(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	return cfg.MapProperty("attributes", "attributes", "userAttributes")
}

// ClusterCaches records every cache as a factory method bean.
func (a *Assembler) ClusterCaches(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	caches := cluster.Caches()
	ccfgs := make([]*bean.Bean, 0, len(caches))
	for _, cache := range caches {
		ccfg := bean.NewMethod(CacheConfigurationClass, cacheMethodID(cache), cache, a.dflts.Cache)
		ccfgs = append(ccfgs, a.CacheConfiguration(cache, ccfg))
	}

	return cfg.BeanVarArgProperty("ccfgs", "cacheConfiguration", ccfgs, CacheConfigurationClass)
}

// ClusterIgfss records the file system configurations.
func (a *Assembler) ClusterIgfss(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	var igfss []*bean.Bean
	for _, igfs := range cluster.Igfss() {
		if igfs.String("name") == "" {
			continue
		}
		b := bean.NewDiff(IgfsConfigurationClass, javatypes.ToJavaName("igfs", igfs.String("name")), igfs, a.dflts.IGFS)
		igfss = append(igfss, a.IgfsConfiguration(igfs, b))
	}

	return cfg.BeanVarArgProperty("igfsCfgs", "fileSystemConfiguration", igfss, IgfsConfigurationClass)
}
