package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const ipFinderPkg = "org.apache.ignite.spi.discovery.tcp.ipfinder."

var ipFinders = &family{
	name: "discovery",
	id:   "ipFinder",
	variants: map[string]variant{
		"Vm": {
			class: ipFinderPkg + "vm.TcpDiscoveryVmIpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.CollectionProperty("addrs", "addresses", b.Source().List("addresses"), "String")
			},
		},
		"Multicast": {
			class: ipFinderPkg + "multicast.TcpDiscoveryMulticastIpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.StringProperty("multicastGroup").
					IntProperty("multicastPort").
					IntProperty("responseWaitTime").
					IntProperty("addressRequestAttempts").
					StringProperty("localAddress").
					CollectionProperty("addrs", "addresses", b.Source().List("addresses"), "String")
			},
		},
		"S3": {
			class: ipFinderPkg + "s3.TcpDiscoveryS3IpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.StringProperty("bucketName")
			},
		},
		"Cloud": {
			class: ipFinderPkg + "cloud.TcpDiscoveryCloudIpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.StringProperty("credential").
					PathProperty("credentialPath").
					StringProperty("identity").
					StringProperty("provider").
					CollectionProperty("regions", "regions", b.Source().List("regions"), "String").
					CollectionProperty("zones", "zones", b.Source().List("zones"), "String")
			},
		},
		"GoogleStorage": {
			class: ipFinderPkg + "gce.TcpDiscoveryGoogleStorageIpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.StringProperty("projectName").
					StringProperty("bucketName").
					PathProperty("serviceAccountP12FilePath").
					StringProperty("serviceAccountId")
			},
		},
		"Jdbc": {
			class: ipFinderPkg + "jdbc.TcpDiscoveryJdbcIpFinder",
			apply: func(a *Assembler, b *bean.Bean, _ model.Object) {
				b.BoolProperty("initSchema")

				if b.Includes("dataSourceBean", "dialect") {
					id, _ := b.ValueOf("dataSourceBean").(string)
					dialect, _ := b.ValueOf("dialect").(string)
					b.DataSource(id, "dataSource", a.dataSourceBean(id, dialect))
				}
			},
		},
		"SharedFs": {
			class: ipFinderPkg + "sharedfs.TcpDiscoverySharedFsIpFinder",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.PathProperty("path")
			},
		},
		"ZooKeeper": {
			class: ipFinderPkg + "zk.TcpDiscoveryZookeeperIpFinder",
			apply: func(a *Assembler, b *bean.Bean, _ model.Object) {
				b.EmptyBeanProperty("curator").
					StringProperty("zkConnectionString")

				policy := b.Source().Object("retryPolicy")
				kind := policy.String("kind")
				b.BeanProperty("retryPolicy", retryPolicies.build(a, kind, policy, b.Defaults(), nil))

				b.PathProperty("basePath").
					StringProperty("serviceName").
					BoolProperty("allowDuplicateRegistrations")
			},
		},
	},
}

const curatorRetry = "org.apache.curator.retry."

var retryPolicies = &family{
	name: "retryPolicy",
	variants: map[string]variant{
		"ExponentialBackoff": {
			class: curatorRetry + "ExponentialBackoffRetry",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("baseSleepTimeMs").IntArgument("maxRetries")
				if b.Includes("maxSleepMs") {
					b.IntArgument("maxSleepMs")
				}
			},
		},
		"BoundedExponentialBackoff": {
			class: curatorRetry + "BoundedExponentialBackoffRetry",
			key:   "BoundedExponentialBackoffRetry",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("baseSleepTimeMs").IntArgument("maxSleepTimeMs").IntArgument("maxRetries")
			},
		},
		"UntilElapsed": {
			class: curatorRetry + "RetryUntilElapsed",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("maxElapsedTimeMs").IntArgument("sleepMsBetweenRetries")
			},
		},
		"NTimes": {
			class: curatorRetry + "RetryNTimes",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("n").IntArgument("sleepMsBetweenRetries")
			},
		},
		"OneTime": {
			class: curatorRetry + "RetryOneTime",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("sleepMsBetweenRetry")
			},
		},
		"Forever": {
			class: curatorRetry + "RetryForever",
			apply: func(_ *Assembler, b *bean.Bean, _ model.Object) {
				b.IntArgument("retryIntervalMs")
			},
		},
		"Custom": custom("className"),
	},
}

// ClusterGeneral records the grid name and local host and, when discovery is
// configured, the discovery SPI with its IP finder.
func (a *Assembler) ClusterGeneral(cluster model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(cluster)
	}

	cfg.StringPropertyAs("name", "gridName").
		StringProperty("localHost")

	discovery := cluster.Object("discovery")
	if discovery == nil {
		return cfg
	}

	spi := a.discoveryBean(discovery, cfg)
	kind := discovery.String("kind")
	spi.BeanProperty("ipFinder", ipFinders.build(a, kind, discovery, a.dflts.Cluster.Sub("discovery"), cluster))

	if spi.NonEmpty() {
		cfg.BeanProperty("discoverySpi", spi)
	}

	return a.ClusterDiscovery(discovery, cfg)
}

// discoveryBean returns the discovery SPI already attached to cfg or a new one.
func (a *Assembler) discoveryBean(discovery model.Object, cfg *bean.Bean) *bean.Bean {
	if p := cfg.FindProperty("discoverySpi"); p != nil && p.Bean != nil && p.Bean.Class == DiscoverySpiClass {
		return p.Bean
	}
	return a.discoveryConfigurationBean(discovery)
}

// ClusterDiscovery records the discovery SPI tuning. The SPI bean attached by
// ClusterGeneral is extended in place rather than duplicated.
func (a *Assembler) ClusterDiscovery(discovery model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		cfg = a.igniteConfigurationBean(nil)
	}

	spi := a.discoveryBean(discovery, cfg)

	spi.StringProperty("localAddress").
		IntProperty("localPort").
		IntProperty("localPortRange").
		EmptyBeanProperty("addressResolver").
		IntProperty("socketTimeout").
		IntProperty("ackTimeout").
		IntProperty("maxAckTimeout").
		IntProperty("networkTimeout").
		IntProperty("joinTimeout").
		IntProperty("threadPriority").
		IntProperty("heartbeatFrequency").
		IntProperty("maxMissedHeartbeats").
		IntProperty("maxMissedClientHeartbeats").
		IntProperty("topHistorySize").
		EmptyBeanProperty("listener").
		EmptyBeanProperty("dataExchange").
		EmptyBeanProperty("metricsProvider").
		IntProperty("reconnectCount").
		IntProperty("statisticsPrintFrequency").
		IntProperty("ipFinderCleanFrequency").
		EmptyBeanProperty("authenticator").
		BoolProperty("forceServerMode").
		BoolProperty("clientReconnectDisabled")

	if spi.NonEmpty() {
		cfg.BeanProperty("discoverySpi", spi)
	}

	return cfg
}
