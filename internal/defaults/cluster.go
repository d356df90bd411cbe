package defaults

const (
	cacheMode      = "org.apache.ignite.cache.CacheMode"
	deploymentMode = "org.apache.ignite.configuration.DeploymentMode"
	txConcurrency  = "org.apache.ignite.transactions.TransactionConcurrency"
	txIsolation    = "org.apache.ignite.transactions.TransactionIsolation"
)

var clusterDefaults = Table{
	"localHost": S("0.0.0.0"),
	"discovery": Table{
		"localPort":                 S(47500),
		"localPortRange":            S(100),
		"socketTimeout":             S(5000),
		"ackTimeout":                S(5000),
		"maxAckTimeout":             S(600000),
		"networkTimeout":            S(5000),
		"joinTimeout":               S(0),
		"threadPriority":            S(10),
		"heartbeatFrequency":        S(2000),
		"maxMissedHeartbeats":       S(1),
		"maxMissedClientHeartbeats": S(5),
		"topHistorySize":            S(1000),
		"reconnectCount":            S(10),
		"statisticsPrintFrequency":  S(0),
		"ipFinderCleanFrequency":    S(60000),
		"forceServerMode":           S(false),
		"clientReconnectDisabled":   S(false),
		"Multicast": Table{
			"multicastGroup":         S("228.1.2.4"),
			"multicastPort":          S(47400),
			"responseWaitTime":       S(500),
			"addressRequestAttempts": S(2),
			"localAddress":           S("0.0.0.0"),
		},
		"Jdbc": Table{
			"initSchema": S(false),
		},
		"SharedFs": Table{
			"path": S("disco/tcp"),
		},
		"ZooKeeper": Table{
			"basePath":                    S("/services"),
			"serviceName":                 S("ignite"),
			"allowDuplicateRegistrations": S(false),
			"ExponentialBackoff": Table{
				"baseSleepTimeMs": S(1000),
				"maxRetries":      S(10),
			},
			"BoundedExponentialBackoffRetry": Table{
				"baseSleepTimeMs": S(1000),
				"maxSleepTimeMs":  S(2147483647),
				"maxRetries":      S(10),
			},
			"UntilElapsed": Table{
				"maxElapsedTimeMs":      S(60000),
				"sleepMsBetweenRetries": S(1000),
			},
			"NTimes": Table{
				"n":                     S(10),
				"sleepMsBetweenRetries": S(1000),
			},
			"OneTime": Table{
				"sleepMsBetweenRetry": S(1000),
			},
			"Forever": Table{
				"retryIntervalMs": S(1000),
			},
		},
	},
	"atomics": Table{
		"atomicSequenceReserveSize": S(1000),
		"backups":                   S(0),
		"cacheMode":                 E(cacheMode, "PARTITIONED"),
	},
	"binary": Table{
		"compactFooter": S(true),
		"typeConfigurations": Table{
			"enum": S(false),
		},
	},
	"collision": Table{
		"JobStealing": Table{
			"activeJobsThreshold":     S(95),
			"waitJobsThreshold":       S(0),
			"messageExpireTime":       S(1000),
			"maximumStealingAttempts": S(5),
			"stealingEnabled":         S(true),
			"stealingAttributes": Map{
				KeyClass: "java.lang.String",
				ValClass: "java.io.Serializable",
				KeyField: "name",
				ValField: "value",
			},
		},
		"PriorityQueue": Table{
			"priorityAttributeKey":        S("grid.task.priority"),
			"jobPriorityAttributeKey":     S("grid.job.priority"),
			"defaultPriority":             S(0),
			"starvationIncrement":         S(1),
			"starvationPreventionEnabled": S(true),
		},
	},
	"communication": Table{
		"localPort":                        S(47100),
		"localPortRange":                   S(100),
		"sharedMemoryPort":                 S(48100),
		"directBuffer":                     S(false),
		"directSendBuffer":                 S(false),
		"idleConnectionTimeout":            S(30000),
		"connectTimeout":                   S(5000),
		"maxConnectTimeout":                S(600000),
		"reconnectCount":                   S(10),
		"socketSendBuffer":                 S(32768),
		"socketReceiveBuffer":              S(32768),
		"messageQueueLimit":                S(1024),
		"tcpNoDelay":                       S(true),
		"ackSendThreshold":                 S(16),
		"unacknowledgedMessagesBufferSize": S(0),
		"socketWriteTimeout":               S(2000),
	},
	"networkTimeout":        S(5000),
	"networkSendRetryDelay": S(1000),
	"networkSendRetryCount": S(3),
	"discoveryStartupDelay": S(60000),
	"connector": Table{
		"port":                          S(11211),
		"portRange":                     S(100),
		"idleTimeout":                   S(7000),
		"idleQueryCursorTimeout":        S(600000),
		"idleQueryCursorCheckFrequency": S(60000),
		"receiveBufferSize":             S(32768),
		"sendBufferSize":                S(32768),
		"sendQueueLimit":                S(0),
		"directBuffer":                  S(false),
		"noDelay":                       S(true),
		"sslEnabled":                    S(false),
		"sslClientAuth":                 S(false),
	},
	"deploymentMode":                           E(deploymentMode, "SHARED"),
	"peerClassLoadingEnabled":                  S(false),
	"peerClassLoadingMissedResourcesCacheSize": S(100),
	"peerClassLoadingThreadPoolSize":           S(2),
	"failoverSpi": Table{
		"JobStealing": Table{
			"maximumFailoverAttempts": S(5),
		},
		"Always": Table{
			"maximumFailoverAttempts": S(5),
		},
	},
	"logger": Table{
		"Log4j": Table{
			"level": E("org.apache.log4j.Level", ""),
		},
		"Log4j2": Table{
			"level": E("org.apache.logging.log4j.Level", ""),
		},
	},
	"marshalLocalJobs":              S(false),
	"marshallerCacheKeepAliveTime":  S(10000),
	"marshallerCacheThreadPoolSize": S(8),
	"metricsHistorySize":            S(10000),
	"metricsLogFrequency":           S(60000),
	"metricsUpdateFrequency":        S(2000),
	"clockSyncSamples":              S(8),
	"clockSyncFrequency":            S(120000),
	"timeServerPortBase":            S(31100),
	"timeServerPortRange":           S(100),
	"transactionConfiguration": Table{
		"defaultTxConcurrency":   E(txConcurrency, "PESSIMISTIC"),
		"defaultTxIsolation":     E(txIsolation, "REPEATABLE_READ"),
		"defaultTxTimeout":       S(0),
		"pessimisticTxLogLinger": S(10000),
	},
	"attributes": Map{
		KeyClass: "java.lang.String",
		ValClass: "java.lang.String",
		KeyField: "name",
		ValField: "value",
	},
	"odbcConfiguration": Table{
		"endpointAddress": S("0.0.0.0:10800..10810"),
		"maxOpenCursors":  S(128),
	},
	"swapSpaceSpi": Table{
		"FileSwapSpaceSpi": Table{
			"maximumSparsity":   S(0.5),
			"maxWriteQueueSize": S(1048576),
			"writeBufferSize":   S(65536),
		},
	},
	"sslContextFactory": Table{
		"protocol":       S("TLS"),
		"keyAlgorithm":   S("SunX509"),
		"keyStoreType":   S("JKS"),
		"trustStoreType": S("JKS"),
	},
}
