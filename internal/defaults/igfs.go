package defaults

const igfsMode = "org.apache.ignite.igfs.IgfsMode"

var igfsDefaults = Table{
	"defaultMode": E(igfsMode, "DUAL_ASYNC"),
	"ipcEndpointConfiguration": Table{
		"type":               E("org.apache.ignite.igfs.IgfsIpcEndpointType", ""),
		"host":               S("127.0.0.1"),
		"port":               S(10500),
		"memorySize":         S(262144),
		"tokenDirectoryPath": S("ipc/shmem"),
	},
	"fragmentizerConcurrentFiles":        S(0),
	"fragmentizerThrottlingBlockLength":  S(16777216),
	"fragmentizerThrottlingDelay":        S(200),
	"fragmentizerEnabled":                S(true),
	"dualModeMaxPendingPutsSize":         S(0),
	"dualModePutExecutorServiceShutdown": S(false),
	"blockSize":                          S(65536),
	"streamBufferSize":                   S(65536),
	"maxSpaceSize":                       S(0),
	"maximumTaskRangeLength":             S(0),
	"managementPort":                     S(11400),
	"perNodeBatchSize":                   S(100),
	"perNodeParallelBatchCount":          S(8),
	"prefetchBlocks":                     S(0),
	"sequentialReadsBeforePrefetch":      S(0),
	"trashPurgeTimeout":                  S(1000),
	"colocateMetadata":                   S(true),
	"relaxedConsistency":                 S(true),
	"pathModes": Map{
		KeyClass: "java.lang.String",
		ValClass: igfsMode,
		KeyField: "path",
		ValField: "mode",
	},
}
