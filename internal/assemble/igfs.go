package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func (a *Assembler) igfsBean(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		return a.igfsConfigurationBean(igfs)
	}
	return cfg
}

// IgfsGeneral records the file system name, its data and metadata cache
// names and the default mode. Unnamed file systems are skipped.
func (a *Assembler) IgfsGeneral(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	name := igfs.String("name")
	if name == "" {
		return cfg
	}

	return cfg.StringProperty("name").
		DerivedProperty(bean.KindString, "dataCacheName", name+"-data").
		DerivedProperty(bean.KindString, "metaCacheName", name+"-meta").
		EnumProperty("defaultMode")
}

// IgfsSecondFS records the Hadoop secondary file system when enabled.
func (a *Assembler) IgfsSecondFS(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	if !igfs.Bool("secondaryFileSystemEnabled") {
		return cfg
	}

	secondFs := igfs.Object("secondaryFileSystem")
	if secondFs == nil {
		secondFs = model.Object{}
	}

	b := bean.NewDiff("org.apache.ignite.hadoop.fs.IgniteHadoopIgfsSecondaryFileSystem", "secondaryFileSystem",
		secondFs, a.dflts.IGFS.Sub("secondaryFileSystem"))

	b.StringPropertyAs("userName", "defaultUserName")

	factory := bean.NewDiff("org.apache.ignite.hadoop.fs.CachingHadoopFileSystemFactory", "fac", secondFs, nil)

	factory.StringProperty("uri").
		PathPropertyAs("cfgPath", "configPaths")

	b.BeanProperty("fileSystemFactory", factory)

	return cfg.BeanProperty("secondaryFileSystem", b)
}

// IgfsIPC records the IPC endpoint when enabled.
func (a *Assembler) IgfsIPC(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	if !igfs.Bool("ipcEndpointEnabled") {
		return cfg
	}

	b := bean.NewDiff("org.apache.ignite.igfs.IgfsIpcEndpointConfiguration", "ipcEndpointConfiguration",
		igfs.Object("ipcEndpointConfiguration"), a.dflts.IGFS.Sub("ipcEndpointConfiguration"))

	b.EnumProperty("type").
		StringProperty("host").
		IntProperty("port").
		IntProperty("memorySize").
		PathProperty("tokenDirectoryPath").
		IntProperty("threadCount")

	return cfg.BeanProperty("ipcEndpointConfiguration", b)
}

// IgfsFragmentizer records fragmentizer tuning, or its disabling.
func (a *Assembler) IgfsFragmentizer(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	if model.Truthy(cfg.ValueOf("fragmentizerEnabled")) {
		return cfg.IntProperty("fragmentizerConcurrentFiles").
			IntProperty("fragmentizerThrottlingBlockLength").
			IntProperty("fragmentizerThrottlingDelay")
	}

	return cfg.BoolProperty("fragmentizerEnabled")
}

// IgfsDualMode records dual mode write settings.
func (a *Assembler) IgfsDualMode(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	return cfg.IntProperty("dualModeMaxPendingPutsSize").
		EmptyBeanProperty("dualModePutExecutorService").
		BoolProperty("dualModePutExecutorServiceShutdown")
}

// IgfsMisc records block sizes, batching and per-path modes.
func (a *Assembler) IgfsMisc(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	return cfg.IntProperty("blockSize").
		IntProperty("streamBufferSize").
		IntProperty("maxSpaceSize").
		IntProperty("maximumTaskRangeLength").
		IntProperty("managementPort").
		IntProperty("perNodeBatchSize").
		IntProperty("perNodeParallelBatchCount").
		IntProperty("prefetchBlocks").
		IntProperty("sequentialReadsBeforePrefetch").
		IntProperty("trashPurgeTimeout").
		BoolProperty("colocateMetadata").
		BoolProperty("relaxedConsistency").
		MapProperty("pathModes", "pathModes", "pathModes")
}

// IgfsConfiguration runs every file system section in order.
func (a *Assembler) IgfsConfiguration(igfs model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.igfsBean(igfs, cfg)

	a.IgfsGeneral(igfs, cfg)
	a.IgfsSecondFS(igfs, cfg)
	a.IgfsIPC(igfs, cfg)
	a.IgfsFragmentizer(igfs, cfg)
	a.IgfsDualMode(igfs, cfg)
	a.IgfsMisc(igfs, cfg)

	return cfg
}
