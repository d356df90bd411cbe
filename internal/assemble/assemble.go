// Package assemble projects a cluster configuration document onto a bean
// tree holding only the settings that differ from the defaults.
//
// Every section method has the shape
//
//	func (a *Assembler) Section(section model.Object, parent *bean.Bean) *bean.Bean
//
// and returns the parent it extended. A nil parent is replaced by a fresh
// top-level bean, so each section can be run on its own for previews.
// Sections never fail: unknown variant kinds and incomplete sub-objects
// produce no bean and leave the parent untouched.
package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// Java classes of the top-level beans.
const (
	IgniteConfigurationClass = "org.apache.ignite.configuration.IgniteConfiguration"
	CacheConfigurationClass  = "org.apache.ignite.configuration.CacheConfiguration"
	IgfsConfigurationClass   = "org.apache.ignite.configuration.FileSystemConfiguration"
	NearCacheClass           = "org.apache.ignite.configuration.NearCacheConfiguration"
	JdbcTypeClass            = "org.apache.ignite.cache.store.jdbc.JdbcType"
	DiscoverySpiClass        = "org.apache.ignite.spi.discovery.tcp.TcpDiscoverySpi"
)

// Assembler builds bean trees against one set of defaults.
type Assembler struct {
	dflts *defaults.Set
}

// New returns an assembler. A nil set selects the standard defaults.
func New(dflts *defaults.Set) *Assembler {
	if dflts == nil {
		dflts = defaults.Standard()
	}
	return &Assembler{dflts: dflts}
}

// Defaults returns the tables the assembler diffs against.
func (a *Assembler) Defaults() *defaults.Set {
	return a.dflts
}

func (a *Assembler) igniteConfigurationBean(cluster model.Object) *bean.Bean {
	return bean.NewDiff(IgniteConfigurationClass, "cfg", cluster, a.dflts.Cluster)
}

func (a *Assembler) cacheConfigurationBean(cache model.Object) *bean.Bean {
	return bean.NewDiff(CacheConfigurationClass, "cache", cache, a.dflts.Cache)
}

func (a *Assembler) igfsConfigurationBean(igfs model.Object) *bean.Bean {
	return bean.NewDiff(IgfsConfigurationClass, "igfs", igfs, a.dflts.IGFS)
}

func (a *Assembler) domainConfigurationBean(domain model.Object) *bean.Bean {
	return bean.NewDiff(JdbcTypeClass, "type", domain, a.dflts.Cache)
}

func (a *Assembler) discoveryConfigurationBean(discovery model.Object) *bean.Bean {
	return bean.NewDiff(DiscoverySpiClass, "discovery", discovery, a.dflts.Cluster.Sub("discovery"))
}

// IgniteConfiguration assembles the whole cluster. Client mode marks the
// node as a client and leaves out file systems, which only run on servers.
func (a *Assembler) IgniteConfiguration(cluster model.Object, client bool) *bean.Bean {
	cfg := a.igniteConfigurationBean(cluster)

	if client {
		cfg.DerivedProperty(bean.KindBool, "clientMode", true)
	}

	a.ClusterGeneral(cluster, cfg)
	a.ClusterAtomics(cluster.Object("atomicConfiguration"), cfg)
	a.ClusterBinary(cluster.Object("binaryConfiguration"), cfg)
	a.ClusterCacheKeyConfiguration(cluster.Objects("cacheKeyConfiguration"), cfg)
	a.ClusterCollision(cluster.Object("collision"), cfg)
	a.ClusterCommunication(cluster, cfg)
	a.ClusterConnector(cluster.Object("connector"), cfg)
	a.ClusterDeployment(cluster, cfg)
	a.ClusterEvents(cluster, cfg)
	a.ClusterFailover(cluster, cfg)
	a.ClusterLogger(cluster.Object("logger"), cfg)
	a.ClusterODBC(cluster.Object("odbc"), cfg)
	a.ClusterMarshaller(cluster, cfg)
	a.ClusterMetrics(cluster, cfg)
	a.ClusterSwap(cluster, cfg)
	a.ClusterTime(cluster, cfg)
	a.ClusterPools(cluster, cfg)
	a.ClusterTransactions(cluster.Object("transactionConfiguration"), cfg)
	a.ClusterCaches(cluster, cfg)
	if !client {
		a.ClusterIgfss(cluster, cfg)
	}
	a.ClusterSsl(cluster, cfg)
	a.ClusterUserAttributes(cluster, cfg)

	return cfg
}

// ClientNearCaches returns the near cache beans of caches that enable a
// client near configuration, in cache order.
func (a *Assembler) ClientNearCaches(cluster model.Object) []*bean.Bean {
	var out []*bean.Bean
	for _, cache := range cluster.Caches() {
		if nb := a.CacheNearClient(cache); nb != nil {
			out = append(out, nb)
		}
	}
	return out
}

// cacheMethodID names the factory method of a cache.
func cacheMethodID(cache model.Object) string {
	return javatypes.ToJavaName("cache", cache.String("name"))
}
