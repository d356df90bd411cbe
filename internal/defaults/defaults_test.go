package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableLookup(t *testing.T) {
	set := Standard()

	v, ok := set.Cluster.Lookup("discovery.Multicast.multicastGroup")
	require.True(t, ok)
	assert.Equal(t, "228.1.2.4", Plain(v))

	v, ok = set.Cache.Lookup("cacheMode")
	require.True(t, ok)
	e, isEnum := v.(Enum)
	require.True(t, isEnum)
	assert.Equal(t, "org.apache.ignite.cache.CacheMode", e.Class)
	assert.Equal(t, "PARTITIONED", Plain(v))

	_, ok = set.Cluster.Lookup("discovery.Vm.addresses")
	assert.False(t, ok)

	_, ok = set.Cluster.Lookup("localHost.value")
	assert.False(t, ok, "scalars have no children")
}

func TestPlain(t *testing.T) {
	assert.Nil(t, Plain(E("java.sql.Types", "")), "enum without default value")
	assert.Nil(t, Plain(Map{}))
	assert.Nil(t, Plain(Table{}))
	assert.Equal(t, 5, Plain(S(5)))
}

func TestSub(t *testing.T) {
	set := Standard()

	assert.NotNil(t, set.Cluster.Sub("discovery.ZooKeeper.ExponentialBackoff"))
	assert.Nil(t, set.Cluster.Sub("discovery.localPort"))
	assert.Nil(t, set.Cluster.Sub("missing"))

	var nilTable Table
	assert.Nil(t, nilTable.Sub("a"))
}

func TestEventGroup(t *testing.T) {
	set := Standard()

	g, ok := set.EventGroup("EVTS_CACHE")
	require.True(t, ok)
	assert.Equal(t, "org.apache.ignite.events.EventType", g.Class)

	_, ok = set.EventGroup("EVTS_UNKNOWN")
	assert.False(t, ok)
}
