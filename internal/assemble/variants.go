package assemble

import (
	"sort"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// variant is one shape of a kind-tagged sub-configuration.
type variant struct {
	// class is the constructed type. When empty the type is read from the
	// classFrom field of the variant's source object.
	class     string
	classFrom string
	// key names the source object and default sub-table when it differs
	// from the kind tag.
	key string
	// accept gates construction on the variant's source object.
	accept func(src model.Object) bool
	apply  func(a *Assembler, b *bean.Bean, owner model.Object)
}

// family is a closed set of variants selected by a kind tag. The empty or
// unknown kind is the none variant and produces no bean.
type family struct {
	name     string
	id       string
	variants map[string]variant
}

// build constructs the bean selected by kind. section holds one sub-object
// per kind, dflts one sub-table per kind, and owner is passed through to the
// variant for lookups outside the section.
func (f *family) build(a *Assembler, kind string, section model.Object, dflts defaults.Table, owner model.Object) *bean.Bean {
	v, ok := f.variants[kind]
	if !ok {
		return nil
	}
	key := kind
	if v.key != "" {
		key = v.key
	}
	src := section.Object(key)
	if v.accept != nil && !v.accept(src) {
		return nil
	}
	class := v.class
	if class == "" {
		class = src.String(v.classFrom)
	}
	if class == "" {
		return nil
	}
	b := bean.NewDiff(class, f.id, src, dflts.Sub(key))
	if v.apply != nil {
		v.apply(a, b, owner)
	}
	return b
}

func (f *family) kinds() []string {
	out := make([]string, 0, len(f.variants))
	for k := range f.variants {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func custom(classFrom string) variant {
	return variant{classFrom: classFrom}
}

// Scope tells where a kind-tagged object lives.
type Scope string

// Scopes of variant families.
const (
	ScopeCluster Scope = "cluster"
	ScopeCache   Scope = "cache"
)

// Family describes one variant family for reporting.
type Family struct {
	Name  string
	Scope Scope
	// Path is the dotted path of the kind-tagged object within its scope.
	Path string
	// List is set when Path holds a list of kind-tagged objects.
	List  bool
	Kinds []string
}

// Families lists every variant family with its recognised kind tags.
func Families() []Family {
	return []Family{
		{Name: ipFinders.name, Scope: ScopeCluster, Path: "discovery", Kinds: ipFinders.kinds()},
		{Name: retryPolicies.name, Scope: ScopeCluster, Path: "discovery.ZooKeeper.retryPolicy", Kinds: retryPolicies.kinds()},
		{Name: collisionSpis.name, Scope: ScopeCluster, Path: "collision", Kinds: collisionSpis.kinds()},
		{Name: failoverSpis.name, Scope: ScopeCluster, Path: "failoverSpi", List: true, Kinds: failoverSpis.kinds()},
		{Name: loggers.name, Scope: ScopeCluster, Path: "logger", Kinds: loggers.kinds()},
		{Name: marshallers.name, Scope: ScopeCluster, Path: "marshaller", Kinds: marshallers.kinds()},
		{Name: swapSpis.name, Scope: ScopeCluster, Path: "swapSpaceSpi", Kinds: swapSpis.kinds()},
		{Name: storeFactories.name, Scope: ScopeCache, Path: "cacheStoreFactory", Kinds: storeFactories.kinds()},
		{Name: evictionPolicies.name, Scope: ScopeCache, Path: "evictionPolicy", Kinds: evictionPolicies.kinds()},
		{Name: nodeFilters.name, Scope: ScopeCache, Path: "nodeFilter", Kinds: nodeFilters.kinds()},
	}
}
