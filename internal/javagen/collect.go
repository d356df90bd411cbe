package javagen

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
)

// walk visits every bean reachable from b once, parents before children.
func walk(b *bean.Bean, visit func(*bean.Bean)) {
	seen := map[*bean.Bean]bool{}
	var rec func(*bean.Bean)
	rec = func(b *bean.Bean) {
		if b == nil || seen[b] {
			return
		}
		seen[b] = true
		visit(b)
		for _, arg := range b.Args {
			rec(arg.Bean)
		}
		for _, p := range b.Props {
			rec(p.Bean)
			for _, item := range p.Beans {
				rec(item)
			}
		}
	}
	rec(b)
}

// CollectImports returns the sorted classes the construction of b refers
// to, without java.lang and primitive types.
func CollectImports(b *bean.Bean) []string {
	var classes []string
	add := func(cs ...string) {
		classes = append(classes, cs...)
	}

	walk(b, func(b *bean.Bean) {
		add(b.Class)

		for _, arg := range b.Args {
			switch arg.Kind {
			case bean.KindClass:
				add(classValue(arg.Value))
			case bean.KindConstant:
				add(arg.Class)
			}
		}

		if p := b.FindProperty(dataSourceProp); p != nil && p.Kind == bean.KindDataSource {
			add(StoreClass(b.Class))
		}

		for _, p := range b.Props {
			switch p.Kind {
			case bean.KindEnum:
				add(p.Class)
			case bean.KindClass:
				add(classValue(p.Value))
			case bean.KindArray:
				add(p.ElemClass)
				add(elementClasses(p)...)
			case bean.KindCollection:
				if len(p.Beans) == 0 && p.ImplClass == bean.CollectionImpl {
					add("java.util.Arrays", p.ElemClass)
				} else {
					add(p.Iface, p.ElemClass, p.ImplClass)
				}
				add(elementClasses(p)...)
			case bean.KindMap:
				add(MapClass(p.Map))
				if p.Map != nil {
					add(p.Map.KeyClass, p.Map.ValClass)
				}
			case bean.KindProperties:
				add("java.util.Properties")
			}
		}
	})

	return importList(classes)
}

func classValue(v any) string {
	s, _ := v.(string)
	return javatypes.FullClassName(s)
}

// elementClasses returns the classes of class literals held by a container.
func elementClasses(p bean.Property) []string {
	if p.ElemClass != "java.lang.Class" {
		return nil
	}
	var out []string
	for _, v := range p.Values {
		out = append(out, classValue(v))
	}
	return out
}

// importList filters, sorts and deduplicates class names. Nested classes
// are imported through their outermost class.
func importList(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if i := strings.IndexByte(c, '$'); i >= 0 {
			c = c[:i]
		}
		if !javatypes.Importable(c) {
			continue
		}
		out = append(out, c)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// CollectStaticImports returns the event group constants referenced by b.
func CollectStaticImports(b *bean.Bean, groups []defaults.EventGroup) []string {
	var out []string
	walk(b, func(b *bean.Bean) {
		for _, p := range b.Props {
			if p.Kind != bean.KindEventTypes {
				continue
			}
			for _, name := range p.Groups {
				for _, g := range groups {
					if g.Value == name {
						out = append(out, g.Class+"."+g.Value)
						break
					}
				}
			}
		}
	})
	slices.Sort(out)
	return slices.Compact(out)
}

// CollectComplexBeans returns the factory-method beans nested in b that need
// their own construction method, in order of first appearance. The root
// itself is never included.
func CollectComplexBeans(b *bean.Bean) []*bean.Bean {
	var out []*bean.Bean
	walk(b, func(nested *bean.Bean) {
		if nested != b && nested.Method && nested.IsComplex() {
			out = append(out, nested)
		}
	})
	return out
}

// CollectDataSources returns the data source beans referenced from b, one
// per identifier, in order of first appearance.
func CollectDataSources(b *bean.Bean) []*bean.Bean {
	var out []*bean.Bean
	seen := map[string]bool{}
	walk(b, func(b *bean.Bean) {
		for _, p := range b.Props {
			if p.Kind != bean.KindDataSource || p.Bean == nil || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			out = append(out, p.Bean)
		}
	})
	return out
}

// HasSecrets reports whether any bean reachable from b reads the secret
// properties file.
func HasSecrets(b *bean.Bean) bool {
	found := false
	walk(b, func(b *bean.Bean) {
		for _, p := range b.Props {
			if p.Kind == bean.KindSecretRef || p.Kind == bean.KindSecretChars {
				found = true
			}
		}
	})
	return found
}

// MethodNames assigns a unique method name to every bean. Names start from
// the bean identifier; collisions with each other or with reserved names
// get a numeric suffix.
func MethodNames(beans []*bean.Bean, reserved []string) map[*bean.Bean]string {
	used := map[string]bool{}
	for _, r := range reserved {
		used[r] = true
	}

	names := make(map[*bean.Bean]string, len(beans))
	for _, b := range beans {
		base := identifier(b.ID)
		name := base
		for i := 1; used[name]; i++ {
			name = base + strconv.Itoa(i)
		}
		used[name] = true
		names[b] = name
	}
	return names
}
