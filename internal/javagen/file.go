package javagen

import (
	"fmt"

	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen/javadsl"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
)

const (
	nearCacheClass = "org.apache.ignite.configuration.NearCacheConfiguration"
	cacheClass     = "org.apache.ignite.configuration.CacheConfiguration"

	// SecretsFile is the classpath resource secret references are read from.
	SecretsFile = "secret.properties"

	rootMethod = "createConfiguration"
)

// Options controls the shape of the generated compilation unit.
type Options struct {
	// Package of the generated class.
	Package string
	// Class is the generated class name. Empty selects a name by node role.
	Class string
	// Client generates a client node configuration with near cache factories.
	Client bool
	// Defaults are the tables the configuration is diffed against. Nil
	// selects the built-in tables.
	Defaults *defaults.Set
}

// DefaultPackage is used when Options.Package is empty.
const DefaultPackage = "org.apache.ignite.config"

// ClassName returns the generated class name.
func (o Options) ClassName() string {
	switch {
	case o.Class != "":
		return o.Class
	case o.Client:
		return "ClientConfigurationFactory"
	default:
		return "ServerConfigurationFactory"
	}
}

// PackageName returns the generated package.
func (o Options) PackageName() string {
	if o.Package == "" {
		return DefaultPackage
	}
	return o.Package
}

func (o Options) defaults() *defaults.Set {
	if o.Defaults == nil {
		return defaults.Standard()
	}
	return o.Defaults
}

// BuildFile assembles the compilation unit constructing cfg. nearCaches are
// factory-method beans of client near caches.
func BuildFile(cfg *bean.Bean, nearCaches []*bean.Bean, opts Options) javadsl.File {
	groups := opts.defaults().EventGroups
	class := opts.ClassName()

	reserved := []string{rootMethod}
	for _, nb := range nearCaches {
		reserved = append(reserved, nb.ID)
	}

	aux := CollectComplexBeans(cfg)
	for _, nb := range nearCaches {
		aux = appendNew(aux, CollectComplexBeans(nb)...)
	}
	methods := MethodNames(aux, reserved)

	imports := CollectImports(cfg)
	for _, nb := range nearCaches {
		imports = append(imports, CollectImports(nb)...)
	}

	secrets := HasSecrets(cfg)
	for _, nb := range nearCaches {
		secrets = secrets || HasSecrets(nb)
	}
	if secrets {
		imports = append(imports, "java.io.InputStream", "java.util.Properties")
	}
	if len(nearCaches) > 0 {
		imports = append(imports, nearCacheClass)
	}

	var members []javadsl.Member

	if secrets {
		members = append(members, secretsLoader(class)...)
	}

	if ds := CollectDataSources(cfg); len(ds) > 0 {
		members = append(members, dataSourcesClass(ds, groups))
	}

	for _, nb := range nearCaches {
		members = append(members, javadsl.Method{
			Doc: []string{
				fmt.Sprintf("Configuration of near cache %q.", nearCacheName(nb)),
				"",
				"@return Near cache configuration.",
				"@throws Exception If failed to construct near cache configuration instance.",
			},
			Modifiers: "public static",
			Returns:   javadsl.T(nearCacheClass),
			Name:      nb.ID,
			Throws:    []string{"java.lang.Exception"},
			Body:      methodBody(nb, groups, methods),
		})
	}

	members = append(members, javadsl.Method{
		Doc: []string{
			"Configure grid.",
			"",
			"@return Ignite configuration.",
			"@throws Exception If failed to construct Ignite configuration instance.",
		},
		Modifiers: "public static",
		Returns:   javadsl.T(cfg.Class),
		Name:      rootMethod,
		Throws:    []string{"java.lang.Exception"},
		Body:      methodBody(cfg, groups, methods),
	})

	for _, b := range aux {
		members = append(members, javadsl.Method{
			Doc: []string{
				methodDoc(b),
				"",
				"@return Configured " + javatypes.ShortClassName(b.Class) + " instance.",
				"@throws Exception If failed to construct the instance.",
			},
			Modifiers: "public static",
			Returns:   javadsl.T(b.Class),
			Name:      methods[b],
			Throws:    []string{"java.lang.Exception"},
			Body:      methodBody(b, groups, methods),
		})
	}

	return javadsl.File{
		Package:       opts.PackageName(),
		Imports:       importList(imports),
		StaticImports: CollectStaticImports(cfg, groups),
		Class: javadsl.Class{
			Doc:       []string{"This configuration was generated by ignitegen."},
			Modifiers: "public",
			Name:      class,
			Members:   members,
		},
	}
}

// methodBody constructs b with its own context and returns it.
func methodBody(b *bean.Bean, groups []defaults.EventGroup, methods map[*bean.Bean]string) []javadsl.Stmt {
	e := NewEmitter(groups, methods)
	e.Bean(b)
	e.blank()
	e.add(javadsl.Return{Value: javadsl.Ident(b.ID)})
	return e.Stmts()
}

func methodDoc(b *bean.Bean) string {
	if b.Class == cacheClass {
		if name := b.Source().String("name"); name != "" {
			return fmt.Sprintf("Create configuration for cache %q.", name)
		}
	}
	return "Create " + javatypes.ShortClassName(b.Class) + " instance."
}

func nearCacheName(b *bean.Bean) string {
	const prefix = "nearConfiguration"
	if len(b.ID) > len(prefix) {
		return b.ID[len(prefix):]
	}
	return b.ID
}

func appendNew(dst []*bean.Bean, beans ...*bean.Bean) []*bean.Bean {
	for _, b := range beans {
		found := false
		for _, d := range dst {
			if d == b {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, b)
		}
	}
	return dst
}

// secretsLoader declares the properties field and the static block that
// loads it from the classpath.
func secretsLoader(class string) []javadsl.Member {
	open := javadsl.Invoke(
		javadsl.Invoke(javadsl.ClassLit(class), "getClassLoader"),
		"getResourceAsStream", javadsl.Lit(SecretsFile))

	return []javadsl.Member{
		javadsl.Field{
			Doc:       []string{"Secret properties loading."},
			Modifiers: "private static final",
			Type:      javadsl.T("java.util.Properties"),
			Name:      secretsVar,
			Value:     javadsl.New{Type: javadsl.T("java.util.Properties")},
		},
		javadsl.StaticInit{Body: []javadsl.Stmt{
			javadsl.Try{
				Resource:  &javadsl.Decl{Type: javadsl.T("java.io.InputStream"), Name: "in", Value: open},
				Body:      []javadsl.Stmt{javadsl.ExprStmt{X: javadsl.Invoke(javadsl.Ident(secretsVar), "load", javadsl.Ident("in"))}},
				CatchType: "java.lang.Exception",
				CatchVar:  "ignored",
				Handler:   []javadsl.Stmt{javadsl.Comment{Text: "No-op."}},
			},
		}},
	}
}

// dataSourcesClass declares one lazily created singleton per data source.
func dataSourcesClass(sources []*bean.Bean, groups []defaults.EventGroup) javadsl.Class {
	var fields, factories []javadsl.Member
	for _, src := range sources {
		ds := *src
		ds.ID = identifier(src.ID)
		factory := "create" + javatypes.UpperFirst(ds.ID)

		fields = append(fields, javadsl.Field{
			Modifiers: "public static final",
			Type:      javadsl.T(ds.Class),
			Name:      dataSourceField(ds.ID),
			Value:     javadsl.Call{Method: factory},
		})

		factories = append(factories, javadsl.Method{
			Doc:       []string{"Create data source " + src.ID + "."},
			Modifiers: "private static",
			Returns:   javadsl.T(ds.Class),
			Name:      factory,
			Body:      methodBody(&ds, groups, nil),
		})
	}

	return javadsl.Class{
		Doc:       []string{"Helper class for datasource creation."},
		Modifiers: "public static",
		Name:      dataSourcesName,
		Members:   append(fields, factories...),
	}
}
