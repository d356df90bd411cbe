package assemble

import (
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

const (
	queryIndexClass    = "org.apache.ignite.cache.QueryIndex"
	jdbcTypeFieldClass = storeJdbc + "JdbcTypeField"
)

func (a *Assembler) domainBean(domain model.Object, cfg *bean.Bean) *bean.Bean {
	if cfg == nil {
		return a.domainConfigurationBean(domain)
	}
	return cfg
}

// DomainModelGeneral records key and value types. Annotated domains pass
// both as indexed types.
func (a *Assembler) DomainModelGeneral(domain model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.domainBean(domain, cfg)

	switch cfg.ValueOf("queryMetadata") {
	case "Annotations":
		keyType, valueType := domain.String("keyType"), domain.String("valueType")
		if keyType != "" && valueType != "" {
			cfg.VarArgProperty("indexedTypes", "indexedTypes",
				[]any{javatypes.FullClassName(keyType), javatypes.FullClassName(valueType)}, "java.lang.Class")
		}
	case "Configuration":
		cfg.ClassProperty("keyType").
			ClassProperty("valueType")
	}

	return cfg
}

// DomainModelQuery records query fields, aliases and indexes of domains
// configured explicitly.
func (a *Assembler) DomainModelQuery(domain model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.domainBean(domain, cfg)

	if cfg.ValueOf("queryMetadata") != "Configuration" {
		return cfg
	}

	var fieldsMap defaults.Map
	if d, ok := a.dflts.Cache.Lookup("fields"); ok {
		fieldsMap, _ = d.(defaults.Map)
	}

	var fields []model.Object
	for _, f := range domain.Objects("fields") {
		fields = append(fields, model.Object{
			fieldsMap.KeyField: f.String(fieldsMap.KeyField),
			fieldsMap.ValField: javatypes.FullClassName(f.String(fieldsMap.ValField)),
		})
	}

	cfg.MapEntriesProperty("fields", "fields", fields, fieldsMap).
		MapProperty("aliases", "aliases", "aliases")

	var indexes []*bean.Bean
	for _, index := range domain.Objects("indexes") {
		indexes = append(indexes, bean.NewDiff(queryIndexClass, "index", index, a.dflts.Cache.Sub("indexes")).
			StringProperty("name").
			EnumProperty("indexType").
			MapProperty("indFlds", "fields", "fields"))
	}

	return cfg.BeanCollectionProperty("indexes", "indexes", indexes, queryIndexClass)
}

// databaseFields records the key or value field mapping named prop.
func (a *Assembler) databaseFields(cfg *bean.Bean, prop string, domain model.Object) {
	var fields []*bean.Bean
	for _, field := range domain.Objects(prop) {
		fields = append(fields, bean.NewDiff(jdbcTypeFieldClass, "typeField", field, a.dflts.Cache.Sub("typeField")).
			StringArgument("databaseFieldName").
			ConstantArgument("databaseFieldType").
			StringArgument("javaFieldName").
			ClassArgument("javaFieldType"))
	}

	cfg.BeanVarArgProperty(prop, prop, fields, jdbcTypeFieldClass)
}

// DomainStore records the database table mapping of a domain.
func (a *Assembler) DomainStore(domain model.Object, cfg *bean.Bean) *bean.Bean {
	cfg = a.domainBean(domain, cfg)

	cfg.StringProperty("databaseSchema").
		StringProperty("databaseTable")

	a.databaseFields(cfg, "keyFields", domain)
	a.databaseFields(cfg, "valueFields", domain)

	return cfg
}
