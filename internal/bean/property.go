package bean

import (
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// Kind tags an argument or property entry.
type Kind string

// Scalar kinds.
const (
	KindString      Kind = "string"
	KindInt         Kind = "int"
	KindBool        Kind = "bool"
	KindByte        Kind = "byte"
	KindPath        Kind = "path"
	KindClass       Kind = "class"
	KindSecretRef   Kind = "secret"
	KindSecretChars Kind = "secret-chars"
	KindConstant    Kind = "constant"
	KindEnum        Kind = "enum"
)

// Structured kinds.
const (
	KindBean       Kind = "bean"
	KindArray      Kind = "array"
	KindCollection Kind = "collection"
	KindMap        Kind = "map"
	KindProperties Kind = "properties"
	KindDataSource Kind = "datasource"
	KindEventTypes Kind = "event-types"
)

// Default container types.
const (
	CollectionIface = "java.util.Collection"
	CollectionImpl  = "java.util.ArrayList"
)

// Argument is one positional constructor argument.
type Argument struct {
	Kind Kind
	// Class declares the constant for KindConstant.
	Class string
	Value any
	Bean  *Bean
}

// Property is one setter call.
type Property struct {
	Kind Kind
	// Name is the property name; the setter is set<Name>.
	Name string
	// ID names the local variable of container properties and the data source
	// of KindDataSource.
	ID    string
	Value any

	// Class is the declaring type of an enum.
	Class  string
	Mapper func(string) string

	Bean *Bean

	// Values holds scalar items of arrays and collections; Beans holds bean
	// items. At most one of them is set.
	Values    []any
	Beans     []*Bean
	ElemClass string
	Iface     string
	ImplClass string
	// VarArg selects positional emission for arrays.
	VarArg bool

	Map     *defaults.Map
	Entries []model.Object

	// Groups lists event group constant names.
	Groups []string
}

// EnumValue returns the Java constant name of an enum property.
func (p *Property) EnumValue() string {
	s, _ := p.Value.(string)
	if p.Mapper != nil {
		return p.Mapper(s)
	}
	return s
}

// DerivedProperty records a property computed by section code. Empty values
// are skipped.
func (b *Bean) DerivedProperty(kind Kind, name string, value any) *Bean {
	if model.IsEmpty(value) {
		return b
	}
	return b.addProperty(Property{Kind: kind, Name: name, Value: value})
}

// SecretProperty records a value read from the secret properties file.
func (b *Bean) SecretProperty(name, key string) *Bean {
	return b.addProperty(Property{Kind: KindSecretRef, Name: name, Value: key})
}

// SecretCharsProperty records a char[] value read from the secret properties file.
func (b *Bean) SecretCharsProperty(name, key string) *Bean {
	return b.addProperty(Property{Kind: KindSecretChars, Name: name, Value: key})
}

// BeanProperty records a nested bean. A nil bean is ignored.
func (b *Bean) BeanProperty(name string, nested *Bean) *Bean {
	if nested == nil {
		return b
	}
	return b.addProperty(Property{Kind: KindBean, Name: name, Bean: nested})
}

// Collection records a collection property with explicit container types.
// Empty collections are skipped.
func (b *Bean) Collection(id, name, iface, elem, impl string, values []any, beans []*Bean) *Bean {
	if len(values) == 0 && len(beans) == 0 {
		return b
	}
	return b.addProperty(Property{
		Kind:      KindCollection,
		Name:      name,
		ID:        id,
		Values:    values,
		Beans:     beans,
		ElemClass: javatypes.FullClassName(elem),
		Iface:     iface,
		ImplClass: impl,
	})
}

// CollectionProperty records a collection of scalar values.
func (b *Bean) CollectionProperty(id, name string, values []any, elem string) *Bean {
	return b.Collection(id, name, CollectionIface, elem, CollectionImpl, values, nil)
}

// BeanCollectionProperty records a collection of beans.
func (b *Bean) BeanCollectionProperty(id, name string, beans []*Bean, elem string) *Bean {
	return b.Collection(id, name, CollectionIface, elem, CollectionImpl, nil, beans)
}

// Array records an array property. Empty arrays are skipped.
func (b *Bean) Array(id, name, elem string, varArg bool, values []any, beans []*Bean) *Bean {
	if len(values) == 0 && len(beans) == 0 {
		return b
	}
	return b.addProperty(Property{
		Kind:      KindArray,
		Name:      name,
		ID:        id,
		Values:    values,
		Beans:     beans,
		ElemClass: javatypes.FullClassName(elem),
		VarArg:    varArg,
	})
}

// ArrayProperty records an array of scalars passed as one array object.
func (b *Bean) ArrayProperty(id, name string, values []any, elem string) *Bean {
	return b.Array(id, name, elem, false, values, nil)
}

// BeanArrayProperty records an array of beans constructed element by element.
func (b *Bean) BeanArrayProperty(id, name string, beans []*Bean, elem string) *Bean {
	return b.Array(id, name, elem, false, nil, beans)
}

// VarArgProperty records scalars passed positionally to a variable-arity setter.
func (b *Bean) VarArgProperty(id, name string, values []any, elem string) *Bean {
	return b.Array(id, name, elem, true, values, nil)
}

// BeanVarArgProperty records beans passed positionally to a variable-arity setter.
func (b *Bean) BeanVarArgProperty(id, name string, beans []*Bean, elem string) *Bean {
	return b.Array(id, name, elem, true, nil, beans)
}

// MapEntriesProperty records a map built from entry records. Empty entry
// lists are skipped.
func (b *Bean) MapEntriesProperty(id, name string, entries []model.Object, m defaults.Map) *Bean {
	if len(entries) == 0 {
		return b
	}
	return b.addProperty(Property{Kind: KindMap, Name: name, ID: id, Entries: entries, Map: &m})
}

// EventTypes records the include-event-types union of named groups.
func (b *Bean) EventTypes(id, name string, groups []string) *Bean {
	if len(groups) == 0 {
		return b
	}
	return b.addProperty(Property{Kind: KindEventTypes, Name: name, ID: id, Groups: groups})
}

// DataSource records a reference to the data source singleton id built from ds.
func (b *Bean) DataSource(id, name string, ds *Bean) *Bean {
	if id == "" || ds == nil {
		return b
	}
	return b.addProperty(Property{Kind: KindDataSource, Name: name, ID: id, Bean: ds})
}

func (b *Bean) addArgument(arg Argument) *Bean {
	b.Args = append(b.Args, arg)
	return b
}

// StringArgument appends the string at path.
func (b *Bean) StringArgument(path string) *Bean {
	return b.addArgument(Argument{Kind: KindString, Value: b.ValueOf(path)})
}

// IntArgument appends the number at path.
func (b *Bean) IntArgument(path string) *Bean {
	return b.addArgument(Argument{Kind: KindInt, Value: b.ValueOf(path)})
}

// PathArgument appends the file system path at path.
func (b *Bean) PathArgument(path string) *Bean {
	return b.addArgument(Argument{Kind: KindPath, Value: b.ValueOf(path)})
}

// ClassArgument appends a class literal for the class name at path.
func (b *Bean) ClassArgument(path string) *Bean {
	v := b.ValueOf(path)
	if s, ok := v.(string); ok {
		v = javatypes.FullClassName(s)
	}
	return b.addArgument(Argument{Kind: KindClass, Value: v})
}

// ConstantArgument appends a constant of the type declared by the enum
// default at path.
func (b *Bean) ConstantArgument(path string) *Bean {
	arg := Argument{Kind: KindConstant, Value: b.ValueOf(path)}
	if e, ok := b.enumDefault(path); ok {
		arg.Class = e.Class
	}
	return b.addArgument(arg)
}

// BeanArgument appends a nested bean.
func (b *Bean) BeanArgument(nested *Bean) *Bean {
	return b.addArgument(Argument{Kind: KindBean, Bean: nested})
}
