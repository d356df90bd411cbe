package bean

import (
	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// ValueOf resolves path in the source, falling back to the default value.
func (b *Bean) ValueOf(path string) any {
	if v := b.src.Value(path); !model.IsEmpty(v) {
		return v
	}
	if d, ok := b.dflts.Lookup(path); ok {
		return defaults.Plain(d)
	}
	return nil
}

// Includes reports whether every path holds a non-default, non-empty value.
func (b *Bean) Includes(paths ...string) bool {
	for _, p := range paths {
		if _, ok := b.differs(p); !ok {
			return false
		}
	}
	return len(paths) > 0
}

// differs returns the source value at path when it is worth recording.
// A path without a default is always worth recording when set.
func (b *Bean) differs(path string) (any, bool) {
	if b.src == nil {
		return nil, false
	}
	v := b.src.Value(path)
	if model.IsEmpty(v) {
		return nil, false
	}
	if d, ok := b.dflts.Lookup(path); ok {
		if plain := defaults.Plain(d); plain != nil && model.Equal(v, plain) {
			return nil, false
		}
	}
	return v, true
}

func (b *Bean) enumDefault(path string) (defaults.Enum, bool) {
	d, ok := b.dflts.Lookup(path)
	if !ok {
		return defaults.Enum{}, false
	}
	e, ok := d.(defaults.Enum)
	return e, ok
}

func (b *Bean) scalar(kind Kind, path, name string) *Bean {
	v, ok := b.differs(path)
	if !ok {
		return b
	}
	return b.addProperty(Property{Kind: kind, Name: name, Value: v})
}

// StringProperty records the string at path under the same name.
func (b *Bean) StringProperty(path string) *Bean {
	return b.scalar(KindString, path, path)
}

// StringPropertyAs records the string at path as property name.
func (b *Bean) StringPropertyAs(path, name string) *Bean {
	return b.scalar(KindString, path, name)
}

// IntProperty records the number at path under the same name.
func (b *Bean) IntProperty(path string) *Bean {
	return b.scalar(KindInt, path, path)
}

// IntPropertyAs records the number at path as property name.
func (b *Bean) IntPropertyAs(path, name string) *Bean {
	return b.scalar(KindInt, path, name)
}

// ByteProperty records the number at path as a byte.
func (b *Bean) ByteProperty(path string) *Bean {
	return b.scalar(KindByte, path, path)
}

// BoolProperty records the boolean at path.
func (b *Bean) BoolProperty(path string) *Bean {
	return b.scalar(KindBool, path, path)
}

// PathProperty records the file system path at path.
func (b *Bean) PathProperty(path string) *Bean {
	return b.scalar(KindPath, path, path)
}

// PathPropertyAs records the file system path at path as property name.
func (b *Bean) PathPropertyAs(path, name string) *Bean {
	return b.scalar(KindPath, path, name)
}

// ClassProperty records a class literal for the class name at path.
func (b *Bean) ClassProperty(path string) *Bean {
	v, ok := b.differs(path)
	if !ok {
		return b
	}
	if s, isStr := v.(string); isStr {
		v = javatypes.FullClassName(s)
	}
	return b.addProperty(Property{Kind: KindClass, Name: path, Value: v})
}

// EnumProperty records the enum constant at path. The declaring type comes
// from the default table; without an enum default the value is recorded as
// a string.
func (b *Bean) EnumProperty(path string) *Bean {
	v, ok := b.differs(path)
	if !ok {
		return b
	}
	e, ok := b.enumDefault(path)
	if !ok {
		return b.addProperty(Property{Kind: KindString, Name: path, Value: v})
	}
	return b.addProperty(Property{Kind: KindEnum, Name: path, Value: v, Class: e.Class, Mapper: e.Mapper})
}

// EmptyBeanProperty records `new <class>()` for the class name at path.
func (b *Bean) EmptyBeanProperty(path string) *Bean {
	v, ok := b.differs(path)
	if !ok {
		return b
	}
	cls, isStr := v.(string)
	if !isStr {
		return b
	}
	return b.BeanProperty(path, New(cls))
}

// MapProperty records a map built from the entry records at path. The key
// and value selectors come from the map default at path, falling back to
// string name/value entries.
func (b *Bean) MapProperty(id, path, name string) *Bean {
	if b.src == nil {
		return b
	}
	m := defaults.Map{
		KeyClass: "java.lang.String",
		ValClass: "java.lang.String",
		KeyField: "name",
		ValField: "value",
	}
	if d, ok := b.dflts.Lookup(path); ok {
		if dm, isMap := d.(defaults.Map); isMap {
			m = dm
		}
	}
	return b.MapEntriesProperty(id, name, b.src.Objects(path), m)
}

// PropsProperty records a java.util.Properties bag from name/value records at path.
func (b *Bean) PropsProperty(id, path, name string) *Bean {
	if b.src == nil {
		return b
	}
	entries := b.src.Objects(path)
	if len(entries) == 0 {
		return b
	}
	return b.addProperty(Property{Kind: KindProperties, Name: name, ID: id, Entries: entries})
}
