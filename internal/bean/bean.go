// Package bean models one Java object construction: its class, the variable
// it is bound to, positional constructor arguments and the ordered setter
// calls applied after construction.
//
// Beans are produced by the assembler and consumed read-only by the emitter.
// A diffable bean remembers the configuration slice and default table it was
// built from so that section code can record only settings that diverge from
// the defaults (see diff.go).
package bean

import (
	"unicode"
	"unicode/utf8"

	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/internal/javatypes"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// Bean is one object construction.
type Bean struct {
	// Class is the fully qualified Java class.
	Class string
	// ID is the variable name the object is bound to.
	ID    string
	Args  []Argument
	Props []Property
	// Method marks a bean produced by a factory method of the generated class
	// instead of being constructed in place.
	Method bool

	src   model.Object
	dflts defaults.Table
}

// New returns an empty bean named after its class.
func New(class string) *Bean {
	return &Bean{Class: class, ID: lowerFirst(javatypes.ShortClassName(class))}
}

// NewDiff returns a bean whose diff operations compare src against dflts.
func NewDiff(class, id string, src model.Object, dflts defaults.Table) *Bean {
	b := New(class)
	if id != "" {
		b.ID = id
	}
	b.src = src
	b.dflts = dflts
	return b
}

// NewMethod is NewDiff for a bean emitted as a factory method.
func NewMethod(class, id string, src model.Object, dflts defaults.Table) *Bean {
	b := NewDiff(class, id, src, dflts)
	b.Method = true
	return b
}

// Source returns the configuration slice the bean was built from.
func (b *Bean) Source() model.Object {
	return b.src
}

// Defaults returns the default table the bean is diffed against.
func (b *Bean) Defaults() defaults.Table {
	return b.dflts
}

// IsEmpty reports whether the bean has neither arguments nor properties.
func (b *Bean) IsEmpty() bool {
	return len(b.Args) == 0 && len(b.Props) == 0
}

// NonEmpty is the negation of IsEmpty.
func (b *Bean) NonEmpty() bool {
	return !b.IsEmpty()
}

// IsComplex reports whether the bean needs its own declaration: it has
// properties, or one of its arguments is a complex bean.
func (b *Bean) IsComplex() bool {
	if len(b.Props) > 0 {
		return true
	}
	for _, arg := range b.Args {
		if arg.Kind == KindBean && arg.Bean != nil && arg.Bean.IsComplex() {
			return true
		}
	}
	return false
}

// FindProperty returns the property with the given setter name, or nil.
func (b *Bean) FindProperty(name string) *Property {
	for i := range b.Props {
		if b.Props[i].Name == name {
			return &b.Props[i]
		}
	}
	return nil
}

// WithoutProperties returns a shallow copy of b lacking the named properties.
func (b *Bean) WithoutProperties(names ...string) *Bean {
	cp := *b
	cp.Props = nil
	for _, p := range b.Props {
		skip := false
		for _, n := range names {
			if p.Name == n {
				skip = true
				break
			}
		}
		if !skip {
			cp.Props = append(cp.Props, p)
		}
	}
	return &cp
}

// addProperty appends p, replacing an earlier property with the same setter.
func (b *Bean) addProperty(p Property) *Bean {
	for i := range b.Props {
		if b.Props[i].Name == p.Name {
			b.Props[i] = p
			return b
		}
	}
	b.Props = append(b.Props, p)
	return b
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
