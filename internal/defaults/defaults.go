// Package defaults holds the baseline tables a configuration is diffed against.
//
// A table mirrors the shape of one configuration section. Leaves are typed:
// a Scalar carries a plain value, an Enum carries the symbolic value together
// with its declaring Java type, and a Map describes how entry records of a
// key/value property are read. Tables are built once and never mutated.
package defaults

import "strings"

// Value is one entry of a default table.
type Value interface {
	isValue()
}

// Scalar is a plain default value.
type Scalar struct {
	V any
}

// Enum is the default of an enum-valued property.
type Enum struct {
	// Class is the fully qualified declaring type.
	Class string
	// Value is the default symbolic value. Empty when the property has no default.
	Value string
	// Mapper optionally converts a configured value to the Java constant name.
	Mapper func(string) string
}

// Map describes a key/value property read from a list of entry records.
type Map struct {
	KeyClass string
	ValClass string
	KeyField string
	ValField string
	Ordered  bool
}

// Table is a nested default table.
type Table map[string]Value

func (Scalar) isValue() {}
func (Enum) isValue()   {}
func (Map) isValue()    {}
func (Table) isValue()  {}

// Lookup resolves a dotted path.
func (t Table) Lookup(path string) (Value, bool) {
	var cur Value = t
	for _, seg := range strings.Split(path, ".") {
		tbl, ok := cur.(Table)
		if !ok || tbl == nil {
			return nil, false
		}
		cur, ok = tbl[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Sub returns the nested table at path, or nil.
func (t Table) Sub(path string) Table {
	v, ok := t.Lookup(path)
	if !ok {
		return nil
	}
	tbl, _ := v.(Table)
	return tbl
}

// Plain returns the value a configured setting is compared against.
func Plain(v Value) any {
	switch d := v.(type) {
	case Scalar:
		return d.V
	case Enum:
		if d.Value == "" {
			return nil
		}
		return d.Value
	default:
		return nil
	}
}

// S is shorthand for a Scalar default.
func S(v any) Scalar { return Scalar{V: v} }

// E is shorthand for an Enum default.
func E(class, value string) Enum { return Enum{Class: class, Value: value} }

// EventGroup is a named set of event type constants.
type EventGroup struct {
	// Value is the constant name, e.g. EVTS_CACHE.
	Value string
	// Class is the type declaring the constant.
	Class string
	Label string
}

// Set bundles every table the generator consults.
type Set struct {
	Cluster     Table
	Cache       Table
	IGFS        Table
	Dialects    map[string]string
	EventGroups []EventGroup
}

// EventGroup returns the group with the given constant name.
func (s *Set) EventGroup(value string) (EventGroup, bool) {
	for _, g := range s.EventGroups {
		if g.Value == value {
			return g, true
		}
	}
	return EventGroup{}, false
}

// Standard returns the built-in defaults.
func Standard() *Set {
	return standard
}

var standard = &Set{
	Cluster:     clusterDefaults,
	Cache:       cacheDefaults,
	IGFS:        igfsDefaults,
	Dialects:    dialects,
	EventGroups: eventGroups,
}
