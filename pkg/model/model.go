// Package model defines the input document consumed by the generator.
//
// A cluster configuration is a loosely typed tree of mappings, lists and
// scalars as produced by the configuration UI. Object wraps that tree with
// dotted-path accessors so that section code can probe optional settings
// without type assertions at every step.
package model

import (
	"reflect"
	"strings"
)

// Object is one mapping node of a configuration document.
type Object map[string]any

// Get resolves a dotted path. The second result reports whether every
// segment of the path was present.
func (o Object) Get(path string) (any, bool) {
	if o == nil {
		return nil, false
	}
	var cur any = o
	for _, seg := range strings.Split(path, ".") {
		m, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		cur, ok = m[seg]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Value returns the value at path or nil.
func (o Object) Value(path string) any {
	v, _ := o.Get(path)
	return v
}

// String returns the string at path, or "" when absent or not a string.
func (o Object) String(path string) string {
	s, _ := o.Value(path).(string)
	return s
}

// Bool reports whether the value at path is truthy.
func (o Object) Bool(path string) bool {
	return Truthy(o.Value(path))
}

// Object returns the mapping at path, or nil.
func (o Object) Object(path string) Object {
	m, _ := asObject(o.Value(path))
	return m
}

// List returns the list at path, or nil.
func (o Object) List(path string) []any {
	l, _ := o.Value(path).([]any)
	return l
}

// Objects returns the mappings of the list at path. Non-mapping items are skipped.
func (o Object) Objects(path string) []Object {
	var out []Object
	for _, item := range o.List(path) {
		if m, ok := asObject(item); ok {
			out = append(out, m)
		}
	}
	return out
}

// Strings returns the string items of the list at path.
func (o Object) Strings(path string) []string {
	var out []string
	for _, item := range o.List(path) {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether the value at path is present and not nil.
func (o Object) Has(path string) bool {
	v, ok := o.Get(path)
	return ok && v != nil
}

func asObject(v any) (Object, bool) {
	switch m := v.(type) {
	case Object:
		return m, m != nil
	case map[string]any:
		return Object(m), m != nil
	default:
		return nil, false
	}
}

// Truthy implements the gating rule used by configuration sections: nil,
// false, zero numbers, empty strings and empty containers are false.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	case Object:
		return len(x) > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32:
		return rv.Float() != 0
	}
	return true
}

// IsEmpty reports whether v carries no value worth emitting. Unlike Truthy,
// false and zero are values.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case []any:
		return len(x) == 0
	case map[string]any:
		return len(x) == 0
	case Object:
		return len(x) == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}

// Equal compares two scalar document values. Numbers compare by value
// regardless of their Go representation.
func Equal(a, b any) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}
