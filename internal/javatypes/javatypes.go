// Package javatypes answers questions about Java type names for the emitter:
// short names, built-in and primitive detection, enum detection and
// identifier synthesis.
package javatypes

import (
	"regexp"
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var primitives = map[string]bool{
	"boolean": true,
	"byte":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"char":    true,
}

// builtIns maps short names accepted in configuration to full class names.
var builtIns = map[string]string{
	"BigDecimal": "java.math.BigDecimal",
	"Boolean":    "java.lang.Boolean",
	"Byte":       "java.lang.Byte",
	"Character":  "java.lang.Character",
	"Class":      "java.lang.Class",
	"Date":       "java.sql.Date",
	"Double":     "java.lang.Double",
	"Float":      "java.lang.Float",
	"Integer":    "java.lang.Integer",
	"Long":       "java.lang.Long",
	"Object":     "java.lang.Object",
	"Short":      "java.lang.Short",
	"String":     "java.lang.String",
	"Time":       "java.sql.Time",
	"Timestamp":  "java.sql.Timestamp",
	"UUID":       "java.util.UUID",
}

var enums = map[string]bool{
	"org.apache.ignite.cache.CacheAtomicityMode":            true,
	"org.apache.ignite.cache.CacheAtomicWriteOrderMode":     true,
	"org.apache.ignite.cache.CacheMemoryMode":               true,
	"org.apache.ignite.cache.CacheMode":                     true,
	"org.apache.ignite.cache.CacheRebalanceMode":            true,
	"org.apache.ignite.cache.CacheWriteSynchronizationMode": true,
	"org.apache.ignite.cache.QueryIndexType":                true,
	"org.apache.ignite.configuration.DeploymentMode":        true,
	"org.apache.ignite.igfs.IgfsIpcEndpointType":            true,
	"org.apache.ignite.igfs.IgfsMode":                       true,
	"org.apache.ignite.transactions.TransactionConcurrency": true,
	"org.apache.ignite.transactions.TransactionIsolation":   true,
	"org.apache.log4j.Level":                                true,
	"org.apache.logging.log4j.Level":                        true,
	"java.sql.Types":                                        true,
}

// ShortClassName returns the simple name of a class. Nested classes written
// with '$' are rendered with '.'.
func ShortClassName(class string) string {
	if i := strings.LastIndexByte(class, '.'); i >= 0 {
		class = class[i+1:]
	}
	return strings.ReplaceAll(class, "$", ".")
}

// FullClassName expands a short built-in name. Other names are returned unchanged.
func FullClassName(class string) string {
	if full, ok := builtIns[class]; ok {
		return full
	}
	return class
}

// IsPrimitive reports whether class is a Java primitive type.
func IsPrimitive(class string) bool {
	return primitives[class]
}

// IsJavaLang reports whether class needs no import.
func IsJavaLang(class string) bool {
	if IsPrimitive(strings.TrimSuffix(class, "[]")) {
		return true
	}
	if strings.HasPrefix(class, "java.lang.") {
		return !strings.Contains(strings.TrimPrefix(class, "java.lang."), ".")
	}
	return false
}

// IsBuiltIn reports whether class is a JDK value type rather than a
// constructible configuration bean.
func IsBuiltIn(class string) bool {
	if IsPrimitive(class) {
		return true
	}
	if _, ok := builtIns[class]; ok {
		return true
	}
	for _, full := range builtIns {
		if full == class {
			return true
		}
	}
	return false
}

// IsEnum reports whether class is a known enum or constant holder.
func IsEnum(class string) bool {
	return enums[class]
}

// Importable reports whether class should appear in an import list.
func Importable(class string) bool {
	if class == "" || !strings.Contains(class, ".") {
		return false
	}
	return !IsJavaLang(class)
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]+`)

// ToJavaName builds an identifier from a prefix and an arbitrary display name.
func ToJavaName(prefix, name string) string {
	cleaned := strings.Trim(nonIdent.ReplaceAllString(name, "_"), "_")
	if cleaned == "" {
		return prefix
	}
	return prefix + UpperFirst(inflect.Camelize(cleaned))
}

// UpperFirst upper-cases the first letter and keeps the rest intact.
func UpperFirst(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// Setter returns the mutator name for a property.
func Setter(property string) string {
	return "set" + UpperFirst(property)
}
