package javatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortClassName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"org.apache.ignite.configuration.IgniteConfiguration", "IgniteConfiguration"},
		{"java.lang.String", "String"},
		{"int", "int"},
		{"org.example.Outer$Inner", "Outer.Inner"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ShortClassName(tt.in))
		})
	}
}

func TestImportable(t *testing.T) {
	assert.False(t, Importable("java.lang.String"))
	assert.True(t, Importable("java.lang.reflect.Method"))
	assert.False(t, Importable("int"))
	assert.False(t, Importable("Person"))
	assert.False(t, Importable(""))
	assert.True(t, Importable("java.util.ArrayList"))
}

func TestBuiltIns(t *testing.T) {
	assert.Equal(t, "java.lang.Integer", FullClassName("Integer"))
	assert.Equal(t, "org.example.Person", FullClassName("org.example.Person"))
	assert.True(t, IsBuiltIn("java.util.UUID"))
	assert.True(t, IsBuiltIn("long"))
	assert.False(t, IsBuiltIn("org.example.Person"))
	assert.True(t, IsEnum("org.apache.ignite.cache.CacheMode"))
	assert.False(t, IsEnum("org.apache.ignite.configuration.CacheConfiguration"))
}

func TestSetter(t *testing.T) {
	assert.Equal(t, "setDiscoverySpi", Setter("discoverySpi"))
	assert.Equal(t, "setURL", Setter("URL"))
}

func TestToJavaName(t *testing.T) {
	assert.Equal(t, "cachePerson", ToJavaName("cache", "Person"))
	assert.Equal(t, "cache", ToJavaName("cache", "***"))

	name := ToJavaName("cache", "person cache #1")
	assert.Regexp(t, `^cache[A-Za-z0-9_]+$`, name)
}
