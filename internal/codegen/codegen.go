// Package codegen provides a registry of output dialects.
//
// A dialect turns a cluster document into one or more source files. Generators
// return a file map keyed by path relative to the output directory, so a
// dialect that needs several files (for example a configuration class plus a
// secrets template) can return them together.
//
// Dialects register themselves from init(). The CLI imports them for side
// effects and dispatches on the --dialect flag.
package codegen

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ssidorov-gg/apache-ignite/internal/defaults"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

var (
	// ErrUnknownDialect is returned by Lookup for an unregistered name.
	ErrUnknownDialect = errors.New("unknown dialect")
	// ErrNotImplemented is returned by dialects that are registered but
	// cannot generate output yet.
	ErrNotImplemented = errors.New("dialect not implemented")
)

// Generator produces dialect-specific configuration code for one cluster.
type Generator interface {
	// Name returns the dialect identifier used as the value of --dialect.
	Name() string

	// Generate returns a map of relative path -> content.
	Generate(cluster model.Object, cfg *Config) (map[string][]byte, error)

	// DefaultConfig returns the configuration used when the caller passes nil.
	DefaultConfig() *Config
}

// Config holds dialect-agnostic generation options.
type Config struct {
	// Package is the package or namespace of generated code.
	Package string

	// Class is the name of the generated type. Empty lets the dialect pick
	// a name by node role.
	Class string

	// Client selects client node output.
	Client bool

	// Defaults are the tables the document is diffed against. Nil selects
	// the built-in tables.
	Defaults *defaults.Set

	// Options holds dialect-specific configuration.
	Options map[string]any
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator to the global registry.
//
// Panics if a generator with the same name is already registered.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()

	name := g.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("codegen: dialect %q already registered", name))
	}
	registry[name] = g
}

// Get returns the generator for the given dialect, or nil.
func Get(name string) Generator {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Lookup is like Get but reports unknown dialects as ErrUnknownDialect.
func Lookup(name string) (Generator, error) {
	if g := Get(name); g != nil {
		return g, nil
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownDialect, name, List())
}

// List returns all registered dialect names in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Registered reports whether a generator is registered for name.
func Registered(name string) bool {
	return Get(name) != nil
}
