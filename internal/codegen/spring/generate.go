// Package spring implements a stub Spring XML dialect.
//
// The dialect is registered so that --dialect spring reports a clear error
// instead of an unknown dialect.
package spring

import (
	"github.com/ssidorov-gg/apache-ignite/internal/codegen"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func init() {
	codegen.Register(&Generator{})
}

// Generator implements codegen.Generator for Spring XML.
// Currently a stub that returns codegen.ErrNotImplemented.
type Generator struct{}

// Name returns "spring".
func (g *Generator) Name() string { return "spring" }

// DefaultConfig returns default configuration for Spring XML output.
func (g *Generator) DefaultConfig() *codegen.Config {
	return &codegen.Config{Options: make(map[string]any)}
}

// Generate returns codegen.ErrNotImplemented.
//
// Future implementation will produce:
//   - ignite-config.xml: the IgniteConfiguration bean definition
//   - secret.properties: placeholders for referenced secrets
func (g *Generator) Generate(_ model.Object, _ *codegen.Config) (map[string][]byte, error) {
	return nil, codegen.ErrNotImplemented
}
