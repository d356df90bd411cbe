// Package java implements the Java dialect: a single compilation unit whose
// static createConfiguration() method builds an IgniteConfiguration.
package java

import (
	"path"
	"strings"

	"github.com/ssidorov-gg/apache-ignite/internal/codegen"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

func init() {
	codegen.Register(&Generator{})
}

// Generator implements codegen.Generator for Java.
type Generator struct{}

// Name returns "java".
func (g *Generator) Name() string { return "java" }

// DefaultConfig returns the default package and server node output.
func (g *Generator) DefaultConfig() *codegen.Config {
	return &codegen.Config{
		Package: javagen.DefaultPackage,
		Options: make(map[string]any),
	}
}

// Generate renders one .java file placed under its package directory.
//
// Supported options:
//   - "flat" (bool): place the file at the output root instead of the
//     package directory.
func (g *Generator) Generate(cluster model.Object, cfg *codegen.Config) (map[string][]byte, error) {
	if cfg == nil {
		cfg = g.DefaultConfig()
	}

	opts := javagen.Options{
		Package:  cfg.Package,
		Class:    cfg.Class,
		Client:   cfg.Client,
		Defaults: cfg.Defaults,
	}

	src, err := javagen.Generate(cluster, opts)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{FileName(opts, flat(cfg)): src}, nil
}

// FileName returns the relative path of the generated source.
func FileName(opts javagen.Options, flat bool) string {
	name := opts.ClassName() + ".java"
	if flat {
		return name
	}
	return path.Join(strings.ReplaceAll(opts.PackageName(), ".", "/"), name)
}

func flat(cfg *codegen.Config) bool {
	v, _ := cfg.Options["flat"].(bool)
	return v
}
