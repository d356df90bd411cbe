// Package javagen emits Java source that builds an IgniteConfiguration from
// a bean tree.
//
// Emission walks beans depth first. Every construction method owns an
// Emitter whose context records declared variables and constructed bean
// instances, so a shared bean is built once and later references reuse its
// variable. Nested factory-method beans (cache configurations, JDBC types,
// binary type configurations) are split into their own static methods and
// referenced by call.
package javagen

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/ssidorov-gg/apache-ignite/internal/assemble"
	"github.com/ssidorov-gg/apache-ignite/internal/bean"
	"github.com/ssidorov-gg/apache-ignite/internal/javagen/javadsl"
	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// ErrInvalidOptions is returned when the package or class name is not a
// valid Java name.
var ErrInvalidOptions = errors.New("invalid generator options")

var (
	javaIdent   = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
	javaPackage = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
)

// Validate checks the package and class names.
func (o Options) Validate() error {
	if !javaPackage.MatchString(o.PackageName()) {
		return fmt.Errorf("%w: package %q", ErrInvalidOptions, o.PackageName())
	}
	if !javaIdent.MatchString(o.ClassName()) {
		return fmt.Errorf("%w: class %q", ErrInvalidOptions, o.ClassName())
	}
	return nil
}

// Build assembles cluster and returns the compilation unit.
func Build(cluster model.Object, opts Options) (javadsl.File, error) {
	if err := opts.Validate(); err != nil {
		return javadsl.File{}, err
	}

	a := assemble.New(opts.defaults())
	cfg := a.IgniteConfiguration(cluster, opts.Client)

	var nearCaches []*bean.Bean
	if opts.Client {
		nearCaches = a.ClientNearCaches(cluster)
	}

	return BuildFile(cfg, nearCaches, opts), nil
}

// Generate assembles cluster and renders the Java source.
func Generate(cluster model.Object, opts Options) ([]byte, error) {
	f, err := Build(cluster, opts)
	if err != nil {
		return nil, err
	}
	return javadsl.NewPrinter().Print(f), nil
}
