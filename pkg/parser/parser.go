// Package parser decodes cluster configuration documents for ignitegen.
//
// Documents are YAML or JSON. Both are accepted through sigs.k8s.io/yaml,
// which converts YAML to JSON before decoding, so a document exported by
// the configuration UI as JSON and a hand-written YAML file produce the same
// tree.
//
// # Basic Usage
//
// Parse a cluster file:
//
//	cluster, err := parser.ParseCluster("clusters/prod.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parse a cluster from memory:
//
//	cluster, err := parser.ParseClusterBytes(content)
//
// Numbers are normalized: integral values decode to int64, everything else
// to float64. Default tables compare numerically, so either representation
// suppresses an equal default.
package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/ssidorov-gg/apache-ignite/pkg/model"
)

// ErrNotAnObject is returned when a document root is not a mapping.
var ErrNotAnObject = errors.New("cluster document root must be a mapping")

// ParseCluster reads a YAML or JSON cluster document from path.
func ParseCluster(path string) (model.Object, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted source
	if err != nil {
		return nil, fmt.Errorf("reading cluster file: %w", err)
	}

	return ParseClusterBytes(content)
}

// ParseClusterBytes decodes a YAML or JSON cluster document.
func ParseClusterBytes(content []byte) (model.Object, error) {
	raw, err := yaml.YAMLToJSON(content)
	if err != nil {
		return nil, fmt.Errorf("decoding cluster document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding cluster document: %w", err)
	}

	obj, ok := normalize(root).(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return model.Object(obj), nil
}

// normalize replaces json.Number with int64 or float64, recursively.
func normalize(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		for k, item := range x {
			x[k] = normalize(item)
		}
		return x
	case []any:
		for i, item := range x {
			x[i] = normalize(item)
		}
		return x
	default:
		return v
	}
}
