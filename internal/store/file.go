package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/ssidorov-gg/apache-ignite/pkg/model"
	"github.com/ssidorov-gg/apache-ignite/pkg/parser"
)

// documentExts are the recognized cluster file extensions in lookup order.
var documentExts = []string{".yaml", ".yml", ".json"}

// File stores one document per file in a directory. The cluster identifier
// is the file name without extension.
type File struct {
	dir string
}

// NewFile returns a file store rooted at dir.
func NewFile(dir string) *File {
	return &File{dir: dir}
}

// Dir returns the store directory.
func (s *File) Dir() string { return s.dir }

// List implements Store.
func (s *File) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if !slices.Contains(documentExts, ext) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// Path returns the file holding cluster id, or ErrNotFound.
func (s *File) Path(id string) (string, error) {
	if !validID(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	for _, ext := range documentExts {
		p := filepath.Join(s.dir, id+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Get implements Store.
func (s *File) Get(_ context.Context, id string) (model.Object, error) {
	p, err := s.Path(id)
	if err != nil {
		return nil, err
	}
	return parser.ParseCluster(p)
}

// Put implements Store. Documents are written as YAML; an existing file of
// the same cluster is replaced in place whatever its extension.
func (s *File) Put(_ context.Context, id string, doc model.Object) error {
	p, err := s.Path(id)
	switch {
	case errors.Is(err, ErrNotFound):
		p = filepath.Join(s.dir, id+".yaml")
	case err != nil:
		return err
	}

	var data []byte
	if filepath.Ext(p) == ".json" {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding cluster %s: %w", id, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}
	if err := os.WriteFile(p, data, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("writing cluster %s: %w", id, err)
	}
	return nil
}

// Close implements Store.
func (s *File) Close() error { return nil }
