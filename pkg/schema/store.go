package schema

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/registry"
)

// Store aggregates the models and resources declared across schema documents.
type Store struct {
	appNamespace      string
	resourceNamespace string
	namespacesSet     [2]bool
	models            []model.Model
	modelIndex        map[string]int
	resources         []ResourceDecl
}

func newStore() *Store {
	return &Store{
		appNamespace:      model.DefaultAppNamespace,
		resourceNamespace: registry.DefaultNamespace,
		modelIndex:        make(map[string]int),
	}
}

// LoadFS walks fsys and merges every YAML/JSON schema document. When fsys is
// nil or holds no documents the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := newStore()
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(filePath) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", filePath, err)
		}
		doc, err := Parse(SourceFromFS(filePath), data)
		if err != nil {
			return err
		}
		return store.add(doc)
	})
	if err != nil {
		return nil, err
	}
	if err := store.validate(); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile parses a single schema document from disk.
func LoadFile(filePath string) (*Store, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", filePath, err)
	}
	doc, err := Parse(SourceFromFile(filePath), data)
	if err != nil {
		return nil, err
	}
	store := newStore()
	if err := store.add(doc); err != nil {
		return nil, err
	}
	if err := store.validate(); err != nil {
		return nil, err
	}
	return store, nil
}

// AppNamespace returns the namespace stripped from model types.
func (s *Store) AppNamespace() string {
	return s.appNamespace
}

// ResourceNamespace returns the namespace filtering registry lookups.
func (s *Store) ResourceNamespace() string {
	return s.resourceNamespace
}

// Model returns the declaration for modelType.
func (s *Store) Model(modelType string) (model.Model, bool) {
	idx, ok := s.modelIndex[modelType]
	if !ok {
		return model.Model{}, false
	}
	return s.models[idx], true
}

// Models returns every model in load order.
func (s *Store) Models() []model.Model {
	return append([]model.Model(nil), s.models...)
}

// Resources returns every resource declaration in load order.
func (s *Store) Resources() []ResourceDecl {
	return append([]ResourceDecl(nil), s.resources...)
}

// Registry builds a registry holding every declared resource, in load order.
// The store's resource namespace is applied before caller options.
func (s *Store) Registry(options ...registry.Option) (*registry.Registry, error) {
	opts := append([]registry.Option{registry.WithNamespace(s.resourceNamespace)}, options...)
	reg := registry.New(opts...)
	for _, res := range s.resources {
		if err := reg.Register(res.Name, res.Model); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
	}
	return reg, nil
}

func (s *Store) add(doc Document) error {
	if doc.AppNamespace != "" {
		if err := s.setNamespace(0, &s.appNamespace, doc.AppNamespace, "app_namespace", doc.Location()); err != nil {
			return err
		}
	}
	if doc.ResourceNamespace != "" {
		if err := s.setNamespace(1, &s.resourceNamespace, doc.ResourceNamespace, "resource_namespace", doc.Location()); err != nil {
			return err
		}
	}

	for _, m := range doc.Models {
		if _, exists := s.modelIndex[m.Type]; exists {
			return fmt.Errorf("schema: duplicate model %q (file %s)", m.Type, doc.Location())
		}
		s.modelIndex[m.Type] = len(s.models)
		s.models = append(s.models, m)
	}
	s.resources = append(s.resources, doc.Resources...)
	return nil
}

func (s *Store) setNamespace(slot int, target *string, value, name, location string) error {
	if s.namespacesSet[slot] && *target != value {
		return fmt.Errorf("schema: conflicting %s %q (file %s)", name, value, location)
	}
	*target = value
	s.namespacesSet[slot] = true
	return nil
}

func (s *Store) validate() error {
	for _, res := range s.resources {
		if _, ok := s.modelIndex[res.Model]; !ok {
			return fmt.Errorf("schema: resource %q references undeclared model %q", res.Name, res.Model)
		}
	}
	return nil
}

func isSchemaFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}
