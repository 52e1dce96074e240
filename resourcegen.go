// Package resourcegen wires declared models, a resource registry and a
// translation catalog into ready-to-use resources. Open is the simplest entry
// point: hand it the schema documents and, optionally, the translation files.
package resourcegen

import (
	"fmt"
	"io/fs"
	"sort"

	"go.uber.org/zap"

	"github.com/goliatone/go-resourcegen/pkg/i18n"
	"github.com/goliatone/go-resourcegen/pkg/registry"
	"github.com/goliatone/go-resourcegen/pkg/resource"
	"github.com/goliatone/go-resourcegen/pkg/schema"
)

// Request aliases resource.Request for callers that only import the root
// package.
type Request = resource.Request

// Option customises Open.
type Option func(*config)

type config struct {
	translations   fs.FS
	translator     i18n.Translator
	fallbackLocale string
	logger         *zap.Logger
	resourceOpts   []resource.Option
}

// WithTranslations loads a translation catalog from fsys (see i18n.LoadFS).
func WithTranslations(fsys fs.FS) Option {
	return func(cfg *config) {
		cfg.translations = fsys
	}
}

// WithTranslator injects a translator, taking precedence over
// WithTranslations.
func WithTranslator(t i18n.Translator) Option {
	return func(cfg *config) {
		cfg.translator = t
	}
}

// WithFallbackLocale sets the fallback locale of the loaded catalog.
func WithFallbackLocale(locale string) Option {
	return func(cfg *config) {
		cfg.fallbackLocale = locale
	}
}

// WithLogger injects the logger shared by the registry and resources.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithResourceOptions appends options applied to every resource.
func WithResourceOptions(options ...resource.Option) Option {
	return func(cfg *config) {
		cfg.resourceOpts = append(cfg.resourceOpts, options...)
	}
}

// Workspace holds the registry and resources built from a schema.
type Workspace struct {
	store      *schema.Store
	registry   *registry.Registry
	translator i18n.Translator
	resources  map[string]*resource.Resource
}

// Open loads the schema documents in schemaFS, builds the registry once and
// creates a resource for each declared resource.
func Open(schemaFS fs.FS, options ...Option) (*Workspace, error) {
	store, err := schema.LoadFS(schemaFS)
	if err != nil {
		return nil, fmt.Errorf("resourcegen: load schema: %w", err)
	}
	return FromStore(store, options...)
}

// FromStore builds a workspace from an already loaded schema store.
func FromStore(store *schema.Store, options ...Option) (*Workspace, error) {
	if store == nil {
		return nil, fmt.Errorf("resourcegen: schema store is required")
	}
	cfg := config{logger: zap.NewNop()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return build(store, cfg)
}

func build(store *schema.Store, cfg config) (*Workspace, error) {
	translator := cfg.translator
	if translator == nil && cfg.translations != nil {
		catalog, err := i18n.LoadFS(cfg.translations, i18n.WithFallbackLocale(cfg.fallbackLocale))
		if err != nil {
			return nil, fmt.Errorf("resourcegen: load translations: %w", err)
		}
		translator = catalog
	}

	reg, err := store.Registry(registry.WithLogger(cfg.logger.Named("registry")))
	if err != nil {
		return nil, fmt.Errorf("resourcegen: build registry: %w", err)
	}

	ws := &Workspace{
		store:      store,
		registry:   reg,
		translator: translator,
		resources:  make(map[string]*resource.Resource),
	}

	base := []resource.Option{
		resource.WithRegistry(reg),
		resource.WithTranslator(translator),
		resource.WithAppNamespace(store.AppNamespace()),
		resource.WithLogger(cfg.logger.Named("resource")),
	}
	for _, decl := range store.Resources() {
		m, _ := store.Model(decl.Model)
		opts := append(append([]resource.Option(nil), base...), cfg.resourceOpts...)
		res, err := resource.New(decl.Name, m, opts...)
		if err != nil {
			return nil, fmt.Errorf("resourcegen: %w", err)
		}
		ws.resources[decl.Name] = res
	}
	return ws, nil
}

// Registry returns the resource registry shared by all resources.
func (w *Workspace) Registry() *registry.Registry {
	return w.registry
}

// Translator returns the configured translator, possibly nil.
func (w *Workspace) Translator() i18n.Translator {
	return w.translator
}

// Store returns the schema store backing the workspace.
func (w *Workspace) Store() *schema.Store {
	return w.store
}

// Resource returns the resource registered under name.
func (w *Workspace) Resource(name string) (*resource.Resource, error) {
	res, ok := w.resources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", registry.ErrUnknownResource, name)
	}
	return res, nil
}

// Resources returns every resource sorted by name.
func (w *Workspace) Resources() []*resource.Resource {
	names := make([]string, 0, len(w.resources))
	for name := range w.resources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*resource.Resource, 0, len(names))
	for _, name := range names {
		out = append(out, w.resources[name])
	}
	return out
}
