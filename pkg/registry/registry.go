// Package registry maps backing model types to the admin resources declaring
// them. A Registry is built once at start-up and injected into resources.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultNamespace filters the resources considered during lookups.
const DefaultNamespace = `App\Nova\`

var (
	// ErrDuplicateResource is returned when a resource name is registered twice.
	ErrDuplicateResource = errors.New("registry: resource already registered")
	// ErrUnknownResource is returned when a resource name is not registered.
	ErrUnknownResource = errors.New("registry: resource not registered")
)

// Entry pairs a resource name with its backing model type.
type Entry struct {
	Name  string `json:"name"`
	Model string `json:"model"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithNamespace overrides the resource namespace prefix. An empty prefix
// disables filtering.
func WithNamespace(prefix string) Option {
	return func(r *Registry) {
		r.namespace = prefix
	}
}

// WithLogger injects a logger used to report ambiguous registrations.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry stores resource entries in registration order. Lookups return the
// first entry inside the namespace whose model matches.
type Registry struct {
	mu        sync.RWMutex
	entries   []Entry
	byName    map[string]int
	namespace string
	logger    *zap.Logger
}

// New creates an empty registry.
func New(options ...Option) *Registry {
	r := &Registry{
		byName:    make(map[string]int),
		namespace: DefaultNamespace,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Namespace returns the prefix used to filter lookups.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Register adds a resource backed by modelType.
func (r *Registry) Register(name, modelType string) error {
	name = strings.TrimSpace(name)
	modelType = strings.TrimSpace(modelType)
	if name == "" {
		return fmt.Errorf("registry: resource name is required")
	}
	if modelType == "" {
		return fmt.Errorf("registry: model type is required for resource %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateResource, name)
	}

	if existing := r.matchesLocked(modelType); len(existing) > 0 && r.inNamespace(name) {
		r.logger.Warn("model already mapped to a resource, first registration wins",
			zap.String("model", modelType),
			zap.String("resource", name),
			zap.Strings("existing", existing),
		)
	}

	r.byName[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Model: modelType})
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name, modelType string) {
	if err := r.Register(name, modelType); err != nil {
		panic(err)
	}
}

// Lookup returns the first resource in the namespace backed by modelType.
func (r *Registry) Lookup(modelType string) (string, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if !r.inNamespace(entry.Name) {
			continue
		}
		if entry.Model == modelType {
			return entry.Name, true
		}
	}
	return "", false
}

// Matches returns every resource in the namespace backed by modelType, in
// registration order. More than one result means Lookup is ambiguous.
func (r *Registry) Matches(modelType string) []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matchesLocked(modelType)
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownResource, name)
	}
	return r.entries[idx], nil
}

// List returns a sorted list of resource names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.Name)
	}
	sort.Strings(names)
	return names
}

// Entries returns the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Entry(nil), r.entries...)
}

// Len reports the number of registered resources.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) matchesLocked(modelType string) []string {
	var out []string
	for _, entry := range r.entries {
		if r.inNamespace(entry.Name) && entry.Model == modelType {
			out = append(out, entry.Name)
		}
	}
	return out
}

func (r *Registry) inNamespace(name string) bool {
	if r.namespace == "" {
		return true
	}
	return strings.Contains(name, r.namespace)
}
