package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry maps output format names (html, json) to the renderer the CLI
// render command and library callers select with --renderer.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// NewDefaultRegistry holds the html and json renderers. The options configure
// the html renderer, e.g. WithTheme.
func NewDefaultRegistry(options ...HTMLOption) (*Registry, error) {
	html, err := NewHTML(options...)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	reg.MustRegister(html)
	reg.MustRegister(JSON{})
	return reg, nil
}

// Register keys renderer by Name(). A name can only be taken once.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := strings.TrimSpace(renderer.Name())
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get looks up a renderer. The error names the registered formats so a bad
// --renderer value is easy to correct.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.renderers[strings.TrimSpace(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found (available: %s)", name, strings.Join(r.List(), ", "))
	}
	return renderer, nil
}

// List returns the registered format names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
