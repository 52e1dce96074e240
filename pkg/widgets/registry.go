// Package widgets picks the input widget used to render each resource field.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-resourcegen/pkg/fields"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetToggle         = "toggle"
	WidgetSelect         = "select"
	WidgetDatePicker     = "date-picker"
	WidgetDateTimePicker = "datetime-picker"
	WidgetNumber         = "number"
	WidgetText           = "text"
)

const widgetMetadataKey = "widget"

// Matcher decides whether a widget renderer should handle the supplied field.
type Matcher func(field fields.Field) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for fields based on explicit metadata or
// registered matchers. Higher priority wins; ties fall back to registration
// order. An empty registry never resolves a widget.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in widget matchers
// registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a field. An explicit
// Metadata["widget"] is honoured before matcher evaluation.
func (r *Registry) Resolve(field fields.Field) (string, bool) {
	if explicit := strings.TrimSpace(field.Metadata[widgetMetadataKey]); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(field) {
			return entry.name, true
		}
	}
	return "", false
}

// Decorate returns a copy of list with Metadata["widget"] set on every field
// a widget resolves for. Existing values are preserved.
func (r *Registry) Decorate(list []fields.Field) []fields.Field {
	if len(list) == 0 {
		return list
	}
	decorated := make([]fields.Field, len(list))
	for idx, field := range list {
		if widget, ok := r.Resolve(field); ok && widget != "" {
			metadata := make(map[string]string, len(field.Metadata)+1)
			for key, value := range field.Metadata {
				metadata[key] = value
			}
			if metadata[widgetMetadataKey] == "" {
				metadata[widgetMetadataKey] = widget
			}
			field.Metadata = metadata
		}
		decorated[idx] = field
	}
	return decorated
}

func kindMatcher(kind fields.Kind) Matcher {
	return func(field fields.Field) bool {
		return field.Kind == kind
	}
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetSelect, 90, fields.Field.IsRelation)
	r.Register(WidgetToggle, 80, kindMatcher(fields.KindBoolean))
	r.Register(WidgetDateTimePicker, 70, kindMatcher(fields.KindDateTime))
	r.Register(WidgetDatePicker, 60, kindMatcher(fields.KindDate))
	r.Register(WidgetNumber, 50, kindMatcher(fields.KindNumber))
	r.Register(WidgetText, 0, func(fields.Field) bool { return true })
}
