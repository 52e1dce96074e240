package resource

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/i18n"
	"github.com/goliatone/go-resourcegen/pkg/registry"
)

// Option customises a Resource.
type Option func(*Resource)

// WithRegistry injects the registry used to resolve relation targets. Without
// one, relation fields are never produced.
func WithRegistry(reg *registry.Registry) Option {
	return func(r *Resource) {
		r.registry = reg
	}
}

// WithTranslator injects the translator used for labels.
func WithTranslator(t i18n.Translator) Option {
	return func(r *Resource) {
		r.translator = t
	}
}

// WithMissingTranslation overrides the handler used for unresolved keys.
func WithMissingTranslation(handler i18n.MissingTranslationHandler) Option {
	return func(r *Resource) {
		if handler != nil {
			r.onMissing = handler
		}
	}
}

// WithAppNamespace overrides the namespace stripped from the model type when
// deriving the translation prefix.
func WithAppNamespace(namespace string) Option {
	return func(r *Resource) {
		r.appNamespace = namespace
	}
}

// WithCastTable overrides entries of the default cast dispatch table.
func WithCastTable(overrides fields.CastTable) Option {
	return func(r *Resource) {
		r.casts = r.casts.With(overrides)
	}
}

// WithRelationTable replaces the relation dispatch table.
func WithRelationTable(table fields.RelationTable) Option {
	return func(r *Resource) {
		if table != nil {
			r.relations = table
		}
	}
}

// WithLogger injects a logger for synthesis diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resource) {
		if logger != nil {
			r.logger = logger
		}
	}
}
