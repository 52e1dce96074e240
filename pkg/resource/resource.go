// Package resource derives admin-panel resource metadata from a declared
// model: one sortable field per attribute cast, belongs-to link fields for
// foreign keys whose related model has a registered resource, a record title,
// a collection label and the searchable columns.
package resource

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/i18n"
	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/registry"
)

// CollectionLabelKey is the translation key, under the model prefix, holding
// the plural label of a resource.
const CollectionLabelKey = "model_title_many"

var searchableCandidates = []string{"id", "name", "title"}

// Request carries per-call inputs. Locale selects the translation locale.
type Request struct {
	Locale string
}

// Resource pairs an admin resource name with its backing model.
type Resource struct {
	name         string
	model        model.Model
	registry     *registry.Registry
	translator   i18n.Translator
	onMissing    i18n.MissingTranslationHandler
	appNamespace string
	casts        fields.CastTable
	relations    fields.RelationTable
	logger       *zap.Logger
}

// New builds a Resource for the model. The model must pass validation.
func New(name string, m model.Model, options ...Option) (*Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("resource: name is required")
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("resource %s: %w", name, err)
	}

	r := &Resource{
		name:         name,
		model:        m,
		onMissing:    i18n.ReturnKey,
		appNamespace: model.DefaultAppNamespace,
		casts:        fields.DefaultCastTable(),
		relations:    fields.DefaultRelationTable(),
		logger:       zap.NewNop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Name returns the resource name.
func (r *Resource) Name() string {
	return r.name
}

// Model returns the backing model declaration.
func (r *Resource) Model() model.Model {
	return r.model
}

// TranslationPrefix returns the key prefix used for labels, e.g.
// "models/post.".
func (r *Resource) TranslationPrefix() string {
	return model.TranslationPrefix(r.model.Type, r.appNamespace)
}

// Title returns the display title of a record: the "name" value when the
// model casts "name", otherwise the "title" value.
func (r *Resource) Title(record model.Record) string {
	field := "title"
	if r.model.HasCast("name") {
		field = "name"
	}
	return record.String(field)
}

// SearchableColumns returns the subset of id, name and title the model casts,
// in that order.
func (r *Resource) SearchableColumns() []string {
	columns := make([]string, 0, len(searchableCandidates))
	for _, candidate := range searchableCandidates {
		if r.model.HasCast(candidate) {
			columns = append(columns, candidate)
		}
	}
	return columns
}

// Label returns the translated collection label.
func (r *Resource) Label(req Request) string {
	return r.translate(req, r.TranslationPrefix()+CollectionLabelKey)
}

func (r *Resource) translate(req Request, key string) string {
	return i18n.Resolve(r.translator, req.Locale, key, r.onMissing)
}
