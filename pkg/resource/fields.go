package resource

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/model"
)

// Fields returns one sortable field per declared cast, in declaration order.
// Foreign-key attributes become relation fields when possible and fall back to
// the cast dispatch table otherwise.
func (r *Resource) Fields(req Request) []fields.Field {
	casts := r.model.Casts()
	out := make([]fields.Field, 0, len(casts))
	for _, attr := range casts {
		field, ok := r.relationField(req, attr.Name)
		if !ok {
			field = r.commonField(req, attr)
		}
		field.Sortable = true
		out = append(out, field)
	}
	return out
}

func (r *Resource) commonField(req Request, attr model.Attribute) fields.Field {
	key := r.TranslationPrefix() + attr.Name
	return fields.Field{
		Kind:      r.casts.Resolve(attr.Cast),
		Label:     r.translate(req, key),
		LabelKey:  key,
		Attribute: attr.Name,
	}
}

func (r *Resource) relationField(req Request, attribute string) (fields.Field, bool) {
	if _, ok := model.RelationCandidate(attribute); !ok {
		return fields.Field{}, false
	}

	rel, ok := r.model.RelationFor(attribute)
	if !ok {
		r.logger.Debug("no relation declared for foreign key",
			zap.String("resource", r.name),
			zap.String("attribute", attribute),
		)
		return fields.Field{}, false
	}

	target, ok := r.registry.Lookup(rel.Target)
	if !ok {
		r.logger.Debug("relation target has no registered resource",
			zap.String("resource", r.name),
			zap.String("relation", rel.Name),
			zap.String("target", rel.Target),
		)
		return fields.Field{}, false
	}

	kind, ok := r.relations.Resolve(rel.Kind)
	if !ok {
		r.logger.Debug("relation kind does not map to a field",
			zap.String("resource", r.name),
			zap.String("relation", rel.Name),
			zap.String("kind", string(rel.Kind)),
		)
		return fields.Field{}, false
	}

	key := r.TranslationPrefix() + attribute
	return fields.Field{
		Kind:      kind,
		Label:     r.translate(req, key),
		LabelKey:  key,
		Attribute: rel.Name,
		Relationship: &fields.Relationship{
			Kind:       rel.Kind,
			Name:       rel.Name,
			Target:     rel.Target,
			Resource:   target,
			ForeignKey: attribute,
		},
	}, true
}
