// Package fields defines the UI field descriptors produced for a resource and
// the dispatch tables that map model casts and relation kinds onto them.
package fields

import "github.com/goliatone/go-resourcegen/pkg/model"

// Kind identifies the UI element a field renders as.
type Kind string

const (
	KindBoolean   Kind = "boolean"
	KindDate      Kind = "date"
	KindDateTime  Kind = "datetime"
	KindNumber    Kind = "number"
	KindText      Kind = "text"
	KindBelongsTo Kind = "belongsTo"
)

// Field describes one UI element of a resource. LabelKey keeps the translation
// key the Label was resolved from so renderers can re-localise.
type Field struct {
	Kind         Kind              `json:"kind"`
	Label        string            `json:"label"`
	LabelKey     string            `json:"labelKey,omitempty"`
	Attribute    string            `json:"attribute"`
	Sortable     bool              `json:"sortable"`
	Relationship *Relationship     `json:"relationship,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Relationship links a field to the resource managing the related model.
// Name is the relation accessor, Target the related model type, Resource the
// registered resource name and ForeignKey the local attribute.
type Relationship struct {
	Kind       model.RelationKind `json:"kind"`
	Name       string             `json:"name"`
	Target     string             `json:"target"`
	Resource   string             `json:"resource"`
	ForeignKey string             `json:"foreignKey"`
}

// IsRelation reports whether the field links to another resource.
func (f Field) IsRelation() bool {
	return f.Relationship != nil
}
