package model

import (
	"fmt"
	"strings"
)

// CastType describes how a stored attribute is interpreted.
type CastType string

const (
	CastBool      CastType = "bool"
	CastBoolean   CastType = "boolean"
	CastDate      CastType = "date"
	CastDateTime  CastType = "datetime"
	CastTimestamp CastType = "timestamp"
	CastInt       CastType = "int"
	CastInteger   CastType = "integer"
	CastDouble    CastType = "double"
	CastFloat     CastType = "float"
	CastReal      CastType = "real"
	CastString    CastType = "string"
)

// RelationKind enumerates the supported associations between models.
type RelationKind string

const (
	RelationBelongsTo     RelationKind = "belongsTo"
	RelationHasOne        RelationKind = "hasOne"
	RelationHasMany       RelationKind = "hasMany"
	RelationBelongsToMany RelationKind = "belongsToMany"
)

// ParseRelationKind normalises raw relation names ("belongs_to", "BelongsTo",
// "belongs-to") into a RelationKind.
func ParseRelationKind(raw string) (RelationKind, bool) {
	normalised := strings.ToLower(strings.TrimSpace(raw))
	normalised = strings.NewReplacer("_", "", "-", "", " ", "").Replace(normalised)
	switch normalised {
	case "belongsto":
		return RelationBelongsTo, true
	case "hasone":
		return RelationHasOne, true
	case "hasmany":
		return RelationHasMany, true
	case "belongstomany":
		return RelationBelongsToMany, true
	default:
		return "", false
	}
}

// Attribute pairs an attribute name with its declared cast.
type Attribute struct {
	Name string   `json:"name" yaml:"name"`
	Cast CastType `json:"cast" yaml:"cast"`
}

// Relation is a declared association from one model to another. Target holds
// the related model type. ForeignKey pins the local attribute backing the
// relation; when empty any attribute whose prefix before "_id" is the relation
// name matches.
type Relation struct {
	Name       string       `json:"name"`
	Kind       RelationKind `json:"kind"`
	Target     string       `json:"target"`
	ForeignKey string       `json:"foreignKey,omitempty"`
}

// LocalKey returns the declared ForeignKey, or the conventional "<name>_id".
func (r Relation) LocalKey() string {
	if r.ForeignKey != "" {
		return r.ForeignKey
	}
	return r.Name + foreignKeyMarker
}

// Model describes one backing record type.
type Model struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
	Relations  []Relation  `json:"relations,omitempty"`
}

// Casts returns a copy of the declared attribute casts in declaration order.
func (m Model) Casts() []Attribute {
	if len(m.Attributes) == 0 {
		return nil
	}
	out := make([]Attribute, len(m.Attributes))
	copy(out, m.Attributes)
	return out
}

// Cast returns the cast declared for the attribute.
func (m Model) Cast(name string) (CastType, bool) {
	for _, attr := range m.Attributes {
		if attr.Name == name {
			return attr.Cast, true
		}
	}
	return "", false
}

// HasCast reports whether the model declares a cast for the attribute.
func (m Model) HasCast(name string) bool {
	_, ok := m.Cast(name)
	return ok
}

// Relation returns the relation declared under name.
func (m Model) Relation(name string) (Relation, bool) {
	if name == "" {
		return Relation{}, false
	}
	for _, rel := range m.Relations {
		if rel.Name == name {
			return rel, true
		}
	}
	return Relation{}, false
}

// Validate checks the model declaration for structural mistakes.
func (m Model) Validate() error {
	if strings.TrimSpace(m.Type) == "" {
		return fmt.Errorf("model: type is required")
	}

	seen := make(map[string]struct{}, len(m.Attributes))
	for idx, attr := range m.Attributes {
		if strings.TrimSpace(attr.Name) == "" {
			return fmt.Errorf("model %s: attribute %d has an empty name", m.Type, idx)
		}
		if _, exists := seen[attr.Name]; exists {
			return fmt.Errorf("model %s: duplicate attribute %q", m.Type, attr.Name)
		}
		seen[attr.Name] = struct{}{}
	}

	relations := make(map[string]struct{}, len(m.Relations))
	for idx, rel := range m.Relations {
		if strings.TrimSpace(rel.Name) == "" {
			return fmt.Errorf("model %s: relation %d has an empty name", m.Type, idx)
		}
		if _, exists := relations[rel.Name]; exists {
			return fmt.Errorf("model %s: duplicate relation %q", m.Type, rel.Name)
		}
		relations[rel.Name] = struct{}{}
		if _, ok := ParseRelationKind(string(rel.Kind)); !ok {
			return fmt.Errorf("model %s: relation %q has unknown kind %q", m.Type, rel.Name, rel.Kind)
		}
		if strings.TrimSpace(rel.Target) == "" {
			return fmt.Errorf("model %s: relation %q has no target", m.Type, rel.Name)
		}
	}
	return nil
}
