package fields

import "github.com/goliatone/go-resourcegen/pkg/model"

// DefaultKind is used for casts missing from a CastTable.
const DefaultKind = KindText

// CastTable maps attribute casts onto field kinds.
type CastTable map[model.CastType]Kind

// DefaultCastTable returns the built-in cast dispatch table.
func DefaultCastTable() CastTable {
	return CastTable{
		model.CastBool:      KindBoolean,
		model.CastBoolean:   KindBoolean,
		model.CastDate:      KindDate,
		model.CastDateTime:  KindDateTime,
		model.CastTimestamp: KindDateTime,
		model.CastDouble:    KindNumber,
		model.CastFloat:     KindNumber,
		model.CastReal:      KindNumber,
		model.CastInt:       KindNumber,
		model.CastInteger:   KindNumber,
		model.CastString:    KindText,
	}
}

// Resolve returns the kind for cast, falling back to DefaultKind.
func (t CastTable) Resolve(cast model.CastType) Kind {
	if kind, ok := t[cast]; ok && kind != "" {
		return kind
	}
	return DefaultKind
}

// With returns a copy of the table with overrides applied.
func (t CastTable) With(overrides CastTable) CastTable {
	out := make(CastTable, len(t)+len(overrides))
	for cast, kind := range t {
		out[cast] = kind
	}
	for cast, kind := range overrides {
		out[cast] = kind
	}
	return out
}

// RelationTable maps relation kinds onto field kinds. Kinds missing from the
// table never produce a relation field.
type RelationTable map[model.RelationKind]Kind

// DefaultRelationTable only converts belongs-to relations.
func DefaultRelationTable() RelationTable {
	return RelationTable{
		model.RelationBelongsTo: KindBelongsTo,
	}
}

// Resolve returns the field kind registered for the relation kind.
func (t RelationTable) Resolve(kind model.RelationKind) (Kind, bool) {
	fieldKind, ok := t[kind]
	if !ok || fieldKind == "" {
		return "", false
	}
	return fieldKind, true
}
