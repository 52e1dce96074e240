package model

import "strings"

const foreignKeyMarker = "_id"

// RelationCandidate returns the relation name implied by a foreign-key shaped
// attribute: the attribute cut at the first "_id". Attributes without the
// marker yield false.
func RelationCandidate(attribute string) (string, bool) {
	idx := strings.Index(attribute, foreignKeyMarker)
	if idx < 0 {
		return "", false
	}
	return attribute[:idx], true
}

// RelationFor resolves the relation backing a foreign-key shaped attribute. A
// relation declaring the attribute as its ForeignKey wins over the relation
// named after the attribute prefix. A named relation whose declared ForeignKey
// is another attribute does not match.
func (m Model) RelationFor(attribute string) (Relation, bool) {
	candidate, ok := RelationCandidate(attribute)
	if !ok {
		return Relation{}, false
	}
	for _, rel := range m.Relations {
		if rel.ForeignKey != "" && rel.LocalKey() == attribute {
			return rel, true
		}
	}

	rel, ok := m.Relation(candidate)
	if !ok || (rel.ForeignKey != "" && rel.LocalKey() != attribute) {
		return Relation{}, false
	}
	return rel, true
}
