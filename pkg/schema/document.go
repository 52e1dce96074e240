package schema

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-resourcegen/pkg/model"
)

// Document is one parsed schema file.
type Document struct {
	source            Source
	AppNamespace      string
	ResourceNamespace string
	Models            []model.Model
	Resources         []ResourceDecl
}

// ResourceDecl declares an admin resource backed by a model type.
type ResourceDecl struct {
	Name  string `yaml:"name" json:"name"`
	Model string `yaml:"model" json:"model"`
}

type rawDocument struct {
	AppNamespace      *string        `yaml:"app_namespace"`
	ResourceNamespace *string        `yaml:"resource_namespace"`
	Models            []rawModel     `yaml:"models"`
	Resources         []ResourceDecl `yaml:"resources"`
}

type rawModel struct {
	Type       string            `yaml:"type"`
	Casts      yaml.Node         `yaml:"casts"`
	Attributes []model.Attribute `yaml:"attributes"`
	Relations  []rawRelation     `yaml:"relations"`
}

type rawRelation struct {
	Name       string `yaml:"name"`
	Kind       string `yaml:"kind"`
	Target     string `yaml:"target"`
	ForeignKey string `yaml:"foreign_key"`
}

// Parse decodes a YAML or JSON schema document. Cast mappings keep the order
// in which they are written. Cast names are matched exactly, so "Boolean" is
// not "boolean" whichever form declares it.
func Parse(src Source, raw []byte) (Document, error) {
	if src == (Source{}) {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, fmt.Errorf("schema: %s: document is empty", src.Location())
	}

	var doc rawDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("schema: %s: parse: %w", src.Location(), err)
	}

	out := Document{source: src}
	if doc.AppNamespace != nil {
		out.AppNamespace = *doc.AppNamespace
	}
	if doc.ResourceNamespace != nil {
		out.ResourceNamespace = *doc.ResourceNamespace
	}

	for idx, rm := range doc.Models {
		m, err := rm.toModel()
		if err != nil {
			return Document{}, fmt.Errorf("schema: %s: model %d: %w", src.Location(), idx, err)
		}
		if err := m.Validate(); err != nil {
			return Document{}, fmt.Errorf("schema: %s: %w", src.Location(), err)
		}
		out.Models = append(out.Models, m)
	}

	for idx, res := range doc.Resources {
		res.Name = strings.TrimSpace(res.Name)
		res.Model = strings.TrimSpace(res.Model)
		if res.Name == "" || res.Model == "" {
			return Document{}, fmt.Errorf("schema: %s: resource %d requires name and model", src.Location(), idx)
		}
		out.Resources = append(out.Resources, res)
	}
	return out, nil
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == (Source{}) {
		return ""
	}
	return d.source.Location()
}

func (rm rawModel) toModel() (model.Model, error) {
	m := model.Model{Type: strings.TrimSpace(rm.Type)}

	casts, err := decodeCasts(&rm.Casts)
	if err != nil {
		return model.Model{}, err
	}
	m.Attributes = casts
	for _, attr := range rm.Attributes {
		m.Attributes = append(m.Attributes, model.Attribute{
			Name: strings.TrimSpace(attr.Name),
			Cast: model.CastType(strings.TrimSpace(string(attr.Cast))),
		})
	}

	for _, rel := range rm.Relations {
		kind, ok := model.ParseRelationKind(rel.Kind)
		if !ok {
			return model.Model{}, fmt.Errorf("relation %q: unknown kind %q", rel.Name, rel.Kind)
		}
		m.Relations = append(m.Relations, model.Relation{
			Name:       strings.TrimSpace(rel.Name),
			Kind:       kind,
			Target:     strings.TrimSpace(rel.Target),
			ForeignKey: strings.TrimSpace(rel.ForeignKey),
		})
	}
	return m, nil
}

func decodeCasts(node *yaml.Node) ([]model.Attribute, error) {
	if node == nil || node.Kind == 0 {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("casts must be a mapping (line %d)", node.Line)
	}

	out := make([]model.Attribute, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("cast for %q must be a scalar (line %d)", key.Value, value.Line)
		}
		out = append(out, model.Attribute{
			Name: strings.TrimSpace(key.Value),
			Cast: model.CastType(strings.TrimSpace(value.Value)),
		})
	}
	return out, nil
}
