package openapi

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/resource"
)

const (
	relationshipExtensionKey = "x-relationships"
	resourceExtensionKey     = "x-resource"
	labelKeyExtensionKey     = "x-label-key"

	componentPrefix = "#/components/schemas/"
	openAPIVersion  = "3.0.3"
)

var componentNameReplacer = strings.NewReplacer(`\`, ".", "/", ".", " ", "_")

// Info describes the generated document.
type Info struct {
	Title   string
	Version string
}

// ComponentName converts a resource name into a valid component key
// (`App\Nova\Post` -> "App.Nova.Post").
func ComponentName(resourceName string) string {
	return componentNameReplacer.Replace(strings.Trim(resourceName, `\`))
}

// SchemaFor returns the object schema describing res.
func SchemaFor(res *resource.Resource, req resource.Request) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.Title = res.Label(req)
	schema.Extensions = map[string]any{
		resourceExtensionKey: map[string]any{
			"name":       res.Name(),
			"model":      res.Model().Type,
			"searchable": res.SearchableColumns(),
		},
	}

	for _, field := range res.Fields(req) {
		name, property := propertyFor(field)
		schema.WithProperty(name, property)
	}
	return schema
}

// Document builds and validates an OpenAPI document holding one component
// schema per resource.
func Document(ctx context.Context, resources []*resource.Resource, req resource.Request, info Info) (*openapi3.T, error) {
	if info.Title == "" {
		info.Title = "Resources"
	}
	if info.Version == "" {
		info.Version = "1.0.0"
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:   info.Title,
			Version: info.Version,
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: make(openapi3.Schemas, len(resources)),
		},
	}

	for _, res := range resources {
		if res == nil {
			continue
		}
		name := ComponentName(res.Name())
		if _, exists := doc.Components.Schemas[name]; exists {
			return nil, fmt.Errorf("openapi: duplicate component %q", name)
		}
		doc.Components.Schemas[name] = openapi3.NewSchemaRef("", SchemaFor(res, req))
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

func propertyFor(field fields.Field) (string, *openapi3.Schema) {
	var schema *openapi3.Schema
	name := field.Attribute

	switch field.Kind {
	case fields.KindBoolean:
		schema = openapi3.NewBoolSchema()
	case fields.KindDate:
		schema = openapi3.NewStringSchema().WithFormat("date")
	case fields.KindDateTime:
		schema = openapi3.NewDateTimeSchema()
	case fields.KindNumber:
		schema = openapi3.NewFloat64Schema()
	case fields.KindBelongsTo:
		schema = openapi3.NewIntegerSchema()
		if rel := field.Relationship; rel != nil {
			name = rel.ForeignKey
			schema.Extensions = map[string]any{
				relationshipExtensionKey: map[string]any{
					"type":        string(rel.Kind),
					"target":      componentPrefix + ComponentName(rel.Resource),
					"foreignKey":  rel.ForeignKey,
					"cardinality": cardinality(rel.Kind),
				},
			}
		}
	default:
		schema = openapi3.NewStringSchema()
	}

	schema.Title = field.Label
	if field.LabelKey != "" {
		if schema.Extensions == nil {
			schema.Extensions = make(map[string]any)
		}
		schema.Extensions[labelKeyExtensionKey] = field.LabelKey
	}
	return name, schema
}

func cardinality(kind model.RelationKind) string {
	switch kind {
	case model.RelationHasMany, model.RelationBelongsToMany:
		return "many"
	default:
		return "one"
	}
}
