// Package validation checks records against the schema exported for a
// resource, so previews and imports can flag values that do not fit the
// declared casts.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/openapi"
	"github.com/goliatone/go-resourcegen/pkg/resource"
)

// Issue represents a validation error with optional location metadata.
type Issue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating a record.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Record validates record against the schema derived from res. Nil values are
// treated as unset. The error return is reserved for records that cannot be
// encoded at all.
func Record(res *resource.Resource, req resource.Request, record model.Record) (Result, error) {
	if res == nil {
		return Result{}, fmt.Errorf("validation: resource is required")
	}

	value, err := normalize(record)
	if err != nil {
		return Result{}, err
	}

	schema := openapi.SchemaFor(res, req)
	result := Result{Valid: true}
	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		result.Issues = collect(err, nil)
		sort.SliceStable(result.Issues, func(i, j int) bool {
			return result.Issues[i].Path < result.Issues[j].Path
		})
		result.Valid = len(result.Issues) == 0
	}
	return result, nil
}

// normalize round-trips the record through JSON so numeric and time values
// reach the validator in their wire form.
func normalize(record model.Record) (map[string]any, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("validation: encode record: %w", err)
	}
	out := make(map[string]any, len(record))
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("validation: decode record: %w", err)
	}
	for key, value := range out {
		if value == nil {
			delete(out, key)
		}
	}
	return out, nil
}

func collect(err error, issues []Issue) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		for _, item := range multi {
			issues = collect(item, issues)
		}
		return issues
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		pointer := schemaErr.JSONPointer()
		return append(issues, Issue{
			Path:    pointerString(pointer),
			Field:   strings.Join(pointer, "."),
			Message: strings.TrimSpace(schemaErr.Reason),
		})
	}
	return append(issues, Issue{Message: strings.TrimSpace(err.Error())})
}

func pointerString(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		segment = strings.ReplaceAll(segment, "~", "~0")
		escaped[i] = strings.ReplaceAll(segment, "/", "~1")
	}
	return "/" + strings.Join(escaped, "/")
}
