package render

import (
	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/resource"
	"github.com/goliatone/go-resourcegen/pkg/widgets"
)

// View is the render-ready projection of a resource.
type View struct {
	Resource   string      `json:"resource"`
	Label      string      `json:"label"`
	Searchable []string    `json:"searchable"`
	Fields     []ViewField `json:"fields"`
	Rows       []Row       `json:"rows,omitempty"`
}

// ViewField decorates a field with the input name and widget to render.
type ViewField struct {
	fields.Field
	Input  string `json:"input"`
	Widget string `json:"widget"`
}

// Row is one record rendered against the view's fields.
type Row struct {
	Title string   `json:"title"`
	Cells []string `json:"cells"`
}

// NewView projects res for the request. Widgets resolve through reg (the
// built-in registry when nil). Records become rows in field order.
func NewView(res *resource.Resource, req resource.Request, reg *widgets.Registry, records ...model.Record) View {
	if reg == nil {
		reg = widgets.NewRegistry()
	}

	decorated := reg.Decorate(res.Fields(req))
	view := View{
		Resource:   res.Name(),
		Label:      res.Label(req),
		Searchable: res.SearchableColumns(),
		Fields:     make([]ViewField, 0, len(decorated)),
	}
	for _, field := range decorated {
		view.Fields = append(view.Fields, ViewField{
			Field:  field,
			Input:  inputName(field),
			Widget: field.Metadata["widget"],
		})
	}

	for _, record := range records {
		row := Row{Title: res.Title(record), Cells: make([]string, 0, len(view.Fields))}
		for _, field := range view.Fields {
			row.Cells = append(row.Cells, record.String(field.Input))
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// inputName is the record key a field reads and writes: the foreign key for
// relation fields, the attribute otherwise.
func inputName(field fields.Field) string {
	if field.IsRelation() && field.Relationship.ForeignKey != "" {
		return field.Relationship.ForeignKey
	}
	return field.Attribute
}
