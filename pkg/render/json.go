package render

import (
	"context"
	"encoding/json"
	"fmt"
)

// JSON renders views as indented JSON.
type JSON struct{}

func (JSON) Name() string {
	return "json"
}

func (JSON) ContentType() string {
	return "application/json"
}

func (JSON) Render(_ context.Context, view View) ([]byte, error) {
	payload, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json renderer: marshal view: %w", err)
	}
	return append(payload, '\n'), nil
}
