package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/registry"
)

// Registry builds a registry from name/model pairs, failing the test on
// error.
func Registry(t *testing.T, pairs ...string) *registry.Registry {
	t.Helper()

	if len(pairs)%2 != 0 {
		t.Fatalf("registry fixture: expected name/model pairs, got %d values", len(pairs))
	}
	reg := registry.New()
	for i := 0; i < len(pairs); i += 2 {
		if err := reg.Register(pairs[i], pairs[i+1]); err != nil {
			t.Fatalf("registry fixture: %v", err)
		}
	}
	return reg
}

// BlogPost returns a small post model relating to App\Models\User.
func BlogPost() model.Model {
	return model.Model{
		Type: `App\Models\Post`,
		Attributes: []model.Attribute{
			{Name: "id", Cast: model.CastInteger},
			{Name: "title", Cast: model.CastString},
			{Name: "author_id", Cast: model.CastInteger},
			{Name: "published", Cast: model.CastBoolean},
			{Name: "published_on", Cast: model.CastDate},
			{Name: "updated_at", Cast: model.CastTimestamp},
		},
		Relations: []model.Relation{
			{Name: "author", Kind: model.RelationBelongsTo, Target: `App\Models\User`},
		},
	}
}

// MustLoadJSON decodes a JSON golden file into out.
func MustLoadJSON(t *testing.T, path string, out any) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("load golden: %v", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
}

// WriteGolden writes arbitrary data to a golden file when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}
