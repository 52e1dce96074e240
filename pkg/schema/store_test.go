package schema

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resourcegen/pkg/model"
)

const blogSchema = `
app_namespace: 'App\'
resource_namespace: 'App\Nova\'
models:
  - type: 'App\Models\Post'
    casts:
      title: string
      id: integer
      author_id: integer
      published: boolean
    relations:
      - name: author
        kind: belongs_to
        target: 'App\Models\User'
resources:
  - name: 'App\Nova\Post'
    model: 'App\Models\Post'
`

const userSchema = `{
  "models": [
    {"type": "App\\Models\\User", "attributes": [{"name": "id", "cast": "integer"}, {"name": "name", "cast": "string"}]}
  ],
  "resources": [{"name": "App\\Nova\\User", "model": "App\\Models\\User"}]
}`

func TestLoadFSMergesDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"blog.yaml":  {Data: []byte(blogSchema)},
		"users.json": {Data: []byte(userSchema)},
		"notes.txt":  {Data: []byte("ignored")},
	}

	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	post, ok := store.Model(`App\Models\Post`)
	if !ok {
		t.Fatalf("expected post model")
	}
	want := []model.Attribute{
		{Name: "title", Cast: model.CastString},
		{Name: "id", Cast: model.CastInteger},
		{Name: "author_id", Cast: model.CastInteger},
		{Name: "published", Cast: model.CastBoolean},
	}
	if diff := cmp.Diff(want, post.Attributes); diff != "" {
		t.Fatalf("casts must keep document order (-want +got):\n%s", diff)
	}
	if post.Relations[0].Kind != model.RelationBelongsTo {
		t.Fatalf("expected normalised relation kind, got %q", post.Relations[0].Kind)
	}

	if _, ok := store.Model(`App\Models\User`); !ok {
		t.Fatalf("expected user model from JSON document")
	}
	if len(store.Models()) != 2 || len(store.Resources()) != 2 {
		t.Fatalf("unexpected counts: %d models, %d resources", len(store.Models()), len(store.Resources()))
	}
	if store.AppNamespace() != `App\` || store.ResourceNamespace() != `App\Nova\` {
		t.Fatalf("unexpected namespaces %q %q", store.AppNamespace(), store.ResourceNamespace())
	}

	reg, err := store.Registry()
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if name, ok := reg.Lookup(`App\Models\User`); !ok || name != `App\Nova\User` {
		t.Fatalf("expected user resource, got %q (ok=%v)", name, ok)
	}
}

func TestLoadFSErrors(t *testing.T) {
	cases := map[string]fstest.MapFS{
		"duplicate model": {
			"a.yaml": {Data: []byte("models:\n  - type: M\n")},
			"b.yaml": {Data: []byte("models:\n  - type: M\n")},
		},
		"undeclared model": {
			"a.yaml": {Data: []byte("resources:\n  - name: 'App\\Nova\\X'\n    model: X\n")},
		},
		"casts not mapping": {
			"a.yaml": {Data: []byte("models:\n  - type: M\n    casts: [id]\n")},
		},
		"unknown relation kind": {
			"a.yaml": {Data: []byte("models:\n  - type: M\n    relations:\n      - {name: r, kind: morphTo, target: X}\n")},
		},
		"conflicting namespace": {
			"a.yaml": {Data: []byte("app_namespace: 'App\\'\n")},
			"b.yaml": {Data: []byte("app_namespace: 'Acme\\'\n")},
		},
		"invalid model": {
			"a.yaml": {Data: []byte("models:\n  - type: M\n    attributes:\n      - {name: id, cast: integer}\n      - {name: id, cast: string}\n")},
		},
		"resource without model": {
			"a.yaml": {Data: []byte("resources:\n  - name: X\n")},
		},
		"empty document": {
			"a.yaml": {Data: []byte("")},
		},
	}

	for name, fsys := range cases {
		if _, err := LoadFS(fsys); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFSNil(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(store.Models()) != 0 {
		t.Fatalf("expected empty store")
	}
	if store.ResourceNamespace() != `App\Nova\` {
		t.Fatalf("expected default resource namespace, got %q", store.ResourceNamespace())
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yaml")
	payload := strings.Replace(blogSchema, "resources:", "  - type: 'App\\Models\\User'\n    casts: {id: integer}\nresources:", 1)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	store, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if _, ok := store.Model(`App\Models\User`); !ok {
		t.Fatalf("expected user model")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestParseKeepsSource(t *testing.T) {
	doc, err := Parse(SourceFromFS("blog.yaml"), []byte(blogSchema))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if doc.Location() != "blog.yaml" || doc.Source().Kind() != SourceKindFS {
		t.Fatalf("unexpected source %q", doc.Location())
	}
	if _, err := Parse(Source{}, []byte(blogSchema)); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestParseKeepsCastsVerbatim(t *testing.T) {
	raw := `
models:
  - type: 'App\Models\Flag'
    casts:
      flag: ' Boolean '
    attributes:
      - name: ' other '
        cast: Boolean
      - name: enabled
        cast: bool
`
	doc, err := Parse(SourceFromFS("flags.yaml"), []byte(raw))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []model.Attribute{
		{Name: "flag", Cast: "Boolean"},
		{Name: "other", Cast: "Boolean"},
		{Name: "enabled", Cast: model.CastBool},
	}
	if diff := cmp.Diff(want, doc.Models[0].Attributes); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceIdentity(t *testing.T) {
	file := SourceFromFile("schemas/../blog.yaml")
	if file.Kind() != SourceKindFile || file.Location() != "blog.yaml" || file.String() != "file:blog.yaml" {
		t.Fatalf("unexpected file source %#v", file)
	}
	entry := SourceFromFS("nested/blog.yaml")
	if entry.Kind() != SourceKindFS || entry.String() != "fs:nested/blog.yaml" {
		t.Fatalf("unexpected fs source %#v", entry)
	}
}
