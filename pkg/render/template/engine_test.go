package template

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"
)

func TestEngineRenderTemplate(t *testing.T) {
	fsys := fstest.MapFS{
		"greeting.tpl": {Data: []byte("Hello {{ name }} from {{ site }}")},
	}
	engine, err := New(WithFS(fsys), WithGlobalData(map[string]any{"site": "admin"}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	var buf bytes.Buffer
	out, err := engine.RenderTemplate("greeting", map[string]any{"name": "<Ada>"}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello &lt;Ada&gt; from admin" {
		t.Fatalf("unexpected output %q", out)
	}
	if buf.String() != out {
		t.Fatalf("expected writer to receive output, got %q", buf.String())
	}
}

func TestEngineRenderString(t *testing.T) {
	engine, err := New(WithFS(fstest.MapFS{}), WithExtension("html"))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	out, err := engine.RenderString("{{ items|join:\",\" }}", map[string]any{"items": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "a,b" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEngineErrors(t *testing.T) {
	if _, err := New(); err == nil {
		t.Fatalf("expected error without template source")
	}

	engine, err := New(WithFS(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if _, err := engine.RenderTemplate("missing", nil); err == nil || !strings.Contains(err.Error(), "missing.tpl") {
		t.Fatalf("expected load error for missing template, got %v", err)
	}

	var nilEngine *Engine
	if _, err := nilEngine.RenderTemplate("x", nil); err == nil {
		t.Fatalf("expected nil engine error")
	}
}
