package resourcegen

import (
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-resourcegen/pkg/fields"
	"github.com/goliatone/go-resourcegen/pkg/i18n"
	"github.com/goliatone/go-resourcegen/pkg/registry"
	"github.com/goliatone/go-resourcegen/pkg/resource"
	"github.com/goliatone/go-resourcegen/pkg/schema"
	"github.com/goliatone/go-resourcegen/pkg/testsupport"
)

func openTestdata(t *testing.T, options ...Option) *Workspace {
	t.Helper()
	opts := append([]Option{
		WithTranslations(os.DirFS("testdata/lang")),
		WithFallbackLocale("en"),
	}, options...)
	ws, err := Open(os.DirFS("testdata/schema"), opts...)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	return ws
}

func TestOpenBuildsResources(t *testing.T) {
	ws := openTestdata(t)

	var names []string
	for _, res := range ws.Resources() {
		names = append(names, res.Name())
	}
	want := []string{`App\Nova\Comment`, `App\Nova\Post`, `App\Nova\User`}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("resources mismatch (-want +got):\n%s", diff)
	}
	if ws.Registry().Len() != 3 {
		t.Fatalf("expected 3 registered resources, got %d", ws.Registry().Len())
	}
	if ws.Translator() == nil || ws.Store() == nil {
		t.Fatalf("expected translator and store to be set")
	}

	if _, err := ws.Resource(`App\Nova\Missing`); !errors.Is(err, registry.ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}
}

func TestPostFieldsGolden(t *testing.T) {
	ws := openTestdata(t)
	res, err := ws.Resource(`App\Nova\Post`)
	if err != nil {
		t.Fatalf("resource: %v", err)
	}

	got := res.Fields(Request{Locale: "en"})
	const golden = "testdata/golden/post_fields.json"
	testsupport.WriteGolden(t, golden, got)

	var want []fields.Field
	testsupport.MustLoadJSON(t, golden, &want)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestPostRelations(t *testing.T) {
	ws := openTestdata(t)
	res, _ := ws.Resource(`App\Nova\Post`)
	list := res.Fields(Request{Locale: "es"})

	author := list[2]
	if author.Kind != fields.KindBelongsTo || author.Relationship.Resource != `App\Nova\User` {
		t.Fatalf("expected author belongsTo field, got %#v", author)
	}
	if author.Label != "Autor" {
		t.Fatalf("expected translated label, got %q", author.Label)
	}

	category := list[3]
	if category.Kind != fields.KindNumber || category.Attribute != "category_id" {
		t.Fatalf("expected category to fall back without a resource, got %#v", category)
	}
	if category.Label != "Category" {
		t.Fatalf("expected fallback locale label, got %q", category.Label)
	}

	if got := res.Label(Request{Locale: "es"}); got != "Artículos" {
		t.Fatalf("unexpected label %q", got)
	}
	if diff := cmp.Diff([]string{"id", "title"}, res.SearchableColumns()); diff != "" {
		t.Fatalf("searchable mismatch (-want +got):\n%s", diff)
	}
}

func TestUserResource(t *testing.T) {
	ws := openTestdata(t)
	res, _ := ws.Resource(`App\Nova\User`)

	if got := res.Title(map[string]any{"name": "Ada", "title": "ignored"}); got != "Ada" {
		t.Fatalf("expected name title, got %q", got)
	}
	if diff := cmp.Diff([]string{"id", "name"}, res.SearchableColumns()); diff != "" {
		t.Fatalf("searchable mismatch (-want +got):\n%s", diff)
	}
	for _, field := range res.Fields(Request{Locale: "en"}) {
		if field.Relationship != nil {
			t.Fatalf("did not expect relation fields on user, got %#v", field)
		}
	}
}

func TestCommentRelatesToPost(t *testing.T) {
	ws := openTestdata(t)
	res, _ := ws.Resource(`App\Nova\Comment`)
	list := res.Fields(Request{Locale: "en"})

	if list[1].Kind != fields.KindBelongsTo || list[1].Relationship.Resource != `App\Nova\Post` {
		t.Fatalf("expected post relation, got %#v", list[1])
	}
	if list[3].Kind != fields.KindDate {
		t.Fatalf("expected date field, got %q", list[3].Kind)
	}
}

func TestWithTranslatorOverridesCatalog(t *testing.T) {
	translator := i18n.TranslatorFunc(func(_, key string, _ ...any) (string, error) {
		return "T(" + key + ")", nil
	})
	ws := openTestdata(t, WithTranslator(translator))
	res, _ := ws.Resource(`App\Nova\User`)
	if got := res.Label(Request{}); got != "T(models/user.model_title_many)" {
		t.Fatalf("expected injected translator, got %q", got)
	}
}

func TestWithResourceOptions(t *testing.T) {
	ws := openTestdata(t, WithResourceOptions(resource.WithCastTable(fields.CastTable{"float": fields.KindText})))
	res, _ := ws.Resource(`App\Nova\Post`)
	list := res.Fields(Request{})
	if list[6].Attribute != "rating" || list[6].Kind != fields.KindText {
		t.Fatalf("expected rating override, got %#v", list[6])
	}
}

func TestFromStoreRequiresStore(t *testing.T) {
	if _, err := FromStore(nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
	store, err := schema.LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	ws, err := FromStore(store)
	if err != nil {
		t.Fatalf("from store: %v", err)
	}
	if len(ws.Resources()) != 0 || ws.Translator() != nil {
		t.Fatalf("expected empty workspace")
	}
}
