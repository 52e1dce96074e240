package validation

import (
	"testing"

	"github.com/goliatone/go-resourcegen/pkg/model"
	"github.com/goliatone/go-resourcegen/pkg/resource"
	"github.com/goliatone/go-resourcegen/pkg/testsupport"
)

func postResource(t *testing.T) *resource.Resource {
	t.Helper()
	reg := testsupport.Registry(t, `App\Nova\User`, `App\Models\User`)
	res, err := resource.New(`App\Nova\Post`, testsupport.BlogPost(), resource.WithRegistry(reg))
	if err != nil {
		t.Fatalf("resource: %v", err)
	}
	return res
}

func TestRecordValid(t *testing.T) {
	result, err := Record(postResource(t), resource.Request{}, model.Record{
		"id":        7,
		"title":     "Hello",
		"author_id": 3,
		"published": true,
		"extra":     []string{"ignored"},
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !result.Valid || len(result.Issues) != 0 {
		t.Fatalf("expected valid record, got %#v", result)
	}
}

func TestRecordNilValuesAreUnset(t *testing.T) {
	result, err := Record(postResource(t), resource.Request{}, model.Record{"title": nil, "author_id": nil})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected nil values to be skipped, got %#v", result.Issues)
	}
}

func TestRecordReportsFieldIssues(t *testing.T) {
	result, err := Record(postResource(t), resource.Request{}, model.Record{
		"title":     42,
		"author_id": "three",
		"published": "yes",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected invalid record")
	}

	var got []string
	for _, issue := range result.Issues {
		if issue.Message == "" {
			t.Fatalf("expected issue message, got %#v", issue)
		}
		got = append(got, issue.Field+"@"+issue.Path)
	}
	want := []string{"author_id@/author_id", "published@/published", "title@/title"}
	if len(got) != len(want) {
		t.Fatalf("unexpected issues %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("issue %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRecordRejectsUnencodableValues(t *testing.T) {
	if _, err := Record(postResource(t), resource.Request{}, model.Record{"title": make(chan int)}); err == nil {
		t.Fatalf("expected encode error")
	}
	if _, err := Record(nil, resource.Request{}, nil); err == nil {
		t.Fatalf("expected missing resource error")
	}
}

func TestPointerString(t *testing.T) {
	if got := pointerString([]string{"a/b", "c~d"}); got != "/a~1b/c~0d" {
		t.Fatalf("unexpected pointer %q", got)
	}
	if got := pointerString(nil); got != "" {
		t.Fatalf("expected empty pointer, got %q", got)
	}
}
