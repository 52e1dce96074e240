package registry

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLookupFirstMatchWins(t *testing.T) {
	reg := New()
	reg.MustRegister(`App\Nova\User`, `App\Models\User`)
	reg.MustRegister(`App\Nova\Author`, `App\Models\User`)
	reg.MustRegister(`App\Nova\Post`, `App\Models\Post`)

	got, ok := reg.Lookup(`App\Models\User`)
	if !ok || got != `App\Nova\User` {
		t.Fatalf("expected first registration, got %q (ok=%v)", got, ok)
	}

	if diff := cmp.Diff([]string{`App\Nova\User`, `App\Nova\Author`}, reg.Matches(`App\Models\User`)); diff != "" {
		t.Fatalf("matches mismatch (-want +got):\n%s", diff)
	}
}

func TestLookupMissing(t *testing.T) {
	reg := New()
	reg.MustRegister(`App\Nova\Post`, `App\Models\Post`)

	if got, ok := reg.Lookup(`App\Models\User`); ok {
		t.Fatalf("expected no match, got %q", got)
	}

	var nilRegistry *Registry
	if _, ok := nilRegistry.Lookup(`App\Models\Post`); ok {
		t.Fatalf("expected nil registry to never match")
	}
}

func TestLookupSkipsForeignNamespace(t *testing.T) {
	reg := New()
	reg.MustRegister(`Vendor\Panel\User`, `App\Models\User`)

	if got, ok := reg.Lookup(`App\Models\User`); ok {
		t.Fatalf("expected resources outside the namespace to be skipped, got %q", got)
	}

	open := New(WithNamespace(""))
	open.MustRegister(`Vendor\Panel\User`, `App\Models\User`)
	if got, ok := open.Lookup(`App\Models\User`); !ok || got != `Vendor\Panel\User` {
		t.Fatalf("expected empty namespace to disable filtering, got %q (ok=%v)", got, ok)
	}
}

func TestRegisterValidation(t *testing.T) {
	reg := New()
	if err := reg.Register("", `App\Models\User`); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register(`App\Nova\User`, " "); err == nil {
		t.Fatalf("expected error for empty model")
	}
	reg.MustRegister(`App\Nova\User`, `App\Models\User`)
	if err := reg.Register(`App\Nova\User`, `App\Models\Other`); !errors.Is(err, ErrDuplicateResource) {
		t.Fatalf("expected ErrDuplicateResource, got %v", err)
	}
}

func TestRegisterWarnsOnAmbiguousModel(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reg := New(WithLogger(zap.New(core)))
	reg.MustRegister(`App\Nova\User`, `App\Models\User`)
	reg.MustRegister(`App\Nova\Member`, `App\Models\User`)

	if logs.Len() != 1 {
		t.Fatalf("expected one warning, got %d", logs.Len())
	}
	entry := logs.All()[0]
	if entry.ContextMap()["resource"] != `App\Nova\Member` {
		t.Fatalf("unexpected warning context: %#v", entry.ContextMap())
	}
}

func TestGetListEntries(t *testing.T) {
	reg := New()
	reg.MustRegister(`App\Nova\Post`, `App\Models\Post`)
	reg.MustRegister(`App\Nova\Comment`, `App\Models\Comment`)

	if diff := cmp.Diff([]string{`App\Nova\Comment`, `App\Nova\Post`}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if reg.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reg.Len())
	}

	entry, err := reg.Get(`App\Nova\Comment`)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if entry.Model != `App\Models\Comment` {
		t.Fatalf("unexpected model %q", entry.Model)
	}
	if _, err := reg.Get(`App\Nova\Missing`); !errors.Is(err, ErrUnknownResource) {
		t.Fatalf("expected ErrUnknownResource, got %v", err)
	}

	entries := reg.Entries()
	if entries[0].Name != `App\Nova\Post` {
		t.Fatalf("expected registration order, got %#v", entries)
	}
}
