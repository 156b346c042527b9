package window_test

import (
	"strings"
	"testing"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/window"
)

func TestLoadSpec_Builtin(t *testing.T) {
	sp := window.DefaultSpec()
	if len(sp.Fields) == 0 || len(sp.Events) == 0 {
		t.Fatalf("builtin spec should declare fields and events: %+v", sp)
	}
}

func TestLoadSpec_AsymmetricConflict(t *testing.T) {
	raw := []byte(`
fields:
  - name: size
    conflicts_with: [maximized]
  - name: maximized
`)
	_, err := window.LoadSpec(raw)
	if err == nil {
		t.Fatalf("expected definition-time error for asymmetric conflict")
	}
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeInvalidSpec {
		t.Fatalf("expected invalid_spec, got %v", err)
	}
	if !strings.Contains(iss[0].Hint, "symmetric") {
		t.Fatalf("hint should explain the asymmetry: %q", iss[0].Hint)
	}
}

func TestLoadSpec_UnknownReferences(t *testing.T) {
	raw := []byte(`
fields:
  - name: size
    requires: [nonexistent]
`)
	_, err := window.LoadSpec(raw)
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeInvalidSpec {
		t.Fatalf("expected invalid_spec, got %v", err)
	}
}

func TestLoadSpec_UnsupportedName(t *testing.T) {
	raw := []byte(`
fields:
  - name: transparency
`)
	_, err := window.LoadSpec(raw)
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeInvalidSpec {
		t.Fatalf("expected invalid_spec for a name with no probe, got %v", err)
	}
}

func TestLoadSpec_DuplicateAndSelfConflict(t *testing.T) {
	raw := []byte(`
fields:
  - name: size
    conflicts_with: [size]
  - name: size
`)
	_, err := window.LoadSpec(raw)
	iss, ok := rokoko.AsIssues(err)
	if !ok {
		t.Fatalf("expected invalid_spec issues, got %v", err)
	}
	for _, it := range iss {
		if it.Code != rokoko.CodeInvalidSpec {
			t.Fatalf("unexpected issue: %+v", it)
		}
	}
}

func TestLoadSpec_MalformedYAML(t *testing.T) {
	_, err := window.LoadSpec([]byte("fields: ["))
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
	if iss[0].Cause == nil {
		t.Fatalf("parse issues should carry the underlying error")
	}
}

func TestNewWithSpec(t *testing.T) {
	raw := []byte(`
fields:
  - name: title
`)
	sp, err := window.LoadSpec(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// No default declared, so an empty builder applies no title.
	h := &window.Headless{}
	if _, err := window.NewWithSpec(sp).Create(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Title != "" {
		t.Fatalf("no default should apply, got %q", h.Title)
	}
}
