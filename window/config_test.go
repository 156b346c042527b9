package window_test

import (
	"testing"

	rokoko "github.com/OrbitalStation/rokoko"
	"github.com/OrbitalStation/rokoko/window"
)

func TestFromJSON_AppliesFields(t *testing.T) {
	raw := []byte(`{"title":"from json","size":[640,480],"size_is_logical":true}`)
	b, err := window.FromJSON(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h := &window.Headless{}
	if _, err := b.Create(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Title != "from json" {
		t.Fatalf("title = %q", h.Title)
	}
	if h.Inner == nil || h.Inner.Width != 640 || h.Inner.Height != 480 || h.Inner.Class != window.Logical {
		t.Fatalf("inner = %+v", h.Inner)
	}
}

func TestFromJSON_ConflictStillCaughtAtCreate(t *testing.T) {
	raw := []byte(`{"size":[100,100],"maximized":true}`)
	b, err := window.FromJSON(raw)
	if err != nil {
		t.Fatalf("decode should succeed, cross-field checks happen at Create: %v", err)
	}

	_, err = b.Create(&window.Headless{})
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeConflict {
		t.Fatalf("expected conflict at Create, got %v", err)
	}
}

func TestFromJSON_Malformed(t *testing.T) {
	_, err := window.FromJSON([]byte(`{"title":`))
	iss, ok := rokoko.AsIssues(err)
	if !ok || iss[0].Code != rokoko.CodeParseError {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestConfig_AbsentFieldsLeaveBuilderUntouched(t *testing.T) {
	b, err := window.FromJSON([]byte(`{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	h := &window.Headless{}
	if _, err := b.Create(h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Title != "rokoko window" {
		t.Fatalf("defaults should still apply, got %q", h.Title)
	}
	if h.Inner != nil || h.Maximized {
		t.Fatalf("no effects expected: %+v", h)
	}
}
