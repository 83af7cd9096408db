package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/podcasto/backend/internal/content"
	"github.com/podcasto/backend/internal/db"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

type stubGenerator struct {
	script Script
	err    error
	calls  int
}

func (s *stubGenerator) GenerateScript(_ context.Context, brief Brief) (Script, error) {
	s.calls++
	return s.script, s.err
}

// discardLogger returns a *slog.Logger that silently drops all log output.
// Use this instead of nil — fallback.go calls f.logger.Warn() which panics on nil.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBrief() Brief {
	return Brief{
		Config: db.PodcastConfig{
			Creator:           "Podcasto",
			ConversationStyle: "engaging",
			Speaker1Role:      "host",
			Speaker2Role:      "expert",
		},
		Language: "en",
		Items: []content.Item{
			{Title: "Headline", Text: "Body text", PublishedAt: time.Now()},
		},
	}
}

// ─── FallbackGenerator ────────────────────────────────────────────────────────

func TestFallbackGenerator_PrimarySucceeds_SecondaryNotCalled(t *testing.T) {
	primary := &stubGenerator{
		script: Script{
			Title:       "Primary title",
			Description: "Primary description",
			Lines:       []ScriptLine{{Speaker: "Speaker 1", Text: "hello"}},
		},
	}
	secondary := &stubGenerator{
		script: Script{Title: "Secondary title"},
	}

	gen := NewFallbackGenerator(primary, secondary, discardLogger())

	script, err := gen.GenerateScript(context.Background(), testBrief())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if script.Title != "Primary title" {
		t.Errorf("expected primary result, got: %q", script.Title)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.calls)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
}

func TestFallbackGenerator_PrimaryFails_SecondaryUsed(t *testing.T) {
	primary := &stubGenerator{err: errors.New("gemini timeout")}
	secondary := &stubGenerator{
		script: Script{
			Title: "Secondary title",
			Lines: []ScriptLine{{Speaker: "Speaker 1", Text: "fallback"}},
		},
	}

	gen := NewFallbackGenerator(primary, secondary, discardLogger())

	script, err := gen.GenerateScript(context.Background(), testBrief())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if script.Title != "Secondary title" {
		t.Errorf("expected secondary result, got: %q", script.Title)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
	if secondary.calls != 1 {
		t.Errorf("secondary should be called once, got %d calls", secondary.calls)
	}
}

func TestFallbackGenerator_BothFail_ReturnsError(t *testing.T) {
	primary := &stubGenerator{err: errors.New("primary error")}
	secondary := &stubGenerator{err: errors.New("secondary error")}

	gen := NewFallbackGenerator(primary, secondary, discardLogger())

	_, err := gen.GenerateScript(context.Background(), testBrief())
	if err == nil {
		t.Fatal("expected error when both generators fail")
	}
}

func TestFallbackGenerator_NilPrimary_UsesSecondaryDirectly(t *testing.T) {
	secondary := &stubGenerator{
		script: Script{Title: "Only secondary"},
	}

	gen := NewFallbackGenerator(nil, secondary, discardLogger())

	script, err := gen.GenerateScript(context.Background(), testBrief())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Title != "Only secondary" {
		t.Errorf("expected secondary result, got: %q", script.Title)
	}
	if secondary.calls != 1 {
		t.Errorf("expected 1 secondary call, got %d", secondary.calls)
	}
}

func TestFallbackGenerator_NilSecondary_PrimaryErrorBubbles(t *testing.T) {
	primaryErr := errors.New("primary blew up")
	primary := &stubGenerator{err: primaryErr}

	gen := NewFallbackGenerator(primary, nil, discardLogger())

	_, err := gen.GenerateScript(context.Background(), testBrief())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, primaryErr) {
		t.Errorf("expected to find primaryErr in chain, got: %v", err)
	}
}

// ─── parseScript ──────────────────────────────────────────────────────────────

func TestParseScript_StripsMarkdownFences(t *testing.T) {
	raw := "```json\n{\"title\":\"T\",\"description\":\"D\",\"lines\":[{\"speaker\":\"Speaker 1\",\"text\":\"hi\"}]}\n```"

	script, err := parseScript(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if script.Title != "T" || len(script.Lines) != 1 {
		t.Errorf("unexpected script: %+v", script)
	}
}

func TestParseScript_EmptyLines_Rejected(t *testing.T) {
	_, err := parseScript(`{"title":"T","description":"D","lines":[]}`)
	if err == nil {
		t.Fatal("expected error for script with no lines")
	}
}

func TestParseScript_InvalidJSON_Rejected(t *testing.T) {
	_, err := parseScript("not json at all")
	if err == nil {
		t.Fatal("expected error for non-JSON response")
	}
}
