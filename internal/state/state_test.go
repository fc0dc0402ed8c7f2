package state

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Paintersrp/qb/internal/config"
)

func newTestState(t *testing.T) *State {
	t.Helper()

	cfg := config.Default(t.TempDir())
	s, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("failed to build state: %v", err)
	}
	return s
}

func TestDatasetFallsBackToDefaults(t *testing.T) {
	s := newTestState(t)

	b, err := s.Board(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Items()) != 7 {
		t.Fatalf("expected 7 default items, got %d", len(b.Items()))
	}
	if len(b.Custom()) != 0 {
		t.Fatalf("expected no custom keywords, got %v", b.Custom())
	}
}

func TestBoardUsesConfiguredDataFile(t *testing.T) {
	s := newTestState(t)

	path := filepath.Join(t.TempDir(), "board.json")
	doc := `{"items":[{"id":"a","question":"Where is the cache?","answer":"Here."}],"keywords":["Cache"]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	s.Config.DataFile = path

	b, err := s.Board(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b.Items()) != 1 {
		t.Fatalf("expected 1 item, got %d", len(b.Items()))
	}
	if got := b.Custom(); len(got) != 1 || got[0] != "cache" {
		t.Fatalf("expected uploaded keywords as custom, got %v", got)
	}
	if b.Success() != "" {
		t.Fatalf("startup load should not raise a success banner, got %q", b.Success())
	}
}

func TestBoardReportsMissingDataFile(t *testing.T) {
	s := newTestState(t)
	s.Config.DataFile = filepath.Join(t.TempDir(), "missing.json")

	if _, err := s.Board(context.Background()); err == nil {
		t.Fatalf("expected missing data file to fail")
	}
}

func TestFromConfigOpensNotesStore(t *testing.T) {
	s := newTestState(t)

	if err := s.Notes.Put("k", "v"); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}
	if _, err := os.Stat(s.Notes.Dir()); err != nil {
		t.Fatalf("expected notes directory to exist: %v", err)
	}
}
