package notes

import (
	"errors"
	"testing"
)

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	buf, err := Load(store)
	if err != nil {
		t.Fatalf("failed to load buffer: %v", err)
	}
	if buf.Text() != "" {
		t.Fatalf("expected empty buffer, got %q", buf.Text())
	}
}

func TestSetPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	buf, err := Load(store)
	if err != nil {
		t.Fatalf("failed to load buffer: %v", err)
	}

	for _, text := range []string{"h", "he", "hello"} {
		if err := buf.Set(text); err != nil {
			t.Fatalf("failed to set %q: %v", text, err)
		}
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	again, err := Load(reopened)
	if err != nil {
		t.Fatalf("failed to reload buffer: %v", err)
	}
	if again.Text() != "hello" {
		t.Fatalf("expected persisted text, got %q", again.Text())
	}
}

func TestClearPersistsEmpty(t *testing.T) {
	dir := t.TempDir()
	store, _ := Open(dir)
	buf, _ := Load(store)
	if err := buf.Set("draft"); err != nil {
		t.Fatalf("failed to set: %v", err)
	}
	if err := buf.Clear(); err != nil {
		t.Fatalf("failed to clear: %v", err)
	}

	reopened, _ := Open(dir)
	again, err := Load(reopened)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if again.Text() != "" {
		t.Fatalf("expected cleared notes, got %q", again.Text())
	}
}

func TestLenCountsCharacters(t *testing.T) {
	store, _ := Open(t.TempDir())
	buf, _ := Load(store)
	_ = buf.Set("héllo")
	if buf.Len() != 5 {
		t.Fatalf("expected 5 characters, got %d", buf.Len())
	}
}

func TestCopyUsesClipboard(t *testing.T) {
	var copied string
	store, _ := Open(t.TempDir())
	buf, _ := Load(store, WithClipboard(func(s string) error {
		copied = s
		return nil
	}))
	_ = buf.Set("copy me")

	if err := buf.Copy(); err != nil {
		t.Fatalf("unexpected copy error: %v", err)
	}
	if copied != "copy me" {
		t.Fatalf("expected clipboard to receive notes, got %q", copied)
	}
}

func TestNilStore(t *testing.T) {
	var store *Store
	if _, err := store.Get("x"); !errors.Is(err, ErrNoStore) {
		t.Fatalf("expected ErrNoStore, got %v", err)
	}
}
