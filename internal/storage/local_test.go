package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")
	ctx := context.Background()

	url, err := s.Save(ctx, "services/icon.png", strings.NewReader("png-bytes"), "image/png")
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if url != "/uploads/services/icon.png" {
		t.Errorf("unexpected url: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "services", "icon.png"))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("unexpected file contents: %q", data)
	}

	if err := s.Delete(ctx, "services/icon.png"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "services", "icon.png")); !os.IsNotExist(err) {
		t.Error("expected file to be removed")
	}
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	if err := s.Delete(context.Background(), "services/gone.png"); err != nil {
		t.Errorf("expected nil for missing file, got %v", err)
	}
}

func TestLocalStorage_RejectsTraversalKeys(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")
	ctx := context.Background()

	for _, key := range []string{"../escape.png", "services/../../etc/passwd", "/abs/path.png"} {
		if _, err := s.Save(ctx, key, strings.NewReader("x"), ""); err == nil {
			t.Errorf("Save(%q): expected error", key)
		}
		if err := s.Delete(ctx, key); err == nil {
			t.Errorf("Delete(%q): expected error", key)
		}
	}
}
