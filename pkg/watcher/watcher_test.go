package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchTriggersOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "part.stl")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	fw, err := New(50 * time.Millisecond)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer fw.Close()

	changed := make(chan string, 1)
	if err := fw.Watch(path, func(p string) { changed <- p }); err != nil {
		t.Fatalf("failed to watch: %v", err)
	}

	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatalf("failed to rewrite file: %v", err)
	}

	select {
	case p := <-changed:
		if filepath.Base(p) != "part.stl" {
			t.Errorf("unexpected path: %s", p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}
}

func TestWatchMissingFile(t *testing.T) {
	fw, err := New(10 * time.Millisecond)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer fw.Close()

	if err := fw.Watch(filepath.Join(t.TempDir(), "nope.stl"), func(string) {}); err == nil {
		t.Error("expected an error watching a missing file")
	}
}
