package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRequiresPathAndCallback(t *testing.T) {
	if _, err := New(Config{OnChange: func(string) {}}); err == nil {
		t.Fatal("expected error for missing path")
	}
	if _, err := New(Config{Path: "pool.iop"}); err == nil {
		t.Fatal("expected error for missing callback")
	}
}

func TestWatcherReportsChange(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "demo.iop")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 8)
	w, err := New(Config{
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
		OnChange:      func(p string) { changed <- p },
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watch a moment to attach before writing.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		if p != w.Path() {
			t.Fatalf("expected change for %s, got %s", w.Path(), p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change callback")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWatcherSurvivesRenameReplace(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "demo.vtp")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 8)
	w, err := New(Config{
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
		OnChange:      func(p string) { changed <- p },
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)

	// Replace the file the way atomic savers do: write a temp file in the
	// same directory and rename it over the target.
	tmpFile := filepath.Join(tmp, ".demo.vtp.tmp")
	if err := os.WriteFile(tmpFile, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmpFile, path); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change after rename-replace")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "demo.iop")
	if err := os.WriteFile(path, []byte("v1"), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan string, 8)
	w, err := New(Config{
		Path:          path,
		DebounceDelay: 20 * time.Millisecond,
		OnChange:      func(p string) { changed <- p },
	})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(tmp, "other.iop"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-changed:
		t.Fatalf("unexpected change callback for %s", p)
	case <-time.After(300 * time.Millisecond):
	}
}
