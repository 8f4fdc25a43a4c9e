package osfs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStat(t *testing.T) {
	fsys := New()
	dir := t.TempDir()
	file := filepath.Join(dir, "tsconfig.json")
	if err := os.WriteFile(file, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	mode, err := fsys.Stat(context.Background(), file)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !mode.IsRegular() {
		t.Errorf("expected regular file, got mode %v", mode)
	}

	mode, err = fsys.Stat(context.Background(), dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !mode.IsDir() {
		t.Errorf("expected directory, got mode %v", mode)
	}

	if _, err := fsys.Stat(context.Background(), filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestReadFile(t *testing.T) {
	fsys := New()
	file := filepath.Join(t.TempDir(), "tsconfig.json")
	if err := os.WriteFile(file, []byte(`{"a":1}`), 0644); err != nil {
		t.Fatal(err)
	}

	data, err := fsys.ReadFile(context.Background(), file)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != `{"a":1}` {
		t.Errorf("ReadFile() = %q", data)
	}
}

func TestContextCancellation(t *testing.T) {
	fsys := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fsys.Stat(ctx, "."); err != context.Canceled {
		t.Errorf("Stat() error = %v, want context.Canceled", err)
	}
	if _, err := fsys.ReadFile(ctx, "."); err != context.Canceled {
		t.Errorf("ReadFile() error = %v, want context.Canceled", err)
	}
}
