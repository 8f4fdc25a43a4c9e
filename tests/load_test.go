package tests_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tsconf"
)

// The scenarios here exercise the public surface end to end against a real
// directory tree, the way a build tool embedding the library would.

func TestLoad_FromNestedDirectory(t *testing.T) {
	// project/ (tsconfig.json with comments and trailing commas)
	//   src/
	//     deep/
	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	deepDir := filepath.Join(projectDir, "src", "deep")
	if err := os.MkdirAll(deepDir, 0755); err != nil {
		t.Fatal(err)
	}

	content := "{\n" +
		"\t// project configuration\n" +
		"\t\"compilerOptions\": {\n" +
		"\t\t\"strict\": true, /* enforced in CI */\n" +
		"\t},\n" +
		"\t\"include\": [\"src/**/*.ts\",],\n" +
		"}\n"
	markerPath := filepath.Join(projectDir, "tsconfig.json")
	if err := os.WriteFile(markerPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := tsconf.Load(context.Background(), deepDir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if filepath.Clean(res.Path) != filepath.Clean(markerPath) {
		t.Errorf("Path = %v, want %v", res.Path, markerPath)
	}

	config := res.Config.(map[string]any)
	opts := config["compilerOptions"].(map[string]any)
	if opts["strict"] != true {
		t.Errorf("unexpected document: %#v", config)
	}
}

func TestLoad_EmptyFileIsValid(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte("   \n\t"), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := tsconf.Load(context.Background(), dir, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if obj := res.Config.(map[string]any); len(obj) != 0 {
		t.Errorf("blank file should parse to empty object, got %#v", obj)
	}
}

func TestLoad_ExplicitDirectoryWithoutMarker(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "somedir")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	_, err := tsconf.Load(context.Background(), dir, "somedir")
	if !errors.Is(err, tsconf.ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}
}

func TestReadFile_KnownPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.jsonc")
	if err := os.WriteFile(path, []byte(`{"a":1,}`), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := tsconf.ReadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if doc.(map[string]any)["a"] != float64(1) {
		t.Errorf("unexpected document: %#v", doc)
	}
}

func TestFilesExpansion(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	if err := os.MkdirAll(srcDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "main.ts"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	content := `{"include": ["src/**/*.ts"]}`
	if err := os.WriteFile(filepath.Join(dir, "tsconfig.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	res, err := tsconf.Load(context.Background(), dir, "")
	if err != nil {
		t.Fatal(err)
	}
	files, err := tsconf.Files(filepath.Dir(res.Path), res.Config)
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 1 || files[0] != "src/main.ts" {
		t.Errorf("Files = %v", files)
	}
}
