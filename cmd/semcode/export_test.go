package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectInputs(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"b.json", "a.json", "readme.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "c.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := collectInputs(dir)
	if err != nil {
		t.Fatalf("collectInputs() error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(sub, "c.json"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d inputs, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("inputs[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestCollectInputsSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := collectInputs(path)
	if err != nil {
		t.Fatalf("collectInputs() error: %v", err)
	}
	if len(got) != 1 || got[0] != path {
		t.Errorf("got %v, want [%s]", got, path)
	}
}

func TestLoadExtraction(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dump.json")
	data := `{
		"path": "lib/my_app.ex",
		"module": ["MyApp"],
		"functions": [{"name": "hello", "arity": 0, "kind": "def"}]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	file, err := loadExtraction(path)
	if err != nil {
		t.Fatalf("loadExtraction() error: %v", err)
	}
	if file.Path != "lib/my_app.ex" {
		t.Errorf("path = %s, want lib/my_app.ex", file.Path)
	}
	if len(file.Module) != 1 || file.Module[0] != "MyApp" {
		t.Errorf("module = %v, want [MyApp]", file.Module)
	}
	if len(file.Functions) != 1 || file.Functions[0].Name != "hello" {
		t.Errorf("functions = %v", file.Functions)
	}
}

func TestLoadExtractionInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadExtraction(path); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
