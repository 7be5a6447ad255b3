package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	data := `{"animals": ["gato", "cachorro"], "fruits": ["banana"]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	names := c.Names()
	if len(names) != 2 || names[0] != "animals" || names[1] != "fruits" {
		t.Fatalf("unexpected names: %v", names)
	}
	if words := c.Words("animals"); len(words) != 2 || words[0] != "gato" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadFileRejectsEmptyCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	if err := os.WriteFile(path, []byte(`{"animals": []}`), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected validation error for empty category")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
