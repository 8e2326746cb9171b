package preview

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := Save("<!DOCTYPE html>", dir, "Jane_Doe_Portfolio.html")
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Base(path) != "Jane_Doe_Portfolio.html" {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading saved document: %v", err)
	}
	if string(data) != "<!DOCTYPE html>" {
		t.Errorf("saved content = %q", data)
	}
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()

	if _, err := Save("first", dir, "p.html"); err != nil {
		t.Fatal(err)
	}
	path, err := Save("second", dir, "p.html")
	if err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Errorf("content = %q, want overwrite", data)
	}
}
