package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := WriteFile(t, dir, filepath.Join("a", "b", "c.toml"), "x = 1\n")
	if path != filepath.Join(dir, "a", "b", "c.toml") {
		t.Fatalf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "x = 1\n" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestRepoRootHoldsGoMod(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod in %s: %v", root, err)
	}
}
