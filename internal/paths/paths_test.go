package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAtomicWriteCreatesParent(t *testing.T) {
	p := filepath.Join(t.TempDir(), IconsetDirName, "icon_16x16.png")
	if err := AtomicWrite(p, []byte("a")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "a" {
		t.Errorf("content = %q, want %q", got, "a")
	}
	if _, err := os.Stat(p + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temp file left behind: %v", err)
	}
}

func TestAtomicWriteOverwrites(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(p, []byte("old contents"), FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(p, []byte("new")); err != nil {
		t.Fatalf("AtomicWrite: %v", err)
	}
	got, _ := os.ReadFile(p)
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func TestAtomicWriteParentIsFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, IconsetDirName)
	if err := os.WriteFile(blocker, nil, FilePerm); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWrite(filepath.Join(blocker, "x.png"), []byte("x")); err == nil {
		t.Fatal("expected error when parent path is a regular file")
	}
}
