package kvstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *File {
	t.Helper()
	dir := t.TempDir()
	f, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return f
}

func TestSetAndGet(t *testing.T) {
	s := tempStore(t)
	value := []byte(`[{"id":"1"}]`)
	if err := s.Set("recipes", value); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("recipes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(value) {
		t.Errorf("value mismatch: got %q", got)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := tempStore(t)
	_, err := s.Get("recipes")
	if !errors.Is(err, ErrNoValue) {
		t.Errorf("err = %v, want ErrNoValue", err)
	}
}

func TestDeleteKey(t *testing.T) {
	s := tempStore(t)
	_ = s.Set("categories", []byte("[]"))
	if err := s.Delete("categories"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("categories"); !errors.Is(err, ErrNoValue) {
		t.Errorf("err after delete = %v, want ErrNoValue", err)
	}
	// Deleting again is not an error.
	if err := s.Delete("categories"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestInvalidKeysRejected(t *testing.T) {
	s := tempStore(t)

	cases := []string{
		"",
		"../outside",
		"sub/key",
		"/etc/passwd",
	}
	for _, k := range cases {
		if _, err := s.Get(k); err == nil || errors.Is(err, ErrNoValue) {
			t.Errorf("Get(%q): expected validation error, got %v", k, err)
		}
		if err := s.Set(k, []byte("x")); err == nil {
			t.Errorf("Set(%q): expected validation error", k)
		}
	}
}

func TestAtomicOverwrite(t *testing.T) {
	s := tempStore(t)
	_ = s.Set("recipes", []byte("old"))
	if err := s.Set("recipes", []byte("new")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, _ := s.Get("recipes")
	if string(got) != "new" {
		t.Errorf("value = %q, want %q", got, "new")
	}

	// Confirm no leftover temp files.
	matches, _ := filepath.Glob(filepath.Join(s.root, ".mise-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestEntryPath(t *testing.T) {
	s := tempStore(t)
	_ = s.Set("recipes", []byte("[]"))
	p, err := s.EntryPath("recipes")
	if err != nil {
		t.Fatalf("EntryPath: %v", err)
	}
	if _, err := os.Stat(p); err != nil {
		t.Errorf("entry file missing: %v", err)
	}
}

func TestNewFile_NonExistentDir(t *testing.T) {
	_, err := NewFile("/tmp/mise-does-not-exist-" + t.Name())
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFile_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "mise-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFile(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
