package kvstore

import (
	"errors"
	"os"
	"testing"
)

func tempSQLite(t *testing.T) *SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "mise-kv-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	s, err := OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSetGetDelete(t *testing.T) {
	s := tempSQLite(t)

	if _, err := s.Get("recipes"); !errors.Is(err, ErrNoValue) {
		t.Fatalf("Get on empty db = %v, want ErrNoValue", err)
	}

	if err := s.Set("recipes", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("recipes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Errorf("value = %q, want %q", got, "v1")
	}

	// Upsert replaces.
	if err := s.Set("recipes", []byte("v2")); err != nil {
		t.Fatalf("Set upsert: %v", err)
	}
	got, _ = s.Get("recipes")
	if string(got) != "v2" {
		t.Errorf("value after upsert = %q, want %q", got, "v2")
	}

	if err := s.Delete("recipes"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get("recipes"); !errors.Is(err, ErrNoValue) {
		t.Errorf("Get after delete = %v, want ErrNoValue", err)
	}
}

func TestSQLiteKeysIndependent(t *testing.T) {
	s := tempSQLite(t)
	_ = s.Set("recipes", []byte("r"))
	_ = s.Set("categories", []byte("c"))

	if err := s.Delete("recipes"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := s.Get("categories")
	if err != nil {
		t.Fatalf("Get categories: %v", err)
	}
	if string(got) != "c" {
		t.Errorf("categories = %q, want %q", got, "c")
	}
}
