package kvstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File implements Provider with one file per key under a root directory.
// Writes are atomic: tmp file → fsync → rename, so a reader never observes
// a partially written entry.
type File struct {
	root string // absolute path to the store directory
}

// NewFile creates a File provider rooted at the given directory.
// The directory must already exist.
func NewFile(root string) (*File, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("kvstore: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("kvstore: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("kvstore: root is not a directory: %s", abs)
	}
	return &File{root: abs}, nil
}

// Root returns the absolute store directory.
func (f *File) Root() string {
	return f.root
}

// EntryPath returns the absolute file path a key is stored at.
// Exposed so the external-edit watcher can map fsnotify events back to keys.
func (f *File) EntryPath(key string) (string, error) {
	return f.keyPath(key)
}

// keyPath validates a key and resolves it to a file under root. Keys are
// plain names; separators and traversal are rejected.
func (f *File) keyPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("kvstore: empty key")
	}
	cleaned := filepath.Clean(key)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("kvstore: invalid key: %s", key)
	}
	return filepath.Join(f.root, cleaned+".json"), nil
}

// Get reads the entry stored under key.
func (f *File) Get(key string) ([]byte, error) {
	path, err := f.keyPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoValue
		}
		return nil, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	return data, nil
}

// Set atomically overwrites the entry: tmp file → fsync → rename.
func (f *File) Set(key string, value []byte) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".mise-tmp-*")
	if err != nil {
		return fmt.Errorf("kvstore: create temp: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up on any failure path.
	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("kvstore: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("kvstore: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("kvstore: close temp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("kvstore: rename: %w", err)
	}
	success = true
	return nil
}

// Delete removes the entry under key.
func (f *File) Delete(key string) error {
	path, err := f.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *File) Close() error { return nil }
