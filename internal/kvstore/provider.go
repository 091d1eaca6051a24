// Package kvstore defines the flat key-value store the persistence
// adapter writes its collection entries to.
package kvstore

import "errors"

// ErrNoValue is returned by Get when no value exists under a key.
// Absence is a normal condition (e.g. before first-run seeding), so it is
// a distinct sentinel rather than a wrapped I/O error.
var ErrNoValue = errors.New("kvstore: no value")

// Provider is the interface for durable key-value operations.
// Each value is an opaque blob; Set replaces the whole entry.
type Provider interface {
	// Get returns the value stored under key, or ErrNoValue.
	Get(key string) ([]byte, error)
	// Set atomically overwrites the entry under key.
	Set(key string, value []byte) error
	// Delete removes the entry under key. Deleting a missing key is not an error.
	Delete(key string) error
	// Close releases any underlying resources.
	Close() error
}
