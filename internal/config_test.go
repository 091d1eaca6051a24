package internal

import (
	"testing"
)

func TestStoreConfig_FileBackend(t *testing.T) {
	cfg := StoreConfig{Backend: "file", Path: "./data/store"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("file backend should pass: %v", err)
	}
	if cfg.Dir() != "./data/store" {
		t.Errorf("Dir() = %q, want the store path itself", cfg.Dir())
	}
}

func TestStoreConfig_EmptyBackendDefaultsFile(t *testing.T) {
	cfg := StoreConfig{Backend: "", Path: "./data/store"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty backend should default to file: %v", err)
	}
	if cfg.Backend != StoreBackendFile {
		t.Errorf("backend = %q, want %q", cfg.Backend, StoreBackendFile)
	}
}

func TestStoreConfig_SQLiteBackend(t *testing.T) {
	cfg := StoreConfig{Backend: "sqlite", Path: "./data/mise.db"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sqlite backend should pass: %v", err)
	}
	if cfg.Dir() != "./data" {
		t.Errorf("Dir() = %q, want the db file's parent", cfg.Dir())
	}
}

func TestStoreConfig_InvalidBackend(t *testing.T) {
	cfg := StoreConfig{Backend: "redis", Path: "./data"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("unknown backend should fail validation")
	}
}

func TestStoreConfig_MissingPath(t *testing.T) {
	cfg := StoreConfig{Backend: "file"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("missing path should fail validation")
	}
}

func TestHTTPConfig_PortBounds(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := HTTPConfig{Port: port}
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d should fail validation", port)
		}
	}
	cfg := HTTPConfig{Port: 8080}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("port 8080 should pass: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestFullConfig_StoreValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Backend = "redis"
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch store error")
	}
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
	if cfg.Store.Backend != StoreBackendFile {
		t.Errorf("default backend = %q", cfg.Store.Backend)
	}
	if cfg.Media.Dir == "" {
		t.Error("default media dir is empty")
	}
}
