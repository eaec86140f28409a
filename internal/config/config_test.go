package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(lookupMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg, err := FromEnv(lookupMap(map[string]string{
		"PORT":              "8080",
		"MAPART_PASTE_URL":  "http://paste.local",
		"MAPART_MONGO_URI":  "mongodb://localhost:27017",
		"MAPART_TIMEOUT":    "3s",
		"MAPART_BODY_LIMIT": "1024",
	}))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.PasteURL != "http://paste.local" || cfg.MongoURI != "mongodb://localhost:27017" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Timeout != 3*time.Second || cfg.BodyLimit != 1024 {
		t.Errorf("Timeout = %v, BodyLimit = %d", cfg.Timeout, cfg.BodyLimit)
	}

	cfg, _ = FromEnv(lookupMap(map[string]string{"PORT": "8080", "MAPART_ADDR": "127.0.0.1:9000"}))
	if cfg.Addr != "127.0.0.1:9000" {
		t.Errorf("MAPART_ADDR should win over PORT, got %q", cfg.Addr)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	for _, env := range []map[string]string{
		{"MAPART_TIMEOUT": "soon"},
		{"MAPART_BODY_LIMIT": "-1"},
		{"MAPART_BODY_LIMIT": "lots"},
	} {
		if _, err := FromEnv(lookupMap(env)); err == nil {
			t.Errorf("FromEnv(%v) succeeded", env)
		}
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MAPART_MONGO_DB=history_test\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MAPART_MONGO_DB", "")
	os.Unsetenv("MAPART_MONGO_DB")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MongoDatabase != "history_test" {
		t.Errorf("MongoDatabase = %q", cfg.MongoDatabase)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing file should be ignored: %v", err)
	}
}
