package stanza

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "Blog" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Blog")
	}
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":3000")
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "content")
	}
	if cfg.ScanTTL != 5*time.Minute {
		t.Errorf("ScanTTL = %v, want %v", cfg.ScanTTL, 5*time.Minute)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("STANZA_ADMINPASSWORD", "hunter2")
	t.Setenv("STANZA_SESSIONSECRET", "s3cret")
	t.Setenv("STANZA_NAME", "Env Site")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AdminPassword != "hunter2" {
		t.Errorf("AdminPassword = %q, want %q", cfg.AdminPassword, "hunter2")
	}
	if cfg.SessionSecret != "s3cret" {
		t.Errorf("SessionSecret = %q, want %q", cfg.SessionSecret, "s3cret")
	}
	if cfg.Name != "Env Site" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Env Site")
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	src := "name: \"File Site\"\nurl: \"https://example.com\"\ncontentDir: \"posts\"\nscanTTL: 2m\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "File Site" {
		t.Errorf("Name = %q, want %q", cfg.Name, "File Site")
	}
	if cfg.URL != "https://example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.ContentDir != "posts" {
		t.Errorf("ContentDir = %q, want %q", cfg.ContentDir, "posts")
	}
	if cfg.ScanTTL != 2*time.Minute {
		t.Errorf("ScanTTL = %v, want %v", cfg.ScanTTL, 2*time.Minute)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Addr != ":3000" {
		t.Errorf("Addr = %q, want %q", cfg.Addr, ":3000")
	}
}

func TestLoadConfigEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("adminPassword: \"from-file\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("STANZA_ADMINPASSWORD", "from-env")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.AdminPassword != "from-env" {
		t.Errorf("AdminPassword = %q, want %q", cfg.AdminPassword, "from-env")
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want a not-found message naming the file", err)
	}
}
