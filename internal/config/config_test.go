package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "admin_user: misterbista\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.AuthTimeoutSeconds != defaultAuthTimeoutSeconds {
		t.Errorf("AuthTimeoutSeconds = %d, want %d", cfg.AuthTimeoutSeconds, defaultAuthTimeoutSeconds)
	}
	if cfg.DSN == "" || cfg.RedisURL == "" {
		t.Error("expected DSN and RedisURL to be assembled from defaults")
	}
}

func TestLoadAliasKeys(t *testing.T) {
	path := writeConfig(t, `
admin_username: MisterBista
database:
  host: db.internal
  port: 3307
  username: blog
  password: s3cret
  name: blogdb
redis:
  host: cache.internal
  db: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminUser != "MisterBista" {
		t.Errorf("AdminUser = %q, want alias value", cfg.AdminUser)
	}
	wantDSN := "blog:s3cret@tcp(db.internal:3307)/blogdb?charset=utf8mb4&loc=Local&parseTime=True"
	if cfg.DSN != wantDSN {
		t.Errorf("DSN = %q, want %q", cfg.DSN, wantDSN)
	}
	if cfg.RedisURL != "redis://cache.internal:6379/2" {
		t.Errorf("RedisURL = %q", cfg.RedisURL)
	}
}

func TestLoadRequiresAdminUser(t *testing.T) {
	path := writeConfig(t, "port: 9999\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error when admin_user is missing")
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "admin_user: fromfile\n")
	t.Setenv("PORTFOLIO_ADMIN_USER", "fromenv")
	t.Setenv("PORTFOLIO_ENV", "production")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AdminUser != "fromenv" {
		t.Errorf("AdminUser = %q, want env override", cfg.AdminUser)
	}
	if cfg.IsDev() {
		t.Error("expected production mode from env override")
	}
}
