package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validYAML = `
server:
  host: 127.0.0.1
  port: 8080
  mode: test
database:
  driver: sqlite
  sqlite:
    path: data/console.db
log:
  level: info
  format: text
auth:
  jwt_secret: 0123456789abcdef0123456789abcdef
  token_expiry: 12h
geocoder:
  base_url: https://dapi.example.com/v2/local
  api_key: test-key
upload:
  dir: data/uploads
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d; want 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q; want sqlite", cfg.Database.Driver)
	}
	if cfg.Geocoder.BaseURL != "https://dapi.example.com/v2/local" {
		t.Errorf("Geocoder.BaseURL = %q", cfg.Geocoder.BaseURL)
	}
	if cfg.Upload.MaxSizeMB != 10 {
		t.Errorf("Upload.MaxSizeMB default = %d; want 10", cfg.Upload.MaxSizeMB)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__GEOCODER__API_KEY", "env-key")

	cfg, err := Load(writeConfigFile(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d; want env override 9090", cfg.Server.Port)
	}
	if cfg.Geocoder.APIKey != "env-key" {
		t.Errorf("Geocoder.APIKey = %q; want env override", cfg.Geocoder.APIKey)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantSub string
	}{
		{"bad mode", func(c *Config) { c.Server.Mode = "production" }, "server.mode"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"empty host", func(c *Config) { c.Server.Host = " " }, "server.host"},
		{"bad driver", func(c *Config) { c.Database.Driver = "mysql" }, "database.driver"},
		{"sqlite without path", func(c *Config) { c.Database.SQLite.Path = "" }, "database.sqlite.path"},
		{"short jwt secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "jwt_secret"},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, "jwt_secret"},
		{"bad token expiry", func(c *Config) { c.Auth.TokenExpiry = "soon" }, "token_expiry"},
		{"missing geocoder url", func(c *Config) { c.Geocoder.BaseURL = "" }, "geocoder.base_url"},
		{"bad geocoder timeout", func(c *Config) { c.Geocoder.Timeout = "fast" }, "geocoder.timeout"},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfigFile(t, validYAML))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tt.mutate(cfg)
			err = cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_ReleaseMode(t *testing.T) {
	t.Run("geocoder key required", func(t *testing.T) {
		cfg, err := Load(writeConfigFile(t, validYAML))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		cfg.Server.Mode = "release"
		cfg.Geocoder.APIKey = ""
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing geocoder key in release mode")
		}
	})

	t.Run("postgres sslmode must be secure", func(t *testing.T) {
		cfg, err := Load(writeConfigFile(t, validYAML))
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		cfg.Server.Mode = "release"
		cfg.Database.Driver = "postgres"
		cfg.Database.Postgres = PostgresConfig{
			Host: "db", Port: 5432, User: "console", DBName: "console", SSLMode: "disable",
		}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for sslmode=disable in release mode")
		}
	})
}

func TestValidate_Defaults(t *testing.T) {
	cfg, err := Load(writeConfigFile(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Auth.TokenExpiry = ""
	cfg.Upload.Dir = ""
	cfg.Upload.MaxSizeMB = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Auth.TokenExpiry != "12h" {
		t.Errorf("TokenExpiry default = %q; want 12h", cfg.Auth.TokenExpiry)
	}
	if cfg.Upload.Dir != "data/uploads" {
		t.Errorf("Upload.Dir default = %q", cfg.Upload.Dir)
	}
	if cfg.Upload.MaxSizeMB != 10 {
		t.Errorf("Upload.MaxSizeMB default = %d", cfg.Upload.MaxSizeMB)
	}
}
