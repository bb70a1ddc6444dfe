package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 8080 || cfg.History.Driver != "file" || cfg.Pipeline.Speed != 1 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("level = %v", cfg.SlogLevel())
	}
	if cfg.Sessions.TTL != 30*time.Minute {
		t.Errorf("session ttl = %v", cfg.Sessions.TTL)
	}
}

func TestLoadYAML(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
server:
  port: 9090
  readTimeout: 30s
log:
  level: debug
  format: json
history:
  driver: postgres
database:
  host: db
  port: 5432
  user: legal
  password: pw
  name: analyzer
openai:
  apiKey: sk-file
pipeline:
  speed: 4
sessions:
  ttl: 2h
auth:
  apiKeys:
    web: abc
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != 9090 || cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("level = %v", cfg.SlogLevel())
	}
	if cfg.OpenAI.APIKey != "sk-env" {
		t.Errorf("env should override the file key, got %q", cfg.OpenAI.APIKey)
	}
	if cfg.Auth.APIKeys["web"] != "abc" || cfg.Pipeline.Speed != 4 {
		t.Errorf("auth/pipeline = %+v %+v", cfg.Auth, cfg.Pipeline)
	}
	if cfg.Sessions.TTL != 2*time.Hour || cfg.Sessions.SweepInterval != time.Minute {
		t.Errorf("sessions = %+v", cfg.Sessions)
	}
	if got := cfg.PostgresDSN(); got != "host=db port=5432 user=legal password=pw dbname=analyzer sslmode=disable" {
		t.Errorf("dsn = %q", got)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.History.Driver = "redis"
	if cfg.Validate() == nil {
		t.Error("unknown history driver should fail")
	}
	cfg = Default()
	cfg.Minio.Enabled = true
	if cfg.Validate() == nil {
		t.Error("minio without endpoint should fail")
	}
}
