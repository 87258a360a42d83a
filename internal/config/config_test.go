package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Load()

	if cfg.ServerPort != "5000" {
		t.Fatalf("ServerPort = %q, want 5000", cfg.ServerPort)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("RedisAddr = %q, want empty (cache off by default)", cfg.RedisAddr)
	}
	if cfg.Addr() != ":5000" {
		t.Fatalf("Addr() = %q, want :5000", cfg.Addr())
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/agenda")
	t.Setenv("SERVER_PORT", "8080")

	cfg := Load()

	if cfg.DBUrl != "postgres://u:p@db:5432/agenda" {
		t.Fatalf("DBUrl = %q", cfg.DBUrl)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("Addr() = %q, want :8080", cfg.Addr())
	}
}
