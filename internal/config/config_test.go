package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"MONGO_URI", "DB_NAME", "PORT", "ADMIN_PASSWORD", "ADMIN_TOKEN",
		"AUTH_MODE", "ORDER_PREFIX", "REQUIRE_PHONE", "REQUIRE_PAID_BEFORE_ACCEPT",
		"ACCESS_TOKEN_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := FromEnv()

	if cfg.DBName != "foodfest" {
		t.Fatalf("expected default db name foodfest, got %s", cfg.DBName)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.AdminPassword != "admin123" {
		t.Fatalf("expected default admin password, got %s", cfg.AdminPassword)
	}
	if cfg.AdminToken != "admin-authenticated" {
		t.Fatalf("expected the default static token, got %s", cfg.AdminToken)
	}
	if cfg.AuthMode != AuthModeStatic {
		t.Fatalf("expected static auth mode by default, got %s", cfg.AuthMode)
	}
	if cfg.OrderPrefix != "FF" {
		t.Fatalf("expected FF prefix, got %s", cfg.OrderPrefix)
	}
	if cfg.RequirePhone || cfg.RequirePaidBeforeAccept {
		t.Fatal("policy flags must default to off")
	}
	if cfg.AccessTokenTTL != 720*time.Minute {
		t.Fatalf("expected 720m default TTL, got %s", cfg.AccessTokenTTL)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "other")
	t.Setenv("AUTH_MODE", "JWT")
	t.Setenv("REQUIRE_PHONE", "true")
	t.Setenv("REQUIRE_PAID_BEFORE_ACCEPT", "1")
	t.Setenv("ACCESS_TOKEN_TTL", "30")
	t.Setenv("ORDER_PREFIX", "EV")

	cfg := FromEnv()

	if cfg.DBName != "other" {
		t.Fatalf("expected db name override, got %s", cfg.DBName)
	}
	if cfg.AuthMode != AuthModeJWT {
		t.Fatalf("expected jwt mode (case-insensitive), got %s", cfg.AuthMode)
	}
	if !cfg.RequirePhone || !cfg.RequirePaidBeforeAccept {
		t.Fatal("expected policy flags on")
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m TTL, got %s", cfg.AccessTokenTTL)
	}
	if cfg.OrderPrefix != "EV" {
		t.Fatalf("expected EV prefix, got %s", cfg.OrderPrefix)
	}
}

func TestFromEnvUnknownAuthMode(t *testing.T) {
	t.Setenv("AUTH_MODE", "oauth")

	if cfg := FromEnv(); cfg.AuthMode != AuthModeStatic {
		t.Fatalf("expected fallback to static, got %s", cfg.AuthMode)
	}
}
