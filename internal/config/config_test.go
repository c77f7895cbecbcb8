package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_NAME", "DB_SSLMODE",
		"JWT_EXPIRY", "UPLOAD_DIR", "KEEPALIVE_INTERVAL", "PORT", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.DBHost != "localhost" || cfg.DBPort != "5432" {
		t.Errorf("db defaults = %s:%s", cfg.DBHost, cfg.DBPort)
	}
	if cfg.JWTExpiry != 168*time.Hour {
		t.Errorf("JWTExpiry = %s, want 168h", cfg.JWTExpiry)
	}
	if cfg.KeepAliveInterval != 5*time.Minute {
		t.Errorf("KeepAliveInterval = %s, want 5m", cfg.KeepAliveInterval)
	}
	if cfg.Port != "5000" {
		t.Errorf("Port = %s", cfg.Port)
	}
	if cfg.UploadDir != "./uploads" {
		t.Errorf("UploadDir = %s", cfg.UploadDir)
	}
}

func TestLoadOverridesAndDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "crm")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "crm_prod")
	t.Setenv("DB_SSLMODE", "require")
	t.Setenv("JWT_EXPIRY", "24h")

	cfg := Load()
	if cfg.JWTExpiry != 24*time.Hour {
		t.Errorf("JWTExpiry = %s, want 24h", cfg.JWTExpiry)
	}

	want := "host=db.internal user=crm password=s3cret dbname=crm_prod port=6543 sslmode=require TimeZone=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY", "not-a-duration")
	cfg := Load()
	if cfg.JWTExpiry != 168*time.Hour {
		t.Errorf("JWTExpiry = %s, want fallback 168h", cfg.JWTExpiry)
	}
}
