package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"HOST", "PORT", "ALLOW_ORIGINS", "LOG_LEVEL", "MAX_UPLOAD_MB", "LOG_FILE"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	if cfg.Host != "127.0.0.1" || cfg.Port != 8083 {
		t.Errorf("addr defaults wrong: %+v", cfg)
	}
	if cfg.Addr() != "127.0.0.1:8083" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if cfg.MaxUploadMB != 64 || cfg.LogLevel != "info" {
		t.Errorf("defaults wrong: %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HOST", "0.0.0.0")
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOW_ORIGINS", "http://a.test,http://b.test")

	cfg := Load()
	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
	if len(cfg.AllowOrigins) != 2 || cfg.AllowOrigins[0] != "http://a.test" {
		t.Errorf("origins = %v", cfg.AllowOrigins)
	}
}
