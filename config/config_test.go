package config_test

import (
	"testing"
	"time"

	"task-prioritizer/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPServer.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTPServer.Port)
	}
	if cfg.Prioritizer.DefaultEstimate != "20 minutes" || cfg.Prioritizer.DefaultDue != "in 1 year" {
		t.Errorf("intake defaults = %q/%q", cfg.Prioritizer.DefaultEstimate, cfg.Prioritizer.DefaultDue)
	}
	if cfg.Export.MaxBlock != 8*time.Hour {
		t.Errorf("MaxBlock = %v, want 8h", cfg.Export.MaxBlock)
	}
	if cfg.Storage.SQLitePath != "tasks.db" {
		t.Errorf("SQLitePath = %q", cfg.Storage.SQLitePath)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PRIORITIZER_TIMEZONE", "Asia/Ho_Chi_Minh")
	t.Setenv("EXPORT_MAX_BLOCK", "2h")
	t.Setenv("GOOGLE_CALENDAR_CREDENTIALS", "/secrets/creds.json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Prioritizer.Timezone != "Asia/Ho_Chi_Minh" {
		t.Errorf("Timezone = %q", cfg.Prioritizer.Timezone)
	}
	if cfg.Export.MaxBlock != 2*time.Hour {
		t.Errorf("MaxBlock = %v, want 2h", cfg.Export.MaxBlock)
	}
	if cfg.GoogleCalendar.CredentialsPath != "/secrets/creds.json" {
		t.Errorf("CredentialsPath = %q", cfg.GoogleCalendar.CredentialsPath)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad timezone", "PRIORITIZER_TIMEZONE", "Mars/Olympus"},
		{"zero max block", "EXPORT_MAX_BLOCK", "0s"},
		{"port out of range", "HTTP_SERVER_PORT", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := config.Load(); err == nil {
				t.Errorf("Load should fail with %s=%s", tt.key, tt.value)
			}
		})
	}
}
