package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	if err := initConfig(v, filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}

	s := load(v)
	if s.Timeout != 15*time.Second || s.PollInterval != time.Minute {
		t.Errorf("durations = %v / %v", s.Timeout, s.PollInterval)
	}
	if s.LogLevel != "info" || s.LogFormat != "text" || s.RateLimit != 0 {
		t.Errorf("settings = %+v", s)
	}
	if !errors.Is(s.Validate(), ErrNotConfigured) {
		t.Errorf("Validate() = %v, want ErrNotConfigured", s.Validate())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessctl.yaml")
	content := "base_url: https://console.local/\ntimeout: 5s\nrate_limit: 2.5\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := initConfig(v, path); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}
	s := load(v)
	if s.BaseURL != "https://console.local" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
	if s.Timeout != 5*time.Second || s.RateLimit != 2.5 || s.LogLevel != "debug" {
		t.Errorf("settings = %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("ACCESSCTL_BASE_URL", "http://10.0.0.5:8080")

	v := viper.New()
	if err := initConfig(v, filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}
	if got := load(v).BaseURL; got != "http://10.0.0.5:8080" {
		t.Errorf("BaseURL = %q", got)
	}
}

func TestValidateBaseURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://console.local", false},
		{"http://127.0.0.1:3000/api", false},
		{"console.local", true},
		{"ftp://console.local", true},
		{"http://", true},
	}
	for _, tt := range tests {
		if err := ValidateBaseURL(tt.url); (err != nil) != tt.wantErr {
			t.Errorf("ValidateBaseURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestSaveBaseURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accessctl.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	if err := initConfig(v, path); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}
	if err := saveBaseURL(v, "https://console.local/"); err != nil {
		t.Fatalf("saveBaseURL() error: %v", err)
	}

	reread := viper.New()
	if err := initConfig(reread, path); err != nil {
		t.Fatalf("initConfig() error: %v", err)
	}
	s := load(reread)
	if s.BaseURL != "https://console.local" || s.LogLevel != "warn" {
		t.Errorf("settings after save = %+v", s)
	}
}
