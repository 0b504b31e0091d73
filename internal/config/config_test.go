package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("a missing config file must not fail: %v", err)
	}
	if cfg.Forge.Provider != "github" {
		t.Fatalf("expected default provider github, got %q", cfg.Forge.Provider)
	}
	if cfg.Log.Path != DefaultLogPath {
		t.Fatalf("expected default log path, got %q", cfg.Log.Path)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{
		"channels": {
			"staff_url": "https://discord.test/staff",
			"external_url": "https://discord.test/external"
		},
		"forge": {"token": "tok", "host": "github.mycompany.com"},
		"log": {"path": "/var/log/hookline.log"}
	}`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Channels.StaffURL != "https://discord.test/staff" {
		t.Fatalf("unexpected staff url %q", cfg.Channels.StaffURL)
	}
	if cfg.Forge.Host != "github.mycompany.com" {
		t.Fatalf("unexpected forge host %q", cfg.Forge.Host)
	}
	if cfg.Log.Path != "/var/log/hookline.log" {
		t.Fatalf("unexpected log path %q", cfg.Log.Path)
	}
	if cfg.Forge.Provider != "github" {
		t.Fatal("unset keys keep their defaults")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOOKLINE_CHANNELS_STAFF_URL", "https://discord.test/env-staff")
	t.Setenv("HOOKLINE_FORGE_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Channels.StaffURL != "https://discord.test/env-staff" {
		t.Fatalf("env override not applied: %q", cfg.Channels.StaffURL)
	}
	if cfg.Forge.Token != "env-token" {
		t.Fatalf("env override not applied: %q", cfg.Forge.Token)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"channels":`), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Channels: ChannelsConfig{
			StaffURL:    "https://discord.test/staff",
			ExternalURL: "https://discord.test/external",
		},
		Forge: ForgeConfig{Token: "tok"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("complete config must validate: %v", err)
	}

	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing staff url", func(c *Config) { c.Channels.StaffURL = "" }},
		{"missing external url", func(c *Config) { c.Channels.ExternalURL = "" }},
		{"missing token", func(c *Config) { c.Forge.Token = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			broken := *cfg
			tc.mutate(&broken)
			if err := broken.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
