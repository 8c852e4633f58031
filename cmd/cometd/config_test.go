package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cometd.toml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return path
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://example.my.salesforce.com/cometd/58.0"
access_token = "  token-123  "
channels = ["/topic/foo", " ", "/event/Bar__e"]
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.ServerURL != "https://example.my.salesforce.com/cometd/58.0" {
		t.Fatalf("unexpected server url: %q", cfg.ServerURL)
	}
	if cfg.AccessToken != "token-123" {
		t.Fatalf("unexpected access token: %q", cfg.AccessToken)
	}
	if len(cfg.Channels) != 2 || cfg.Channels[0] != "/topic/foo" || cfg.Channels[1] != "/event/Bar__e" {
		t.Fatalf("unexpected channels: %+v", cfg.Channels)
	}
	if cfg.MaxRetries != 10 {
		t.Fatalf("expected default max retries, got %d", cfg.MaxRetries)
	}
}

func TestLoadConfigMaxRetriesOverride(t *testing.T) {
	path := writeConfig(t, `
server_url = "https://bayeux.local/cometd"
channels = ["/topic/foo"]
max_retries = 3
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("unexpected max retries: %d", cfg.MaxRetries)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{
			name:     "missing server url",
			contents: `channels = ["/topic/foo"]`,
		},
		{
			name:     "no channels",
			contents: `server_url = "https://bayeux.local/cometd"`,
		},
		{
			name: "negative max retries",
			contents: `
server_url = "https://bayeux.local/cometd"
channels = ["/topic/foo"]
max_retries = -1
`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadConfig(writeConfig(t, tc.contents)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load example config: %v", err)
	}
	if cfg.MaxRetries != 3 {
		t.Fatalf("unexpected max retries: %d", cfg.MaxRetries)
	}
	if len(cfg.Channels) != 2 {
		t.Fatalf("unexpected channels: %+v", cfg.Channels)
	}
}
