package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `
confluence:
  base_url: https://test.atlassian.net/wiki
  username: test@example.com
  api_token: secret
  space_key: DOCS
  flavor: cloud
export:
  poll_interval_seconds: 2
  max_polls: 10
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Confluence.BaseURL != "https://test.atlassian.net/wiki" {
		t.Errorf("Unexpected base URL: %s", cfg.Confluence.BaseURL)
	}
	if cfg.Confluence.SpaceKey != "DOCS" {
		t.Errorf("Unexpected space key: %s", cfg.Confluence.SpaceKey)
	}
	if cfg.Confluence.Flavor != FlavorCloud {
		t.Errorf("Unexpected flavor: %s", cfg.Confluence.Flavor)
	}
	if cfg.Export.PollIntervalSeconds != 2 || cfg.Export.MaxPolls != 10 {
		t.Errorf("Unexpected export tuning: %+v", cfg.Export)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempConfig(t, "confluence: [not a map")
	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
}

func TestLoadRequiredFields(t *testing.T) {
	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "missing base_url",
			content: "confluence:\n  username: u\n  api_token: t\n  space_key: S\n",
			wantErr: "base_url",
		},
		{
			name:    "missing username",
			content: "confluence:\n  base_url: https://x\n  api_token: t\n  space_key: S\n",
			wantErr: "username",
		},
		{
			name:    "missing api_token",
			content: "confluence:\n  base_url: https://x\n  username: u\n  space_key: S\n",
			wantErr: "api_token",
		},
		{
			name:    "missing space_key",
			content: "confluence:\n  base_url: https://x\n  username: u\n  api_token: t\n",
			wantErr: "space_key",
		},
		{
			name:    "bad flavor",
			content: "confluence:\n  base_url: https://x\n  username: u\n  api_token: t\n  space_key: S\n  flavor: datacenter\n",
			wantErr: "flavor",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempConfig(t, tc.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error mentioning %q, got: %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadRelaxed(t *testing.T) {
	path := writeTempConfig(t, "confluence:\n  base_url: https://x\n  username: u\n  api_token: t\n")

	cfg, err := LoadRelaxed(path)
	if err != nil {
		t.Fatalf("Expected relaxed load to succeed without space_key, got %v", err)
	}
	if cfg.Confluence.SpaceKey != "" {
		t.Errorf("Expected empty space key, got %s", cfg.Confluence.SpaceKey)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &Config{}
	cfg.Confluence.BaseURL = "https://test.atlassian.net/wiki"
	cfg.Confluence.Username = "test@example.com"
	cfg.Confluence.APIToken = "secret"
	cfg.Confluence.SpaceKey = "DOCS"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected config file to exist, got %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Expected reload to succeed, got %v", err)
	}
	if loaded.Confluence.BaseURL != cfg.Confluence.BaseURL {
		t.Errorf("Round trip changed base URL: %s", loaded.Confluence.BaseURL)
	}
}

func TestResolveConfigPathExplicit(t *testing.T) {
	if got := ResolveConfigPath("/etc/conflow.yaml"); got != "/etc/conflow.yaml" {
		t.Errorf("Expected explicit path to be kept, got %s", got)
	}
}
