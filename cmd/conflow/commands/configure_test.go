package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"conflow/internal/config"
)

func TestConfigure_NonInteractivePrint(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "config.yaml")
	configureNonInteractive = true
	configurePrint = true
	configureYes = false
	configureSets = []string{
		"confluence.base_url=https://example.atlassian.net/wiki",
		"confluence.username=me@example.com",
		"confluence.api_token=secret",
		"confluence.flavor=cloud",
		"export.max_polls=30",
	}
	defer func() { configureSets = nil }()

	buf := &bytes.Buffer{}
	configureCmd.SetOut(buf)

	if err := runConfigure(configureCmd, nil); err != nil {
		t.Fatalf("runConfigure error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "base_url: https://example.atlassian.net/wiki") {
		t.Errorf("expected base_url in printed yaml, got: %s", out)
	}
	if !strings.Contains(out, "max_polls: 30") {
		t.Errorf("expected export settings in printed yaml, got: %s", out)
	}

	// --print must not write the file
	if _, err := os.Stat(configFile); !os.IsNotExist(err) {
		t.Error("expected no file written with --print")
	}
}

func TestConfigure_NonInteractiveSave(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "config.yaml")
	configureNonInteractive = true
	configurePrint = false
	configureYes = true
	configureSets = []string{
		"confluence.base_url=https://example.atlassian.net/wiki",
		"confluence.username=me@example.com",
		"confluence.api_token=secret",
	}
	defer func() { configureSets = nil }()

	configureCmd.SetOut(&bytes.Buffer{})

	if err := runConfigure(configureCmd, nil); err != nil {
		t.Fatalf("runConfigure error: %v", err)
	}

	cfg, err := config.LoadRelaxed(configFile)
	if err != nil {
		t.Fatalf("expected valid saved config: %v", err)
	}
	if cfg.Confluence.Username != "me@example.com" {
		t.Errorf("unexpected saved config: %+v", cfg)
	}

	info, err := os.Stat(configFile)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestConfigure_RejectsUnknownKey(t *testing.T) {
	configFile = filepath.Join(t.TempDir(), "config.yaml")
	configureNonInteractive = true
	configurePrint = true
	configureSets = []string{"mystery.key=v"}
	defer func() { configureSets = nil }()

	err := runConfigure(configureCmd, nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported key") {
		t.Errorf("expected unsupported key error, got: %v", err)
	}
}
