package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestPaths(t *testing.T) {
	t.Setenv(homeEnvName, "")
	t.Setenv("HOME", filepath.Join(t.TempDir(), "home"))

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if !strings.HasSuffix(dataDir, ".jotter") {
		t.Fatalf("unexpected data dir: %s", dataDir)
	}

	configPath, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath: %v", err)
	}
	if !strings.HasSuffix(configPath, filepath.Join(".jotter", "config.toml")) {
		t.Fatalf("unexpected config path: %s", configPath)
	}

	keybindingsPath, err := KeybindingsPath()
	if err != nil {
		t.Fatalf("KeybindingsPath: %v", err)
	}
	if !strings.HasSuffix(keybindingsPath, filepath.Join(".jotter", "keybindings.json")) {
		t.Fatalf("unexpected keybindings path: %s", keybindingsPath)
	}

	logPath, err := UILogPath()
	if err != nil {
		t.Fatalf("UILogPath: %v", err)
	}
	if !strings.HasSuffix(logPath, filepath.Join(".jotter", "ui.log")) {
		t.Fatalf("unexpected log path: %s", logPath)
	}
}

func TestDataDirHonorsOverride(t *testing.T) {
	override := filepath.Join(t.TempDir(), "custom")
	t.Setenv(homeEnvName, override)

	dataDir, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	if dataDir != override {
		t.Fatalf("expected override %q, got %q", override, dataDir)
	}
}
