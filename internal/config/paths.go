package config

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	appDirName  = ".jotter"
	homeEnvName = "JOTTER_HOME"
)

// DataDir returns the base data directory for jotter. JOTTER_HOME wins over
// the home directory default.
func DataDir() (string, error) {
	if override := strings.TrimSpace(os.Getenv(homeEnvName)); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML configuration file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// KeybindingsPath returns the default path to the keybinding overrides file.
func KeybindingsPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "keybindings.json"), nil
}

// UILogPath returns the file the terminal UI logs to.
func UILogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "ui.log"), nil
}
