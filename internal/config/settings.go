package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultLogLevel          = "info"
	defaultTitle             = "📝ToDo List App📝"
	defaultOwner             = "Abdali khan"
	defaultDescriptionHeight = 5
	minDescriptionHeight     = 3
	maxDescriptionHeight     = 12
)

const (
	IDSourceClock    = "clock"
	IDSourceSequence = "sequence"
)

type Config struct {
	Logging LoggingConfig `toml:"logging"`
	UI      UIConfig      `toml:"ui"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type UIConfig struct {
	Title         string            `toml:"title"`
	Owner         string            `toml:"owner"`
	ConfirmDelete bool              `toml:"confirm_delete"`
	Preview       *bool             `toml:"preview"`
	IDSource      string            `toml:"id_source"`
	Form          UIFormConfig      `toml:"form"`
	Keybindings   UIKeybindingsPath `toml:"keybindings"`
}

type UIFormConfig struct {
	DescriptionHeight int `toml:"description_height"`
}

type UIKeybindingsPath struct {
	Path string `toml:"path"`
}

func DefaultConfig() Config {
	preview := true
	return Config{
		Logging: LoggingConfig{Level: defaultLogLevel},
		UI: UIConfig{
			Title:    defaultTitle,
			Owner:    defaultOwner,
			Preview:  &preview,
			IDSource: IDSourceClock,
			Form: UIFormConfig{
				DescriptionHeight: defaultDescriptionHeight,
			},
		},
	}
}

// Load reads the config file at the default location. A missing or empty
// file yields the defaults.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Config, error) {
	cfg := DefaultConfig()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

func (c Config) Title() string {
	title := strings.TrimSpace(c.UI.Title)
	if title == "" {
		return defaultTitle
	}
	return title
}

func (c Config) Owner() string {
	owner := strings.TrimSpace(c.UI.Owner)
	if owner == "" {
		return defaultOwner
	}
	return owner
}

func (c Config) ConfirmDeleteEnabled() bool {
	return c.UI.ConfirmDelete
}

func (c Config) PreviewEnabled() bool {
	if c.UI.Preview == nil {
		return true
	}
	return *c.UI.Preview
}

func (c Config) IDSource() string {
	switch strings.ToLower(strings.TrimSpace(c.UI.IDSource)) {
	case IDSourceSequence:
		return IDSourceSequence
	default:
		return IDSourceClock
	}
}

func (c Config) DescriptionHeight() int {
	height := c.UI.Form.DescriptionHeight
	if height <= 0 {
		return defaultDescriptionHeight
	}
	return min(max(height, minDescriptionHeight), maxDescriptionHeight)
}

func (c Config) ResolveKeybindingsPath() (string, error) {
	path := strings.TrimSpace(c.UI.Keybindings.Path)
	if path == "" {
		return KeybindingsPath()
	}
	return resolveConfigPath(path)
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}
