package main

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"jotter/internal/app"
	"jotter/internal/config"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"

	configScopeCore        = "core"
	configScopeUI          = "ui"
	configScopeKeybindings = "keybindings"
)

type configOutput struct {
	ConfigPath      string                  `json:"config_path,omitempty" toml:"config_path,omitempty"`
	LogPath         string                  `json:"log_path,omitempty" toml:"log_path,omitempty"`
	KeybindingsPath string                  `json:"keybindings_path,omitempty" toml:"keybindings_path,omitempty"`
	Logging         *effectiveLoggingConfig `json:"logging,omitempty" toml:"logging,omitempty"`
	UI              *effectiveUIConfig      `json:"ui,omitempty" toml:"ui,omitempty"`
	Keybindings     map[string]string       `json:"keybindings,omitempty" toml:"keybindings,omitempty"`
}

type coreConfigOutput struct {
	ConfigPath string                 `json:"config_path" toml:"config_path"`
	LogPath    string                 `json:"log_path" toml:"log_path"`
	Logging    effectiveLoggingConfig `json:"logging" toml:"logging"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

type effectiveUIConfig struct {
	Title         string                       `json:"title" toml:"title"`
	Owner         string                       `json:"owner" toml:"owner"`
	ConfirmDelete bool                         `json:"confirm_delete" toml:"confirm_delete"`
	Preview       bool                         `json:"preview" toml:"preview"`
	IDSource      string                       `json:"id_source" toml:"id_source"`
	Form          effectiveUIFormConfig        `json:"form" toml:"form"`
	Keybindings   effectiveUIKeybindingsConfig `json:"keybindings" toml:"keybindings"`
}

type effectiveUIFormConfig struct {
	DescriptionHeight int `json:"description_height" toml:"description_height"`
}

type effectiveUIKeybindingsConfig struct {
	Path string `json:"path,omitempty" toml:"path,omitempty"`
}

type configOptions struct {
	defaults bool
	format   string
	scopes   []string
}

func newConfigCommand(wiring commandWiring, configPath *string) *cobra.Command {
	opts := configOptions{}
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print configuration (effective or defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.OutOrStdout(), *configPath, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.defaults, "default", false, "print default config values")
	cmd.Flags().StringVar(&opts.format, "format", configFormatJSON, "output format: json|toml")
	cmd.Flags().StringSliceVar(&opts.scopes, "scope", nil, "scope to print: core|ui|keybindings|all (repeatable)")
	return cmd
}

func runConfig(out io.Writer, configPath string, opts configOptions) error {
	format, err := resolveConfigFormat(opts.format)
	if err != nil {
		return err
	}
	scopes, err := resolveConfigScopes(opts.scopes)
	if err != nil {
		return err
	}
	payload, err := buildConfigOutput(configPath, opts.defaults, scopes)
	if err != nil {
		return err
	}
	return writeConfigOutput(out, format, projectedConfigPayload(payload, scopes))
}

func buildConfigOutput(configPath string, defaults bool, scopes map[string]struct{}) (configOutput, error) {
	out := configOutput{}
	cfg, err := loadConfig(configPath, defaults)
	if err != nil {
		return configOutput{}, err
	}

	keybindingsPath, err := cfg.ResolveKeybindingsPath()
	if err != nil {
		return configOutput{}, err
	}

	if scopeSelected(scopes, configScopeCore) {
		path := configPath
		if path == "" {
			if path, err = config.ConfigPath(); err != nil {
				return configOutput{}, err
			}
		}
		logPath, err := config.UILogPath()
		if err != nil {
			return configOutput{}, err
		}
		out.ConfigPath = path
		out.LogPath = logPath
		out.Logging = &effectiveLoggingConfig{Level: cfg.LogLevel()}
	}

	if scopeSelected(scopes, configScopeUI) {
		out.KeybindingsPath = keybindingsPath
		out.UI = &effectiveUIConfig{
			Title:         cfg.Title(),
			Owner:         cfg.Owner(),
			ConfirmDelete: cfg.ConfirmDeleteEnabled(),
			Preview:       cfg.PreviewEnabled(),
			IDSource:      cfg.IDSource(),
			Form: effectiveUIFormConfig{
				DescriptionHeight: cfg.DescriptionHeight(),
			},
			Keybindings: effectiveUIKeybindingsConfig{
				Path: keybindingsPath,
			},
		}
	}

	if scopeSelected(scopes, configScopeKeybindings) {
		bindings := app.DefaultKeybindings()
		if !defaults {
			bindings, err = app.LoadKeybindings(keybindingsPath)
			if err != nil {
				return configOutput{}, err
			}
		}
		out.Keybindings = bindings.Bindings()
	}

	return out, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

// projectedConfigPayload unwraps a single selected scope so its output can
// be pasted back into config.toml or keybindings.json.
func projectedConfigPayload(payload configOutput, scopes map[string]struct{}) any {
	if len(scopes) != 1 {
		return payload
	}
	switch {
	case scopeSelected(scopes, configScopeKeybindings):
		if payload.Keybindings == nil {
			return map[string]string{}
		}
		return payload.Keybindings
	case scopeSelected(scopes, configScopeUI):
		if payload.UI == nil {
			return effectiveUIConfig{}
		}
		return map[string]effectiveUIConfig{"ui": *payload.UI}
	case scopeSelected(scopes, configScopeCore):
		out := coreConfigOutput{
			ConfigPath: payload.ConfigPath,
			LogPath:    payload.LogPath,
			Logging:    effectiveLoggingConfig{Level: "info"},
		}
		if payload.Logging != nil {
			out.Logging = *payload.Logging
		}
		return out
	}
	return payload
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}

func allConfigScopes() map[string]struct{} {
	return map[string]struct{}{
		configScopeCore:        {},
		configScopeUI:          {},
		configScopeKeybindings: {},
	}
}

func resolveConfigScopes(values []string) (map[string]struct{}, error) {
	if len(values) == 0 {
		return allConfigScopes(), nil
	}
	out := map[string]struct{}{}
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			scope, err := normalizeConfigScope(part)
			if err != nil {
				return nil, err
			}
			if scope == "all" {
				return allConfigScopes(), nil
			}
			out[scope] = struct{}{}
		}
	}
	return out, nil
}

func normalizeConfigScope(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "all":
		return "all", nil
	case configScopeCore, "logging":
		return configScopeCore, nil
	case configScopeUI:
		return configScopeUI, nil
	case configScopeKeybindings, "keys":
		return configScopeKeybindings, nil
	default:
		return "", errors.New("invalid scope: must be core, ui, keybindings, or all")
	}
}

func scopeSelected(scopes map[string]struct{}, scope string) bool {
	_, ok := scopes[scope]
	return ok
}
