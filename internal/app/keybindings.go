package app

import (
	"encoding/json"
	"errors"
	"os"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
)

const (
	KeyCommandQuit       = "ui.quit"
	KeyCommandAddNote    = "ui.addNote"
	KeyCommandSubmit     = "ui.submit"
	KeyCommandFocusNext  = "ui.focusNext"
	KeyCommandFocusPrev  = "ui.focusPrev"
	KeyCommandLeaveInput = "ui.leaveInput"
	KeyCommandEditNote   = "ui.editNote"
	KeyCommandDeleteNote = "ui.deleteNote"
	KeyCommandCopyNote   = "ui.copyNote"
	KeyCommandActivate   = "ui.activate"
)

var defaultKeybindingByCommand = map[string]string{
	KeyCommandQuit:       "q",
	KeyCommandAddNote:    "a",
	KeyCommandSubmit:     "ctrl+s",
	KeyCommandFocusNext:  "tab",
	KeyCommandFocusPrev:  "shift+tab",
	KeyCommandLeaveInput: "esc",
	KeyCommandEditNote:   "e",
	KeyCommandDeleteNote: "d",
	KeyCommandCopyNote:   "y",
	KeyCommandActivate:   "enter",
}

// Keybindings maps commands to keys. Overridden keys are remapped back to
// the command's default key so handlers only compare against defaults.
type Keybindings struct {
	byCommand map[string]string
	remap     map[string]string
}

type keybindingEntry struct {
	Command string `json:"command"`
	Key     string `json:"key"`
}

func DefaultKeybindings() *Keybindings {
	return NewKeybindings(nil)
}

func NewKeybindings(overrides map[string]string) *Keybindings {
	byCommand := make(map[string]string, len(defaultKeybindingByCommand))
	for command, key := range defaultKeybindingByCommand {
		byCommand[command] = key
	}
	for command, key := range overrides {
		command = strings.TrimSpace(command)
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, ok := defaultKeybindingByCommand[command]; !ok {
			continue
		}
		byCommand[command] = key
	}
	remap := map[string]string{}
	ambiguous := map[string]struct{}{}
	for _, command := range KnownKeybindingCommands() {
		defaultKey := defaultKeybindingByCommand[command]
		key := byCommand[command]
		if key == defaultKey {
			continue
		}
		if _, bad := ambiguous[key]; bad {
			continue
		}
		if existing, ok := remap[key]; ok && existing != defaultKey {
			delete(remap, key)
			ambiguous[key] = struct{}{}
			continue
		}
		remap[key] = defaultKey
	}
	return &Keybindings{byCommand: byCommand, remap: remap}
}

// LoadKeybindings reads JSON overrides from path. Both an object of
// command→key and an array of {command, key} entries are accepted. A missing
// file yields the defaults.
func LoadKeybindings(path string) (*Keybindings, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return DefaultKeybindings(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultKeybindings(), nil
		}
		return nil, err
	}
	overrides, err := parseKeybindingOverrides(data)
	if err != nil {
		return nil, err
	}
	return NewKeybindings(overrides), nil
}

func (k *Keybindings) KeyFor(command string) string {
	command = strings.TrimSpace(command)
	if k != nil {
		if key := strings.TrimSpace(k.byCommand[command]); key != "" {
			return key
		}
	}
	return defaultKeybindingByCommand[command]
}

func (k *Keybindings) Bindings() map[string]string {
	out := make(map[string]string, len(defaultKeybindingByCommand))
	for _, command := range KnownKeybindingCommands() {
		out[command] = k.KeyFor(command)
	}
	return out
}

func (k *Keybindings) Remap(key string) string {
	key = strings.TrimSpace(key)
	if k == nil || key == "" {
		return key
	}
	if canonical, ok := k.remap[key]; ok && canonical != "" {
		return canonical
	}
	return key
}

// Matches reports whether msg triggers command, either through its bound
// key or through the command's default key.
func (k *Keybindings) Matches(msg tea.KeyMsg, command string) bool {
	pressed := strings.TrimSpace(msg.String())
	if pressed == "" {
		return false
	}
	if bound := k.KeyFor(command); bound != "" && pressed == bound {
		return true
	}
	canonical := defaultKeybindingByCommand[command]
	return canonical != "" && k.Remap(pressed) == canonical
}

func parseKeybindingOverrides(data []byte) (map[string]string, error) {
	data = []byte(strings.TrimSpace(string(data)))
	if len(data) == 0 {
		return nil, nil
	}
	out := map[string]string{}
	if data[0] == '[' {
		var entries []keybindingEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, err
		}
		for _, entry := range entries {
			out[strings.TrimSpace(entry.Command)] = strings.TrimSpace(entry.Key)
		}
		return out, nil
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for command, key := range raw {
		out[strings.TrimSpace(command)] = strings.TrimSpace(key)
	}
	return out, nil
}

func KnownKeybindingCommands() []string {
	commands := make([]string, 0, len(defaultKeybindingByCommand))
	for command := range defaultKeybindingByCommand {
		commands = append(commands, command)
	}
	sort.Strings(commands)
	return commands
}
