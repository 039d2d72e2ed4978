package app

type HotkeyContext int

const (
	HotkeyGlobal HotkeyContext = iota
	HotkeyAddButton
	HotkeyFormInput
	HotkeySubmitButton
	HotkeyTable
	HotkeyConfirm
)

type Hotkey struct {
	Command  string
	Key      string
	Label    string
	Context  HotkeyContext
	Priority int
}

type HotkeyResolver interface {
	ActiveContexts(*Model) []HotkeyContext
}

func DefaultHotkeys() []Hotkey {
	return []Hotkey{
		{Command: KeyCommandFocusNext, Key: "tab", Label: "next", Context: HotkeyGlobal, Priority: 10},
		{Command: KeyCommandQuit, Key: "ctrl+c", Label: "quit", Context: HotkeyGlobal, Priority: 91},
		{Command: KeyCommandActivate, Key: "enter", Label: "add note", Context: HotkeyAddButton, Priority: 20},
		{Command: KeyCommandQuit, Key: "q", Label: "quit", Context: HotkeyAddButton, Priority: 90},
		{Command: KeyCommandSubmit, Key: "ctrl+s", Label: "submit", Context: HotkeyFormInput, Priority: 20},
		{Command: KeyCommandLeaveInput, Key: "esc", Label: "leave form", Context: HotkeyFormInput, Priority: 30},
		{Command: KeyCommandActivate, Key: "enter", Label: "submit", Context: HotkeySubmitButton, Priority: 20},
		{Command: KeyCommandLeaveInput, Key: "esc", Label: "leave form", Context: HotkeySubmitButton, Priority: 30},
		{Command: KeyCommandEditNote, Key: "e", Label: "edit", Context: HotkeyTable, Priority: 20},
		{Command: KeyCommandDeleteNote, Key: "d", Label: "delete", Context: HotkeyTable, Priority: 21},
		{Command: KeyCommandCopyNote, Key: "y", Label: "copy", Context: HotkeyTable, Priority: 22},
		{Command: KeyCommandAddNote, Key: "a", Label: "add note", Context: HotkeyTable, Priority: 23},
		{Key: "j/k/↑/↓", Label: "move", Context: HotkeyTable, Priority: 40},
		{Command: KeyCommandQuit, Key: "q", Label: "quit", Context: HotkeyTable, Priority: 90},
		{Key: "y/enter", Label: "confirm", Context: HotkeyConfirm, Priority: 10},
		{Key: "n/esc", Label: "cancel", Context: HotkeyConfirm, Priority: 11},
	}
}

// ResolveHotkeys rewrites hint keys for commands the user rebound.
func ResolveHotkeys(hotkeys []Hotkey, bindings *Keybindings) []Hotkey {
	out := make([]Hotkey, len(hotkeys))
	for i, hk := range hotkeys {
		if hk.Command != "" && hk.Key == defaultKeybindingByCommand[hk.Command] {
			hk.Key = bindings.KeyFor(hk.Command)
		}
		out[i] = hk
	}
	return out
}

type DefaultHotkeyResolver struct{}

func (r DefaultHotkeyResolver) ActiveContexts(m *Model) []HotkeyContext {
	if m == nil {
		return []HotkeyContext{HotkeyGlobal}
	}
	if m.confirm.IsOpen() {
		return []HotkeyContext{HotkeyConfirm}
	}
	contexts := []HotkeyContext{HotkeyGlobal}
	switch m.focus {
	case focusAddButton:
		contexts = append(contexts, HotkeyAddButton)
	case focusTitle, focusDescription:
		contexts = append(contexts, HotkeyFormInput)
	case focusSubmit:
		contexts = append(contexts, HotkeySubmitButton)
	case focusTable:
		contexts = append(contexts, HotkeyTable)
	}
	return contexts
}
