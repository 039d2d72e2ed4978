package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"jotter/internal/logging"
	"jotter/internal/notes"
	"jotter/internal/sanitize"
)

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleKey(msg)
		return m.resolveConfirm(choice)
	}

	kb := m.keybindings
	switch {
	case kb.Matches(msg, KeyCommandFocusNext):
		return m.cycleFocus(1)
	case kb.Matches(msg, KeyCommandFocusPrev):
		return m.cycleFocus(-1)
	case kb.Matches(msg, KeyCommandSubmit) && m.session.FormVisible():
		return m.submit()
	}

	switch m.focus {
	case focusTitle:
		switch {
		case kb.Matches(msg, KeyCommandLeaveInput):
			return m.leaveForm()
		case kb.Matches(msg, KeyCommandActivate):
			return m.setFocus(focusDescription)
		}
		return m.forwardToFocused(msg)
	case focusDescription:
		if kb.Matches(msg, KeyCommandLeaveInput) {
			return m.leaveForm()
		}
		return m.forwardToFocused(msg)
	case focusSubmit:
		switch {
		case kb.Matches(msg, KeyCommandLeaveInput):
			return m.leaveForm()
		case kb.Matches(msg, KeyCommandActivate), msg.String() == "space":
			return m.submit()
		}
	case focusAddButton:
		switch {
		case kb.Matches(msg, KeyCommandActivate), kb.Matches(msg, KeyCommandAddNote), msg.String() == "space":
			return m.revealForm()
		case kb.Matches(msg, KeyCommandQuit):
			return tea.Quit
		}
	case focusTable:
		return m.handleTableKey(msg)
	}
	return nil
}

func (m *Model) handleTableKey(msg tea.KeyPressMsg) tea.Cmd {
	kb := m.keybindings
	switch {
	case kb.Matches(msg, KeyCommandQuit):
		return tea.Quit
	case kb.Matches(msg, KeyCommandAddNote):
		return m.revealForm()
	case kb.Matches(msg, KeyCommandEditNote):
		return m.editSelected()
	case kb.Matches(msg, KeyCommandDeleteNote):
		return m.deleteSelected()
	case kb.Matches(msg, KeyCommandCopyNote):
		return m.copySelected()
	case kb.Matches(msg, KeyCommandLeaveInput):
		return m.setFocus(focusAddButton)
	}
	return m.table.Update(msg)
}

func (m *Model) handleClick(msg tea.MouseClickMsg) tea.Cmd {
	if m.confirm.IsOpen() {
		_, choice := m.confirm.HandleMouse(msg, m.viewWidth(), m.viewHeight())
		return m.resolveConfirm(choice)
	}
	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return nil
	}
	// zones are recorded while rendering
	m.render()
	switch {
	case m.zones.addButton.contains(mouse.X, mouse.Y):
		return m.revealForm()
	case m.session.FormVisible() && m.zones.submit.contains(mouse.X, mouse.Y):
		return m.submit()
	case m.session.TableVisible() && m.zones.table.contains(mouse.X, mouse.Y):
		return m.clickTable(mouse.X-m.zones.table.x, mouse.Y-m.zones.table.y)
	}
	return nil
}

func (m *Model) clickTable(x, y int) tea.Cmd {
	row, action, ok := m.table.HitTest(x, y)
	if !ok || !m.table.SelectIndex(row) {
		return nil
	}
	focus := m.setFocus(focusTable)
	switch action {
	case tableActionEdit:
		return tea.Batch(focus, m.editSelected())
	case tableActionDelete:
		return tea.Batch(focus, m.deleteSelected())
	}
	return focus
}

// handlePaste strips escape sequences from pasted text before it reaches
// the focused input. Titles are kept on one line.
func (m *Model) handlePaste(msg tea.PasteMsg) tea.Cmd {
	switch m.focus {
	case focusTitle:
		msg.Content = sanitize.Text(msg.Content, sanitize.SingleLine())
	case focusDescription:
		msg.Content = sanitize.Text(msg.Content, sanitize.MultiLine())
	default:
		return nil
	}
	if msg.Content == "" {
		return nil
	}
	return m.forwardToFocused(msg)
}

func (m *Model) focusOrder() []focusArea {
	order := []focusArea{focusAddButton}
	if m.session.FormVisible() {
		order = append(order, focusTitle, focusDescription, focusSubmit)
	}
	if m.session.TableVisible() {
		order = append(order, focusTable)
	}
	return order
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	order := m.focusOrder()
	current := 0
	for i, area := range order {
		if area == m.focus {
			current = i
			break
		}
	}
	next := (current + delta + len(order)) % len(order)
	return m.setFocus(order[next])
}

func (m *Model) setFocus(area focusArea) tea.Cmd {
	m.focus = area
	if area == focusTable {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
	return m.form.Focus(m.formFocus())
}

func (m *Model) formFocus() formField {
	switch m.focus {
	case focusTitle:
		return formFieldTitle
	case focusDescription:
		return formFieldDescription
	case focusSubmit:
		return formFieldSubmit
	default:
		return formFieldNone
	}
}

func (m *Model) leaveForm() tea.Cmd {
	if m.session.TableVisible() {
		return m.setFocus(focusTable)
	}
	return m.setFocus(focusAddButton)
}

func (m *Model) revealForm() tea.Cmd {
	m.session.RevealForm()
	return m.setFocus(focusTitle)
}

// submit mirrors the form's submit button: the table is revealed on every
// attempt, even one the session ignores.
func (m *Model) submit() tea.Cmd {
	m.session.RevealTable()
	note, outcome := m.session.SubmitForm()
	m.syncForm()
	m.refreshTable()
	switch outcome {
	case notes.OutcomeAdded:
		m.table.SelectID(note.ID)
		return tea.Batch(m.showInfoToast("note added"), m.setFocus(focusTitle))
	case notes.OutcomeUpdated:
		m.table.SelectID(note.ID)
		return tea.Batch(m.showInfoToast("note updated"), m.setFocus(focusTitle))
	}
	return nil
}

func (m *Model) editSelected() tea.Cmd {
	note, ok := m.table.Selected()
	if !ok || !m.session.BeginEdit(note) {
		return nil
	}
	m.syncForm()
	return m.setFocus(focusTitle)
}

func (m *Model) deleteSelected() tea.Cmd {
	note, ok := m.table.Selected()
	if !ok {
		return nil
	}
	if m.confirmDelete {
		m.pendingDeleteID = note.ID
		m.confirm.Open("Delete Note", fmt.Sprintf("Delete note %q?", note.Title), "Delete", "Cancel")
		return nil
	}
	return m.deleteNote(note.ID)
}

func (m *Model) deleteNote(id int64) tea.Cmd {
	removed := m.session.Delete(id)
	m.syncForm()
	m.refreshTable()
	if !removed {
		return nil
	}
	return m.showInfoToast("note deleted")
}

func (m *Model) resolveConfirm(choice confirmChoice) tea.Cmd {
	switch choice {
	case confirmChoiceConfirm:
		id := m.pendingDeleteID
		m.pendingDeleteID = 0
		m.confirm.Close()
		return m.deleteNote(id)
	case confirmChoiceCancel:
		m.pendingDeleteID = 0
		m.confirm.Close()
	}
	return nil
}

func (m *Model) copySelected() tea.Cmd {
	note, ok := m.table.Selected()
	if !ok {
		return nil
	}
	method, err := copyTextToClipboard(noteClipboardText(note))
	if err != nil {
		m.logger.Warn("copy failed", logging.F("id", note.ID), logging.F("err", err))
		return m.showErrorToast("copy failed: " + err.Error())
	}
	m.logger.Debug("note copied", logging.F("id", note.ID), logging.F("method", method))
	if method == clipboardMethodOSC52 {
		return m.showWarningToast("note copied via terminal (OSC52)")
	}
	return m.showInfoToast("note copied")
}
