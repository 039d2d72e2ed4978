package app

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

func (m *Model) showInfoToast(message string) tea.Cmd {
	return m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) tea.Cmd {
	return m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) tea.Cmd {
	return m.showToast(toastLevelError, message)
}

// showToast displays message until toastDuration passes and schedules a
// redraw for when it expires.
func (m *Model) showToast(level toastLevel, message string) tea.Cmd {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = m.now().Add(toastDuration)
	return tea.Tick(toastDuration, func(at time.Time) tea.Msg {
		return toastExpiredMsg{at: at}
	})
}

func (m *Model) toastActive() bool {
	if strings.TrimSpace(m.toastText) == "" {
		return false
	}
	return m.toastUntil.IsZero() || m.now().Before(m.toastUntil)
}

func (m *Model) toastPill(width int) string {
	if !m.toastActive() || width <= 0 {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-4))
	return m.toastStyle().Render(" " + text + " ")
}

func (m *Model) toastStyle() lipgloss.Style {
	switch m.toastLevel {
	case toastLevelWarning:
		return toastWarningStyle
	case toastLevelError:
		return toastErrorStyle
	default:
		return toastInfoStyle
	}
}
