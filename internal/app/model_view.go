package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

const addNoteLabel = "Add note"

// render draws the whole page and records the clickable zones.
func (m *Model) render() string {
	width := m.viewWidth()
	if m.confirm.IsOpen() {
		block, y := m.confirm.View(width, m.viewHeight())
		return strings.Repeat("\n", y) + block + "\n" + m.statusLine(width)
	}

	header := headerStyle.Width(width).Render(m.title)
	bodyTop := lipgloss.Height(header) + 1
	m.zones = pageZones{}

	button := buttonStyle
	if m.focus == focusAddButton {
		button = buttonFocusedStyle
	}
	buttonView := button.Render(addNoteLabel)
	m.zones.addButton = zone{x: pagePadding, y: bodyTop, width: lipgloss.Width(buttonView), height: 1}

	left := []string{buttonView}
	if m.session.FormVisible() {
		label := m.session.SubmitLabel()
		formView, submitLine := m.form.View(label, m.formFocus())
		left = append(left, "", formView)
		formTop := bodyTop + 2
		m.zones.submit = zone{
			x:      pagePadding + m.form.submitOffsetX(),
			y:      formTop + submitLine,
			width:  lipgloss.Width(submitStyle.Render(label)),
			height: 1,
		}
	}
	leftView := strings.Join(left, "\n")

	var right []string
	var tableView string
	if m.session.TableVisible() {
		tableView = m.table.View()
		right = append(right, tableView)
		if preview := m.renderPreview(); preview != "" {
			right = append(right, "", preview)
		}
	}

	var body string
	tableZone := zone{width: lipgloss.Width(tableView), height: lipgloss.Height(tableView)}
	switch {
	case len(right) == 0:
		body = leftView
	case m.wideLayout():
		body = lipgloss.JoinHorizontal(lipgloss.Top, leftView, strings.Repeat(" ", columnGap), strings.Join(right, "\n"))
		tableZone.x = pagePadding + lipgloss.Width(leftView) + columnGap
		tableZone.y = bodyTop
	default:
		body = leftView + "\n\n" + strings.Join(right, "\n")
		tableZone.x = pagePadding
		tableZone.y = bodyTop + lipgloss.Height(leftView) + 1
	}
	if len(right) > 0 {
		m.zones.table = tableZone
	}

	footer := footerStyle.Width(width).Render(fmt.Sprintf("© %s %d", m.owner, m.now().Year()))
	return strings.Join([]string{
		header,
		"",
		indentBlock(body, pagePadding),
		"",
		footer,
		m.statusLine(width),
	}, "\n")
}

func (m *Model) renderPreview() string {
	if !m.preview {
		return ""
	}
	note, ok := m.table.Selected()
	if !ok {
		return ""
	}
	_, tableWidth := m.columnWidths()
	inner := max(10, tableWidth-2)
	lines := strings.Split(renderMarkdown(note.Description, inner), "\n")
	if len(lines) > previewMaxLines {
		lines = append(lines[:previewMaxLines-1], "…")
	}
	for i, line := range lines {
		lines[i] = truncateToWidth(line, inner)
	}
	return previewBorderStyle.Render(padLines(lines, inner))
}

func (m *Model) statusLine(width int) string {
	toast := m.toastPill(width)
	available := width
	if toast != "" {
		available -= lipgloss.Width(toast) + 1
	}
	hints := helpStyle.Render(truncateToWidth(m.hotkeys.Render(m), max(0, available)))
	if toast == "" {
		return hints
	}
	gap := max(1, width-lipgloss.Width(hints)-lipgloss.Width(toast))
	return hints + strings.Repeat(" ", gap) + toast
}
