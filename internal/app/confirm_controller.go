package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const (
	confirmMinWidth = 24
	confirmMaxWidth = 60
)

// ConfirmController is a modal yes/no dialog centered on the screen.
type ConfirmController struct {
	active       bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string) {
	if c == nil {
		return
	}
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	*c = ConfirmController{
		active:       true,
		title:        strings.TrimSpace(title),
		message:      strings.TrimSpace(message),
		confirmLabel: confirmLabel,
		cancelLabel:  cancelLabel,
	}
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	*c = ConfirmController{}
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, confirmChoiceCancel
	case "y":
		return true, confirmChoiceConfirm
	case "left", "h":
		c.selected = 0
	case "right", "l":
		c.selected = 1
	case "tab", "shift+tab":
		c.selected = 1 - c.selected
	case "enter":
		if c.selected == 0 {
			return true, confirmChoiceConfirm
		}
		return true, confirmChoiceCancel
	}
	// the dialog is modal, so every key is consumed
	return true, confirmChoiceNone
}

func (c *ConfirmController) HandleMouse(msg tea.MouseMsg, maxWidth, maxHeight int) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	click, ok := msg.(tea.MouseClickMsg)
	if !ok {
		return false, confirmChoiceNone
	}
	mouse := click.Mouse()
	if mouse.Button != tea.MouseLeft {
		return false, confirmChoiceNone
	}
	x, y, width, height := c.layout(maxWidth, maxHeight)
	if mouse.X < x || mouse.X >= x+width || mouse.Y < y || mouse.Y >= y+height {
		return false, confirmChoiceNone
	}
	if mouse.Y != y+height-2 {
		return true, confirmChoiceNone
	}
	contentX := x + 1
	contentWidth := max(1, width-2)
	if mouse.X < contentX || mouse.X >= contentX+contentWidth {
		return true, confirmChoiceNone
	}
	if mouse.X < contentX+contentWidth/2 {
		c.selected = 0
		return true, confirmChoiceConfirm
	}
	c.selected = 1
	return true, confirmChoiceCancel
}

// View renders the dialog already indented to its column and returns the
// row it should start on.
func (c *ConfirmController) View(maxWidth, maxHeight int) (string, int) {
	if c == nil || !c.active {
		return "", 0
	}
	x, y, width, _ := c.layout(maxWidth, maxHeight)
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)

	title := c.title
	if title == "" {
		title = "Confirm"
	}
	lines := []string{dialogHeaderStyle.Render(" " + padToWidth(truncateToWidth(title, contentWidth), contentWidth) + " ")}
	if c.message != "" {
		for _, line := range strings.Split(xansi.Hardwrap(c.message, contentWidth, true), "\n") {
			lines = append(lines, menuDropStyle.Render(" "+padToWidth(truncateToWidth(line, contentWidth), contentWidth)+" "))
		}
	}

	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth
	confirm := padToWidth(truncateToWidth("["+c.confirmLabel+"]", leftWidth), leftWidth)
	cancel := padToWidth(truncateToWidth("["+c.cancelLabel+"]", rightWidth), rightWidth)
	if c.selected == 0 {
		confirm = selectedStyle.Render(confirm)
		cancel = menuDropStyle.Render(cancel)
	} else {
		confirm = menuDropStyle.Render(confirm)
		cancel = selectedStyle.Render(cancel)
	}
	lines = append(lines, " "+confirm+cancel+" ")

	return indentBlock(confirmDialogBorderStyle.Render(strings.Join(lines, "\n")), x), y
}

func (c *ConfirmController) layout(maxWidth, maxHeight int) (int, int, int, int) {
	width := c.dialogWidth()
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	height := c.dialogHeight(width)
	x, y := 0, 0
	if maxWidth > 0 {
		x = max(0, (maxWidth-width)/2)
	}
	if maxHeight > 0 {
		y = max(0, (maxHeight-height)/2)
	}
	return x, y, width, height
}

func (c *ConfirmController) dialogWidth() int {
	contentWidth := max(xansi.StringWidth(c.title), xansi.StringWidth(c.message))
	contentWidth = max(contentWidth, xansi.StringWidth(c.confirmLabel)+xansi.StringWidth(c.cancelLabel)+6)
	return clamp(contentWidth+4, confirmMinWidth, confirmMaxWidth)
}

// dialogHeight counts the border, title, wrapped message, and button rows.
func (c *ConfirmController) dialogHeight(width int) int {
	contentWidth := max(1, width-4)
	height := 4
	if c.message != "" {
		height += len(strings.Split(xansi.Hardwrap(c.message, contentWidth, true), "\n"))
	}
	return height
}
