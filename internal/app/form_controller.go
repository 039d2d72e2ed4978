package app

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"jotter/internal/sanitize"
)

const (
	titlePlaceholder       = "Note title..."
	descriptionPlaceholder = "Note desc..."
	minFormWidth           = 24
)

type formField int

const (
	formFieldNone formField = iota
	formFieldTitle
	formFieldDescription
	formFieldSubmit
)

// FormController renders the note entry form. It holds widget state only;
// the values it shows are mirrored into the notes session by the model.
type FormController struct {
	title       textinput.Model
	description textarea.Model
	width       int
	height      int
}

func NewFormController(width, descriptionHeight int) *FormController {
	title := textinput.New()
	title.Placeholder = titlePlaceholder
	title.Prompt = ""
	title.CharLimit = sanitize.TitleMaxRunes

	description := textarea.New()
	description.Placeholder = descriptionPlaceholder
	description.Prompt = ""
	description.ShowLineNumbers = false
	description.CharLimit = 0

	f := &FormController{title: title, description: description, height: max(1, descriptionHeight)}
	f.Resize(width)
	return f
}

// Resize sets the outer width of the form box.
func (f *FormController) Resize(width int) {
	f.width = max(width, minFormWidth)
	inner := f.innerWidth()
	// textinput draws its cursor one cell past the width
	f.title.SetWidth(max(1, inner-1))
	f.description.SetWidth(inner)
	f.description.SetHeight(f.height)
}

func (f *FormController) innerWidth() int {
	return max(1, f.width-2-2*formPaddingHorizontal)
}

func (f *FormController) SetValues(title, description string) {
	if f.title.Value() != title {
		f.title.SetValue(title)
		f.title.CursorEnd()
	}
	if f.description.Value() != description {
		f.description.SetValue(description)
	}
}

func (f *FormController) Title() string {
	return f.title.Value()
}

func (f *FormController) Description() string {
	return f.description.Value()
}

// Focus moves the text cursor to field; formFieldSubmit and formFieldNone
// leave both inputs blurred.
func (f *FormController) Focus(field formField) tea.Cmd {
	f.title.Blur()
	f.description.Blur()
	switch field {
	case formFieldTitle:
		return f.title.Focus()
	case formFieldDescription:
		return f.description.Focus()
	}
	return nil
}

func (f *FormController) UpdateTitle(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.title, cmd = f.title.Update(msg)
	return cmd
}

func (f *FormController) UpdateDescription(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.description, cmd = f.description.Update(msg)
	return cmd
}

// View renders the bordered form and returns the line index of the submit
// button within it.
func (f *FormController) View(submitLabel string, focused formField) (string, int) {
	lines := []string{
		labelStyle.Render("Title"),
		f.title.View(),
		"",
		labelStyle.Render("Description"),
	}
	lines = append(lines, strings.Split(f.description.View(), "\n")...)
	lines = append(lines, "")
	submitLine := len(lines)
	style := submitStyle
	if focused == formFieldSubmit {
		style = submitFocusedStyle
	}
	lines = append(lines, style.Render(submitLabel))

	border := formBorderStyle
	if focused != formFieldNone {
		border = formBorderFocusedStyle
	}
	box := border.Render(padLines(lines, f.innerWidth()))
	// one row for the top border
	return box, submitLine + 1
}

// submitOffsetX is the column of the submit button inside the form box.
func (f *FormController) submitOffsetX() int {
	return 1 + formPaddingHorizontal
}
