package app

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"
	xansi "github.com/charmbracelet/x/ansi"

	"jotter/internal/types"
)

const (
	editActionText    = "[edit]"
	deleteActionText  = "[delete]"
	actionCellText    = editActionText + " " + deleteActionText
	minIDColumnWidth  = 4
	minTableRows      = 3
	maxTableRows      = 12
	tableHeaderRows   = 2
	tableColumnGutter = 2
)

type tableAction int

const (
	tableActionNone tableAction = iota
	tableActionEdit
	tableActionDelete
)

var tableColumnTitles = [4]string{"No", "Note", "Description", "Action"}

// NotesTable lists notes in insertion order with one selectable row each.
type NotesTable struct {
	table table.Model
	notes []types.Note
	width int
}

func NewNotesTable(width int) *NotesTable {
	keys := table.DefaultKeyMap()
	// d and u belong to note actions
	keys.HalfPageDown = key.NewBinding(key.WithKeys("ctrl+d"))
	keys.HalfPageUp = key.NewBinding(key.WithKeys("ctrl+u"))

	styles := table.DefaultStyles()
	styles.Header = tableHeaderStyle.Padding(0, 1)
	styles.Selected = tableSelectedStyle

	t := &NotesTable{
		table: table.New(
			table.WithKeyMap(keys),
			table.WithStyles(styles),
		),
	}
	t.SetWidth(width)
	t.SetNotes(nil)
	return t
}

func (t *NotesTable) SetWidth(width int) {
	t.width = max(width, 40)
	t.table.SetColumns(t.columns())
	t.table.SetWidth(t.width)
	t.table.SetRows(t.rows())
}

// SetNotes replaces the listed notes, keeping the cursor in range. A table
// that was empty starts on its first row.
func (t *NotesTable) SetNotes(notes []types.Note) {
	wasEmpty := len(t.notes) == 0
	t.notes = append(t.notes[:0], notes...)
	t.table.SetColumns(t.columns())
	t.table.SetRows(t.rows())
	rows := 0
	if len(t.notes) > 0 {
		rows = clamp(len(t.notes), minTableRows, maxTableRows)
	}
	t.table.SetHeight(rows + tableHeaderRows)
	if len(t.notes) == 0 {
		return
	}
	// an empty bubbles table parks its cursor at -1
	switch cursor := t.table.Cursor(); {
	case wasEmpty || cursor < 0:
		t.table.SetCursor(0)
	case cursor >= len(t.notes):
		t.table.SetCursor(len(t.notes) - 1)
	}
}

func (t *NotesTable) Len() int {
	return len(t.notes)
}

func (t *NotesTable) Focus() {
	t.table.Focus()
}

func (t *NotesTable) Blur() {
	t.table.Blur()
}

// Selected returns the note under the cursor.
func (t *NotesTable) Selected() (types.Note, bool) {
	idx := t.table.Cursor()
	if idx < 0 || idx >= len(t.notes) {
		return types.Note{}, false
	}
	return t.notes[idx], true
}

// SelectID moves the cursor to the note with id.
func (t *NotesTable) SelectID(id int64) bool {
	for i, note := range t.notes {
		if note.ID == id {
			t.table.SetCursor(i)
			return true
		}
	}
	return false
}

// SelectIndex moves the cursor to row i.
func (t *NotesTable) SelectIndex(i int) bool {
	if i < 0 || i >= len(t.notes) {
		return false
	}
	t.table.SetCursor(i)
	return true
}

// HitTest maps a point relative to the table's top-left corner to a row and
// the action button under it. Tables with more rows than fit on screen
// scroll, so they report no hit.
func (t *NotesTable) HitTest(x, y int) (int, tableAction, bool) {
	if len(t.notes) == 0 || len(t.notes) > maxTableRows {
		return 0, tableActionNone, false
	}
	row := y - tableHeaderRows
	if row < 0 || row >= len(t.notes) || x < 0 {
		return 0, tableActionNone, false
	}
	columns := t.columns()
	actionX := 1
	for _, col := range columns[:len(columns)-1] {
		actionX += col.Width + tableColumnGutter
	}
	editWidth := xansi.StringWidth(editActionText)
	offset := x - actionX
	switch {
	case offset >= 0 && offset < editWidth:
		return row, tableActionEdit, true
	case offset > editWidth && offset < xansi.StringWidth(actionCellText):
		return row, tableActionDelete, true
	}
	return row, tableActionNone, true
}

func (t *NotesTable) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.table, cmd = t.table.Update(msg)
	return cmd
}

func (t *NotesTable) View() string {
	if len(t.notes) == 0 {
		header := strings.TrimRight(t.table.View(), "\n ")
		return header + "\n" + emptyTableStyle.Render(truncateToWidth("No notes yet.", t.width))
	}
	return t.table.View()
}

func (t *NotesTable) columns() []table.Column {
	idWidth := minIDColumnWidth
	for _, note := range t.notes {
		idWidth = max(idWidth, len(strconv.FormatInt(note.ID, 10)))
	}
	actionWidth := xansi.StringWidth(actionCellText)
	remaining := t.width - idWidth - actionWidth - len(tableColumnTitles)*tableColumnGutter
	remaining = max(remaining, 16)
	titleWidth := remaining / 3
	descriptionWidth := remaining - titleWidth
	return []table.Column{
		{Title: tableColumnTitles[0], Width: idWidth},
		{Title: tableColumnTitles[1], Width: titleWidth},
		{Title: tableColumnTitles[2], Width: descriptionWidth},
		{Title: tableColumnTitles[3], Width: actionWidth},
	}
}

func (t *NotesTable) rows() []table.Row {
	columns := t.columns()
	rows := make([]table.Row, 0, len(t.notes))
	for _, note := range t.notes {
		rows = append(rows, table.Row{
			strconv.FormatInt(note.ID, 10),
			cellText(note.Title, columns[1].Width),
			cellText(note.Description, columns[2].Width),
			actionCellText,
		})
	}
	return rows
}
