package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"jotter/internal/logging"
	"jotter/internal/notes"
)

const (
	defaultWidth             = 100
	defaultHeight            = 32
	defaultDescriptionHeight = 5
	wideLayoutMinWidth       = 100
	leftColumnWidth          = 42
	columnGap                = 2
	previewMaxLines          = 8
	toastDuration            = 3 * time.Second
)

type focusArea int

const (
	focusAddButton focusArea = iota
	focusTitle
	focusDescription
	focusSubmit
	focusTable
)

type Options struct {
	Title             string
	Owner             string
	ConfirmDelete     bool
	Preview           bool
	DescriptionHeight int
	Keybindings       *Keybindings
	Logger            logging.Logger
	Now               func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Title:             "📝ToDo List App📝",
		Owner:             "Abdali khan",
		Preview:           true,
		DescriptionHeight: defaultDescriptionHeight,
	}
}

// Model is the top-level view. It owns the notes session and hands it to the
// form and table only through the session's operations.
type Model struct {
	session         *notes.Session
	form            *FormController
	table           *NotesTable
	confirm         *ConfirmController
	keybindings     *Keybindings
	hotkeys         *HotkeyRenderer
	logger          logging.Logger
	now             func() time.Time
	title           string
	owner           string
	confirmDelete   bool
	preview         bool
	focus           focusArea
	width           int
	height          int
	pendingDeleteID int64
	toastText       string
	toastLevel      toastLevel
	toastUntil      time.Time
	zones           pageZones
}

type zone struct {
	x, y, width, height int
}

func (z zone) contains(x, y int) bool {
	return z.width > 0 && z.height > 0 && x >= z.x && x < z.x+z.width && y >= z.y && y < z.y+z.height
}

type pageZones struct {
	addButton zone
	submit    zone
	table     zone
}

func NewModel(session *notes.Session, opts Options) *Model {
	defaults := DefaultOptions()
	if opts.Title == "" {
		opts.Title = defaults.Title
	}
	if opts.Owner == "" {
		opts.Owner = defaults.Owner
	}
	if opts.DescriptionHeight <= 0 {
		opts.DescriptionHeight = defaults.DescriptionHeight
	}
	if opts.Keybindings == nil {
		opts.Keybindings = DefaultKeybindings()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if session == nil {
		session = notes.NewSession(notes.WithLogger(opts.Logger))
	}

	m := &Model{
		session:       session,
		confirm:       NewConfirmController(),
		keybindings:   opts.Keybindings,
		hotkeys:       NewHotkeyRenderer(ResolveHotkeys(DefaultHotkeys(), opts.Keybindings), DefaultHotkeyResolver{}),
		logger:        opts.Logger,
		now:           opts.Now,
		title:         opts.Title,
		owner:         opts.Owner,
		confirmDelete: opts.ConfirmDelete,
		preview:       opts.Preview,
		focus:         focusAddButton,
	}
	formWidth, tableWidth := m.columnWidths()
	m.form = NewFormController(formWidth, opts.DescriptionHeight)
	m.table = NewNotesTable(tableWidth)
	m.syncForm()
	m.refreshTable()
	return m
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func Run(ctx context.Context, session *notes.Session, opts Options) error {
	model := NewModel(session, opts)
	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case toastExpiredMsg:
		return m, nil
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	case tea.MouseClickMsg:
		return m, m.handleClick(msg)
	case tea.PasteMsg:
		return m, m.handlePaste(msg)
	}
	return m, m.forwardToFocused(msg)
}

func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

func (m *Model) Session() *notes.Session {
	return m.session
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	formWidth, tableWidth := m.columnWidths()
	m.form.Resize(formWidth)
	m.table.SetWidth(tableWidth)
}

func (m *Model) viewWidth() int {
	if m.width <= 0 {
		return defaultWidth
	}
	return m.width
}

func (m *Model) viewHeight() int {
	if m.height <= 0 {
		return defaultHeight
	}
	return m.height
}

func (m *Model) wideLayout() bool {
	return m.viewWidth() >= wideLayoutMinWidth
}

func (m *Model) columnWidths() (formWidth, tableWidth int) {
	content := max(1, m.viewWidth()-2*pagePadding)
	if m.wideLayout() {
		return leftColumnWidth, content - leftColumnWidth - columnGap
	}
	return content, content
}

func (m *Model) syncForm() {
	m.form.SetValues(m.session.Title(), m.session.Description())
}

func (m *Model) refreshTable() {
	m.table.SetNotes(m.session.Notes())
}

func (m *Model) forwardToFocused(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case focusTitle:
		cmd := m.form.UpdateTitle(msg)
		m.session.SetTitle(m.form.Title())
		return cmd
	case focusDescription:
		cmd := m.form.UpdateDescription(msg)
		m.session.SetDescription(m.form.Description())
		return cmd
	}
	return nil
}
