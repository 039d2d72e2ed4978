// Package notes holds the in-memory note collection for one UI session and
// the form state that edits it. Views read from a Session and mutate it
// only through its methods.
package notes

import (
	"github.com/go-playground/validator/v10"

	"jotter/internal/logging"
	"jotter/internal/types"
)

type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeAdded
	OutcomeUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeUpdated:
		return "updated"
	default:
		return "ignored"
	}
}

const (
	submitLabelAdd    = "Add"
	submitLabelUpdate = "Update"
)

// draft is the submitted pair. Only emptiness is checked; whitespace counts
// as content.
type draft struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
}

var draftValidate = validator.New()

func (d draft) complete() bool {
	return draftValidate.Struct(d) == nil
}

type Session struct {
	notes        []types.Note
	editID       int64
	editing      bool
	title        string
	description  string
	formVisible  bool
	tableVisible bool
	ids          IDSource
	logger       logging.Logger
}

type Option func(*Session)

func WithIDSource(ids IDSource) Option {
	return func(s *Session) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewSession(opts ...Option) *Session {
	s := &Session{
		ids:    NewClockIDs(nil),
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit adds a note, or updates the edit target when one is set. An empty
// title or description leaves everything untouched, form fields included.
func (s *Session) Submit(title, description string) (types.Note, Outcome) {
	if !(draft{Title: title, Description: description}).complete() {
		s.logger.Debug("submit ignored", logging.F("editing", s.editing))
		return types.Note{}, OutcomeIgnored
	}
	if s.editing {
		id := s.editID
		s.clearEditTarget()
		s.clearForm()
		idx := s.index(id)
		if idx < 0 {
			s.logger.Warn("edit target missing", logging.F("id", id))
			return types.Note{}, OutcomeIgnored
		}
		s.notes[idx].Title = title
		s.notes[idx].Description = description
		s.logger.Debug("note updated", logging.F("id", id))
		return s.notes[idx], OutcomeUpdated
	}
	note := types.Note{ID: s.nextID(), Title: title, Description: description}
	s.notes = append(s.notes, note)
	s.clearForm()
	s.logger.Debug("note added", logging.F("id", note.ID), logging.F("count", len(s.notes)))
	return note, OutcomeAdded
}

// SubmitForm submits the current form field values.
func (s *Session) SubmitForm() (types.Note, Outcome) {
	return s.Submit(s.title, s.description)
}

// Delete removes the note with id and reports whether one was removed. The
// form fields are cleared either way. Deleting the edit target also ends
// edit mode.
func (s *Session) Delete(id int64) bool {
	s.clearForm()
	idx := s.index(id)
	if idx < 0 {
		s.logger.Debug("delete missed", logging.F("id", id))
		return false
	}
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	if s.editing && s.editID == id {
		s.clearEditTarget()
	}
	s.logger.Debug("note deleted", logging.F("id", id), logging.F("count", len(s.notes)))
	return true
}

// BeginEdit loads note into the form and marks it as the edit target. Notes
// not in the collection are ignored.
func (s *Session) BeginEdit(note types.Note) bool {
	idx := s.index(note.ID)
	if idx < 0 {
		return false
	}
	current := s.notes[idx]
	s.editID = current.ID
	s.editing = true
	s.title = current.Title
	s.description = current.Description
	s.logger.Debug("edit started", logging.F("id", current.ID))
	return true
}

func (s *Session) RevealForm() {
	s.formVisible = true
}

func (s *Session) RevealTable() {
	s.tableVisible = true
}

func (s *Session) SetTitle(title string) {
	s.title = title
}

func (s *Session) SetDescription(description string) {
	s.description = description
}

func (s *Session) Title() string       { return s.title }
func (s *Session) Description() string { return s.description }
func (s *Session) FormVisible() bool   { return s.formVisible }
func (s *Session) TableVisible() bool  { return s.tableVisible }
func (s *Session) Editing() bool       { return s.editing }
func (s *Session) Len() int            { return len(s.notes) }

// EditTarget returns the note being edited, if any.
func (s *Session) EditTarget() (types.Note, bool) {
	if !s.editing {
		return types.Note{}, false
	}
	return s.Find(s.editID)
}

func (s *Session) SubmitLabel() string {
	if s.editing {
		return submitLabelUpdate
	}
	return submitLabelAdd
}

// Notes returns a copy of the collection in insertion order.
func (s *Session) Notes() []types.Note {
	out := make([]types.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Session) Find(id int64) (types.Note, bool) {
	idx := s.index(id)
	if idx < 0 {
		return types.Note{}, false
	}
	return s.notes[idx], true
}

func (s *Session) index(id int64) int {
	for i, note := range s.notes {
		if note.ID == id {
			return i
		}
	}
	return -1
}

// nextID asks the source for an id and falls back to one past the current
// maximum if the source repeats itself.
func (s *Session) nextID() int64 {
	id := s.ids.Next()
	if s.index(id) < 0 {
		return id
	}
	var highest int64
	for _, note := range s.notes {
		highest = max(highest, note.ID)
	}
	return highest + 1
}

func (s *Session) clearForm() {
	s.title = ""
	s.description = ""
}

func (s *Session) clearEditTarget() {
	s.editID = 0
	s.editing = false
}
