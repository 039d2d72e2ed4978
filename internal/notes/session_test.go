package notes

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotter/internal/logging"
	"jotter/internal/types"
)

type repeatingIDs struct{ id int64 }

func (r repeatingIDs) Next() int64 { return r.id }

func newTestSession() *Session {
	return NewSession(WithIDSource(NewSequenceIDs()))
}

func TestSubmitAddsNotesWithUniqueIDs(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 25; i++ {
		_, outcome := s.Submit(fmt.Sprintf("title %d", i), fmt.Sprintf("desc %d", i))
		require.Equal(t, OutcomeAdded, outcome)
	}

	notes := s.Notes()
	require.Len(t, notes, 25)
	seen := map[int64]struct{}{}
	for i, note := range notes {
		_, dup := seen[note.ID]
		require.False(t, dup, "duplicate id %d", note.ID)
		seen[note.ID] = struct{}{}
		assert.Equal(t, fmt.Sprintf("title %d", i), note.Title)
	}
}

func TestSubmitIgnoresEmptyFields(t *testing.T) {
	s := newTestSession()
	s.Submit("keep", "me")
	s.SetTitle("draft title")
	s.SetDescription("")

	cases := [][2]string{{"", "desc"}, {"title", ""}, {"", ""}}
	for _, c := range cases {
		note, outcome := s.Submit(c[0], c[1])
		assert.Equal(t, OutcomeIgnored, outcome)
		assert.Equal(t, types.Note{}, note)
		assert.Equal(t, 1, s.Len())
	}
	assert.Equal(t, "draft title", s.Title(), "ignored submit must not clear the form")
}

func TestSubmitAcceptsWhitespace(t *testing.T) {
	s := newTestSession()
	_, outcome := s.Submit(" ", "\t")
	assert.Equal(t, OutcomeAdded, outcome)
}

func TestSubmitClearsFormOnSuccess(t *testing.T) {
	s := newTestSession()
	s.SetTitle("Buy milk")
	s.SetDescription("2%")

	note, outcome := s.SubmitForm()
	require.Equal(t, OutcomeAdded, outcome)
	assert.Equal(t, "Buy milk", note.Title)
	assert.Empty(t, s.Title())
	assert.Empty(t, s.Description())
}

func TestBeginEditThenSubmitUpdatesInPlace(t *testing.T) {
	s := newTestSession()
	s.Submit("first", "a")
	target, _ := s.Submit("second", "b")
	s.Submit("third", "c")

	require.True(t, s.BeginEdit(target))
	assert.True(t, s.Editing())
	assert.Equal(t, "Update", s.SubmitLabel())
	assert.Equal(t, "second", s.Title())
	assert.Equal(t, "b", s.Description())
	assert.Equal(t, 3, s.Len(), "BeginEdit must not mutate the collection")

	updated, outcome := s.Submit("second!", "b!")
	require.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, target.ID, updated.ID)
	assert.False(t, s.Editing())
	assert.Equal(t, "Add", s.SubmitLabel())

	notes := s.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, types.Note{ID: target.ID, Title: "second!", Description: "b!"}, notes[1])
	assert.Equal(t, "first", notes[0].Title)
	assert.Equal(t, "third", notes[2].Title)
}

func TestBeginEditUsesCollectionValues(t *testing.T) {
	s := newTestSession()
	note, _ := s.Submit("fresh", "value")
	stale := note
	stale.Title = "stale"

	require.True(t, s.BeginEdit(stale))
	assert.Equal(t, "fresh", s.Title())
}

func TestBeginEditIgnoresUnknownNote(t *testing.T) {
	s := newTestSession()
	s.Submit("a", "b")

	assert.False(t, s.BeginEdit(types.Note{ID: 999, Title: "x", Description: "y"}))
	assert.False(t, s.Editing())
	assert.Empty(t, s.Title())
}

func TestDeleteRemovesOnlyMatchingNote(t *testing.T) {
	s := newTestSession()
	a, _ := s.Submit("a", "1")
	b, _ := s.Submit("b", "2")
	c, _ := s.Submit("c", "3")

	require.True(t, s.Delete(b.ID))
	assert.Equal(t, []types.Note{a, c}, s.Notes())

	before := s.Notes()
	assert.False(t, s.Delete(12345))
	assert.Equal(t, before, s.Notes())
}

func TestDeleteClearsFormEvenWhenMissing(t *testing.T) {
	s := newTestSession()
	s.SetTitle("half typed")
	s.SetDescription("thing")

	assert.False(t, s.Delete(7))
	assert.Empty(t, s.Title())
	assert.Empty(t, s.Description())
}

func TestDeleteOfEditTargetEndsEditMode(t *testing.T) {
	s := newTestSession()
	keep, _ := s.Submit("keep", "1")
	gone, _ := s.Submit("gone", "2")

	require.True(t, s.BeginEdit(gone))
	require.True(t, s.Delete(gone.ID))
	assert.False(t, s.Editing())

	_, outcome := s.Submit("new", "3")
	assert.Equal(t, OutcomeAdded, outcome)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, keep, s.Notes()[0])
}

func TestDeleteOfOtherNoteKeepsEditTarget(t *testing.T) {
	s := newTestSession()
	target, _ := s.Submit("target", "1")
	other, _ := s.Submit("other", "2")

	require.True(t, s.BeginEdit(target))
	require.True(t, s.Delete(other.ID))
	assert.True(t, s.Editing())
	assert.Empty(t, s.Title(), "delete clears the form unconditionally")

	got, ok := s.EditTarget()
	require.True(t, ok)
	assert.Equal(t, target.ID, got.ID)
}

func TestBuyMilkScenario(t *testing.T) {
	s := NewSession()
	added, outcome := s.Submit("Buy milk", "2%")
	require.Equal(t, OutcomeAdded, outcome)
	assert.Equal(t, []types.Note{{ID: added.ID, Title: "Buy milk", Description: "2%"}}, s.Notes())

	require.True(t, s.BeginEdit(added))
	_, outcome = s.Submit("Buy milk", "Whole")
	require.Equal(t, OutcomeUpdated, outcome)
	assert.Equal(t, []types.Note{{ID: added.ID, Title: "Buy milk", Description: "Whole"}}, s.Notes())

	require.True(t, s.Delete(added.ID))
	assert.Empty(t, s.Notes())
}

func TestRevealFlagsAreOneWayAndIdempotent(t *testing.T) {
	s := newTestSession()
	assert.False(t, s.FormVisible())
	assert.False(t, s.TableVisible())

	for i := 0; i < 3; i++ {
		s.RevealForm()
		s.RevealTable()
	}
	assert.True(t, s.FormVisible())
	assert.True(t, s.TableVisible())

	s.Submit("a", "b")
	s.Delete(1)
	assert.True(t, s.FormVisible())
	assert.True(t, s.TableVisible())
}

func TestNotesReturnsCopy(t *testing.T) {
	s := newTestSession()
	s.Submit("a", "b")

	notes := s.Notes()
	notes[0].Title = "mutated"
	got, ok := s.Find(notes[0].ID)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)
}

func TestRepeatedSourceIDsStayUnique(t *testing.T) {
	s := NewSession(WithIDSource(repeatingIDs{id: 5}))
	first, _ := s.Submit("a", "1")
	second, _ := s.Submit("b", "2")
	third, _ := s.Submit("c", "3")

	assert.Equal(t, int64(5), first.ID)
	assert.Equal(t, int64(6), second.ID)
	assert.Equal(t, int64(7), third.ID)
}

func TestSessionLogsMutations(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(WithIDSource(NewSequenceIDs()), WithLogger(logging.New(&out, logging.Debug)))

	note, _ := s.Submit("a", "b")
	s.Submit("", "")
	s.Delete(note.ID)

	assert.Contains(t, out.String(), `msg="note added" id=1`)
	assert.Contains(t, out.String(), `msg="submit ignored"`)
	assert.Contains(t, out.String(), `msg="note deleted" id=1`)
}

func TestClockIDsAreMonotonic(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	ids := NewClockIDs(func() time.Time { return frozen })

	first := ids.Next()
	second := ids.Next()
	assert.Equal(t, frozen.UnixMilli(), first)
	assert.Equal(t, first+1, second)
}

func TestClockIDsFollowAdvancingClock(t *testing.T) {
	now := time.UnixMilli(1_000)
	ids := NewClockIDs(func() time.Time { return now })

	assert.Equal(t, int64(1_000), ids.Next())
	now = now.Add(5 * time.Millisecond)
	assert.Equal(t, int64(1_005), ids.Next())
	now = now.Add(-time.Second)
	assert.Equal(t, int64(1_006), ids.Next())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "added", OutcomeAdded.String())
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "ignored", OutcomeIgnored.String())
}
