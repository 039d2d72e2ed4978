package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestFormControllerViewPlacesSubmitLine(t *testing.T) {
	form := NewFormController(40, 4)
	view, submitLine := form.View("Add", formFieldNone)

	lines := strings.Split(xansi.Strip(view), "\n")
	if submitLine >= len(lines) {
		t.Fatalf("submit line %d out of range (%d lines)", submitLine, len(lines))
	}
	if !strings.Contains(lines[submitLine], "Add") {
		t.Fatalf("expected submit label on line %d, got %q", submitLine, lines[submitLine])
	}
	if !strings.Contains(xansi.Strip(view), titlePlaceholder) {
		t.Fatalf("expected title placeholder in view")
	}
}

func TestFormControllerViewKeepsWidth(t *testing.T) {
	form := NewFormController(40, 4)
	form.SetValues(strings.Repeat("long title ", 10), "desc")
	view, _ := form.View("Update", formFieldTitle)

	for _, line := range strings.Split(xansi.Strip(view), "\n") {
		if w := xansi.StringWidth(line); w > 40 {
			t.Fatalf("line wider than form (%d): %q", w, line)
		}
	}
}

func TestFormControllerSetValues(t *testing.T) {
	form := NewFormController(40, 4)
	form.SetValues("Buy milk", "2%")
	if form.Title() != "Buy milk" || form.Description() != "2%" {
		t.Fatalf("unexpected values %q/%q", form.Title(), form.Description())
	}
	form.SetValues("", "")
	if form.Title() != "" || form.Description() != "" {
		t.Fatalf("expected cleared values")
	}
}

func TestFormControllerResizeHasMinimum(t *testing.T) {
	form := NewFormController(4, 4)
	if form.width != minFormWidth {
		t.Fatalf("expected width clamped to %d, got %d", minFormWidth, form.width)
	}
}
