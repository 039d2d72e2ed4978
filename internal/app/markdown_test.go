package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestRenderMarkdownEmptyInput(t *testing.T) {
	if got := renderMarkdown("\n\n", 40); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestRenderMarkdownFitsWidth(t *testing.T) {
	input := "# Groceries\n\n- milk\n- eggs\n\n" + strings.Repeat("long words wrap ", 20)
	out := xansi.Strip(renderMarkdown(input, 30))

	if !strings.Contains(out, "Groceries") || !strings.Contains(out, "milk") {
		t.Fatalf("expected rendered content, got %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := xansi.StringWidth(line); w > 30 {
			t.Fatalf("line exceeds width 30 (%d): %q", w, line)
		}
	}
}

func TestMarkdownRendererIsCachedPerWidth(t *testing.T) {
	first := markdownRenderer(42)
	second := markdownRenderer(42)
	if first == nil || first != second {
		t.Fatalf("expected cached renderer for the same width")
	}
	if other := markdownRenderer(43); other == first {
		t.Fatalf("expected a separate renderer for another width")
	}
}
