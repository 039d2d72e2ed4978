package app

import "testing"

func TestTruncateToWidth(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "…"},
		{"hello", 0, "hello"},
	}
	for _, tc := range cases {
		if got := truncateToWidth(tc.in, tc.width); got != tc.want {
			t.Fatalf("truncateToWidth(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestCellTextFlattensAndTruncates(t *testing.T) {
	if got := cellText("a\n b\tc", 10); got != "a b c" {
		t.Fatalf("unexpected flattened text %q", got)
	}
	if got := cellText("abcdefghij", 5); got != "abcd…" {
		t.Fatalf("unexpected truncated text %q", got)
	}
}

func TestIndentBlock(t *testing.T) {
	if got := indentBlock("a\nb", 2); got != "  a\n  b" {
		t.Fatalf("unexpected indent %q", got)
	}
}
