package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"jotter/internal/types"
)

func stubClipboard(t *testing.T, system, osc func(string) error) {
	t.Helper()
	origWriteAll := clipboardWriteAll
	origWriteOSC52 := clipboardWriteOSC52
	t.Cleanup(func() {
		clipboardWriteAll = origWriteAll
		clipboardWriteOSC52 = origWriteOSC52
	})
	clipboardWriteAll = system
	clipboardWriteOSC52 = osc
}

func TestCopyTextToClipboardUsesSystemBackend(t *testing.T) {
	fallbackCalled := false
	stubClipboard(t,
		func(string) error { return nil },
		func(string) error {
			fallbackCalled = true
			return nil
		},
	)

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodSystem {
		t.Fatalf("expected system method, got %v", method)
	}
	if fallbackCalled {
		t.Fatalf("expected no OSC52 fallback call")
	}
}

func TestCopyTextToClipboardFallsBackToOSC52(t *testing.T) {
	fallbackCalled := false
	stubClipboard(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error {
			fallbackCalled = true
			return nil
		},
	)

	method, err := copyTextToClipboard("hello")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if method != clipboardMethodOSC52 {
		t.Fatalf("expected OSC52 method, got %v", method)
	}
	if !fallbackCalled {
		t.Fatalf("expected OSC52 fallback call")
	}
}

func TestCopyTextToClipboardHelpfulErrorWhenDisplayMissing(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	stubClipboard(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error { return errors.New("open /dev/tty: no such device") },
	)

	_, err := copyTextToClipboard("hello")
	if err == nil {
		t.Fatalf("expected copy error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "no GUI clipboard available") {
		t.Fatalf("expected no-display guidance, got %q", msg)
	}
	if !strings.Contains(msg, "OSC52 fallback failed") {
		t.Fatalf("expected OSC52 fallback details, got %q", msg)
	}
}

func TestCopyTextToClipboardHumanizesHelperExit(t *testing.T) {
	t.Setenv("DISPLAY", ":0")
	stubClipboard(t,
		func(string) error { return errors.New("exit status 1") },
		func(string) error { return errors.New("no tty") },
	)

	_, err := copyTextToClipboard("hello")
	if err == nil || !strings.Contains(err.Error(), "clipboard helper exited with status 1") {
		t.Fatalf("expected humanized helper error, got %v", err)
	}
}

func TestWriteOSC52ClipboardDisabledByEnv(t *testing.T) {
	t.Setenv("TERM", "xterm-256color")
	t.Setenv("JOTTER_DISABLE_OSC52", "yes")

	err := writeOSC52Clipboard("hello")
	if err == nil || !strings.Contains(err.Error(), "OSC52 unavailable") {
		t.Fatalf("expected OSC52 to be disabled, got %v", err)
	}
}

func TestWriteOSC52SequenceWrapsForScreen(t *testing.T) {
	t.Setenv("TMUX", "")
	t.Setenv("TERM", "screen-256color")

	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "hello"); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bP") {
		t.Fatalf("expected DCS passthrough for screen, got %q", buf.String())
	}
}

func TestWriteOSC52SequenceSendsBothFormsInTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	t.Setenv("TERM", "tmux-256color")

	var buf bytes.Buffer
	if err := writeOSC52Sequence(&buf, "hello"); err != nil {
		t.Fatalf("writeOSC52Sequence: %v", err)
	}
	if got := strings.Count(buf.String(), "]52;"); got != 2 {
		t.Fatalf("expected plain and tmux sequences, got %d in %q", got, buf.String())
	}
}

func TestNoteClipboardText(t *testing.T) {
	got := noteClipboardText(types.Note{ID: 1, Title: " Buy milk ", Description: "2%\n"})
	if got != "Buy milk\n\n2%" {
		t.Fatalf("unexpected clipboard text %q", got)
	}
}
