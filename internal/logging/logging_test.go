package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedLogger(out *bytes.Buffer, level Level) *logfmtLogger {
	l := New(out, level).(*logfmtLogger)
	l.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return l
}

func TestLoggerWritesLogfmtLine(t *testing.T) {
	var out bytes.Buffer
	l := fixedLogger(&out, Debug)

	l.Info("note added", F("id", int64(42)), F("title", "Buy milk"))

	assert.Equal(t, `ts=2026-01-02T03:04:05Z level=info msg="note added" id=42 title="Buy milk"`+"\n", out.String())
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var out bytes.Buffer
	l := fixedLogger(&out, Warn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "msg=shown")
	assert.False(t, l.Enabled(Info))
	assert.True(t, l.Enabled(Error))
}

func TestLoggerWithCarriesFields(t *testing.T) {
	var out bytes.Buffer
	l := fixedLogger(&out, Debug).With(F("session_id", "abc"))

	l.Error("copy failed", F("err", errors.New("no display")))

	assert.Contains(t, out.String(), "session_id=abc")
	assert.Contains(t, out.String(), `err="no display"`)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" WARN ":  Warn,
		"warning": Warn,
		"error":   Error,
		"":        Info,
		"bogus":   Info,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseLevel(raw), "raw=%q", raw)
	}
}

func TestNewSessionIDIsUUID(t *testing.T) {
	id := NewSessionID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewSessionID())
}

func TestOpenFileRequiresPath(t *testing.T) {
	_, _, err := OpenFile("  ", Info)
	require.Error(t, err)
}
