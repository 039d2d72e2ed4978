// Package sanitize strips terminal escape sequences and control characters
// from text pasted into the note form.
package sanitize

import (
	"regexp"
	"strings"
)

var escapePatterns = []*regexp.Regexp{
	// CSI, including SGR mouse reports
	regexp.MustCompile(`\x1b\[[<>?=]?[0-9;]*[A-Za-z@^` + "`" + `~{|}!]`),
	// OSC terminated by BEL or ST
	regexp.MustCompile(`\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`),
	// charset designation
	regexp.MustCompile(`\x1b[()][AB012]`),
	// mouse reports that lost their ESC prefix
	regexp.MustCompile(`\[<[0-9]+;[0-9]+;[0-9]+[Mm]`),
}

type Options struct {
	// KeepNewlines keeps line breaks; otherwise they become NewlineReplacement.
	KeepNewlines       bool
	NewlineReplacement string
	// MaxRunes caps the result; zero means no cap.
	MaxRunes int
}

// TitleMaxRunes is the longest note title the form accepts.
const TitleMaxRunes = 200

// SingleLine fits text for a one-line input such as a note title.
func SingleLine() Options {
	return Options{NewlineReplacement: " ", MaxRunes: TitleMaxRunes}
}

// MultiLine fits text for a multi-line input such as a note description.
func MultiLine() Options {
	return Options{KeepNewlines: true}
}

// RemoveEscapes drops escape sequences and leaves everything else untouched.
func RemoveEscapes(input string) string {
	for _, p := range escapePatterns {
		input = p.ReplaceAllString(input, "")
	}
	return input
}

// Text removes escape sequences and control characters from input. Carriage
// returns are folded into newlines first so CRLF pastes keep one break.
func Text(input string, opts Options) string {
	if input == "" {
		return input
	}
	input = RemoveEscapes(input)
	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	var b strings.Builder
	b.Grow(len(input))
	count := 0
	for _, r := range input {
		if opts.MaxRunes > 0 && count >= opts.MaxRunes {
			break
		}
		switch {
		case r == '\n':
			if opts.KeepNewlines {
				b.WriteRune(r)
				count++
				continue
			}
			for _, rr := range opts.NewlineReplacement {
				if opts.MaxRunes > 0 && count >= opts.MaxRunes {
					break
				}
				b.WriteRune(rr)
				count++
			}
		case r == '\t':
			b.WriteRune(' ')
			count++
		case r < 32 || r == 127:
		default:
			b.WriteRune(r)
			count++
		}
	}
	return b.String()
}
