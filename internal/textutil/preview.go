// Package textutil prepares chunk text for terminal display. Chunk
// content is arbitrary pasted data, so everything rendered goes
// through a control-rune scrub first.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const DefaultTabWidth = 4

// zero-width formatting runes that would vanish or reorder text when
// echoed to a terminal.
func isFormattingRune(r rune) bool {
	switch {
	case r == 0x00AD || r == 0x061C || r == 0x180E:
		return true
	case r >= 0x200B && r <= 0x200F:
		return true
	case r >= 0x202A && r <= 0x202E:
		return true
	case r == 0x2028 || r == 0x2029:
		return true
	case r >= 0x2060 && r <= 0x2069:
		return true
	case r == 0xFEFF:
		return true
	}
	return false
}

// SanitizeTerminalText flattens chunk content onto one displayable
// line: line breaks and tabs become spaces, other control runes become
// '?', zero-width formatting runes are dropped.
func SanitizeTerminalText(text string) string {
	clean := true
	for _, r := range text {
		if r < 0x20 || r == 0x7f || isFormattingRune(r) {
			clean = false
			break
		}
	}
	if clean {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case isFormattingRune(r):
			// dropped
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExpandTabs replaces tabs with spaces respecting terminal columns.
func ExpandTabs(text string, tabWidth int) string {
	if tabWidth <= 0 || !strings.ContainsRune(text, '\t') {
		return text
	}

	var b strings.Builder
	column := 0
	for _, r := range text {
		if r == '\t' {
			spaces := tabWidth - (column % tabWidth)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			column += spaces
			continue
		}
		b.WriteRune(r)
		w := runewidth.RuneWidth(r)
		if w < 1 {
			w = 1
		}
		column += w
	}
	return b.String()
}

// DisplayWidth reports the printable width of text accounting for wide
// runes.
func DisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// Preview returns a sanitized single-line preview of chunk content
// bounded to maxWidth terminal columns.
func Preview(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	text = SanitizeTerminalText(text)
	if DisplayWidth(text) <= maxWidth {
		return text
	}
	return runewidth.Truncate(text, maxWidth, "…")
}
