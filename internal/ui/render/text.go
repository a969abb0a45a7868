package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/clipchunk/internal/textutil"
	"github.com/mattn/go-runewidth"
)

// drawLine writes one row starting at column 0, clipping to maxWidth
// and padding the remainder with the style's background.
func (r *Renderer) drawLine(y, maxWidth int, text string, style tcell.Style) {
	x := 0
	for _, ru := range text {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if x+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, ru, nil, style)
		x += w
	}
	for ; x < maxWidth; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// wrapChunkLines prepares chunk content for the body panel: split on
// newlines, scrub control runes, expand tabs, then soft-wrap to the
// screen width.
func wrapChunkLines(text string, width int) []string {
	if width <= 0 || text == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = textutil.ExpandTabs(line, textutil.DefaultTabWidth)
		line = textutil.SanitizeTerminalText(line)
		out = append(out, softWrap(line, width)...)
	}
	return out
}

func softWrap(line string, width int) []string {
	if line == "" {
		return []string{""}
	}

	var wrapped []string
	var b strings.Builder
	column := 0
	for _, ru := range line {
		w := runewidth.RuneWidth(ru)
		if w < 1 {
			w = 1
		}
		if column+w > width {
			wrapped = append(wrapped, b.String())
			b.Reset()
			column = 0
		}
		b.WriteRune(ru)
		column += w
	}
	wrapped = append(wrapped, b.String())
	return wrapped
}
