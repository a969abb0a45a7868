// Package render draws the full-screen chunker UI: a header with the
// cursor location, the current chunk, a status line, and a footer
// help bar.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	chunkpkg "github.com/kk-code-lab/clipchunk/internal/chunk"
)

// ViewState carries front-end status that lives outside the engine.
type ViewState struct {
	Message string // transient: copy results, warnings
}

// Renderer handles all UI rendering
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the entire UI based on engine state
func (r *Renderer) Render(state *chunkpkg.ChunkState, view ViewState) {
	r.screen.Clear()

	w, h := r.screen.Size()
	if w <= 0 || h < 4 {
		r.screen.Show()
		return
	}

	barStyle := tcell.StyleDefault.Reverse(true)

	r.drawLine(0, w, " clipchunk  "+headerSummary(state), barStyle)
	r.drawBody(state, w, h)
	r.drawLine(h-2, w, statusLine(state, view), barStyle)
	r.drawLine(h-1, w, footerHelp(), tcell.StyleDefault.Dim(true))

	r.screen.Show()
}

func (r *Renderer) drawBody(state *chunkpkg.ChunkState, w, h int) {
	lines := wrapChunkLines(state.CurrentChunk(), w)
	bodyHeight := h - 3
	for y := 0; y < bodyHeight && y < len(lines); y++ {
		r.drawLine(y+1, w, lines[y], tcell.StyleDefault)
	}
	if len(lines) > bodyHeight {
		hidden := len(lines) - bodyHeight
		r.drawLine(h-3, w, fmt.Sprintf("… (%d more lines in this chunk)", hidden), tcell.StyleDefault.Dim(true))
	}
}

func headerSummary(state *chunkpkg.ChunkState) string {
	return fmt.Sprintf("chunk %d/%d", state.Position, state.TotalChunks)
}

func statusLine(state *chunkpkg.ChunkState, view ViewState) string {
	parts := []string{
		fmt.Sprintf("%d bytes total", len(state.Buffer)),
		fmt.Sprintf("%d per chunk", state.ChunkSize),
		modeLabel(state),
	}
	if view.Message != "" {
		parts = append(parts, view.Message)
	}
	return " " + strings.Join(parts, " | ")
}

func modeLabel(state *chunkpkg.ChunkState) string {
	label := "head"
	if state.TailMode {
		label = "tail"
	}
	if state.Inverted {
		label += " inverted"
	}
	return label + " mode"
}

func footerHelp() string {
	return " n/→: next  p/←: prev  f: first  l: last  i: invert  r: recopy  o: reload  +/-: resize  q: quit"
}
