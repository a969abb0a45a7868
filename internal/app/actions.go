package app

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"
	chunkpkg "github.com/kk-code-lab/clipchunk/internal/chunk"
	"github.com/kk-code-lab/clipchunk/internal/textload"
)

// handleKey applies one key event. The return value reports whether
// the current chunk may have changed and should be copied out again.
func (app *Application) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.shouldQuit = true
		return false
	case tcell.KeyRight, tcell.KeyEnter:
		return app.reduce(chunkpkg.NextChunkAction{})
	case tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return app.reduce(chunkpkg.PrevChunkAction{})
	case tcell.KeyRune:
		return app.handleRune(ev.Rune())
	}
	return false
}

func (app *Application) handleRune(r rune) bool {
	switch unicode.ToLower(r) {
	case 'q':
		app.shouldQuit = true
	case 'n', ' ':
		return app.reduce(chunkpkg.NextChunkAction{})
	case 'p':
		return app.reduce(chunkpkg.PrevChunkAction{})
	case 'f':
		return app.reduce(chunkpkg.FirstChunkAction{})
	case 'l':
		return app.reduce(chunkpkg.LastChunkAction{})
	case 'i':
		return app.reduce(chunkpkg.InvertOrderAction{})
	case 'r':
		app.copyCurrent()
	case 'o':
		return app.reloadFromClipboard()
	case '+', '=':
		return app.resizeBy(1)
	case '-', '_':
		return app.resizeBy(-1)
	}
	return false
}

func (app *Application) reduce(action chunkpkg.Action) bool {
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.message = err.Error()
		return false
	}
	return true
}

// resizeBy grows or shrinks the chunk size by ten percent, staying
// inside [1, len(buffer)].
func (app *Application) resizeBy(sign int) bool {
	step := app.state.ChunkSize / 10
	if step < 1 {
		step = 1
	}

	size := app.state.ChunkSize + sign*step
	if size < 1 {
		size = 1
	}
	if size > len(app.state.Buffer) {
		size = len(app.state.Buffer)
	}
	if size == app.state.ChunkSize {
		return false
	}

	if !app.reduce(chunkpkg.ResizeChunkAction{Size: size}) {
		return false
	}
	app.message = fmt.Sprintf("chunk size %d", size)
	return true
}

func (app *Application) reloadFromClipboard() bool {
	text, err := textload.FromClipboard(app.cb, app.cfg.ReadTimeout)
	if err != nil {
		app.message = "clipboard is empty"
		return false
	}
	if !app.reduce(chunkpkg.LoadTextAction{Text: text}) {
		return false
	}
	app.message = "reloaded from clipboard"
	return true
}

// copyCurrent pushes the chunk under the cursor to the clipboard and
// snapshots the session buffer.
func (app *Application) copyCurrent() {
	text := app.state.CurrentChunk()
	if text == "" {
		return
	}

	if app.cb.Write(text) {
		app.message = fmt.Sprintf("copied %d characters", len(text))
	} else {
		app.message = "clipboard write failed"
	}

	if app.snapshot != nil {
		if err := app.snapshot.Save(app.state.Buffer); err != nil {
			app.message = fmt.Sprintf("snapshot failed: %v", err)
		}
	}
}
