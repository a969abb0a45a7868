// Package app owns the tcell front-end: screen lifecycle, the event
// loop, and key dispatch into the chunk engine.
package app

import (
	"github.com/gdamore/tcell/v2"
	chunkpkg "github.com/kk-code-lab/clipchunk/internal/chunk"
	clipboardpkg "github.com/kk-code-lab/clipchunk/internal/clipboard"
	sessionpkg "github.com/kk-code-lab/clipchunk/internal/session"
	"github.com/kk-code-lab/clipchunk/internal/textload"
	renderui "github.com/kk-code-lab/clipchunk/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *chunkpkg.ChunkState
	reducer    *chunkpkg.StateReducer
	renderer   *renderui.Renderer
	cb         clipboardpkg.Clipboard
	snapshot   *sessionpkg.Snapshot
	cfg        sessionpkg.Config
	message    string
	shouldQuit bool
}

// NewApplication initializes the terminal and loads the session text
// from the configured source.
func NewApplication(cfg sessionpkg.Config) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplication(cfg, screen, clipboardpkg.Detect(), sessionpkg.NewSnapshot())
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplication wires the collaborators; tests pass a simulation
// screen and a fake clipboard.
func newApplication(cfg sessionpkg.Config, screen tcell.Screen, cb clipboardpkg.Clipboard, snapshot *sessionpkg.Snapshot) (*Application, error) {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = clipboardpkg.DefaultReadTimeout
	}

	var text string
	var err error
	if cfg.Filename != "" {
		text, err = textload.FromFile(cfg.Filename)
	} else {
		text, err = textload.FromClipboard(cb, cfg.ReadTimeout)
	}
	if err != nil {
		return nil, err
	}

	app := &Application{
		screen:   screen,
		state:    chunkpkg.NewChunkState(cfg.TailMode, cfg.ChunkSize),
		reducer:  chunkpkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		cb:       cb,
		snapshot: snapshot,
		cfg:      cfg,
	}
	if _, err := app.reducer.Reduce(app.state, chunkpkg.LoadTextAction{Text: text}); err != nil {
		return nil, err
	}
	return app, nil
}

// Close releases the terminal.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}
