package app

import (
	"github.com/gdamore/tcell/v2"
	renderui "github.com/kk-code-lab/clipchunk/internal/ui/render"
)

// Run drives the event loop until quit. The first chunk is copied out
// immediately, matching the CLI front-ends.
func (app *Application) Run() {
	app.copyCurrent()
	app.render()

	eventCh := make(chan tcell.Event)
	go func() {
		for {
			eventCh <- app.screen.PollEvent()
		}
	}()

	for !app.shouldQuit {
		switch ev := (<-eventCh).(type) {
		case *tcell.EventResize:
			app.screen.Sync()
			app.render()
		case *tcell.EventKey:
			if app.handleKey(ev) {
				app.copyCurrent()
			}
			app.render()
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.state, renderui.ViewState{Message: app.message})
}
