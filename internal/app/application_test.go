package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	sessionpkg "github.com/kk-code-lab/clipchunk/internal/session"
)

type fakeClipboard struct {
	text   string
	writes []string
	fail   bool
}

func (f *fakeClipboard) Read(timeout time.Duration) string { return f.text }

func (f *fakeClipboard) Write(text string) bool {
	if f.fail {
		return false
	}
	f.writes = append(f.writes, text)
	return true
}

func newTestApp(t *testing.T, cfg sessionpkg.Config, clipText string) (*Application, *fakeClipboard) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	cb := &fakeClipboard{text: clipText}
	snapshot := sessionpkg.NewSnapshotAt(filepath.Join(t.TempDir(), "snapshot.txt"))
	app, err := newApplication(cfg, screen, cb, snapshot)
	if err != nil {
		t.Fatalf("failed to create application: %v", err)
	}
	return app, cb
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestStartsOnFirstChunk(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))
	if app.state.Position != 1 || app.state.TotalChunks != 3 {
		t.Errorf("expected position 1/3, got %d/%d", app.state.Position, app.state.TotalChunks)
	}
}

func TestTailModeStartsOnLastChunk(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{TailMode: true, ChunkSize: 10}, strings.Repeat("a", 25))
	if app.state.Position != 3 {
		t.Errorf("expected position 3, got %d", app.state.Position)
	}
}

func TestNavigationKeys(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	if !app.handleKey(key('n')) {
		t.Fatal("expected next to report a chunk change")
	}
	if app.state.Position != 2 {
		t.Errorf("expected position 2 after next, got %d", app.state.Position)
	}

	app.handleKey(key('l'))
	if app.state.Position != 3 {
		t.Errorf("expected position 3 after last, got %d", app.state.Position)
	}

	app.handleKey(key('p'))
	if app.state.Position != 2 {
		t.Errorf("expected position 2 after prev, got %d", app.state.Position)
	}

	app.handleKey(key('f'))
	if app.state.Position != 1 {
		t.Errorf("expected position 1 after first, got %d", app.state.Position)
	}
}

func TestArrowKeysNavigate(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	app.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	if app.state.Position != 2 {
		t.Errorf("expected position 2 after right arrow, got %d", app.state.Position)
	}

	app.handleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if app.state.Position != 1 {
		t.Errorf("expected position 1 after left arrow, got %d", app.state.Position)
	}
}

func TestInvertKeyFlipsOrder(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	app.handleKey(key('i'))
	if !app.state.Inverted {
		t.Error("expected inverted flag set")
	}
	if app.state.Position != 3 {
		t.Errorf("expected mirrored position 3, got %d", app.state.Position)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		key('q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
	} {
		app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, "hello")
		app.handleKey(ev)
		if !app.shouldQuit {
			t.Errorf("expected quit for %v", ev.Key())
		}
	}
}

func TestResizeKeys(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 100}, strings.Repeat("a", 500))

	app.handleKey(key('+'))
	if app.state.ChunkSize != 110 {
		t.Errorf("expected chunk size 110, got %d", app.state.ChunkSize)
	}

	app.handleKey(key('-'))
	if app.state.ChunkSize != 99 {
		t.Errorf("expected chunk size 99, got %d", app.state.ChunkSize)
	}
}

func TestResizeClampsToBuffer(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 5}, "hello")

	// Already at the buffer length: growing is a no-op.
	if app.resizeBy(1) {
		t.Error("expected grow at buffer length to be a no-op")
	}

	app.state.ChunkSize = 1
	app.state.Position = 1
	if app.resizeBy(-1) {
		t.Error("expected shrink at size 1 to be a no-op")
	}
}

func TestRecopyWritesCurrentChunk(t *testing.T) {
	app, cb := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	app.handleKey(key('r'))
	if len(cb.writes) != 1 || cb.writes[0] != strings.Repeat("a", 10) {
		t.Errorf("expected one write of the first chunk, got %v", cb.writes)
	}
	if !strings.Contains(app.message, "copied 10") {
		t.Errorf("expected copy message, got %q", app.message)
	}
}

func TestCopyFailureSetsMessage(t *testing.T) {
	app, cb := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))
	cb.fail = true

	app.copyCurrent()
	if app.message != "clipboard write failed" {
		t.Errorf("expected failure message, got %q", app.message)
	}
}

func TestReloadFromClipboard(t *testing.T) {
	app, cb := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	cb.text = strings.Repeat("b", 40)
	if !app.handleKey(key('o')) {
		t.Fatal("expected reload to report a chunk change")
	}
	if app.state.TotalChunks != 4 || app.state.Position != 1 {
		t.Errorf("expected 4 chunks at position 1, got %d at %d", app.state.TotalChunks, app.state.Position)
	}
}

func TestReloadEmptyClipboardKeepsBuffer(t *testing.T) {
	app, cb := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	cb.text = ""
	if app.handleKey(key('o')) {
		t.Fatal("expected reload of empty clipboard to fail")
	}
	if app.state.TotalChunks != 3 {
		t.Errorf("expected buffer unchanged, got %d chunks", app.state.TotalChunks)
	}
	if app.message != "clipboard is empty" {
		t.Errorf("expected empty-clipboard message, got %q", app.message)
	}
}

func TestLoadsFromFileWhenConfigured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 30)), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10, Filename: path}, "ignored")
	if app.state.TotalChunks != 3 {
		t.Errorf("expected 3 chunks from file, got %d", app.state.TotalChunks)
	}
}

func TestRenderDoesNotPanicOnTinyScreen(t *testing.T) {
	app, _ := newTestApp(t, sessionpkg.Config{ChunkSize: 10}, strings.Repeat("a", 25))

	sim := app.screen.(tcell.SimulationScreen)
	sim.SetSize(3, 2)
	app.render()
}
