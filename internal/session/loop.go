// Package session drives the interactive command loop shared by the
// CLI front-ends. Collaborators (clipboard, snapshot file, input and
// output streams) are injected so the loop itself stays testable.
package session

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kk-code-lab/clipchunk/internal/chunk"
	clipboardpkg "github.com/kk-code-lab/clipchunk/internal/clipboard"
	"github.com/kk-code-lab/clipchunk/internal/textload"
	"github.com/kk-code-lab/clipchunk/internal/textutil"
)

const (
	maxInputLine = 4 * 1024 * 1024
	previewWidth = 60
)

// Loop is one interactive chunking session over line-based input.
type Loop struct {
	cfg      Config
	state    *chunk.ChunkState
	reducer  *chunk.StateReducer
	cb       clipboardpkg.Clipboard
	snapshot *Snapshot
	in       *bufio.Scanner
	out      io.Writer
	errOut   io.Writer

	announcedSnapshot bool
}

// NewLoop wires a session with its collaborators.
func NewLoop(cfg Config, cb clipboardpkg.Clipboard, snapshot *Snapshot, in io.Reader, out, errOut io.Writer) *Loop {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = clipboardpkg.DefaultReadTimeout
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputLine)

	return &Loop{
		cfg:      cfg,
		state:    chunk.NewChunkState(cfg.TailMode, cfg.ChunkSize),
		reducer:  chunk.NewStateReducer(),
		cb:       cb,
		snapshot: snapshot,
		in:       scanner,
		out:      out,
		errOut:   errOut,
	}
}

// State exposes the engine state, mainly for assertions in tests.
func (l *Loop) State() *chunk.ChunkState {
	return l.state
}

// Load brings the session text in from the configured source. A
// failure here aborts startup; nothing after a successful load is
// fatal except quitting.
func (l *Loop) Load() error {
	var text string
	var err error
	if l.cfg.Filename != "" {
		text, err = textload.FromFile(l.cfg.Filename)
	} else {
		text, err = textload.FromClipboard(l.cb, l.cfg.ReadTimeout)
	}
	if err != nil {
		return err
	}

	_, err = l.reducer.Reduce(l.state, chunk.LoadTextAction{Text: text})
	return err
}

// Run executes the command loop until quit, end of input, or (dedup
// variant) traversal completion.
func (l *Loop) Run() error {
	for {
		l.copyCurrent()
		l.saveSnapshot()
		l.printStatus()
		l.printPreview()

		if l.cfg.Dedup && l.state.AtFinalChunk() && !l.state.HasUnusedChunks() {
			fmt.Fprintln(l.out, "✓ All chunks processed. Auto-exiting...")
			fmt.Fprintf(l.out, "Processed %d/%d chunks\n", l.state.UsedCount(), l.state.TotalChunks)
			return nil
		}
		if l.cfg.Dedup && !l.state.HasUnusedChunks() {
			fmt.Fprintln(l.out, "⚠ All chunks have been used!")
		}

		fmt.Fprint(l.out, l.prompt())

		line, ok := l.readLine()
		if !ok {
			fmt.Fprintln(l.out)
			return nil
		}
		if quit := l.apply(parseCommand(line)); quit {
			return nil
		}
	}
}

// copyCurrent feeds the chunk under the cursor to the clipboard. The
// dedup variant skips content that already went out and hunts for the
// next unused chunk instead.
func (l *Loop) copyCurrent() {
	text := l.state.CurrentChunk()
	if text == "" {
		return
	}

	if !l.cfg.Dedup {
		l.writeClipboard(text, "✓ Chunk copied to clipboard")
		return
	}

	if !l.state.IsUsed(text) {
		if l.writeClipboard(text, "✓ Chunk copied to clipboard") {
			l.state.MarkUsed(text)
		}
		return
	}

	pos, err := l.state.NextUnused()
	if err != nil {
		fmt.Fprintln(l.out, "⚠ All chunks have been used")
		return
	}

	fmt.Fprintln(l.out, "⚠ Chunk already used - finding next unused chunk...")
	if _, err := l.reducer.Reduce(l.state, chunk.GotoChunkAction{Index: pos}); err != nil {
		fmt.Fprintf(l.errOut, "⚠ %v\n", err)
		return
	}
	if l.writeClipboard(l.state.CurrentChunk(), fmt.Sprintf("✓ Found unused chunk %d", pos)) {
		l.state.MarkUsed(l.state.CurrentChunk())
	}
}

func (l *Loop) writeClipboard(text, okMessage string) bool {
	if l.cb.Write(text) {
		fmt.Fprintln(l.out, okMessage)
		return true
	}
	fmt.Fprintln(l.errOut, "⚠ Clipboard write failed")
	return false
}

func (l *Loop) saveSnapshot() {
	if l.snapshot == nil {
		return
	}
	if err := l.snapshot.Save(l.state.Buffer); err != nil {
		fmt.Fprintf(l.errOut, "⚠ Could not save session buffer: %v\n", err)
		return
	}
	if !l.announcedSnapshot {
		fmt.Fprintf(l.out, "Session buffer saved to: %s\n", l.snapshot.Path())
		l.announcedSnapshot = true
	}
}

func (l *Loop) printStatus() {
	mode := "head"
	if l.state.TailMode {
		mode = "tail"
	}
	inverted := ""
	if l.state.Inverted {
		inverted = ", inverted"
	}

	if l.cfg.Dedup {
		fmt.Fprintf(l.out, "Chunk %d/%d (%d bytes total, %d char chunks, %s mode%s, %d used)\n",
			l.state.Position, l.state.TotalChunks, len(l.state.Buffer), l.state.ChunkSize, mode, inverted, l.state.UsedCount())
		return
	}
	fmt.Fprintf(l.out, "Chunk %d/%d (%d bytes total, %d char chunks, %s mode%s)\n",
		l.state.Position, l.state.TotalChunks, len(l.state.Buffer), l.state.ChunkSize, mode, inverted)
}

func (l *Loop) printPreview() {
	if text := l.state.CurrentChunk(); text != "" {
		fmt.Fprintf(l.out, "Next to paste: %s\n", textutil.Preview(text, previewWidth))
	}
}

func (l *Loop) prompt() string {
	if l.cfg.Dedup {
		return "Command (Enter=next unused, R=recopy, P=prev, N=next, F=first, L=last, I=invert, A=add, U=usage, Q=quit): "
	}
	return "Command (Enter=next, R=recopy, P=prev, N=next, F=first, L=last, I=invert, A=add, Q=quit): "
}

// apply runs one parsed command; the return value reports a quit.
func (l *Loop) apply(cmd command) bool {
	switch cmd.kind {
	case cmdQuit:
		return true

	case cmdAdvance:
		l.advance()

	case cmdRecopy:
		if text := l.state.CurrentChunk(); text != "" {
			l.writeClipboard(text, "✓ Chunk recopied to clipboard")
		}

	case cmdPrev:
		l.reduce(chunk.PrevChunkAction{})
	case cmdNext:
		l.reduce(chunk.NextChunkAction{})
	case cmdFirst:
		l.reduce(chunk.FirstChunkAction{})
	case cmdLast:
		l.reduce(chunk.LastChunkAction{})
	case cmdInvert:
		l.reduce(chunk.InvertOrderAction{})

	case cmdAppend:
		l.appendText()

	case cmdUsage:
		if !l.cfg.Dedup {
			l.printHelp()
			break
		}
		fmt.Fprintf(l.out, "Used chunks: %d/%d\n", l.state.UsedCount(), l.state.TotalChunks)

	case cmdReset:
		if !l.cfg.Dedup {
			l.printHelp()
			break
		}
		l.reduce(chunk.ResetUsageAction{})
		fmt.Fprintln(l.out, "Reset all chunks as unused")

	case cmdResize:
		l.resize(cmd.arg)

	case cmdGoto:
		if _, err := l.reducer.Reduce(l.state, chunk.GotoChunkAction{Index: cmd.arg}); err != nil {
			fmt.Fprintf(l.out, "Invalid chunk number. Range: 1-%d\n", l.state.TotalChunks)
		}

	case cmdHelp:
		l.printHelp()
	}
	return false
}

// advance is the empty-line command: the dedup variant jumps to the
// next unused chunk, everything else steps along the effective
// direction.
func (l *Loop) advance() {
	if l.cfg.Dedup {
		if pos, err := l.state.NextUnused(); err == nil {
			l.reduce(chunk.GotoChunkAction{Index: pos})
			return
		}
	}
	l.reduce(chunk.NextChunkAction{})
}

func (l *Loop) appendText() {
	fmt.Fprintln(l.out, "Enter additional text (end with an empty line):")

	var b strings.Builder
	for {
		line, ok := l.readLine()
		if !ok || line == "" {
			break
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return
	}

	if _, err := l.reducer.Reduce(l.state, chunk.AppendTextAction{Text: b.String()}); err != nil {
		fmt.Fprintf(l.errOut, "⚠ Append failed: %v\n", err)
		return
	}
	fmt.Fprintf(l.out, "Added %d characters.\n", b.Len())
}

func (l *Loop) resize(size int) {
	previous := l.state.ChunkSize
	if _, err := l.reducer.Reduce(l.state, chunk.ResizeChunkAction{Size: size}); err != nil {
		fmt.Fprintf(l.out, "Invalid chunk size. Must be > 0 and <= text length (%d)\n", len(l.state.Buffer))
		return
	}
	fmt.Fprintf(l.out, "Changed chunk size from %d to %d characters\n", previous, size)
}

func (l *Loop) reduce(action chunk.Action) {
	if _, err := l.reducer.Reduce(l.state, action); err != nil {
		fmt.Fprintf(l.errOut, "⚠ %v\n", err)
	}
}

func (l *Loop) readLine() (string, bool) {
	if !l.in.Scan() {
		return "", false
	}
	return l.in.Text(), true
}

func (l *Loop) printHelp() {
	fmt.Fprintln(l.out, "Commands:")
	if l.cfg.Dedup {
		fmt.Fprintln(l.out, "  Enter=next unused, R=recopy, P=prev, N=next")
	} else {
		fmt.Fprintln(l.out, "  Enter=next, R=recopy, P=prev, N=next")
	}
	fmt.Fprintln(l.out, "  F=first, L=last, I=invert, A=add text")
	if l.cfg.Dedup {
		fmt.Fprintln(l.out, "  U=show usage, reset=reset usage, #=goto, $#=resize")
	} else {
		fmt.Fprintln(l.out, "  #=goto, $#=resize")
	}
	fmt.Fprintln(l.out, "  Q=quit")
}
