// Package clipboard moves text between the session and the system
// clipboard. Backends are best-effort: reads are bounded by a timeout
// and fail soft as an empty string, writes report success instead of
// returning errors.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// DefaultReadTimeout bounds clipboard reads so a foreign process
// holding the clipboard locked cannot hang the command loop.
const DefaultReadTimeout = 800 * time.Millisecond

// Clipboard is the collaborator contract shared by all backends.
type Clipboard interface {
	// Read returns the clipboard text, or "" on timeout or failure.
	Read(timeout time.Duration) string
	// Write copies text to the clipboard and reports success.
	Write(text string) bool
}

// Detect picks a backend at startup: the platform API when usable,
// otherwise external clipboard utilities, otherwise a stub that reads
// empty and fails writes.
func Detect() Clipboard {
	return detectBackend(runtime.GOOS, exec.LookPath)
}

func detectBackend(goos string, lookPath func(string) (string, error)) Clipboard {
	if !nativeSupported() {
		if tool, ok := detectTool(goos, lookPath); ok {
			return tool
		}
		return Unavailable{}
	}

	// The native backend shells out to X11 utilities on linux, so a
	// Wayland-only host needs the tool backend instead.
	if strings.EqualFold(goos, "linux") && !hasAnyTool(lookPath, "xclip", "xsel") {
		if tool, ok := detectTool(goos, lookPath); ok {
			return tool
		}
	}
	return Native{}
}

func hasAnyTool(lookPath func(string) (string, error), names ...string) bool {
	for _, name := range names {
		if path, err := lookPath(name); err == nil && path != "" {
			return true
		}
	}
	return false
}

// readBounded races fn against the deadline. A late result is dropped;
// the goroutine finishes on its own.
func readBounded(timeout time.Duration, fn func() (string, error)) string {
	if timeout <= 0 {
		timeout = DefaultReadTimeout
	}

	ch := make(chan string, 1)
	go func() {
		text, err := fn()
		if err != nil {
			text = ""
		}
		ch <- text
	}()

	select {
	case text := <-ch:
		return text
	case <-time.After(timeout):
		return ""
	}
}

// Unavailable is the backend of last resort.
type Unavailable struct{}

func (Unavailable) Read(timeout time.Duration) string {
	return ""
}

func (Unavailable) Write(text string) bool {
	return false
}
