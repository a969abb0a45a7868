package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot persists the full session buffer to a fixed per-session
// file so an interrupted session can be recovered by hand. It is a
// debugging side effect, not session state.
type Snapshot struct {
	path string
}

// NewSnapshot picks a per-process path under the OS temp directory.
func NewSnapshot() *Snapshot {
	return NewSnapshotAt(filepath.Join(os.TempDir(), fmt.Sprintf("clipchunk_%d.txt", os.Getpid())))
}

// NewSnapshotAt uses an explicit path; tests point it into a temp dir.
func NewSnapshotAt(path string) *Snapshot {
	return &Snapshot{path: path}
}

// Path returns the snapshot file location.
func (s *Snapshot) Path() string {
	return s.path
}

// Save overwrites the snapshot with the current buffer, owner-only.
func (s *Snapshot) Save(text string) error {
	return os.WriteFile(s.path, []byte(text), 0600)
}
