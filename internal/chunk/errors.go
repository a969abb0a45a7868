package chunk

import "errors"

// Command errors. Front-ends report these and keep going; only
// ErrEmptyInput aborts a session, and only at load time.
var (
	ErrEmptyInput     = errors.New("no text to chunk")
	ErrInvalidSize    = errors.New("invalid chunk size")
	ErrOutOfRange     = errors.New("chunk index out of range")
	ErrNoUnusedChunks = errors.New("all chunks used")
)
