package session

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultChunkSize matches the size of a comfortable chat-box paste.
const DefaultChunkSize = 20000

// Config describes one chunking session.
type Config struct {
	TailMode    bool
	ChunkSize   int
	Filename    string // empty means load from the clipboard
	Dedup       bool   // track consumed chunk content
	ReadTimeout time.Duration
}

// ParseArgs interprets the positional arguments shared by the CLI
// front-ends: [tailMode:0|1] [chunkSize] [filename].
func ParseArgs(args []string, dedup bool) (Config, error) {
	cfg := Config{
		ChunkSize: DefaultChunkSize,
		Dedup:     dedup,
	}

	if len(args) > 0 {
		cfg.TailMode = args[0] == "1"
	}
	if len(args) > 1 {
		size, err := strconv.Atoi(args[1])
		if err != nil || size <= 0 {
			return cfg, fmt.Errorf("chunk size must be a positive integer, got %q", args[1])
		}
		cfg.ChunkSize = size
	}
	if len(args) > 2 {
		cfg.Filename = args[2]
	}
	return cfg, nil
}
