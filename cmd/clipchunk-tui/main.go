package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/clipchunk/internal/app"
	sessionpkg "github.com/kk-code-lab/clipchunk/internal/session"
)

func printHelp() {
	fmt.Printf(`clipchunk-tui - Full-screen chunked clipboard feeder

USAGE:
    clipchunk-tui [tailMode] [chunkSize] [filename]

ARGUMENTS:
    tailMode     1 to start from the last chunk, 0 for the first (default 0)
    chunkSize    Characters per chunk (default %d)
    filename     Read text from a file instead of the clipboard

KEYS:
    n/space/→    next chunk        p/←    previous chunk
    f/l          first/last        i      invert order
    r            recopy            o      reload from clipboard
    +/-          resize by 10%%     q/Esc  quit

OPTIONS:
    -h, --help   Show this help message and exit
`, sessionpkg.DefaultChunkSize)
}

func main() {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	args := os.Args[1:]
	if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
		printHelp()
		os.Exit(0)
	}

	cfg, err := sessionpkg.ParseArgs(args, false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
