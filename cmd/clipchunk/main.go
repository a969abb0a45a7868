package main

import (
	"fmt"
	"os"

	clipboardpkg "github.com/kk-code-lab/clipchunk/internal/clipboard"
	sessionpkg "github.com/kk-code-lab/clipchunk/internal/session"
)

func printHelp() {
	fmt.Printf(`clipchunk - Feed long text to the clipboard one chunk at a time

USAGE:
    clipchunk [tailMode] [chunkSize] [filename]

ARGUMENTS:
    tailMode     1 to start from the last chunk, 0 for the first (default 0)
    chunkSize    Characters per chunk (default %d)
    filename     Read text from a file instead of the clipboard

OPTIONS:
    -h, --help   Show this help message and exit
`, sessionpkg.DefaultChunkSize)
}

func main() {
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

	loop := sessionpkg.NewLoop(cfg, clipboardpkg.Detect(), sessionpkg.NewSnapshot(), os.Stdin, os.Stdout, os.Stderr)
	if err := loop.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := loop.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
