package session

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	cfg, err := ParseArgs(nil, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TailMode {
		t.Error("default mode should be head")
	}
	if cfg.ChunkSize != DefaultChunkSize {
		t.Errorf("expected default chunk size %d, got %d", DefaultChunkSize, cfg.ChunkSize)
	}
	if cfg.Filename != "" {
		t.Errorf("default source should be the clipboard, got %q", cfg.Filename)
	}
	if !cfg.Dedup {
		t.Error("dedup flag should carry through")
	}
}

func TestParseArgsFull(t *testing.T) {
	cfg, err := ParseArgs([]string{"1", "512", "notes.txt"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.TailMode {
		t.Error("expected tail mode")
	}
	if cfg.ChunkSize != 512 {
		t.Errorf("expected chunk size 512, got %d", cfg.ChunkSize)
	}
	if cfg.Filename != "notes.txt" {
		t.Errorf("expected filename notes.txt, got %q", cfg.Filename)
	}
}

func TestParseArgsTailModeIsStrict(t *testing.T) {
	cfg, err := ParseArgs([]string{"0"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TailMode {
		t.Error("anything but \"1\" means head mode")
	}
}

func TestParseArgsRejectsBadChunkSize(t *testing.T) {
	for _, size := range []string{"0", "-5", "huge"} {
		if _, err := ParseArgs([]string{"0", size}, false); err == nil {
			t.Errorf("chunk size %q should be rejected", size)
		}
	}
}
