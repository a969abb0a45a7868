package textutil

import "testing"

func TestSanitizeFlattensLineBreaks(t *testing.T) {
	got := SanitizeTerminalText("one\ntwo\r\nthree\tfour")
	want := "one two  three four"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSanitizeReplacesControlRunes(t *testing.T) {
	got := SanitizeTerminalText("a\x1b[31mb")
	want := "a?[31mb"
	if got != want {
		t.Errorf("escape sequence should be defanged, got %q", got)
	}
}

func TestSanitizeDropsZeroWidthRunes(t *testing.T) {
	got := SanitizeTerminalText("a\u200bb\uFEFFc")
	if got != "abc" {
		t.Errorf("expected zero-width runes dropped, got %q", got)
	}
}

func TestSanitizeLeavesCleanTextAlone(t *testing.T) {
	text := "plain chunk content"
	if got := SanitizeTerminalText(text); got != text {
		t.Errorf("clean text should pass through, got %q", got)
	}
}

func TestExpandTabsAlignsColumns(t *testing.T) {
	got := ExpandTabs("a\tb", 4)
	if got != "a   b" {
		t.Errorf("expected %q, got %q", "a   b", got)
	}
}

func TestExpandTabsNoTabs(t *testing.T) {
	text := "no tabs here"
	if got := ExpandTabs(text, 4); got != text {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

func TestDisplayWidthCountsWideRunes(t *testing.T) {
	if got := DisplayWidth("日本"); got != 4 {
		t.Errorf("expected width 4 for two wide runes, got %d", got)
	}
}

func TestPreviewTruncatesToWidth(t *testing.T) {
	got := Preview("abcdefghij", 5)
	if DisplayWidth(got) > 5 {
		t.Errorf("preview exceeds width budget: %q", got)
	}
	if got != "abcd…" {
		t.Errorf("expected %q, got %q", "abcd…", got)
	}
}

func TestPreviewSanitizesFirst(t *testing.T) {
	got := Preview("line1\nline2", 20)
	if got != "line1 line2" {
		t.Errorf("expected flattened preview, got %q", got)
	}
}

func TestPreviewZeroWidth(t *testing.T) {
	if got := Preview("anything", 0); got != "" {
		t.Errorf("expected empty preview, got %q", got)
	}
}
