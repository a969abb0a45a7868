// Package textload brings session text in from a file or the system
// clipboard. File content is normalized to UTF-8 so the engine can
// chunk on plain byte offsets.
package textload

import (
	"fmt"
	"os"
	"time"

	"github.com/kk-code-lab/clipchunk/internal/chunk"
	clipboardpkg "github.com/kk-code-lab/clipchunk/internal/clipboard"
	"golang.org/x/text/encoding/unicode"
)

type textEncoding int

const (
	encodingPlain textEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

// FromFile reads and decodes path. An unreadable or empty file is a
// load failure.
func FromFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not open file %s: %w", path, err)
	}

	text := normalize(content)
	if text == "" {
		return "", fmt.Errorf("%s: %w", path, chunk.ErrEmptyInput)
	}
	return text, nil
}

// FromClipboard performs a bounded clipboard read. Empty results
// (including timeouts, which read as empty) fail the load.
func FromClipboard(cb clipboardpkg.Clipboard, timeout time.Duration) (string, error) {
	text := cb.Read(timeout)
	if text == "" {
		return "", fmt.Errorf("clipboard is empty or unavailable: %w", chunk.ErrEmptyInput)
	}
	return text, nil
}

// normalize converts BOM-marked Unicode content into plain UTF-8 and
// strips the marker.
func normalize(content []byte) string {
	switch detectEncoding(content) {
	case encodingUTF8BOM:
		return string(content[3:])
	case encodingUTF16LE:
		return decodeUTF16(content, unicode.LittleEndian)
	case encodingUTF16BE:
		return decodeUTF16(content, unicode.BigEndian)
	default:
		return string(content)
	}
}

func detectEncoding(content []byte) textEncoding {
	if len(content) >= 3 && content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(content) >= 2 {
		switch {
		case content[0] == 0xFF && content[1] == 0xFE:
			return encodingUTF16LE
		case content[0] == 0xFE && content[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingPlain
}

func decodeUTF16(content []byte, endian unicode.Endianness) string {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}
