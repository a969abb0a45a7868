package clipboard

import (
	"time"

	atotto "github.com/atotto/clipboard"
)

// Native reads and writes the clipboard through the platform API.
type Native struct{}

func nativeSupported() bool {
	return !atotto.Unsupported
}

func (Native) Read(timeout time.Duration) string {
	return readBounded(timeout, atotto.ReadAll)
}

func (Native) Write(text string) bool {
	return atotto.WriteAll(text) == nil
}
