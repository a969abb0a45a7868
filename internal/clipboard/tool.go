package clipboard

import (
	"os/exec"
	"strings"
	"time"
)

// Tool drives external clipboard utilities. Copy and paste commands
// are detected independently; a missing side fails soft.
type Tool struct {
	copyCmd  []string
	pasteCmd []string
}

func (t *Tool) Read(timeout time.Duration) string {
	if len(t.pasteCmd) == 0 {
		return ""
	}
	return readBounded(timeout, func() (string, error) {
		out, err := exec.Command(t.pasteCmd[0], t.pasteCmd[1:]...).Output()
		return string(out), err
	})
}

func (t *Tool) Write(text string) bool {
	if len(t.copyCmd) == 0 {
		return false
	}
	cmd := exec.Command(t.copyCmd[0], t.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run() == nil
}

// detectTool resolves copy and paste commands for the platform. The
// lookPath parameter is injectable for tests.
func detectTool(goos string, lookPath func(string) (string, error)) (*Tool, bool) {
	tool := &Tool{
		copyCmd:  resolveCommand(copyCandidates(goos), lookPath),
		pasteCmd: resolveCommand(pasteCandidates(goos), lookPath),
	}
	if len(tool.copyCmd) == 0 && len(tool.pasteCmd) == 0 {
		return nil, false
	}
	return tool, true
}

func resolveCommand(candidates [][]string, lookPath func(string) (string, error)) []string {
	for _, candidate := range candidates {
		if len(candidate) == 0 {
			continue
		}
		path, err := lookPath(candidate[0])
		if err != nil || path == "" {
			continue
		}
		args := make([]string, len(candidate))
		copy(args, candidate)
		args[0] = path
		return args
	}
	return nil
}

func copyCandidates(goos string) [][]string {
	if strings.EqualFold(goos, "windows") {
		return [][]string{
			{"clip.exe"},
			{"clip"},
			{"powershell", "-NoLogo", "-NoProfile", "-Command", "Set-Clipboard -Value ([Console]::In.ReadToEnd())"},
		}
	}
	if strings.EqualFold(goos, "darwin") {
		return [][]string{{"pbcopy"}}
	}
	return [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard", "-i"},
		{"xsel", "--clipboard", "--input"},
	}
}

func pasteCandidates(goos string) [][]string {
	if strings.EqualFold(goos, "windows") {
		return [][]string{
			{"powershell", "-NoLogo", "-NoProfile", "-Command", "Get-Clipboard -Raw"},
			{"pwsh", "-NoLogo", "-NoProfile", "-Command", "Get-Clipboard -Raw"},
		}
	}
	if strings.EqualFold(goos, "darwin") {
		return [][]string{{"pbpaste"}}
	}
	return [][]string{
		{"wl-paste", "--no-newline"},
		{"xclip", "-selection", "clipboard", "-o"},
		{"xsel", "--clipboard", "--output"},
	}
}
