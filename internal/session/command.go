package session

import (
	"strconv"
	"strings"
)

type commandKind int

const (
	cmdAdvance commandKind = iota // empty line
	cmdRecopy
	cmdPrev
	cmdNext
	cmdFirst
	cmdLast
	cmdInvert
	cmdAppend
	cmdUsage
	cmdReset
	cmdResize
	cmdGoto
	cmdQuit
	cmdHelp
)

type command struct {
	kind commandKind
	arg  int
}

// parseCommand maps one input line onto a session command. Single
// letters are case-insensitive; "$<n>" resizes, a bare integer is a
// goto, anything unrecognized asks for help.
func parseCommand(line string) command {
	line = strings.TrimSpace(line)

	switch {
	case line == "":
		return command{kind: cmdAdvance}
	case strings.EqualFold(line, "r"):
		return command{kind: cmdRecopy}
	case strings.EqualFold(line, "p"):
		return command{kind: cmdPrev}
	case strings.EqualFold(line, "n"):
		return command{kind: cmdNext}
	case strings.EqualFold(line, "f"):
		return command{kind: cmdFirst}
	case strings.EqualFold(line, "l"):
		return command{kind: cmdLast}
	case strings.EqualFold(line, "i"):
		return command{kind: cmdInvert}
	case strings.EqualFold(line, "a"):
		return command{kind: cmdAppend}
	case strings.EqualFold(line, "u"):
		return command{kind: cmdUsage}
	case strings.EqualFold(line, "reset"):
		return command{kind: cmdReset}
	case strings.EqualFold(line, "q") || strings.EqualFold(line, "quit"):
		return command{kind: cmdQuit}
	}

	if strings.HasPrefix(line, "$") {
		if size, err := strconv.Atoi(line[1:]); err == nil {
			return command{kind: cmdResize, arg: size}
		}
		return command{kind: cmdHelp}
	}

	if index, err := strconv.Atoi(line); err == nil {
		return command{kind: cmdGoto, arg: index}
	}

	return command{kind: cmdHelp}
}
