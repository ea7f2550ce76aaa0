//go:build linux
// +build linux

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// SupportsColorEscapes reports whether this platform's terminal driver can
// render ANSI color escapes at all.
const SupportsColorEscapes = true

// TerminalInfo describes the output terminal, if any, attached to a file.
type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
}

// GetTerminalInfo queries file's terminal attributes via ioctl.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	fd := int(file.Fd())

	if _, err := unix.IoctlGetTermios(fd, unix.TCGETS); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = os.Getenv("NO_COLOR") == ""

		if w, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ); err == nil {
			info.Width = int(w.Col)
		}
	}

	return
}
