//go:build windows
// +build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

// SupportsColorEscapes reports whether this platform's terminal driver can
// render ANSI color escapes at all. Windows consoles need explicit virtual
// terminal processing enabled first; mattn/go-colorable (pulled in
// transitively via fatih/color) handles that for us on write, so escapes
// are always considered supported here.
const SupportsColorEscapes = true

// TerminalInfo describes the output terminal, if any, attached to a file.
type TerminalInfo struct {
	IsTTY           bool
	UseColorEscapes bool
	Width           int
}

// GetTerminalInfo queries file's console screen buffer info.
func GetTerminalInfo(file *os.File) (info TerminalInfo) {
	var mode uint32
	handle := windows.Handle(file.Fd())

	if err := windows.GetConsoleMode(handle, &mode); err == nil {
		info.IsTTY = true
		info.UseColorEscapes = os.Getenv("NO_COLOR") == ""

		var csbi windows.ConsoleScreenBufferInfo
		if err := windows.GetConsoleScreenBufferInfo(handle, &csbi); err == nil {
			info.Width = int(csbi.Size.X)
		}
	}

	return
}
