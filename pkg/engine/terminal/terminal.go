// Package terminal has the few raw ANSI controls and size queries the
// full-screen terminal backend needs.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences.
const (
	CursorHome   = "\x1b[H"
	ClearScreen  = "\x1b[2J"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	AltScreenOn  = "\x1b[?1049h"
	AltScreenOff = "\x1b[?1049l"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Enter switches w to the alternate screen with a hidden cursor.
func Enter(w io.Writer) {
	io.WriteString(w, AltScreenOn+HideCursor+ClearScreen+CursorHome)
}

// Leave undoes Enter.
func Leave(w io.Writer) {
	io.WriteString(w, ShowCursor+AltScreenOff)
}
