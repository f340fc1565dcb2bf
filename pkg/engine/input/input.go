package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// RawTerminal puts stdin into raw mode and returns a function restoring it.
func RawTerminal() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() { term.Restore(fd, oldState) }, nil
}

// ReadKey reads one key press from r, which should be a terminal in raw mode
// or anything producing the same byte sequences. Escape sequences usually
// arrive in a single read, which is how a bare Escape is told apart from
// the start of an arrow key.
func ReadKey(r io.Reader) (RawInput, error) {
	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if n == 0 {
		if err == nil {
			err = io.ErrNoProgress
		}
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: DecodeKey(buf[:n])}, nil
}

// DecodeKey maps the bytes of one key press to a binding code. Unknown
// sequences decode to "".
func DecodeKey(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if b[0] == 0x1b {
		return decodeEscape(b[1:])
	}
	switch c := b[0]; {
	case c == 3:
		return "ctrl_c"
	case c == '\t':
		return "tab"
	case c == '\r' || c == '\n':
		return "enter"
	case c == ' ':
		return "space"
	case c >= 'A' && c <= 'Z':
		return string(c + 'a' - 'A')
	case c > ' ' && c < 127:
		return string(c)
	}
	return ""
}

// decodeEscape handles both CSI (ESC [) and SS3 (ESC O) sequences.
func decodeEscape(rest []byte) string {
	if len(rest) == 0 {
		return "escape"
	}
	if (rest[0] != '[' && rest[0] != 'O') || len(rest) < 2 {
		return ""
	}
	switch rest[1] {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	case 'H':
		return "home"
	case 'Z':
		return "shift_tab"
	}
	return ""
}
