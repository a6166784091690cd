// Package input reads single key presses from a terminal and maps them to actions.
package input

import (
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes returned by ReadKey for non-printable input
const (
	KeyArrowUp    = "arrow_up"
	KeyArrowDown  = "arrow_down"
	KeyArrowRight = "arrow_right"
	KeyArrowLeft  = "arrow_left"
	KeyEnter      = "enter"
	KeyEscape     = "escape"
	KeyInterrupt  = "ctrl_c"
)

// ErrNotTerminal is returned by ReadKeyRaw when stdin is not a terminal
var ErrNotTerminal = errors.New("stdin is not a terminal")

// readByte reads a single byte from r
func readByte(r io.Reader) (byte, error) {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readEscape decodes the rest of an escape sequence after ESC.
// CSI (ESC [) and SS3 (ESC O) arrow sequences are recognised; a lone ESC
// followed by anything else is reported as KeyEscape.
func readEscape(r io.Reader) (string, error) {
	b2, err := readByte(r)
	if errors.Is(err, io.EOF) {
		return KeyEscape, nil
	}
	if err != nil {
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return KeyEscape, nil
	}

	b3, err := readByte(r)
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return KeyArrowUp, nil
	case 'B':
		return KeyArrowDown, nil
	case 'C':
		return KeyArrowRight, nil
	case 'D':
		return KeyArrowLeft, nil
	}
	return KeyEscape, nil
}

// ReadKey reads one key press from r. Printable characters are returned as
// a one-character string; control keys use the Key* codes.
// Unprintable bytes are skipped.
func ReadKey(r io.Reader) (string, error) {
	for {
		b, err := readByte(r)
		if err != nil {
			return "", err
		}

		switch {
		case b == 0x1b:
			return readEscape(r)
		case b == 3:
			return KeyInterrupt, nil
		case b == '\n' || b == '\r':
			return KeyEnter, nil
		case b >= 32 && b < 127:
			return string(b), nil
		}
	}
}

// ReadKeyRaw puts stdin into raw mode, reads one key press and restores the
// terminal before returning.
func ReadKeyRaw() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return "", err
	}
	defer term.Restore(fd, oldState)

	return ReadKey(os.Stdin)
}
