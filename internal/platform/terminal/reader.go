// Package terminal provides the unbuffered character input interactive
// programs need: when stdin is a TTY, each read switches the terminal to
// raw mode so a single keystroke arrives without waiting for a newline.
package terminal

import (
	"bufio"
	"errors"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

// Reader reads runes from a file one keystroke at a time. It satisfies the
// interpreter's input contract (ReadRune/UnreadRune). On a non-TTY it
// degrades to plain buffered reads.
type Reader struct {
	f      *os.File
	buf    *bufio.Reader // used when f is not a terminal
	isTTY  bool
	unread rune
	hasUn  bool
	lastR  rune
	hasR   bool
}

// NewReader wraps f, typically os.Stdin.
func NewReader(f *os.File) *Reader {
	r := &Reader{f: f}
	if term.IsTerminal(int(f.Fd())) {
		r.isTTY = true
	} else {
		r.buf = bufio.NewReader(f)
	}
	return r
}

// ReadRune returns the next rune. On a TTY the terminal is placed in raw
// mode for the duration of the read and restored afterwards, so the
// program sees keystrokes immediately and unechoed.
func (r *Reader) ReadRune() (rune, int, error) {
	if r.hasUn {
		r.hasUn = false
		r.lastR, r.hasR = r.unread, true
		return r.unread, utf8.RuneLen(r.unread), nil
	}

	if !r.isTTY {
		c, size, err := r.buf.ReadRune()
		if err == nil {
			r.lastR, r.hasR = c, true
		}
		return c, size, err
	}

	old, err := term.MakeRaw(int(r.f.Fd()))
	if err != nil {
		return 0, 0, err
	}
	defer term.Restore(int(r.f.Fd()), old)

	// Assemble one UTF-8 sequence byte by byte.
	var p [utf8.UTFMax]byte
	n := 0
	for {
		if _, err := r.f.Read(p[n : n+1]); err != nil {
			return 0, 0, err
		}
		n++
		if c, size := utf8.DecodeRune(p[:n]); c != utf8.RuneError || size > 1 {
			r.lastR, r.hasR = c, true
			return c, size, nil
		}
		if n == utf8.UTFMax || !utf8.RuneStart(p[0]) {
			r.lastR, r.hasR = utf8.RuneError, true
			return utf8.RuneError, 1, nil
		}
	}
}

// UnreadRune pushes the most recently read rune back. Only one rune of
// pushback is kept, which is all the number parser needs.
func (r *Reader) UnreadRune() error {
	if !r.hasR {
		return errors.New("terminal: no rune to unread")
	}
	r.unread, r.hasUn = r.lastR, true
	r.hasR = false
	return nil
}
