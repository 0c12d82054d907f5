package keyboard

import (
	"errors"
	"io"
	"syscall"
)

const (
	Backspace = 127
	Enter     = '\r'
	Tab       = '\t'
	Escape    = '\x1b'
	CtrlC     = 'c' & 0x1f
	CtrlF     = 'f' & 0x1f
	CtrlH     = 'h' & 0x1f
	CtrlL     = 'l' & 0x1f
	CtrlQ     = 'q' & 0x1f
	CtrlS     = 's' & 0x1f
	CtrlV     = 'v' & 0x1f
)

// Keys that arrive as escape sequences get values outside the
// byte range.
const (
	ArrowLeft = 1000 + iota
	ArrowRight
	ArrowUp
	ArrowDown
	DelKey
	HomeKey
	EndKey
	PageUp
	PageDown
)

// Reader turns raw terminal input into keys.
type Reader struct {
	r io.Reader
}

func New(r io.Reader) *Reader {
	return &Reader{r: r}
}

// readByte does a single read. A raw mode tty that times out
// returns zero bytes, which shows up as ok == false with a nil error.
func (k *Reader) readByte() (b byte, ok bool, err error) {
	var buffer [1]byte
	n, err := k.r.Read(buffer[:])
	if n == 1 {
		return buffer[0], true, nil
	}
	if err == nil || err == io.EOF || errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR) {
		return 0, false, nil
	}
	return 0, false, err
}

// ReadKey waits for a keypress and returns it. Escape sequences
// for arrows and the navigation keys get decoded; anything else
// starting with ESC comes back as a plain Escape.
func (k *Reader) ReadKey() (int, error) {
	var c byte
	for {
		b, ok, err := k.readByte()
		if err != nil {
			return -1, err
		}
		if ok {
			c = b
			break
		}
	}
	if c != Escape {
		return int(c), nil
	}

	var seq [2]byte
	for i := 0; i < 2; i++ {
		b, ok, err := k.readByte()
		if err != nil || !ok {
			return Escape, nil
		}
		seq[i] = b
	}

	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			b, ok, err := k.readByte()
			if err != nil || !ok || b != '~' {
				return Escape, nil
			}
			switch seq[1] {
			case '1', '7':
				return HomeKey, nil
			case '3':
				return DelKey, nil
			case '4', '8':
				return EndKey, nil
			case '5':
				return PageUp, nil
			case '6':
				return PageDown, nil
			}
			return Escape, nil
		}
		switch seq[1] {
		case 'A':
			return ArrowUp, nil
		case 'B':
			return ArrowDown, nil
		case 'C':
			return ArrowRight, nil
		case 'D':
			return ArrowLeft, nil
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return HomeKey, nil
		case 'F':
			return EndKey, nil
		}
	}
	return Escape, nil
}

// IsControl reports whether key is an ASCII control byte.
func IsControl(key int) bool {
	return key >= 0 && (key < 32 || key == Backspace)
}
