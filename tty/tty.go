package tty

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// Tty holds the terminal settings in force before raw mode was
// turned on, so they can be put back.
type Tty struct {
	fd       int
	original *unix.Termios
	once     sync.Once
	err      error
}

// Enable changes tty settings so that the program can control
// cursor position etc, and so that the program only blocks for a short
// while when reading bytes from stdin.
func Enable(fd int) (*Tty, error) {
	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("getting terminal attributes: %w", err)
	}
	raw := MakeRaw(*original)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return &Tty{fd: fd, original: original}, nil
}

// MakeRaw returns a copy of t with raw mode flags set: no echo,
// no line buffering, no signals from ^C/^Z, no output post
// processing, and reads that time out after a tenth of a second.
func MakeRaw(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}

// Restore resets tty termios attributes to what they were
// originally. Only the first call touches the terminal; later
// calls return the first call's result.
func (t *Tty) Restore() error {
	if t == nil {
		return nil
	}
	t.once.Do(func() {
		if err := unix.IoctlSetTermios(t.fd, ioctlWriteTermios, t.original); err != nil {
			t.err = fmt.Errorf("disabling raw mode: %w", err)
		}
	})
	return t.err
}
