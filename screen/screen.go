package screen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"syscall"

	"golang.org/x/term"
)

// CursorPosition asks the terminal where its cursor is and parses
// the ESC [ rows ; cols R reply.
func CursorPosition(in io.Reader, out io.Writer) (rows int, cols int, err error) {
	if _, err = io.WriteString(out, "\x1b[6n"); err != nil {
		return 0, 0, err
	}
	var buf []byte
	var b [1]byte
	for len(buf) < 32 {
		n, err := in.Read(b[:])
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, syscall.EAGAIN) && !errors.Is(err, syscall.EINTR) {
			return 0, 0, fmt.Errorf("reading cursor position: %w", err)
		}
		if n != 1 || b[0] == 'R' {
			break
		}
		buf = append(buf, b[0])
	}
	if !bytes.HasPrefix(buf, []byte("\x1b[")) {
		log.Printf("cursor position reply %q lacks ESC [", buf)
		return 0, 0, fmt.Errorf("bad cursor position reply %q", buf)
	}
	if n, e := fmt.Sscanf(string(buf[2:]), "%d;%d", &rows, &cols); n != 2 || e != nil {
		log.Printf("cursor position reply %q: got %d items: %v", buf, n, e)
		return 0, 0, fmt.Errorf("bad cursor position reply %q", buf)
	}
	return rows, cols, nil
}

// WindowSize returns the terminal size, asking the kernel first and
// falling back to pushing the cursor into the bottom right corner
// and reading its position back.
func WindowSize(fd int, in io.Reader, out io.Writer) (rows int, cols int, err error) {
	cols, rows, err = term.GetSize(fd)
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	log.Printf("window size ioctl failed (%v), asking the cursor position", err)
	if _, err := io.WriteString(out, "\x1b[999C\x1b[998B"); err != nil {
		return 0, 0, err
	}
	return CursorPosition(in, out)
}
