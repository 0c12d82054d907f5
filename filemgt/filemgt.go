package filemgt

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Load reads filename line by line, handing each line to appendRow
// without its line terminator.
func Load(filename string, appendRow func([]byte)) error {
	fd, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer fd.Close()
	return Read(fd, appendRow)
}

// Read splits r into lines for appendRow. A last line with no
// newline still counts as a line.
func Read(r io.Reader, appendRow func([]byte)) error {
	fp := bufio.NewReader(r)
	for {
		line, err := fp.ReadBytes('\n')
		if len(line) > 0 {
			appendRow(bytes.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Save replaces the contents of filename with data. The message
// is meant for the status bar either way; a non-nil error means
// the file on disk may not match the buffer.
func Save(filename string, data []byte) (msg string, err error) {
	fp, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Sprintf("Can't save! I/O error: %s", err), err
	}
	n, err := fp.Write(data)
	if cerr := fp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Sprintf("Can't save! I/O error: %s", err), err
	}
	return fmt.Sprintf("%d bytes written to disk", n), nil
}
