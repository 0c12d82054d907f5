package editor

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/bediger4000/gokilo/document"
	"github.com/bediger4000/gokilo/filemgt"
	"github.com/bediger4000/gokilo/highlighter"
	"github.com/bediger4000/gokilo/keyboard"
)

const kiloVersion = "0.1.0"

// QuitTimes is how many Ctrl-Q presses it takes to quit with
// unsaved changes.
const QuitTimes = 3

const statusMsgMax = 80

// Options holds the optional collaborators of an Editor. Zero
// values get sensible defaults.
type Options struct {
	Syntaxes  *highlighter.Database
	Clipboard Clipboard
	Now       func() time.Time
}

// Editor instances keep track of the whole editing session: cursor
// coords inside of the document, which part of the document is on
// screen, the status message, and where keys come from and frames
// go to.
type Editor struct {
	cx         int
	cy         int
	rx         int
	rowoff     int
	coloff     int
	screenRows int
	screenCols int

	doc      *document.Document
	syntaxes *highlighter.Database

	statusmsg     string
	statusMsgTime time.Time
	quitTimes     int
	search        searchState

	keys *keyboard.Reader
	out  io.Writer
	now  func() time.Time
	clip Clipboard
}

// New makes an editor with an empty document for a terminal of
// rows by cols cells. Two rows are kept for the status and message
// bars.
func New(in io.Reader, out io.Writer, rows, cols int, opts Options) *Editor {
	e := &Editor{
		screenRows: rows - 2,
		screenCols: cols,
		doc:        document.New(),
		syntaxes:   opts.Syntaxes,
		quitTimes:  QuitTimes,
		search:     newSearchState(),
		keys:       keyboard.New(in),
		out:        out,
		now:        opts.Now,
		clip:       opts.Clipboard,
	}
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	if e.syntaxes == nil {
		e.syntaxes = highlighter.Builtin()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.clip == nil {
		e.clip = systemClipboard{}
	}
	return e
}

// Open reads filename into the document and picks its syntax.
func (e *Editor) Open(filename string) error {
	e.doc = document.New()
	e.doc.Filename = filename
	if err := filemgt.Load(filename, e.doc.AppendRow); err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	e.doc.SetSyntax(e.syntaxes.Select(filename))
	e.doc.Dirty = 0
	log.Printf("opened %s: %d rows", filename, e.doc.NumRows())
	return nil
}

// Run alternates drawing a frame and handling a key until the
// user quits or something fatal happens.
func (e *Editor) Run() error {
	for {
		if err := e.RefreshScreen(); err != nil {
			return err
		}
		more, err := e.ProcessKeypress()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

/*** editor operations ***/

func (e *Editor) insertChar(c byte) {
	if e.cy == e.doc.NumRows() {
		e.doc.AppendRow(nil)
	}
	e.doc.InsertChar(e.cy, e.cx, c)
	e.cx++
}

func (e *Editor) insertNewline() {
	if e.cx == 0 {
		e.doc.InsertRow(e.cy, nil)
	} else {
		e.doc.SplitRow(e.cy, e.cx)
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) delChar() {
	if e.cy == e.doc.NumRows() {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}
	if e.cx > 0 {
		e.doc.DelChar(e.cy, e.cx-1)
		e.cx--
	} else {
		e.cx = e.doc.Row(e.cy - 1).Size()
		e.doc.JoinRows(e.cy - 1)
		e.cy--
	}
}

// Save writes the document out, asking for a filename first if
// it doesn't have one. Failing to write is not fatal: the message
// bar says what went wrong and the document stays dirty.
func (e *Editor) Save() error {
	if e.doc.Filename == "" {
		name, ok, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if !ok {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.doc.Filename = name
		e.doc.SetSyntax(e.syntaxes.Select(name))
	}
	msg, err := filemgt.Save(e.doc.Filename, e.doc.Bytes())
	if err != nil {
		log.Printf("save %s: %v", e.doc.Filename, err)
	} else {
		e.doc.Dirty = 0
	}
	e.SetStatusMessage("%s", msg)
	return nil
}

/*** input ***/

// Prompt shows format (with a %s for the typed text) in the
// message bar and collects a line. It returns false if the user
// hit Escape. callback, if not nil, sees the text and the key after
// every keypress.
func (e *Editor) Prompt(format string, callback func([]byte, int)) (string, bool, error) {
	var buf []byte

	for {
		e.SetStatusMessage(format, buf)
		if err := e.RefreshScreen(); err != nil {
			return "", false, err
		}

		c, err := e.keys.ReadKey()
		if err != nil {
			return "", false, err
		}

		switch {
		case c == keyboard.DelKey || c == keyboard.CtrlH || c == keyboard.Backspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case c == keyboard.Escape:
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, c)
			}
			return "", false, nil
		case c == keyboard.Enter:
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, c)
				}
				return string(buf), true, nil
			}
		case c < 128 && !keyboard.IsControl(c):
			buf = append(buf, byte(c))
		}
		if callback != nil {
			callback(buf, c)
		}
	}
}

func (e *Editor) MoveCursor(key int) {
	numRows := e.doc.NumRows()
	switch key {
	case keyboard.ArrowLeft:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.doc.Row(e.cy).Size()
		}
	case keyboard.ArrowRight:
		if r := e.doc.Row(e.cy); r != nil {
			if e.cx < r.Size() {
				e.cx++
			} else if e.cx == r.Size() {
				e.cy++
				e.cx = 0
			}
		}
	case keyboard.ArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyboard.ArrowDown:
		if e.cy < numRows {
			e.cy++
		}
	}

	rowlen := 0
	if r := e.doc.Row(e.cy); r != nil {
		rowlen = r.Size()
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress reads one key and acts on it. It returns false
// when the editor should exit.
func (e *Editor) ProcessKeypress() (bool, error) {
	c, err := e.keys.ReadKey()
	if err != nil {
		return false, fmt.Errorf("reading key: %w", err)
	}

	switch c {
	case keyboard.Enter:
		e.insertNewline()
	case keyboard.CtrlQ:
		if e.doc.Dirty > 0 {
			e.quitTimes--
			if e.quitTimes > 0 {
				e.SetStatusMessage("WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
				return true, nil
			}
		}
		return false, nil
	case keyboard.CtrlS:
		if err := e.Save(); err != nil {
			return false, err
		}
	case keyboard.CtrlF:
		if err := e.find(); err != nil {
			return false, err
		}
	case keyboard.CtrlC:
		e.copyRow()
	case keyboard.CtrlV:
		e.paste()
	case keyboard.HomeKey:
		e.cx = 0
	case keyboard.EndKey:
		if r := e.doc.Row(e.cy); r != nil {
			e.cx = r.Size()
		}
	case keyboard.CtrlH, keyboard.Backspace, keyboard.DelKey:
		if c == keyboard.DelKey {
			e.MoveCursor(keyboard.ArrowRight)
		}
		e.delChar()
	case keyboard.PageUp, keyboard.PageDown:
		dir := keyboard.ArrowDown
		if c == keyboard.PageUp {
			e.cy = e.rowoff
			dir = keyboard.ArrowUp
		} else {
			e.cy = e.rowoff + e.screenRows - 1
			if e.cy > e.doc.NumRows() {
				e.cy = e.doc.NumRows()
			}
		}
		for times := e.screenRows; times > 0; times-- {
			e.MoveCursor(dir)
		}
	case keyboard.ArrowUp, keyboard.ArrowDown,
		keyboard.ArrowLeft, keyboard.ArrowRight:
		e.MoveCursor(c)
	case keyboard.CtrlL, keyboard.Escape:
	default:
		if c == keyboard.Tab || (c < 128 && !keyboard.IsControl(c)) {
			e.insertChar(byte(c))
		}
	}
	e.quitTimes = QuitTimes
	return true, nil
}

// SetStatusMessage formats a message for the message bar, where it
// stays for five seconds.
func (e *Editor) SetStatusMessage(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > statusMsgMax {
		msg = msg[:statusMsgMax]
	}
	e.statusmsg = msg
	e.statusMsgTime = e.now()
}
