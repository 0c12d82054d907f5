package editor

import (
	"log"

	"github.com/atotto/clipboard"

	"github.com/bediger4000/gokilo/keyboard"
)

// Clipboard is where Ctrl-C puts the cursor row and Ctrl-V gets
// text from.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error)   { return clipboard.ReadAll() }
func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

func (e *Editor) copyRow() {
	r := e.doc.Row(e.cy)
	if r == nil {
		return
	}
	if err := e.clip.WriteAll(string(r.Chars)); err != nil {
		log.Printf("clipboard write: %v", err)
		e.SetStatusMessage("Copy failed: %v", err)
		return
	}
	e.SetStatusMessage("Copied line %d", e.cy+1)
}

// paste inserts the clipboard contents at the cursor. Newlines
// split rows. Of the rest, only what could have been typed (tabs and
// printable ASCII) goes in.
func (e *Editor) paste() {
	text, err := e.clip.ReadAll()
	if err != nil {
		log.Printf("clipboard read: %v", err)
		e.SetStatusMessage("Paste failed: %v", err)
		return
	}
	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '\n':
			e.insertNewline()
		default:
			if c == keyboard.Tab || (c < 128 && !keyboard.IsControl(int(c))) {
				e.insertChar(c)
			}
		}
	}
}
