package editor

import (
	"bytes"

	"github.com/bediger4000/gokilo/highlighter"
	"github.com/bediger4000/gokilo/keyboard"
)

// searchState survives between calls of findCallback while a
// search prompt is up.
type searchState struct {
	lastMatch   int
	direction   int
	savedHlLine int
	savedHl     []byte
}

func newSearchState() searchState {
	return searchState{lastMatch: -1, direction: 1}
}

// findCallback runs after every key typed at the search prompt. It
// undoes the previous match coloring, then looks for query starting
// just past the last match, wrapping around the ends of the document.
func (e *Editor) findCallback(query []byte, key int) {
	s := &e.search

	if s.savedHl != nil {
		if r := e.doc.Row(s.savedHlLine); r != nil && len(r.Hl) == len(s.savedHl) {
			copy(r.Hl, s.savedHl)
		}
		s.savedHl = nil
	}

	switch key {
	case keyboard.Enter, keyboard.Escape:
		*s = newSearchState()
		return
	case keyboard.ArrowRight, keyboard.ArrowDown:
		s.direction = 1
	case keyboard.ArrowLeft, keyboard.ArrowUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}

	if s.lastMatch == -1 {
		s.direction = 1
	}
	if len(query) == 0 {
		return
	}

	numRows := e.doc.NumRows()
	current := s.lastMatch
	for i := 0; i < numRows; i++ {
		current += s.direction
		if current == -1 {
			current = numRows - 1
		} else if current == numRows {
			current = 0
		}

		r := e.doc.Row(current)
		x := bytes.Index(r.Render, query)
		if x < 0 {
			continue
		}
		s.lastMatch = current
		e.cy = current
		e.cx = r.RxToCx(x)
		// Scroll puts the matching line at the top of the screen.
		e.rowoff = numRows

		s.savedHlLine = current
		s.savedHl = append([]byte(nil), r.Hl...)
		for j := x; j < x+len(query); j++ {
			r.Hl[j] = highlighter.HlMatch
		}
		break
	}
}

// find runs an incremental search. Escape puts the cursor and the
// viewport back where they were; Enter leaves the cursor on the match.
func (e *Editor) find() error {
	savedCx := e.cx
	savedCy := e.cy
	savedColoff := e.coloff
	savedRowoff := e.rowoff

	_, ok, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.findCallback)
	if err != nil {
		return err
	}
	if !ok {
		e.cx = savedCx
		e.cy = savedCy
		e.coloff = savedColoff
		e.rowoff = savedRowoff
	}
	return nil
}
