package editor

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/bediger4000/gokilo/highlighter"
)

// Scroll moves the viewport so the cursor is on screen.
func (e *Editor) Scroll() {
	e.rx = 0
	if r := e.doc.Row(e.cy); r != nil {
		e.rx = r.CxToRx(e.cx)
	}

	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// RefreshScreen draws a whole frame with a single write so the
// terminal never shows a half drawn screen.
func (e *Editor) RefreshScreen() error {
	e.Scroll()
	var ab bytes.Buffer
	ab.WriteString("\x1b[?25l")
	ab.WriteString("\x1b[H")
	e.DrawRows(&ab)
	e.DrawStatusBar(&ab)
	e.DrawMessageBar(&ab)
	fmt.Fprintf(&ab, "\x1b[%d;%dH", (e.cy-e.rowoff)+1, (e.rx-e.coloff)+1)
	ab.WriteString("\x1b[?25h")
	if _, err := ab.WriteTo(e.out); err != nil {
		return fmt.Errorf("writing screen: %w", err)
	}
	return nil
}

func isControl(c byte) bool {
	return c < 32 || c == 127
}

func (e *Editor) DrawRows(ab *bytes.Buffer) {
	numRows := e.doc.NumRows()
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= numRows {
			if numRows == 0 && y == e.screenRows/2 {
				e.drawWelcome(ab)
			} else {
				ab.WriteString("~")
			}
		} else {
			e.drawRow(ab, filerow)
		}
		ab.WriteString("\x1b[K")
		ab.WriteString("\r\n")
	}
}

func (e *Editor) drawWelcome(ab *bytes.Buffer) {
	w := fmt.Sprintf("Kilo editor -- version %s", kiloVersion)
	if len(w) > e.screenCols {
		w = w[:e.screenCols]
	}
	padding := (e.screenCols - len(w)) / 2
	if padding > 0 {
		ab.WriteString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		ab.WriteByte(' ')
	}
	ab.WriteString(w)
}

func (e *Editor) drawRow(ab *bytes.Buffer, filerow int) {
	rw := e.doc.Row(filerow)
	length := rw.Rsize() - e.coloff
	if length < 0 {
		length = 0
	}
	if length > e.screenCols {
		length = e.screenCols
	}
	if length > 0 {
		render := rw.Render[e.coloff : e.coloff+length]
		hl := rw.Hl[e.coloff : e.coloff+length]
		currentColor := -1
		for j, c := range render {
			switch {
			case isControl(c):
				sym := byte('?')
				if c <= 26 {
					sym = '@' + c
				}
				ab.WriteString("\x1b[7m")
				ab.WriteByte(sym)
				ab.WriteString("\x1b[m")
				if currentColor != -1 {
					fmt.Fprintf(ab, "\x1b[%dm", currentColor)
				}
			case hl[j] == highlighter.HlNormal:
				if currentColor != -1 {
					ab.WriteString("\x1b[39m")
					currentColor = -1
				}
				ab.WriteByte(c)
			default:
				color := highlighter.Color(hl[j])
				if color != currentColor {
					currentColor = color
					fmt.Fprintf(ab, "\x1b[%dm", color)
				}
				ab.WriteByte(c)
			}
		}
	}
	ab.WriteString("\x1b[39m")
}

// statusLine returns the left and right halves of the status bar.
func (e *Editor) statusLine() (string, string) {
	fname := e.doc.Filename
	if fname == "" {
		fname = "[No Name]"
	}
	modified := ""
	if e.doc.Dirty > 0 {
		modified = "(modified)"
	}
	filetype := "no ft"
	if e.doc.Syntax != nil {
		filetype = e.doc.Syntax.Filetype
	}
	return fmt.Sprintf("%.20s - %d lines %s", fname, e.doc.NumRows(), modified),
		fmt.Sprintf("%s | %d/%d", filetype, e.cy+1, e.doc.NumRows())
}

// DrawStatusBar draws the inverted status line. The right half is
// dropped when both halves don't fit.
func (e *Editor) DrawStatusBar(ab *bytes.Buffer) {
	left, right := e.statusLine()
	if len(left) > e.screenCols {
		left = left[:e.screenCols]
	}
	gap := e.screenCols - len(left) - len(right)
	if gap < 0 {
		right = ""
		gap = e.screenCols - len(left)
	}
	ab.WriteString("\x1b[7m")
	ab.WriteString(left)
	ab.WriteString(strings.Repeat(" ", gap))
	ab.WriteString(right)
	ab.WriteString("\x1b[m")
	ab.WriteString("\r\n")
}

func (e *Editor) DrawMessageBar(ab *bytes.Buffer) {
	ab.WriteString("\x1b[K")
	msglen := len(e.statusmsg)
	if msglen > e.screenCols {
		msglen = e.screenCols
	}
	if msglen > 0 && e.now().Sub(e.statusMsgTime) < 5*time.Second {
		ab.WriteString(e.statusmsg[:msglen])
	}
}
