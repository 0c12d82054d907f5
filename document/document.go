package document

import (
	"bytes"

	"github.com/bediger4000/gokilo/highlighter"
	"github.com/bediger4000/gokilo/row"
)

// Document is the in-memory copy of the edited file. It owns its
// rows; every mutation goes through it so that each changed row's
// render and highlight arrays get rebuilt and Dirty gets bumped.
type Document struct {
	Filename string
	Dirty    int
	Syntax   *highlighter.Syntax
	rows     []*row.Row
}

func New() *Document {
	return &Document{}
}

func (d *Document) NumRows() int { return len(d.rows) }

// Row returns row at, or nil when at is out of range.
func (d *Document) Row(at int) *row.Row {
	if at < 0 || at >= len(d.rows) {
		return nil
	}
	return d.rows[at]
}

// SetSyntax switches highlighting rules and redoes the highlighting
// for every row.
func (d *Document) SetSyntax(s *highlighter.Syntax) {
	d.Syntax = s
	for _, r := range d.rows {
		d.Syntax.Highlight(r)
	}
}

func (d *Document) touch(r *row.Row) {
	d.Syntax.Highlight(r)
	d.Dirty++
}

// AppendRow puts a line of text at the end of the document.
func (d *Document) AppendRow(s []byte) {
	d.InsertRow(len(d.rows), s)
}

func (d *Document) InsertRow(at int, s []byte) {
	if at < 0 || at > len(d.rows) {
		return
	}
	r := row.New(s)
	d.rows = append(d.rows, nil)
	copy(d.rows[at+1:], d.rows[at:])
	d.rows[at] = r
	d.touch(r)
}

func (d *Document) DelRow(at int) {
	if at < 0 || at >= len(d.rows) {
		return
	}
	copy(d.rows[at:], d.rows[at+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.Dirty++
}

func (d *Document) InsertChar(at, col int, c byte) {
	r := d.Row(at)
	if r == nil {
		return
	}
	r.InsertChar(col, c)
	d.touch(r)
}

func (d *Document) DelChar(at, col int) {
	r := d.Row(at)
	if r == nil {
		return
	}
	if r.DelChar(col) {
		d.touch(r)
	}
}

func (d *Document) AppendString(at int, s []byte) {
	r := d.Row(at)
	if r == nil {
		return
	}
	r.AppendString(s)
	d.touch(r)
}

// SplitRow cuts row at at column col and puts the remainder in a
// new row just below it.
func (d *Document) SplitRow(at, col int) {
	r := d.Row(at)
	if r == nil {
		return
	}
	tail := r.Truncate(col)
	d.touch(r)
	d.InsertRow(at+1, tail)
}

// JoinRows appends row at+1 onto row at and removes row at+1.
func (d *Document) JoinRows(at int) {
	if d.Row(at) == nil || d.Row(at+1) == nil {
		return
	}
	d.AppendString(at, d.rows[at+1].Chars)
	d.DelRow(at + 1)
}

// Bytes returns the document the way it gets written to disk:
// each row followed by a newline.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	for _, r := range d.rows {
		buf.Write(r.Chars)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
