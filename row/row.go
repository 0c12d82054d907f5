package row

// TabStop is the render column multiple a tab expands to.
const TabStop = 8

// Row is one line of the edited file. Chars is what gets saved,
// Render is what gets drawn, and Hl holds one highlight category
// per byte of Render.
type Row struct {
	Chars  []byte
	Render []byte
	Hl     []byte
}

// New returns a row holding a private copy of s, with its render
// string already built.
func New(s []byte) *Row {
	r := &Row{Chars: append(make([]byte, 0, len(s)), s...)}
	r.Update()
	return r
}

func (r *Row) Size() int  { return len(r.Chars) }
func (r *Row) Rsize() int { return len(r.Render) }

// CxToRx converts an index into Chars to the matching index into Render.
func (r *Row) CxToRx(cx int) int {
	rx := 0
	for j := 0; j < len(r.Chars) && j < cx; j++ {
		if r.Chars[j] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse of CxToRx. Render columns inside a tab's
// expansion map to the tab itself.
func (r *Row) RxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(r.Chars); cx++ {
		if r.Chars[cx] == '\t' {
			curRx += (TabStop - 1) - (curRx % TabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
	}
	return cx
}

// Update rebuilds Render from Chars and resets Hl to all zero
// (normal) cells. Callers re-run the highlighter afterwards.
func (r *Row) Update() {
	tabs := 0
	for _, c := range r.Chars {
		if c == '\t' {
			tabs++
		}
	}

	render := make([]byte, 0, len(r.Chars)+tabs*(TabStop-1))
	for _, c := range r.Chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.Render = render
	r.Hl = make([]byte, len(render))
}

// InsertChar puts c in front of position at. An out of range
// position appends.
func (r *Row) InsertChar(at int, c byte) {
	if at < 0 || at > len(r.Chars) {
		at = len(r.Chars)
	}
	r.Chars = append(r.Chars, 0)
	copy(r.Chars[at+1:], r.Chars[at:])
	r.Chars[at] = c
	r.Update()
}

// DelChar removes the byte at position at, if there is one.
func (r *Row) DelChar(at int) bool {
	if at < 0 || at >= len(r.Chars) {
		return false
	}
	r.Chars = append(r.Chars[:at], r.Chars[at+1:]...)
	r.Update()
	return true
}

func (r *Row) AppendString(s []byte) {
	r.Chars = append(r.Chars, s...)
	r.Update()
}

// Truncate cuts the row off at position at and returns a copy of
// whatever was past it.
func (r *Row) Truncate(at int) []byte {
	if at < 0 {
		at = 0
	}
	if at >= len(r.Chars) {
		return nil
	}
	tail := append([]byte(nil), r.Chars[at:]...)
	r.Chars = r.Chars[:at]
	r.Update()
	return tail
}
