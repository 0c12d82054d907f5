package editor

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestScrollKeepsCursorVisible(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var lines []string
	for i := 0; i < 60; i++ {
		var b strings.Builder
		for j := rng.Intn(120); j > 0; j-- {
			if rng.Intn(10) == 0 {
				b.WriteByte('\t')
			} else {
				b.WriteByte('x')
			}
		}
		lines = append(lines, b.String())
	}
	e, _ := newTestEditor(t, "", lines...)

	for i := 0; i < 2000; i++ {
		e.cy = rng.Intn(len(lines))
		e.cx = rng.Intn(len(lines[e.cy]) + 1)
		if rng.Intn(4) == 0 {
			e.rowoff = rng.Intn(len(lines))
			e.coloff = rng.Intn(200)
		}
		e.Scroll()
		if want := e.doc.Row(e.cy).CxToRx(e.cx); e.rx != want {
			t.Fatalf("rx=%d, want %d", e.rx, want)
		}
		if e.cy < e.rowoff || e.cy >= e.rowoff+e.screenRows {
			t.Fatalf("cy=%d outside rows [%d,%d)", e.cy, e.rowoff, e.rowoff+e.screenRows)
		}
		if e.rx < e.coloff || e.rx >= e.coloff+e.screenCols {
			t.Fatalf("rx=%d outside cols [%d,%d)", e.rx, e.coloff, e.coloff+e.screenCols)
		}
	}
}

func TestScrollTabColumn(t *testing.T) {
	e, _ := newTestEditor(t, "", "hello\tworld")
	e.cx = 6
	e.Scroll()
	if e.rx != 8 {
		t.Fatalf("rx=%d, want 8", e.rx)
	}
}

func TestRefreshScreenEmptyDocument(t *testing.T) {
	e, out := newTestEditor(t, "")
	if err := e.RefreshScreen(); err != nil {
		t.Fatal(err)
	}
	left := "[No Name] - 0 lines "
	right := "no ft | 1/0"
	want := "\x1b[?25l\x1b[H" +
		strings.Repeat("~\x1b[K\r\n", 4) +
		"~     Kilo editor -- version " + kiloVersion + "\x1b[K\r\n" +
		strings.Repeat("~\x1b[K\r\n", 3) +
		"\x1b[7m" + left + strings.Repeat(" ", 40-len(left)-len(right)) + right + "\x1b[m\r\n" +
		"\x1b[K" +
		"\x1b[1;1H\x1b[?25h"
	if got := out.String(); got != want {
		t.Fatalf("frame:\n got  %q\n want %q", got, want)
	}
}

func TestWelcomeOnCenterRow(t *testing.T) {
	for _, rows := range []int{3, 10, 11, 25} {
		e, _ := newTestEditor(t, "")
		e.screenRows = rows - 2
		var ab bytes.Buffer
		e.DrawRows(&ab)
		lines := strings.Split(ab.String(), "\r\n")
		banner := -1
		for i, l := range lines {
			if strings.Contains(l, "Kilo editor") {
				banner = i
			}
		}
		if want := (rows - 2) / 2; banner != want {
			t.Errorf("%d rows: banner on row %d, want %d", rows, banner, want)
		}
	}
}

func TestRefreshScreenIsOneWrite(t *testing.T) {
	var w countingWriter
	e := New(strings.NewReader(""), &w, 10, 40, Options{})
	e.doc.AppendRow([]byte("one"))
	if err := e.RefreshScreen(); err != nil {
		t.Fatal(err)
	}
	if w.writes != 1 {
		t.Fatalf("%d writes", w.writes)
	}
}

type countingWriter struct {
	writes int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	c.writes++
	return len(p), nil
}

func TestNoWelcomeWithContent(t *testing.T) {
	e, out := newTestEditor(t, "", "x")
	if err := e.RefreshScreen(); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Kilo editor") {
		t.Fatal("welcome banner drawn for non-empty document")
	}
}

func TestDrawRowColors(t *testing.T) {
	e, _ := newTestEditor(t, "", "int a = 5;")
	e.doc.SetSyntax(e.syntaxes.Select("x.c"))
	var ab bytes.Buffer
	e.drawRow(&ab, 0)
	want := "\x1b[33mint\x1b[39m a = \x1b[31m5\x1b[39m;\x1b[39m"
	if got := ab.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestDrawRowControlCharacters(t *testing.T) {
	e, _ := newTestEditor(t, "", "a\x01b\x7f", "\"a\x01\"")
	e.doc.SetSyntax(e.syntaxes.Select("x.c"))

	var ab bytes.Buffer
	e.drawRow(&ab, 0)
	if got, want := ab.String(), "a\x1b[7mA\x1b[mb\x1b[7m?\x1b[m\x1b[39m"; got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}

	ab.Reset()
	e.drawRow(&ab, 1)
	if got, want := ab.String(), "\x1b[35m\"a\x1b[7mA\x1b[m\x1b[35m\"\x1b[39m"; got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestHorizontalClipping(t *testing.T) {
	long := strings.Repeat("abcdefghij", 5)
	e, out := newTestEditor(t, "", long)
	e.cx = 45
	if err := e.RefreshScreen(); err != nil {
		t.Fatal(err)
	}
	if e.coloff != 6 {
		t.Fatalf("coloff=%d", e.coloff)
	}
	frame := out.String()
	if !strings.Contains(frame, "\x1b[H"+long[6:46]+"\x1b[39m\x1b[K\r\n") {
		t.Fatalf("row not clipped to [6,46): %q", frame)
	}
	if !strings.HasSuffix(frame, "\x1b[1;40H\x1b[?25h") {
		t.Fatalf("cursor: %q", frame[len(frame)-20:])
	}
}

func TestCursorPlacementAfterScroll(t *testing.T) {
	lines := make([]string, 20)
	lines[15] = "\tabc"
	e, out := newTestEditor(t, "", lines...)
	e.cy, e.cx = 15, 1
	if err := e.RefreshScreen(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "\x1b[8;9H\x1b[?25h") {
		t.Fatalf("frame ends %q", out.String()[out.Len()-20:])
	}
}

func TestStatusBar(t *testing.T) {
	e, _ := newTestEditor(t, "", "a", "b")
	e.doc.Filename = "file.c"
	e.doc.SetSyntax(e.syntaxes.Select("file.c"))
	e.doc.Dirty = 1

	var ab bytes.Buffer
	e.DrawStatusBar(&ab)
	left := "file.c - 2 lines (modified)"
	right := "c | 1/2"
	want := "\x1b[7m" + left + strings.Repeat(" ", 40-len(left)-len(right)) + right + "\x1b[m\r\n"
	if got := ab.String(); got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestStatusBarNarrowTerminal(t *testing.T) {
	e, _ := newTestEditor(t, "", "a")
	e.doc.Filename = "file.c"
	e.doc.SetSyntax(e.syntaxes.Select("file.c"))
	left := "file.c - 1 lines "

	for _, cols := range []int{10, len(left) + 3} {
		e.screenCols = cols
		var ab bytes.Buffer
		e.DrawStatusBar(&ab)
		body := left
		if len(body) > cols {
			body = body[:cols]
		}
		want := "\x1b[7m" + body + strings.Repeat(" ", cols-len(body)) + "\x1b[m\r\n"
		if got := ab.String(); got != want {
			t.Errorf("%d cols: got %q, want %q", cols, got, want)
		}
	}
}

func TestStatusBarTruncatesFilename(t *testing.T) {
	e, _ := newTestEditor(t, "", "a")
	e.doc.Filename = "a-very-long-file-name-indeed.txt"
	var ab bytes.Buffer
	e.DrawStatusBar(&ab)
	if !strings.HasPrefix(ab.String(), "\x1b[7ma-very-long-file-nam - 1 lines") {
		t.Fatalf("status=%q", ab.String())
	}
}

func TestMessageBarExpires(t *testing.T) {
	e, _ := newTestEditor(t, "")
	now := epoch
	e.now = func() time.Time { return now }
	e.SetStatusMessage("hello %d", 42)

	var ab bytes.Buffer
	e.DrawMessageBar(&ab)
	if got := ab.String(); got != "\x1b[Khello 42" {
		t.Fatalf("fresh message: %q", got)
	}

	now = epoch.Add(5 * time.Second)
	ab.Reset()
	e.DrawMessageBar(&ab)
	if got := ab.String(); got != "\x1b[K" {
		t.Fatalf("expired message: %q", got)
	}
}

func TestMessageBarTruncates(t *testing.T) {
	e, _ := newTestEditor(t, "")
	e.SetStatusMessage("%s", strings.Repeat("m", 60))
	var ab bytes.Buffer
	e.DrawMessageBar(&ab)
	if got, want := ab.String(), "\x1b[K"+strings.Repeat("m", 40); got != want {
		t.Fatalf("got %q", got)
	}
}
