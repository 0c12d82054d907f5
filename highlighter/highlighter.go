package highlighter

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/bediger4000/gokilo/row"
)

// Highlight categories, one per render byte of a row.
const (
	HlNormal byte = iota
	HlComment
	HlKeyword1
	HlKeyword2
	HlString
	HlNumber
	HlMatch
)

// Keyword is a word the highlighter colors when it stands
// between separators. Tier2 keywords (usually type names) get
// the second keyword color.
type Keyword struct {
	Word  []byte
	Tier2 bool
}

// Syntax is the rule set for one kind of file.
type Syntax struct {
	Filetype          string
	Filematch         []string
	Keywords          []Keyword
	SingleLineComment []byte
	HighlightNumbers  bool
	HighlightStrings  bool
}

// Keywords builds a keyword list from words, where a trailing '|'
// marks a tier 2 keyword: "int|".
func Keywords(words ...string) []Keyword {
	kws := make([]Keyword, 0, len(words))
	for _, w := range words {
		kw := Keyword{Word: []byte(w)}
		if strings.HasSuffix(w, "|") {
			kw.Word = kw.Word[:len(kw.Word)-1]
			kw.Tier2 = true
		}
		if len(kw.Word) > 0 {
			kws = append(kws, kw)
		}
	}
	return kws
}

var separators = []byte(",.()+-/*=~%<>[];")

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return bytes.IndexByte(separators, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Highlight fills in r.Hl from r.Render. Rows are highlighted
// independently of each other, so the result depends only on the
// row's own render string. A nil Syntax leaves everything normal.
func (syntax *Syntax) Highlight(r *row.Row) {
	if len(r.Hl) != len(r.Render) {
		r.Hl = make([]byte, len(r.Render))
	}
	for i := range r.Hl {
		r.Hl[i] = HlNormal
	}
	if syntax == nil {
		return
	}

	render := r.Render
	scs := syntax.SingleLineComment
	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := HlNormal
		if i > 0 {
			prevHl = r.Hl[i-1]
		}

		if len(scs) > 0 && inString == 0 && bytes.HasPrefix(render[i:], scs) {
			for j := i; j < len(render); j++ {
				r.Hl[j] = HlComment
			}
			break
		}

		if syntax.HighlightStrings {
			if inString != 0 {
				r.Hl[i] = HlString
				if c == '\\' && i+1 < len(render) {
					r.Hl[i+1] = HlString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			} else if c == '"' || c == '\'' {
				inString = c
				r.Hl[i] = HlString
				i++
				continue
			}
		}

		if syntax.HighlightNumbers {
			if (isDigit(c) && (prevSep || prevHl == HlNumber)) ||
				(c == '.' && prevHl == HlNumber) {
				r.Hl[i] = HlNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n := syntax.matchKeyword(r, i); n > 0 {
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = isSeparator(c)
		i++
	}
}

// matchKeyword colors the keyword starting at render position i,
// if any, and returns its length.
func (syntax *Syntax) matchKeyword(r *row.Row, i int) int {
	rest := r.Render[i:]
	for _, kw := range syntax.Keywords {
		klen := len(kw.Word)
		if !bytes.HasPrefix(rest, kw.Word) {
			continue
		}
		if len(rest) != klen && !isSeparator(rest[klen]) {
			continue
		}
		color := HlKeyword1
		if kw.Tier2 {
			color = HlKeyword2
		}
		for j := i; j < i+klen; j++ {
			r.Hl[j] = color
		}
		return klen
	}
	return 0
}

// Color maps a highlight category to an ANSI foreground color.
func Color(hl byte) int {
	switch hl {
	case HlComment:
		return 36
	case HlKeyword1:
		return 32
	case HlKeyword2:
		return 33
	case HlString:
		return 35
	case HlNumber:
		return 31
	case HlMatch:
		return 34
	}
	return 37
}

// Matches reports whether filename fits one of the syntax's
// patterns. A pattern starting with '.' has to be the file's
// extension; any other pattern matches as a substring.
func (syntax *Syntax) Matches(filename string) bool {
	if filename == "" {
		return false
	}
	ext := filepath.Ext(filename)
	for _, pat := range syntax.Filematch {
		if strings.HasPrefix(pat, ".") {
			if ext == pat {
				return true
			}
		} else if strings.Contains(filename, pat) {
			return true
		}
	}
	return false
}
