package highlighter

// Database is an ordered list of syntaxes; the first one whose
// patterns match a filename wins.
type Database struct {
	syntaxes []*Syntax
}

// Builtin returns a database holding the compiled-in syntaxes.
func Builtin() *Database {
	db := &Database{}
	for i := range hldb {
		s := hldb[i]
		db.syntaxes = append(db.syntaxes, &s)
	}
	return db
}

// Add puts s ahead of everything already in the database, so user
// defined syntaxes override the built in ones.
func (db *Database) Add(s Syntax) {
	db.syntaxes = append([]*Syntax{&s}, db.syntaxes...)
}

// Select returns the syntax for filename, or nil if none matches.
func (db *Database) Select(filename string) *Syntax {
	if db == nil || filename == "" {
		return nil
	}
	for _, s := range db.syntaxes {
		if s.Matches(filename) {
			return s
		}
	}
	return nil
}

// Filetypes lists the names of the known syntaxes in lookup order.
func (db *Database) Filetypes() []string {
	names := make([]string, 0, len(db.syntaxes))
	for _, s := range db.syntaxes {
		names = append(names, s.Filetype)
	}
	return names
}

var hldb = []Syntax{
	{
		Filetype:  "c",
		Filematch: []string{".c", ".h", ".cpp"},
		Keywords: Keywords("switch", "if", "while", "for",
			"break", "continue", "return", "else", "struct",
			"union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|",
			"unsigned|", "signed|", "void|",
		),
		SingleLineComment: []byte("//"),
		HighlightNumbers:  true,
		HighlightStrings:  true,
	},
	{
		Filetype:  "go",
		Filematch: []string{".go"},
		Keywords: Keywords("break", "case", "chan", "const", "continue",
			"default", "defer", "else", "fallthrough", "for", "func",
			"go", "goto", "if", "import", "interface", "map", "package",
			"range", "return", "select", "struct", "switch", "type", "var",
			"bool|", "byte|", "error|", "float32|", "float64|", "int|",
			"int8|", "int16|", "int32|", "int64|", "rune|", "string|",
			"uint|", "uint8|", "uint16|", "uint32|", "uint64|", "uintptr|",
			"nil|", "true|", "false|",
		),
		SingleLineComment: []byte("//"),
		HighlightNumbers:  true,
		HighlightStrings:  true,
	},
}
