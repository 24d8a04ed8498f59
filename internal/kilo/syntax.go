package kilo

import "strings"

// Highlight classes, one per render byte.
const (
	HLNormal = iota
	HLComment
	HLMLComment
	HLKeyword1
	HLKeyword2
	HLString
	HLNumber
	HLMatch
)

// Feature flags for a Syntax descriptor.
const (
	HighlightNumbers = 1 << 0
	HighlightStrings = 1 << 1
)

// Syntax is an immutable language descriptor: display name, filename match
// patterns (an extension-prefixed pattern matches by suffix; any other
// pattern matches by substring), a keyword list (a trailing '|' marks the
// keyword as a secondary/type keyword), comment markers, and feature
// flags.
type Syntax struct {
	Name        string
	FileMatch   []string
	Keywords    []string
	SingleLine  string
	MLCommStart string
	MLCommEnd   string
	Flags       int
}

// syntaxDB is the process-lifetime immutable table of known languages. It
// follows the teacher's C and Go entries; a Python entry is added to
// exercise the no-multi-line-comment-markers edge case (see SPEC_FULL.md).
var syntaxDB = []Syntax{
	{
		Name:      "c",
		FileMatch: []string{".c", ".h", ".cpp"},
		Keywords: []string{
			"switch", "if", "while", "for", "break", "continue", "return", "else",
			"struct", "union", "typedef", "static", "enum", "class", "case",
			"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|", "void|",
		},
		SingleLine:  "//",
		MLCommStart: "/*",
		MLCommEnd:   "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "go",
		FileMatch: []string{".go", ".mod", ".sum"},
		Keywords: []string{
			"break", "case", "chan", "const", "continue", "default", "defer", "else",
			"fallthrough", "for", "func|", "go", "goto", "if", "import", "interface",
			"map", "package", "range", "return", "select", "struct", "switch", "type",
			"var",
		},
		SingleLine:  "//",
		MLCommStart: "/*",
		MLCommEnd:   "*/",
		Flags:       HighlightNumbers | HighlightStrings,
	},
	{
		Name:      "python",
		FileMatch: []string{".py"},
		Keywords: []string{
			"and", "as", "assert", "break", "class", "continue", "def", "del",
			"elif", "else", "except", "finally", "for", "from", "global", "if",
			"import", "in", "is", "lambda", "nonlocal", "not", "or", "pass",
			"raise", "return", "try", "while", "with", "yield",
			"int|", "float|", "str|", "bool|", "bytes|", "list|", "dict|", "set|", "tuple|",
		},
		SingleLine: "#",
		Flags:      HighlightNumbers | HighlightStrings,
	},
}

// hlColor maps a highlight class to its ANSI SGR color code.
func hlColor(hl int) int {
	switch hl {
	case HLComment, HLMLComment:
		return 36
	case HLKeyword1:
		return 33
	case HLKeyword2:
		return 32
	case HLString:
		return 35
	case HLNumber:
		return 31
	case HLMatch:
		return 34
	default:
		return 39
	}
}

// isSeparator reports whether c is a separator: whitespace, NUL, or one of
// the punctuation bytes a keyword/number scan must stop at.
func isSeparator(c byte) bool {
	if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' || c == 0 {
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) >= 0
}

// selectSyntax looks up the Syntax descriptor whose FileMatch patterns
// match filename. Patterns starting with '.' match the filename's
// extension (the substring from the last '.') by exact suffix; other
// patterns match anywhere in the filename.
func selectSyntax(filename string) *Syntax {
	if filename == "" {
		return nil
	}

	ext := ""
	if i := strings.LastIndex(filename, "."); i != -1 {
		ext = filename[i:]
	}

	for i := range syntaxDB {
		s := &syntaxDB[i]
		for _, pattern := range s.FileMatch {
			isExt := pattern[0] == '.'
			if isExt && ext != "" && ext == pattern {
				return s
			}
			if !isExt && strings.Contains(filename, pattern) {
				return s
			}
		}
	}
	return nil
}
