package syntax

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Grammar holds the lexical and syntactic definition of STML.
// It is immutable after construction.
type Grammar struct {
	doctype   string // lower case; matched case-insensitively
	closeTag  string
	selfClose string
	tagname   charClass // [a-z]
	attrname  charClass // [a-zA-Z]
	attrvalue charClass // [^ <>/], bytes ≥ 0x80 included
	text      charClass // [^<>], bytes ≥ 0x80 included
}

// charClass is a byte-indexed membership table.
type charClass [256]bool

func (cc *charClass) contains(b byte) bool {
	return cc[b]
}

func newCharClass(member func(b byte) bool) charClass {
	var cc charClass
	for i := 0; i < 256; i++ {
		cc[i] = member(byte(i))
	}
	return cc
}

var (
	stmlGrammar     *Grammar
	stmlGrammarOnce sync.Once
)

// STML returns the grammar for STML documents. It is built on first use and
// shared afterwards.
func STML() *Grammar {
	stmlGrammarOnce.Do(func() {
		stmlGrammar = newGrammar()
		tracer().Debugf("STML grammar initialized")
	})
	return stmlGrammar
}

func newGrammar() *Grammar {
	return &Grammar{
		doctype:   "<!doctype stml>",
		closeTag:  "</>",
		selfClose: "/>",
		tagname: newCharClass(func(b byte) bool {
			return b >= 'a' && b <= 'z'
		}),
		attrname: newCharClass(func(b byte) bool {
			return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
		}),
		attrvalue: newCharClass(func(b byte) bool {
			return b != ' ' && b != '<' && b != '>' && b != '/'
		}),
		text: newCharClass(func(b byte) bool {
			return b != '<' && b != '>'
		}),
	}
}

// Doctype returns the doctype preamble (lower case).
func (g *Grammar) Doctype() string {
	return g.doctype
}

// hasDoctype is a predicate: does input start with the doctype at pos?
func (g *Grammar) hasDoctype(input string, pos int) bool {
	end := pos + len(g.doctype)
	return end <= len(input) && strings.EqualFold(input[pos:end], g.doctype)
}

// spaceAt returns the byte width of a whitespace character at pos, or 0.
func spaceAt(input string, pos int) int {
	if pos >= len(input) {
		return 0
	}
	if b := input[pos]; b < utf8.RuneSelf {
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v' {
			return 1
		}
		return 0
	}
	r, w := utf8.DecodeRuneInString(input[pos:])
	if unicode.IsSpace(r) {
		return w
	}
	return 0
}

// isBlank is a predicate: does s consist of whitespace only?
func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}
