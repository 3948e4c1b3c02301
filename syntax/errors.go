package syntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrSyntax is matched by every *SyntaxError.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports input which does not conform to the STML grammar.
type SyntaxError struct {
	Offset int    // byte offset into the input
	Line   int    // 1-based line number
	Column int    // 1-based column, counted in runes
	Msg    string // what the parser expected
	Near   string // a short excerpt of the input at Offset, empty at end of input
}

func (e *SyntaxError) Error() string {
	if e.Near != "" {
		return fmt.Sprintf("syntax error at line %d, column %d near %q: %s", e.Line, e.Column, e.Near, e.Msg)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Column, e.Msg)
}

// Unwrap makes SyntaxError match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

const nearLen = 12

func newSyntaxError(input string, offset int, msg string) *SyntaxError {
	if offset > len(input) {
		offset = len(input)
	}
	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	col := utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:]) + 1
	near := []rune(input[offset:])
	if len(near) > nearLen {
		near = near[:nearLen]
	}
	return &SyntaxError{
		Offset: offset,
		Line:   line,
		Column: col,
		Msg:    msg,
		Near:   string(near),
	}
}
