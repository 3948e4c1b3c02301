/*
Package css holds small value types for CSS property values.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package css

import (
	"strconv"
)

const (
	lengthPixels   uint8 = 0x01
	lengthVerbatim uint8 = 0x02
)

// Length is an option type for CSS lengths as written in STML attributes.
// It is either a number of pixels or a verbatim CSS value (e.g. "50%" or "auto").
type Length struct {
	px    int
	raw   string
	flags uint8
}

/*
type Length
	= Pixels n
	| Verbatim string
*/

// Pixels creates a length with a fixed number of CSS pixels.
func Pixels(n int) Length {
	return Length{px: n, flags: lengthPixels}
}

// Verbatim creates a length which is passed through to CSS unchanged.
func Verbatim(s string) Length {
	return Length{raw: s, flags: lengthVerbatim}
}

// ParseLength creates a Length from an attribute value. Decimal integers
// become pixel lengths, everything else is taken verbatim.
func ParseLength(s string) Length {
	if n, err := strconv.Atoi(s); err == nil {
		return Pixels(n)
	}
	return Verbatim(s)
}

// String returns the CSS representation of a length.
func (l Length) String() string {
	switch l.flags {
	case lengthPixels:
		return Px(strconv.Itoa(l.px))
	case lengthVerbatim:
		return l.raw
	}
	return ""
}

// Px appends the pixel unit to a value, unchecked.
func Px(v string) string {
	return v + "px"
}

// ---------------------------------------------------------------------------

// Match starts a match expression on l:
//
//     var n int
//     switch m := l.Match(); m {
//     case m.Pixels(&n):
//         …
//     }
//
func (l Length) Match() *Matcher {
	return &Matcher{length: l}
}

// Matcher matches a Length against its variants.
type Matcher struct {
	length Length
}

// Pixels matches pixel lengths and extracts the number of pixels.
func (m *Matcher) Pixels(n *int) *Matcher {
	if m.length.flags&lengthPixels > 0 {
		if n != nil {
			*n = m.length.px
		}
		return m
	}
	return nil
}

// Verbatim matches verbatim lengths and extracts the raw value.
func (m *Matcher) Verbatim(s *string) *Matcher {
	if m.length.flags&lengthVerbatim > 0 {
		if s != nil {
			*s = m.length.raw
		}
		return m
	}
	return nil
}
