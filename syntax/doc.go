/*
Package syntax implements the grammar and the parser for STML documents.

Grammar

The grammar of STML is small and fixed (doctype is matched case-insensitively):

    stml_page  = ws doctype (ws tag ws)*
    doctype    = "<!doctype stml>"
    tag        = tag_self | tag_body
    tag_body   = tag_open ws (tag | tag_self | text)* ws "</>"
    tag_open   = "<" ws tagname ws (attribute ws)* ws ">"
    tag_self   = "<" ws tagname ws (attribute ws)* ws "/>"
    tagname    = [a-z]+
    attribute  = [a-zA-Z]+ "=" [^ <>/]+
    text       = [^<>]+
    ws         = whitespace*

Closing tags are the fixed token "</>"; they are not qualified by a tag name.
A page consisting of the doctype only is valid and yields an empty document.

The grammar is represented by an immutable value, built once. Grammar values
are safe for concurrent use; every call to Parse works on its own state and
returns a fresh tree.

Parsing

Tags with a body and self-closing tags share their prefix, so the parser reads
the prefix once and decides on the terminator ("/>" or ">"); there is no
backtracking. Open elements are kept on an explicit stack, so the work is linear
in the size of the input and nesting is bounded by a maximum depth (see option
MaxDepth). Deeper nesting is reported as an *ast.DepthError.

Text runs consisting of whitespace only are dropped; other text runs are kept
verbatim, including newlines.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stml.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("stml.syntax")
}
