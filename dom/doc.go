/*
Package dom inspects compiled HTML pages.

Compiled pages are plain HTML. To check them, they are parsed back into an
HTML DOM (golang.org/x/net/html), which may then be queried with CSS selectors
(github.com/andybalholm/cascadia). Embedded <style> blocks are read into
stylesheets (see package style/cssom).

Nodes follow the naming of the W3C Document Object Model: text nodes are
named "#text", the document node is named "#document".

See also https://www.w3schools.com/XML/dom_intro.asp

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'stml.dom'.
func tracer() tracing.Trace {
	return tracing.Select("stml.dom")
}
