/*
Package render lowers STML documents to HTML.

The HTML renderer walks the content root of a document. STML tags are renamed
to their HTML counterparts (see HTMLTag); elements named "soul" or "details"
are suppressed together with their subtrees, and unknown tags pass through
unchanged. Styling attributes are synthesized into an inline style attribute
(see package style), references in "source" and "to" are rewritten (see
package urlrw), and a "style" attribute names the CSS class of an element.

A few tags receive special treatment:

    head     a fixed stylesheet link and the stylesheet block are appended
    body     children are wrapped into a marker container
    image    a self-closing image with a "to" reference is wrapped into an anchor

The stylesheet renderer turns the children of a stylesheet root into CSS
class rules, one per distinct "id".

Output is not escaped: attribute values and text are copied verbatim.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package render

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'stml.render'.
func tracer() tracing.Trace {
	return tracing.Select("stml.render")
}
