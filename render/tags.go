package render

// tagTable maps STML tag names to HTML tag names. An empty HTML tag name
// suppresses an element.
var tagTable = map[string]string{
	"stml":    "html",
	"text":    "p",
	"link":    "a",
	"block":   "div",
	"rule":    "hr",
	"image":   "img",
	"list":    "ul",
	"item":    "li",
	"soul":    "",
	"details": "",
}

// HTMLTag returns the HTML tag name for an STML tag name. If the element is to
// be left out of the output, together with its subtree, suppressed is true.
func HTMLTag(stmlTag string) (tag string, suppressed bool) {
	tag, found := tagTable[stmlTag]
	if !found {
		return stmlTag, false
	}
	return tag, tag == ""
}
