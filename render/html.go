package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/style"
	"github.com/npillmayer/stml/urlrw"
)

const (
	// StylesheetLink is appended to every head element.
	StylesheetLink = `<link rel="stylesheet" href="/static/ds.css">`
	// RootID is the id of the container wrapping the children of body.
	RootID = "stml_parser_root"
)

// Option configures a renderer.
type Option func(*renderer)

// MaxDepth sets the maximum nesting depth of elements, with the node passed
// to HTML at depth 1. Values below 1 select ast.DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(r *renderer) {
		r.maxDepth = n
	}
}

// HTML renders a node of an STML document, usually the content root.
// styleBlock is appended to head elements after the stylesheet link; it may
// be empty. HTML fails with an *ast.DepthError for trees nested deeper than
// the maximum depth.
func HTML(pageRoot, styleBlock string, n ast.Node, opts ...Option) (string, error) {
	r := &renderer{
		pageRoot:   pageRoot,
		styleBlock: styleBlock,
		maxDepth:   ast.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.maxDepth < 1 {
		r.maxDepth = ast.DefaultMaxDepth
	}
	if err := r.node(n, 1); err != nil {
		return "", err
	}
	return r.out.String(), nil
}

type renderer struct {
	pageRoot   string
	styleBlock string
	maxDepth   int
	out        strings.Builder
}

func (r *renderer) node(n ast.Node, depth int) error {
	switch n := n.(type) {
	case ast.Text:
		r.text(string(n))
	case *ast.Element:
		if n == nil {
			return nil
		}
		if depth > r.maxDepth {
			return &ast.DepthError{Limit: r.maxDepth, Offset: n.Offset}
		}
		return r.element(n, depth)
	}
	return nil
}

// text copies a text run, inserting a line break before every newline which
// follows a non-blank character.
func (r *renderer) text(s string) {
	prev := ' '
	for len(s) > 0 {
		c, w := utf8.DecodeRuneInString(s)
		if c == '\n' && !unicode.IsSpace(prev) {
			r.out.WriteString("<br>")
		}
		r.out.WriteString(s[:w])
		prev, s = c, s[w:]
	}
}

func (r *renderer) element(el *ast.Element, depth int) error {
	tag, suppressed := HTMLTag(el.Tag)
	if suppressed {
		tracer().Debugf("suppressing <%s> with %d children", el.Tag, len(el.Children))
		return nil
	}
	var href string
	if to, ok := el.Attrs.Get("to"); ok && to != "" {
		href = urlrw.Rewrite(to, r.pageRoot)
	}
	start := r.startTag(tag, el, href)
	// head and body always get their content, even if written self-closing
	if el.SelfClosing && tag != "head" && tag != "body" {
		if tag == "img" && href != "" {
			r.out.WriteString(`<a href="` + href + `">` + start + `</a>`)
		} else {
			r.out.WriteString(start)
		}
		return nil
	}
	r.out.WriteString(start)
	if tag == "body" {
		r.out.WriteString(`<div id="` + RootID + `">` + "\n")
	}
	for _, ch := range el.Children {
		if err := r.node(ch, depth+1); err != nil {
			return err
		}
	}
	if tag == "head" {
		r.out.WriteString(StylesheetLink)
		r.out.WriteString(r.styleBlock)
	}
	if tag == "body" {
		r.out.WriteString("</div>\n")
	}
	r.out.WriteString("</" + tag + ">")
	return nil
}

// startTag formats the start tag of an element. Attributes are emitted in the
// order style, src, href, id, class.
func (r *renderer) startTag(tag string, el *ast.Element, href string) string {
	var b strings.Builder
	b.WriteString("<" + tag)
	if props := style.Synthesize(r.pageRoot, el); props.Len() > 0 {
		attr(&b, "style", props.String())
	}
	if src, ok := el.Attrs.Get("source"); ok && src != "" {
		attr(&b, "src", urlrw.Rewrite(src, r.pageRoot))
	}
	if href != "" && tag != "img" {
		attr(&b, "href", href)
	}
	if id, ok := el.Attrs.Get("id"); ok {
		attr(&b, "id", id)
	}
	if class, ok := el.Attrs.Get("style"); ok {
		attr(&b, "class", class)
	}
	b.WriteString(">")
	return b.String()
}

func attr(b *strings.Builder, key, value string) {
	b.WriteString(" " + key + `="` + value + `"`)
}
