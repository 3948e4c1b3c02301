package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/stml/style/cssom"
	"github.com/npillmayer/stml/style/cssom/douceuradapter"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Load parses an HTML page.
func Load(r io.Reader) (*Document, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: h}, nil
}

// Parse parses an HTML page from a string.
func Parse(page string) (*Document, error) {
	return Load(strings.NewReader(page))
}

// Root returns the document node.
func (doc *Document) Root() *Node {
	return NodeFor(doc.root)
}

// Find returns the first element matching a CSS selector, or nil.
func (doc *Document) Find(selector string) (*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: %w", err)
	}
	return NodeFor(sel.MatchFirst(doc.root)), nil
}

// FindAll returns all elements matching a CSS selector, in document order.
func (doc *Document) FindAll(selector string) ([]*Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: %w", err)
	}
	matches := sel.MatchAll(doc.root)
	nodes := make([]*Node, len(matches))
	for i, h := range matches {
		nodes[i] = &Node{h}
	}
	return nodes, nil
}

// StyleSheet returns the rules of all <style> elements of head and body,
// in document order.
func (doc *Document) StyleSheet() cssom.StyleSheet {
	sheet := douceuradapter.NewStyleSheet()
	for _, s := range douceuradapter.ExtractStyleElements(doc.root) {
		sheet.AppendRules(s)
	}
	return sheet
}

// Check reports findings about the structure of a compiled page: a missing
// stylesheet link, links on images, and CSS classes which are used but not
// defined. An empty result means no findings.
func (doc *Document) Check() []string {
	var findings []string
	if n, _ := doc.Find("head > *, body > *"); n == nil {
		return findings // page without content
	}
	if n, _ := doc.Find(`head > link[rel="stylesheet"]`); n == nil {
		findings = append(findings, "head has no stylesheet link")
	}
	imgs, _ := doc.FindAll("img[href]")
	for range imgs {
		findings = append(findings, "image carries a link")
	}
	defined := make(map[string]bool)
	for _, r := range doc.StyleSheet().Rules() {
		for _, sel := range strings.Split(r.Selector(), ",") {
			if sel = strings.TrimSpace(sel); strings.HasPrefix(sel, ".") {
				defined[sel[1:]] = true
			}
		}
	}
	used, _ := doc.FindAll("[class]")
	reported := make(map[string]bool)
	for _, n := range used {
		for _, c := range n.Classes() {
			if !defined[c] && !reported[c] {
				reported[c] = true
				findings = append(findings, fmt.Sprintf("class %q is not defined", c))
			}
		}
	}
	tracer().Debugf("check: %d findings", len(findings))
	return findings
}
