package stml

import (
	"fmt"

	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/render"
	"github.com/npillmayer/stml/syntax"
)

// DefaultPageRoot is the page root used if none is configured.
const DefaultPageRoot = "/browse"

// HTMLDoctype starts every compiled page.
const HTMLDoctype = "<!DOCTYPE html>\n"

// Compiler compiles STML pages to HTML.
type Compiler struct {
	pageRoot string
	maxDepth int
}

// Option configures a Compiler.
type Option func(*Compiler)

// PageRoot sets the path prefix under which tenant pages are served.
func PageRoot(root string) Option {
	return func(c *Compiler) {
		c.pageRoot = root
	}
}

// MaxDepth sets the maximum nesting depth of elements. Values below 1 select
// ast.DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(c *Compiler) {
		c.maxDepth = n
	}
}

// New creates a compiler.
func New(opts ...Option) *Compiler {
	c := &Compiler{
		pageRoot: DefaultPageRoot,
		maxDepth: ast.DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.maxDepth < 1 {
		c.maxDepth = ast.DefaultMaxDepth
	}
	return c
}

// PageRoot returns the page root of a compiler.
func (c *Compiler) PageRoot() string {
	return c.pageRoot
}

// MaxDepth returns the maximum nesting depth of a compiler.
func (c *Compiler) MaxDepth() int {
	return c.maxDepth
}

// Compile compiles a page with a given page root.
func Compile(pageRoot, document string) (string, error) {
	return New(PageRoot(pageRoot)).Compile(document)
}

// Parse parses a page. Errors are either syntax errors (matching
// syntax.ErrSyntax) or nesting errors (matching ast.ErrDepthExceeded).
func (c *Compiler) Parse(document string) (*ast.Document, error) {
	doc, err := syntax.Parse(document, syntax.MaxDepth(c.maxDepth))
	if err != nil {
		return nil, fmt.Errorf("stml: parse: %w", err)
	}
	return doc, nil
}

// Compile compiles a page to an HTML document.
func (c *Compiler) Compile(document string) (string, error) {
	doc, err := c.Parse(document)
	if err != nil {
		return "", err
	}
	return c.CompileDocument(doc)
}

// CompileDocument renders a parsed page to an HTML document. A page without
// content root yields the HTML doctype only.
func (c *Compiler) CompileDocument(doc *ast.Document) (string, error) {
	style := render.Stylesheet(c.pageRoot, doc.Stylesheet())
	content := doc.Content()
	if content == nil {
		tracer().Infof("page has no <%s> root", ast.ContentTag)
		return HTMLDoctype, nil
	}
	html, err := render.HTML(c.pageRoot, style, content, render.MaxDepth(c.maxDepth))
	if err != nil {
		return "", fmt.Errorf("stml: render: %w", err)
	}
	tracer().Debugf("compiled page to %d bytes of HTML", len(HTMLDoctype)+len(html))
	return HTMLDoctype + html, nil
}
