package syntax

import (
	"fmt"
	"strings"

	"github.com/npillmayer/stml/ast"
)

// Option configures a single call to Parse.
type Option func(*parser)

// MaxDepth sets the maximum nesting depth of elements, with top-level elements
// at depth 1. Values below 1 select ast.DefaultMaxDepth.
func MaxDepth(n int) Option {
	return func(p *parser) {
		p.maxDepth = n
	}
}

// Parse parses an STML document using the STML grammar.
func Parse(input string, opts ...Option) (*ast.Document, error) {
	return STML().Parse(input, opts...)
}

// Parse parses an STML document. It returns a *SyntaxError if the input does
// not conform to the grammar and an *ast.DepthError if elements are nested too
// deeply.
func (g *Grammar) Parse(input string, opts ...Option) (*ast.Document, error) {
	p := &parser{g: g, input: input, maxDepth: ast.DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxDepth < 1 {
		p.maxDepth = ast.DefaultMaxDepth
	}
	doc, err := p.page()
	if err != nil {
		tracer().Infof("STML parse failed: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed STML document of %d bytes, %d top-level elements", len(input), len(doc.Roots))
	return doc, nil
}

// parser holds the state of a single parse.
type parser struct {
	g        *Grammar
	input    string
	pos      int
	maxDepth int
	stack    []*ast.Element // open elements
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) at(token string) bool {
	return strings.HasPrefix(p.input[p.pos:], token)
}

func (p *parser) skipSpace() {
	for w := spaceAt(p.input, p.pos); w > 0; w = spaceAt(p.input, p.pos) {
		p.pos += w
	}
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return newSyntaxError(p.input, p.pos, fmt.Sprintf(format, args...))
}

// page = ws doctype (ws tag ws)*
func (p *parser) page() (*ast.Document, error) {
	p.skipSpace()
	if !p.g.hasDoctype(p.input, p.pos) {
		return nil, p.errorf("expected %q", p.g.doctype)
	}
	p.pos += len(p.g.doctype)
	doc := &ast.Document{}
	for {
		p.skipSpace()
		if p.eof() {
			return doc, nil
		}
		if p.peek() != '<' {
			return nil, p.errorf("expected tag at top level")
		}
		el, err := p.tag()
		if err != nil {
			return nil, err
		}
		doc.Roots = append(doc.Roots, el)
	}
}

// tag parses a tag at the current position, including the complete bodies of
// all nested tags.
func (p *parser) tag() (*ast.Element, error) {
	root, err := p.tagHead()
	if err != nil || root.SelfClosing {
		return root, err
	}
	p.stack = append(p.stack[:0], root)
	p.skipSpace()
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		switch {
		case p.at(p.g.closeTag):
			p.pos += len(p.g.closeTag)
			p.stack = p.stack[:len(p.stack)-1]
			if len(p.stack) > 0 {
				parent := p.stack[len(p.stack)-1]
				parent.Children = append(parent.Children, top)
			}
		case p.eof():
			return nil, p.errorf("<%s> not closed, expected %q", top.Tag, p.g.closeTag)
		case p.peek() == '<':
			el, err := p.tagHead()
			if err != nil {
				return nil, err
			}
			if len(p.stack)+1 > p.maxDepth {
				return nil, &ast.DepthError{Limit: p.maxDepth, Offset: el.Offset}
			}
			if el.SelfClosing {
				top.Children = append(top.Children, el)
				continue
			}
			p.stack = append(p.stack, el)
			p.skipSpace()
		case p.peek() == '>':
			return nil, p.errorf("unexpected '>' in body of <%s>", top.Tag)
		default:
			p.text(top)
		}
	}
	return root, nil
}

// tagHead parses the common prefix of tag_open and tag_self and decides on the
// terminator:
//
//    "<" ws tagname ws (attribute ws)* ws (">" | "/>")
//
func (p *parser) tagHead() (*ast.Element, error) {
	el := &ast.Element{Offset: p.pos}
	p.pos++ // '<'
	p.skipSpace()
	start := p.pos
	for !p.eof() && p.g.tagname.contains(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return nil, p.errorf("expected tag name")
	}
	el.Tag = p.input[start:p.pos]
	p.skipSpace()
	for !p.eof() && p.g.attrname.contains(p.peek()) {
		key, value, err := p.attribute()
		if err != nil {
			return nil, err
		}
		el.Attrs.Set(key, value)
		p.skipSpace()
	}
	switch {
	case p.at(p.g.selfClose):
		p.pos += len(p.g.selfClose)
		el.SelfClosing = true
	case !p.eof() && p.peek() == '>':
		p.pos++
	default:
		return nil, p.errorf("expected attribute, '>' or %q in <%s>", p.g.selfClose, el.Tag)
	}
	return el, nil
}

// attribute = [a-zA-Z]+ "=" [^ <>/]+
func (p *parser) attribute() (string, string, error) {
	start := p.pos
	for !p.eof() && p.g.attrname.contains(p.peek()) {
		p.pos++
	}
	key := p.input[start:p.pos]
	if p.eof() || p.peek() != '=' {
		return "", "", p.errorf("expected '=' after attribute name %q", key)
	}
	p.pos++
	start = p.pos
	for !p.eof() && p.g.attrvalue.contains(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", "", p.errorf("expected value for attribute %q", key)
	}
	return key, p.input[start:p.pos], nil
}

// text = [^<>]+ ; blank runs are dropped.
func (p *parser) text(parent *ast.Element) {
	start := p.pos
	for !p.eof() && p.g.text.contains(p.peek()) {
		p.pos++
	}
	if s := p.input[start:p.pos]; !isBlank(s) {
		parent.Children = append(parent.Children, ast.Text(s))
	}
}
