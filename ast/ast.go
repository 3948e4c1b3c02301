package ast

import (
	"errors"
	"fmt"
)

// Tag names with a special role at the top level of a document.
const (
	ContentTag    = "stml" // root of the page content
	StylesheetTag = "sss"  // root of the style-class definitions
)

// Node is a node of an STML document tree. It is either an *Element or a Text.
type Node interface {
	node()
}

// Text is an immutable run of raw characters between tags.
type Text string

func (Text) node() {}

// Element is a tag, either self-closing or with a body of child nodes.
// A self-closing element never has children.
type Element struct {
	Tag         string     // lowercase ASCII letters only
	SelfClosing bool       // element was written as <tag … />
	Attrs       Attributes // attributes in source order
	Children    []Node     // child nodes in document order
	Offset      int        // byte offset of the opening '<' in the source
}

func (*Element) node() {}

func (el *Element) String() string {
	if el.SelfClosing {
		return fmt.Sprintf("<%s%s/>", el.Tag, el.Attrs)
	}
	return fmt.Sprintf("<%s%s>(#ch=%d)", el.Tag, el.Attrs, len(el.Children))
}

// Attr returns the value of attribute key, or the empty string.
func (el *Element) Attr(key string) string {
	v, _ := el.Attrs.Get(key)
	return v
}

// Document is the sequence of top-level elements of a page.
type Document struct {
	Roots []*Element
}

// Root returns the first top-level element with the given tag, or nil.
// Later duplicates are ignored.
func (doc *Document) Root(tag string) *Element {
	if doc == nil {
		return nil
	}
	for _, el := range doc.Roots {
		if el.Tag == tag {
			return el
		}
	}
	return nil
}

// Content returns the content root of a document (tag "stml"), or nil.
func (doc *Document) Content() *Element {
	return doc.Root(ContentTag)
}

// Stylesheet returns the stylesheet root of a document (tag "sss"), or nil.
func (doc *Document) Stylesheet() *Element {
	return doc.Root(StylesheetTag)
}

// --- Nesting depth ---------------------------------------------------------

// DefaultMaxDepth is the default bound for the nesting depth of elements.
// A top-level element has depth 1.
const DefaultMaxDepth = 256

// ErrDepthExceeded is matched by every *DepthError.
var ErrDepthExceeded = errors.New("element nesting too deep")

// DepthError is returned if elements are nested deeper than a configured limit.
type DepthError struct {
	Limit  int // maximum depth allowed
	Offset int // byte offset of the offending element, -1 if unknown
}

func (e *DepthError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("element nesting exceeds maximum depth of %d", e.Limit)
	}
	return fmt.Sprintf("element nesting exceeds maximum depth of %d at offset %d", e.Limit, e.Offset)
}

// Unwrap makes DepthError match ErrDepthExceeded.
func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
