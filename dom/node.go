package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Node wraps a node of an HTML parse tree.
type Node struct {
	h *html.Node
}

// NodeFor wraps an HTML node. It returns nil for nil.
func NodeFor(h *html.Node) *Node {
	if h == nil {
		return nil
	}
	return &Node{h}
}

// HTMLNode returns the underlying HTML node.
func (n *Node) HTMLNode() *html.Node {
	return n.h
}

// NodeType returns the type of the underlying HTML node (ElementNode, TextNode, etc.).
func (n *Node) NodeType() html.NodeType {
	return n.h.Type
}

// NodeName returns the tag name of elements, "#text" for text nodes and
// "#document" for the document node.
func (n *Node) NodeName() string {
	switch n.h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		return "#text"
	case html.CommentNode:
		return "#comment"
	}
	return n.h.Data
}

// NodeValue returns the text of text and comment nodes, and the empty string
// otherwise.
func (n *Node) NodeValue() string {
	if n.h.Type == html.TextNode || n.h.Type == html.CommentNode {
		return n.h.Data
	}
	return ""
}

// Attr returns the value of an attribute and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.h.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttributes checks for existence of attributes.
func (n *Node) HasAttributes() bool {
	return len(n.h.Attr) > 0
}

// Classes returns the CSS classes of an element.
func (n *Node) Classes() []string {
	c, _ := n.Attr("class")
	return strings.Fields(c)
}

// ParentNode returns the parent node, if any.
func (n *Node) ParentNode() *Node {
	return NodeFor(n.h.Parent)
}

// ChildNodes returns all children.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		children = append(children, &Node{ch})
	}
	return children
}

// Children returns the element children.
func (n *Node) Children() []*Node {
	var children []*Node
	for ch := n.h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, &Node{ch})
		}
	}
	return children
}

// TextContent returns the text of a node and all its descendents.
func (n *Node) TextContent() string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(h *html.Node) {
		if h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(n.h)
	return b.String()
}
