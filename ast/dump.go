package ast

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump returns a printable tree of a document, for debugging purposes.
func Dump(doc *Document) string {
	p := tp.New()
	p.SetValue("doctype stml")
	if doc != nil {
		for _, el := range doc.Roots {
			dumpNode(p, el)
		}
	}
	return p.String()
}

func dumpNode(branch tp.Tree, n Node) {
	switch n := n.(type) {
	case *Element:
		label := "<" + n.Tag + n.Attrs.String() + ">"
		if n.SelfClosing {
			label = "<" + n.Tag + n.Attrs.String() + "/>"
		}
		if len(n.Children) == 0 {
			branch.AddNode(label)
			return
		}
		b := branch.AddBranch(label)
		for _, ch := range n.Children {
			dumpNode(b, ch)
		}
	case Text:
		branch.AddNode(fmt.Sprintf("%q", shorten(string(n), 24)))
	}
}

func shorten(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}
