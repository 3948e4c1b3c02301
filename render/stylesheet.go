package render

import (
	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/style"
	"github.com/npillmayer/stml/style/cssom"
	"github.com/npillmayer/stml/style/cssom/douceuradapter"
)

// ClassSheet collects the class definitions below a stylesheet root. Every
// element child defines the CSS class named by its "id" attribute; a later
// definition of a class replaces an earlier one. Text children and children
// without an id are skipped.
func ClassSheet(pageRoot string, root *ast.Element) cssom.StyleSheet {
	sheet := douceuradapter.NewStyleSheet()
	if root == nil {
		return sheet
	}
	for _, ch := range root.Children {
		el, ok := ch.(*ast.Element)
		if !ok {
			continue
		}
		id, ok := el.Attrs.Get("id")
		if !ok {
			tracer().P("tag", el.Tag).Infof("stylesheet: skipping class definition without id")
			continue
		}
		sheet.SetClassRule(id, style.Synthesize(pageRoot, el).Properties())
	}
	return sheet
}

// Stylesheet renders the style block for a stylesheet root. It returns the
// empty string if root is nil.
func Stylesheet(pageRoot string, root *ast.Element) string {
	if root == nil {
		return ""
	}
	return "<style type=\"text/css\">\n" + cssom.Format(ClassSheet(pageRoot, root)) + "</style>"
}
