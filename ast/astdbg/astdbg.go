/*
Package astdbg implements helpers to debug an STML document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package astdbg

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/style"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname   string
	PageRoot   string
	NodeTmpl   *template.Template
	EdgeTmpl   *template.Template
	StyleTmpl  *template.Template
	PsEdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for an STML document. The diagram is in
// GraphViz (DOT) format. Elements with styling attributes are connected to a
// table of the CSS properties synthesized for them; pageRoot is needed for
// rewriting background images.
func ToGraphViz(doc *ast.Document, pageRoot string, w io.Writer) error {
	tmpl, err := template.New("stml").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica", PageRoot: pageRoot}
	gparams.NodeTmpl = template.Must(template.New("astnode").Funcs(
		template.FuncMap{
			"shortstring": shortText,
		}).Parse(astNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("astedge").Parse(astEdgeTmpl))
	gparams.StyleTmpl = template.Must(template.New("props").Parse(propsTmpl))
	gparams.PsEdgeTmpl = template.Must(template.New("psedge").Parse(psEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	g := &grapher{w: w, params: &gparams}
	root := node{Name: "node00000", Label: "doctype stml"}
	if err = gparams.NodeTmpl.Execute(w, root); err != nil {
		return err
	}
	if doc != nil {
		for _, el := range doc.Roots {
			if err = g.nodes(root, el); err != nil {
				return err
			}
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given an STML document and a testing.T, it
// will create a GraphViz image of the document tree and write it to a file
// in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
//
func Dotty(doc *ast.Document, t *testing.T) {
	tmpfile, err := ioutil.TempFile(".", "stml.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing STML digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(doc, "", tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing STML tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Name  string
	Label string
	Text  bool
}

type grapher struct {
	w      io.Writer
	params *graphParamsType
	count  int
}

func (g *grapher) nodes(parent node, n ast.Node) error {
	g.count++
	nd := node{Name: fmt.Sprintf("node%05d", g.count)}
	switch n := n.(type) {
	case ast.Text:
		nd.Label, nd.Text = string(n), true
	case *ast.Element:
		nd.Label = n.Tag
		if n.SelfClosing {
			nd.Label += "/"
		}
	}
	if err := g.params.NodeTmpl.Execute(g.w, nd); err != nil {
		return err
	}
	if err := g.params.EdgeTmpl.Execute(g.w, edge{parent, nd}); err != nil {
		return err
	}
	el, ok := n.(*ast.Element)
	if !ok {
		return nil
	}
	if props := style.Synthesize(g.params.PageRoot, el); props.Len() > 0 {
		ps := propset{Name: "ps" + nd.Name, Properties: props.Properties()}
		if err := g.params.StyleTmpl.Execute(g.w, ps); err != nil {
			return err
		}
		if err := g.params.PsEdgeTmpl.Execute(g.w, psedge{nd.Name, ps.Name}); err != nil {
			return err
		}
	}
	for _, ch := range el.Children {
		if err := g.nodes(nd, ch); err != nil {
			return err
		}
	}
	return nil
}

type edge struct {
	N1, N2 node
}

type propset struct {
	Name       string
	Properties []style.KeyValue
}

type psedge struct {
	Node, PropSet string
}

func shortText(s string) string {
	r := []rune(s)
	q := "\"\\\""
	if len(r) > 10 {
		q += string(r[:10]) + "...\\\"\""
	} else {
		q += s + "\\\"\""
	}
	q = strings.Replace(q, "\n", `\\n`, -1)
	q = strings.Replace(q, "\t", `\\t`, -1)
	q = strings.Replace(q, " ", "␣", -1)
	return q
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const astNodeTmpl = `{{ if .Text }}
{{ .Name }}	[ label={{ shortstring .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const propsTmpl = `{{ .Name }} [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">CSS</font></td></tr>
      {{ range .Properties }}
      <tr><td align="right">{{ .Key }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
`

const astEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const psEdgeTmpl = `{{ .Node }} -> {{ .PropSet }} [dir=none weight=1 style="dashed"] ;
`
