package dom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<!DOCTYPE html>
<html><head><title>T</title><link rel="stylesheet" href="/static/ds.css"><style type="text/css">
.big { font-size: 20px }</style></head><body><div id="stml_parser_root">
<p style="color: red" class="big">Hello<br>
World</p><a href="/browse/abc.zed/p"><img src="cat.png"></a><div class="nope">x</div></div>
</body></html>`

func TestFind(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.dom")
	defer teardown()
	//
	doc, err := Parse(page)
	require.NoError(t, err)
	p, err := doc.Find("div#stml_parser_root > p.big")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p", p.NodeName())
	assert.Equal(t, html.ElementNode, p.NodeType())
	assert.Equal(t, "Hello\nWorld", p.TextContent())
	assert.True(t, p.HasAttributes())
	st, ok := p.Attr("style")
	assert.True(t, ok)
	assert.Equal(t, "color: red", st)
	assert.Equal(t, []string{"big"}, p.Classes())
	assert.Equal(t, "div", p.ParentNode().NodeName())
	ch := p.ChildNodes()
	require.Len(t, ch, 3)
	assert.Equal(t, "#text", ch[0].NodeName())
	assert.Equal(t, "Hello", ch[0].NodeValue())
	assert.Len(t, p.Children(), 1)
	//
	anchors, err := doc.FindAll("a > img")
	require.NoError(t, err)
	assert.Len(t, anchors, 1)
	none, err := doc.Find("blink")
	require.NoError(t, err)
	assert.Nil(t, none)
	_, err = doc.Find("p[")
	assert.Error(t, err)
	assert.Equal(t, "#document", doc.Root().NodeName())
}

func TestStyleSheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.dom")
	defer teardown()
	//
	doc, err := Parse(page)
	require.NoError(t, err)
	rules := doc.StyleSheet().Rules()
	require.Len(t, rules, 1)
	assert.Equal(t, ".big", rules[0].Selector())
	assert.Equal(t, "20px", rules[0].Value("font-size").String())
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.dom")
	defer teardown()
	//
	doc, err := Parse(page)
	require.NoError(t, err)
	assert.Equal(t, []string{`class "nope" is not defined`}, doc.Check())
	//
	doc, err = Parse("<!DOCTYPE html>\n")
	require.NoError(t, err)
	assert.Empty(t, doc.Check())
	//
	doc, err = Parse(`<!DOCTYPE html><html><body><img href="x" src="y"></body></html>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"head has no stylesheet link", "image carries a link"}, doc.Check())
}
