package syntax

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stml/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarShared(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	if STML() != STML() {
		t.Errorf("expected grammar to be built once")
	}
	if STML().Doctype() != "<!doctype stml>" {
		t.Errorf("unexpected doctype %q", STML().Doctype())
	}
}

func TestParseEmptyPage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	for _, input := range []string{"<!doctype stml>", "  \n<!DOCTYPE STML>\n\n", "<!DocType stml>"} {
		doc, err := Parse(input)
		require.NoError(t, err, input)
		assert.Empty(t, doc.Roots)
		assert.Nil(t, doc.Content())
	}
}

func TestParseMissingDoctype(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	_, err := Parse("<stml></>")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSyntax))
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 0, serr.Offset)
	assert.Equal(t, 1, serr.Line)
	assert.Equal(t, 1, serr.Column)
}

func TestParseNested(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	input := `<!doctype stml>
<stml>
  <head><title>Hello</></>
  <body>
    <text textColor=red style=big>Hi there
second line</>
    <image source=img\cat.png to=otheruser.zed\page2 />
  </>
</>
<sss><big id=big textSize=20 /></>
`
	doc, err := Parse(input)
	require.NoError(t, err)
	t.Logf("\n%s", ast.Dump(doc))
	require.Len(t, doc.Roots, 2)
	content := doc.Content()
	require.NotNil(t, content)
	require.Len(t, content.Children, 2)
	head := content.Children[0].(*ast.Element)
	assert.Equal(t, "head", head.Tag)
	title := head.Children[0].(*ast.Element)
	assert.Equal(t, []ast.Node{ast.Text("Hello")}, title.Children)
	body := content.Children[1].(*ast.Element)
	require.Len(t, body.Children, 2)
	text := body.Children[0].(*ast.Element)
	assert.Equal(t, "red", text.Attr("textColor"))
	assert.Equal(t, "big", text.Attr("style"))
	assert.Equal(t, []ast.Node{ast.Text("Hi there\nsecond line")}, text.Children)
	img := body.Children[1].(*ast.Element)
	assert.True(t, img.SelfClosing)
	assert.Empty(t, img.Children)
	assert.Equal(t, `otheruser.zed\page2`, img.Attr("to"))
	sss := doc.Stylesheet()
	require.NotNil(t, sss)
	assert.Equal(t, "big", sss.Children[0].(*ast.Element).Attr("id"))
}

func TestParseAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	doc, err := Parse(`<!doctype stml><stml a=1 b=2 a=3 ></>`)
	require.NoError(t, err)
	el := doc.Content()
	assert.Equal(t, []ast.Attr{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, el.Attrs.List())
	assert.Empty(t, el.Children)
}

func TestParseWhitespaceText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	doc, err := Parse("<!doctype stml><stml><a/> \n\t <b/>  x  </>")
	require.NoError(t, err)
	ch := doc.Content().Children
	require.Len(t, ch, 3)
	assert.Equal(t, ast.Text("  x  "), ch[2])
}

func TestParseFirstRootWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	doc, err := Parse("<!doctype stml><stml id=one></><stml id=two></>")
	require.NoError(t, err)
	assert.Equal(t, "one", doc.Content().Attr("id"))
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	inputs := map[string]string{
		"top-level text":    "<!doctype stml> hello",
		"unclosed":          "<!doctype stml><stml><body>",
		"uppercase tag":     "<!doctype stml><Stml></>",
		"missing value":     "<!doctype stml><stml a=></>",
		"missing equals":    "<!doctype stml><stml a></>",
		"stray close":       "<!doctype stml></>",
		"stray gt":          "<!doctype stml><stml> a > b</>",
		"slash in value":    "<!doctype stml><stml to=a/b></>",
		"bad terminator":    "<!doctype stml><stml / ></>",
		"unterminated head": "<!doctype stml><stml",
	}
	for name, input := range inputs {
		_, err := Parse(input)
		if assert.Error(t, err, name) {
			t.Logf("%s: %v", name, err)
			assert.True(t, errors.Is(err, ErrSyntax), name)
		}
	}
}

func TestSyntaxErrorPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	_, err := Parse("<!doctype stml>\n<stml>\n  <x a></>\n</>")
	var serr *SyntaxError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 3, serr.Line)
	assert.Equal(t, 7, serr.Column)
	assert.Equal(t, "></>\n</>", serr.Near)
	assert.Contains(t, serr.Error(), "line 3, column 7")
}

func TestParseDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	nest := func(n int) string {
		return "<!doctype stml>" + strings.Repeat("<a>", n) + strings.Repeat("</>", n)
	}
	_, err := Parse(nest(5), MaxDepth(5))
	require.NoError(t, err)
	_, err = Parse(nest(6), MaxDepth(5))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ast.ErrDepthExceeded))
	var derr *ast.DepthError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 5, derr.Limit)
	assert.Equal(t, len("<!doctype stml>")+5*3, derr.Offset)
	// self-closing elements count as well
	_, err = Parse("<!doctype stml><a><b/></>", MaxDepth(1))
	assert.True(t, errors.Is(err, ast.ErrDepthExceeded))
}

func TestParseDeepInputIsLinear(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.syntax")
	defer teardown()
	//
	n := 100000
	input := "<!doctype stml>" + strings.Repeat("<a>", n) + strings.Repeat("</>", n)
	doc, err := Parse(input, MaxDepth(n))
	require.NoError(t, err)
	depth := 0
	for el := doc.Roots[0]; ; depth++ {
		if len(el.Children) == 0 {
			break
		}
		el = el.Children[0].(*ast.Element)
	}
	assert.Equal(t, n-1, depth)
}
