package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/stml/ast"
	"github.com/stretchr/testify/assert"
)

func element(kv ...string) *ast.Element {
	el := &ast.Element{Tag: "block"}
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attrs.Set(kv[i], kv[i+1])
	}
	return el
}

func TestPropertySetRanks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	ps := NewPropertySet()
	assert.True(t, ps.Set("margin-top", "5px", RankExact))
	assert.True(t, ps.Set("color", "red", RankExact))
	assert.False(t, ps.Set("margin-top", "10px", RankAxis))
	assert.True(t, ps.Set("margin-top", "7px", RankExact))
	assert.Equal(t, []string{"margin-top: 7px", "color: red"}, ps.Declarations())
	assert.Equal(t, "margin-top: 7px; color: red", ps.String())
	var nilset *PropertySet
	assert.Equal(t, 0, nilset.Len())
	assert.False(t, nilset.IsSet("color"))
	assert.Empty(t, nilset.Declarations())
}

func TestSynthesizeVocabulary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	cases := []struct {
		attrs []string
		want  []string
	}{
		{[]string{"backgroundColor", "#fff"}, []string{"background-color: #fff"}},
		{[]string{"textColor", "red"}, []string{"color: red"}},
		{[]string{"width", "100", "height", "50%"}, []string{"width: 100px", "height: 50%"}},
		{[]string{"borderColor", "blue"}, []string{"border-color: blue", "border-style: solid"}},
		{[]string{"borderThickness", "2"}, []string{"border-width: 2px", "border-style: solid"}},
		{[]string{"marginLeft", "3", "marginRight", "4", "marginBottom", "5"},
			[]string{"margin-left: 3px", "margin-right: 4px", "margin-bottom: 5px"}},
		{[]string{"padding", "8"}, []string{"padding: 8px"}},
		{[]string{"align", "left"}, []string{"text-align: left", "align-self: start"}},
		{[]string{"align", "right"}, []string{"text-align: right", "align-self: end"}},
		{[]string{"align", "center"}, []string{"text-align: center", "align-self: center"}},
		{[]string{"textSize", "20"}, []string{"font-size: 20px"}},
		{[]string{"fashion", "bold"}, []string{"font-weight: bold"}},
		{[]string{"display", "floe"}, []string{"position: absolute"}},
		{[]string{"display", "anchored"}, []string{"position: fixed"}},
		{[]string{"display", "buoyed"}, []string{"position: sticky"}},
		{[]string{"display", "none"}, []string{"display: none"}},
		{[]string{"display", "grid"}, []string{}},
		{[]string{"orientation", "horizontal"},
			[]string{"display: flex", "flex-direction: row", "justify-content: space-evenly"}},
		{[]string{"orientation", "vertical"}, []string{"display: flex", "flex-direction: column"}},
		{[]string{"orientation", "diagonal"}, []string{"display: flex"}},
		{[]string{"source", "x.png", "to", "y", "id", "z", "style", "big", "foo", "bar"}, []string{}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Declarations("/browse", element(c.attrs...)), "%v", c.attrs)
	}
}

func TestSynthesizeBackgroundImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	decl := Declarations("/browse", element("backgroundImage", `otheruser.zed\bg.png`))
	assert.Equal(t, []string{"background-image: url('/browse/otheruser.zed/bg.png')"}, decl)
	decl = Declarations("/browse", element("backgroundImage", `\img\bg.png`))
	assert.Equal(t, []string{"background-image: url('img/bg.png')"}, decl)
}

func TestSynthesizeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	ps := Synthesize("", element("margin", "10", "marginTop", "5"))
	assert.Equal(t, []string{"margin: 10px", "margin-top: 5px"}, ps.Declarations())
	//
	ps = Synthesize("", element("marginVertical", "10", "marginTop", "5"))
	assert.Equal(t, []string{"margin-top: 5px", "margin-bottom: 10px"}, ps.Declarations())
	ps = Synthesize("", element("marginTop", "5", "marginVertical", "10"))
	assert.Equal(t, []string{"margin-top: 5px", "margin-bottom: 10px"}, ps.Declarations())
	//
	ps = Synthesize("", element("marginHorizontal", "1", "marginRight", "2"))
	v, _ := ps.Get("margin-right")
	assert.Equal(t, Property("2px"), v)
}

func TestSynthesizeShadow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	ps := Synthesize("", element("shadowColor", "#000", "shadowAlpha", "50"))
	assert.Equal(t, []string{"box-shadow: 0px 0px 0px 0px #00080"}, ps.Declarations())
	//
	ps = Synthesize("", element("shadowX", "3", "shadowY", "4", "shadowBlur", "5",
		"shadowAlpha", "100", "textColor", "red", "shadowColor", "#123456"))
	assert.Equal(t, []string{"color: red", "box-shadow: 3px 4px 5px 0px #123456ff"}, ps.Declarations())
	// no color, no shadow
	ps = Synthesize("", element("shadowX", "3", "shadowAlpha", "40"))
	assert.Equal(t, 0, ps.Len())
	ps = Synthesize("", element("shadowColor", "none", "shadowAlpha", "40"))
	assert.Equal(t, 0, ps.Len())
}

func TestShadowAlpha(t *testing.T) {
	sh := NewShadow()
	assert.False(t, sh.Active())
	assert.Equal(t, "00", sh.AlphaHex())
	assert.False(t, sh.SetAlpha("-5"))
	assert.False(t, sh.SetAlpha("50.5"))
	assert.False(t, sh.SetAlpha(""))
	assert.True(t, sh.SetAlpha("50"))
	assert.Equal(t, "80", sh.AlphaHex())
	assert.True(t, sh.SetAlpha("250"))
	assert.Equal(t, 100, sh.Alpha)
	assert.Equal(t, "ff", sh.AlphaHex())
	assert.True(t, sh.SetAlpha("99999999999999999999999"))
	assert.Equal(t, 100, sh.Alpha)
	assert.True(t, sh.SetAlpha("1"))
	assert.Equal(t, "03", sh.AlphaHex())
}

// The default for the other coordinate depends on which of x and y comes
// first. This pins the current behaviour.
func TestSynthesizePositionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	assert.Equal(t, []string{"left: 10px", "top: 0px"}, Declarations("", element("x", "10")))
	assert.Equal(t, []string{"top: 20px", "left: 0px"}, Declarations("", element("y", "20")))
	assert.Equal(t, []string{"left: 10px", "top: 20px"}, Declarations("", element("x", "10", "y", "20")))
	assert.Equal(t, []string{"top: 20px", "left: 10px"}, Declarations("", element("y", "20", "x", "10")))
}

func TestSynthesizeNil(t *testing.T) {
	assert.Equal(t, 0, Synthesize("", nil).Len())
}

func TestSynthesizeLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "stml.style")
	defer teardown()
	//
	assert.Equal(t, []string{"width: -20px", "height: auto"},
		Declarations("", element("width", "-20", "height", "auto")))
	assert.Equal(t, []string{"width: 12.5em", "height: 0px"},
		Declarations("", element("width", "12.5em", "height", "0")))
}
