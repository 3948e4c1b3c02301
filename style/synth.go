package style

import (
	"strconv"

	"github.com/npillmayer/stml/ast"
	"github.com/npillmayer/stml/css"
	"github.com/npillmayer/stml/urlrw"
)

// Synthesize maps the styling attributes of an element onto CSS properties.
// Attributes are processed in order of appearance; unknown attributes are
// ignored. pageRoot is needed to rewrite background image references.
func Synthesize(pageRoot string, el *ast.Element) *PropertySet {
	s := synthesizer{
		pageRoot: pageRoot,
		props:    NewPropertySet(),
		shadow:   NewShadow(),
	}
	if el == nil {
		return s.props
	}
	for _, a := range el.Attrs.List() {
		if apply, ok := vocabulary[a.Key]; ok {
			apply(&s, a.Value)
		}
	}
	if s.shadow.Active() {
		s.set("box-shadow", s.shadow.Property())
	}
	if s.props.Len() > 0 {
		tracer().P("tag", el.Tag).Debugf("styling: %s", s.props)
	}
	return s.props
}

// Declarations returns the CSS declarations for an element, in order.
func Declarations(pageRoot string, el *ast.Element) []string {
	return Synthesize(pageRoot, el).Declarations()
}

type synthesizer struct {
	pageRoot string
	props    *PropertySet
	shadow   *Shadow
}

func (s *synthesizer) set(key string, p Property) {
	s.props.Set(key, p, RankExact)
}

func (s *synthesizer) setRanked(key string, p Property, rank Rank) {
	s.props.Set(key, p, rank)
}

func px(v string) Property {
	return Property(css.Px(v))
}

// length passes non-numeric values through, numbers get the pixel unit.
func length(v string) Property {
	var n int
	var raw string
	switch m := css.ParseLength(v).Match(); m {
	case m.Pixels(&n):
		return px(strconv.Itoa(n))
	case m.Verbatim(&raw):
		return Property(raw)
	}
	return NullStyle
}

func solid(s *synthesizer) {
	s.set("border-style", "solid")
}

// vocabulary maps STML attribute names to their effect on CSS properties.
var vocabulary map[string]func(*synthesizer, string)

func init() {
	vocabulary = map[string]func(*synthesizer, string){
		"backgroundColor": func(s *synthesizer, v string) { s.set("background-color", Property(v)) },
		"textColor":       func(s *synthesizer, v string) { s.set("color", Property(v)) },
		"width":           func(s *synthesizer, v string) { s.set("width", length(v)) },
		"height":          func(s *synthesizer, v string) { s.set("height", length(v)) },
		"borderColor": func(s *synthesizer, v string) {
			s.set("border-color", Property(v))
			solid(s)
		},
		"borderThickness": func(s *synthesizer, v string) {
			s.set("border-width", px(v))
			solid(s)
		},
		"marginTop":    func(s *synthesizer, v string) { s.set("margin-top", px(v)) },
		"marginBottom": func(s *synthesizer, v string) { s.set("margin-bottom", px(v)) },
		"marginLeft":   func(s *synthesizer, v string) { s.set("margin-left", px(v)) },
		"marginRight":  func(s *synthesizer, v string) { s.set("margin-right", px(v)) },
		"margin":       func(s *synthesizer, v string) { s.setRanked("margin", px(v), RankShorthand) },
		"marginVertical": func(s *synthesizer, v string) {
			s.setRanked("margin-top", px(v), RankAxis)
			s.setRanked("margin-bottom", px(v), RankAxis)
		},
		"marginHorizontal": func(s *synthesizer, v string) {
			s.setRanked("margin-left", px(v), RankAxis)
			s.setRanked("margin-right", px(v), RankAxis)
		},
		"padding":  func(s *synthesizer, v string) { s.set("padding", px(v)) },
		"align":    align,
		"textSize": func(s *synthesizer, v string) { s.set("font-size", px(v)) },
		"backgroundImage": func(s *synthesizer, v string) {
			s.set("background-image", Property("url('"+urlrw.Rewrite(v, s.pageRoot)+"')"))
		},
		"fashion":     func(s *synthesizer, v string) { s.set("font-weight", Property(v)) },
		"display":     display,
		"x":           positionX,
		"y":           positionY,
		"orientation": orientation,
		"shadowAlpha": func(s *synthesizer, v string) {
			if !s.shadow.SetAlpha(v) {
				tracer().Debugf("styling: ignoring shadowAlpha=%s", v)
			}
		},
		"shadowColor": func(s *synthesizer, v string) { s.shadow.Color = v },
		"shadowBlur":  func(s *synthesizer, v string) { s.shadow.Blur = v },
		"shadowX":     func(s *synthesizer, v string) { s.shadow.OffsetX = v },
		"shadowY":     func(s *synthesizer, v string) { s.shadow.OffsetY = v },
	}
}

func align(s *synthesizer, v string) {
	s.set("text-align", Property(v))
	switch v {
	case "left":
		s.set("align-self", "start")
	case "right":
		s.set("align-self", "end")
	default:
		s.set("align-self", Property(v))
	}
}

func display(s *synthesizer, v string) {
	switch v {
	case "floe":
		s.set("position", "absolute")
	case "anchored":
		s.set("position", "fixed")
	case "buoyed":
		s.set("position", "sticky")
	case "none":
		s.set("display", "none")
	}
}

// positionX and positionY fill in the other coordinate only if it has not
// been written before, so the outcome depends on attribute order.
func positionX(s *synthesizer, v string) {
	s.set("left", px(v))
	if !s.props.IsSet("top") {
		s.set("top", "0px")
	}
}

func positionY(s *synthesizer, v string) {
	s.set("top", px(v))
	if !s.props.IsSet("left") {
		s.set("left", "0px")
	}
}

func orientation(s *synthesizer, v string) {
	s.set("display", "flex")
	switch v {
	case "horizontal":
		s.set("flex-direction", "row")
		s.set("justify-content", "space-evenly")
	case "vertical":
		s.set("flex-direction", "column")
	}
}
