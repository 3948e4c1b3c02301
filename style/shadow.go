package style

import (
	"fmt"
	"math"
	"strconv"
)

// NoShadowColor is the color of an inactive shadow.
const NoShadowColor = "none"

// Shadow accumulates the shadow attributes of an element. CSS needs all of
// them as a single box-shadow property.
type Shadow struct {
	OffsetX string // horizontal offset in pixels, verbatim
	OffsetY string // vertical offset in pixels, verbatim
	Blur    string // blur radius in pixels, verbatim
	Spread  string // spread radius in pixels, verbatim
	Color   string // CSS hex color without alpha, or NoShadowColor
	Alpha   int    // opacity 0…100
}

// NewShadow returns an inactive shadow.
func NewShadow() *Shadow {
	return &Shadow{
		OffsetX: "0",
		OffsetY: "0",
		Blur:    "0",
		Spread:  "0",
		Color:   NoShadowColor,
	}
}

// Active is a predicate: has a shadow color been set?
func (sh *Shadow) Active() bool {
	return sh.Color != NoShadowColor
}

// SetAlpha sets the opacity from an attribute value. Values which are not
// decimal digits only are ignored; values above 100 are clamped.
func (sh *Shadow) SetAlpha(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if v[i] < '0' || v[i] > '9' {
			return false
		}
	}
	a, err := strconv.Atoi(v)
	if err != nil || a > 100 {
		a = 100 // only overflow fails
	}
	sh.Alpha = a
	return true
}

// AlphaHex returns the opacity scaled to 0…255 as two hex digits.
func (sh *Shadow) AlphaHex() string {
	return fmt.Sprintf("%02x", int(math.Round(255*float64(sh.Alpha)/100)))
}

// Property returns the box-shadow value of an active shadow.
func (sh *Shadow) Property() Property {
	return Property(fmt.Sprintf("%spx %spx %spx %spx %s%s",
		sh.OffsetX, sh.OffsetY, sh.Blur, sh.Spread, sh.Color, sh.AlphaHex()))
}
