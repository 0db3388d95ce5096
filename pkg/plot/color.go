package plot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// DefaultColor is the stroke color used when none is given.
const DefaultColor = "black"

// ParseColor resolves a CSS color name or a #rrggbb / #rgb hex string.
func ParseColor(s string) (color.RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		if len(name) != 4 && len(name) != 7 {
			return color.RGBA{}, fmt.Errorf("parsing color %q: want #rgb or #rrggbb", s)
		}
		c, err := colorful.Hex(name)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parsing color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// Hex returns the color as #rrggbb, falling back to black for names that
// do not resolve.
func Hex(s string) string {
	c, err := ParseColor(s)
	if err != nil {
		c = colornames.Black
	}
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
