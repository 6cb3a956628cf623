package grain

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a hue/saturation/lightness color with alpha.
// H is in degrees [0, 360); S, L and A are in [0, 1].
//
// Every adjustment keeps the channels valid: hue wraps around the color
// wheel while saturation, lightness and alpha clamp to [0, 1]. Jitter
// added by the grain and paint helpers therefore never produces an
// out-of-range color.
type Color struct {
	H, S, L, A float64
}

// HSL creates an opaque color from HSL values.
func HSL(h, s, l float64) Color {
	return HSLA(h, s, l, 1)
}

// HSLA creates a color from HSL values and alpha, normalizing channels.
func HSLA(h, s, l, a float64) Color {
	return Color{H: wrapHue(h), S: clamp01(s), L: clamp01(l), A: clamp01(a)}
}

// RGB creates an opaque color from RGB components in [0, 1].
func RGB(r, g, b float64) Color {
	return RGBAColor(r, g, b, 1)
}

// RGBAColor creates a color from RGBA components in [0, 1].
func RGBAColor(r, g, b, a float64) Color {
	r, g, b = clamp01(r), clamp01(g), clamp01(b)
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return Color{H: 0, S: 0, L: l, A: clamp01(a)}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return Color{H: wrapHue(h * 60), S: s, L: l, A: clamp01(a)}
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBAColor(
		float64(n.R)/255,
		float64(n.G)/255,
		float64(n.B)/255,
		float64(n.A)/255,
	)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Malformed input yields opaque black.
func Hex(hex string) Color {
	hex = strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Black
	}

	return RGBAColor(float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255)
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Named looks up an SVG color keyword such as "black" or "tomato".
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// ParseColor accepts an SVG color keyword or a hex string.
func ParseColor(s string) (Color, bool) {
	if c, ok := Named(s); ok {
		return c, true
	}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Color{}, false
	}
	for i := 0; i < len(hex); i++ {
		if !isHexDigit(hex[i]) {
			return Color{}, false
		}
	}
	return Hex(hex), true
}

func isHexDigit(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// Shift returns the color with dh added to hue, ds to saturation and dl
// to lightness.
func (c Color) Shift(dh, ds, dl float64) Color {
	return HSLA(c.H+dh, c.S+ds, c.L+dl, c.A)
}

// WithAlpha returns the color with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// RGB returns the red, green and blue components in [0, 1].
func (c Color) RGB() (r, g, b float64) {
	h := wrapHue(c.H) / 360
	s, l := clamp01(c.S), clamp01(c.L)

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - chroma/2

	switch {
	case h < 1.0/6:
		r, g, b = chroma, x, 0
	case h < 2.0/6:
		r, g, b = x, chroma, 0
	case h < 3.0/6:
		r, g, b = 0, chroma, x
	case h < 4.0/6:
		r, g, b = 0, x, chroma
	case h < 5.0/6:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return r + m, g + m, b + m
}

// NRGBA converts the color to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{
		R: uint8(clamp255(r*255 + 0.5)),
		G: uint8(clamp255(g*255 + 0.5)),
		B: uint8(clamp255(b*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// wrapHue maps a hue in degrees onto [0, 360).
func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = HSL(0, 0, 0)
	White       = HSL(0, 0, 1)
	Transparent = HSLA(0, 0, 0, 0)
)
