package canvas

import (
	"fmt"
	"image/color"
	"math"
)

// Color is an RGBA color with components in [0, 255], stored
// non-premultiplied. Values are immutable once constructed.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ToNRGBA converts to the standard library's non-premultiplied color type.
func (c Color) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorFromStd converts a standard color.Color to Color, un-premultiplying
// if necessary.
func ColorFromStd(c color.Color) Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nrgba.R, G: nrgba.G, B: nrgba.B, A: nrgba.A}
}

// Hex parses a color from a hex string. Supports "RGB", "RGBA", "RRGGBB"
// and "RRGGBBAA", with or without a leading '#'.
func Hex(hex string) (Color, error) {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3:
		if err := parseHex(hex[0:1], &r); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[1:2], &g); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[2:3], &b); err != nil {
			return Color{}, err
		}
		r, g, b = r*17, g*17, b*17
	case 4:
		if err := parseHex(hex[0:1], &r); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[1:2], &g); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[2:3], &b); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[3:4], &a); err != nil {
			return Color{}, err
		}
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		if err := parseHex(hex[0:2], &r); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[2:4], &g); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[4:6], &b); err != nil {
			return Color{}, err
		}
	case 8:
		if err := parseHex(hex[0:2], &r); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[2:4], &g); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[4:6], &b); err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[6:8], &a); err != nil {
			return Color{}, err
		}
	default:
		return Color{}, fmt.Errorf("canvas: invalid hex color %q", hex)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

func parseHex(s string, val *uint32) error {
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
			return fmt.Errorf("canvas: invalid hex digit %q", c)
		}
	}
	return nil
}

// mulDiv255 computes round(a*b/255) using the same integer rounding the
// compositor uses, so un-premultiplying reverses premultiplying exactly.
func mulDiv255(a, b uint8) uint8 {
	v := uint32(a) * uint32(b)
	return uint8((v + 127) / 255)
}

// Premultiply returns the color with RGB multiplied by alpha.
func (c Color) Premultiply() Color {
	return Color{
		R: mulDiv255(c.R, c.A),
		G: mulDiv255(c.G, c.A),
		B: mulDiv255(c.B, c.A),
		A: c.A,
	}
}

// Unpremultiply returns the color with RGB divided by alpha. A fully
// transparent color un-premultiplies to transparent black.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	unscale := func(v uint8) uint8 {
		x := (uint32(v)*255 + uint32(c.A)/2) / uint32(c.A)
		if x > 255 {
			x = 255
		}
		return uint8(x)
	}
	return Color{R: unscale(c.R), G: unscale(c.G), B: unscale(c.B), A: c.A}
}

// Lerp linearly interpolates between two colors in straight (non-
// premultiplied) space, t clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp8 := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return Color{
		R: lerp8(c.R, other.R),
		G: lerp8(c.G, other.G),
		B: lerp8(c.B, other.B),
		A: lerp8(c.A, other.A),
	}
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Cyan        = RGB(0, 255, 255)
	Magenta     = RGB(255, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)

// HSL creates an opaque color from HSL values: h is hue in [0, 360), s and
// l are saturation and lightness in [0, 1].
func HSL(h, s, l float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	cc := (1 - math.Abs(2*l-1)) * s
	x := cc * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - cc/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = cc, x, 0
	case h < 2.0/6:
		r, g, b = x, cc, 0
	case h < 3.0/6:
		r, g, b = 0, cc, x
	case h < 4.0/6:
		r, g, b = 0, x, cc
	case h < 5.0/6:
		r, g, b = x, 0, cc
	default:
		r, g, b = cc, 0, x
	}

	to8 := func(v float64) uint8 {
		return uint8(math.Round(clamp01(v+m) * 255))
	}
	return RGB(to8(r), to8(g), to8(b))
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
