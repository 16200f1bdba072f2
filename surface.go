package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// Compile-time interface checks.
var (
	_ image.Image = (*Surface)(nil)
	_ draw.Image  = (*Surface)(nil)
)

// Surface is a rectangular pixel buffer storing non-premultiplied RGBA8
// pixels, row-major with a stride of 4*Width bytes per spec's pixel
// storage model. It implements image.Image and draw.Image so it can be
// written to a PNG or composed with the standard image ecosystem.
type Surface struct {
	width  int
	height int
	data   []uint8 // non-premultiplied RGBA, 4 bytes per pixel
}

// NewSurface creates a surface with the given dimensions, initialized to
// transparent black.
func NewSurface(width, height int) *Surface {
	return &Surface{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the surface's width in pixels.
func (s *Surface) Width() int { return s.width }

// Height returns the surface's height in pixels.
func (s *Surface) Height() int { return s.height }

// Pix returns the raw pixel buffer (non-premultiplied RGBA, row-major).
func (s *Surface) Pix() []uint8 { return s.data }

// InBounds reports whether (x, y) addresses a pixel of the surface.
func (s *Surface) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds coordinates
// are ignored.
func (s *Surface) SetPixel(x, y int, c Color) {
	if !s.InBounds(x, y) {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds
// coordinates return transparent black.
func (s *Surface) GetPixel(x, y int) Color {
	if !s.InBounds(x, y) {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.data[i+0], G: s.data[i+1], B: s.data[i+2], A: s.data[i+3]}
}

// Clear fills the entire surface with a single color (no blending).
func (s *Surface) Clear(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// ToImage converts the surface to a standard image.NRGBA, sharing no
// memory with the surface's own buffer.
func (s *Surface) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// SavePNG writes the surface to path as a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.ToImage())
}

// At implements image.Image.
func (s *Surface) At(x, y int) color.Color {
	return s.GetPixel(x, y).ToNRGBA()
}

// Set implements draw.Image.
func (s *Surface) Set(x, y int, c color.Color) {
	s.SetPixel(x, y, ColorFromStd(c))
}

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}

// FillSpan fills a horizontal span of pixels with a solid color, no
// blending. The span runs from x1 (inclusive) to x2 (exclusive) on row
// y. For spans of 16 pixels or more, the fill pattern is doubled
// geometrically instead of written pixel by pixel.
func (s *Surface) FillSpan(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}

	startIdx := (y*s.width + x1) * 4
	length := x2 - x1

	if length < 16 {
		for i := 0; i < length; i++ {
			idx := startIdx + i*4
			s.data[idx+0] = c.R
			s.data[idx+1] = c.G
			s.data[idx+2] = c.B
			s.data[idx+3] = c.A
		}
		return
	}

	s.data[startIdx+0] = c.R
	s.data[startIdx+1] = c.G
	s.data[startIdx+2] = c.B
	s.data[startIdx+3] = c.A

	filled := 1
	for filled < 16 && filled < length {
		copyLen := filled
		if filled+copyLen > length {
			copyLen = length - filled
		}
		copy(s.data[startIdx+filled*4:], s.data[startIdx:startIdx+copyLen*4])
		filled += copyLen
	}

	if filled < length {
		patternSize := filled * 4
		for offset := filled * 4; offset < length*4; {
			copyLen := patternSize
			if offset+copyLen > length*4 {
				copyLen = length*4 - offset
			}
			copy(s.data[startIdx+offset:], s.data[startIdx:startIdx+copyLen])
			offset += copyLen
		}
	}
}

// FillSpanBlend fills a horizontal span using source-over compositing
// against the existing contents of row y, working in premultiplied
// space and un-premultiplying each result before storing it (the
// surface's storage format is always non-premultiplied).
func (s *Surface) FillSpanBlend(x1, x2, y int, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > s.width {
		x2 = s.width
	}
	if x1 >= x2 {
		return
	}

	if c.A == 255 {
		s.FillSpan(x1, x2, y, c)
		return
	}
	if c.A == 0 {
		return
	}

	src := c.Premultiply()
	invSa := 255 - src.A
	startIdx := (y*s.width + x1) * 4
	length := x2 - x1

	for i := 0; i < length; i++ {
		idx := startIdx + i*4
		dst := Color{R: s.data[idx+0], G: s.data[idx+1], B: s.data[idx+2], A: s.data[idx+3]}.Premultiply()

		out := Color{
			R: addClamp(src.R, mulDiv255(dst.R, invSa)),
			G: addClamp(src.G, mulDiv255(dst.G, invSa)),
			B: addClamp(src.B, mulDiv255(dst.B, invSa)),
			A: addClamp(src.A, mulDiv255(dst.A, invSa)),
		}.Unpremultiply()

		s.data[idx+0] = out.R
		s.data[idx+1] = out.G
		s.data[idx+2] = out.B
		s.data[idx+3] = out.A
	}
}

func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
