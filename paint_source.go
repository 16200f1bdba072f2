package canvas

import "math"

// Paint is the sealed sum type for what a fill or stroke paints with:
// a solid color, one of three gradient kinds, or an image pattern. Each
// variant samples a color at a device-space point through Sample.
//
// Paint sources are treated as immutable and shared by reference: saving
// and restoring graphics state never deep-copies a Paint, only the
// reference to it.
type Paint interface {
	paintMarker()
	// Sample returns the paint's color at device-space point (x, y).
	Sample(x, y float64) Color
}

// SolidColor is a Paint that returns the same color everywhere.
type SolidColor struct {
	Color Color
}

func (SolidColor) paintMarker() {}

// Sample implements Paint.
func (s SolidColor) Sample(_, _ float64) Color { return s.Color }

// Solid wraps a Color as a Paint.
func Solid(c Color) SolidColor { return SolidColor{Color: c} }

// LinearGradient transitions linearly between color stops along the
// segment from Start to End.
type LinearGradient struct {
	Start, End Point
	stops      []GradientStop // kept pre-sorted by addStop
}

func (*LinearGradient) paintMarker() {}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{Start: Pt(x0, y0), End: Pt(x1, y1)}
}

// AddColorStop appends a stop at the given offset (not required to be
// sorted by the caller; duplicate offsets are preserved in insertion
// order and produce a hard transition).
func (g *LinearGradient) AddColorStop(offset float64, c Color) *LinearGradient {
	g.stops = append(g.stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Sample implements Paint: projects (x, y) onto the gradient line via
// t = dot(P-Start, End-Start) / |End-Start|^2, clamped to [0, 1].
func (g *LinearGradient) Sample(x, y float64) Color {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.stops)
	}
	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq
	return colorAtOffset(sortStops(g.stops), t)
}

// RadialGradient transitions between two circles (C0, r0) and (C1, r1).
// When Start and End coincide, Sample maps the distance from the center
// linearly from StartRadius (t=0) to EndRadius (t=1). When they differ,
// Start acts as a focal point: t is the distance from Start to the
// sample point divided by the distance from Start, along the same ray,
// to the End circle, and StartRadius is not used. This is not the
// general two-circle gradient of HTML5 Canvas's createRadialGradient.
type RadialGradient struct {
	Start       Point
	StartRadius float64
	End         Point
	EndRadius   float64
	stops       []GradientStop
}

func (*RadialGradient) paintMarker() {}

// NewRadialGradient creates a radial gradient between two circles.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) *RadialGradient {
	return &RadialGradient{Start: Pt(x0, y0), StartRadius: r0, End: Pt(x1, y1), EndRadius: r1}
}

// AddColorStop appends a stop at the given offset.
func (g *RadialGradient) AddColorStop(offset float64, c Color) *RadialGradient {
	g.stops = append(g.stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Sample implements Paint.
func (g *RadialGradient) Sample(x, y float64) Color {
	if g.Start == g.End {
		radiusDiff := g.EndRadius - g.StartRadius
		if radiusDiff == 0 {
			return firstStopColor(g.stops)
		}
		dx, dy := x-g.Start.X, y-g.Start.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		t := (dist - g.StartRadius) / radiusDiff
		return colorAtOffset(sortStops(g.stops), t)
	}
	t := g.computeTFocal(x, y)
	return colorAtOffset(sortStops(g.stops), t)
}

// computeTFocal solves for t via ray-circle intersection when the
// gradient's two centers differ (the focal/"spotlight" case).
func (g *RadialGradient) computeTFocal(x, y float64) float64 {
	dx := x - g.Start.X
	dy := y - g.Start.Y
	fx := g.End.X - g.Start.X
	fy := g.End.Y - g.Start.Y

	a := dx*dx + dy*dy
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - g.EndRadius*g.EndRadius

	if a == 0 {
		return 0
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 1
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	var t float64
	switch {
	case t1 > 0 && t2 > 0:
		t = math.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return 0
	}

	pointDist := math.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return 0
	}
	return pointDist / intersectDist
}

func firstStopColor(stops []GradientStop) Color {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}

// ConicGradient sweeps color stops around Center starting at StartAngle
// (radians), a full turn corresponding to t going from 0 to 1.
type ConicGradient struct {
	Center     Point
	StartAngle float64
	stops      []GradientStop
}

func (*ConicGradient) paintMarker() {}

// NewConicGradient creates a conic (angular/"sweep") gradient.
func NewConicGradient(startAngle, cx, cy float64) *ConicGradient {
	return &ConicGradient{Center: Pt(cx, cy), StartAngle: startAngle}
}

// AddColorStop appends a stop at the given offset.
func (g *ConicGradient) AddColorStop(offset float64, c Color) *ConicGradient {
	g.stops = append(g.stops, GradientStop{Offset: offset, Color: c})
	return g
}

// Sample implements Paint: t = ((atan2(y-cy, x-cx) - startAngle) mod 2*pi) / 2*pi.
func (g *ConicGradient) Sample(x, y float64) Color {
	dx, dy := x-g.Center.X, y-g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.stops)
	}
	angle := math.Atan2(dy, dx) - g.StartAngle
	const twoPi = 2 * math.Pi
	angle = math.Mod(angle, twoPi)
	if angle < 0 {
		angle += twoPi
	}
	t := angle / twoPi
	return colorAtOffset(sortStops(g.stops), t)
}

// Image is a simple RGBA8 raster source for ImagePattern sampling, mirroring
// the buffer layout of Surface (non-premultiplied, row-major, stride = 4*Width).
type Image struct {
	Width, Height int
	Pix           []uint8
}

// At returns the pixel at (x, y); out-of-bounds coordinates return
// transparent black.
func (img *Image) At(x, y int) Color {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return Transparent
	}
	i := (y*img.Width + x) * 4
	return Color{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// ImagePattern samples an Image through an inverse transform, applying
// one of the four repetition modes named in spec §6. Sampling is always
// nearest-neighbor.
type ImagePattern struct {
	Image      *Image
	Repetition Repetition
	// Transform maps pattern space to device space; Sample inverse-maps
	// device coordinates through it before indexing the image.
	Transform Transform
}

func (*ImagePattern) paintMarker() {}

// NewImagePattern creates a pattern sampling img under the given
// repetition mode, initially unscaled/untranslated.
func NewImagePattern(img *Image, repetition Repetition) *ImagePattern {
	return &ImagePattern{Image: img, Repetition: repetition, Transform: Identity()}
}

// Sample implements Paint.
func (p *ImagePattern) Sample(x, y float64) Color {
	local := p.Transform.Invert().TransformPoint(Pt(x, y))
	w, h := p.Image.Width, p.Image.Height
	if w == 0 || h == 0 {
		return Transparent
	}

	ix := int(math.Floor(local.X))
	iy := int(math.Floor(local.Y))

	switch p.Repetition {
	case RepeatNone:
		if ix < 0 || iy < 0 || ix >= w || iy >= h {
			return Transparent
		}
	case RepeatX:
		if iy < 0 || iy >= h {
			return Transparent
		}
		ix = wrapInt(ix, w)
	case RepeatY:
		if ix < 0 || ix >= w {
			return Transparent
		}
		iy = wrapInt(iy, h)
	default: // RepeatBoth
		ix = wrapInt(ix, w)
		iy = wrapInt(iy, h)
	}

	return p.Image.At(ix, iy)
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
