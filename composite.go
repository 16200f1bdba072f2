package canvas

import (
	"github.com/davidedc/SWCanvas-sub003/internal/blend"
	"github.com/davidedc/SWCanvas-sub003/internal/clip"
)

// blendModeFor maps a CompositeOperation to the matching Porter-Duff
// blend function. CompositeLighter is the one additive, non-Porter-Duff
// operator the engine supports (spec §4.9's "lighter").
func blendModeFor(op CompositeOperation) blend.BlendMode {
	switch op {
	case CompositeDestinationOver:
		return blend.BlendDestinationOver
	case CompositeSourceIn:
		return blend.BlendSourceIn
	case CompositeDestinationIn:
		return blend.BlendDestinationIn
	case CompositeSourceOut:
		return blend.BlendSourceOut
	case CompositeDestinationOut:
		return blend.BlendDestinationOut
	case CompositeSourceAtop:
		return blend.BlendSourceAtop
	case CompositeDestinationAtop:
		return blend.BlendDestinationAtop
	case CompositeXor:
		return blend.BlendXor
	case CompositeCopy:
		return blend.BlendSource
	case CompositeLighter:
		return blend.BlendPlus
	default:
		return blend.BlendSourceOver
	}
}

// compositePixel composes src (straight-alpha, globalAlpha already
// folded into src.A) over dst using op, working in premultiplied space
// and un-premultiplying the result, per spec §4.9.
func compositePixel(op CompositeOperation, src, dst Color) Color {
	s := src.Premultiply()
	d := dst.Premultiply()

	fn := blend.GetBlendFunc(blendModeFor(op))
	r, g, b, a := fn(s.R, s.G, s.B, s.A, d.R, d.G, d.B, d.A)

	return Color{R: r, G: g, B: b, A: a}.Unpremultiply()
}

// applyGlobalAlpha scales a paint's sampled alpha by globalAlpha (itself
// clamped to [0, 1] by the setter).
func applyGlobalAlpha(c Color, globalAlpha float64) Color {
	if globalAlpha >= 1 {
		return c
	}
	if globalAlpha <= 0 {
		return Color{R: c.R, G: c.G, B: c.B, A: 0}
	}
	return Color{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*globalAlpha + 0.5)}
}

// writePixel composites src onto surf at (x, y) under op, dropping the
// write if the pixel is out of bounds or fails the clip mask test (a
// nil mask means "unclipped", every pixel passes).
func writePixel(surf *Surface, mask *clip.BitMask, x, y int, src Color, op CompositeOperation) {
	if !surf.InBounds(x, y) {
		return
	}
	if mask != nil && !mask.Get(x, y) {
		return
	}
	if op == CompositeCopy || (op == CompositeSourceOver && src.A == 255) {
		surf.SetPixel(x, y, src)
		return
	}
	dst := surf.GetPixel(x, y)
	surf.SetPixel(x, y, compositePixel(op, src, dst))
}

// writeSpan composites src across [x1, x2] (inclusive) on row y, skipping
// clipped pixels individually since the clip mask need not align with the
// span's run of solid color.
func writeSpan(surf *Surface, mask *clip.BitMask, x1, x2, y int, src Color, op CompositeOperation) {
	if mask == nil && (op == CompositeCopy || (op == CompositeSourceOver && src.A == 255)) {
		surf.FillSpan(x1, x2+1, y, src)
		return
	}
	if mask == nil && op == CompositeSourceOver {
		surf.FillSpanBlend(x1, x2+1, y, src)
		return
	}
	for x := x1; x <= x2; x++ {
		writePixel(surf, mask, x, y, src, op)
	}
}
