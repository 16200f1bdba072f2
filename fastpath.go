package canvas

import (
	"math"

	"github.com/davidedc/SWCanvas-sub003/internal/clip"
)

// fastPathPreconditions holds the state a caller must confirm before any
// fast path in this file is selected: solid paint, source-over, no
// shadow (shadows are dispatch-only per spec — any non-default value
// forces the generic pipeline).
type fastPathPreconditions struct {
	color       Color
	op          CompositeOperation
	globalAlpha float64
	shadowed    bool
}

func (p fastPathPreconditions) eligible() bool {
	return p.op == CompositeSourceOver && !p.shadowed
}

func (p fastPathPreconditions) resolvedColor() Color {
	return applyGlobalAlpha(p.color, p.globalAlpha)
}

// fillAxisAlignedRect fills an axis-aligned integer-rounded rectangle
// with a tight double loop / batched span write, per spec §4.10.
func fillAxisAlignedRect(surf *Surface, mask *clip.BitMask, x0, y0, x1, y1 int, c Color, op CompositeOperation) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > surf.Width() {
		x1 = surf.Width()
	}
	if y1 > surf.Height() {
		y1 = surf.Height()
	}
	for y := y0; y < y1; y++ {
		writeSpan(surf, mask, x0, x1-1, y, c, op)
	}
}

// strokeAxisAlignedRectBorder draws the 1-pixel-or-thicker border of an
// axis-aligned rectangle using four fast-filled bands, avoiding the
// corner double-paint a naive 4-line stroke would produce.
func strokeAxisAlignedRectBorder(surf *Surface, mask *clip.BitMask, x0, y0, x1, y1 int, width int, c Color, op CompositeOperation) {
	if width < 1 {
		width = 1
	}
	fillAxisAlignedRect(surf, mask, x0, y0, x1, y0+width, c, op)               // top
	fillAxisAlignedRect(surf, mask, x0, y1-width, x1, y1, c, op)               // bottom
	fillAxisAlignedRect(surf, mask, x0, y0+width, x0+width, y1-width, c, op)   // left
	fillAxisAlignedRect(surf, mask, x1-width, y0+width, x1, y1-width, c, op)   // right
}

// fillFullCircle rasterizes a filled circle with the midpoint
// (Bresenham) circle algorithm, filling each scanline's chord as a
// horizontal span rather than plotting individual boundary points.
func fillFullCircle(surf *Surface, mask *clip.BitMask, cx, cy int, r int, c Color, op CompositeOperation) {
	if r <= 0 {
		return
	}
	x, y := r, 0
	err := 1 - r

	plotRow := func(yy, xx int) {
		writeSpan(surf, mask, cx-xx, cx+xx, cy+yy, c, op)
	}

	for x >= y {
		plotRow(y, x)
		plotRow(-y, x)
		plotRow(x, y)
		plotRow(-x, y)
		y++
		if err < 0 {
			err += 2*y + 1
		} else {
			x--
			err += 2*(y-x) + 1
		}
	}
}

// strokeFullCircleAnnulus draws a thick circular stroke by scanning each
// row and filling the region between the inner and outer radius, i.e.
// the analytic annulus described in spec §4.10.
func strokeFullCircleAnnulus(surf *Surface, mask *clip.BitMask, cx, cy float64, innerR, outerR float64, c Color, op CompositeOperation) {
	if outerR <= 0 {
		return
	}
	yTop := int(math.Floor(cy - outerR))
	yBot := int(math.Ceil(cy + outerR))
	for y := yTop; y <= yBot; y++ {
		dy := float64(y) + 0.5 - cy
		if math.Abs(dy) > outerR {
			continue
		}
		outerDx := math.Sqrt(math.Max(0, outerR*outerR-dy*dy))
		xOuterL := int(math.Ceil(cx - outerDx))
		xOuterR := int(math.Floor(cx + outerDx))

		if innerR <= 0 || math.Abs(dy) >= innerR {
			writeSpan(surf, mask, xOuterL, xOuterR, y, c, op)
			continue
		}

		innerDx := math.Sqrt(innerR*innerR - dy*dy)
		xInnerL := int(math.Floor(cx - innerDx))
		xInnerR := int(math.Ceil(cx + innerDx))

		if xOuterL <= xInnerL-1 {
			writeSpan(surf, mask, xOuterL, xInnerL-1, y, c, op)
		}
		if xInnerR+1 <= xOuterR {
			writeSpan(surf, mask, xInnerR+1, xOuterR, y, c, op)
		}
	}
}

// strokeThinLine draws a single-pixel-wide line with Bresenham's
// algorithm; used only for butt-capped straight lines whose device-space
// width is at most 1.5 pixels.
func strokeThinLine(surf *Surface, mask *clip.BitMask, x0, y0, x1, y1 int, c Color, op CompositeOperation) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		writePixel(surf, mask, x0, y0, c, op)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
