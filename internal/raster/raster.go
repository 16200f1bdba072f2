// Package raster implements the aliased scanline polygon filler.
//
// This is a whole-pixel-only rasterizer: it produces no coverage values,
// every span is either fully in or fully out, sampled at the pixel
// center y+0.5.
package raster

import (
	"math"
	"sort"
)

// Point is a flattened path vertex.
type Point struct{ X, Y float64 }

// Ring is one flattened subpath: a polyline plus whether it was
// explicitly closed. Fill always treats every ring as closed (an open
// ring is implicitly closed with a straight segment back to its first
// point); Closed is carried for callers that need to distinguish the
// two for stroking.
type Ring struct {
	Points []Point
	Closed bool
}

// FillRule selects how the accumulated winding number maps to "inside".
type FillRule int

const (
	// NonZero fills where the winding number is non-zero.
	NonZero FillRule = iota
	// EvenOdd fills where the winding number is odd.
	EvenOdd
)

type edge struct {
	yMin, yMax float64 // yMin < yMax
	x0         float64 // x at yMin
	dxdy       float64 // slope in x per unit y
	winding    int     // +1 downward, -1 upward
}

// Fill rasterizes rings against a surface of the given dimensions,
// invoking emit(x1, x2, y) once per inside span per scanline. Spans are
// inclusive on both ends and already clamped to [0, width).
func Fill(rings []Ring, rule FillRule, width, height int, emit func(x1, x2, y int)) {
	edges := buildEdges(rings)
	if len(edges) == 0 || width <= 0 || height <= 0 {
		return
	}

	yMin, yMax := boundingYRange(edges)
	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > height {
		y1 = height
	}

	var xs []float64
	var windings []int

	for y := y0; y < y1; y++ {
		sampleY := float64(y) + 0.5

		xs = xs[:0]
		windings = windings[:0]
		for _, e := range edges {
			if sampleY < e.yMin || sampleY >= e.yMax {
				continue
			}
			x := e.x0 + (sampleY-e.yMin)*e.dxdy
			xs = append(xs, x)
			windings = append(windings, e.winding)
		}
		if len(xs) == 0 {
			continue
		}

		order := make([]int, len(xs))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(i, j int) bool { return xs[order[i]] < xs[order[j]] })

		winding := 0
		inside := false
		var spanStart float64
		for _, idx := range order {
			wasInside := inside
			winding += windings[idx]
			switch rule {
			case EvenOdd:
				inside = winding%2 != 0
			default:
				inside = winding != 0
			}

			if !wasInside && inside {
				spanStart = xs[idx]
			} else if wasInside && !inside {
				emitSpan(spanStart, xs[idx], y, width, emit)
			}
		}
	}
}

func emitSpan(xIn, xOut float64, y, width int, emit func(x1, x2, y int)) {
	x1 := int(math.Ceil(xIn))
	x2 := int(math.Ceil(xOut)) - 1
	if x1 < 0 {
		x1 = 0
	}
	if x2 > width-1 {
		x2 = width - 1
	}
	if x1 > x2 {
		return
	}
	emit(x1, x2, y)
}

func buildEdges(rings []Ring) []edge {
	var edges []edge
	for _, ring := range rings {
		n := len(ring.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := ring.Points[i]
			p1 := ring.Points[(i+1)%n]
			if p0.Y == p1.Y {
				continue // horizontal edges never intersect y+0.5 meaningfully
			}

			winding := 1
			lo, hi := p0, p1
			if p0.Y > p1.Y {
				winding = -1
				lo, hi = p1, p0
			}

			edges = append(edges, edge{
				yMin:    lo.Y,
				yMax:    hi.Y,
				x0:      lo.X,
				dxdy:    (hi.X - lo.X) / (hi.Y - lo.Y),
				winding: winding,
			})
		}
	}
	return edges
}

func boundingYRange(edges []edge) (float64, float64) {
	yMin := math.Inf(1)
	yMax := math.Inf(-1)
	for _, e := range edges {
		if e.yMin < yMin {
			yMin = e.yMin
		}
		if e.yMax > yMax {
			yMax = e.yMax
		}
	}
	return yMin, yMax
}
