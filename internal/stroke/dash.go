package stroke

import "math"

// DashPattern is an even-length dash pattern (alternating on/off run
// lengths) plus a starting offset already wrapped into [0, patternLength)
// by the caller (canvas.Dash.NormalizedOffset / effectiveArray).
type DashPattern struct {
	Array  []float64
	Offset float64
}

// SplitDash walks a flattened polyline — closed is true when an implicit
// segment back to points[0] should be walked too — against dash, and
// returns each "on" run as an independent open polyline. Each returned
// run is stroked and capped on its own, per spec §4.6 step 1: dashing
// happens before stroke expansion, not after.
func SplitDash(points []Point, closed bool, dash DashPattern) [][]Point {
	if len(points) < 2 || len(dash.Array) == 0 {
		return nil
	}

	idx, remaining := locateDashPosition(dash.Offset, dash.Array)
	on := idx%2 == 0

	var runs [][]Point
	var current []Point
	if on {
		current = append(current, points[0])
	}

	segCount := len(points) - 1
	if closed {
		segCount++
	}

	for i := 0; i < segCount; i++ {
		p0 := points[i]
		var p1 Point
		if i == len(points)-1 {
			p1 = points[0]
		} else {
			p1 = points[i+1]
		}

		segLen := p0.Distance(p1)
		if segLen < 1e-12 {
			continue
		}

		traveled := 0.0
		for traveled < segLen {
			step := math.Min(remaining, segLen-traveled)
			traveled += step
			remaining -= step

			if remaining > 1e-9 {
				continue
			}

			t := traveled / segLen
			boundary := p0.Lerp(p1, t)

			if on {
				current = append(current, boundary)
				if len(current) >= 2 {
					runs = append(runs, current)
				}
				current = nil
			} else {
				current = []Point{boundary}
			}

			on = !on
			idx = (idx + 1) % len(dash.Array)
			remaining = dash.Array[idx]
		}

		if on {
			current = append(current, p1)
		}
	}

	if on && len(current) >= 2 {
		runs = append(runs, current)
	}

	return runs
}

// locateDashPosition finds which array slot a normalized offset falls
// into and how much of that slot's run length remains.
func locateDashPosition(offset float64, array []float64) (idx int, remaining float64) {
	pos := offset
	for i, l := range array {
		if pos < l {
			return i, l - pos
		}
		pos -= l
	}
	return 0, array[0]
}
