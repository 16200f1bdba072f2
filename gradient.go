package canvas

import "sort"

// GradientStop is a color at a specific offset along a gradient, per
// spec interpreted in insertion order: duplicate offsets produce a hard
// transition rather than being merged.
type GradientStop struct {
	Offset float64 // position in the gradient, in [0, 1]
	Color  Color
}

// sortStops returns stops sorted by ascending offset, stable so that
// stops sharing an offset keep their insertion order (preserving the
// hard-transition behavior at duplicate offsets).
func sortStops(stops []GradientStop) []GradientStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]GradientStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset returns the color at gradient parameter t, clamping t to
// [0, 1] (the gradient's implicit pad-to-edge behavior) and interpolating
// in straight (non-premultiplied) space between the bracketing stops.
func colorAtOffset(sortedStops []GradientStop, t float64) Color {
	if len(sortedStops) == 0 {
		return Transparent
	}
	if len(sortedStops) == 1 {
		return sortedStops[0].Color
	}

	t = clamp01(t)

	idx := sort.Search(len(sortedStops), func(i int) bool {
		return sortedStops[i].Offset > t
	})

	if idx == 0 {
		return sortedStops[0].Color
	}
	if idx >= len(sortedStops) {
		return sortedStops[len(sortedStops)-1].Color
	}

	stop1 := sortedStops[idx-1]
	stop2 := sortedStops[idx]
	if stop2.Offset == stop1.Offset {
		// Duplicate offset: hard transition, use the later stop.
		return stop2.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return stop1.Color.Lerp(stop2.Color, localT)
}
