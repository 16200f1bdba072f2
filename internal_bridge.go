package canvas

import (
	ipath "github.com/davidedc/SWCanvas-sub003/internal/path"
	iraster "github.com/davidedc/SWCanvas-sub003/internal/raster"
	istroke "github.com/davidedc/SWCanvas-sub003/internal/stroke"
)

// toInternalPath converts the root package's sealed path element set to
// internal/path's mirror, so the flattener (which cannot import the root
// package without an import cycle) can consume it.
func toInternalPath(elements []PathElement) []ipath.PathElement {
	out := make([]ipath.PathElement, 0, len(elements))
	for _, e := range elements {
		switch v := e.(type) {
		case MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: v.Point.X, Y: v.Point.Y}})
		case LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: v.Point.X, Y: v.Point.Y}})
		case QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: v.Control.X, Y: v.Control.Y},
				Point:   ipath.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point{X: v.Control1.X, Y: v.Control1.Y},
				Control2: ipath.Point{X: v.Control2.X, Y: v.Control2.Y},
				Point:    ipath.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

// fromStrokePath converts the stroke expander's output (which may
// contain CubicTo segments emitted by round caps and joins) into
// internal/path's mirror so it can be flattened into fillable rings.
func fromStrokePath(elements []istroke.PathElement) []ipath.PathElement {
	out := make([]ipath.PathElement, 0, len(elements))
	for _, e := range elements {
		switch v := e.(type) {
		case istroke.MoveTo:
			out = append(out, ipath.MoveTo{Point: ipath.Point{X: v.Point.X, Y: v.Point.Y}})
		case istroke.LineTo:
			out = append(out, ipath.LineTo{Point: ipath.Point{X: v.Point.X, Y: v.Point.Y}})
		case istroke.QuadTo:
			out = append(out, ipath.QuadTo{
				Control: ipath.Point{X: v.Control.X, Y: v.Control.Y},
				Point:   ipath.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case istroke.CubicTo:
			out = append(out, ipath.CubicTo{
				Control1: ipath.Point{X: v.Control1.X, Y: v.Control1.Y},
				Control2: ipath.Point{X: v.Control2.X, Y: v.Control2.Y},
				Point:    ipath.Point{X: v.Point.X, Y: v.Point.Y},
			})
		case istroke.Close:
			out = append(out, ipath.Close{})
		}
	}
	return out
}

// ringToStrokeOpenPath converts a flattened, open polyline (the points
// of an open ring, as passed by ringToStrokePath) into a stroke-expander
// input stream: a single MoveTo followed by LineTo segments.
func ringToStrokeOpenPath(points []iraster.Point) []istroke.PathElement {
	if len(points) == 0 {
		return nil
	}
	out := make([]istroke.PathElement, 0, len(points))
	out = append(out, istroke.MoveTo{Point: istroke.Point{X: points[0].X, Y: points[0].Y}})
	for _, p := range points[1:] {
		out = append(out, istroke.LineTo{Point: istroke.Point{X: p.X, Y: p.Y}})
	}
	return out
}

// ringToStrokePath converts a flattened ring (polyline plus whether it
// was explicitly closed) into a stroke-expander input stream.
func ringToStrokePath(ring iraster.Ring) []istroke.PathElement {
	out := ringToStrokeOpenPath(ring.Points)
	if ring.Closed {
		out = append(out, istroke.Close{})
	}
	return out
}

// runToStrokePath converts an open polyline already in stroke-package
// points (e.g. one "on" run produced by dash splitting) into a
// stroke-expander input stream.
func runToStrokePath(points []istroke.Point) []istroke.PathElement {
	if len(points) == 0 {
		return nil
	}
	out := make([]istroke.PathElement, 0, len(points))
	out = append(out, istroke.MoveTo{Point: points[0]})
	for _, p := range points[1:] {
		out = append(out, istroke.LineTo{Point: p})
	}
	return out
}

// rasterPointsToStrokePoints converts a flattened ring's points to
// stroke-package points, for feeding the dash splitter.
func rasterPointsToStrokePoints(points []iraster.Point) []istroke.Point {
	out := make([]istroke.Point, len(points))
	for i, p := range points {
		out[i] = istroke.Point{X: p.X, Y: p.Y}
	}
	return out
}
