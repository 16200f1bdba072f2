package canvas

import (
	"math"
	"testing"
)

func TestFillCircleFastPathMatchesGenericPipeline(t *testing.T) {
	fast := NewContext(100, 100)
	fast.SetFillColor(RGB(200, 50, 50))
	fast.FillCircle(50, 50, 30)

	generic := NewContext(100, 100, WithRasterizerInstrumentation())
	generic.SetFillColor(RGB(200, 50, 50))
	generic.FillCircle(50, 50, 30)

	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			a := fast.Surface().GetPixel(x, y)
			b := generic.Surface().GetPixel(x, y)
			if a != b {
				t.Fatalf("pixel mismatch at (%d,%d): fast=%v generic=%v", x, y, a, b)
			}
		}
	}
}

func TestFillRectFastPathMatchesGenericPipeline(t *testing.T) {
	fast := NewContext(60, 60)
	fast.SetFillColor(RGBA(10, 200, 30, 180))
	fast.FillRect(10, 10, 30, 20)

	generic := NewContext(60, 60, WithRasterizerInstrumentation())
	generic.SetFillColor(RGBA(10, 200, 30, 180))
	generic.FillRect(10, 10, 30, 20)

	for y := 0; y < 60; y++ {
		for x := 0; x < 60; x++ {
			a := fast.Surface().GetPixel(x, y)
			b := generic.Surface().GetPixel(x, y)
			if a != b {
				t.Fatalf("pixel mismatch at (%d,%d): fast=%v generic=%v", x, y, a, b)
			}
		}
	}
}

func TestFillRectNonPositiveIsNoOp(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetFillColor(White)
	dc.FillRect(5, 5, 0, 10)
	dc.FillRect(5, 5, 10, -1)

	if dc.Surface().GetPixel(5, 5) != Transparent {
		t.Fatalf("expected no-op fill to leave surface untouched")
	}
}

func TestClearRectBypassesGlobalAlphaAndComposite(t *testing.T) {
	dc := NewContext(20, 20)
	dc.SetFillColor(RGB(255, 0, 0))
	dc.FillRect(0, 0, 20, 20)

	dc.SetGlobalAlpha(0.2)
	dc.SetGlobalCompositeOperation(CompositeDestinationOver)
	dc.ClearRect(5, 5, 10, 10)

	if got := dc.Surface().GetPixel(8, 8); got != Transparent {
		t.Fatalf("ClearRect should force transparent regardless of state, got %v", got)
	}
	if got := dc.Surface().GetPixel(1, 1); got == Transparent {
		t.Fatalf("ClearRect should only affect the given rectangle")
	}
}

func TestStrokeRoundTripThroughDashedGenericPipeline(t *testing.T) {
	dc := NewContext(100, 100)
	dc.SetStrokeColor(Black)
	dc.SetLineWidth(2)
	dc.SetLineDash(6, 4)
	dc.MoveTo(10, 50)
	dc.LineTo(90, 50)
	dc.Stroke()

	if !dc.UsedGenericPipeline() {
		t.Fatalf("a dashed stroke must always use the generic pipeline")
	}

	var anyPainted bool
	for x := 0; x < 100; x++ {
		if dc.Surface().GetPixel(x, 50) != Transparent {
			anyPainted = true
			break
		}
	}
	if !anyPainted {
		t.Fatalf("expected at least some pixels painted along the dashed line")
	}
}

func TestStrokeThinLineFastPath(t *testing.T) {
	dc := NewContext(20, 20)
	dc.ResetPipelineInstrumentation()
	dc.SetStrokeColor(Black)
	dc.SetLineWidth(1)
	dc.StrokeLine(2, 10, 17, 10)

	if dc.UsedGenericPipeline() {
		t.Fatalf("a thin straight line with butt caps should take the fast path")
	}
	if dc.Surface().GetPixel(10, 10) != Black {
		t.Fatalf("expected the line's fast path to paint its midpoint")
	}
}

func TestIsPointInPathRespectsFillRule(t *testing.T) {
	dc := NewContext(100, 100)
	// Two overlapping squares wound the same direction: nonzero sees the
	// overlap as inside, evenodd sees it as a hole.
	dc.MoveTo(10, 10)
	dc.LineTo(60, 10)
	dc.LineTo(60, 60)
	dc.LineTo(10, 60)
	dc.ClosePath()

	dc.MoveTo(30, 30)
	dc.LineTo(80, 30)
	dc.LineTo(80, 80)
	dc.LineTo(30, 80)
	dc.ClosePath()

	if !dc.IsPointInPath(45, 45, FillRuleNonZero) {
		t.Fatalf("expected overlap region inside under nonzero")
	}
	if dc.IsPointInPath(45, 45, FillRuleEvenOdd) {
		t.Fatalf("expected overlap region outside under evenodd")
	}
}

func TestIsPointInStroke(t *testing.T) {
	dc := NewContext(100, 100)
	dc.SetLineWidth(10)
	dc.MoveTo(20, 50)
	dc.LineTo(80, 50)

	if !dc.IsPointInStroke(50, 50) {
		t.Fatalf("expected center of a thick horizontal stroke to be inside it")
	}
	if dc.IsPointInStroke(50, 90) {
		t.Fatalf("expected a point far from the stroke to be outside it")
	}
}

func TestSaveRestoreRoundTripsStyleAndClip(t *testing.T) {
	dc := NewContext(50, 50)
	dc.SetFillColor(Red)
	dc.Save()
	dc.SetFillColor(Blue)
	dc.BeginPath()
	dc.Rect(0, 0, 25, 50)
	dc.Clip()
	dc.Restore()

	if _, ok := dc.FillPaint().(SolidColor); !ok {
		t.Fatalf("expected fill paint to be a solid color")
	}
	if dc.FillPaint().(SolidColor).Color != Red {
		t.Fatalf("expected Restore to revert fill color to red")
	}

	dc.BeginPath()
	dc.Rect(0, 0, 50, 50)
	dc.Fill()
	if dc.Surface().GetPixel(40, 10) == Transparent {
		t.Fatalf("expected clip to have been discarded by Restore, leaving the right half paintable")
	}
}

func TestDrawImagePartNearestNeighbor(t *testing.T) {
	img := &Image{Width: 2, Height: 1, Pix: []uint8{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}}

	dc := NewContext(4, 1)
	dc.DrawImageScaled(img, 0, 0, 4, 1)

	left := dc.Surface().GetPixel(0, 0)
	right := dc.Surface().GetPixel(3, 0)
	if left != RGB(255, 0, 0) {
		t.Fatalf("expected left half sampled from first source pixel, got %v", left)
	}
	if right != RGB(0, 255, 0) {
		t.Fatalf("expected right half sampled from second source pixel, got %v", right)
	}
}

func TestFillAndStrokeRoundRect(t *testing.T) {
	dc := NewContext(60, 60)
	dc.SetFillColor(RGB(0, 0, 200))
	dc.SetStrokeColor(Black)
	dc.SetLineWidth(2)
	dc.FillAndStrokeRoundRect(5, 5, 40, 30, 8)

	if dc.Surface().GetPixel(25, 20) != RGB(0, 0, 200) {
		t.Fatalf("expected fill color in the interior")
	}
}

func TestRotatedFillRectUsesGenericPipeline(t *testing.T) {
	dc := NewContext(60, 60)
	dc.Translate(30, 30)
	dc.Rotate(math.Pi / 4)
	dc.SetFillColor(Black)
	dc.FillRect(-10, -10, 20, 20)

	if !dc.UsedGenericPipeline() {
		t.Fatalf("a rotated rectangle is not axis-aligned in device space and must not take the rect fast path")
	}
}
