package canvas

import (
	"math"
	"testing"
)

func TestSetLineWidthIgnoresInvalid(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineWidth(5)
	dc.SetLineWidth(-1)
	dc.SetLineWidth(0)
	dc.SetLineWidth(math.NaN())
	if dc.LineWidth() != 5 {
		t.Fatalf("expected invalid line widths to be ignored, got %v", dc.LineWidth())
	}
}

func TestSetGlobalAlphaClamps(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetGlobalAlpha(-1)
	if dc.GlobalAlpha() != 0 {
		t.Errorf("expected negative alpha to clamp to 0, got %v", dc.GlobalAlpha())
	}
	dc.SetGlobalAlpha(5)
	if dc.GlobalAlpha() != 1 {
		t.Errorf("expected alpha > 1 to clamp to 1, got %v", dc.GlobalAlpha())
	}
	dc.SetGlobalAlpha(math.NaN())
	if dc.GlobalAlpha() != 1 {
		t.Errorf("expected NaN alpha to be ignored, got %v", dc.GlobalAlpha())
	}
}

func TestLineDashRoundTrip(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineDash(4, 2)
	got := dc.LineDash()
	if len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Fatalf("expected dash [4,2], got %v", got)
	}
}

func TestLineDashReturnsCopyNotAlias(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineDash(4, 2)
	got := dc.LineDash()
	got[0] = 999
	if dc.LineDash()[0] == 999 {
		t.Fatalf("expected LineDash to return a defensive copy")
	}
}

func TestSetLineDashInvalidIsIgnored(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineDash(4, 2)
	dc.SetLineDash(-1, 3)
	if got := dc.LineDash(); len(got) != 2 || got[0] != 4 {
		t.Fatalf("expected an invalid SetLineDash call to leave the prior pattern, got %v", got)
	}
}

func TestSetLineDashOffsetWithoutDashIsNoOp(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineDashOffset(5)
	if dc.LineDashOffset() != 0 {
		t.Fatalf("expected dash offset to stay 0 without a dash pattern set, got %v", dc.LineDashOffset())
	}
}

func TestSetLineDashOffsetAppliesWithDash(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetLineDash(4, 2)
	dc.SetLineDashOffset(3)
	if dc.LineDashOffset() != 3 {
		t.Fatalf("expected dash offset 3, got %v", dc.LineDashOffset())
	}
}

func TestCreateLinearGradientBakesTransform(t *testing.T) {
	dc := NewContext(20, 20)
	dc.Translate(10, 10)
	g := dc.CreateLinearGradient(0, 0, 5, 0)
	if g.Start != (Point{10, 10}) {
		t.Fatalf("expected gradient start baked through the translate, got %v", g.Start)
	}
	if g.End != (Point{15, 10}) {
		t.Fatalf("expected gradient end baked through the translate, got %v", g.End)
	}
}

func TestCreatePatternBakesCurrentTransform(t *testing.T) {
	dc := NewContext(20, 20)
	dc.Scale(2, 2)
	img := &Image{Width: 1, Height: 1, Pix: []uint8{255, 255, 255, 255}}
	p := dc.CreatePattern(img, RepeatNone)
	if p.Transform != dc.state.transform {
		t.Fatalf("expected pattern transform to be baked at creation time")
	}
}

func TestFillPaintAndStrokePaintRoundTrip(t *testing.T) {
	dc := NewContext(10, 10)
	dc.SetFillColor(Red)
	dc.SetStrokeColor(Blue)
	if dc.FillPaint().Sample(0, 0) != Red {
		t.Errorf("expected fill paint to sample red")
	}
	if dc.StrokePaint().Sample(0, 0) != Blue {
		t.Errorf("expected stroke paint to sample blue")
	}
}
