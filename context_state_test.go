package canvas

import "testing"

func TestNewGraphicsStateDefaults(t *testing.T) {
	dc := NewContext(5, 5)
	if !dc.state.transform.IsIdentity() {
		t.Errorf("expected a fresh context to start with the identity transform")
	}
	if dc.state.fillRule != FillRuleNonZero {
		t.Errorf("expected the default fill rule to be nonzero")
	}
	if dc.state.globalAlpha != 1 {
		t.Errorf("expected the default global alpha to be 1, got %v", dc.state.globalAlpha)
	}
	if dc.state.compositeOp != CompositeSourceOver {
		t.Errorf("expected the default composite operation to be source-over")
	}
}

func TestHasShadowRequiresColorAndNonZeroParameter(t *testing.T) {
	g := newGraphicsState()
	if g.hasShadow() {
		t.Errorf("expected a fresh state (transparent shadow color) to report no shadow")
	}
	g.shadowColor = Black
	if g.hasShadow() {
		t.Errorf("expected an opaque shadow color with zero blur/offset to still report no shadow")
	}
	g.shadowBlur = 2
	if !g.hasShadow() {
		t.Errorf("expected an opaque color plus nonzero blur to report a shadow")
	}
}

func TestSaveRestorePreservesAndRollsBackState(t *testing.T) {
	dc := NewContext(5, 5)
	dc.SetFillColor(Red)
	dc.Save()
	dc.SetFillColor(Blue)
	if dc.FillPaint().Sample(0, 0) != Blue {
		t.Fatalf("expected the fill color change to apply before Restore")
	}
	dc.Restore()
	if dc.FillPaint().Sample(0, 0) != Red {
		t.Fatalf("expected Restore to roll back to the saved fill color")
	}
}

func TestRestoreOnEmptyStackIsNoOp(t *testing.T) {
	dc := NewContext(5, 5)
	dc.SetFillColor(Green)
	dc.Restore()
	if dc.FillPaint().Sample(0, 0) != Green {
		t.Fatalf("expected Restore with an empty stack to be a no-op")
	}
}

func TestNestedSaveRestoreUnwindsInOrder(t *testing.T) {
	dc := NewContext(5, 5)
	dc.SetFillColor(Red)
	dc.Save()
	dc.SetFillColor(Green)
	dc.Save()
	dc.SetFillColor(Blue)

	dc.Restore()
	if dc.FillPaint().Sample(0, 0) != Green {
		t.Fatalf("expected the first Restore to unwind to Green")
	}
	dc.Restore()
	if dc.FillPaint().Sample(0, 0) != Red {
		t.Fatalf("expected the second Restore to unwind to Red")
	}
}
