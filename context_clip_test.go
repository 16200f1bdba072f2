package canvas

import "testing"

func TestClipRestrictsFill(t *testing.T) {
	dc := NewContext(20, 20)
	dc.BeginPath()
	dc.Rect(0, 0, 10, 20)
	dc.Clip()

	dc.SetFillColor(White)
	dc.FillRect(0, 0, 20, 20)

	if dc.Surface().GetPixel(2, 2) == Transparent {
		t.Fatalf("expected pixels inside the clip rect to be painted")
	}
	if dc.Surface().GetPixel(15, 2) != Transparent {
		t.Fatalf("expected pixels outside the clip rect to stay untouched")
	}
}

func TestClipIntersectsWithExistingClip(t *testing.T) {
	dc := NewContext(20, 20)
	dc.ClipRect(0, 0, 15, 15)
	dc.ClipRect(5, 5, 15, 15)

	dc.SetFillColor(White)
	dc.FillRect(0, 0, 20, 20)

	if dc.Surface().GetPixel(10, 10) == Transparent {
		t.Fatalf("expected the overlap of both clip rects to be painted")
	}
	if dc.Surface().GetPixel(2, 2) != Transparent {
		t.Fatalf("expected a region outside the second clip to stay untouched")
	}
	if dc.Surface().GetPixel(18, 18) != Transparent {
		t.Fatalf("expected a region outside the first clip to stay untouched")
	}
}

func TestResetClipRemovesRestriction(t *testing.T) {
	dc := NewContext(10, 10)
	dc.ClipRect(0, 0, 3, 3)
	dc.ResetClip()

	dc.SetFillColor(White)
	dc.FillRect(0, 0, 10, 10)

	if dc.Surface().GetPixel(8, 8) == Transparent {
		t.Fatalf("expected ResetClip to remove the clip restriction")
	}
}

func TestClipDoesNotLeakAcrossSaveRestore(t *testing.T) {
	dc := NewContext(10, 10)
	dc.Save()
	dc.ClipRect(0, 0, 3, 3)
	dc.Restore()

	dc.SetFillColor(White)
	dc.FillRect(0, 0, 10, 10)

	if dc.Surface().GetPixel(8, 8) == Transparent {
		t.Fatalf("expected a clip set after Save to be discarded by Restore")
	}
}
