package canvas

import "testing"

func TestNewDashRejectsEmptyAndAllZero(t *testing.T) {
	if NewDash() != nil {
		t.Errorf("expected no arguments to return nil")
	}
	if NewDash(0, 0) != nil {
		t.Errorf("expected all-zero lengths to return nil")
	}
}

func TestNewDashRejectsNegativeLengths(t *testing.T) {
	if NewDash(5, -3) != nil {
		t.Fatalf("expected a negative length to invalidate the whole pattern")
	}
}

func TestNewDashKeepsValidLengths(t *testing.T) {
	d := NewDash(5, 3)
	if d == nil {
		t.Fatalf("expected a valid pattern to return non-nil")
	}
	if len(d.Array) != 2 || d.Array[0] != 5 || d.Array[1] != 3 {
		t.Fatalf("expected array [5,3], got %v", d.Array)
	}
}

func TestPatternLengthDuplicatesOddArrays(t *testing.T) {
	d := NewDash(5)
	if got := d.PatternLength(); got != 10 {
		t.Fatalf("expected odd-length [5] to duplicate to total 10, got %v", got)
	}
	d2 := NewDash(5, 3)
	if got := d2.PatternLength(); got != 8 {
		t.Fatalf("expected [5,3] total 8, got %v", got)
	}
}

func TestEffectiveArrayDuplicatesOddLength(t *testing.T) {
	d := NewDash(5)
	got := d.effectiveArray()
	want := []float64{5, 5}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected effectiveArray [5,5], got %v", got)
	}
}

func TestIsDashedFalseForNilOrAllZero(t *testing.T) {
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Errorf("expected nil Dash to not be dashed")
	}
}

func TestNormalizedOffsetWrapsIntoOnePeriod(t *testing.T) {
	d := NewDash(4, 4).WithOffset(10)
	// pattern length 8, offset 10 -> normalized 2
	if got := d.NormalizedOffset(); got != 2 {
		t.Fatalf("expected normalized offset 2, got %v", got)
	}
}

func TestNormalizedOffsetHandlesNegative(t *testing.T) {
	d := NewDash(4, 4).WithOffset(-2)
	if got := d.NormalizedOffset(); got != 6 {
		t.Fatalf("expected negative offset -2 to normalize to 6, got %v", got)
	}
}

func TestScaleMultipliesLengthsAndOffset(t *testing.T) {
	d := NewDash(4, 2).WithOffset(1)
	scaled := d.Scale(3)
	if scaled.Array[0] != 12 || scaled.Array[1] != 6 || scaled.Offset != 3 {
		t.Fatalf("expected scaled array [12,6] offset 3, got %v offset %v", scaled.Array, scaled.Offset)
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	d := NewDash(4, 2)
	clone := d.Clone()
	clone.Array[0] = 999
	if d.Array[0] == 999 {
		t.Fatalf("expected Clone to deep-copy the array")
	}
}
