package stroke

import "testing"

func TestSplitDashAlternatesRuns(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}}
	dash := DashPattern{Array: []float64{2, 2}, Offset: 0}

	runs := SplitDash(points, false, dash)
	if len(runs) != 3 {
		t.Fatalf("expected 3 'on' runs across a 10-unit line with a 2-2 dash, got %d", len(runs))
	}
	for i, run := range runs {
		if len(run) < 2 {
			t.Errorf("run %d has fewer than 2 points: %v", i, run)
		}
	}
}

func TestSplitDashNoPatternReturnsNil(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}}
	if runs := SplitDash(points, false, DashPattern{}); runs != nil {
		t.Fatalf("expected nil for an empty dash array, got %v", runs)
	}
}

func TestSplitDashTooFewPointsReturnsNil(t *testing.T) {
	dash := DashPattern{Array: []float64{2, 2}}
	if runs := SplitDash([]Point{{0, 0}}, false, dash); runs != nil {
		t.Fatalf("expected nil for a single-point polyline, got %v", runs)
	}
}

func TestSplitDashClosedRingWalksImplicitSegment(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	dash := DashPattern{Array: []float64{5, 5}, Offset: 0}

	open := SplitDash(points, false, dash)
	closed := SplitDash(points, true, dash)

	openLen := 0
	for _, r := range open {
		openLen += len(r)
	}
	closedLen := 0
	for _, r := range closed {
		closedLen += len(r)
	}
	if closedLen <= openLen {
		t.Fatalf("expected closing the ring to walk an extra implicit segment, open=%d closed=%d", openLen, closedLen)
	}
}

func TestSplitDashOffsetShiftsStartingPhase(t *testing.T) {
	points := []Point{{0, 0}, {20, 0}}

	noOffset := SplitDash(points, false, DashPattern{Array: []float64{4, 4}, Offset: 0})
	withOffset := SplitDash(points, false, DashPattern{Array: []float64{4, 4}, Offset: 4})

	if len(noOffset) == 0 || len(withOffset) == 0 {
		t.Fatalf("expected both offsets to produce runs")
	}
	if noOffset[0][0] == withOffset[0][0] {
		t.Errorf("expected a shifted offset to change where the first run begins")
	}
}

func TestSplitDashAllOnPatternProducesSingleRun(t *testing.T) {
	points := []Point{{0, 0}, {10, 0}}
	dash := DashPattern{Array: []float64{100, 0}, Offset: 0}

	runs := SplitDash(points, false, dash)
	if len(runs) != 1 {
		t.Fatalf("expected a single run spanning the whole line, got %d", len(runs))
	}
}
