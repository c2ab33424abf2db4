package render

import (
	"math"
	"testing"
)

func TestNiceTicks_StayInsideRange(t *testing.T) {
	ticks := niceTicks(-1.0, 3.5, 10)
	if len(ticks) < 5 {
		t.Fatalf("too few ticks: %d", len(ticks))
	}
	for _, tk := range ticks {
		if tk.Value < -1.0-1e-9 || tk.Value > 3.5+1e-9 {
			t.Fatalf("tick %v outside [-1, 3.5]", tk.Value)
		}
	}
	if ticks[0].Value != -1 || ticks[0].Label != "-1" {
		t.Fatalf("first tick = %+v, want -1", ticks[0])
	}
}

func TestFormatTick(t *testing.T) {
	cases := map[float64]string{0: "0", 1.5: "1.5", 2: "2", 0.25: "0.25", 12.5: "12.5", 300: "300", -0.5: "-0.5"}
	for v, want := range cases {
		if got := formatTick(v); got != want {
			t.Errorf("formatTick(%v)=%q want %q", v, got, want)
		}
	}
}

func TestSnapBounds(t *testing.T) {
	lo, hi := snapBounds(2.55, 4.05, 0.5)
	if lo != 2 || hi != 4.5 {
		t.Fatalf("snapBounds(2.55, 4.05) = [%v,%v], want [2,4.5]", lo, hi)
	}
	lo, hi = snapBounds(3, 3, 0.5)
	if !(hi > lo) || lo > 3 || hi < 3 {
		t.Fatalf("degenerate input must widen around the value, got [%v,%v]", lo, hi)
	}
}

func TestNiceTicks_ReachRangeEnds(t *testing.T) {
	cases := []struct{ lo, hi float64 }{{0, 4.8}, {-20, 420}, {-0.6, 5.6}, {0.275, 5.225}}
	for _, c := range cases {
		ticks := niceTicks(c.lo, c.hi, 9)
		first, last := ticks[0], ticks[len(ticks)-1]
		if first.Value != c.lo || last.Value != c.hi {
			t.Fatalf("ticks for [%v,%v] span [%v,%v]", c.lo, c.hi, first.Value, last.Value)
		}
	}
	ticks := niceTicks(0, 4.8, 10)
	if last := ticks[len(ticks)-1]; last.Label != "" || ticks[len(ticks)-2].Label != "4.5" {
		t.Fatalf("off-step end tick must be unlabelled: %+v", ticks[len(ticks)-2:])
	}
}

func TestCategoryTicks_Bounded(t *testing.T) {
	ticks := categoryTicks([]string{"a", "b", "c"}, -0.6, 2.6)
	if len(ticks) != 5 {
		t.Fatalf("expected 3 labels plus 2 bounds, got %d", len(ticks))
	}
	if ticks[0].Value != -0.6 || ticks[0].Label != "" || ticks[4].Value != 2.6 {
		t.Fatalf("bounds missing: %+v", ticks)
	}
	if ticks[1].Label != "a" || ticks[3].Label != "c" || ticks[3].Value != 2 {
		t.Fatalf("categories misplaced: %+v", ticks)
	}
}

func TestClipSegment(t *testing.T) {
	// crosses the bottom edge
	x0, y0, x1, y1, ok := clipSegment(0, 0, 10, -10, 0, 10, -1, 3.5)
	if !ok || x0 != 0 || y0 != 0 || math.Abs(x1-1) > 1e-9 || math.Abs(y1+1) > 1e-9 {
		t.Fatalf("unexpected clip: (%v,%v)-(%v,%v) ok=%v", x0, y0, x1, y1, ok)
	}
	// fully below
	if _, _, _, _, ok := clipSegment(0, -5, 10, -6, 0, 10, -1, 3.5); ok {
		t.Fatalf("segment below the range must be dropped")
	}
	// fully inside stays untouched
	x0, y0, x1, y1, ok = clipSegment(1, 1, 2, 2, 0, 10, -1, 3.5)
	if !ok || x0 != 1 || y0 != 1 || x1 != 2 || y1 != 2 {
		t.Fatalf("inside segment changed")
	}
}

func TestMinMax(t *testing.T) {
	lo, hi, ok := minMax([]float64{3, math.NaN()}, nil, []float64{-2, 7})
	if !ok || lo != -2 || hi != 7 {
		t.Fatalf("minMax = %v %v %v", lo, hi, ok)
	}
	if _, _, ok := minMax(nil); ok {
		t.Fatalf("empty input must report !ok")
	}
}
