package geometry

import "testing"

func TestLpIntoPx(t *testing.T) {
	tests := []struct {
		name  string
		value Lp
		scale float32
		want  Px
	}{
		{"unit scale", Lpx(300), 1, 300},
		{"double scale", Lpx(150), 2, 300},
		{"fractional scale", Lpx(100), 1.5, 150},
		{"fractional value", Lpf(10.5), 2, 21},
		{"scale 1.1", Lpx(300), 1.1, 330},
		{"scale 1.15", Lpx(300), 1.15, 345},
		{"scale 2.2", Lpx(300), 2.2, 660},
		{"zero scale treated as one", Lpx(42), 0, 42},
		{"negative", Lpx(-4), 1, -4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.IntoPx(tt.scale); got != tt.want {
				t.Errorf("IntoPx(%v) = %d, want %d", tt.scale, got, tt.want)
			}
		})
	}
	if got := Lpx(-4).IntoUPx(1); got != 0 {
		t.Errorf("IntoUPx of negative = %d, want 0", got)
	}
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := RectXYWH(10, 10, 20, 5)
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 10), true},
		{Pt(29, 14), true},
		{Pt(30, 10), false},
		{Pt(10, 15), false},
		{Pt(9, 12), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectXYWH(0, 0, 100, 100)
	b := RectXYWH(50, 60, 100, 100)
	got := a.Intersect(b)
	want := RectXYWH(50, 60, 50, 40)
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
	if !a.Intersect(RectXYWH(200, 200, 5, 5)).Size.IsZero() {
		t.Error("disjoint rects should intersect to an empty rect")
	}
}

func TestConstraintLimitFitMeasured(t *testing.T) {
	if got := Known(200).FitMeasured(50); got != 200 {
		t.Errorf("Known.FitMeasured = %d, want 200", got)
	}
	if got := ClippedAfter(200).FitMeasured(50); got != 50 {
		t.Errorf("ClippedAfter.FitMeasured(50) = %d, want 50", got)
	}
	if got := ClippedAfter(200).FitMeasured(500); got != 200 {
		t.Errorf("ClippedAfter.FitMeasured(500) = %d, want 200", got)
	}
	if got := ClippedAfter(10).Shrink(20).Max(); got != 0 {
		t.Errorf("Shrink past zero = %d, want 0", got)
	}
}

func TestDimensionRangeClamp(t *testing.T) {
	r := Between(Lpx(10), Lpx(20))
	if got := r.Clamp(5, 1); got != 10 {
		t.Errorf("Clamp(5) = %d, want 10", got)
	}
	if got := r.Clamp(25, 1); got != 20 {
		t.Errorf("Clamp(25) = %d, want 20", got)
	}
	if got := r.Clamp(25, 2); got != 25 {
		t.Errorf("Clamp(25) at scale 2 = %d, want 25", got)
	}
	if got := Unbounded().Clamp(12345, 1); got != 12345 {
		t.Errorf("Unbounded clamp = %d", got)
	}
	if _, ok := AtLeast(Lpx(3)).Maximum(); ok {
		t.Error("AtLeast should not report a maximum")
	}
}
