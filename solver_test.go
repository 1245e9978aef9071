package lattice

import (
	"math"
	"testing"
)

func TestSolveForArclen_Monotonic(t *testing.T) {
	// Speed varies strongly along the curve, so t and s are far from linear.
	c := NewCubicBez(Pt(0, 0, 0), Pt(0.05, 1, 0), Pt(3, 1, 0), Pt(3, 0, 0))
	total := c.Arclen(DefaultAccuracy)

	prev := -1.0
	for i := 0; i <= 10; i++ {
		s := total * float64(i) / 10
		got := SolveForArclen(c, s, 1e-9)
		if got < prev {
			t.Errorf("SolveForArclen(%g) = %g, not monotonic after %g", s, got, prev)
		}
		if l := arclen(c, 0, got, 1e-10); math.Abs(l-s) > 1e-7 {
			t.Errorf("arclen(0, %g) = %g, want %g", got, l, s)
		}
		prev = got
	}
}

func TestSolveForArclen_ZeroSpeed(t *testing.T) {
	// Cusp at t=0.5, where the derivative vanishes.
	c := NewCubicBez(Pt(0, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0), Pt(1, 0, 0))
	if d := c.Deriv(0.5); !d.IsZero() {
		t.Fatalf("Deriv(0.5) = %v, want zero", d)
	}
	total := c.Arclen(DefaultAccuracy)
	s := total/2 + 0.01

	got := SolveForArclen(c, s, 1e-9)
	if !isFinite(got) || got <= 0.5 || got >= 1 {
		t.Fatalf("SolveForArclen = %g, want in (0.5, 1)", got)
	}
	if l := arclen(c, 0, got, 1e-10); math.Abs(l-s) > 1e-6 {
		t.Errorf("arclen(0, %g) = %g, want %g", got, l, s)
	}
}

func TestSolveForArclen_Degenerate(t *testing.T) {
	p := Pt(3, 3, 3)
	c := NewQuadBez(p, p, p)
	if got := SolveForArclen(c, 0.5, DefaultAccuracy); got != 1 {
		t.Errorf("zero-length curve: t = %g, want 1", got)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, true},
		{-1e300, true},
		{math.NaN(), false},
		{math.Inf(1), false},
		{math.Inf(-1), false},
	}
	for _, tt := range tests {
		if got := isFinite(tt.x); got != tt.want {
			t.Errorf("isFinite(%g) = %v, want %v", tt.x, got, tt.want)
		}
	}
}
