package spline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubicBezDeriv(t *testing.T) {
	c := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1.0 / 3.0, 0, 0},
		mgl64.Vec3{2.0 / 3.0, 1.0 / 3.0, 0.5},
		mgl64.Vec3{1, 1, 1},
	}
	deriv := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := deriv.Eval(ts)
		if l := d.Sub(dApprox).Len(); l >= delta*4 {
			t.Errorf("at t=%g got difference of %g, want at most %g", ts, l, delta*4)
		}
	}
}

func TestCubicBezSubdivide(t *testing.T) {
	c := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 2, 0},
		mgl64.Vec3{3, 2, 1},
		mgl64.Vec3{4, 0, 2},
	}
	left, right := c.Subdivide()
	diff(t, c.Eval(0), left.Start())
	diff(t, c.Eval(1), right.End())
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, c.Eval(ts/2), left.Eval(ts), cmpopts.EquateApprox(0, 1e-12))
		diff(t, c.Eval(0.5+ts/2), right.Eval(ts), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 2, 0},
		mgl64.Vec3{3, 2, 1},
		mgl64.Vec3{4, 0, 2},
	}
	sub := c.Subsegment(0.25, 0.75)
	for i := range 11 {
		ts := float64(i) / 10
		diff(t, c.Eval(0.25+ts*0.5), sub.Eval(ts), cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestCubicBezArclen(t *testing.T) {
	// A straight segment with uniformly spaced control points has an exact
	// arc length.
	line := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 1, 0},
		mgl64.Vec3{2, 2, 0},
		mgl64.Vec3{3, 3, 0},
	}
	want := math.Sqrt(18)
	if got := line.Arclen(1e-9); math.Abs(got-want) > 1e-6 {
		t.Errorf("straight arclen = %g, want %g", got, want)
	}

	// An arbitrary curve's arc length must agree with dense polyline
	// flattening.
	c := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{0, 4, 0},
		mgl64.Vec3{4, 4, 2},
		mgl64.Vec3{4, 0, 2},
	}
	var approx float64
	const n = 20000
	prev := c.Eval(0)
	for i := 1; i <= n; i++ {
		p := c.Eval(float64(i) / n)
		approx += p.Sub(prev).Len()
		prev = p
	}
	if got := c.Arclen(1e-9); math.Abs(got-approx) > 1e-4 {
		t.Errorf("arclen = %g, polyline approximation = %g", got, approx)
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{
		mgl64.Vec3{0, 0, 0},
		mgl64.Vec3{1, 0, 0},
		mgl64.Vec3{2, 1, 0},
		mgl64.Vec3{3, 1, 0},
	}
	d0, d1 := c.Tangents()
	diff(t, mgl64.Vec3{1, 0, 0}, d0)
	diff(t, mgl64.Vec3{1, 0, 0}, d1)

	// Degenerate leading control point falls back to the next one.
	c.P1 = c.P0
	d0, _ = c.Tangents()
	diff(t, mgl64.Vec3{2, 1, 0}, d0)
}
