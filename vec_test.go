package spline

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestProjectOnPlane(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)
	diff(t, mgl64.Vec3{1, 0, 3}, projectOnPlane(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 1, 0}), approx)
	// An unnormalized normal gives the same projection.
	diff(t, mgl64.Vec3{1, 0, 3}, projectOnPlane(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 7, 0}), approx)
	// A zero normal is a no-op.
	diff(t, mgl64.Vec3{1, 2, 3}, projectOnPlane(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{}))
	// A vector parallel to the normal projects to zero.
	diff(t, mgl64.Vec3{0, 0, 0}, projectOnPlane(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, 1, 0}), approx)
}

func TestLookRotation(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-12)

	q := LookRotation(mgl64.Vec3{1, 0, 0}, Up)
	diff(t, mgl64.Vec3{1, 0, 0}, q.Rotate(Forward), approx)
	diff(t, Up, q.Rotate(Up), approx)

	// Looking along Forward is the identity rotation.
	q = LookRotation(Forward, Up)
	diff(t, Forward, q.Rotate(Forward), approx)
	diff(t, Up, q.Rotate(Up), approx)

	// The direction need not be normalized.
	q = LookRotation(mgl64.Vec3{0, 0, 17}, Up)
	diff(t, Forward, q.Rotate(Forward), approx)

	// A diagonal direction still honors the up hint: the rotated up axis
	// stays in the plane spanned by the direction and Up.
	dir := mgl64.Vec3{1, 1, 1}
	q = LookRotation(dir, Up)
	diff(t, dir.Normalize(), q.Rotate(Forward), approx)
	up := q.Rotate(Up)
	if d := up.Dot(dir.Normalize()); math.Abs(d) > 1e-9 {
		t.Errorf("rotated up axis is not perpendicular to the look direction, dot = %g", d)
	}
	if up.Dot(Up) <= 0 {
		t.Errorf("rotated up axis %v points away from the up hint", up)
	}

	// A zero direction degrades to the identity.
	diff(t, mgl64.QuatIdent(), LookRotation(mgl64.Vec3{}, Up))
}

func TestQuatAngle(t *testing.T) {
	id := mgl64.QuatIdent()
	q := mgl64.QuatRotate(math.Pi/2, Up)
	if got := quatAngle(id, q); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %g, want %g", got, math.Pi/2)
	}
	if got := quatAngle(q, q); got > 1e-9 {
		t.Errorf("got angle %g between a rotation and itself", got)
	}
	// q and -q describe the same rotation.
	neg := mgl64.Quat{W: -q.W, V: q.V.Mul(-1)}
	if got := quatAngle(q, neg); got > 1e-9 {
		t.Errorf("got angle %g between q and -q", got)
	}
}

func TestRotateTowards(t *testing.T) {
	from := mgl64.QuatIdent()
	to := mgl64.QuatRotate(math.Pi/2, Up)

	// A large enough budget lands exactly on the goal.
	got := RotateTowards(from, to, 180)
	if a := quatAngle(got, to); a > 1e-12 {
		t.Errorf("got %g radians away from the goal, want 0", a)
	}

	// A smaller budget steps by exactly the budget.
	got = RotateTowards(from, to, 30)
	if a := quatAngle(from, got); math.Abs(a-mgl64.DegToRad(30)) > 1e-9 {
		t.Errorf("stepped %g radians, want %g", a, mgl64.DegToRad(30))
	}
	// The step stays on the arc toward the goal.
	if a := quatAngle(got, to); math.Abs(a-mgl64.DegToRad(60)) > 1e-9 {
		t.Errorf("remaining angle is %g radians, want %g", a, mgl64.DegToRad(60))
	}

	// A non-positive budget is a no-op.
	diff(t, from, RotateTowards(from, to, 0))
	diff(t, from, RotateTowards(from, to, -5))
}
