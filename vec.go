package spline

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the reference up axis used when deriving rotations from tangents.
var Up = mgl64.Vec3{0, 1, 0}

// Forward is the reference forward axis. A knot with the identity rotation
// faces +z.
var Forward = mgl64.Vec3{0, 0, 1}

// mulElem multiplies two vectors component-wise.
//
// mathgl provides element-wise operations for matrices but not for vectors,
// so we roll our own.
func mulElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// divElem divides a by b component-wise. Callers must ensure b has no zero
// components; any zero produces inf/NaN, which is deliberately not masked.
func divElem(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Add(b).Mul(0.5)
}

const nearZeroTolerance = 1e-12

// nearZero reports whether v has negligible magnitude.
func nearZero(v mgl64.Vec3) bool {
	return v.Dot(v) < nearZeroTolerance
}

// projectOnPlane returns the component of v perpendicular to the plane
// normal n. n need not be normalized.
func projectOnPlane(v, n mgl64.Vec3) mgl64.Vec3 {
	d := n.Dot(n)
	if d < nearZeroTolerance {
		return v
	}
	return v.Sub(n.Mul(v.Dot(n) / d))
}

// LookRotation returns the rotation that orients [Forward] along dir, with
// the rotated [Up] axis as close to up as dir permits. If up is parallel to
// dir (or zero), the roll about dir is unconstrained and an arbitrary but
// deterministic choice is made.
func LookRotation(dir, up mgl64.Vec3) mgl64.Quat {
	if nearZero(dir) {
		return mgl64.QuatIdent()
	}
	f := dir.Normalize()
	q := mgl64.QuatBetweenVectors(Forward, f)
	upWant := projectOnPlane(up, f)
	if nearZero(upWant) {
		return q.Normalize()
	}
	upGot := projectOnPlane(q.Rotate(Up), f)
	if nearZero(upGot) {
		return q.Normalize()
	}
	roll := mgl64.QuatBetweenVectors(upGot.Normalize(), upWant.Normalize())
	return roll.Mul(q).Normalize()
}

// quatAngle returns the angle in radians between two rotations.
func quatAngle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// RotateTowards steps from toward to by at most maxDegreesDelta degrees,
// never overshooting. A non-positive delta returns from unchanged.
func RotateTowards(from, to mgl64.Quat, maxDegreesDelta float64) mgl64.Quat {
	if maxDegreesDelta <= 0 {
		return from
	}
	angle := quatAngle(from, to)
	maxRad := mgl64.DegToRad(maxDegreesDelta)
	if angle <= maxRad {
		return to
	}
	return mgl64.QuatSlerp(from, to, maxRad/angle)
}
