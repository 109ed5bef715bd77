package spline

import (
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultTension is the tension used for junction smoothing when callers
// have no opinion. It is the standard cardinal-spline constant that makes
// the derived tangents equivalent to a Catmull-Rom spline.
const DefaultTension = 0.5

// AutoSmoothTangent derives the tangent at current that makes the curve
// flow smoothly from previous toward next, in the cardinal-spline manner:
// the tangent follows the chord between the two neighbours, scaled by
// tension.
//
// If the neighbours coincide (a collapsed chord), the missing neighbour is
// treated as coincident with current and the chord degrades to
// next−current. When normal is non-zero the chord is kept in the plane
// perpendicular to it, so the derived tangent stays consistent with the
// knot's frame; a chord parallel to the normal is left untouched.
func AutoSmoothTangent(previous, current, next, normal mgl64.Vec3, tension float64) mgl64.Vec3 {
	chord := next.Sub(previous)
	if nearZero(chord) {
		chord = next.Sub(current)
	}
	if nearZero(chord) {
		return mgl64.Vec3{}
	}
	if planar := projectOnPlane(chord, normal); !nearZero(planar) {
		chord = planar
	}
	return chord.Mul(tension)
}

// smoothJunction rewrites the tangents on either side of the boundary
// between two source curves so the junction reads as one smooth curve: the
// outgoing tangent of the last committed knot and the incoming tangent of
// the candidate are both re-derived from the junction's neighbourhood, and
// both knots drop to [TangentBroken] so the curve does not re-derive them.
//
// c must hold at least one knot; candidate is the first knot of the next
// source curve, already converted into target space. When the previous
// curve contributed only a single knot there is no knot before the junction
// to take a direction from; [AutoSmoothTangent]'s collapsed-chord fallback
// covers that case.
func smoothJunction(c *Curve, candidate *Knot, tension float64) {
	n := c.Len()
	prev := c.Knot(n - 1)
	prevPrev := prev
	if n >= 2 {
		prevPrev = c.Knot(n - 2)
	}
	junction := prev.Position.Add(candidate.Position)

	prev.TangentOut = AutoSmoothTangent(prev.Position, prevPrev.Position, junction, prev.Normal(), tension)
	prev.Mode = TangentBroken
	c.SetKnot(n-1, prev)

	candidate.TangentIn = AutoSmoothTangent(junction, prevPrev.Position, prev.Position, candidate.Normal(), tension)
	candidate.Mode = TangentBroken
}
