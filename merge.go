package spline

import (
	"github.com/go-gl/mathgl/mgl64"
)

// MergeKnots collapses two adjacent knots into their replacement: the
// position is the midpoint of the two, the in tangent is kept from the
// earlier knot so the incoming curvature survives the merge, and the out
// tangent and tangent mode come from the later knot.
func MergeKnots(a, b Knot) Knot {
	return Knot{
		Position:   midpoint(a.Position, b.Position),
		TangentIn:  a.TangentIn,
		TangentOut: b.TangentOut,
		Rotation:   b.Rotation,
		Mode:       b.Mode,
	}
}

// appendKnot appends k to the curve, collapsing it with the trailing knot
// when the two are within mergeDistance of each other in world space.
// toWorld converts a curve-local position to world space via the target
// node's transform.
//
// Adjacent source curves are frequently authored with coincident or
// near-coincident endpoints; merging avoids visually duplicate zero-length
// segments. A mergeDistance of 0 (or less) disables merging. Merging only
// engages once the curve holds at least two knots, so a curve's own start
// knot is never consumed.
func appendKnot(c *Curve, k Knot, toWorld func(mgl64.Vec3) mgl64.Vec3, mergeDistance float64) {
	if mergeDistance > 0 && c.Len() >= 2 {
		last := c.Knot(c.Len() - 1)
		if toWorld(last.Position).Sub(toWorld(k.Position)).Len() < mergeDistance {
			c.RemoveAt(c.Len() - 1)
			c.Append(MergeKnots(last, k))
			return
		}
	}
	c.Append(k)
}
