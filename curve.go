package spline

import (
	"iter"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
)

// Curve is a mutable ordered sequence of knots describing a piecewise cubic
// Bézier curve. The segment between knots i and i+1 is the cubic with
// control points
//
//	P0 = knot[i].Position
//	P1 = knot[i].Position + knot[i].TangentOut
//	P2 = knot[i+1].Position + knot[i+1].TangentIn
//	P3 = knot[i+1].Position
//
// Evaluation parametrizes the whole curve over [0, 1], spending an equal
// share of the parameter range on every segment.
//
// The zero value is an empty curve ready for use. A Curve is not safe for
// concurrent mutation.
type Curve struct {
	knots []Knot
}

// NewCurve returns a curve holding copies of the given knots.
func NewCurve(knots ...Knot) *Curve {
	return &Curve{knots: slices.Clone(knots)}
}

// Len returns the number of knots.
func (c *Curve) Len() int {
	return len(c.knots)
}

// Knot returns the knot at index i.
func (c *Curve) Knot(i int) Knot {
	return c.knots[i]
}

// SetKnot replaces the knot at index i.
func (c *Curve) SetKnot(i int, k Knot) {
	c.knots[i] = k
}

// Append adds a knot at the end of the curve.
func (c *Curve) Append(k Knot) {
	c.knots = append(c.knots, k)
}

// Insert inserts a knot at index i, shifting later knots up.
func (c *Curve) Insert(i int, k Knot) {
	c.knots = slices.Insert(c.knots, i, k)
}

// RemoveAt removes the knot at index i, shifting later knots down.
func (c *Curve) RemoveAt(i int) {
	c.knots = slices.Delete(c.knots, i, i+1)
}

// Clear removes all knots.
func (c *Curve) Clear() {
	c.knots = c.knots[:0]
}

// SetTangentMode assigns the tangent mode of the knot at index i without
// touching its tangents.
func (c *Curve) SetTangentMode(i int, m TangentMode) {
	c.knots[i].Mode = m
}

// SetTangentModeRange assigns the tangent mode of the knots in [from, to).
func (c *Curve) SetTangentModeRange(from, to int, m TangentMode) {
	for i := from; i < to; i++ {
		c.knots[i].Mode = m
	}
}

// Knots iterates over the knots in order.
func (c *Curve) Knots() iter.Seq2[int, Knot] {
	return func(yield func(int, Knot) bool) {
		for i, k := range c.knots {
			if !yield(i, k) {
				return
			}
		}
	}
}

// replaceKnots swaps in a whole new knot sequence, taking ownership of ks.
func (c *Curve) replaceKnots(ks []Knot) {
	c.knots = ks
}

// Segment returns the cubic Bézier between knots i and i+1.
func (c *Curve) Segment(i int) CubicBez {
	k0, k1 := c.knots[i], c.knots[i+1]
	return CubicBez{
		P0: k0.Position,
		P1: k0.Position.Add(k0.TangentOut),
		P2: k1.Position.Add(k1.TangentIn),
		P3: k1.Position,
	}
}

// Segments iterates over the curve's cubic Bézier segments in order. An
// empty or single-knot curve has no segments.
func (c *Curve) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := 0; i+1 < len(c.knots); i++ {
			if !yield(c.Segment(i)) {
				return
			}
		}
	}
}

// locate maps a curve parameter to a segment index and a parameter local to
// that segment. t is clamped to [0, 1].
func (c *Curve) locate(t float64) (int, float64) {
	segs := len(c.knots) - 1
	if segs < 1 {
		return 0, 0
	}
	u := math.Min(math.Max(t, 0), 1) * float64(segs)
	i := min(int(u), segs-1)
	return i, u - float64(i)
}

// Eval evaluates the curve's position at parameter t ∈ [0, 1]. An empty
// curve evaluates to the origin, a single-knot curve to that knot's
// position.
func (c *Curve) Eval(t float64) mgl64.Vec3 {
	switch len(c.knots) {
	case 0:
		return mgl64.Vec3{}
	case 1:
		return c.knots[0].Position
	}
	i, u := c.locate(t)
	return c.Segment(i).Eval(u)
}

// Tangent evaluates the curve's (unnormalized) tangent at parameter t.
func (c *Curve) Tangent(t float64) mgl64.Vec3 {
	if len(c.knots) < 2 {
		return mgl64.Vec3{}
	}
	i, u := c.locate(t)
	return c.Segment(i).Differentiate().Eval(u)
}

// Arclen returns the approximate arc length of the whole curve.
func (c *Curve) Arclen(accuracy float64) float64 {
	var sum float64
	for seg := range c.Segments() {
		sum += seg.Arclen(accuracy)
	}
	return sum
}
