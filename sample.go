package spline

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SamplePositions evaluates the curve at subdivisions uniformly spaced
// parameter values over the half-open range [0, 1): t = 0/n, 1/n, ...,
// (n-1)/n. The end of the curve is deliberately excluded so that sampling
// a closed sequence of curves does not duplicate the seam point.
func SamplePositions(c *Curve, subdivisions int) []mgl64.Vec3 {
	if subdivisions <= 0 {
		return nil
	}
	out := make([]mgl64.Vec3, subdivisions)
	for i := range out {
		out[i] = c.Eval(float64(i) / float64(subdivisions))
	}
	return out
}

// NearestPoint finds the point on the curve closest to query, along with
// its curve parameter. The parameter domain is scanned at resolution+1
// evenly spaced values to bracket the closest approach, then the winning
// bracket is rescanned iterations more times at the same resolution.
// Larger values trade computation for accuracy; the result is
// deterministic for fixed inputs, and the returned distance never gets
// worse as iterations grows.
func NearestPoint(c *Curve, query mgl64.Vec3, resolution, iterations int) (mgl64.Vec3, float64) {
	if resolution < 1 {
		resolution = 1
	}
	bestT := 0.0
	bestPos := c.Eval(0)
	bestDist := bestPos.Sub(query).Dot(bestPos.Sub(query))

	lo, hi := 0.0, 1.0
	for it := 0; it <= iterations; it++ {
		step := (hi - lo) / float64(resolution)
		if step <= 0 {
			break
		}
		for i := 0; i <= resolution; i++ {
			t := lo + float64(i)*step
			p := c.Eval(t)
			d := p.Sub(query).Dot(p.Sub(query))
			if d < bestDist {
				bestDist, bestT, bestPos = d, t, p
			}
		}
		lo = max(bestT-step, 0)
		hi = min(bestT+step, 1)
	}
	return bestPos, bestT
}

// RotationTowardTangent steps current toward the look rotation implied by
// the curve's tangent at t, by at most maxDegreesDelta degrees. The step
// is spherical with a constant angular-speed clamp and never overshoots.
// A degenerate tangent leaves current unchanged.
func RotationTowardTangent(current mgl64.Quat, c *Curve, t, maxDegreesDelta float64) mgl64.Quat {
	tangent := c.Tangent(t)
	if nearZero(tangent) {
		return current
	}
	return RotateTowards(current, LookRotation(tangent, Up), maxDegreesDelta)
}
