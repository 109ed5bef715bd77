// Package spline combines independently authored piecewise Bézier curves
// into a single continuous curve.
//
// The inputs are curves of [Knot] values (position, in/out tangents,
// rotation, tangent mode) owned by [Container] values that sit on scene
// nodes. [Combine] walks the source curves in order, converts every knot
// into the target curve's local space (see [ConvertKnot]), smooths the
// tangents where one source curve ends and the next begins (see
// [AutoSmoothTangent]), and optionally collapses near-duplicate endpoint
// knots (see [MergeKnots]). The result preserves the sources' visual shape
// while reading as one curve.
//
// The combined curve is authored under an inverted copy of the target
// node's scale, so the target can carry a non-identity scale for the whole
// assembly without distorting its proportions.
//
// # Sampling and following
//
// [SamplePositions], [NearestPoint], and [RotationTowardTangent] provide
// the read-side utilities: uniform subdivision sampling over [0, 1),
// nearest-point search by iterative subdivision refinement, and
// tangent-aligned rotation stepping. [Walker] packages the per-tick math
// for moving an object along a curve under an external frame scheduler.
//
// # Concurrency
//
// A combine run is synchronous and runs to completion in one call. The
// target curve is exclusively owned during the run; callers must serialize
// combine runs per target. Source curves are only read.
//
// All vector and quaternion types come from [github.com/go-gl/mathgl/mgl64].
package spline
