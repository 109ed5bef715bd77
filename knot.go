package spline

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// TangentMode is the policy governing how a knot's in and out tangents
// relate to each other.
type TangentMode int

const (
	// The in and out tangents are fully independent.
	TangentBroken TangentMode = iota + 1
	// The in and out tangents are colinear but may differ in magnitude.
	TangentContinuous
	// The out tangent mirrors the in tangent exactly.
	TangentMirrored
	// Both tangents are derived from the neighbouring knots.
	TangentAutoSmooth
	// The incoming segment is a straight line.
	TangentLinear
)

func (m TangentMode) String() string {
	switch m {
	case TangentBroken:
		return "Broken"
	case TangentContinuous:
		return "Continuous"
	case TangentMirrored:
		return "Mirrored"
	case TangentAutoSmooth:
		return "AutoSmooth"
	case TangentLinear:
		return "Linear"
	default:
		return fmt.Sprintf("TangentMode(%d)", int(m))
	}
}

// Knot is a control point on a piecewise cubic Bézier curve. Tangents are
// offsets relative to Position, expressed in the owning curve's local space.
// TangentIn points against the direction of travel, TangentOut along it.
//
// The tangents are independent only under [TangentBroken]; the other modes
// imply a derived relationship that is enforced by whoever authors the
// curve. Once a knot is committed to a curve, the curve's stored tangents
// are authoritative.
type Knot struct {
	Position   mgl64.Vec3
	TangentIn  mgl64.Vec3
	TangentOut mgl64.Vec3
	Rotation   mgl64.Quat
	Mode       TangentMode
}

func (k Knot) String() string {
	return fmt.Sprintf("Knot(%v in=%v out=%v %s)", k.Position, k.TangentIn, k.TangentOut, k.Mode)
}

// Normal returns the knot's up axis, i.e. its rotation applied to [Up].
func (k Knot) Normal() mgl64.Vec3 {
	return k.Rotation.Rotate(Up)
}
