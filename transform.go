package spline

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrDegenerateScale is reported when a scale vector has a zero component.
// Dividing by such a scale would silently poison every downstream position
// with inf/NaN, so the run fails fast instead.
var ErrDegenerateScale = errors.New("scale has a zero component")

// checkScale validates that every component of s is usable as a divisor.
func checkScale(s mgl64.Vec3) error {
	for i, c := range s {
		if c == 0 {
			return fmt.Errorf("component %d: %w", i, ErrDegenerateScale)
		}
	}
	return nil
}

// ConvertKnot re-expresses a knot authored in a source curve's local space
// in the target curve's local space, given the source node's world
// transform, the target node's world position, and the scale the target
// node will carry after the combine run.
//
// The target scale is divided out of both the node offset and the source's
// world scale. The combined curve is therefore authored pre-shrunk, and
// regains its intended proportions when the target node's own scale is
// applied on top. This inversion is intentional; the target carries a
// non-identity scale so that the assembled curve can be scaled as a whole
// without re-running the combine.
//
// ConvertKnot assumes targetScale has no zero components; see [checkScale].
func ConvertKnot(k Knot, source NodeTransform, targetPosition, targetScale mgl64.Vec3) Knot {
	rot := source.WorldRotation()
	localPos := divElem(source.WorldPosition().Sub(targetPosition), targetScale)
	effectiveScale := divElem(source.WorldScale(), targetScale)
	return Knot{
		Position:   localPos.Add(mulElem(rot.Rotate(k.Position), effectiveScale)),
		TangentIn:  mulElem(rot.Rotate(k.TangentIn), effectiveScale),
		TangentOut: mulElem(rot.Rotate(k.TangentOut), effectiveScale),
		Rotation:   rot.Mul(k.Rotation),
		Mode:       k.Mode,
	}
}
