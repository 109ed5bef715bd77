package spline

import (
	"iter"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and orientation along a curve.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Walker advances a pose along a curve one tick at a time. It holds only
// the per-tick math; the cadence of ticks belongs to an external scheduler
// that calls [Walker.Tick] once per frame, timer expiry, or whatever else
// drives the walk.
//
// A Walker is single-use and not safe for concurrent use. Callers that
// might start overlapping walks on the same object should consult
// [Walker.Animating] and reject or queue the new walk.
type Walker struct {
	curve           *Curve
	steps           int
	maxDegreesDelta float64

	step      int
	pose      Pose
	animating bool
}

// NewWalker prepares a walk along c taking the given number of ticks from
// t=0 to t=1. maxDegreesDelta caps how fast the pose may turn toward the
// curve tangent on each tick. steps must be at least 1.
func NewWalker(c *Curve, steps int, maxDegreesDelta float64) *Walker {
	if steps < 1 {
		steps = 1
	}
	start := Pose{Position: c.Eval(0), Rotation: mgl64.QuatIdent()}
	if tangent := c.Tangent(0); !nearZero(tangent) {
		start.Rotation = LookRotation(tangent, Up)
	}
	return &Walker{
		curve:           c,
		steps:           steps,
		maxDegreesDelta: maxDegreesDelta,
		pose:            start,
		animating:       true,
	}
}

// Animating reports whether the walk still has ticks left.
func (w *Walker) Animating() bool {
	return w.animating
}

// Pose returns the last computed pose. Before the first tick this is the
// start of the curve; after Stop it is wherever the walk left off.
func (w *Walker) Pose() Pose {
	return w.pose
}

// Stop cancels the walk. The walker keeps its last computed pose, further
// ticks are no-ops, and Animating reports false. There is no rollback.
func (w *Walker) Stop() {
	w.animating = false
}

// Tick advances the walk by one step and returns the new pose. It returns
// false once the walk has completed (or was stopped), leaving the pose
// untouched.
//
// Position moves by linear interpolation of the curve parameter; rotation
// steps toward the tangent, clamped by the per-tick angle budget.
func (w *Walker) Tick() (Pose, bool) {
	if !w.animating {
		return w.pose, false
	}
	w.step++
	t := float64(w.step) / float64(w.steps)
	w.pose = Pose{
		Position: w.curve.Eval(t),
		Rotation: RotationTowardTangent(w.pose.Rotation, w.curve, t, w.maxDegreesDelta),
	}
	if w.step >= w.steps {
		w.animating = false
	}
	return w.pose, true
}

// Poses returns an iterator over the walk's remaining ticks, one pose per
// pull. Breaking out of the iteration stops the walk, per [Walker.Stop].
func (w *Walker) Poses() iter.Seq[Pose] {
	return func(yield func(Pose) bool) {
		for {
			pose, ok := w.Tick()
			if !ok {
				return
			}
			if !yield(pose) {
				w.Stop()
				return
			}
		}
	}
}
