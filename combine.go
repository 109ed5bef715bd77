package spline

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrEmptySource is reported when a combine run is given no source curves.
var ErrEmptySource = errors.New("no source curves")

// commitHook is called after a combine run commits its result, with the
// target curve. Interactive hosts use it to mark the container dirty.
var commitHook atomic.Pointer[func(*Curve)]

// SetCommitHook registers fn to run after every successful combine, with
// the committed target curve. It replaces any previous hook; pass nil to
// remove it. The hook is never called for failed runs.
func SetCommitHook(fn func(*Curve)) {
	if fn == nil {
		commitHook.Store(nil)
		return
	}
	commitHook.Store(&fn)
}

// Combine rebuilds the target curve from the source curves, in the order
// given. Every knot of every source is converted into the target's local
// space under the requested scale, junctions between consecutive sources
// are smoothed with the given tension, and knots that land within
// mergeDistance of their predecessor (in world space) collapse into one.
// On success the target node's local scale is set to scale and the target
// curve's previous contents are replaced.
//
// Source order is significant: it decides which curve ends are smoothed
// together, and it is never reordered.
//
// Source curves and nodes are read, never mutated. The result is staged in
// a scratch curve and committed in one replace at the end, so a failed run
// leaves the target untouched and downstream readers never observe a
// partially combined curve.
//
// A mergeDistance of 0 disables merging. A tension of [DefaultTension]
// gives Catmull-Rom-like junctions.
func Combine(target CurveReference, sources []CurveReference, scale mgl64.Vec3, mergeDistance, tension float64) error {
	if len(sources) == 0 {
		return fmt.Errorf("combine: %w", ErrEmptySource)
	}
	if err := checkScale(scale); err != nil {
		return fmt.Errorf("combine: target scale %v: %w", scale, err)
	}
	targetCurve, targetNode, err := target.resolveWithNode()
	if err != nil {
		return fmt.Errorf("combine: target: %w", err)
	}

	type source struct {
		curve *Curve
		node  NodeTransform
	}
	resolved := make([]source, len(sources))
	for i, ref := range sources {
		c, node, err := ref.resolveWithNode()
		if err != nil {
			return fmt.Errorf("combine: source %d: %w", i, err)
		}
		resolved[i] = source{c, node}
	}

	targetPos := targetNode.WorldPosition()
	targetRot := targetNode.WorldRotation()
	toWorld := func(p mgl64.Vec3) mgl64.Vec3 {
		return targetPos.Add(targetRot.Rotate(mulElem(p, scale)))
	}

	scratch := &Curve{}
	for i, src := range resolved {
		for j, knot := range src.curve.Knots() {
			k := ConvertKnot(knot, src.node, targetPos, scale)
			if i > 0 && j == 0 && scratch.Len() > 0 {
				smoothJunction(scratch, &k, tension)
			}
			appendKnot(scratch, k, toWorld, mergeDistance)
		}
	}

	targetNode.SetLocalScale(scale)
	targetCurve.replaceKnots(scratch.knots)
	Logger().Debug("combined curves",
		slog.Int("sources", len(sources)),
		slog.Int("knots", targetCurve.Len()))
	if fn := commitHook.Load(); fn != nil {
		(*fn)(targetCurve)
	}
	return nil
}

// CombineChildren gathers source curves from the direct children of parent
// (see [GatherSources]) and combines them into target. Children without
// curves are skipped; an empty gather fails with [ErrEmptySource].
func CombineChildren(target CurveReference, parent *Node, scale mgl64.Vec3, mergeDistance, tension float64) error {
	return Combine(target, GatherSources(parent), scale, mergeDistance, tension)
}
