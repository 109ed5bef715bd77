package spline

import (
	"errors"
	"fmt"
)

// ErrInvalidContainer is reported when a curve reference has no container,
// or when the container is not attached to a scene node.
var ErrInvalidContainer = errors.New("invalid curve container")

// ErrIndexOutOfRange is reported when a curve reference's index does not
// name a curve in its container.
var ErrIndexOutOfRange = errors.New("curve index out of range")

// Container owns an ordered list of curves, typically attached to a scene
// node. The Node is what places the container's curves in the world; a
// container without a node cannot take part in a combine run.
type Container struct {
	Node   NodeTransform
	curves []*Curve
}

// NewContainer returns an empty container attached to node. node may be nil
// for containers that only ever hold scratch data.
func NewContainer(node NodeTransform) *Container {
	return &Container{Node: node}
}

// AddCurve appends a new empty curve and returns it.
func (ct *Container) AddCurve() *Curve {
	c := &Curve{}
	ct.curves = append(ct.curves, c)
	return c
}

// Len returns the number of curves.
func (ct *Container) Len() int {
	return len(ct.curves)
}

// Curve returns the curve at index i, or nil if i is out of range.
func (ct *Container) Curve(i int) *Curve {
	if i < 0 || i >= len(ct.curves) {
		return nil
	}
	return ct.curves[i]
}

// Ref returns a reference to the curve at index i. The reference is not
// validated; use [CurveReference.Resolve].
func (ct *Container) Ref(i int) CurveReference {
	return CurveReference{Container: ct, Index: i}
}

// CurveReference locates a curve by container and index. It never owns the
// curve and is only as valid as the container it points at: containers may
// be reassigned between runs, so references must be re-resolved before each
// use.
type CurveReference struct {
	Container *Container
	Index     int
}

// Resolve looks the curve up in its container. It fails with
// [ErrInvalidContainer] or [ErrIndexOutOfRange] when the reference is
// dangling.
func (r CurveReference) Resolve() (*Curve, error) {
	if r.Container == nil {
		return nil, ErrInvalidContainer
	}
	c := r.Container.Curve(r.Index)
	if c == nil {
		return nil, fmt.Errorf("index %d in container of %d curves: %w",
			r.Index, r.Container.Len(), ErrIndexOutOfRange)
	}
	return c, nil
}

// resolveWithNode resolves the curve and additionally requires the
// container to be attached to a scene node.
func (r CurveReference) resolveWithNode() (*Curve, NodeTransform, error) {
	c, err := r.Resolve()
	if err != nil {
		return nil, nil, err
	}
	if r.Container.Node == nil {
		return nil, nil, fmt.Errorf("container has no scene node: %w", ErrInvalidContainer)
	}
	return c, r.Container.Node, nil
}
