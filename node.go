package spline

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
)

// NodeTransform is the read/write surface this package needs from a scene
// graph node. The combine run reads world-space state through it at call
// time and never retains a reference beyond the run.
type NodeTransform interface {
	WorldPosition() mgl64.Vec3
	WorldRotation() mgl64.Quat
	// WorldScale may be non-uniform.
	WorldScale() mgl64.Vec3
	SetLocalScale(s mgl64.Vec3)
}

// Node is a basic scene graph node with a local TRS transform and
// parent/child links. It satisfies [NodeTransform] and is sufficient for
// hosts that do not bring their own scene graph.
type Node struct {
	Name     string
	Parent   *Node
	Children []*Node

	Position mgl64.Vec3
	Rotation mgl64.Quat
	Scale    mgl64.Vec3

	// Curves is the curve container attached to this node, if any.
	Curves *Container
}

// NewNode returns a node with an identity transform.
func NewNode(name string) *Node {
	return &Node{
		Name:     name,
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// AddChild links child under n. A child's world transform composes with its
// parent chain.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
}

// WorldPosition implements [NodeTransform].
func (n *Node) WorldPosition() mgl64.Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	p := n.Parent
	return p.WorldPosition().Add(p.WorldRotation().Rotate(mulElem(p.WorldScale(), n.Position)))
}

// WorldRotation implements [NodeTransform].
func (n *Node) WorldRotation() mgl64.Quat {
	if n.Parent == nil {
		return n.Rotation
	}
	return n.Parent.WorldRotation().Mul(n.Rotation)
}

// WorldScale implements [NodeTransform].
//
// Scale composes component-wise down the parent chain. This ignores the
// shear that rotated non-uniform scales introduce, which matches how most
// engines report lossy world scale.
func (n *Node) WorldScale() mgl64.Vec3 {
	if n.Parent == nil {
		return n.Scale
	}
	return mulElem(n.Parent.WorldScale(), n.Scale)
}

// SetLocalScale implements [NodeTransform].
func (n *Node) SetLocalScale(s mgl64.Vec3) {
	n.Scale = s
}

// GatherSources collects one reference per curve from the containers of
// parent's direct children, in child order. Children without a container,
// and containers without curves, are skipped with a diagnostic; the gather
// is best-effort while the combine itself is fail-fast.
func GatherSources(parent *Node) []CurveReference {
	var refs []CurveReference
	for _, child := range parent.Children {
		if child.Curves == nil || child.Curves.Len() == 0 {
			Logger().Debug("skipping child without curves",
				slog.String("parent", parent.Name),
				slog.String("child", child.Name))
			continue
		}
		for i := 0; i < child.Curves.Len(); i++ {
			refs = append(refs, child.Curves.Ref(i))
		}
	}
	return refs
}
