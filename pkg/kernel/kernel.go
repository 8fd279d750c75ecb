// Package kernel defines the abstract geometry kernel interface.
// A kernel turns unbounded distance fields into bounded solids, composes
// them and tessellates them into triangle meshes. The abstraction allows
// swapping meshing backends without changing the rest of the system.
package kernel

import (
	"errors"

	"github.com/chazu/sdfscene/pkg/field"
)

// ErrEmptyBounds is returned when a solid's bounding box has no volume.
var ErrEmptyBounds = errors.New("bounding box is empty")

// Solid is an opaque handle to a bounded distance field.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
	// Evaluate returns the signed distance at p.
	Evaluate(p field.Vec3) float64
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Bound wraps an unbounded field in the box [min, max].
	Bound(f field.Field, min, max [3]float64) Solid

	// Boolean operations. Difference removes a from b, like field.Difference.
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Transforms
	Translate(s Solid, x, y, z float64) Solid
	Rotate(s Solid, x, y, z float64) Solid // Euler angles in degrees
	Scale(s Solid, k float64) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
