package sdfx

import (
	"errors"
	"math"
	"testing"

	"github.com/chazu/sdfscene/pkg/field"
	"github.com/chazu/sdfscene/pkg/kernel"
)

const testCells = 32

func unitBox(half float64) (min, max [3]float64) {
	return [3]float64{-half, -half, -half}, [3]float64{half, half, half}
}

func boundedSphere(k *SdfxKernel, radius float64) kernel.Solid {
	min, max := unitBox(radius * 1.2)
	return k.Bound(field.SphereField(radius), min, max)
}

func TestSphereMesh(t *testing.T) {
	k := NewWithCells(testCells)
	mesh, err := k.ToMesh(boundedSphere(k, 1))
	if err != nil {
		t.Fatalf("ToMesh failed: %v", err)
	}
	if mesh.IsEmpty() {
		t.Fatal("mesh is empty")
	}
	if len(mesh.Vertices) != len(mesh.Normals) {
		t.Fatalf("vertices length %d != normals length %d", len(mesh.Vertices), len(mesh.Normals))
	}
	if len(mesh.Indices) != mesh.TriangleCount()*3 {
		t.Fatalf("indices length %d != triCount*3 %d", len(mesh.Indices), mesh.TriangleCount()*3)
	}

	// Marching cubes places vertices on the zero crossing.
	const tol = 0.05
	for i := 0; i < mesh.VertexCount(); i++ {
		v := field.Vec3{
			X: float64(mesh.Vertices[i*3]),
			Y: float64(mesh.Vertices[i*3+1]),
			Z: float64(mesh.Vertices[i*3+2]),
		}
		if d := math.Abs(v.Length() - 1); d > tol {
			t.Fatalf("vertex %d at %v is %f from the surface", i, v, d)
		}
	}
	t.Logf("sphere triangle count: %d", mesh.TriangleCount())
}

func TestEmptyBounds(t *testing.T) {
	k := NewWithCells(testCells)
	s := k.Bound(field.SphereField(1), [3]float64{0, -1, -1}, [3]float64{0, 1, 1})
	_, err := k.ToMesh(s)
	if !errors.Is(err, kernel.ErrEmptyBounds) {
		t.Fatalf("ToMesh error = %v, want ErrEmptyBounds", err)
	}
}

func TestBoundingBox(t *testing.T) {
	k := New()
	s := k.Bound(field.PlaneField(field.Vec3{Y: 1}), [3]float64{-4, -1, -2}, [3]float64{4, 1, 2})
	min, max := s.BoundingBox()
	if min != [3]float64{-4, -1, -2} || max != [3]float64{4, 1, 2} {
		t.Errorf("BoundingBox() = %v..%v, want [-4 -1 -2]..[4 1 2]", min, max)
	}
	if got := s.Evaluate(field.Vec3{Y: 3}); got != 3 {
		t.Errorf("Evaluate outside the box = %v, want 3", got)
	}
}

func TestBooleansMatchField(t *testing.T) {
	k := NewWithCells(testCells)
	a := boundedSphere(k, 1)
	b := k.Translate(boundedSphere(k, 1), 1, 0, 0)

	fa := field.SphereField(1)
	fb := field.Translate(field.SphereField(1), field.Vec3{X: 1})

	tests := []struct {
		name  string
		solid kernel.Solid
		want  field.Field
	}{
		{"union", k.Union(a, b), field.UnionOf(fa, fb)},
		{"difference", k.Difference(a, b), field.DifferenceOf(fa, fb)},
		{"intersection", k.Intersection(a, b), field.IntersectionOf(fa, fb)},
	}
	points := []field.Vec3{{}, {X: 1}, {X: 0.5, Y: 0.3}, {X: -0.7, Z: 0.2}, {X: 1.8}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range points {
				got := tt.solid.Evaluate(p)
				want := tt.want.Evaluate(p)
				if math.Abs(got-want) > 1e-9 {
					t.Errorf("Evaluate(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestDifferenceMesh(t *testing.T) {
	k := NewWithCells(testCells)
	outer := boundedSphere(k, 1)
	outerMesh, err := k.ToMesh(outer)
	if err != nil {
		t.Fatalf("ToMesh(outer) failed: %v", err)
	}

	bite := k.Translate(boundedSphere(k, 0.6), 0.9, 0, 0)
	diffMesh, err := k.ToMesh(k.Difference(bite, outer))
	if err != nil {
		t.Fatalf("ToMesh(diff) failed: %v", err)
	}
	if diffMesh.IsEmpty() {
		t.Fatal("difference mesh is empty")
	}
	t.Logf("sphere triangles: %d, bitten triangles: %d", outerMesh.TriangleCount(), diffMesh.TriangleCount())
}

func TestTranslate(t *testing.T) {
	k := New()
	translated := k.Translate(boundedSphere(k, 1), 100, 200, 300)

	min, max := translated.BoundingBox()

	const tol = 0.5
	expectMin := [3]float64{98.8, 198.8, 298.8}
	expectMax := [3]float64{101.2, 201.2, 301.2}

	for i := 0; i < 3; i++ {
		if math.Abs(min[i]-expectMin[i]) > tol {
			t.Errorf("min[%d] = %f, expected ~%f", i, min[i], expectMin[i])
		}
		if math.Abs(max[i]-expectMax[i]) > tol {
			t.Errorf("max[%d] = %f, expected ~%f", i, max[i], expectMax[i])
		}
	}
	if got := translated.Evaluate(field.Vec3{X: 100, Y: 200, Z: 300}); math.Abs(got+1) > 1e-9 {
		t.Errorf("Evaluate at new center = %v, want -1", got)
	}
}

func TestRotate(t *testing.T) {
	k := New()
	min := [3]float64{-5, -0.5, -0.5}
	max := [3]float64{5, 0.5, 0.5}
	rod := k.Bound(field.SphereField(0.5), min, max)

	// A bound elongated along X, rotated 90 degrees around Z, extends along Y.
	rotated := k.Rotate(rod, 0, 0, 90)
	rmin, rmax := rotated.BoundingBox()

	xExtent := rmax[0] - rmin[0]
	yExtent := rmax[1] - rmin[1]

	const tol = 0.1
	if math.Abs(xExtent-1) > tol {
		t.Errorf("rotated X extent = %f, expected ~1", xExtent)
	}
	if math.Abs(yExtent-10) > tol {
		t.Errorf("rotated Y extent = %f, expected ~10", yExtent)
	}
}

func TestScale(t *testing.T) {
	k := New()
	scaled := k.Scale(boundedSphere(k, 1), 2.3)
	if got := scaled.Evaluate(field.Vec3{X: 2.3}); math.Abs(got) > 1e-9 {
		t.Errorf("scaled sphere surface = %v, want 0", got)
	}
	if got := scaled.Evaluate(field.Vec3{}); math.Abs(got+2.3) > 1e-9 {
		t.Errorf("scaled sphere center = %v, want -2.3", got)
	}
}

func TestCellsDefault(t *testing.T) {
	if got := New().Cells(); got != defaultMeshCells {
		t.Errorf("New().Cells() = %d, want %d", got, defaultMeshCells)
	}
	if got := NewWithCells(0).Cells(); got != defaultMeshCells {
		t.Errorf("NewWithCells(0).Cells() = %d, want %d", got, defaultMeshCells)
	}
	if got := NewWithCells(16).Cells(); got != 16 {
		t.Errorf("NewWithCells(16).Cells() = %d, want 16", got)
	}
}
