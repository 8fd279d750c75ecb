package field

import "math"

// Sphere returns the signed distance from p to a sphere of the given radius
// centered at the origin. Translate p into the sphere's frame first.
func Sphere(p Vec3, radius float64) float64 {
	return p.Length() - radius
}

// Plane returns the signed distance from p to the plane through the origin
// with normal n. n is not normalized here; a non-unit normal scales the
// result.
func Plane(p Vec3, n Vec3) float64 {
	return p.Dot(n)
}

// SphereField is Sphere as a composable Field.
func SphereField(radius float64) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Sphere(p, radius)
	})
}

// PlaneField is Plane as a composable Field.
func PlaneField(n Vec3) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Plane(p, n)
	})
}

// Translate moves f so that its origin sits at offset.
func Translate(f Field, offset Vec3) Field {
	return FieldFunc(func(p Vec3) float64 {
		return f.Evaluate(p.Sub(offset))
	})
}

// Scale uniformly scales f by s about the origin. The distance is scaled
// back by s so it stays metrically correct.
func Scale(f Field, s float64) Field {
	return FieldFunc(func(p Vec3) float64 {
		q := Vec3{X: p.X / s, Y: p.Y / s, Z: p.Z / s}
		return f.Evaluate(q) * s
	})
}

// Lattice repeats f across the XZ plane with the given period. The cell
// coordinate is the signed remainder math.Mod (same sign as the dividend),
// and f is evaluated at the four sign variants of that remainder, each
// shifted by half a period, with the results unioned.
//
// For negative coordinates the signed remainder makes the variants tile
// unevenly spaced lattices rather than a clean mirror; this is the
// intended tiling and is not a Euclidean modulo.
func Lattice(f Field, period float64) Field {
	half := period / 2
	return FieldFunc(func(p Vec3) float64 {
		mx := math.Mod(p.X, period)
		mz := math.Mod(p.Z, period)
		d := f.Evaluate(Vec3{X: mx - half, Y: p.Y, Z: mz - half})
		d = Union(d, f.Evaluate(Vec3{X: -mx - half, Y: p.Y, Z: mz - half}))
		d = Union(d, f.Evaluate(Vec3{X: mx - half, Y: p.Y, Z: -mz - half}))
		return Union(d, f.Evaluate(Vec3{X: -mx - half, Y: p.Y, Z: -mz - half}))
	})
}
