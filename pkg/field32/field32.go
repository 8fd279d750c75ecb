// Package field32 evaluates the scenes in single precision, the way a GPU
// kernel does. It mirrors package field and package scene closely enough
// that host and device results can be compared point by point.
package field32

import (
	"github.com/chewxy/math32"
)

// Vec3 is a single-precision point or direction.
type Vec3 struct {
	X, Y, Z float32
}

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

// Dot returns the dot product of a and b.
func (a Vec3) Dot(b Vec3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// Length returns the Euclidean length of a.
func (a Vec3) Length() float32 { return math32.Sqrt(a.Dot(a)) }

// Color3 is a single-precision RGB triple.
type Color3 struct {
	R, G, B float32
}

func Union(a, b float32) float32        { return math32.Min(a, b) }
func Difference(a, b float32) float32   { return math32.Max(-a, b) }
func Intersection(a, b float32) float32 { return math32.Max(a, b) }

func Sphere(p Vec3, radius float32) float32 { return p.Length() - radius }
func Plane(p, n Vec3) float32               { return p.Dot(n) }

// Mandelbulb is the single-precision counterpart of field.Mandelbulb,
// including its handling of an iterate at the origin.
func Mandelbulb(pos Vec3, iterations int, bail, power float32) float32 {
	z := pos
	var dr float32 = 1
	var r float32
	for i := 0; i < iterations; i++ {
		r = z.Length()
		if r > bail {
			break
		}
		if r == 0 {
			return 0
		}

		theta := math32.Asin(z.Z / r)
		phi := math32.Atan2(z.Y, z.X)
		dr = math32.Pow(r, power-1)*power*dr + 1

		zr := math32.Pow(r, power)
		theta *= power
		phi *= power

		ct := math32.Cos(theta)
		z = Vec3{
			X: zr * ct * math32.Cos(phi),
			Y: zr * math32.Sin(phi) * ct,
			Z: zr * math32.Sin(theta),
		}.Add(pos)
	}
	return 0.5 * math32.Log(r) * r / dr
}

var (
	up      = Vec3{Y: 1}
	floorAt = Vec3{Y: -2}
)

func mandelbulbParts(p Vec3) (fractal, floor float32) {
	const s = 2.3
	fractal = Mandelbulb(Vec3{p.X / s, p.Y / s, p.Z / s}, 8, 4, 8) * s
	floor = Plane(p.Sub(floorAt), up)
	return fractal, floor
}

// MandelbulbScene is scene.MandelbulbScene in single precision.
func MandelbulbScene(p Vec3) float32 {
	fractal, floor := mandelbulbParts(p)
	return Union(fractal, floor)
}

// MandelbulbColor is scene.MandelbulbColor in single precision.
func MandelbulbColor(p Vec3) Color3 {
	fractal, floor := mandelbulbParts(p)
	if floor < fractal {
		return Color3{0.85, 0.85, 0.85}
	}
	return Color3{0.85, 1.0, 0.0}
}

func sphereParts(p Vec3) (spheres, floor float32) {
	mx := math32.Mod(p.X, 2)
	mz := math32.Mod(p.Z, 2)
	y := p.Y + 1.5
	spheres = Sphere(Vec3{mx - 1, y, mz - 1}, 0.5)
	spheres = Union(spheres, Sphere(Vec3{-mx - 1, y, mz - 1}, 0.5))
	spheres = Union(spheres, Sphere(Vec3{mx - 1, y, -mz - 1}, 0.5))
	spheres = Union(spheres, Sphere(Vec3{-mx - 1, y, -mz - 1}, 0.5))
	floor = Plane(p.Sub(floorAt), up)
	return spheres, floor
}

// SphereScene is scene.SphereScene in single precision.
func SphereScene(p Vec3) float32 {
	spheres, floor := sphereParts(p)
	return Union(spheres, floor)
}

// SphereColor is scene.SphereColor in single precision.
func SphereColor(p Vec3) Color3 {
	spheres, floor := sphereParts(p)
	if floor < spheres {
		return Color3{1.0, 0.3, 0.1}
	}
	return Color3{0.85, 0.85, 0.85}
}
