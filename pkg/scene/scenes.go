package scene

import "github.com/chazu/sdfscene/pkg/field"

// Ground floor shared by both scenes.
const FloorHeight = -2.0

// Mandelbulb scene parameters.
const (
	MandelbulbScale      = 2.3
	MandelbulbIterations = 8
	MandelbulbBail       = 4.0
	MandelbulbPower      = 8.0
)

// Sphere lattice parameters.
const (
	LatticePeriod = 2.0
	LatticeHeight = -1.5
	LatticeRadius = 0.5
)

var (
	floorGray   = field.Gray(0.85)
	fractalLime = field.Color3{R: 0.85, G: 1.0, B: 0.0}
	floorOrange = field.Color3{R: 1.0, G: 0.3, B: 0.1}
	sphereGray  = field.Gray(0.85)
)

// floor is the plane y = FloorHeight facing up.
var floor = field.Translate(
	field.PlaneField(field.Vec3{Y: 1}),
	field.Vec3{Y: FloorHeight},
)

// Mandelbulb is a power-8 Mandelbulb resting on the ground floor. The
// fractal is evaluated in its natural domain (p / 2.3) and the estimate
// scaled back by 2.3.
var Mandelbulb = New(
	"mandelbulb",
	map[Material]field.Color3{
		MaterialFloor:   floorGray,
		MaterialFractal: fractalLime,
	},
	field.Vec3{X: -3, Y: -2.5, Z: -3},
	field.Vec3{X: 3, Y: 3, Z: 3},
	Part{
		Material: MaterialFractal,
		Field: field.Scale(
			field.MandelbulbField(MandelbulbIterations, MandelbulbBail, MandelbulbPower),
			MandelbulbScale,
		),
	},
	Part{Material: MaterialFloor, Field: floor},
)

// Spheres is an endless lattice of spheres just above the ground floor.
var Spheres = New(
	"spheres",
	map[Material]field.Color3{
		MaterialFloor:  floorOrange,
		MaterialSphere: sphereGray,
	},
	field.Vec3{X: -4, Y: -2.5, Z: -4},
	field.Vec3{X: 4, Y: -0.5, Z: 4},
	Part{
		Material: MaterialSphere,
		Field: field.Translate(
			field.Lattice(field.SphereField(LatticeRadius), LatticePeriod),
			field.Vec3{Y: LatticeHeight},
		),
	},
	Part{Material: MaterialFloor, Field: floor},
)

// MandelbulbScene returns the signed distance to the Mandelbulb scene.
func MandelbulbScene(p field.Vec3) float64 {
	return Mandelbulb.Evaluate(p)
}

// MandelbulbColor returns gray where the floor is the nearer surface and
// lime on the fractal.
func MandelbulbColor(p field.Vec3) field.Color3 {
	return Mandelbulb.Color(p)
}

// SphereScene returns the signed distance to the sphere lattice scene.
func SphereScene(p field.Vec3) float64 {
	return Spheres.Evaluate(p)
}

// SphereColor returns orange where the floor is the nearer surface and gray
// on the spheres.
func SphereColor(p field.Vec3) field.Color3 {
	return Spheres.Color(p)
}
