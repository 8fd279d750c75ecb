// Package scene holds the fixed analytic scenes evaluated by the renderer.
// A Scene answers two questions about a point: how far is the nearest
// surface, and which material is it. Both come from a single evaluation so
// geometry and color always agree.
package scene

import (
	"errors"
	"fmt"

	"github.com/chazu/sdfscene/pkg/field"
)

// ErrUnknownScene is returned by Lookup for an unrecognized scene name.
var ErrUnknownScene = errors.New("unknown scene")

// Material identifies the sub-surface nearest to a point.
type Material int

const (
	MaterialFloor   Material = iota // ground plane
	MaterialFractal                 // Mandelbulb
	MaterialSphere                  // sphere lattice
)

func (m Material) String() string {
	switch m {
	case MaterialFloor:
		return "floor"
	case MaterialFractal:
		return "fractal"
	case MaterialSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Sample is the result of evaluating a scene at one point.
type Sample struct {
	Distance float64
	Material Material
}

// Part is one sub-surface of a scene.
type Part struct {
	Material Material
	Field    field.Field
}

// Scene is a union of parts with a color per material. The zero value is
// not usable; scenes are built with New.
type Scene struct {
	Name    string
	Parts   []Part
	Palette map[Material]field.Color3

	min, max field.Vec3
}

// New builds a scene. Parts are listed in priority order: a later part
// claims the material only where it is strictly nearer than every earlier
// part. min and max bound the interesting region for meshing.
func New(name string, palette map[Material]field.Color3, min, max field.Vec3, parts ...Part) Scene {
	return Scene{
		Name:    name,
		Parts:   parts,
		Palette: palette,
		min:     min,
		max:     max,
	}
}

// Sample evaluates every part once and returns the union distance together
// with the nearest material.
func (s Scene) Sample(p field.Vec3) Sample {
	var out Sample
	for i, part := range s.Parts {
		d := part.Field.Evaluate(p)
		if i == 0 {
			out = Sample{Distance: d, Material: part.Material}
			continue
		}
		if d < out.Distance {
			out.Material = part.Material
		}
		out.Distance = field.Union(out.Distance, d)
	}
	return out
}

// Evaluate returns the signed distance to the nearest surface. A ray
// marcher may step up to |Evaluate(p)| from p without crossing a surface.
func (s Scene) Evaluate(p field.Vec3) float64 {
	return s.Sample(p).Distance
}

// Color returns the material color at p. Callers use it once marching has
// converged, i.e. where Evaluate(p) is close to zero.
func (s Scene) Color(p field.Vec3) field.Color3 {
	return s.Palette[s.Sample(p).Material]
}

// Bounds returns the region worth meshing.
func (s Scene) Bounds() (min, max field.Vec3) {
	return s.min, s.max
}

// Lookup returns the named scene.
func Lookup(name string) (Scene, error) {
	switch name {
	case Mandelbulb.Name:
		return Mandelbulb, nil
	case Spheres.Name:
		return Spheres, nil
	default:
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// Names lists the scenes Lookup knows about.
func Names() []string {
	return []string{Mandelbulb.Name, Spheres.Name}
}
