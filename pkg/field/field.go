// Package field implements signed distance field algebra: boolean
// combinators over distances, closed-form primitives and an escape-time
// distance estimator for the power-n Mandelbulb.
//
// Every function is pure and safe to call concurrently from any number of
// goroutines. Scalar functions allocate nothing; composed Field values are
// built once and evaluated many times.
package field

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Vec3 is a world-space point or direction. It is the sdfx vector type so
// fields plug directly into sdfx solids.
type Vec3 = v3.Vec

// Color3 is an RGB triple. Components are nominally in [0,1] but are not
// clamped.
type Color3 struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Gray returns a color with all three channels set to v.
func Gray(v float64) Color3 {
	return Color3{R: v, G: v, B: v}
}

// Field is a signed distance field expression. Negative values are inside
// a surface, positive values outside. The method set matches sdf.SDF3's
// Evaluate so a Field can back an sdfx solid.
type Field interface {
	Evaluate(p Vec3) float64
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p Vec3) float64

// Evaluate calls f(p).
func (f FieldFunc) Evaluate(p Vec3) float64 {
	return f(p)
}
