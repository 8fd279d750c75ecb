package field

import "math"

// Mandelbulb returns a distance estimate from pos to the boundary of the
// power-n Mandelbulb set. The estimate never exceeds the true distance, so
// it is a safe sphere-tracing step.
//
// The iteration stops early once |z| exceeds bail. iterations must be
// positive. An iterate landing exactly on the origin has no defined
// spherical angles; the origin is inside the set, so 0 is returned there.
func Mandelbulb(pos Vec3, iterations int, bail, power float64) float64 {
	z := pos
	dr := 1.0
	r := 0.0
	for i := 0; i < iterations; i++ {
		r = z.Length()
		if r > bail {
			break
		}
		if r == 0 {
			return 0
		}

		theta := math.Asin(z.Z / r)
		phi := math.Atan2(z.Y, z.X)
		dr = math.Pow(r, power-1)*power*dr + 1

		zr := math.Pow(r, power)
		theta *= power
		phi *= power

		ct := math.Cos(theta)
		z = Vec3{
			X: zr * ct * math.Cos(phi),
			Y: zr * math.Sin(phi) * ct,
			Z: zr * math.Sin(theta),
		}
		z = z.Add(pos)
	}
	return 0.5 * math.Log(r) * r / dr
}

// MandelbulbField is Mandelbulb as a composable Field.
func MandelbulbField(iterations int, bail, power float64) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Mandelbulb(p, iterations, bail, power)
	})
}
