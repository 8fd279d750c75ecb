package field

import "math"

// Union returns the distance to the nearer of two surfaces.
func Union(a, b float64) float64 {
	return math.Min(a, b)
}

// Difference removes solid a from solid b. The first operand is negated,
// so Difference(a, b) != Difference(b, a) in general.
func Difference(a, b float64) float64 {
	return math.Max(-a, b)
}

// Intersection returns the distance to the region common to both solids.
func Intersection(a, b float64) float64 {
	return math.Max(a, b)
}

// UnionOf composes two fields with Union.
func UnionOf(a, b Field) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Union(a.Evaluate(p), b.Evaluate(p))
	})
}

// DifferenceOf composes two fields with Difference: a is carved out of b.
func DifferenceOf(a, b Field) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Difference(a.Evaluate(p), b.Evaluate(p))
	})
}

// IntersectionOf composes two fields with Intersection.
func IntersectionOf(a, b Field) Field {
	return FieldFunc(func(p Vec3) float64 {
		return Intersection(a.Evaluate(p), b.Evaluate(p))
	})
}
