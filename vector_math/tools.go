package vector_math

import "math"

// ToRad is a helper function to turn degree to radians
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg is a helper function to turn radians to degree
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// TriangleNormal returns the unit normal of the counter clockwise triangle a, b, c.
func TriangleNormal(a, b, c Vec3) Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Norm()
}
