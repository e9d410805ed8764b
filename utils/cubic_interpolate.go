// SPDX-License-Identifier: EPL-2.0

package utils

// Float is a floating point sample type.
type Float interface {
	~float32 | ~float64
}

// CubicInterpolate evaluates the Catmull-Rom spline through four
// consecutive samples at x in [0, 1] between y1 and y2.
func CubicInterpolate[T Float](y0, y1, y2, y3, x T) T {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}
