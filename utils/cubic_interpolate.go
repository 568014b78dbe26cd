// SPDX-License-Identifier: EPL-2.0

package utils

// Float is the sample type the interpolators accept.
type Float interface {
	~float32 | ~float64
}

// CubicInterpolate performs Catmull-Rom interpolation.
// x is the fractional position between y1 and y2 (0 <= x <= 1);
// y0, y1, y2, y3 are four consecutive samples.
func CubicInterpolate[T Float](y0, y1, y2, y3, x T) T {
	a0 := -0.5*y0 + 1.5*y1 - 1.5*y2 + 0.5*y3
	a1 := y0 - 2.5*y1 + 2*y2 - 0.5*y3
	a2 := -0.5*y0 + 0.5*y2

	return ((a0*x+a1)*x+a2)*x + y1
}

// LinearInterpolate blends y0 and y1 at x in [0, 1].
func LinearInterpolate[T Float](y0, y1, x T) T {
	return y0 + (y1-y0)*x
}
