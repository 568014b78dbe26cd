// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		y0, y1, y2, y3 float64
		x              float64
		want           float64
	}{
		{"at y1", 0, 1, 2, 3, 0, 1},
		{"at y2", 0, 1, 2, 3, 1, 2},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5},
		{"constant", 4, 4, 4, 4, 0.3, 4},
		{"peak", 0, 1, 0, -1, 0.5, 0.625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CubicInterpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCubicInterpolate_Float32(t *testing.T) {
	t.Parallel()

	if got := CubicInterpolate[float32](0, 1, 2, 3, 0.25); math.Abs(float64(got)-1.25) > 1e-6 {
		t.Errorf("CubicInterpolate() = %v, want 1.25", got)
	}
}

func TestLinearInterpolate(t *testing.T) {
	t.Parallel()

	if got := LinearInterpolate(2.0, 4.0, 0.25); got != 2.5 {
		t.Errorf("LinearInterpolate() = %v, want 2.5", got)
	}
	if got := LinearInterpolate[float32](-1, 1, 1); got != 1 {
		t.Errorf("LinearInterpolate() = %v, want 1", got)
	}
}
