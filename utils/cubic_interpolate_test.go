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
		tolerance      float64
	}{
		{"at y1", 0, 1, 2, 3, 0, 1, 0},
		{"at y2", 0, 1, 2, 3, 1, 2, 1e-12},
		{"linear midpoint", 0, 1, 2, 3, 0.5, 1.5, 1e-12},
		{"linear quarter", 1, 2, 3, 4, 0.25, 2.25, 1e-12},
		{"symmetric crossing", -1, -0.5, 0.5, 1, 0.5, 0, 1e-12},
		{"peak", 0.5, 0.9, 0.7, 0.3, 0.3, 0.85, 0.05},
		{"silence", 0, 0, 0, 0, 0.5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := CubicInterpolate(tt.y0, tt.y1, tt.y2, tt.y3, tt.x)
			if diff := math.Abs(got - tt.want); diff > tt.tolerance {
				t.Errorf("CubicInterpolate() = %v, want %v (diff %v)", got, tt.want, diff)
			}

			got32 := CubicInterpolate(float32(tt.y0), float32(tt.y1), float32(tt.y2), float32(tt.y3), float32(tt.x))
			if diff := math.Abs(float64(got32) - tt.want); diff > tt.tolerance+1e-6 {
				t.Errorf("CubicInterpolate[float32]() = %v, want %v (diff %v)", got32, tt.want, diff)
			}
		})
	}
}

func TestCubicInterpolateBounds(t *testing.T) {
	t.Parallel()

	for i := range 100 {
		y0, y1, y2, y3 := float32(i), float32(i+1), float32(i+2), float32(i+3)
		if got := CubicInterpolate(y0, y1, y2, y3, 0); got != y1 {
			t.Errorf("x=0 should return y1=%v, got %v", y1, got)
		}
		if got := CubicInterpolate(y0, y1, y2, y3, 1); got != y2 {
			t.Errorf("x=1 should return y2=%v, got %v", y2, got)
		}
	}
}

func BenchmarkCubicInterpolate(b *testing.B) {
	samples := make([]float32, 8000)

	b.ReportAllocs()
	for b.Loop() {
		for j := range samples {
			x := float32(j%100) / 100
			samples[j] = CubicInterpolate[float32](0.1, 0.5, 0.3, -0.2, x)
		}
	}
}

func TestCubicInterpolate_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = CubicInterpolate(0.5, 1.0, 0.8, 0.3, 0.5)
	})
	if allocs > 0 {
		t.Errorf("CubicInterpolate allocated %v times, want 0", allocs)
	}
}
