// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// FloatToPCM scales x from [-1, 1] to a signed integer of the given bit
// depth, rounding to the nearest step. Values outside the range are
// clamped.
func FloatToPCM(x float64, bitDepth int) int {
	full := float64(int(1)<<(bitDepth-1) - 1)
	switch {
	case x > 1:
		x = 1
	case x < -1:
		x = -1
	case math.IsNaN(x):
		x = 0
	}
	return int(math.Round(x * full))
}

// PCMToFloat maps a signed integer sample of the given bit depth back into
// [-1, 1]. It is the inverse of FloatToPCM; the lowest code of the range
// clamps to -1.
func PCMToFloat(v, bitDepth int) float32 {
	full := float32(int(1)<<(bitDepth-1) - 1)
	f := float32(v) / full
	return max(-1, min(1, f))
}

// FloatsToPCM converts a whole buffer with FloatToPCM.
func FloatsToPCM(samples []float64, bitDepth int) []int {
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = FloatToPCM(s, bitDepth)
	}
	return out
}
