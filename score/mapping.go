// SPDX-License-Identifier: EPL-2.0

package score

import (
	"slices"
	"time"

	"github.com/viterin/vek"
)

// Rescale maps values linearly from their own [min, max] onto [lo, hi].
// When all values are equal there is no range to map and every value lands
// on the midpoint of [lo, hi]. The input is left untouched.
func Rescale(values []float64, lo, hi float64) []float64 {
	return rescale(values, lo, hi, (lo+hi)/2)
}

func rescale(values []float64, lo, hi, flat float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	vmin, vmax := vek.Min(values), vek.Max(values)
	if vmin == vmax {
		return vek.Repeat(flat, len(values))
	}

	out := slices.Clone(values)
	vek.SubNumber_Inplace(out, vmin)
	vek.MulNumber_Inplace(out, (hi-lo)/(vmax-vmin))
	vek.AddNumber_Inplace(out, lo)
	return out
}

// ToFrequency spreads values over the frequency band [lo, hi] Hz.
func ToFrequency(values []float64, lo, hi float64) []float64 {
	return Rescale(values, lo, hi)
}

// ToAmplitude spreads values over [0, 1].
func ToAmplitude(values []float64) []float64 {
	return Rescale(values, 0, 1)
}

// ToStarts spreads timestamps over [0, length] seconds, keeping their
// relative spacing. Equal timestamps all start at 0.
func ToStarts(times []time.Time, length float64) []float64 {
	return rescale(unixSeconds(times), 0, length, 0)
}

// ToOffsets is ToStarts expressed as sample offsets at sampleRate. Offsets
// are truncated toward zero.
func ToOffsets(times []time.Time, length float64, sampleRate int) []int {
	starts := rescale(unixSeconds(times), 0, length*float64(sampleRate), 0)
	offsets := make([]int, len(starts))
	for i, s := range starts {
		offsets[i] = int(s)
	}
	return offsets
}

func unixSeconds(times []time.Time) []float64 {
	secs := make([]float64, len(times))
	for i, t := range times {
		secs[i] = float64(t.UnixNano()) / float64(time.Second)
	}
	return secs
}
