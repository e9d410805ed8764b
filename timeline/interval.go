// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"slices"
)

// Interval is a half-open span [Start, End) of sample offsets.
type Interval struct {
	Start, End int
}

func (iv Interval) Len() int { return iv.End - iv.Start }

// Overlaps reports whether iv starts or ends inside o:
// o.Start <= iv.Start < o.End or o.Start < iv.End <= o.End.
func (iv Interval) Overlaps(o Interval) bool {
	return (o.Start <= iv.Start && iv.Start < o.End) ||
		(o.Start < iv.End && iv.End <= o.End)
}

// Seconds converts the interval bounds to seconds at sampleRate.
func (iv Interval) Seconds(sampleRate int) (start, end float64) {
	rate := float64(sampleRate)
	return float64(iv.Start) / rate, float64(iv.End) / rate
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d, %d)", iv.Start, iv.End)
}

// Partition splits the union of intervals at every start and end point.
// The result is sorted and its consecutive intervals share boundaries.
func Partition(intervals []Interval) []Interval {
	points := make([]int, 0, 2*len(intervals))
	for _, iv := range intervals {
		points = append(points, iv.Start, iv.End)
	}
	slices.Sort(points)
	points = slices.Compact(points)

	if len(points) < 2 {
		return nil
	}

	parts := make([]Interval, len(points)-1)
	for i := range parts {
		parts[i] = Interval{Start: points[i], End: points[i+1]}
	}
	return parts
}
