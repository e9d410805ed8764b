// SPDX-License-Identifier: EPL-2.0

// Package timeline composes independently timed signals into one mono
// buffer.
//
// A Timeline keeps a partition of the composition into disjoint intervals,
// each holding the signals active during it. Placing a wave re-partitions
// the whole timeline at every placement boundary and regenerates each
// active signal to the length of the interval it now occupies:
//
//	tl, _ := timeline.New(30, timeline.DefaultSampleRate)
//	tl.Place(signal.Sine, 440, 0.5, 0, 15)
//	tl.Place(signal.Sine, 880, 0.3, 12, 10)
//	// intervals: [0,12) [12,15) [15,22) [22,30) seconds
//
//	samples, err := tl.Render()
//
// Render mixes each interval (silence, the single signal, or the clamped
// sum of all of them) and concatenates the results in time order.
package timeline
