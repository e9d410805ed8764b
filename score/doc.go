// SPDX-License-Identifier: EPL-2.0

// Package score reads placement lists and applies them to a timeline.
//
// A score is either a YAML (or JSON) document:
//
//	duration: 30
//	sample_rate: 44100
//	placements:
//	  - {wave: sine, frequency: 440, amplitude: 0.5, start: 0, duration: 15}
//	  - {wave: sine, frequency: 880, amplitude: 0.3, start: 12, duration: 10}
//
// or a CSV table with a header naming the wave, frequency, amplitude,
// start and duration columns. A table carries no timeline settings, so
// its duration is taken from the last placement.
//
// A YAML score may also carry a data section that turns the rows of a CSV
// table into placements. Data columns are rescaled from their own range
// onto a frequency band, onto [0, 1] amplitude and onto start times:
//
//	data:
//	  file: prices.csv
//	  wave: sine
//	  frequency_column: close
//	  frequency_low: 200
//	  frequency_high: 800
//	  time_column: day
//	  length: 30
//	  note_duration: 0.5
//
// Rescale, ToFrequency, ToAmplitude, ToStarts and ToOffsets expose the same
// mappings for callers that build placements themselves.
package score
