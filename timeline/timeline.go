// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ik5/audcomp/signal"
)

// DefaultSampleRate is the CD rate used when a composition does not name one.
const DefaultSampleRate = 44100

// Section is one interval of the partition together with the signals
// sounding during it. Every signal holds exactly Interval.Len() samples.
type Section struct {
	Interval Interval
	Signals  []*signal.Signal
}

// Timeline arranges signals in time and mixes them into one buffer.
//
// Its sections always partition [0, Span) without gaps. Time not covered by
// any placement is kept as silent sections, so the span starts at zero and
// lasts at least the total duration given to New.
//
// A Timeline is not safe for concurrent use.
type Timeline struct {
	duration   float64
	sampleRate int
	sections   []Section
	rendered   []float64

	rng *rand.Rand
}

// New creates an empty timeline of totalDuration seconds.
func New(totalDuration float64, sampleRate int) (*Timeline, error) {
	return NewWithRand(totalDuration, sampleRate, nil)
}

// NewWithRand is like New, but noise placements draw from rng.
func NewWithRand(totalDuration float64, sampleRate int, rng *rand.Rand) (*Timeline, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, sampleRate)
	}
	if !(totalDuration > 0) || math.IsInf(totalDuration, 0) {
		return nil, fmt.Errorf("%w: duration %v must be positive", ErrInvalidParameter, totalDuration)
	}

	total := signal.SampleCount(totalDuration, sampleRate)
	if total <= 0 {
		return nil, fmt.Errorf("%w: duration %v is shorter than one sample", ErrInvalidParameter, totalDuration)
	}

	return &Timeline{
		duration:   totalDuration,
		sampleRate: sampleRate,
		sections:   []Section{{Interval: Interval{Start: 0, End: total}}},
		rng:        rng,
	}, nil
}

func (t *Timeline) Duration() float64 { return t.duration }
func (t *Timeline) SampleRate() int   { return t.sampleRate }

// Span returns the interval covered by the partition.
func (t *Timeline) Span() Interval {
	return Interval{Start: 0, End: t.sections[len(t.sections)-1].Interval.End}
}

// Intervals returns the current partition in time order.
func (t *Timeline) Intervals() []Interval {
	out := make([]Interval, len(t.sections))
	for i, sec := range t.sections {
		out[i] = sec.Interval
	}
	return out
}

// Sections returns a copy of the current partition and its signals.
func (t *Timeline) Sections() []Section {
	out := make([]Section, len(t.sections))
	for i, sec := range t.sections {
		out[i] = Section{Interval: sec.Interval, Signals: slices.Clone(sec.Signals)}
	}
	return out
}

// Place adds a wave sounding from start for duration seconds.
//
// Bounds are snapped to the sample grid. Every placement re-partitions the
// whole timeline: each new interval receives every signal whose interval
// overlaps it, regenerated to the new interval's length. The rebuild costs
// O(P²) in the number of intervals, which is fine for hand-written scores.
func (t *Timeline) Place(wave signal.Wave, frequency, amplitude, start, duration float64) error {
	if !(start >= 0) || math.IsInf(start, 0) {
		return fmt.Errorf("%w: start %v must not be negative", ErrInvalidParameter, start)
	}
	if !(duration > 0) || math.IsInf(duration, 0) {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidParameter, duration)
	}
	if !wave.Primitive() {
		return fmt.Errorf("%w: %s cannot be placed", ErrInvalidParameter, wave)
	}

	rate := float64(t.sampleRate)
	iv := Interval{
		Start: int(math.Round(start * rate)),
		End:   int(math.Round((start + duration) * rate)),
	}
	if iv.Len() <= 0 {
		return fmt.Errorf("%w: %w: %v seconds at %d Hz", ErrInvalidParameter, ErrEmptyPlacement, duration, t.sampleRate)
	}

	sig, err := signal.NewWithRand(signal.Params{
		Wave:       wave,
		Frequency:  frequency,
		Amplitude:  amplitude,
		Duration:   t.seconds(iv.Len()),
		SampleRate: t.sampleRate,
	}, t.rng)
	if err != nil {
		return fmt.Errorf("placing %s at %v: %w", wave, start, err)
	}

	entries := slices.Clone(t.sections)
	merged := false
	for i := range entries {
		if entries[i].Interval == iv {
			entries[i].Signals = append(slices.Clone(entries[i].Signals), sig)
			merged = true
			break
		}
	}
	if !merged {
		entries = append(entries, Section{Interval: iv, Signals: []*signal.Signal{sig}})
	}

	sections, err := t.rebuild(entries)
	if err != nil {
		return err
	}
	t.sections = sections
	t.rendered = nil

	return nil
}

func (t *Timeline) rebuild(entries []Section) ([]Section, error) {
	keys := make([]Interval, len(entries))
	for i, e := range entries {
		keys[i] = e.Interval
	}

	parts := Partition(keys)
	sections := make([]Section, len(parts))

	for i, part := range parts {
		seen := make(map[*signal.Signal]struct{})
		var active []*signal.Signal

		for _, e := range entries {
			if !part.Overlaps(e.Interval) {
				continue
			}
			for _, s := range e.Signals {
				if _, dup := seen[s]; dup {
					continue
				}
				seen[s] = struct{}{}
				active = append(active, s)
			}
		}

		regenerated := make([]*signal.Signal, 0, len(active))
		for _, s := range active {
			r, err := s.WithDuration(t.seconds(part.Len()))
			if err != nil {
				return nil, fmt.Errorf("regenerating %v for %v: %w", s, part, err)
			}
			regenerated = append(regenerated, r)
		}

		sections[i] = Section{Interval: part, Signals: regenerated}
	}

	return sections, nil
}

// Render mixes every section and concatenates them in time order.
//
// Silent sections yield zeros, a single signal is copied as is, and
// concurrent signals are folded left to right with signal.Add. Each call
// starts from an empty buffer, so repeated renders are identical.
func (t *Timeline) Render() ([]float64, error) {
	out := make([]float64, 0, t.Span().Len())

	for _, sec := range t.sections {
		switch len(sec.Signals) {
		case 0:
			out = append(out, make([]float64, sec.Interval.Len())...)
		case 1:
			out = sec.Signals[0].AppendTo(out)
		default:
			mix := sec.Signals[0]
			for _, s := range sec.Signals[1:] {
				var err error
				if mix, err = mix.Add(s); err != nil {
					return nil, fmt.Errorf("mixing %v: %w", sec.Interval, err)
				}
			}
			out = mix.AppendTo(out)
		}
	}

	t.rendered = out
	return slices.Clone(out), nil
}

// Composition returns a copy of the buffer produced by the last Render, or
// nil if nothing was rendered since the last Place.
func (t *Timeline) Composition() []float64 {
	return slices.Clone(t.rendered)
}

func (t *Timeline) seconds(samples int) float64 {
	return float64(samples) / float64(t.sampleRate)
}
