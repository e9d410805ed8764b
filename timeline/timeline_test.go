// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/ik5/audcomp/signal"
)

func mustTimeline(t testing.TB, duration float64, rate int) *Timeline {
	t.Helper()

	tl, err := NewWithRand(duration, rate, rand.New(rand.NewPCG(1, 2)))
	if err != nil {
		t.Fatalf("New(%v, %d) error = %v", duration, rate, err)
	}
	return tl
}

func mustPlace(t testing.TB, tl *Timeline, wave signal.Wave, freq, amp, start, duration float64) {
	t.Helper()

	if err := tl.Place(wave, freq, amp, start, duration); err != nil {
		t.Fatalf("Place(%v, %v, %v, %v, %v) error = %v", wave, freq, amp, start, duration, err)
	}
}

func TestNew_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration float64
		rate     int
	}{
		{"zero duration", 0, 44100},
		{"negative duration", -1, 44100},
		{"infinite duration", math.Inf(1), 44100},
		{"zero rate", 1, 0},
		{"below one sample", 0.00001, 8000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := New(tt.duration, tt.rate); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("New() error = %v, want ErrInvalidParameter", err)
			}
		})
	}
}

func TestNew_SilentTimeline(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 2, 8000)

	if got := tl.Intervals(); !slices.Equal(got, []Interval{{0, 16000}}) {
		t.Errorf("Intervals() = %v, want [[0, 16000)]", got)
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) != 16000 {
		t.Fatalf("len(Render()) = %d, want 16000", len(out))
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("sample[%d] = %v, want silence", i, v)
		}
	}
}

func TestPlace_ScenarioTwoSines(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 30, 44100)
	mustPlace(t, tl, signal.Sine, 440, 0.5, 0, 15)
	mustPlace(t, tl, signal.Sine, 880, 0.3, 12, 10)

	wantSeconds := [][2]float64{{0, 12}, {12, 15}, {15, 22}, {22, 30}}
	wantFreqs := [][]float64{{440}, {440, 880}, {880}, {}}

	sections := tl.Sections()
	if len(sections) != len(wantSeconds) {
		t.Fatalf("got %d sections, want %d: %v", len(sections), len(wantSeconds), tl.Intervals())
	}

	for i, sec := range sections {
		start, end := sec.Interval.Seconds(tl.SampleRate())
		if start != wantSeconds[i][0] || end != wantSeconds[i][1] {
			t.Errorf("section %d = (%v, %v), want %v", i, start, end, wantSeconds[i])
		}

		freqs := make([]float64, 0, len(sec.Signals))
		for _, s := range sec.Signals {
			freqs = append(freqs, s.Frequency())
			if s.Len() != sec.Interval.Len() {
				t.Errorf("section %d: signal has %d samples, want %d", i, s.Len(), sec.Interval.Len())
			}
		}
		if !slices.Equal(freqs, wantFreqs[i]) {
			t.Errorf("section %d frequencies = %v, want %v", i, freqs, wantFreqs[i])
		}
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) != 1_323_000 {
		t.Errorf("len(Render()) = %d, want 1323000", len(out))
	}

	// The tail after 22s is silent.
	for i := 22 * 44100; i < len(out); i++ {
		if out[i] != 0 {
			t.Fatalf("sample[%d] = %v, want silence", i, out[i])
		}
	}
}

func TestPlace_ScenarioClampedConstant(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 1, 8000)
	mustPlace(t, tl, signal.Constant, 100, 2.0, 0, 1)

	sections := tl.Sections()
	if len(sections) != 1 || len(sections[0].Signals) != 1 {
		t.Fatalf("Sections() = %v, want one section with one signal", sections)
	}
	if amp := sections[0].Signals[0].Amplitude(); amp != 1 {
		t.Errorf("Amplitude() = %v, want 1", amp)
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) != 8000 {
		t.Fatalf("len(Render()) = %d, want 8000", len(out))
	}
	for i, v := range out {
		if v != 1 {
			t.Fatalf("sample[%d] = %v, want 1", i, v)
		}
	}
}

func TestPlace_IdenticalIntervalAppends(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 1, 8000)
	mustPlace(t, tl, signal.Constant, 100, 0.25, 0, 1)
	mustPlace(t, tl, signal.Constant, 200, 0.5, 0, 1)

	sections := tl.Sections()
	if len(sections) != 1 {
		t.Fatalf("got %d sections, want 1", len(sections))
	}
	if n := len(sections[0].Signals); n != 2 {
		t.Fatalf("got %d signals, want 2", n)
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i, v := range out {
		if v != 0.75 {
			t.Fatalf("sample[%d] = %v, want 0.75", i, v)
		}
	}
}

func TestPlace_MixesAndClamps(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 3, 1000)
	mustPlace(t, tl, signal.Constant, 100, 0.6, 0, 2)
	mustPlace(t, tl, signal.Constant, 100, 0.7, 1, 2)

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	checks := map[int]float64{0: 0.6, 999: 0.6, 1000: 1, 1999: 1, 2000: 0.7, 2999: 0.7}
	for i, want := range checks {
		if out[i] != want {
			t.Errorf("sample[%d] = %v, want %v", i, out[i], want)
		}
	}
}

func TestPlace_GapBetweenPlacements(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 1, 1000)
	mustPlace(t, tl, signal.Constant, 100, 0.5, 0.6, 0.2)
	mustPlace(t, tl, signal.Constant, 100, 0.5, 0.1, 0.2)

	want := []Interval{{0, 100}, {100, 300}, {300, 600}, {600, 800}, {800, 1000}}
	if got := tl.Intervals(); !slices.Equal(got, want) {
		t.Fatalf("Intervals() = %v, want %v", got, want)
	}

	counts := []int{0, 1, 0, 1, 0}
	for i, sec := range tl.Sections() {
		if len(sec.Signals) != counts[i] {
			t.Errorf("section %v has %d signals, want %d", sec.Interval, len(sec.Signals), counts[i])
		}
	}
}

func TestPlace_ExtendsPastDuration(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 1, 1000)
	mustPlace(t, tl, signal.Sine, 100, 0.5, 0.5, 1.5)

	if span := tl.Span(); span != (Interval{0, 2000}) {
		t.Errorf("Span() = %v, want [0, 2000)", span)
	}
	want := []Interval{{0, 500}, {500, 1000}, {1000, 2000}}
	if got := tl.Intervals(); !slices.Equal(got, want) {
		t.Errorf("Intervals() = %v, want %v", got, want)
	}

	out, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) != 2000 {
		t.Errorf("len(Render()) = %d, want 2000", len(out))
	}
}

func TestPlace_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		wave            signal.Wave
		freq, amp       float64
		start, duration float64
		wantEmpty       bool
	}{
		{name: "negative start", wave: signal.Sine, freq: 440, amp: 1, start: -1, duration: 1},
		{name: "NaN start", wave: signal.Sine, freq: 440, amp: 1, start: math.NaN(), duration: 1},
		{name: "zero duration", wave: signal.Sine, freq: 440, amp: 1, start: 0, duration: 0},
		{name: "negative duration", wave: signal.Sine, freq: 440, amp: 1, start: 0, duration: -2},
		{name: "infinite duration", wave: signal.Sine, freq: 440, amp: 1, start: 0, duration: math.Inf(1)},
		{name: "zero frequency", wave: signal.Sine, freq: 0, amp: 1, start: 0, duration: 1},
		{name: "combination", wave: signal.Combination, freq: 440, amp: 1, start: 0, duration: 1},
		{name: "below one sample", wave: signal.Sine, freq: 440, amp: 1, start: 0, duration: 0.0001, wantEmpty: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tl := mustTimeline(t, 1, 1000)
			mustPlace(t, tl, signal.Sine, 100, 0.5, 0, 0.5)
			before := tl.Intervals()

			err := tl.Place(tt.wave, tt.freq, tt.amp, tt.start, tt.duration)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Place() error = %v, want ErrInvalidParameter", err)
			}
			if tt.wantEmpty && !errors.Is(err, ErrEmptyPlacement) {
				t.Errorf("Place() error = %v, want ErrEmptyPlacement", err)
			}
			if after := tl.Intervals(); !slices.Equal(before, after) {
				t.Errorf("failed Place() changed the partition: %v -> %v", before, after)
			}
		})
	}
}

func TestRender_DegenerateMix(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 1, 1000)
	mustPlace(t, tl, signal.Sine, 0.5, 0.5, 0, 1)
	mustPlace(t, tl, signal.Sine, 440, 0.5, 0, 1)

	if _, err := tl.Render(); !errors.Is(err, signal.ErrDegenerateCombination) {
		t.Errorf("Render() error = %v, want ErrDegenerateCombination", err)
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Parallel()

	tl := mustTimeline(t, 2, 8000)
	mustPlace(t, tl, signal.Noise, 1, 1, 0.25, 1)
	mustPlace(t, tl, signal.Square, 300, 0.4, 0.5, 1)

	if tl.Composition() != nil {
		t.Error("Composition() before Render() should be nil")
	}

	first, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := tl.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if len(first) != 16000 || len(second) != 16000 {
		t.Fatalf("render lengths = %d, %d; want 16000", len(first), len(second))
	}
	if !slices.Equal(first, second) {
		t.Error("repeated Render() calls differ")
	}
	if !slices.Equal(first, tl.Composition()) {
		t.Error("Composition() differs from the last Render()")
	}

	first[0] = 42
	if tl.Composition()[0] == 42 {
		t.Error("Render() result aliases the timeline buffer")
	}

	mustPlace(t, tl, signal.Sine, 440, 0.1, 0, 0.1)
	if tl.Composition() != nil {
		t.Error("Composition() should be cleared by Place()")
	}
}

// TestPlace_Properties checks the partition, sample count, render length
// and clamping invariants over random placement sequences.
func TestPlace_Properties(t *testing.T) {
	t.Parallel()

	const rate = 1000
	rng := rand.New(rand.NewPCG(42, 1))
	waves := []signal.Wave{signal.Sine, signal.Square, signal.Sawtooth, signal.Constant, signal.Noise}

	for run := range 20 {
		total := 1 + rng.Float64()*4
		tl := mustTimeline(t, total, rate)

		bounds := []int{0, signal.SampleCount(total, rate)}
		for range 1 + rng.IntN(6) {
			start := math.Round(rng.Float64()*5*100) / 100
			duration := 0.01 + math.Round(rng.Float64()*3*100)/100
			wave := waves[rng.IntN(len(waves))]

			mustPlace(t, tl, wave, float64(50+rng.IntN(900)), rng.Float64()*2-1, start, duration)
			bounds = append(bounds,
				int(math.Round(start*rate)),
				int(math.Round((start+duration)*rate)))
		}
		slices.Sort(bounds)
		bounds = slices.Compact(bounds)

		intervals := tl.Intervals()
		if len(intervals) != len(bounds)-1 {
			t.Fatalf("run %d: %d intervals for %d bounds", run, len(intervals), len(bounds))
		}
		for i, iv := range intervals {
			if iv.Start != bounds[i] || iv.End != bounds[i+1] {
				t.Fatalf("run %d: interval %d = %v, want [%d, %d)", run, i, iv, bounds[i], bounds[i+1])
			}
		}

		sum := 0
		for _, sec := range tl.Sections() {
			sum += sec.Interval.Len()
			for _, s := range sec.Signals {
				if s.Len() != sec.Interval.Len() {
					t.Fatalf("run %d: signal in %v has %d samples", run, sec.Interval, s.Len())
				}
			}
		}

		out, err := tl.Render()
		if err != nil {
			t.Fatalf("run %d: Render() error = %v", run, err)
		}
		if len(out) != sum || len(out) != tl.Span().Len() {
			t.Fatalf("run %d: render length %d, sections sum %d, span %d", run, len(out), sum, tl.Span().Len())
		}
		for i, v := range out {
			if v < -1 || v > 1 {
				t.Fatalf("run %d: sample[%d] = %v outside [-1, 1]", run, i, v)
			}
		}
	}
}

func BenchmarkPlace(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		tl := mustTimeline(b, 10, 8000)
		for i := range 8 {
			mustPlace(b, tl, signal.Sine, 220*float64(i+1), 0.2, float64(i), 2.5)
		}
	}
}
