// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/viterin/vek"
)

// Params describes how to generate a primitive signal.
type Params struct {
	Wave       Wave
	Frequency  float64 // Hz, must be positive
	Amplitude  float64 // clamped to [-1, 1]
	Duration   float64 // seconds, must be positive
	SampleRate int     // Hz, must be positive
}

// Validate checks p without generating any samples.
func (p Params) Validate() error {
	if p.Wave < Sine || p.Wave > Combination {
		return fmt.Errorf("%w: unknown wave %d", ErrInvalidParameter, int(p.Wave))
	}
	if !(p.Frequency > 0) {
		return fmt.Errorf("%w: frequency %v must be positive", ErrInvalidParameter, p.Frequency)
	}
	if !(p.Duration > 0) {
		return fmt.Errorf("%w: duration %v must be positive", ErrInvalidParameter, p.Duration)
	}
	if p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidParameter, p.SampleRate)
	}
	return nil
}

// Signal is a finite mono buffer together with the parameters that
// describe it. The buffer is never modified after construction.
type Signal struct {
	wave       Wave
	frequency  float64
	amplitude  float64
	duration   float64
	sampleRate int
	samples    []float64

	rng *rand.Rand // nil uses the global source
}

// New validates p and generates its buffer. Noise uses the global random
// source.
func New(p Params) (*Signal, error) {
	return NewWithRand(p, nil)
}

// NewWithRand is like New but draws noise samples from rng.
func NewWithRand(p Params, rng *rand.Rand) (*Signal, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s := &Signal{
		wave:       p.Wave,
		frequency:  p.Frequency,
		amplitude:  ClampAmplitude(p.Amplitude),
		duration:   p.Duration,
		sampleRate: p.SampleRate,
		rng:        rng,
	}
	s.samples = s.generate(SampleCount(p.Duration, p.SampleRate))

	return s, nil
}

// SampleCount returns the number of samples covering duration seconds.
func SampleCount(duration float64, sampleRate int) int {
	return int(math.Round(duration * float64(sampleRate)))
}

// ClampAmplitude limits a to [-1, 1].
func ClampAmplitude(a float64) float64 {
	return max(min(a, 1), -1)
}

func (s *Signal) Wave() Wave         { return s.wave }
func (s *Signal) Frequency() float64 { return s.frequency }
func (s *Signal) Amplitude() float64 { return s.amplitude }
func (s *Signal) Duration() float64  { return s.duration }
func (s *Signal) SampleRate() int    { return s.sampleRate }
func (s *Signal) Len() int           { return len(s.samples) }

// Params returns the parameters s was generated from.
func (s *Signal) Params() Params {
	return Params{
		Wave:       s.wave,
		Frequency:  s.frequency,
		Amplitude:  s.amplitude,
		Duration:   s.duration,
		SampleRate: s.sampleRate,
	}
}

// Samples returns a copy of the buffer.
func (s *Signal) Samples() []float64 {
	return s.AppendTo(nil)
}

// AppendTo appends the buffer to dst and returns the extended slice.
func (s *Signal) AppendTo(dst []float64) []float64 {
	return append(dst, s.samples...)
}

// WithDuration generates a new signal from the same parameters but a
// different duration. Combinations cannot be regenerated.
func (s *Signal) WithDuration(duration float64) (*Signal, error) {
	if !s.wave.Primitive() {
		return nil, fmt.Errorf("%w: cannot regenerate a %s signal", ErrInvalidParameter, s.wave)
	}
	p := s.Params()
	p.Duration = duration
	return NewWithRand(p, s.rng)
}

func (s *Signal) String() string {
	return fmt.Sprintf("Signal(%s %gHz amp=%g %gs @%dHz, %d samples)",
		s.wave, s.frequency, s.amplitude, s.duration, s.sampleRate, len(s.samples))
}

func (s *Signal) generate(n int) []float64 {
	switch s.wave {
	case Sine:
		cycle := s.phases()
		for i, ph := range cycle {
			cycle[i] = s.amplitude * math.Sin(ph)
		}
		return tile(cycle, n)
	case Square:
		cycle := s.phases()
		for i, ph := range cycle {
			cycle[i] = s.amplitude * sign(math.Sin(ph))
		}
		return tile(cycle, n)
	case Sawtooth:
		cycle := s.phases()
		for i, ph := range cycle {
			cycle[i] = s.amplitude * (1 - ph/math.Pi)
		}
		return tile(cycle, n)
	case Constant:
		return vek.Repeat(s.amplitude, n)
	case Noise:
		out := make([]float64, n)
		for i := range out {
			out[i] = 2*s.uniform() - 1
		}
		return out
	}

	// Combination buffers are filled by the combining operation.
	return []float64{}
}

// phases returns one cycle of phase values in [0, 2π). A cycle shorter
// than one sample collapses to the single phase 0.
func (s *Signal) phases() []float64 {
	cycleLen := float64(s.sampleRate) / s.frequency
	points := max(int(cycleLen), 1)
	omega := 2 * math.Pi / cycleLen

	out := make([]float64, points)
	for i := range out {
		out[i] = float64(i) * omega
	}
	return out
}

func (s *Signal) uniform() float64 {
	if s.rng != nil {
		return s.rng.Float64()
	}
	return rand.Float64()
}

// tile repeats cycle until n samples are filled, truncating the last
// repetition.
func tile(cycle []float64, n int) []float64 {
	out := make([]float64, n)
	if len(cycle) == 0 {
		return out
	}
	for i := 0; i < n; i += len(cycle) {
		copy(out[i:], cycle)
	}
	return out
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
