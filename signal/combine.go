// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"

	"github.com/viterin/vek"
)

// PlaceholderFrequency is the frequency recorded on signals produced by
// Modulate, where no meaningful frequency can be derived.
const PlaceholderFrequency = 100

type operator int

const (
	opAdd operator = iota
	opSub
	opMul
)

// Add sums s and o over their overlapping samples.
//
// The two buffers are aligned at their start. The longer one (s on a tie)
// keeps its tail untouched, and every resulting sample is clamped to
// [-1, 1]. The result is a Combination whose frequency is the least common
// multiple of the integer parts of both frequencies.
func (s *Signal) Add(o *Signal) (*Signal, error) {
	return s.combine(o, opAdd)
}

// Subtract computes long - short over the overlapping samples, where long
// is the longer of the two buffers (s on a tie). See Add.
func (s *Signal) Subtract(o *Signal) (*Signal, error) {
	return s.combine(o, opSub)
}

// Multiply computes the elementwise product over the overlapping samples.
// See Add.
func (s *Signal) Multiply(o *Signal) (*Signal, error) {
	return s.combine(o, opMul)
}

// Concat joins o after s.
func (s *Signal) Concat(o *Signal) (*Signal, error) {
	if s.sampleRate != o.sampleRate {
		return nil, fmt.Errorf("%w: %d and %d", ErrSampleRateMismatch, s.sampleRate, o.sampleRate)
	}
	freq, err := lcmFrequency(s.frequency, o.frequency)
	if err != nil {
		return nil, err
	}

	joined := make([]float64, 0, len(s.samples)+len(o.samples))
	joined = append(joined, s.samples...)
	joined = append(joined, o.samples...)

	return &Signal{
		wave:       Combination,
		frequency:  freq,
		amplitude:  Peak(joined),
		duration:   s.duration + o.duration,
		sampleRate: s.sampleRate,
		samples:    joined,
	}, nil
}

// Scale multiplies every sample by factor. The factor is limited to
// [0, 1]; negative factors silence the signal.
func (s *Signal) Scale(factor float64) *Signal {
	factor = max(ClampAmplitude(factor), 0)

	scaled := s.Samples()
	vek.MulNumber_Inplace(scaled, factor)

	return &Signal{
		wave:       s.wave,
		frequency:  s.frequency,
		amplitude:  s.amplitude * factor,
		duration:   s.duration,
		sampleRate: s.sampleRate,
		samples:    scaled,
		rng:        s.rng,
	}
}

// Modulate stretches the shorter buffer to the length of the longer one by
// repeating it, then multiplies the two. The result carries
// PlaceholderFrequency.
func (s *Signal) Modulate(o *Signal) (*Signal, error) {
	if s.sampleRate != o.sampleRate {
		return nil, fmt.Errorf("%w: %d and %d", ErrSampleRateMismatch, s.sampleRate, o.sampleRate)
	}

	long, short := s.samples, o.samples
	if len(long) < len(short) {
		long, short = short, long
	}

	out := tile(short, len(long))
	vek.Mul_Inplace(out, long)
	clamp(out)

	return &Signal{
		wave:       Combination,
		frequency:  PlaceholderFrequency,
		amplitude:  Peak(out),
		duration:   float64(len(out)) / float64(s.sampleRate),
		sampleRate: s.sampleRate,
		samples:    out,
	}, nil
}

func (s *Signal) combine(o *Signal, op operator) (*Signal, error) {
	if s.sampleRate != o.sampleRate {
		return nil, fmt.Errorf("%w: %d and %d", ErrSampleRateMismatch, s.sampleRate, o.sampleRate)
	}
	freq, err := lcmFrequency(s.frequency, o.frequency)
	if err != nil {
		return nil, err
	}

	long, short := s.samples, o.samples
	if len(long) < len(short) {
		long, short = short, long
	}

	out := make([]float64, len(long))
	copy(out, long)
	head := out[:len(short)]

	switch op {
	case opAdd:
		vek.Add_Inplace(head, short)
	case opSub:
		vek.Sub_Inplace(head, short)
	case opMul:
		vek.Mul_Inplace(head, short)
	}
	clamp(out)

	return &Signal{
		wave:       Combination,
		frequency:  freq,
		amplitude:  Peak(out),
		duration:   float64(len(out)) / float64(s.sampleRate),
		sampleRate: s.sampleRate,
		samples:    out,
	}, nil
}

// Peak returns the largest absolute sample value, or 0 for an empty
// buffer.
func Peak(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	return vek.Max(vek.Abs(samples))
}

func clamp(samples []float64) {
	if len(samples) == 0 {
		return
	}
	vek.MinimumNumber_Inplace(samples, 1)
	vek.MaximumNumber_Inplace(samples, -1)
}

// lcmFrequency returns lcm(int(a), int(b)).
func lcmFrequency(a, b float64) (float64, error) {
	x, y := int64(a), int64(b)
	if x <= 0 || y <= 0 {
		return 0, fmt.Errorf("%w: %v Hz and %v Hz", ErrDegenerateCombination, a, b)
	}
	return float64(x / gcd(x, y) * y), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
