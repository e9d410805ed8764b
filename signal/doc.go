// SPDX-License-Identifier: EPL-2.0

// Package signal generates finite mono sample buffers from primitive
// oscillators and combines them.
//
// # Waveforms
//
// A Signal is described by Params: the wave kind, its frequency, amplitude,
// duration and sample rate. Construction validates the parameters first and
// only then generates round(duration × sampleRate) samples:
//
//	s, err := signal.New(signal.Params{
//	    Wave:       signal.Sine,
//	    Frequency:  440,
//	    Amplitude:  0.5,
//	    Duration:   2,
//	    SampleRate: 44100,
//	})
//
// Periodic waves (sine, square, sawtooth) are computed for one cycle of
// sampleRate/frequency points and then repeated until the buffer is full.
// Constant fills the buffer with the amplitude, and Noise draws uniform
// samples in [-1, 1] regardless of amplitude. Amplitudes outside [-1, 1]
// are clamped rather than rejected.
//
// # Combining
//
// Signals are combined with named methods that always return a new Signal:
//
//	sum, err := a.Add(b)        // also Subtract, Multiply
//	joined, err := a.Concat(b)  // b after a
//	quiet := a.Scale(0.5)
//	ring, err := a.Modulate(b)  // repeat the shorter, then multiply
//
// Add, Subtract and Multiply work on the overlapping part of the two
// buffers and clamp the result to [-1, 1]. The derived frequency is the
// least common multiple of the integer frequencies; combining a signal
// whose integer frequency is not positive fails with
// ErrDegenerateCombination.
package signal
