// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides synthetic audio sources for tests. The types
// satisfy audio.Source without importing it.
package audiotest

import (
	"io"
	"math"
)

// Waveform returns the value of channel ch at frame i.
type Waveform func(i, ch int) float32

// Source generates a fixed number of frames from a Waveform.
type Source struct {
	rate     int
	channels int
	frames   int
	at       int
	bufSize  int
	wave     Waveform

	// Err, when set, is returned by ReadSamples once At frames were read.
	Err error
	At  int

	Closed bool
}

func New(rate, channels, frames int, wave Waveform) *Source {
	return &Source{rate: rate, channels: channels, frames: frames, bufSize: 4096, wave: wave}
}

func NewSilent(rate, channels, frames int) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return 0 })
}

func NewConstant(rate, channels, frames int, v float32) *Source {
	return New(rate, channels, frames, func(int, int) float32 { return v })
}

func NewSine(rate, channels, frames int, freq float64) *Source {
	return New(rate, channels, frames, func(i, _ int) float32 {
		return float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(rate)))
	})
}

// NewRamp counts frames, scaled by step, so that the output position of
// every sample is easy to check.
func NewRamp(rate, channels, frames int, step float32) *Source {
	return New(rate, channels, frames, func(i, _ int) float32 { return float32(i) * step })
}

// WithBufSize changes the read size the source advertises.
func (s *Source) WithBufSize(n int) *Source {
	s.bufSize = n
	return s
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BufSize() int    { return s.bufSize }

func (s *Source) Close() error {
	s.Closed = true
	return nil
}

// Reset rewinds the source to its first frame.
func (s *Source) Reset() { s.at = 0 }

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.Err != nil && s.at >= s.At {
		return 0, s.Err
	}
	if s.at >= s.frames {
		return 0, io.EOF
	}

	end := min(s.frames, s.at+len(dst)/s.channels)
	if s.Err != nil {
		end = min(end, s.At)
	}

	n := 0
	for ; s.at < end; s.at++ {
		for ch := range s.channels {
			dst[n] = s.wave(s.at, ch)
			n++
		}
	}

	if s.at >= s.frames {
		return n, io.EOF
	}
	return n, nil
}
