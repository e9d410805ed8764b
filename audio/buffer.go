// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/viterin/vek/vek32"
)

// BufferSource streams a mono float64 buffer, such as a rendered
// composition, as a Source.
type BufferSource struct {
	samples []float32
	rate    int
	pos     int
}

// NewBufferSource copies samples into a source played at rate Hz.
func NewBufferSource(samples []float64, rate int) (*BufferSource, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}

	var converted []float32
	if len(samples) > 0 {
		converted = vek32.FromFloat64(samples)
	}
	return &BufferSource{samples: converted, rate: rate}, nil
}

func (b *BufferSource) SampleRate() int { return b.rate }
func (b *BufferSource) Channels() int   { return 1 }
func (b *BufferSource) BufSize() int    { return 4096 }
func (b *BufferSource) Close() error    { return nil }

// Len returns the number of samples not read yet.
func (b *BufferSource) Len() int { return len(b.samples) - b.pos }

func (b *BufferSource) ReadSamples(dst []float32) (int, error) {
	n := copy(dst, b.samples[b.pos:])
	b.pos += n
	if b.pos >= len(b.samples) {
		return n, io.EOF
	}
	return n, nil
}

// Rewind restarts the stream from the first sample.
func (b *BufferSource) Rewind() { b.pos = 0 }
