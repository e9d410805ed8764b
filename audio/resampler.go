// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/audcomp/utils"
)

// Resampler converts src to another sample rate with Catmull-Rom
// interpolation, keeping the channel layout. When downsampling every input
// frame first goes through a one-pole low-pass filter.
//
// N input frames produce ceil(N*dst/src) output frames.
type Resampler struct {
	src      Source
	channels int
	srcRate  int64
	rate     int64

	// window holds frames i-1, i, i+1 and i+2 around the output position.
	// Frames past either end of the stream repeat the nearest valid one.
	window [4][]float32
	valid  [4]bool
	primed bool
	index  int64 // i
	out    int64 // frames produced so far

	chunk   []float32
	chunkAt int
	chunkN  int
	srcDone bool

	lowpass []float32
	alpha   float32
	warm    bool
}

// NewResampler wraps src so that it reads at dstRate Hz.
func NewResampler(src Source, dstRate int) (*Resampler, error) {
	if dstRate <= 0 || src.SampleRate() <= 0 {
		return nil, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidRate, src.SampleRate(), dstRate)
	}

	channels := src.Channels()
	size := max(src.BufSize(), channels)

	r := &Resampler{
		src:      src,
		channels: channels,
		srcRate:  int64(src.SampleRate()),
		rate:     int64(dstRate),
		chunk:    make([]float32, size-size%channels),
	}
	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}
	if r.srcRate > r.rate {
		r.lowpass = make([]float32, channels)
		r.alpha = 0.5
	}

	return r, nil
}

func (r *Resampler) SampleRate() int { return int(r.rate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("closing resampler source: %w", err)
	}
	return nil
}

// ReadSamples fills dst with whole frames at the target rate.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0
	for written < frames {
		// Output frame k sits at input position k*src/dst.
		at := r.out * r.srcRate
		for r.index < at/r.rate {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}
		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		x := float32(at%r.rate) / float32(r.rate)
		frame := dst[written*r.channels : (written+1)*r.channels]
		for c := range frame {
			frame[c] = utils.CubicInterpolate(r.window[0][c], r.window[1][c], r.window[2][c], r.window[3][c], x)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	r.primed = true
	if !ok {
		return io.EOF
	}

	r.valid[1] = true
	copy(r.window[0], r.window[1])
	for i := 2; i < len(r.window); i++ {
		if err := r.fill(i); err != nil {
			return err
		}
	}
	return nil
}

// advance slides the window one input frame forward.
func (r *Resampler) advance() error {
	for i := range 3 {
		copy(r.window[i], r.window[i+1])
		r.valid[i] = r.valid[i+1]
	}
	r.index++
	return r.fill(3)
}

func (r *Resampler) fill(i int) error {
	ok, err := r.nextFrame(r.window[i])
	if err != nil {
		return err
	}
	r.valid[i] = ok
	if !ok {
		copy(r.window[i], r.window[i-1])
	}
	return nil
}

// nextFrame copies one input frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	for r.chunkAt+r.channels > r.chunkN {
		if r.srcDone {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.chunk)
		r.chunkAt, r.chunkN = 0, n-n%r.channels
		if errors.Is(err, io.EOF) {
			r.srcDone = true
		} else if err != nil {
			return false, fmt.Errorf("reading resampler source: %w", err)
		}
	}

	copy(dst, r.chunk[r.chunkAt:r.chunkAt+r.channels])
	r.chunkAt += r.channels

	if r.lowpass != nil {
		if !r.warm {
			copy(r.lowpass, dst)
			r.warm = true
		}
		for c, v := range dst {
			dst[c] = r.alpha*v + (1-r.alpha)*r.lowpass[c]
			r.lowpass[c] = dst[c]
		}
	}
	return true, nil
}
