// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/viterin/vek"
)

// ReadAll drains src and returns its interleaved samples widened to
// float64. A bufSize of zero uses src.BufSize().
func ReadAll(src Source, bufSize int) ([]float64, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	bufSize = max(bufSize-bufSize%src.Channels(), src.Channels())
	buf := make([]float32, bufSize)

	var out []float64
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, vek.FromFloat32(buf[:n])...)
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("reading samples: %w", err)
		}
	}
}

// ToMono resamples src to rate, downmixes it to one channel and reads the
// result to the end.
func ToMono(src Source, rate, bufSize int) ([]float64, error) {
	var s Source = src
	if src.SampleRate() != rate {
		r, err := NewResampler(src, rate)
		if err != nil {
			return nil, err
		}
		s = r
	}
	return ReadAll(NewMonoMixer(s), bufSize)
}
