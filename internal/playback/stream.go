// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/audcomp/audio"
)

const bytesPerSample = 4

// Stream serves a Source as interleaved float32 little-endian bytes, the
// layout of oto.FormatFloat32LE.
type Stream struct {
	src     audio.Source
	samples []float32
	pending []byte
	done    bool
}

func NewStream(src audio.Source) *Stream {
	size := max(src.BufSize(), src.Channels())
	return &Stream{
		src:     src,
		samples: make([]float32, size-size%src.Channels()),
	}
}

func (s *Stream) Read(p []byte) (int, error) {
	if len(s.pending) == 0 {
		if s.done {
			return 0, io.EOF
		}
		if err := s.fill(); err != nil {
			return 0, err
		}
		if len(s.pending) == 0 {
			return 0, io.EOF
		}
	}

	n := copy(p, s.pending)
	s.pending = s.pending[n:]
	return n, nil
}

func (s *Stream) fill() error {
	n, err := s.src.ReadSamples(s.samples)
	if errors.Is(err, io.EOF) {
		s.done = true
	} else if err != nil {
		return fmt.Errorf("reading playback source: %w", err)
	}

	buf := make([]byte, n*bytesPerSample)
	for i, v := range s.samples[:n] {
		binary.LittleEndian.PutUint32(buf[i*bytesPerSample:], math.Float32bits(v))
	}
	s.pending = buf
	return nil
}
