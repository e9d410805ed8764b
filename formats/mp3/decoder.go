// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/audcomp/audio"
)

// go-mp3 always decodes to interleaved 16-bit little-endian stereo.
const (
	channels      = 2
	bytesPerFrame = channels * 2
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec  mp3Reader
	rate int
	buf  []byte
	done bool
}

func (s *source) SampleRate() int { return s.rate }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return cap(s.buf) / 2 }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}

	want := len(dst) / channels * bytesPerFrame
	if want == 0 {
		return 0, nil
	}
	if cap(s.buf) < want {
		s.buf = make([]byte, want)
	}
	buf := s.buf[:want]

	n, err := io.ReadFull(s.dec, buf)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		s.done = true
		err = io.EOF
	} else if err != nil {
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	samples := n / bytesPerFrame * channels
	for i := range samples {
		v := int16(binary.LittleEndian.Uint16(buf[2*i:]))
		dst[i] = float32(v) / 32768
	}
	return samples, err
}

// Decoder reads MPEG-1/2 layer III streams with go-mp3. The output is
// always stereo.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}

	return &source{
		dec:  dec,
		rate: dec.SampleRate(),
		buf:  make([]byte, 8192),
	}, nil
}
