// SPDX-License-Identifier: EPL-2.0

// Package pcm holds the plumbing shared by the go-audio based formats:
// reading integer PCM as float samples and writing float samples as
// integer PCM.
package pcm

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audcomp/utils"
)

// ErrUnsupportedBitDepth is returned for sample widths other than 16, 24
// or 32 bits.
var ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")

// Reader is the read side of the go-audio decoders.
type Reader interface {
	Format() *goaudio.Format
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Writer is the write side of the go-audio encoders.
type Writer interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// CheckBitDepth reports whether samples of the given width can be
// converted.
func CheckBitDepth(bitDepth int) error {
	switch bitDepth {
	case 16, 24, 32:
		return nil
	}
	return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
}

// Source adapts a Reader to audio.Source.
type Source struct {
	dec      Reader
	rate     int
	channels int
	bitDepth int
	buf      *goaudio.IntBuffer
}

func NewSource(dec Reader, bitDepth int) (*Source, error) {
	format := dec.Format()
	if format == nil || format.SampleRate <= 0 || format.NumChannels <= 0 {
		return nil, fmt.Errorf("missing or empty format: %+v", format)
	}
	if err := CheckBitDepth(bitDepth); err != nil {
		return nil, err
	}

	return &Source{
		dec:      dec,
		rate:     format.SampleRate,
		channels: format.NumChannels,
		bitDepth: bitDepth,
	}, nil
}

func (s *Source) SampleRate() int { return s.rate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if s.buf != nil {
		return cap(s.buf.Data)
	}
	return 4096
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.buf == nil || cap(s.buf.Data) < len(dst) {
		s.buf = &goaudio.IntBuffer{
			Data:   make([]int, len(dst)),
			Format: s.dec.Format(),
		}
	} else {
		s.buf.Data = s.buf.Data[:len(dst)]
	}

	n, err := s.dec.PCMBuffer(s.buf)
	if n == 0 {
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("reading PCM: %w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.buf.Data[:n] {
		dst[i] = utils.PCMToFloat(v, s.bitDepth)
	}

	// The decoders signal the end with a short read.
	if n < len(dst) && err == nil {
		return n, io.EOF
	}
	return n, err
}

// Seekable returns r itself when it can seek, otherwise it buffers the
// whole stream in memory.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}
	return bytes.NewReader(data), nil
}

// Encode writes mono samples through enc as integer PCM and closes it.
func Encode(enc Writer, rate, bitDepth int, samples []float64) error {
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           utils.FloatsToPCM(samples, bitDepth),
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		enc.Close()
		return fmt.Errorf("encoding samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finishing encoder: %w", err)
	}
	return nil
}

// CreateFile creates name, adding ext unless it already ends with it, and
// hands the open file to write. It returns the path it wrote.
func CreateFile(name, ext string, write func(w io.WriteSeeker) error) (string, error) {
	if !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}

	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := write(f); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return name, nil
}
