// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"

	"github.com/ik5/audcomp/formats/internal/pcm"
)

// BitDepth is the sample width Write produces.
const BitDepth = 16

// Write encodes mono samples in [-1, 1] as a 16-bit PCM WAV stream.
// Samples outside the range are clamped. The header is patched once all
// data is written, hence the io.WriteSeeker.
func Write(w io.WriteSeeker, sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, BitDepth, 1, wavFormatPCM)
	return pcm.Encode(enc, sampleRate, BitDepth, samples)
}

// WriteFile writes samples to name, adding a .wav extension when it is
// missing, and returns the path it created.
func WriteFile(name string, sampleRate int, samples []float64) (string, error) {
	if sampleRate <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	path, err := pcm.CreateFile(name, ".wav", func(w io.WriteSeeker) error {
		return Write(w, sampleRate, samples)
	})
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
