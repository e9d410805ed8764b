// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"

	"github.com/ik5/audcomp/formats/internal/pcm"
)

// BitDepth is the sample width Write produces.
const BitDepth = 16

// Write encodes mono samples in [-1, 1] as a 16-bit AIFF stream.
func Write(w io.WriteSeeker, sampleRate int, samples []float64) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	enc := aiff.NewEncoder(w, sampleRate, BitDepth, 1)
	return pcm.Encode(enc, sampleRate, BitDepth, samples)
}

// WriteFile writes samples to name, adding an .aiff extension when it is
// missing.
func WriteFile(name string, sampleRate int, samples []float64) (string, error) {
	if sampleRate <= 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	path, err := pcm.CreateFile(name, ".aiff", func(w io.WriteSeeker) error {
		return Write(w, sampleRate, samples)
	})
	if err != nil {
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return path, nil
}
