// SPDX-License-Identifier: EPL-2.0

package audcomp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ik5/audcomp/formats/aiff"
	"github.com/ik5/audcomp/formats/wav"
	"github.com/ik5/audcomp/timeline"
)

// Format is an export container.
type Format string

const (
	WAV  Format = "wav"
	AIFF Format = "aiff"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts "wav", "aiff" and "aif", in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wav", "wave":
		return WAV, nil
	case "aiff", "aif":
		return AIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// WriteFile stores a mono buffer as 16-bit PCM. The format's extension is
// appended to name when missing; the written path is returned.
func WriteFile(name string, f Format, sampleRate int, samples []float64) (string, error) {
	switch f {
	case WAV:
		return wav.WriteFile(name, sampleRate, samples)
	case AIFF:
		return aiff.WriteFile(name, sampleRate, samples)
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// RenderWAV renders tl and writes the composition as a WAV stream at the
// timeline's sample rate.
func RenderWAV(tl *timeline.Timeline, w io.WriteSeeker) error {
	samples, err := tl.Render()
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return wav.Write(w, tl.SampleRate(), samples)
}
