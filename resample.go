// SPDX-License-Identifier: EPL-2.0

package audcomp

import (
	"github.com/ik5/audcomp/audio"
)

// ResampleToMono brings any decoded source to targetRate Hz mono, the
// layout compositions use, and collects it into a buffer that can be
// analysed or mixed with rendered material. bufferSize is the read size;
// zero uses the source's preference.
func ResampleToMono(src audio.Source, targetRate, bufferSize int) ([]float64, error) {
	return audio.ToMono(src, targetRate, bufferSize)
}

// Resample converts a mono buffer from one rate to another.
func Resample(samples []float64, from, to int) ([]float64, error) {
	if from == to {
		return append([]float64(nil), samples...), nil
	}

	src, err := audio.NewBufferSource(samples, from)
	if err != nil {
		return nil, err
	}
	r, err := audio.NewResampler(src, to)
	if err != nil {
		return nil, err
	}
	return audio.ReadAll(r, 0)
}
