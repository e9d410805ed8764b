// SPDX-License-Identifier: EPL-2.0

package audcomp

import (
	"fmt"
	"math"

	"github.com/viterin/vek"

	"github.com/ik5/audcomp/signal"
)

// Stats summarises a mono buffer.
type Stats struct {
	Samples  int
	Duration float64 // seconds
	Peak     float64 // largest absolute sample
	RMS      float64
}

// Analyze measures samples recorded at sampleRate Hz.
func Analyze(samples []float64, sampleRate int) Stats {
	st := Stats{Samples: len(samples)}
	if sampleRate > 0 {
		st.Duration = float64(len(samples)) / float64(sampleRate)
	}
	if len(samples) == 0 {
		return st
	}

	st.Peak = signal.Peak(samples)
	st.RMS = math.Sqrt(vek.Dot(samples, samples) / float64(len(samples)))
	return st
}

// Decibels converts a linear level to dBFS. Silence is -Inf.
func Decibels(level float64) float64 {
	return 20 * math.Log10(level)
}

func (s Stats) String() string {
	return fmt.Sprintf("%d samples, %.3fs, peak %.1f dBFS, rms %.1f dBFS",
		s.Samples, s.Duration, Decibels(s.Peak), Decibels(s.RMS))
}
