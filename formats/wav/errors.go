// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrOnlyPCMSupported  = errors.New("only integer PCM WAV is supported")
	ErrInvalidSampleRate = errors.New("WAV sample rate must be positive")
)
