// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrInvalidSampleRate indicates a write was asked for a non-positive rate
	ErrInvalidSampleRate = errors.New("AIFF sample rate must be positive")
)
