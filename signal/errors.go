// SPDX-License-Identifier: EPL-2.0

package signal

import "errors"

var (
	ErrInvalidParameter      = errors.New("invalid signal parameter")
	ErrDegenerateCombination = errors.New("cannot combine signals with non-positive integer frequency")
	ErrSampleRateMismatch    = errors.New("signals have different sample rates")
)
