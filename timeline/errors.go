// SPDX-License-Identifier: EPL-2.0

package timeline

import (
	"errors"

	"github.com/ik5/audcomp/signal"
)

var (
	// ErrInvalidParameter is the same value as signal.ErrInvalidParameter so
	// callers can test placement and signal failures alike.
	ErrInvalidParameter = signal.ErrInvalidParameter

	// ErrEmptyPlacement reports a placement that rounds to zero samples.
	ErrEmptyPlacement = errors.New("placement is shorter than one sample")
)
