// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"fmt"
	"strings"
)

// Wave is the kind of waveform a Signal carries.
type Wave int

const (
	Sine Wave = iota
	Square
	Sawtooth
	Constant
	Noise
	// Combination marks a signal derived from two others. It has no
	// generator of its own.
	Combination
)

var waveNames = [...]string{
	Sine:        "sine",
	Square:      "square",
	Sawtooth:    "sawtooth",
	Constant:    "constant",
	Noise:       "noise",
	Combination: "combination",
}

func (w Wave) String() string {
	if w < 0 || int(w) >= len(waveNames) {
		return fmt.Sprintf("Wave(%d)", int(w))
	}
	return waveNames[w]
}

// Primitive reports whether w can be generated from parameters alone.
func (w Wave) Primitive() bool {
	return w >= Sine && w < Combination
}

// ParseWave converts a wave name into a Wave. "saw" is accepted as an
// alias of "sawtooth".
func ParseWave(name string) (Wave, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine", "sin":
		return Sine, nil
	case "square":
		return Square, nil
	case "saw", "sawtooth":
		return Sawtooth, nil
	case "constant", "const":
		return Constant, nil
	case "noise":
		return Noise, nil
	case "combination":
		return Combination, nil
	}
	return 0, fmt.Errorf("%w: unknown wave %q", ErrInvalidParameter, name)
}
