// SPDX-License-Identifier: EPL-2.0

// Package aiff reads and writes AIFF files using github.com/go-audio/aiff.
//
// The Decoder accepts 16, 24 and 32 bit PCM with any channel count and
// yields float32 samples in [-1, 1]. WriteFile exports a mono composition
// as 16-bit AIFF for tools that prefer it over WAV.
package aiff
