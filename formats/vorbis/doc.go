// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis files with github.com/jfreymuth/oggvorbis.
//
// Samples come out as interleaved float32 with the stream's own channel
// count and rate.
package vorbis
