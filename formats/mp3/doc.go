// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 files with github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit stereo, so every Source returned by
// Decoder reports two channels, even for mono files. Pass it through
// audio.ToMono to place decoded material next to rendered compositions:
//
//	src, err := mp3.Decoder{}.Decode(f)
//	samples, err := audio.ToMono(src, 44100, 0)
package mp3
