// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes WAV files on top of github.com/go-audio/wav.
//
// Write and WriteFile store a mono float64 buffer as 16-bit PCM, which is
// how rendered compositions leave the program:
//
//	path, err := wav.WriteFile("out/song", 44100, samples) // out/song.wav
//
// Decoder turns a WAV stream into an audio.Source with samples scaled to
// [-1, 1]. It accepts 16, 24 and 32 bit integer PCM and buffers inputs
// that cannot seek, since the RIFF chunks are located by seeking.
package wav
