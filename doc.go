// SPDX-License-Identifier: EPL-2.0

// Package audcomp composes waveforms on a timeline and exports the result
// as audio files.
//
// The work is split across subpackages:
//
//   - signal generates sine, square, sawtooth, constant and noise buffers
//     and combines them (add, subtract, multiply, concat, scale, modulate).
//   - timeline places signals in time, partitions the composition at every
//     placement boundary and renders one mono buffer.
//   - score reads placement lists from YAML, JSON or CSV.
//   - audio, formats/... and internal/playback move samples in and out:
//     resampling, WAV/AIFF export, MP3/Vorbis/WAV/AIFF decoding and
//     playback.
//
// # Quick Start
//
//	tl, _ := timeline.New(30, timeline.DefaultSampleRate)
//	tl.Place(signal.Sine, 440, 0.5, 0, 15)
//	tl.Place(signal.Sine, 880, 0.3, 12, 10)
//
//	samples, _ := tl.Render()
//	path, _ := audcomp.WriteFile("song", audcomp.WAV, tl.SampleRate(), samples)
//
// # Reference Material
//
// Decoded recordings are brought to the composition's layout with
// ResampleToMono and compared with Analyze:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	ref, _ := audcomp.ResampleToMono(src, 44100, 4096)
//	fmt.Println(audcomp.Analyze(ref, 44100))
package audcomp
