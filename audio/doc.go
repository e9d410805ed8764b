// SPDX-License-Identifier: EPL-2.0

// Package audio streams PCM between decoders, converters and sinks.
//
// Everything is built around Source, a pull-based stream of interleaved
// float32 samples in [-1, 1]:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// Sources chain. A Resampler changes the rate with cubic interpolation, a
// MonoMixer averages channels down to one, and ToMono does both and
// collects the result:
//
//	src, _ := mp3.Decoder{}.Decode(f)
//	samples, err := audio.ToMono(src, 44100, 4096)
//
// BufferSource goes the other way and turns a rendered float64 buffer
// into a Source, for playback or further conversion.
//
// A Registry maps format keys to decoders so callers can pick one from a
// file extension:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	dec, ok := reg.Lookup("take.wav")
//
// ReadSamples returns io.EOF at the end of a stream, possibly together
// with the final samples. Any other error comes from the underlying
// source.
package audio
