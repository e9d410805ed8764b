// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ik5/audcomp"
	"github.com/ik5/audcomp/audio"
	"github.com/ik5/audcomp/formats/aiff"
	"github.com/ik5/audcomp/formats/mp3"
	"github.com/ik5/audcomp/formats/vorbis"
	"github.com/ik5/audcomp/formats/wav"
)

func newRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	return reg
}

// inspectFile decodes an audio file, prints its statistics and, when an
// export rate is set, writes it back as a mono file at that rate.
func inspectFile(opts options, reg *audio.Registry, filename string) error {
	dec, ok := reg.Lookup(filename)
	if !ok {
		return fmt.Errorf("%w: %s", audio.ErrUnknownFormat, filepath.Ext(filename))
	}

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return err
	}
	defer src.Close()

	rate := src.SampleRate()
	if opts.exportRate > 0 {
		rate = opts.exportRate
	}
	mono, err := audcomp.ResampleToMono(src, rate, opts.bufSize)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d Hz, %d channels: %v\n", filename, src.SampleRate(), src.Channels(), audcomp.Analyze(mono, rate))

	if opts.exportRate == 0 {
		return nil
	}
	name, err := outputName(opts.outDir, filename, ".mono")
	if err != nil {
		return err
	}
	path, err := audcomp.WriteFile(name, opts.format, rate, mono)
	if err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
