// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	ossignal "os/signal"
	"syscall"

	"github.com/ik5/audcomp"
	"github.com/ik5/audcomp/internal/config"
	"github.com/ik5/audcomp/internal/playback"
)

func main() {
	cfg := config.Load()

	directory := flag.String("o", cfg.OutputDir, "Directory where to output all files. It is created if needed. By default, files are placed next to their score.")
	exportRate := flag.Int("r", cfg.ExportRate, "Resample exported audio to this rate in Hz. 0 keeps the composition rate.")
	sampleRate := flag.Int("rate", cfg.SampleRate, "Composition sample rate for scores that do not set one.")
	formatName := flag.String("f", cfg.Format, "Export format: wav or aiff.")
	duration := flag.Float64("d", 0, "Timeline duration in seconds for scores that do not set one. By default the last placement ends the timeline.")
	seed := flag.Uint64("s", cfg.Seed, "Seed for noise placements. 0 picks a random seed.")
	play := flag.Bool("p", false, "Play every rendered composition.")
	inspect := flag.Bool("i", false, "Inspect audio files instead of rendering scores. With -r, also write them as mono files at that rate.")
	help := flag.Bool("h", false, "Show help.")
	flag.Usage = printUsage
	flag.Parse()

	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}

	format, err := audcomp.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *seed == 0 {
		*seed = rand.Uint64()
	}

	opts := options{
		outDir:     *directory,
		exportRate: *exportRate,
		sampleRate: *sampleRate,
		format:     format,
		duration:   *duration,
		seed:       *seed,
		bufSize:    cfg.BufferSize,
	}

	ctx, cancel := ossignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var player *playback.Player
	if *play && !*inspect {
		player, err = playback.New(cfg.PlaybackRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not open audio device: %v\n", err)
			os.Exit(1)
		}
	}

	process := func(filename string) error {
		return render(ctx, opts, player, filename)
	}
	extensions := scoreExtensions
	if *inspect {
		reg := newRegistry()
		extensions = reg.Formats()
		process = func(filename string) error {
			return inspectFile(opts, reg, filename)
		}
	} else {
		log.Printf("noise seed %d", opts.seed)
	}

	retval := 0
	for _, param := range flag.Args() {
		files, err := expand(param, extensions)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not list %v: %v\n", param, err)
			retval = 1
			continue
		}
		for _, file := range files {
			if err := process(file); err != nil {
				fmt.Fprintf(os.Stderr, "could not process file %v: %v\n", file, err)
				retval = 1
			}
			if ctx.Err() != nil {
				os.Exit(130)
			}
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Render waveform scores (.yml, .yaml, .json, .csv) to audio files.\nUsage: %s [flags] [path ...]\n", os.Args[0])
	flag.PrintDefaults()
}
