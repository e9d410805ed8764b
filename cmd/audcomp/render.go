// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ik5/audcomp"
	"github.com/ik5/audcomp/internal/playback"
	"github.com/ik5/audcomp/score"
)

var scoreExtensions = []string{"yml", "yaml", "json", "csv"}

type options struct {
	outDir     string
	exportRate int
	sampleRate int
	format     audcomp.Format
	duration   float64
	seed       uint64
	bufSize    int
}

// render turns one score file into an audio file and, when player is set,
// plays it.
func render(ctx context.Context, opts options, player *playback.Player, filename string) error {
	s, err := score.Load(filename)
	if err != nil {
		return err
	}
	if s.SampleRate == 0 {
		s.SampleRate = opts.sampleRate
	}
	if s.Duration == 0 {
		s.Duration = opts.duration
	}

	tl, err := s.Timeline(rand.New(rand.NewPCG(opts.seed, opts.seed)))
	if err != nil {
		return err
	}
	samples, err := tl.Render()
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	log.Printf("%s: %d placements in %d intervals, %v",
		filename, len(s.Placements), len(tl.Intervals()), audcomp.Analyze(samples, tl.SampleRate()))

	out, rate := samples, tl.SampleRate()
	if opts.exportRate > 0 && opts.exportRate != rate {
		if out, err = audcomp.Resample(samples, rate, opts.exportRate); err != nil {
			return fmt.Errorf("resampling to %d Hz: %w", opts.exportRate, err)
		}
		rate = opts.exportRate
	}

	name, err := outputName(opts.outDir, filename, "")
	if err != nil {
		return err
	}
	path, err := audcomp.WriteFile(name, opts.format, rate, out)
	if err != nil {
		return err
	}
	log.Printf("wrote %s", path)

	if player != nil {
		if err := player.Play(ctx, samples, tl.SampleRate()); err != nil {
			return fmt.Errorf("playing: %w", err)
		}
	}
	return nil
}

// outputName returns the extensionless path for the output of filename,
// creating dir when needed. An empty dir keeps the input's directory.
func outputName(dir, filename, suffix string) (string, error) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + suffix

	if dir == "" {
		return filepath.Join(filepath.Dir(filename), base), nil
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("could not create output directory %v: %w", dir, err)
	}
	return filepath.Join(dir, base), nil
}

// expand lists the files named by param: param itself, or the files in
// the directory param whose extension is one of exts.
func expand(param string, exts []string) ([]string, error) {
	info, err := os.Stat(param)
	if err != nil || !info.IsDir() {
		return []string{param}, nil
	}

	entries, err := os.ReadDir(param)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(e.Name()), "."))
		if e.Type().IsRegular() && slices.Contains(exts, ext) {
			files = append(files, filepath.Join(param, e.Name()))
		}
	}
	return files, nil
}
