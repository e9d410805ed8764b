// SPDX-License-Identifier: EPL-2.0

package score

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ik5/audcomp/signal"
	"github.com/ik5/audcomp/timeline"
)

// Columns lists the fields of a placement row, in their canonical order.
var Columns = []string{"wave", "frequency", "amplitude", "start", "duration"}

// Placement is one row of a score. It maps to a single Timeline.Place call.
type Placement struct {
	Wave      string  `yaml:"wave"`
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Start     float64 `yaml:"start"`
	Duration  float64 `yaml:"duration"`
}

// Score is a list of placements plus the timeline they go on. A zero
// Duration means "until the last placement ends" and a zero SampleRate
// means timeline.DefaultSampleRate.
type Score struct {
	Duration   float64     `yaml:"duration"`
	SampleRate int         `yaml:"sample_rate"`
	Placements []Placement `yaml:"placements"`
	Data       *Data       `yaml:"data"`
}

// Load reads a score file. Files ending in .csv are read as tables,
// anything else as YAML or JSON. The file named by a data section is
// resolved relative to the directory of the score.
func Load(path string) (*Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *Score
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		s, err = DecodeCSV(f)
	} else {
		s, err = Decode(f)
	}
	if err == nil {
		err = s.LoadData(filepath.Dir(path))
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode reads a YAML document. JSON is accepted as well since it is a
// subset of YAML.
func Decode(r io.Reader) (*Score, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Score
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScore
		}
		return nil, fmt.Errorf("decoding score: %w", err)
	}
	return &s, nil
}

// DecodeCSV reads a table whose header names the placement columns in any
// order. Column names are case-insensitive and extra columns are ignored.
func DecodeCSV(r io.Reader) (*Score, error) {
	cr, index, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	cols, err := lookupColumns(index, Columns...)
	if err != nil {
		return nil, err
	}

	s := &Score{}
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidRow, row, err)
		}

		p, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidRow, row, err)
		}
		s.Placements = append(s.Placements, p)
	}

	return s, nil
}

// readHeader starts a CSV table and returns its reader along with the
// lowercased column names mapped to their positions.
func readHeader(r io.Reader) (*csv.Reader, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyScore
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cr, index, nil
}

func lookupColumns(index map[string]int, names ...string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		col, ok := index[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		cols[i] = col
	}
	return cols, nil
}

func parseRecord(record []string, cols []int) (Placement, error) {
	var nums [4]float64
	for i := range nums {
		field := strings.TrimSpace(record[cols[i+1]])
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return Placement{}, fmt.Errorf("column %s: %w", Columns[i+1], err)
		}
		nums[i] = v
	}

	return Placement{
		Wave:      strings.TrimSpace(record[cols[0]]),
		Frequency: nums[0],
		Amplitude: nums[1],
		Start:     nums[2],
		Duration:  nums[3],
	}, nil
}

// End returns the time at which the last placement stops sounding.
func (s *Score) End() float64 {
	var end float64
	for _, p := range s.Placements {
		end = max(end, p.Start+p.Duration)
	}
	return end
}

// Timeline creates a timeline sized for s and places every row on it.
// Noise placements draw from rng, or from the global source when rng is
// nil.
func (s *Score) Timeline(rng *rand.Rand) (*timeline.Timeline, error) {
	rate := s.SampleRate
	if rate == 0 {
		rate = timeline.DefaultSampleRate
	}
	duration := s.Duration
	if duration == 0 {
		duration = s.End()
	}

	tl, err := timeline.NewWithRand(duration, rate, rng)
	if err != nil {
		return nil, fmt.Errorf("creating timeline: %w", err)
	}
	if err := s.Apply(tl); err != nil {
		return nil, err
	}
	return tl, nil
}

// Apply places every row of s on tl, in order. It stops at the first row
// that fails.
func (s *Score) Apply(tl *timeline.Timeline) error {
	for i, p := range s.Placements {
		wave, err := signal.ParseWave(p.Wave)
		if err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
		if err := tl.Place(wave, p.Frequency, p.Amplitude, p.Start, p.Duration); err != nil {
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
	}
	return nil
}
