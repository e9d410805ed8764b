// SPDX-License-Identifier: EPL-2.0

package score

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/viterin/vek"
)

var timeLayouts = []string{time.RFC3339Nano, time.DateTime, time.DateOnly}

// Data turns the rows of a CSV table into placements, one per row, by
// rescaling data columns onto sound parameters.
type Data struct {
	File string `yaml:"file"`
	Wave string `yaml:"wave"`

	// FrequencyColumn, when set, is spread over [FrequencyLow,
	// FrequencyHigh]. Otherwise every row sounds at Frequency.
	FrequencyColumn string  `yaml:"frequency_column"`
	FrequencyLow    float64 `yaml:"frequency_low"`
	FrequencyHigh   float64 `yaml:"frequency_high"`
	Frequency       float64 `yaml:"frequency"`

	// AmplitudeColumn, when set, is spread over [0, 1]. Otherwise every row
	// uses Amplitude, with zero meaning full scale.
	AmplitudeColumn string  `yaml:"amplitude_column"`
	Amplitude       float64 `yaml:"amplitude"`

	// TimeColumn holds timestamps (seconds, RFC 3339, "2006-01-02 15:04:05"
	// or "2006-01-02") spread over [0, Length] seconds. Without it the rows
	// play back to back.
	TimeColumn string  `yaml:"time_column"`
	Length     float64 `yaml:"length"`

	NoteDuration float64 `yaml:"note_duration"`
}

// Validate checks that d describes a usable mapping.
func (d *Data) Validate() error {
	switch {
	case strings.TrimSpace(d.Wave) == "":
		return fmt.Errorf("%w: wave is required", ErrInvalidData)
	case d.NoteDuration <= 0:
		return fmt.Errorf("%w: note duration %v must be positive", ErrInvalidData, d.NoteDuration)
	case d.FrequencyColumn != "" && (d.FrequencyLow <= 0 || d.FrequencyHigh <= 0):
		return fmt.Errorf("%w: frequency range [%v, %v] must be positive", ErrInvalidData, d.FrequencyLow, d.FrequencyHigh)
	case d.FrequencyColumn == "" && d.Frequency <= 0:
		return fmt.Errorf("%w: frequency or frequency column is required", ErrInvalidData)
	case d.TimeColumn != "" && d.Length <= 0:
		return fmt.Errorf("%w: length %v must be positive with a time column", ErrInvalidData, d.Length)
	}
	return nil
}

// Placements reads a data table and maps every row to a placement.
func (d *Data) Placements(r io.Reader) ([]Placement, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	cr, index, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range []string{d.FrequencyColumn, d.AmplitudeColumn, d.TimeColumn} {
		if name != "" {
			names = append(names, name)
		}
	}
	cols, err := lookupColumns(index, names...)
	if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(names))
	for i, name := range names {
		col[name] = cols[i]
	}

	var freqs, amps []float64
	var times []time.Time
	rows := 0
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidRow, row, err)
		}

		if d.FrequencyColumn != "" {
			v, err := parseNumber(record, col[d.FrequencyColumn], d.FrequencyColumn)
			if err != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidRow, row, err)
			}
			freqs = append(freqs, v)
		}
		if d.AmplitudeColumn != "" {
			v, err := parseNumber(record, col[d.AmplitudeColumn], d.AmplitudeColumn)
			if err != nil {
				return nil, fmt.Errorf("%w %d: %w", ErrInvalidRow, row, err)
			}
			amps = append(amps, v)
		}
		if d.TimeColumn != "" {
			v, err := parseTime(strings.TrimSpace(record[col[d.TimeColumn]]))
			if err != nil {
				return nil, fmt.Errorf("%w %d: column %s: %w", ErrInvalidRow, row, d.TimeColumn, err)
			}
			times = append(times, v)
		}
		rows++
	}

	return d.place(rows, freqs, amps, times), nil
}

func (d *Data) place(n int, freqs, amps []float64, times []time.Time) []Placement {
	if n == 0 {
		return nil
	}

	if d.FrequencyColumn != "" {
		freqs = ToFrequency(freqs, d.FrequencyLow, d.FrequencyHigh)
	} else {
		freqs = vek.Repeat(d.Frequency, n)
	}

	if d.AmplitudeColumn != "" {
		amps = ToAmplitude(amps)
	} else {
		amp := d.Amplitude
		if amp == 0 {
			amp = 1
		}
		amps = vek.Repeat(amp, n)
	}

	var starts []float64
	if d.TimeColumn != "" {
		starts = ToStarts(times, d.Length)
	} else {
		starts = make([]float64, n)
		for i := range starts {
			starts[i] = float64(i) * d.NoteDuration
		}
	}

	placements := make([]Placement, n)
	for i := range placements {
		placements[i] = Placement{
			Wave:      d.Wave,
			Frequency: freqs[i],
			Amplitude: amps[i],
			Start:     starts[i],
			Duration:  d.NoteDuration,
		}
	}
	return placements
}

// LoadData reads the table named by the data section of s, if any, and
// appends its placements. Relative file names are resolved against dir.
func (s *Score) LoadData(dir string) error {
	if s.Data == nil {
		return nil
	}
	if s.Data.File == "" {
		return fmt.Errorf("%w: file is required", ErrInvalidData)
	}

	path := s.Data.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	placements, err := s.Data.Placements(f)
	if err != nil {
		return fmt.Errorf("data %s: %w", s.Data.File, err)
	}
	s.Placements = append(s.Placements, placements...)
	return nil
}

func parseNumber(record []string, col int, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", name, err)
	}
	return v, nil
}

func parseTime(field string) (time.Time, error) {
	if secs, err := strconv.ParseFloat(field, 64); err == nil {
		return time.Unix(0, int64(secs*float64(time.Second))).UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, field); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", field)
}
