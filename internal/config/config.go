// SPDX-License-Identifier: EPL-2.0

// Package config loads the command's defaults from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds runtime settings. Command line flags override them.
type Config struct {
	SampleRate   int    // composition rate for scores that name none
	OutputDir    string // where rendered files go, "" for next to the score
	ExportRate   int    // resample exports to this rate, 0 keeps the composition rate
	Format       string // export container: wav or aiff
	PlaybackRate int    // rate of the audio device context
	BufferSize   int    // samples per read when streaming
	Seed         uint64 // noise seed, 0 picks a random one
}

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	return Config{
		SampleRate:   envInt("AUDCOMP_SAMPLE_RATE", 44100),
		OutputDir:    envStr("AUDCOMP_OUTPUT_DIR", ""),
		ExportRate:   envInt("AUDCOMP_EXPORT_RATE", 0),
		Format:       envStr("AUDCOMP_FORMAT", "wav"),
		PlaybackRate: envInt("AUDCOMP_PLAYBACK_RATE", 44100),
		BufferSize:   envInt("AUDCOMP_BUFFER_SIZE", 4096),
		Seed:         envUint("AUDCOMP_SEED", 0),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
