// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audcomp/audio"
)

const pollInterval = 50 * time.Millisecond

// Player plays mono buffers on the default audio device. oto allows a
// single context per process, so create one Player and reuse it.
type Player struct {
	ctx  *oto.Context
	rate int
}

// New opens the audio device at rate Hz and waits until it is ready.
func New(rate int) (*Player, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, rate: rate}, nil
}

// Play blocks until samples, recorded at rate Hz, have been played or ctx
// is done. Buffers at another rate than the device are resampled on the
// fly.
func (p *Player) Play(ctx context.Context, samples []float64, rate int) error {
	buf, err := audio.NewBufferSource(samples, rate)
	if err != nil {
		return err
	}

	var src audio.Source = buf
	if rate != p.rate {
		r, err := audio.NewResampler(buf, p.rate)
		if err != nil {
			return err
		}
		src = r
	}

	pl := p.ctx.NewPlayer(NewStream(src))
	defer pl.Close()
	pl.Play()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for pl.IsPlaying() {
		select {
		case <-ctx.Done():
			pl.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}

	if err := pl.Err(); err != nil {
		return fmt.Errorf("cannot play buffer: %w", err)
	}
	return nil
}
