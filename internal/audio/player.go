// Package audio plays the collision ping. Audio is optional: when the
// speaker cannot be initialized every call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	pingFreq     = 880.0
	pingDuration = 50 * time.Millisecond
)

// Player is fire-and-forget: Ping never blocks the tick.
type Player struct {
	mu          sync.Mutex
	initialized bool
	mixer       *beep.Mixer
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Calling it twice is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

func (p *Player) Ping() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	tone, err := generators.SineTone(sampleRate, pingFreq)
	if err != nil {
		return
	}
	streamer := beep.Take(sampleRate.N(pingDuration), tone)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
