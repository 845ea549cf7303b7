package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"

	"github.com/diegok/neonpong/internal/protocol"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	mu          sync.Mutex
	initialized bool
)

// Init initializes the audio system
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// Ready reports whether Init succeeded and Close has not been called
func Ready() bool {
	mu.Lock()
	defer mu.Unlock()
	return initialized
}

func speakerPlay(s beep.Streamer) {
	if !Ready() {
		return
	}
	speaker.Play(s)
}

// Player turns simulation events into sounds. Without an initialized
// speaker it does nothing, so the game works without sound.
type Player struct {
	volume float64
	play   func(beep.Streamer)
}

// NewPlayer returns a player at the given volume in [0, 1]
func NewPlayer(volume float64) *Player {
	return &Player{volume: volume, play: speakerPlay}
}

// Handle plays the cues for ev
func (p *Player) Handle(ev protocol.Event) {
	if p == nil || p.volume <= 0 {
		return
	}
	s := p.Streamer(ev)
	if s == nil {
		return
	}
	p.play(s)
}

// Streamer chains the cues for ev into one stream scaled by the player's
// volume. It returns nil for silent events.
func (p *Player) Streamer(ev protocol.Event) beep.Streamer {
	cues := Cues(ev)
	if len(cues) == 0 {
		return nil
	}
	streams := make([]beep.Streamer, len(cues))
	for i, c := range cues {
		streams[i] = c.Streamer()
	}
	return &effects.Gain{Streamer: beep.Seq(streams...), Gain: p.volume - 1}
}
