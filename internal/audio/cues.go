package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"

	"github.com/diegok/neonpong/internal/protocol"
)

// Cue is one short tone, optionally delayed and panned
type Cue struct {
	Freq     float64
	Duration time.Duration
	Gain     float64
	Wave     WaveType
	Pan      float64       // -1 left, 1 right
	Delay    time.Duration // Silence before the tone
}

// Streamer renders the cue: Delay of silence, then the tone
func (c Cue) Streamer() beep.Streamer {
	var s beep.Streamer = beep.Take(sampleRate.N(c.Duration), NewOscillator(c.Freq, c.Wave, c.Gain, sampleRate))
	if c.Pan != 0 {
		s = &effects.Pan{Streamer: s, Pan: c.Pan}
	}
	if c.Delay > 0 {
		s = beep.Seq(beep.Silence(sampleRate.N(c.Delay)), s)
	}
	return s
}

const (
	winNotes    = 4
	winNote     = 70 * time.Millisecond
	winInterval = 80 * time.Millisecond // Note start to note start
)

func countdownCue(n int) Cue {
	return Cue{Freq: 220 + float64(n)*100, Duration: 120 * time.Millisecond, Gain: 0.18, Wave: WaveTriangle}
}

// Cues maps a simulation event to the tones it should play back to back.
func Cues(ev protocol.Event) []Cue {
	switch ev.Type {
	case protocol.EventPaddleHit:
		if ev.Side == protocol.SidePlayer {
			return []Cue{{Freq: 350, Duration: 50 * time.Millisecond, Gain: 0.18, Wave: WaveTriangle, Pan: -0.8}}
		}
		return []Cue{{Freq: 600, Duration: 50 * time.Millisecond, Gain: 0.18, Wave: WaveTriangle, Pan: 0.8}}

	case protocol.EventWallImpact, protocol.EventObstacleImpact, protocol.EventBallSplit:
		return []Cue{{Freq: 1200, Duration: 30 * time.Millisecond, Gain: 0.12, Wave: WaveSquare}}

	case protocol.EventScore:
		freq := 220.0
		if ev.Side == protocol.SidePlayer {
			freq = 880
		}
		return []Cue{{Freq: freq, Duration: 170 * time.Millisecond, Gain: 0.22, Wave: WaveSaw}}

	case protocol.EventCountdown:
		// "Go" reuses the lowest step
		if ev.Value <= 0 {
			return []Cue{countdownCue(1)}
		}
		return []Cue{countdownCue(ev.Value)}

	case protocol.EventPause:
		if ev.Value == 1 {
			return []Cue{countdownCue(1)}
		}
		return []Cue{countdownCue(2)}

	case protocol.EventAbility:
		return []Cue{{Freq: 1600, Duration: 80 * time.Millisecond, Gain: 0.16, Wave: WaveTriangle}}

	case protocol.EventMatchWon:
		freq := 170.0
		if ev.Side == protocol.SidePlayer {
			freq = 1300
		}
		cues := make([]Cue, winNotes)
		for i := range cues {
			cues[i] = Cue{Freq: freq, Duration: winNote, Gain: 0.22, Wave: WaveTriangle}
			if i > 0 {
				cues[i].Delay = winInterval - winNote
			}
		}
		return cues
	}
	return nil
}
