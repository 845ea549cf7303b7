package audio

import (
	"math"

	"github.com/gopxl/beep/v2"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveTriangle
	WaveSquare
	WaveSaw
)

// oscillator is an endless periodic wave; wrap it in beep.Take to bound it
type oscillator struct {
	freq  float64
	phase float64
	gain  float64
	wave  WaveType
	rate  beep.SampleRate
}

// NewOscillator creates an endless oscillator with peak amplitude gain
func NewOscillator(freq float64, wave WaveType, gain float64, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, gain: gain, wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := o.gain * sample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// sample returns the unit wave value at phase in [0, 1)
func sample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveTriangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	}
	return math.Sin(2 * math.Pi * phase)
}
