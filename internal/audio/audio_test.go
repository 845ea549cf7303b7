package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/neonpong/internal/protocol"
)

// drain streams s to the end, giving up after limit samples
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("stream did not end within %d samples", limit)
	return nil
}

func TestOscillator_Range(t *testing.T) {
	waves := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"triangle", WaveTriangle},
		{"square", WaveSquare},
		{"saw", WaveSaw},
	}

	for _, tt := range waves {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(440, tt.wave, 0.25, sampleRate)
			samples := make([][2]float64, 1000)
			n, ok := osc.Stream(samples)
			if !ok || n != len(samples) {
				t.Fatalf("expected an endless stream, got n=%d ok=%v", n, ok)
			}
			for i, s := range samples {
				if math.Abs(s[0]) > 0.25+1e-9 {
					t.Fatalf("sample %d out of range: %f", i, s[0])
				}
				if s[0] != s[1] {
					t.Fatalf("sample %d: expected mono, got %v", i, s)
				}
			}
		})
	}
}

func TestSample_Shapes(t *testing.T) {
	tests := []struct {
		wave  WaveType
		phase float64
		want  float64
	}{
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.25, 0},
		{WaveTriangle, 0.5, 1},
		{WaveTriangle, 0.75, 0},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveSaw, 0, -1},
		{WaveSaw, 0.5, 0},
		{WaveSine, 0.25, 1},
	}

	for _, tt := range tests {
		if got := sample(tt.wave, tt.phase); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wave %d at %v: expected %v, got %v", tt.wave, tt.phase, tt.want, got)
		}
	}
}

func TestCues(t *testing.T) {
	tests := []struct {
		name  string
		event protocol.Event
		freq  float64
		wave  WaveType
		count int
	}{
		{"player paddle", protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SidePlayer}, 350, WaveTriangle, 1},
		{"ai paddle", protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SideAI}, 600, WaveTriangle, 1},
		{"wall", protocol.Event{Type: protocol.EventWallImpact}, 1200, WaveSquare, 1},
		{"obstacle", protocol.Event{Type: protocol.EventObstacleImpact}, 1200, WaveSquare, 1},
		{"ball split", protocol.Event{Type: protocol.EventBallSplit}, 1200, WaveSquare, 1},
		{"player scores", protocol.Event{Type: protocol.EventScore, Side: protocol.SidePlayer}, 880, WaveSaw, 1},
		{"ai scores", protocol.Event{Type: protocol.EventScore, Side: protocol.SideAI}, 220, WaveSaw, 1},
		{"countdown 3", protocol.Event{Type: protocol.EventCountdown, Value: 3}, 520, WaveTriangle, 1},
		{"countdown go", protocol.Event{Type: protocol.EventCountdown, Value: 0}, 320, WaveTriangle, 1},
		{"pause", protocol.Event{Type: protocol.EventPause, Value: 1}, 320, WaveTriangle, 1},
		{"resume", protocol.Event{Type: protocol.EventPause, Value: 0}, 420, WaveTriangle, 1},
		{"ability", protocol.Event{Type: protocol.EventAbility}, 1600, WaveTriangle, 1},
		{"player wins", protocol.Event{Type: protocol.EventMatchWon, Side: protocol.SidePlayer}, 1300, WaveTriangle, 4},
		{"ai wins", protocol.Event{Type: protocol.EventMatchWon, Side: protocol.SideAI}, 170, WaveTriangle, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cues := Cues(tt.event)
			if len(cues) != tt.count {
				t.Fatalf("expected %d cues, got %d", tt.count, len(cues))
			}
			for _, c := range cues {
				if c.Freq != tt.freq {
					t.Errorf("expected %v Hz, got %v", tt.freq, c.Freq)
				}
				if c.Wave != tt.wave {
					t.Errorf("expected wave %d, got %d", tt.wave, c.Wave)
				}
			}
		})
	}
}

func TestCues_PaddlePan(t *testing.T) {
	player := Cues(protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SidePlayer})[0]
	ai := Cues(protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SideAI})[0]

	if player.Pan >= 0 {
		t.Errorf("expected player hits panned left, got %v", player.Pan)
	}
	if ai.Pan <= 0 {
		t.Errorf("expected AI hits panned right, got %v", ai.Pan)
	}
}

func TestCues_WinSpacing(t *testing.T) {
	cues := Cues(protocol.Event{Type: protocol.EventMatchWon, Side: protocol.SidePlayer})
	for i, c := range cues {
		// 70ms notes starting 80ms apart
		want := 10 * time.Millisecond
		if i == 0 {
			want = 0
		}
		if c.Delay != want {
			t.Errorf("note %d: expected delay %v, got %v", i, want, c.Delay)
		}
	}
}

func TestCues_SilentEvents(t *testing.T) {
	if cues := Cues(protocol.Event{Type: protocol.EventType(99)}); cues != nil {
		t.Errorf("expected unknown events to be silent, got %v", cues)
	}
}

func TestCue_StreamerLength(t *testing.T) {
	c := Cue{Freq: 440, Duration: 50 * time.Millisecond, Gain: 0.2, Wave: WaveSine}

	out := drain(t, c.Streamer(), sampleRate.N(time.Second))

	if len(out) != sampleRate.N(50*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", sampleRate.N(50*time.Millisecond), len(out))
	}
}

func TestCue_DelayIsSilent(t *testing.T) {
	c := Cue{Freq: 440, Duration: 20 * time.Millisecond, Gain: 0.2, Wave: WaveSquare, Delay: 10 * time.Millisecond}

	out := drain(t, c.Streamer(), sampleRate.N(time.Second))

	lead := sampleRate.N(10 * time.Millisecond)
	if len(out) != lead+sampleRate.N(20*time.Millisecond) {
		t.Fatalf("expected %d samples, got %d", lead+sampleRate.N(20*time.Millisecond), len(out))
	}
	for i := 0; i < lead; i++ {
		if out[i][0] != 0 || out[i][1] != 0 {
			t.Fatalf("expected silence at sample %d, got %v", i, out[i])
		}
	}
	if out[lead][0] == 0 {
		t.Error("expected the tone to start after the delay")
	}
}

func TestCue_PanFavoursOneSide(t *testing.T) {
	c := Cues(protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SidePlayer})[0]

	out := drain(t, c.Streamer(), sampleRate.N(time.Second))

	var left, right float64
	for _, s := range out {
		left += math.Abs(s[0])
		right += math.Abs(s[1])
	}
	if right >= left {
		t.Errorf("expected left-heavy output, got left %v right %v", left, right)
	}
}

func TestPlayer_Handle(t *testing.T) {
	var played []beep.Streamer
	p := &Player{volume: 1, play: func(s beep.Streamer) { played = append(played, s) }}

	p.Handle(protocol.Event{Type: protocol.EventWallImpact})
	p.Handle(protocol.Event{Type: protocol.EventType(99)})

	if len(played) != 1 {
		t.Fatalf("expected 1 sound played, got %d", len(played))
	}
	out := drain(t, played[0], sampleRate.N(time.Second))
	if len(out) != sampleRate.N(30*time.Millisecond) {
		t.Errorf("expected %d samples, got %d", sampleRate.N(30*time.Millisecond), len(out))
	}
}

func TestPlayer_WinJingleLength(t *testing.T) {
	p := NewPlayer(1)

	s := p.Streamer(protocol.Event{Type: protocol.EventMatchWon, Side: protocol.SideAI})
	out := drain(t, s, sampleRate.N(2*time.Second))

	want := 4*sampleRate.N(70*time.Millisecond) + 3*sampleRate.N(10*time.Millisecond)
	if len(out) != want {
		t.Errorf("expected %d samples, got %d", want, len(out))
	}
}

func TestPlayer_Volume(t *testing.T) {
	full := NewPlayer(1).Streamer(protocol.Event{Type: protocol.EventWallImpact})
	half := NewPlayer(0.5).Streamer(protocol.Event{Type: protocol.EventWallImpact})

	a := drain(t, full, sampleRate.N(time.Second))
	b := drain(t, half, sampleRate.N(time.Second))

	if len(a) != len(b) {
		t.Fatalf("expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if math.Abs(b[i][0]-a[i][0]*0.5) > 1e-9 {
			t.Fatalf("sample %d: expected %v, got %v", i, a[i][0]*0.5, b[i][0])
		}
	}
}

func TestPlayer_SilentWhenMutedOrNil(t *testing.T) {
	called := false
	p := &Player{volume: 0, play: func(beep.Streamer) { called = true }}
	p.Handle(protocol.Event{Type: protocol.EventWallImpact})
	if called {
		t.Error("expected no sound at volume 0")
	}

	var nilPlayer *Player
	nilPlayer.Handle(protocol.Event{Type: protocol.EventWallImpact})
}

func TestPlayer_WithoutSpeaker(t *testing.T) {
	if Ready() {
		t.Skip("speaker initialised by another test")
	}
	// Must not panic or block without Init
	NewPlayer(1).Handle(protocol.Event{Type: protocol.EventScore, Side: protocol.SidePlayer})
}
