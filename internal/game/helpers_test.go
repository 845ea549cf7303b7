package game

import (
	"math"
	"testing"

	"github.com/diegok/neonpong/internal/protocol"
)

// seqSource cycles through fixed values so tests can predict every draw
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func fixed(v float64) *seqSource {
	return &seqSource{vals: []float64{v}}
}

// newPlaying returns a game already in play. With the default 0.5 source,
// Between returns the midpoint, Sign returns -1 and Chance(p<0.5) is false.
func newPlaying(t *testing.T) *Game {
	t.Helper()
	g := NewGame(fixed(0.5))
	g.state = StatePlaying
	g.DrainEvents()
	return g
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func countEvents(events []protocol.Event, typ protocol.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

func findEvent(events []protocol.Event, typ protocol.EventType) (protocol.Event, bool) {
	for _, ev := range events {
		if ev.Type == typ {
			return ev, true
		}
	}
	return protocol.Event{}, false
}
