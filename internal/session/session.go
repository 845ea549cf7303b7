package session

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/protocol"
)

const inputBufferSize = 64

// Sink receives simulation events on the session goroutine. Implementations
// must not block.
type Sink interface {
	Handle(ev protocol.Event)
}

// SinkFunc adapts a function to a Sink
type SinkFunc func(ev protocol.Event)

// Handle calls f(ev)
func (f SinkFunc) Handle(ev protocol.Event) {
	f(ev)
}

// Session drives one game at the tick rate. Inputs are queued from any
// goroutine and applied at the start of the next tick; events go to the
// sinks and the newest snapshot is published after every tick.
type Session struct {
	game      *game.Game
	inputs    chan protocol.Input
	snapshots chan protocol.Snapshot
	sinks     []Sink
	logger    *log.Logger
	lastState protocol.MatchState
	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// New creates a session around g. A nil logger discards output.
func New(g *game.Game, logger *log.Logger, sinks ...Sink) *Session {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	s := &Session{
		game:      g,
		inputs:    make(chan protocol.Input, inputBufferSize),
		snapshots: make(chan protocol.Snapshot, 1),
		logger:    logger,
		lastState: g.State(),
		done:      make(chan struct{}),
	}
	for _, sink := range sinks {
		if sink != nil {
			s.sinks = append(s.sinks, sink)
		}
	}
	return s
}

// Send queues an input for the next tick (non-blocking)
func (s *Session) Send(in protocol.Input) {
	select {
	case s.inputs <- in:
	default:
		// Queue full, drop input
	}
}

// Snapshots delivers the newest snapshot. Unread snapshots are replaced, so
// a slow reader only ever sees the latest state.
func (s *Session) Snapshots() <-chan protocol.Snapshot {
	return s.snapshots
}

// Done is closed once the session stops
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Start runs the tick loop in its own goroutine. Later calls do nothing.
func (s *Session) Start() {
	s.startOnce.Do(func() {
		s.logger.Printf("session started at %d ticks/s", game.TickRate)
		s.publish()
		go s.loop()
	})
}

// Stop ends the tick loop. It is safe to call more than once.
func (s *Session) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
		s.logger.Printf("session stopped")
	})
}

// loop runs the game at 60Hz
func (s *Session) loop() {
	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step applies queued inputs, advances the game one tick, dispatches its
// events and publishes a snapshot. The tick loop calls it; tests call it
// directly instead of Start.
func (s *Session) Step() {
	s.drainInputs()
	s.game.Tick()

	for _, ev := range s.game.DrainEvents() {
		s.logEvent(ev)
		for _, sink := range s.sinks {
			sink.Handle(ev)
		}
	}

	if st := s.game.State(); st != s.lastState {
		s.logger.Printf("state %s -> %s", s.lastState, st)
		s.lastState = st
	}

	s.publish()
}

func (s *Session) drainInputs() {
	for {
		select {
		case in := <-s.inputs:
			if in.Kind == protocol.InputRestart {
				if s.game.RequestRestart() {
					s.logger.Printf("match restarted")
				}
				continue
			}
			s.game.Apply(in)
		default:
			return
		}
	}
}

func (s *Session) publish() {
	snap := s.game.Snapshot()
	select {
	case <-s.snapshots:
	default:
	}
	select {
	case s.snapshots <- snap:
	default:
	}
}

func (s *Session) logEvent(ev protocol.Event) {
	switch ev.Type {
	case protocol.EventScore:
		player, ai := s.game.Score()
		s.logger.Printf("%s scored, %d-%d", ev.Side, player, ai)
	case protocol.EventMatchWon:
		s.logger.Printf("match won by %s", ev.Side)
	case protocol.EventAbility:
		s.logger.Printf("ability %s fired", protocol.Ability(ev.Value))
	case protocol.EventBallSplit:
		s.logger.Printf("ball split, %d in play", ev.Value)
	}
}
