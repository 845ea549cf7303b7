package game

import (
	"github.com/diegok/neonpong/internal/protocol"
)

// Constants for game state management
const (
	TickRate     = 60 // Ticks per second
	CanvasWidth  = 760.0
	CanvasHeight = 420.0
	WinScore     = 3
	BallsMax     = 5
	TrailLength  = 15 // Frames of ball history kept for trails
)

// Aliases so callers of the core need not import protocol for the state enum
const (
	StateReady     = protocol.StateReady
	StateCountdown = protocol.StateCountdown
	StatePlaying   = protocol.StatePlaying
	StatePaused    = protocol.StatePaused
	StateGameOver  = protocol.StateGameOver
)

// Game owns the complete simulation state. It is not safe for concurrent
// use; a single goroutine drives Tick and applies input between ticks.
type Game struct {
	rng   *Rand
	frame int

	state           protocol.MatchState
	countdown       int
	countdownFrames int
	winner          protocol.Side

	playerScore int
	aiScore     int

	balls []Ball
	trail [][]Ball

	player Paddle
	ai     Paddle

	// Difficulty
	scalingLevel int
	powerUps     int
	aiBoards     int
	aiSpeed      float64
	aiFrame      int

	hitCount   int
	shrinkLock int
	growLock   int

	abilities abilities

	particles []Particle
	palette   int

	events []protocol.Event
}

// NewGame creates a game in the ready state. A nil source uses a
// time-seeded generator.
func NewGame(src Source) *Game {
	g := &Game{
		rng:    NewRand(src),
		player: Paddle{X: PlayerX, Height: DefaultPaddleHeight},
		ai:     Paddle{X: AIX, Height: BaseAIPaddleHeight},
	}
	g.Reset(true)
	return g
}

// Tick advances the simulation by one frame
func (g *Game) Tick() {
	g.frame++
	g.updatePalette()
	g.updateCountdown()
	g.updateDifficulty()
	g.updateAI()
	g.updateBalls()
	g.updateAbilities()
	g.updateParticles()
}

// DrainEvents returns the events emitted since the last drain
func (g *Game) DrainEvents() []protocol.Event {
	if len(g.events) == 0 {
		return nil
	}
	out := g.events
	g.events = nil
	return out
}

func (g *Game) emit(ev protocol.Event) {
	g.events = append(g.events, ev)
}

// State returns the current match state
func (g *Game) State() protocol.MatchState {
	return g.state
}

// Winner returns the side that won the match, or SideNone
func (g *Game) Winner() protocol.Side {
	return g.winner
}

// Score returns the player and AI scores
func (g *Game) Score() (player, ai int) {
	return g.playerScore, g.aiScore
}

// BallCount returns how many balls are in play
func (g *Game) BallCount() int {
	return len(g.balls)
}

// Frame returns the number of ticks run so far
func (g *Game) Frame() int {
	return g.frame
}

// Snapshot converts to the read-only view consumed by renderers
func (g *Game) Snapshot() protocol.Snapshot {
	balls := make([]protocol.BallState, len(g.balls))
	for i, b := range g.balls {
		balls[i] = ballState(b)
	}

	trail := make([][]protocol.BallState, len(g.trail))
	for i, frame := range g.trail {
		trail[i] = make([]protocol.BallState, len(frame))
		for j, b := range frame {
			trail[i][j] = ballState(b)
		}
	}

	particles := make([]protocol.ParticleState, len(g.particles))
	for i, p := range g.particles {
		particles[i] = protocol.ParticleState{
			X:       p.X,
			Y:       p.Y,
			Life:    p.Life,
			MaxLife: p.MaxLife,
			Size:    p.Size,
			Color:   p.Color,
		}
	}

	return protocol.Snapshot{
		Tick:         g.frame,
		Width:        CanvasWidth,
		Height:       CanvasHeight,
		State:        g.state,
		PlayerScore:  g.playerScore,
		AIScore:      g.aiScore,
		WinScore:     WinScore,
		Countdown:    g.countdown,
		Winner:       g.winner,
		Balls:        balls,
		Trail:        trail,
		Player:       paddleState(g.player),
		AI:           paddleState(g.ai),
		AIBoards:     g.aiBoards,
		BoardGap:     BoardGap,
		Abilities:    g.abilities.states(),
		SlowTime:     g.abilities.slowActive,
		Wall:         g.abilities.wallState(),
		HitCount:     g.hitCount,
		ScalingLevel: g.scalingLevel,
		PowerUps:     g.powerUps,
		Particles:    particles,
		Palette:      g.palette,
		PaddleColor:  g.paddleColor(),
		NetColor:     g.netColor(),
	}
}

func ballState(b Ball) protocol.BallState {
	return protocol.BallState{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY, Size: b.Size, Color: b.Color}
}

func paddleState(p Paddle) protocol.PaddleState {
	return protocol.PaddleState{X: p.X, Y: p.Y, Width: PaddleWidth, Height: p.Height}
}
