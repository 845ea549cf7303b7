package game

import "math"

const (
	BallSize       = 16.0
	ServeSpeed     = 3.5 // Slow first ball after every reset
	ServeBoost     = 1.0 // Extra serve speed per scaling level
	SpawnSpeedMin  = 6.0
	SpawnSpeedMax  = 8.0 // Plus one per AI power-up
	SpawnMaxVY     = 3.0
	MaxBounceSpeed = 17.0 // Horizontal cap after a paddle hit, before the scaling boost
)

type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  int
}

// Move advances the ball by its velocity scaled by factor
func (b *Ball) Move(factor float64) {
	b.X += b.VX * factor
	b.Y += b.VY * factor
}

// Half returns half of the ball's size, the distance from centre to edge
func (b *Ball) Half() float64 {
	return b.Size / 2
}

// Overlaps reports whether the ball's box intersects the rectangle
func (b *Ball) Overlaps(x, y, w, h float64) bool {
	half := b.Half()
	return b.X+half > x &&
		b.X-half < x+w &&
		b.Y+half > y &&
		b.Y-half < y+h
}

// Speed returns current speed
func (b *Ball) Speed() float64 {
	return math.Sqrt(b.VX*b.VX + b.VY*b.VY)
}

// newBall places a ball at the centre of the court. Served balls are slow;
// split and ability spawns launch faster and scale with AI power-ups.
func (g *Game) newBall(serve bool) Ball {
	boost := float64(g.scalingLevel) * ServeBoost
	speed := ServeSpeed + boost
	if !serve {
		speed = g.rng.Between(SpawnSpeedMin, SpawnSpeedMax+float64(g.powerUps)) + boost
	}
	return Ball{
		X:     CanvasWidth / 2,
		Y:     CanvasHeight / 2,
		VX:    g.rng.Sign() * speed,
		VY:    g.rng.Between(-SpawnMaxVY, SpawnMaxVY),
		Size:  BallSize,
		Color: g.rng.Index(PaletteSize),
	}
}

// lastBall is the most recently added ball. It is the AI's target and the
// scoring sentinel.
func (g *Game) lastBall() *Ball {
	return &g.balls[len(g.balls)-1]
}
