package game

import "math"

const (
	PaddleWidth         = 14.0
	DefaultPaddleHeight = 80.0
	MinPaddleHeight     = 28.0
	MaxPaddleHeight     = 160.0
	GrowCeiling         = 120.0 // Random growth never exceeds this
	DeformStep          = 7.0
	DeformLockTicks     = 48
	ShrinkEveryHits     = 3
	GrowChance          = 0.01
	PlayerX             = 32.0
	AIX                 = CanvasWidth - PlayerX - PaddleWidth
	BoardGap            = 44.0 // Vertical offset between AI board copies
)

type Paddle struct {
	X      float64 // fixed
	Y      float64 // top edge
	Height float64
}

// Center returns the vertical centre of the paddle
func (p *Paddle) Center() float64 {
	return p.Y + p.Height/2
}

// CenterIn places the paddle in the middle of a court of the given height
func (p *Paddle) CenterIn(courtHeight float64) {
	p.Y = (courtHeight - p.Height) / 2
}

// Clamp keeps the paddle inside [0, limit-Height]
func (p *Paddle) Clamp(limit float64) {
	p.Y = clampF(p.Y, 0, limit-p.Height)
}

// HitOffset returns where y lands on a paddle whose top is at top, from -1
// at the top edge through 0 at the centre to 1 at the bottom edge. Overlap
// with the ball's radius can push it slightly past ±1.
func (p *Paddle) HitOffset(top, y float64) float64 {
	half := p.Height / 2
	return (y - (top + half)) / half
}

// aiLimit is the lowest y the AI paddle's top may reach, leaving room for
// the extra boards below it.
func (g *Game) aiLimit() float64 {
	return CanvasHeight - float64(g.aiBoards-1)*BoardGap
}

// SetPointer moves the player paddle so it is centred on y. Ignored outside
// playing and paused, and for NaN.
func (g *Game) SetPointer(y float64) {
	if g.state != StatePlaying && g.state != StatePaused {
		return
	}
	if math.IsNaN(y) {
		return
	}
	g.player.Y = y - g.player.Height/2
	g.player.Clamp(CanvasHeight)
}

// deformPaddle shrinks the player paddle every few hits and occasionally
// grows it back, each locked out for a while after it fires.
func (g *Game) deformPaddle() {
	if g.shrinkLock > 0 {
		g.shrinkLock--
	}
	if g.growLock > 0 {
		g.growLock--
	}
	if g.hitCount > 0 && g.hitCount%ShrinkEveryHits == 0 &&
		g.player.Height > MinPaddleHeight && g.shrinkLock == 0 {
		g.player.Height -= DeformStep
		if g.player.Height < MinPaddleHeight {
			g.player.Height = MinPaddleHeight
		}
		g.shrinkLock = DeformLockTicks
	}
	if g.rng.Chance(GrowChance) && g.player.Height < GrowCeiling && g.growLock == 0 {
		g.player.Height += DeformStep
		if g.player.Height > GrowCeiling {
			g.player.Height = GrowCeiling
		}
		g.growLock = DeformLockTicks
	}
	g.player.Clamp(CanvasHeight)
}
