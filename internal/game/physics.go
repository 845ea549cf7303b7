package game

import (
	"math"

	"github.com/diegok/neonpong/internal/protocol"
)

// Paddle hit response. The AI side's multipliers are a little larger than
// the player's; keep them as they are.
const (
	SplitEveryHits = 5
	HitSpinScale   = 6.0 // Vertical speed at the paddle edge
	HitSpinJitter  = 2.0
	HitSpinBoost   = 0.3 // Share of the scaling boost added to vertical speed
)

type bounceRange struct {
	speedLo, speedHi     float64
	perturbLo, perturbHi float64
}

var (
	playerBounce = bounceRange{speedLo: 1.14, speedHi: 1.21, perturbLo: 0.98, perturbHi: 1.07}
	aiBounce     = bounceRange{speedLo: 1.14, speedHi: 1.22, perturbLo: 0.99, perturbHi: 1.07}
)

// updateBalls runs one physics step for every ball, then splitting, paddle
// deformation and scoring. No-op outside playing.
func (g *Game) updateBalls() {
	if g.state != StatePlaying {
		return
	}

	g.recordTrail()

	factor := g.slowFactor()
	for i := range g.balls {
		b := &g.balls[i]
		if g.rng.Chance(trailChance) {
			g.spawnParticle(b.X, b.Y, b.Color, ParticleTrail)
		}
		b.Move(factor)
		g.bounceWalls(b)
		if g.abilities.wallActive {
			g.collideObstacle(b)
		}
		g.collidePlayer(i, b)
		g.collideAI(i, b)
	}

	g.splitBall()
	g.deformPaddle()
	g.checkScore()
}

func (g *Game) recordTrail() {
	frame := make([]Ball, len(g.balls))
	copy(frame, g.balls)
	g.trail = append([][]Ball{frame}, g.trail...)
	if len(g.trail) > TrailLength {
		g.trail = g.trail[:TrailLength]
	}
}

// bounceWalls reflects the ball off the top and bottom of the court with a
// little random spin.
func (g *Game) bounceWalls(b *Ball) {
	half := b.Half()
	var edge float64
	switch {
	case b.Y-half < 0:
		b.Y = half
		edge = 0
	case b.Y+half > CanvasHeight:
		b.Y = CanvasHeight - half
		edge = CanvasHeight
	default:
		return
	}
	b.VY *= -g.rng.Between(0.96, 1.05)
	b.VX *= g.rng.Between(0.97, 1.04)
	g.emit(protocol.Event{Type: protocol.EventWallImpact, X: b.X, Y: edge})
	g.burst(burstWall, b.X, edge, b.Color, ParticleImpact)
}

// collideObstacle pushes the ball out of the wall ability's rectangle on the
// side its centre is on.
func (g *Game) collideObstacle(b *Ball) {
	x := wallX()
	y := g.abilities.wallY
	if !b.Overlaps(x, y, WallWidth, WallHeight) {
		return
	}
	if b.X < x {
		b.X = x - b.Half()
	} else {
		b.X = x + WallWidth + b.Half()
	}
	b.VX *= -g.rng.Between(0.9, 1.08)
	b.VY *= g.rng.Between(0.97, 1.04)
	g.emit(protocol.Event{Type: protocol.EventObstacleImpact, X: b.X, Y: b.Y})
	g.burst(burstObstacle, b.X, b.Y, ColorWall, ParticleImpact)
}

func (g *Game) collidePlayer(idx int, b *Ball) {
	p := &g.player
	if !b.Overlaps(p.X, p.Y, PaddleWidth, p.Height) {
		return
	}
	b.X = p.X + PaddleWidth + b.Half()
	g.bounce(b, p.HitOffset(p.Y, b.Y), 1, playerBounce)
	b.Color = (idx + g.hitCount) % PaletteSize
	g.hitCount++
	g.emit(protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SidePlayer, X: p.X + PaddleWidth, Y: b.Y})
	g.burst(burstPaddle, p.X+PaddleWidth, b.Y, g.paddleColor(), ParticlePaddle)
}

// collideAI tests each AI board copy; a ball can hit more than one in a tick
func (g *Game) collideAI(idx int, b *Ball) {
	p := &g.ai
	for i := 0; i < g.aiBoards; i++ {
		top := p.Y + float64(i)*BoardGap
		if !b.Overlaps(p.X, top, PaddleWidth, p.Height) {
			continue
		}
		b.X = p.X - b.Half()
		g.bounce(b, p.HitOffset(top, b.Y), -1, aiBounce)
		b.Color = (idx + g.hitCount + 2 + i) % PaletteSize
		g.hitCount++
		g.emit(protocol.Event{Type: protocol.EventPaddleHit, Side: protocol.SideAI, X: p.X, Y: b.Y})
		g.burst(burstPaddle, p.X, b.Y, g.paddleColor(), ParticlePaddle)
	}
}

// bounce sends the ball away from a paddle in direction dir (+1 right, -1
// left). Horizontal speed grows with the scaling level up to a cap; vertical
// speed follows where the ball struck the paddle.
func (g *Game) bounce(b *Ball, offset, dir float64, r bounceRange) {
	boost := g.boost()
	speed := (math.Abs(b.VX) + boost) * g.rng.Between(r.speedLo, r.speedHi)
	limit := MaxBounceSpeed + boost
	if speed > limit {
		speed = limit
	}
	b.VX = dir * speed
	b.VY = HitSpinScale*offset + g.rng.Between(-HitSpinJitter, HitSpinJitter) + boost*HitSpinBoost
	b.VX *= g.rng.Between(r.perturbLo, r.perturbHi)
}

// splitBall clones the newest ball every few paddle hits while under the cap
func (g *Game) splitBall() {
	if g.hitCount == 0 || g.hitCount%SplitEveryHits != 0 || len(g.balls) >= BallsMax {
		return
	}
	base := *g.lastBall()
	clone := base
	clone.VX = -clone.VX * g.rng.Between(0.88, 1.12)
	clone.VY = -clone.VY * g.rng.Between(0.9, 1.1)
	clone.Size = BallSize * g.rng.Between(0.9, 1.1)
	clone.Color = len(g.balls) % PaletteSize
	g.balls = append(g.balls, clone)
	g.hitCount = 0
	g.emit(protocol.Event{Type: protocol.EventBallSplit, X: base.X, Y: base.Y, Value: len(g.balls)})
	g.burst(burstSplit, base.X, base.Y, base.Color, ParticleSplit)
}

// checkScore uses the newest ball as the out-of-bounds sentinel
func (g *Game) checkScore() {
	b := g.lastBall()
	switch {
	case b.X < 0:
		g.score(protocol.SideAI)
	case b.X > CanvasWidth:
		g.score(protocol.SidePlayer)
	}
}

func (g *Game) score(side protocol.Side) {
	scorer := &g.playerScore
	if side == protocol.SideAI {
		scorer = &g.aiScore
	}
	*scorer++
	g.updateDifficulty()
	g.emit(protocol.Event{Type: protocol.EventScore, Side: side, Value: *scorer})

	if *scorer >= WinScore {
		g.winner = side
		g.state = StateGameOver
		g.emit(protocol.Event{Type: protocol.EventMatchWon, Side: side})
	} else if side == protocol.SideAI {
		g.powerUps++
		g.updateDifficulty()
	}
	g.Reset(false)
}
