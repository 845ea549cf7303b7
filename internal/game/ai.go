package game

// AI tracking constants
const (
	AIResampleTicks   = 24
	AIJitterMin       = 1.0
	AIJitterMax       = 4.0 // Plus one per power-up
	AIInaccuracy      = 6.0
	AIFocusPerPowerUp = 0.28
	AIFocusPerLevel   = 0.1
)

// updateAI moves the AI paddle toward the newest ball. Aim error shrinks as
// difficulty rises and speed gets a random kick every few ticks on top of
// the scaler's value.
func (g *Game) updateAI() {
	if g.state != StatePlaying {
		return
	}

	// The jitter lasts one tick: the next difficulty recompute restores the
	// scaler's speed before the AI moves again.
	if g.aiFrame%AIResampleTicks == 0 {
		jitter := g.rng.Between(AIJitterMin, AIJitterMax+float64(g.powerUps))
		g.aiSpeed = baseAISpeed(g.scalingLevel, g.powerUps) + jitter
		if g.aiSpeed > MaxAISpeed {
			g.aiSpeed = MaxAISpeed
		}
	}
	g.aiFrame++

	focus := 1 + float64(g.powerUps)*AIFocusPerPowerUp + float64(g.scalingLevel)*AIFocusPerLevel
	inaccuracy := g.rng.Between(-AIInaccuracy, AIInaccuracy) / focus
	speed := g.aiSpeed * g.slowFactor()

	targetY := g.lastBall().Y + inaccuracy - g.ai.Height/2
	if g.ai.Y < targetY {
		g.ai.Y += speed
		if g.ai.Y > targetY {
			g.ai.Y = targetY
		}
	} else if g.ai.Y > targetY {
		g.ai.Y -= speed
		if g.ai.Y < targetY {
			g.ai.Y = targetY
		}
	}
	g.ai.Clamp(g.aiLimit())
}

// AISpeed returns the AI paddle's current speed before slow time
func (g *Game) AISpeed() float64 {
	return g.aiSpeed
}
