package game

import "github.com/diegok/neonpong/internal/protocol"

const (
	CountdownFrom  = 3
	CountdownTicks = TickRate // One step per second
)

// Reset restores paddles, balls and per-round counters. A full reset also
// clears scores, difficulty and abilities and returns to ready; otherwise the
// next round's countdown starts, unless the match has just ended.
func (g *Game) Reset(full bool) {
	if full {
		g.playerScore = 0
		g.aiScore = 0
		g.winner = protocol.SideNone
		g.powerUps = 0
		g.aiBoards = 1
		g.scalingLevel = 0
		g.abilities.clear()
		g.state = StateReady
		g.countdown = CountdownFrom
		g.countdownFrames = 0
	} else if g.state != StateGameOver {
		g.beginCountdown()
	}

	g.updateDifficulty()
	g.player.Height = DefaultPaddleHeight
	g.player.CenterIn(CanvasHeight)
	g.ai.CenterIn(CanvasHeight)
	g.ai.Clamp(g.aiLimit())
	g.balls = []Ball{g.newBall(true)}
	g.trail = nil
	g.particles = nil
	g.hitCount = 0
	g.shrinkLock = 0
	g.growLock = 0
	g.aiFrame = 0
}

func (g *Game) beginCountdown() {
	g.state = StateCountdown
	g.countdown = CountdownFrom
	g.countdownFrames = 0
	g.emit(protocol.Event{Type: protocol.EventCountdown, Value: CountdownFrom})
}

// updateCountdown steps 3, 2, 1 once per second and starts play at 0
func (g *Game) updateCountdown() {
	if g.state != StateCountdown {
		return
	}
	g.countdownFrames++
	if g.countdownFrames < CountdownTicks {
		return
	}
	g.countdownFrames = 0
	g.countdown--
	if g.countdown > 0 {
		g.emit(protocol.Event{Type: protocol.EventCountdown, Value: g.countdown})
		return
	}
	g.countdown = 0
	g.state = StatePlaying
	g.emit(protocol.Event{Type: protocol.EventCountdown, Value: 0})
}

// Press handles a discrete key. Start begins the countdown from ready and
// otherwise acts as the pause control, matching a single start/pause button.
func (g *Game) Press(key protocol.Key) {
	switch key {
	case protocol.KeyStart:
		if g.state == StateReady {
			g.beginCountdown()
			return
		}
		g.TogglePause()
	case protocol.KeyPause:
		g.TogglePause()
	case protocol.KeyTeleport:
		g.Activate(protocol.AbilityTeleport)
	case protocol.KeySlowTime:
		g.Activate(protocol.AbilitySlowTime)
	case protocol.KeyWall:
		g.Activate(protocol.AbilityWall)
	case protocol.KeyExtraBall:
		g.Activate(protocol.AbilityExtraBall)
	}
}

// TogglePause switches between playing and paused. Other states ignore it.
func (g *Game) TogglePause() {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.emit(protocol.Event{Type: protocol.EventPause, Value: 1})
	case StatePaused:
		g.state = StatePlaying
		g.emit(protocol.Event{Type: protocol.EventPause, Value: 0})
	case StateReady, StateCountdown, StateGameOver:
	}
}

// RequestRestart starts a fresh match after game over. Reports whether the
// request was accepted.
func (g *Game) RequestRestart() bool {
	if g.state != StateGameOver {
		return false
	}
	g.Reset(true)
	return true
}

// Apply routes one input from the front end
func (g *Game) Apply(in protocol.Input) {
	switch in.Kind {
	case protocol.InputPointer:
		g.SetPointer(in.Y)
	case protocol.InputKey:
		g.Press(in.Key)
	case protocol.InputRestart:
		g.RequestRestart()
	}
}
