package game

import "github.com/diegok/neonpong/internal/protocol"

// Ability timings, in ticks
const (
	TeleportCooldown  = 600
	SlowTimeCooldown  = 900
	WallCooldown      = 800
	ExtraBallCooldown = 1200

	SlowTimeFactor = 0.5
	SlowTimeLength = 240

	WallLength = 360
	WallWidth  = 16.0
	WallHeight = 160.0
	WallMargin = 40.0 // Keeps the obstacle off the top and bottom walls
)

var maxCooldowns = [protocol.AbilityCount]int{
	TeleportCooldown,
	SlowTimeCooldown,
	WallCooldown,
	ExtraBallCooldown,
}

// Flash lengths for the activation highlight
var flashLengths = [protocol.AbilityCount]int{40, 60, 1, 60}

type abilities struct {
	cooldowns [protocol.AbilityCount]int
	flashes   [protocol.AbilityCount]int

	slowActive bool
	slowTimer  int

	wallActive bool
	wallTimer  int
	wallY      float64
}

func (a *abilities) clear() {
	*a = abilities{}
}

func (a *abilities) states() [protocol.AbilityCount]protocol.AbilityState {
	var out [protocol.AbilityCount]protocol.AbilityState
	for i := range out {
		out[i] = protocol.AbilityState{
			Cooldown:    a.cooldowns[i],
			MaxCooldown: maxCooldowns[i],
			Flash:       a.flashes[i],
		}
	}
	out[protocol.AbilitySlowTime].Active = a.slowActive
	out[protocol.AbilityWall].Active = a.wallActive
	return out
}

func (a *abilities) wallState() protocol.WallState {
	return protocol.WallState{
		Active: a.wallActive,
		X:      wallX(),
		Y:      a.wallY,
		W:      WallWidth,
		H:      WallHeight,
	}
}

func wallX() float64 {
	return CanvasWidth/2 - WallWidth/2
}

// slowFactor scales ball and AI movement while slow time is active
func (g *Game) slowFactor() float64 {
	if g.abilities.slowActive {
		return SlowTimeFactor
	}
	return 1
}

// Activate triggers an ability. Requests outside playing, during cooldown
// or while the same effect is running are ignored. Reports whether the
// ability fired.
func (g *Game) Activate(ab protocol.Ability) bool {
	if g.state != StatePlaying || ab < 0 || ab >= protocol.AbilityCount {
		return false
	}
	a := &g.abilities
	if a.cooldowns[ab] > 0 {
		return false
	}

	switch ab {
	case protocol.AbilityTeleport:
		g.teleportAI()
	case protocol.AbilitySlowTime:
		if a.slowActive {
			return false
		}
		g.startSlowTime()
	case protocol.AbilityWall:
		if a.wallActive {
			return false
		}
		g.raiseWall()
	case protocol.AbilityExtraBall:
		// The cooldown is spent even when the ball cap blocks the spawn
		a.cooldowns[ab] = maxCooldowns[ab]
		if len(g.balls) >= BallsMax {
			return false
		}
		g.addExtraBall()
	}

	a.cooldowns[ab] = maxCooldowns[ab]
	a.flashes[ab] = flashLengths[ab]
	return true
}

func (g *Game) teleportAI() {
	g.ai.Y = g.rng.Between(0, g.aiLimit()-g.ai.Height)
	x := g.ai.X + PaddleWidth/2
	y := g.ai.Center()
	g.emit(protocol.Event{Type: protocol.EventAbility, Side: protocol.SidePlayer, X: x, Y: y, Value: int(protocol.AbilityTeleport)})
	g.burst(burstTeleport, x, y, ColorTeleport, ParticleTeleport)
}

func (g *Game) startSlowTime() {
	g.abilities.slowActive = true
	g.abilities.slowTimer = SlowTimeLength
	g.emit(protocol.Event{Type: protocol.EventAbility, Side: protocol.SidePlayer, X: CanvasWidth / 2, Y: CanvasHeight / 2, Value: int(protocol.AbilitySlowTime)})
	for i := 0; i < burstSlowTime; i++ {
		g.spawnParticle(g.rng.Between(0, CanvasWidth), g.rng.Between(0, CanvasHeight), ColorSlowTime, ParticleTime)
	}
}

func (g *Game) raiseWall() {
	a := &g.abilities
	a.wallActive = true
	a.wallTimer = WallLength
	a.wallY = g.rng.Between(WallMargin, CanvasHeight-WallHeight-WallMargin)
	y := a.wallY + WallHeight/2
	g.emit(protocol.Event{Type: protocol.EventAbility, Side: protocol.SidePlayer, X: CanvasWidth / 2, Y: y, Value: int(protocol.AbilityWall)})
	g.burst(burstWallUp, CanvasWidth/2, y, ColorWall, ParticleWall)
}

func (g *Game) addExtraBall() {
	b := g.newBall(false)
	b.VX *= g.rng.Sign()
	b.VY *= g.rng.Sign()
	g.balls = append(g.balls, b)
	g.emit(protocol.Event{Type: protocol.EventAbility, Side: protocol.SidePlayer, X: b.X, Y: b.Y, Value: int(protocol.AbilityExtraBall)})
	g.burst(burstSpawn, b.X, b.Y, b.Color, ParticleSpawn)
}

// updateAbilities counts down cooldowns and effect timers. Frozen outside
// playing.
func (g *Game) updateAbilities() {
	if g.state != StatePlaying {
		return
	}
	a := &g.abilities
	for i := range a.cooldowns {
		if a.cooldowns[i] > 0 {
			a.cooldowns[i]--
		}
		if a.flashes[i] > 0 {
			a.flashes[i]--
		}
	}
	if a.slowActive {
		a.slowTimer--
		if a.slowTimer <= 0 {
			a.slowActive = false
		}
	}
	if a.wallActive {
		a.wallTimer--
		if a.wallTimer <= 0 {
			a.wallActive = false
		}
	}
}

// Cooldown returns the remaining cooldown of an ability
func (g *Game) Cooldown(ab protocol.Ability) int {
	return g.abilities.cooldowns[ab]
}

// SlowTimeActive reports whether slow time is running
func (g *Game) SlowTimeActive() bool {
	return g.abilities.slowActive
}

// WallActive reports whether the obstacle is up
func (g *Game) WallActive() bool {
	return g.abilities.wallActive
}
