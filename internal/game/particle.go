package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleTrail
	ParticleImpact
	ParticlePaddle
	ParticleSplit
	ParticleTeleport
	ParticleTime
	ParticleWall
	ParticleSpawn
)

// Particle burst sizes per trigger
const (
	burstWall     = 5
	burstObstacle = 8
	burstPaddle   = 10
	burstSplit    = 15
	burstTeleport = 15
	burstSlowTime = 25
	burstWallUp   = 20
	burstSpawn    = 12
	trailChance   = 0.3
	particleDrag  = 0.98
)

// Fixed colour tags for ability bursts, outside the rotating palette
const (
	ColorTeleport = PaletteSize + iota
	ColorSlowTime
	ColorWall
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Kind    ParticleKind
	Color   int
}

func (g *Game) spawnParticle(x, y float64, color int, kind ParticleKind) {
	g.particles = append(g.particles, Particle{
		X:       x,
		Y:       y,
		VX:      g.rng.Between(-3, 3),
		VY:      g.rng.Between(-3, 3),
		Life:    g.rng.Between(30, 50),
		MaxLife: g.rng.Between(30, 50),
		Size:    g.rng.Between(1, 3),
		Kind:    kind,
		Color:   color,
	})
}

func (g *Game) burst(n int, x, y float64, color int, kind ParticleKind) {
	for i := 0; i < n; i++ {
		g.spawnParticle(x, y, color, kind)
	}
}

// updateParticles drifts and ages particles, dropping dead ones. Runs in
// every match state.
func (g *Game) updateParticles() {
	alive := g.particles[:0]
	for _, p := range g.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		p.VX *= particleDrag
		p.VY *= particleDrag
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	g.particles = alive
}

// Particles returns the live particles
func (g *Game) Particles() []Particle {
	return g.particles
}
