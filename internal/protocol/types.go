package protocol

// MatchState is the phase of a match
type MatchState int

const (
	StateReady MatchState = iota
	StateCountdown
	StatePlaying
	StatePaused
	StateGameOver
)

func (s MatchState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// Side identifies which paddle an event or score belongs to
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideAI
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "none"
}

// Key is a discrete control forwarded by the front end
type Key int

const (
	KeyNone Key = iota
	KeyStart
	KeyPause
	KeyTeleport
	KeySlowTime
	KeyWall
	KeyExtraBall
)

// Ability identifies one of the four timed abilities
type Ability int

const (
	AbilityTeleport Ability = iota
	AbilitySlowTime
	AbilityWall
	AbilityExtraBall
	AbilityCount
)

func (a Ability) String() string {
	switch a {
	case AbilityTeleport:
		return "teleport"
	case AbilitySlowTime:
		return "slow-time"
	case AbilityWall:
		return "wall"
	case AbilityExtraBall:
		return "extra-ball"
	}
	return "unknown"
}

// InputKind tells which field of an Input is meaningful
type InputKind int

const (
	InputPointer InputKind = iota
	InputKey
	InputRestart
)

// Input is a single event delivered between ticks
type Input struct {
	Kind InputKind
	Y    float64 // pointer position in canvas coordinates
	Key  Key
}

// EventType identifies a transient simulation event
type EventType int

const (
	EventWallImpact EventType = iota
	EventObstacleImpact
	EventPaddleHit
	EventScore
	EventAbility
	EventBallSplit
	EventMatchWon
	EventCountdown
	EventPause
)

func (e EventType) String() string {
	switch e {
	case EventWallImpact:
		return "wall-impact"
	case EventObstacleImpact:
		return "obstacle-impact"
	case EventPaddleHit:
		return "paddle-hit"
	case EventScore:
		return "score"
	case EventAbility:
		return "ability"
	case EventBallSplit:
		return "ball-split"
	case EventMatchWon:
		return "match-won"
	case EventCountdown:
		return "countdown"
	case EventPause:
		return "pause"
	}
	return "unknown"
}

// Event is emitted by the simulation for audio and particle collaborators.
// Value carries the countdown number, the ability index or 1/0 for
// paused/resumed depending on Type.
type Event struct {
	Type  EventType
	Side  Side
	X, Y  float64
	Value int
}

// BallState represents a ball's position and velocity
type BallState struct {
	X     float64
	Y     float64
	VX    float64
	VY    float64
	Size  float64
	Color int
}

// PaddleState represents a paddle's state
type PaddleState struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// AbilityState represents one ability's timers
type AbilityState struct {
	Cooldown    int
	MaxCooldown int
	Flash       int
	Active      bool
}

// WallState is the temporary obstacle rectangle
type WallState struct {
	Active bool
	X, Y   float64
	W, H   float64
}

// ParticleState is a cosmetic particle
type ParticleState struct {
	X, Y    float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   int
}

// Snapshot is the read-only view of the simulation after a tick
type Snapshot struct {
	Tick         int
	Width        float64
	Height       float64
	State        MatchState
	PlayerScore  int
	AIScore      int
	WinScore     int
	Countdown    int
	Winner       Side
	Balls        []BallState
	Trail        [][]BallState
	Player       PaddleState
	AI           PaddleState
	AIBoards     int
	BoardGap     float64
	Abilities    [AbilityCount]AbilityState
	SlowTime     bool
	Wall         WallState
	HitCount     int
	ScalingLevel int
	PowerUps     int
	Particles    []ParticleState
	Palette      int
	PaddleColor  int
	NetColor     int
}
