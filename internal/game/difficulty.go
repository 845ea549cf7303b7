package game

import "math"

// Difficulty scaling constants
const (
	BaseAISpeed        = 3.5
	MaxAISpeed         = 18.0
	AISpeedPerPowerUp  = 1.5
	AISpeedPerLevel    = 1.2
	BaseAIPaddleHeight = 80.0
	MinAIPaddleHeight  = 50.0
	AIShrinkPerLevel   = 12.0
	AIGrowPerPowerUp   = 15.0
	DoubleBoardAtScore = 2
	BoostPerLevel      = 0.8 // Paddle hit speed boost per scaling level
)

// Difficulty is derived each tick from the player score and AI power-ups
type Difficulty struct {
	ScalingLevel   int
	AIPaddleHeight float64
	AISpeed        float64
	AIBoards       int
}

// ComputeDifficulty derives the AI's paddle size, speed and board count.
// It has no side effects.
func ComputeDifficulty(playerScore, powerUps int) Difficulty {
	level := playerScore
	boards := 1
	if playerScore >= DoubleBoardAtScore {
		boards = 2
	}
	return Difficulty{
		ScalingLevel:   level,
		AIPaddleHeight: math.Max(MinAIPaddleHeight, BaseAIPaddleHeight-float64(level)*AIShrinkPerLevel+float64(powerUps)*AIGrowPerPowerUp),
		AISpeed:        math.Min(MaxAISpeed, baseAISpeed(level, powerUps)),
		AIBoards:       boards,
	}
}

func baseAISpeed(level, powerUps int) float64 {
	return BaseAISpeed + float64(powerUps)*AISpeedPerPowerUp + float64(level)*AISpeedPerLevel
}

// updateDifficulty applies the scaler to the game
func (g *Game) updateDifficulty() {
	d := ComputeDifficulty(g.playerScore, g.powerUps)
	g.scalingLevel = d.ScalingLevel
	g.ai.Height = d.AIPaddleHeight
	g.aiSpeed = d.AISpeed
	g.aiBoards = d.AIBoards
}

// Difficulty returns the current AI values. AISpeed includes the AI's
// jitter on ticks where it resampled.
func (g *Game) Difficulty() Difficulty {
	return Difficulty{
		ScalingLevel:   g.scalingLevel,
		AIPaddleHeight: g.ai.Height,
		AISpeed:        g.aiSpeed,
		AIBoards:       g.aiBoards,
	}
}

func (g *Game) boost() float64 {
	return float64(g.scalingLevel) * BoostPerLevel
}
