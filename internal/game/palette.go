package game

// Colours are opaque tags to the core: an index into one of PaletteSets
// palettes of PaletteSize colours each. The renderer owns the actual values.
const (
	PaletteSets         = 3
	PaletteSize         = 7
	PaletteChangeFrames = 240
)

// updatePalette picks a new palette every few seconds
func (g *Game) updatePalette() {
	if g.frame%PaletteChangeFrames == 0 {
		g.palette = g.rng.Index(PaletteSets)
	}
}

func (g *Game) paddleColor() int {
	return (g.playerScore + g.aiScore) % PaletteSize
}

func (g *Game) netColor() int {
	return (g.playerScore + g.aiScore + 1) % PaletteSize
}
