package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/neonpong/internal/game"
)

// Neon palettes, indexed by the snapshot's palette and colour tags
var neonSets = [game.PaletteSets][game.PaletteSize]string{
	{"#00f0ff", "#ff00ea", "#39ff14", "#f7e600", "#ff006e", "#aaffff", "#fff700"},
	{"#ff00cc", "#00ffea", "#fffb00", "#08f7fe", "#f5f7fa", "#f6019d", "#00ff99"},
	{"#00fff7", "#ff2bff", "#ffe400", "#ff3c38", "#18f9c9", "#00e0ff", "#ffb6ff"},
}

// Fixed ability colours for tags past the palette
var abilityHex = []string{
	game.ColorTeleport - game.PaletteSize: "#00f0ff",
	game.ColorSlowTime - game.PaletteSize: "#39ff14",
	game.ColorWall - game.PaletteSize:     "#f7e600",
}

const (
	backgroundHex = "#05010d"
	dimHex        = "#3a3a4a"
)

// Palette resolves colour tags to terminal colours
type Palette struct {
	sets       [game.PaletteSets][game.PaletteSize]colorful.Color
	abilities  []colorful.Color
	background colorful.Color
	dim        colorful.Color
}

// NewPalette parses the neon palettes
func NewPalette() *Palette {
	p := &Palette{
		background: mustHex(backgroundHex),
		dim:        mustHex(dimHex),
	}
	for i, set := range neonSets {
		for j, hex := range set {
			p.sets[i][j] = mustHex(hex)
		}
	}
	for _, hex := range abilityHex {
		p.abilities = append(p.abilities, mustHex(hex))
	}
	return p
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Color returns the colour for tag in palette set. Unknown tags are white.
func (p *Palette) Color(set, tag int) colorful.Color {
	if set < 0 || set >= len(p.sets) {
		set = 0
	}
	switch {
	case tag >= 0 && tag < game.PaletteSize:
		return p.sets[set][tag]
	case tag >= game.PaletteSize && tag-game.PaletteSize < len(p.abilities):
		return p.abilities[tag-game.PaletteSize]
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}

// Fade blends c toward the court background; amount 0 keeps c, 1 is fully
// background.
func (p *Palette) Fade(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(p.background, clamp01(amount)).Clamped()
}

// Dim blends c toward grey, used for abilities still cooling down
func (p *Palette) Dim(c colorful.Color, amount float64) colorful.Color {
	return c.BlendRgb(p.dim, clamp01(amount)).Clamped()
}

// Background is the court colour
func (p *Palette) Background() tcell.Color {
	return toTcell(p.background)
}

// Style is a foreground style for tag on the court background
func (p *Palette) Style(set, tag int) tcell.Style {
	return p.StyleOf(p.Color(set, tag))
}

// StyleOf is a foreground style for c on the court background
func (p *Palette) StyleOf(c colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(p.background))
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
