package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/neonpong/internal/game"
	"github.com/diegok/neonpong/internal/protocol"
)

const (
	BallChar     = '●'
	PaddleChar   = '█'
	WallChar     = '▒'
	NetChar      = '│'
	TrailChar    = '·'
	SparkChar    = '∙'
	BigSparkChar = '•'

	MinWidth  = 40
	MinHeight = 12
)

// abilityKeys labels the skills bar, in ability order
var abilityKeys = [protocol.AbilityCount]string{"Q", "W", "E", "R"}

// Renderer handles rendering all game screens
type Renderer struct {
	screen  *Screen
	palette *Palette
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, palette *Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// court maps canvas coordinates to terminal cells. Row 0 holds the
// scoreboard and the last row the skills bar.
type court struct {
	w, h           int
	scaleX, scaleY float64
}

func newCourt(screenW, screenH int, canvasW, canvasH float64) court {
	c := court{w: screenW, h: screenH - 2}
	if canvasW > 0 {
		c.scaleX = float64(c.w) / canvasW
	}
	if canvasH > 0 {
		c.scaleY = float64(c.h) / canvasH
	}
	return c
}

func (c court) col(x float64) int {
	return clampInt(int(x*c.scaleX), 0, c.w-1)
}

func (c court) row(y float64) int {
	return 1 + clampInt(int(y*c.scaleY), 0, c.h-1)
}

// span returns the inclusive cell range covering [from, to) on one axis
func span(from, to float64, cell func(float64) int) (int, int) {
	a := cell(from)
	b := cell(math.Nextafter(to, from))
	if b < a {
		b = a
	}
	return a, b
}

// CanvasY converts a terminal row to a canvas y, centred in the row
func CanvasY(row, screenH int, canvasH float64) float64 {
	courtH := screenH - 2
	if courtH <= 0 {
		return canvasH / 2
	}
	y := (float64(row-1) + 0.5) * canvasH / float64(courtH)
	return math.Max(0, math.Min(canvasH, y))
}

// Render draws one frame of the match
func (r *Renderer) Render(snap protocol.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	if screenW < MinWidth || screenH < MinHeight {
		r.renderTooSmall(screenW, screenH)
		r.screen.Show()
		return
	}

	c := newCourt(screenW, screenH, snap.Width, snap.Height)
	bg := tcell.StyleDefault.Background(r.palette.Background())
	r.screen.FillRect(0, 1, screenW, c.h, bg, ' ')

	r.renderNet(snap, c)
	r.renderTrail(snap, c)
	r.renderParticles(snap, c)
	r.renderWall(snap, c)
	r.renderPaddles(snap, c)
	r.renderBalls(snap, c)
	r.renderScoreboard(snap, screenW)
	r.renderSkills(snap, screenW, screenH-1)

	switch snap.State {
	case protocol.StateReady:
		r.renderReady(screenW, screenH)
	case protocol.StateCountdown:
		r.renderCountdown(snap, screenW, screenH)
	case protocol.StatePaused:
		r.renderPaused(screenW, screenH)
	case protocol.StateGameOver:
		r.renderGameOver(snap, screenW, screenH)
	case protocol.StatePlaying:
	}

	r.screen.Show()
}

func (r *Renderer) renderNet(snap protocol.Snapshot, c court) {
	x := c.col(snap.Width / 2)
	style := r.palette.Style(snap.Palette, snap.NetColor)
	for y := 1; y <= c.h; y += 2 {
		r.screen.SetCell(x, y, style, NetChar)
	}
}

// renderTrail draws older ball positions fading into the background
func (r *Renderer) renderTrail(snap protocol.Snapshot, c court) {
	n := len(snap.Trail)
	for i := n - 1; i >= 0; i-- {
		fade := float64(i+1) / float64(n+1)
		for _, b := range snap.Trail[i] {
			col := r.palette.Fade(r.palette.Color(snap.Palette, b.Color), fade)
			r.screen.SetCell(c.col(b.X), c.row(b.Y), r.palette.StyleOf(col), TrailChar)
		}
	}
}

func (r *Renderer) renderParticles(snap protocol.Snapshot, c court) {
	for _, p := range snap.Particles {
		if p.MaxLife <= 0 {
			continue
		}
		col := r.palette.Fade(r.palette.Color(snap.Palette, p.Color), 1-p.Life/p.MaxLife)
		ch := SparkChar
		if p.Size >= 2 {
			ch = BigSparkChar
		}
		r.screen.SetCell(c.col(p.X), c.row(p.Y), r.palette.StyleOf(col), ch)
	}
}

func (r *Renderer) renderWall(snap protocol.Snapshot, c court) {
	w := snap.Wall
	if !w.Active {
		return
	}
	x0, x1 := span(w.X, w.X+w.W, c.col)
	y0, y1 := span(w.Y, w.Y+w.H, c.row)
	style := r.palette.Style(snap.Palette, game.ColorWall)
	r.screen.FillRect(x0, y0, x1-x0+1, y1-y0+1, style, WallChar)
}

func (r *Renderer) renderPaddles(snap protocol.Snapshot, c court) {
	style := r.palette.Style(snap.Palette, snap.PaddleColor)
	r.fillPaddle(snap.Player, 0, c, style)
	for i := 0; i < snap.AIBoards; i++ {
		r.fillPaddle(snap.AI, float64(i)*snap.BoardGap, c, style)
	}
}

func (r *Renderer) fillPaddle(p protocol.PaddleState, offset float64, c court, style tcell.Style) {
	x0, x1 := span(p.X, p.X+p.Width, c.col)
	y0, y1 := span(p.Y+offset, p.Y+offset+p.Height, c.row)
	r.screen.FillRect(x0, y0, x1-x0+1, y1-y0+1, style, PaddleChar)
}

func (r *Renderer) renderBalls(snap protocol.Snapshot, c court) {
	for _, b := range snap.Balls {
		if b.X < 0 || b.X > snap.Width {
			continue
		}
		style := r.palette.Style(snap.Palette, b.Color).Bold(true)
		r.screen.SetCell(c.col(b.X), c.row(b.Y), style, BallChar)
	}
}

// renderScoreboard draws the score centred on the top row with the
// difficulty readout on the right
func (r *Renderer) renderScoreboard(snap protocol.Snapshot, screenW int) {
	bar := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, 0, screenW, 1, bar, ' ')

	r.screen.DrawText(1, 0, fmt.Sprintf("FIRST TO %d", snap.WinScore), bar.Foreground(tcell.ColorGray))

	score := fmt.Sprintf(" YOU %d : %d AI ", snap.PlayerScore, snap.AIScore)
	scoreStyle := r.palette.Style(snap.Palette, snap.PaddleColor).Background(tcell.ColorBlack).Bold(true)
	r.screen.DrawTextCentered(0, score, scoreStyle)

	info := fmt.Sprintf("LV %d  AI+%d  HITS %d ", snap.ScalingLevel, snap.PowerUps, snap.HitCount)
	r.screen.DrawText(screenW-len(info), 0, info, bar.Foreground(tcell.ColorGray))
}

// renderSkills draws the ability bar. Cooling abilities are dimmed in
// proportion to the time left; a fresh activation flashes bold.
func (r *Renderer) renderSkills(snap protocol.Snapshot, screenW, y int) {
	bar := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, y, screenW, 1, bar, ' ')

	x := 1
	for i := protocol.Ability(0); i < protocol.AbilityCount; i++ {
		ab := snap.Abilities[i]
		label := fmt.Sprintf("[%s] %s", abilityKeys[i], abilityName(i))
		if ab.Cooldown > 0 {
			label += fmt.Sprintf(" %ds", (ab.Cooldown+game.TickRate-1)/game.TickRate)
		}
		if ab.Active {
			label += " *"
		}

		col := r.palette.Color(snap.Palette, game.ColorTeleport+int(i)%3)
		if ab.MaxCooldown > 0 && ab.Cooldown > 0 {
			col = r.palette.Dim(col, 0.3+0.6*float64(ab.Cooldown)/float64(ab.MaxCooldown))
		}
		style := r.palette.StyleOf(col).Background(tcell.ColorBlack)
		if ab.Flash > 0 || ab.Active {
			style = style.Bold(true)
		}
		if ab.Flash > 0 {
			style = style.Reverse(true)
		}
		x = r.screen.DrawText(x, y, label, style) + 2
	}

	if snap.SlowTime {
		r.screen.DrawText(x, y, "TIME SLOWED", bar.Foreground(tcell.ColorGreen).Bold(true))
	}
}

func abilityName(a protocol.Ability) string {
	switch a {
	case protocol.AbilityTeleport:
		return "TELEPORT"
	case protocol.AbilitySlowTime:
		return "SLOW"
	case protocol.AbilityWall:
		return "WALL"
	case protocol.AbilityExtraBall:
		return "BALL"
	}
	return "?"
}

// renderMessageBox draws a centred box with one line of text per row
func (r *Renderer) renderMessageBox(screenW, screenH int, lines []string, styles []tcell.Style) {
	boxW := 0
	for _, l := range lines {
		if len(l) > boxW {
			boxW = len(l)
		}
	}
	boxW += 6
	boxH := len(lines) + 4
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fill := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(boxX, boxY, boxW, boxH, fill, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, fill.Foreground(tcell.ColorWhite))
	for i, l := range lines {
		r.screen.DrawTextCentered(boxY+2+i, l, styles[i].Background(tcell.ColorBlack))
	}
}

func (r *Renderer) renderReady(screenW, screenH int) {
	r.renderMessageBox(screenW, screenH,
		[]string{"NEON PONG", "", "SPACE to start", "q w e r abilities, p pause", "ESC to quit"},
		[]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
			tcell.StyleDefault,
			tcell.StyleDefault.Foreground(tcell.ColorGreen),
			tcell.StyleDefault.Foreground(tcell.ColorGray),
			tcell.StyleDefault.Foreground(tcell.ColorGray),
		})
}

func (r *Renderer) renderCountdown(snap protocol.Snapshot, screenW, screenH int) {
	text := fmt.Sprintf("%d", snap.Countdown)
	if snap.Countdown <= 0 {
		text = "GO!"
	}
	r.renderMessageBox(screenW, screenH,
		[]string{"GET READY!", text},
		[]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
		})
}

func (r *Renderer) renderPaused(screenW, screenH int) {
	r.renderMessageBox(screenW, screenH,
		[]string{"PAUSED", "SPACE or P to resume"},
		[]tcell.Style{
			tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
			tcell.StyleDefault.Foreground(tcell.ColorGray),
		})
}

func (r *Renderer) renderGameOver(snap protocol.Snapshot, screenW, screenH int) {
	title := "AI WINS"
	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	if snap.Winner == protocol.SidePlayer {
		title = "YOU WIN!"
		titleStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	}
	r.renderMessageBox(screenW, screenH,
		[]string{title, fmt.Sprintf("Final Score: %d - %d", snap.PlayerScore, snap.AIScore), "ENTER to play again | ESC to quit"},
		[]tcell.Style{
			titleStyle,
			tcell.StyleDefault.Foreground(tcell.ColorWhite),
			tcell.StyleDefault.Foreground(tcell.ColorGreen),
		})
}

func (r *Renderer) renderTooSmall(screenW, screenH int) {
	msg := fmt.Sprintf("Terminal too small. Minimum: %dx%d", MinWidth, MinHeight)
	r.screen.DrawText(0, screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorRed))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
