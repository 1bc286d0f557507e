package platformer

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Glyphs used by the terminal renderer.
const (
	GroundChar     = '▀'
	PlatformChar   = '▄'
	BrickChar      = '▓'
	QuestionChar   = '?'
	EmptyBlockChar = '░'
	CoinChar       = 'o'
	PowerupChar    = '+'
	PlayerChar     = '█'
	CompanionChar  = '▪'
	EnemyChar      = '▒'
	EliteChar      = '█'
	ShotChar       = '-'
	EndFlagChar    = '⚑'
)

// hudRows are reserved at the top of the screen.
const hudRows = 2

// view maps world pixels inside the camera window to screen cells.
type view struct {
	camX   float64
	sx, sy float64
	top    int
}

func (v view) rect(b core.Box) core.Rect {
	x0 := int(math.Floor((b.X - v.camX) * v.sx))
	y0 := int(math.Floor(b.Y*v.sy)) + v.top
	x1 := int(math.Ceil((b.Right() - v.camX) * v.sx))
	y1 := int(math.Ceil(b.Bottom()*v.sy)) + v.top
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (v view) point(x, y float64) (int, int) {
	return int((x - v.camX) * v.sx), int(y*v.sy) + v.top
}

// Render draws the current state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := &g.world
	wc := g.cfg.World

	if dst.Width() <= 0 || dst.Height() <= hudRows {
		return
	}
	v := view{
		camX: w.CameraX,
		sx:   float64(dst.Width()) / wc.ViewWidth,
		sy:   float64(dst.Height()-hudRows) / wc.ViewHeight,
		top:  hudRows,
	}

	// Ground
	_, gy := v.point(0, wc.GroundY)
	for y := gy; y < dst.Height(); y++ {
		r := rune(' ')
		if y == gy {
			r = GroundChar
		}
		for x := 0; x < dst.Width(); x++ {
			dst.SetColor(x, y, r, core.ColorBrown)
		}
	}

	// End flag
	if fx, _ := v.point(w.EndX, 0); fx >= 0 && fx < dst.Width() {
		dst.SetColor(fx, gy-1, EndFlagChar, core.ColorBrightGreen)
	}

	for _, p := range w.Platforms {
		dst.DrawRectColor(v.rect(p.Box), PlatformChar, core.ColorGreen)
	}
	for _, b := range w.Blocks {
		r, c := rune(BrickChar), core.ColorOrange
		switch {
		case b.State == levels.BlockEmpty:
			r, c = EmptyBlockChar, core.ColorGray
		case b.Kind == levels.BlockQuestion:
			r, c = QuestionChar, core.ColorGold
		}
		dst.DrawRectColor(v.rect(b.Box), r, c)
	}
	for _, c := range w.Coins {
		if c.Taken {
			continue
		}
		x, y := v.point(c.X, c.Y)
		dst.SetColor(x, y, CoinChar, core.ColorBrightYellow)
	}
	for _, pu := range w.Powerups {
		dst.DrawRectColor(v.rect(pu.Box), PowerupChar, core.ColorBrightRed)
	}

	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		g.drawEnemy(dst, v, e)
	}

	dst.DrawRectColor(v.rect(w.Companion.Box), CompanionChar, core.ColorCyan)
	g.drawPlayer(dst, v)

	for _, pr := range w.Projectiles {
		c := core.ColorBrightCyan
		if pr.Owner == OwnerEnemy {
			c = core.ColorBrightMagenta
		}
		dst.DrawRectColor(v.rect(pr.Box), ShotChar, c)
	}

	g.drawHUD(dst)

	switch {
	case g.state == StateNotStarted:
		g.drawCenteredMessage(dst, "SKY RUNNER", "Press SPACE or ENTER to start")
	case g.state == StatePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state == StateWon:
		g.drawCenteredMessage(dst, "YOU WIN!", fmt.Sprintf("Score: %d  |  Coins: %d", w.Player.Score, w.Player.Coins))
	case g.resetTimer > 0:
		g.drawCenteredMessage(dst, "DEFEATED", "Restarting level...")
	}
}

// drawPlayer blinks the player while invulnerable.
func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.world.Player
	if p.Invulnerable > 0 && (p.Invulnerable/4)%2 == 1 {
		return
	}
	r := v.rect(p.Box)
	dst.DrawRectColor(r, PlayerChar, core.ColorBrightBlue)

	// Eye on the facing side, legs alternate while walking.
	eye := r.X + r.W - 1
	if p.Facing < 0 {
		eye = r.X
	}
	dst.SetColor(eye, r.Y, '•', core.ColorBrightWhite)
	if r.H > 1 && p.Frame != IdleFrame {
		legs := "╱╲"
		if p.Frame%2 == 1 {
			legs = "╲╱"
		}
		dst.DrawTextColor(r.X, r.Bottom()-1, legs, core.ColorBlue)
	}
}

func (g *Game) drawEnemy(dst *core.Screen, v view, e Enemy) {
	r := v.rect(e.Box)
	glyph, c := rune(EnemyChar), core.ColorRed
	switch b := e.Brain.(type) {
	case *EliteBrain:
		glyph, c = EliteChar, core.ColorMagenta
		if b.State == EliteMelee {
			c = core.ColorBrightRed
		} else if b.State == EliteRanged {
			c = core.ColorBrightMagenta
		}
	case *PatrolBrain:
		if e.AnimIndex == 1 {
			glyph = '▓'
		}
	}
	dst.DrawRectColor(r, glyph, c)

	// Health pip row above wounded enemies.
	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		filled := core.Max(1, r.W*e.Health/e.MaxHealth)
		dst.DrawTextColor(r.X, r.Y-1, strings.Repeat("▬", filled), core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	p := g.world.Player
	left := fmt.Sprintf(" L%d %s  Score: %d  Coins: %d ", g.world.LevelIndex+1, g.world.LevelName, p.Score, p.Coins)
	dst.DrawTextColor(0, 0, left, core.ColorBrightWhite)

	hp := bar(float64(p.Health), float64(p.MaxHealth), 10)
	fl := bar(p.Flight, p.FlightMax, 10)
	dst.DrawTextColor(1, 1, "HP "+hp, core.ColorBrightRed)
	dst.DrawTextColor(17, 1, "FLY "+fl, core.ColorBrightCyan)
}

// bar renders v/limit as a fixed-width gauge.
func bar(v, limit float64, width int) string {
	n := 0
	if limit > 0 {
		n = int(math.Round(v / limit * float64(width)))
	}
	n = core.Clamp(n, 0, width)
	return "[" + strings.Repeat("■", n) + strings.Repeat("·", width-n) + "]"
}

func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCenteredColor(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCenteredColor(boxY+3, subtitle, core.ColorWhite)
}
