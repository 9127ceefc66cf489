package seal

import (
	"fmt"
	"math"

	"github.com/vovakirdan/seal-arcade/internal/core"
	"github.com/vovakirdan/seal-arcade/internal/geom"
	"github.com/vovakirdan/seal-arcade/internal/mode"
	"github.com/vovakirdan/seal-arcade/internal/sim"
)

// Visual characters and colors for rendering.
const (
	PlayerChar = '█'
	FishChar   = '◆'
	SharkChar  = '▓'
	WaterChar  = '~'
)

var tagStyle = map[sim.Tag]struct {
	glyph rune
	color core.Color
}{
	sim.TagPlayer:    {PlayerChar, core.ColorBlue},
	sim.TagPlayerHit: {PlayerChar, core.ColorCyan},
	sim.TagFish:      {FishChar, core.ColorRed},
	sim.TagShark:     {SharkChar, core.ColorMagenta},
}

// viewport maps the y-up world onto screen cells below the HUD row.
type viewport struct {
	field  core.Rect
	worldH float64
	sx, sy float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	field := core.NewRect(0, 1, dst.Width(), max(dst.Height()-1, 0))
	return viewport{
		field:  field,
		worldH: worldH,
		sx:     float64(field.W) / worldW,
		sy:     float64(field.H) / worldH,
	}
}

// cells returns the screen rectangle covering a world box, at least one
// cell in each direction, clipped to the play field.
func (v viewport) cells(box geom.Rectangle) core.Rect {
	x0 := int(math.Floor(box.X1() * v.sx))
	x1 := int(math.Ceil(box.X2() * v.sx))
	top := v.field.Y + int(math.Floor((v.worldH-box.Y2())*v.sy))
	bottom := v.field.Y + int(math.Ceil((v.worldH-box.Y1())*v.sy))

	r := core.NewRect(x0, top, max(x1-x0, 1), max(bottom-top, 1))
	return v.field.Intersect(r)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := newViewport(dst, g.cfg.World.Width, g.cfg.World.Height)
	if vp.field.Empty() {
		return
	}

	for _, sp := range g.ctrl.Sprites() {
		r := vp.cells(sp.Box)
		if r.Empty() {
			continue
		}
		st := tagStyle[sp.Tag]
		dst.DrawRectColored(r, st.glyph, st.color)
	}

	g.drawHUD(dst)

	switch g.machine.Mode() {
	case mode.ModeStart:
		dst.DrawMessageBox(core.ColorBrightWhite,
			"SEAL SNACK",
			"",
			"Eat the fish, dodge the sharks",
			"SPACE swims up  |  P pauses",
			"Press ENTER to start",
		)
	case mode.ModeEnd:
		snap := g.ctrl.Snapshot()
		dst.DrawMessageBox(core.ColorYellow,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  |  Fish eaten: %d", snap.Score, snap.FishEaten),
			"Press ENTER to play again",
		)
	default:
		if g.paused {
			dst.DrawMessageBox(core.ColorWhite, "PAUSED", "Press P to resume")
		}
	}
}

// drawHUD draws the status line across the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 0, WaterChar, core.ColorGray)
	}
	left := fmt.Sprintf(" Score: %d  Fish: %d ", g.ctrl.Score(), g.ctrl.FishEaten())
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Level %.0f%% ", g.Level()*100)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorGray)
}
