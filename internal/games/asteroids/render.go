package asteroids

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Visual characters for rendering
const (
	ShipGlyph     = '*'
	FlameGlyph    = '+'
	AsteroidGlyph = 'o'
	BulletGlyph   = '•'
)

// Minimum terminal size the renderer needs.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// hudRows is the number of rows reserved above the playfield.
const hudRows = 1

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	DrawFrame(dst, g.Frame())
}

// DrawFrame draws a frame onto a screen. The logical playfield is scaled to
// fill the screen below the HUD row, so the picture keeps its layout at any
// terminal size.
func DrawFrame(dst *core.Screen, f Frame) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorDefault)
		return
	}

	vp := newViewport(f.Width, f.Height, dst.Width(), dst.Height()-hudRows)

	for _, a := range f.Asteroids {
		drawCircle(dst, vp, a.Pos, a.Radius)
	}
	drawShip(dst, vp, f)
	for _, b := range f.Bullets {
		x, y := vp.project(b)
		dst.SetColored(int(math.Round(x)), int(math.Round(y)), BulletGlyph, core.ColorYellow)
	}

	// HUD goes last so entities near the top edge never cover it
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", f.Score), core.ColorBrightWhite)
	dst.DrawTextRight(dst.Width()-2, 0, fmt.Sprintf("Lives: %d", f.Lives), core.ColorWhite)

	if f.GameOver {
		drawGameOver(dst, f.Score)
	}
}

// drawGameOver draws the final score panel over the playfield.
func drawGameOver(dst *core.Screen, score int) {
	lines := []string{"GAME OVER", fmt.Sprintf("Final score: %d", score)}
	w := core.Clamp(len(lines[1])+4, 0, dst.Width())
	h := len(lines) + 2
	mid := dst.Height() / 2
	panel := core.NewRect((dst.Width()-w)/2, mid-h/2, w, h)

	dst.DrawRect(panel, ' ')
	dst.DrawBox(panel)
	dst.DrawTextCentered(panel.Y+1, lines[0], core.ColorRed)
	dst.DrawTextCentered(panel.Y+2, lines[1], core.ColorBrightWhite)
}

// viewport maps playfield units onto screen cells.
type viewport struct {
	sx, sy float64
	top    int
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	return viewport{
		sx:  float64(cols) / fieldW,
		sy:  float64(rows) / fieldH,
		top: hudRows,
	}
}

func (v viewport) project(p core.Vec2) (float64, float64) {
	return p.X * v.sx, p.Y*v.sy + float64(v.top)
}

// drawShip draws the ship as a triangle outline with its nose at (0, -r) and
// wings at (±r, r), rotated by the heading.
func drawShip(dst *core.Screen, vp viewport, f Frame) {
	r := f.ShipRadius
	local := [3]core.Vec2{{X: 0, Y: -r}, {X: r, Y: r}, {X: -r, Y: r}}

	var pts [3][2]float64
	for i, p := range local {
		world := f.ShipPos.Add(rotate(p, f.ShipHeading))
		pts[i][0], pts[i][1] = vp.project(world)
	}

	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		dst.DrawLine(a[0], a[1], b[0], b[1], ShipGlyph, core.ColorCyan)
	}

	if f.ShipThrusting {
		tail := f.ShipPos.Add(rotate(core.Vec2{X: 0, Y: r * 1.5}, f.ShipHeading))
		x, y := vp.project(tail)
		dst.SetColored(int(math.Round(x)), int(math.Round(y)), FlameGlyph, core.ColorOrange)
	}
}

// drawCircle draws a circle outline. Non-square cells turn it into an
// ellipse on screen, which keeps its proportions on the playfield.
func drawCircle(dst *core.Screen, vp viewport, center core.Vec2, radius float64) {
	steps := int(2 * math.Pi * radius * math.Max(vp.sx, vp.sy))
	steps = core.Max(steps, 12)

	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x, y := vp.project(center.Add(core.FromAngle(angle, radius)))
		dst.SetColored(int(math.Round(x)), int(math.Round(y)), AsteroidGlyph, core.ColorGray)
	}
}

// rotate turns p clockwise on screen (Y grows downward) by angle radians.
func rotate(p core.Vec2, angle float64) core.Vec2 {
	sin, cos := math.Sincos(angle)
	return core.Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}
