package ui

import (
	"fmt"
	"sync"
	"time"

	"glitch-phone/game"
	"glitch-phone/game/types"
	"glitch-phone/shell"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	colorBackdrop = rl.Color{R: 8, G: 8, B: 10, A: 255}
	colorPhone    = rl.Color{R: 12, G: 12, B: 14, A: 255}
	colorBezel    = rl.Color{R: 39, G: 39, B: 42, A: 255}
	colorScreen   = rl.Color{R: 2, G: 2, B: 2, A: 255}
	colorIcon     = rl.Color{R: 24, G: 24, B: 27, A: 200}
	colorFocus    = rl.Color{R: 103, G: 232, B: 249, A: 255}
	colorMuted    = rl.Color{R: 107, G: 114, B: 128, A: 255}
	colorLabel    = rl.Color{R: 209, G: 213, B: 219, A: 255}
	colorNetwork  = rl.Color{R: 52, G: 211, B: 153, A: 204}
	colorFood     = rl.Color{R: 0, G: 255, B: 255, A: 255}
	colorSnake    = rl.Color{R: 187, G: 134, B: 252, A: 255}
	colorDead     = rl.Color{R: 248, G: 113, B: 113, A: 255}
)

// FrameBox is a game.FrameSink that keeps the latest frame for the draw
// loop.
type FrameBox struct {
	mu    sync.Mutex
	frame game.Frame
	has   bool
}

func (b *FrameBox) OnFrame(f game.Frame) {
	b.mu.Lock()
	b.frame, b.has = f, true
	b.mu.Unlock()
}

func (b *FrameBox) Latest() (game.Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame, b.has
}

// View is everything the renderer needs for one frame.
type View struct {
	Apps     []shell.App
	Focused  int
	Open     *shell.App
	Frame    game.Frame
	HasFrame bool
	GameOver bool
	Buttons  []string
	Now      time.Time
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellSize     int32
	grid         types.Grid
	layout       Layout
	buttons      int
	apps         int
}

func NewRenderer(grid types.Grid, cellSize int32, apps, buttons int) *Renderer {
	r := &Renderer{grid: grid, cellSize: cellSize, apps: apps, buttons: buttons}
	r.UpdateDimensions()
	return r
}

// UpdateDimensions recomputes the layout from the current window size.
func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = NewLayout(r.screenWidth, r.screenHeight, r.apps, shell.Columns,
		int32(r.grid.Columns)*r.cellSize, int32(r.grid.Rows)*r.cellSize, r.buttons)
}

func (r *Renderer) Layout() Layout { return r.layout }

func (r *Renderer) Draw(v View) {
	if rl.IsWindowResized() {
		r.UpdateDimensions()
	}
	l := r.layout

	rl.BeginDrawing()
	rl.ClearBackground(colorBackdrop)

	title := "AHMED ESH Phone"
	rl.DrawText(title, (r.screenWidth-rl.MeasureText(title, 12))/2, int32(l.Phone.Y)-4-12, 12, colorMuted)

	rl.DrawRectangleRounded(l.Phone, 0.12, 16, colorPhone)
	rl.DrawRectangleRoundedLines(l.Phone, 0.12, 16, 1, colorBezel)
	notch := rl.Rectangle{X: l.Phone.X + l.Phone.Width/2 - 48, Y: l.Phone.Y + 4, Width: 96, Height: 12}
	rl.DrawRectangleRounded(notch, 0.5, 8, colorBezel)
	rl.DrawRectangleRounded(l.Screen, 0.06, 16, colorScreen)
	home := rl.Rectangle{X: l.Phone.X + l.Phone.Width/2 - 20, Y: l.Phone.Y + l.Phone.Height - 16, Width: 40, Height: 8}
	rl.DrawRectangleRounded(home, 1, 8, colorBezel)

	r.drawStatusBar(v.Now)
	if v.Open == nil {
		r.drawHomeGrid(v)
	} else {
		r.drawApp(v)
	}

	hint := "Click apps to open. Press ESC to close."
	rl.DrawText(hint, (r.screenWidth-rl.MeasureText(hint, 10))/2, int32(l.Phone.Y+l.Phone.Height)+8, 10, colorMuted)
	rl.EndDrawing()
}

func (r *Renderer) drawStatusBar(now time.Time) {
	bar := r.layout.StatusBar
	x, y := int32(bar.X)+12, int32(bar.Y)+8
	rl.DrawCircle(x+4, y+5, 4, colorNetwork)
	rl.DrawText("Libyana network", x+14, y, 10, colorMuted)

	clock := now.Format("15:04")
	rl.DrawText(clock, int32(bar.X+bar.Width)-12-rl.MeasureText(clock, 10), y, 10, colorMuted)
}

func (r *Renderer) drawHomeGrid(v View) {
	for i, icon := range r.layout.Icons {
		if i >= len(v.Apps) {
			break
		}
		app := v.Apps[i]
		rl.DrawRectangleRounded(icon, 0.2, 8, colorIcon)
		border := colorBezel
		if i == v.Focused {
			border = colorFocus
		}
		rl.DrawRectangleRoundedLines(icon, 0.2, 8, 1, border)

		gw := rl.MeasureText(app.Glyph, 28)
		rl.DrawText(app.Glyph, int32(icon.X+icon.Width/2)-gw/2, int32(icon.Y)+16, 28, colorLabel)
		lw := rl.MeasureText(app.Label, 10)
		rl.DrawText(app.Label, int32(icon.X+icon.Width/2)-lw/2, int32(icon.Y+icon.Height)-20, 10, colorLabel)
	}
}

func (r *Renderer) drawApp(v View) {
	l := r.layout
	rl.DrawText("Back", int32(l.Back.X), int32(l.Back.Y)+8, 14, colorFocus)
	tw := rl.MeasureText(v.Open.Title, 10)
	rl.DrawText(v.Open.Title, int32(l.Screen.X+l.Screen.Width)-12-tw, int32(l.Back.Y)+10, 10, colorMuted)

	if v.Open.Key == shell.GameKey {
		r.drawGame(v)
		return
	}

	y := int32(l.Body.Y) + 8
	for _, line := range v.Open.Lines {
		rl.DrawText(line, int32(l.Body.X)+12, y, 12, colorLabel)
		y += 20
	}
}

func (r *Renderer) drawGame(v View) {
	l := r.layout
	c := l.Canvas
	rl.DrawRectangleRounded(c, 0.04, 8, rl.Black)

	if v.HasFrame {
		f := v.Frame
		if f.HasFood {
			rl.DrawRectangle(r.cellX(f.Food), r.cellY(f.Food), r.cellSize, r.cellSize, colorFood)
		}
		for _, p := range f.Snake {
			rl.DrawRectangle(r.cellX(p), r.cellY(p), r.cellSize-1, r.cellSize-1, colorSnake)
		}
		if len(f.Snake) > 0 && f.Alive {
			r.drawHeading(f.Head(), f.Direction)
		}
		score := fmt.Sprintf("length %d", len(f.Snake))
		rl.DrawText(score, int32(c.X)+4, int32(c.Y)+4, 10, colorMuted)
	}

	if v.GameOver {
		msg := shell.GameOverText
		mw := rl.MeasureText(msg, 14)
		rl.DrawText(msg, int32(c.X+c.Width/2)-mw/2, int32(c.Y+c.Height)+18, 14, colorDead)
		return
	}
	for i, b := range l.Buttons {
		rl.DrawRectangleRounded(b, 0.3, 8, colorIcon)
		rl.DrawRectangleRoundedLines(b, 0.3, 8, 1, colorBezel)
		if i < len(v.Buttons) {
			r.drawArrow(b, v.Buttons[i])
		}
	}
}

// drawHeading marks the direction of travel on the head cell.
func (r *Renderer) drawHeading(head types.Point, dir types.Direction) {
	x, y := float32(r.cellX(head)), float32(r.cellY(head))
	s := float32(r.cellSize)
	h := s / 2
	switch dir {
	case types.Right:
		rl.DrawTriangle(rl.Vector2{X: x + s, Y: y + h}, rl.Vector2{X: x + h, Y: y}, rl.Vector2{X: x + h, Y: y + s}, rl.White)
	case types.Left:
		rl.DrawTriangle(rl.Vector2{X: x, Y: y + h}, rl.Vector2{X: x + h, Y: y + s}, rl.Vector2{X: x + h, Y: y}, rl.White)
	case types.Down:
		rl.DrawTriangle(rl.Vector2{X: x + h, Y: y + s}, rl.Vector2{X: x + s, Y: y + h}, rl.Vector2{X: x, Y: y + h}, rl.White)
	case types.Up:
		rl.DrawTriangle(rl.Vector2{X: x + h, Y: y}, rl.Vector2{X: x, Y: y + h}, rl.Vector2{X: x + s, Y: y + h}, rl.White)
	}
}

func (r *Renderer) drawArrow(b rl.Rectangle, name string) {
	cx, cy := b.X+b.Width/2, b.Y+b.Height/2
	const a = 8
	var p1, p2, p3 rl.Vector2
	switch name {
	case "up":
		p1, p2, p3 = rl.Vector2{X: cx, Y: cy - a}, rl.Vector2{X: cx - a, Y: cy + a/2}, rl.Vector2{X: cx + a, Y: cy + a/2}
	case "down":
		p1, p2, p3 = rl.Vector2{X: cx, Y: cy + a}, rl.Vector2{X: cx + a, Y: cy - a/2}, rl.Vector2{X: cx - a, Y: cy - a/2}
	case "left":
		p1, p2, p3 = rl.Vector2{X: cx - a, Y: cy}, rl.Vector2{X: cx + a/2, Y: cy + a}, rl.Vector2{X: cx + a/2, Y: cy - a}
	default:
		p1, p2, p3 = rl.Vector2{X: cx + a, Y: cy}, rl.Vector2{X: cx - a/2, Y: cy - a}, rl.Vector2{X: cx - a/2, Y: cy + a}
	}
	rl.DrawTriangle(p1, p2, p3, colorLabel)
}

func (r *Renderer) cellX(p types.Point) int32 {
	return int32(r.layout.Canvas.X) + int32(p.X)*r.cellSize
}

func (r *Renderer) cellY(p types.Point) int32 {
	return int32(r.layout.Canvas.Y) + int32(p.Y)*r.cellSize
}
