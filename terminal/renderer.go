// Package terminal plays the snake engine in a terminal through tcell.
package terminal

import (
	"fmt"
	"sync"

	"glitch-phone/game"
	"glitch-phone/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	styleSnake  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xbb86fc))
	styleFood   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ffff))
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleDead   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

const (
	snakeRune = '█'
	foodRune  = '●'
)

// Renderer is a game.FrameSink that keeps the latest frame and paints it
// on a tcell screen. Each board cell is two terminal columns wide.
type Renderer struct {
	screen tcell.Screen

	mu    sync.Mutex
	frame game.Frame
	has   bool
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// OnFrame stores f and wakes the event loop to redraw.
func (r *Renderer) OnFrame(f game.Frame) {
	r.mu.Lock()
	r.frame, r.has = f, true
	r.mu.Unlock()
	_ = r.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Latest returns the last stored frame.
func (r *Renderer) Latest() (game.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frame, r.has
}

// Origin is the screen position of board cell (0,0) for grid.
func (r *Renderer) Origin(grid types.Grid) (x, y int) {
	w, _ := r.screen.Size()
	x = (w-(grid.Columns*2+2))/2 + 1
	if x < 1 {
		x = 1
	}
	return x, 2
}

// CellAt maps a board cell to its left screen column and row.
func (r *Renderer) CellAt(grid types.Grid, p types.Point) (x, y int) {
	ox, oy := r.Origin(grid)
	return ox + p.X*2, oy + p.Y
}

func (r *Renderer) Draw() {
	r.screen.Clear()
	f, ok := r.Latest()
	if !ok {
		r.text(0, 0, "snake: waiting for a session", styleText)
		r.screen.Show()
		return
	}

	r.text(0, 0, "SNAKE  arrows/wasd steer  r restart  q quit", styleText)
	r.border(f.Grid)

	if f.HasFood {
		x, y := r.CellAt(f.Grid, f.Food)
		r.screen.SetContent(x, y, foodRune, nil, styleFood)
		r.screen.SetContent(x+1, y, ' ', nil, styleFood)
	}
	for _, c := range f.Snake {
		x, y := r.CellAt(f.Grid, c)
		r.screen.SetContent(x, y, snakeRune, nil, styleSnake)
		r.screen.SetContent(x+1, y, snakeRune, nil, styleSnake)
	}

	_, oy := r.Origin(f.Grid)
	status := fmt.Sprintf("length %d  tick %d", len(f.Snake), f.Tick)
	r.text(0, oy+f.Grid.Rows+1, status, styleText)
	if !f.Alive {
		r.text(0, oy+f.Grid.Rows+2, "Game Over - press r to restart", styleDead)
	}
	r.screen.Show()
}

func (r *Renderer) border(grid types.Grid) {
	ox, oy := r.Origin(grid)
	left, right := ox-1, ox+grid.Columns*2
	top, bottom := oy-1, oy+grid.Rows

	for x := left + 1; x < right; x++ {
		r.screen.SetContent(x, top, tcell.RuneHLine, nil, styleBorder)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, nil, styleBorder)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(left, y, tcell.RuneVLine, nil, styleBorder)
		r.screen.SetContent(right, y, tcell.RuneVLine, nil, styleBorder)
	}
	r.screen.SetContent(left, top, tcell.RuneULCorner, nil, styleBorder)
	r.screen.SetContent(right, top, tcell.RuneURCorner, nil, styleBorder)
	r.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, styleBorder)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, styleBorder)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
