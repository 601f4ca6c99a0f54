package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	phonePadding  = 16
	statusHeight  = 28
	headerHeight  = 32
	iconSize      = 80
	iconGap       = 16
	buttonWidth   = 52
	buttonHeight  = 36
	buttonGap     = 10
	minPhoneWidth = 320
)

// Layout is the geometry of one frame of the phone window. It only depends
// on the window size, so it is recomputed whenever the window is resized.
type Layout struct {
	Phone     rl.Rectangle
	Screen    rl.Rectangle
	StatusBar rl.Rectangle
	Back      rl.Rectangle
	Body      rl.Rectangle
	Icons     []rl.Rectangle
	Canvas    rl.Rectangle
	Buttons   []rl.Rectangle
}

// NewLayout places a phone holding a canvasW x canvasH game display in a
// width x height window, with apps icons in rows of cols.
func NewLayout(width, height int32, apps, cols int, canvasW, canvasH int32, buttons int) Layout {
	phoneW := max(canvasW+4*phonePadding, minPhoneWidth)
	phoneH := min(height-2*phonePadding, phoneW*2)
	phoneX := (width - phoneW) / 2
	phoneY := (height - phoneH) / 2

	l := Layout{
		Phone:  rect(phoneX, phoneY, phoneW, phoneH),
		Screen: rect(phoneX+phonePadding, phoneY+phonePadding+8, phoneW-2*phonePadding, phoneH-2*phonePadding-24),
	}
	l.StatusBar = rl.Rectangle{X: l.Screen.X, Y: l.Screen.Y, Width: l.Screen.Width, Height: statusHeight}
	l.Back = rl.Rectangle{X: l.Screen.X + 12, Y: l.Screen.Y + statusHeight, Width: 56, Height: headerHeight}
	l.Body = rl.Rectangle{
		X:      l.Screen.X,
		Y:      l.Screen.Y + statusHeight + headerHeight,
		Width:  l.Screen.Width,
		Height: l.Screen.Height - statusHeight - headerHeight,
	}

	rows := (apps + cols - 1) / max(cols, 1)
	gridW := float32(cols*iconSize + (cols-1)*iconGap)
	gridH := float32(rows*iconSize + (rows-1)*iconGap)
	gx := l.Screen.X + (l.Screen.Width-gridW)/2
	gy := l.Screen.Y + statusHeight + (l.Screen.Height-statusHeight-gridH)/2
	for i := 0; i < apps; i++ {
		col, row := i%cols, i/cols
		l.Icons = append(l.Icons, rl.Rectangle{
			X:      gx + float32(col*(iconSize+iconGap)),
			Y:      gy + float32(row*(iconSize+iconGap)),
			Width:  iconSize,
			Height: iconSize,
		})
	}

	l.Canvas = rl.Rectangle{
		X:      l.Body.X + (l.Body.Width-float32(canvasW))/2,
		Y:      l.Body.Y + 8,
		Width:  float32(canvasW),
		Height: float32(canvasH),
	}
	rowW := float32(buttons*buttonWidth + (buttons-1)*buttonGap)
	bx := l.Canvas.X + (l.Canvas.Width-rowW)/2
	by := l.Canvas.Y + l.Canvas.Height + 10
	for i := 0; i < buttons; i++ {
		l.Buttons = append(l.Buttons, rl.Rectangle{
			X:      bx + float32(i*(buttonWidth+buttonGap)),
			Y:      by,
			Width:  buttonWidth,
			Height: buttonHeight,
		})
	}
	return l
}

// IconAt returns the icon under p, or -1.
func (l Layout) IconAt(p rl.Vector2) int { return hit(l.Icons, p) }

// ButtonAt returns the direction button under p, or -1.
func (l Layout) ButtonAt(p rl.Vector2) int { return hit(l.Buttons, p) }

func (l Layout) BackAt(p rl.Vector2) bool { return contains(l.Back, p) }

func hit(rs []rl.Rectangle, p rl.Vector2) int {
	for i, r := range rs {
		if contains(r, p) {
			return i
		}
	}
	return -1
}

func contains(r rl.Rectangle, p rl.Vector2) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

func rect(x, y, w, h int32) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}
