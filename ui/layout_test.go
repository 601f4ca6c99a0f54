package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func center(r rl.Rectangle) rl.Vector2 {
	return rl.Vector2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func TestLayoutHitTesting(t *testing.T) {
	l := NewLayout(480, 800, 7, 3, 260, 220, 4)

	if len(l.Icons) != 7 || len(l.Buttons) != 4 {
		t.Fatalf("icons=%d buttons=%d", len(l.Icons), len(l.Buttons))
	}
	for i, icon := range l.Icons {
		if got := l.IconAt(center(icon)); got != i {
			t.Errorf("icon %d hit as %d", i, got)
		}
	}
	for i, b := range l.Buttons {
		if got := l.ButtonAt(center(b)); got != i {
			t.Errorf("button %d hit as %d", i, got)
		}
	}
	if l.IconAt(rl.Vector2{X: 1, Y: 1}) != -1 {
		t.Error("corner of the window is not an icon")
	}
	if !l.BackAt(center(l.Back)) {
		t.Error("back button not hit")
	}
}

func TestLayoutGridRows(t *testing.T) {
	l := NewLayout(480, 800, 7, 3, 260, 220, 4)

	if l.Icons[0].Y != l.Icons[2].Y || l.Icons[3].Y <= l.Icons[0].Y {
		t.Error("icons should fill rows of three")
	}
	if l.Icons[6].X != l.Icons[0].X {
		t.Error("seventh icon starts the third row")
	}
}

func TestLayoutCanvasFitsScreen(t *testing.T) {
	l := NewLayout(480, 800, 7, 3, 260, 220, 4)

	if l.Canvas.Width != 260 || l.Canvas.Height != 220 {
		t.Fatalf("canvas %vx%v", l.Canvas.Width, l.Canvas.Height)
	}
	if l.Canvas.X < l.Screen.X || l.Canvas.X+l.Canvas.Width > l.Screen.X+l.Screen.Width {
		t.Error("canvas overflows the phone screen")
	}
	if l.Buttons[0].Y < l.Canvas.Y+l.Canvas.Height {
		t.Error("buttons must sit below the canvas")
	}
}
