// Package input turns frontend events into snake headings. Keyboards and
// on-screen buttons are both adapters over the same Steerer.
package input

import (
	"strings"

	"glitch-phone/game/types"
)

// Steerer accepts a heading request. game.Engine implements it.
type Steerer interface {
	SetDirection(types.Direction)
}

// Keymap maps frontend key codes to directions.
type Keymap[K comparable] map[K]types.Direction

// Lookup returns the direction bound to key.
func (m Keymap[K]) Lookup(key K) (types.Direction, bool) {
	d, ok := m[key]
	return d, ok && d.Valid()
}

// Dispatch forwards the direction bound to key and reports whether the key
// was a steering key.
func (m Keymap[K]) Dispatch(s Steerer, key K) bool {
	d, ok := m.Lookup(key)
	if !ok {
		return false
	}
	s.SetDirection(d)
	return true
}

// Runes binds arrow-free layouts such as WASD. Both cases map.
func Runes(up, left, down, right rune) Keymap[rune] {
	m := Keymap[rune]{}
	for r, d := range map[rune]types.Direction{up: types.Up, left: types.Left, down: types.Down, right: types.Right} {
		m[r] = d
		m[toUpper(r)] = d
	}
	return m
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// Button is an on-screen control, named after the heading it requests.
type Button struct {
	Name      string
	Direction types.Direction
}

// Buttons is the set of on-screen direction controls in layout order.
type Buttons []Button

// DefaultButtons returns the four phone controls: up on the first row,
// then left, down and right.
func DefaultButtons() Buttons {
	var b Buttons
	for _, name := range []string{"up", "left", "down", "right"} {
		d, _ := types.ParseDirection(name)
		b = append(b, Button{Name: name, Direction: d})
	}
	return b
}

// Press forwards the heading of the named button. Unknown names are ignored.
func (b Buttons) Press(s Steerer, name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, btn := range b {
		if btn.Name == name {
			s.SetDirection(btn.Direction)
			return true
		}
	}
	return false
}
