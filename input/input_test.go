package input

import (
	"testing"

	"glitch-phone/game/types"
)

type recorder struct {
	got []types.Direction
}

func (r *recorder) SetDirection(d types.Direction) { r.got = append(r.got, d) }

func TestKeymapDispatch(t *testing.T) {
	type key int
	km := Keymap[key]{1: types.Up, 2: types.Left, 3: types.None}

	var r recorder
	tests := []struct {
		key  key
		want bool
	}{
		{1, true},
		{2, true},
		{3, false},
		{9, false},
	}
	for _, tt := range tests {
		if got := km.Dispatch(&r, tt.key); got != tt.want {
			t.Errorf("Dispatch(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if len(r.got) != 2 || r.got[0] != types.Up || r.got[1] != types.Left {
		t.Errorf("forwarded %v", r.got)
	}
}

func TestRunesBindsBothCases(t *testing.T) {
	km := Runes('w', 'a', 's', 'd')
	cases := map[rune]types.Direction{
		'w': types.Up, 'W': types.Up,
		'a': types.Left, 'A': types.Left,
		's': types.Down, 'S': types.Down,
		'd': types.Right, 'D': types.Right,
	}
	for r, want := range cases {
		if got, ok := km.Lookup(r); !ok || got != want {
			t.Errorf("%q -> %s, %v; want %s", r, got, ok, want)
		}
	}
	if _, ok := km.Lookup('q'); ok {
		t.Error("q should not steer")
	}
}

func TestButtonsPress(t *testing.T) {
	var r recorder
	b := DefaultButtons()

	for _, name := range []string{"up", " Left ", "DOWN", "right", "jump"} {
		b.Press(&r, name)
	}

	want := []types.Direction{types.Up, types.Left, types.Down, types.Right}
	if len(r.got) != len(want) {
		t.Fatalf("forwarded %v, want %v", r.got, want)
	}
	for i := range want {
		if r.got[i] != want[i] {
			t.Errorf("press %d: got %s, want %s", i, r.got[i], want[i])
		}
	}
}
