package shell

import "glitch-phone/game/types"

// Navigator tracks the focused icon. Every move wraps around the full app
// list, so Down from the last row lands in the first.
type Navigator struct {
	index int
	count int
	cols  int
}

func NewNavigator(count, cols int) *Navigator {
	if cols < 1 {
		cols = 1
	}
	return &Navigator{count: count, cols: cols}
}

func (n *Navigator) Index() int { return n.index }

// Focus moves to i when it is a valid icon.
func (n *Navigator) Focus(i int) {
	if i >= 0 && i < n.count {
		n.index = i
	}
}

// Move shifts the focus one icon horizontally or one row vertically and
// returns the new index.
func (n *Navigator) Move(dir types.Direction) int {
	if n.count == 0 {
		return 0
	}
	step := 0
	switch dir {
	case types.Right:
		step = 1
	case types.Left:
		step = -1
	case types.Down:
		step = n.cols
	case types.Up:
		step = -n.cols
	}
	n.index = ((n.index+step)%n.count + n.count) % n.count
	return n.index
}
