package types

import "strconv"

// Point is a cell coordinate, or a unit delta when used as a heading.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return "(" + itoa(p.X) + "," + itoa(p.Y) + ")"
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

// Direction is one of the four cardinal headings. The zero value is None
// and is never accepted as a heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Delta converts a Direction into a movement vector. Y grows downwards.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the heading pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}

// ParseDirection maps the control names used by the on-screen buttons
// ("up", "down", "left", "right") to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return Up, true
	case "right":
		return Right, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	}
	return None, false
}
