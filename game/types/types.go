package types

import "time"

// Grid represents the board dimensions in cells. The board is a torus:
// leaving one edge re-enters on the opposite one.
type Grid struct {
	Columns int
	Rows    int
}

// Defaults observed on the phone's game panel: a 260x220 canvas drawn with
// 10px cells, ticking every 120ms.
const (
	TickInterval  = 120 * time.Millisecond
	CellSize      = 10
	DisplayWidth  = 260
	DisplayHeight = 220

	// MinGridSize is the smallest number of columns or rows a session accepts.
	MinGridSize = 3
)

// GridForDisplay derives the grid that fits a pixel display with square cells.
func GridForDisplay(width, height, cell int) Grid {
	if cell <= 0 {
		return Grid{}
	}
	return Grid{Columns: width / cell, Rows: height / cell}
}

// Valid reports whether the grid is large enough to host a session.
func (g Grid) Valid() bool {
	return g.Columns >= MinGridSize && g.Rows >= MinGridSize
}

// Cells returns the number of cells on the board.
func (g Grid) Cells() int {
	return g.Columns * g.Rows
}

// Center returns the starting cell of a new snake.
func (g Grid) Center() Point {
	return Point{X: g.Columns / 2, Y: g.Rows / 2}
}

// Contains reports whether p lies on the board.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Columns && p.Y >= 0 && p.Y < g.Rows
}

// Wrap moves p by delta and folds the result back onto the board.
// Each axis is computed as (coord + delta + size) % size, then normalised
// again so deltas larger than one board never produce negative cells.
func (g Grid) Wrap(p, delta Point) Point {
	return Point{
		X: wrap(p.X+delta.X, g.Columns),
		Y: wrap(p.Y+delta.Y, g.Rows),
	}
}

func wrap(v, size int) int {
	v = (v + size) % size
	if v < 0 {
		v += size
	}
	return v
}

func (g Grid) String() string {
	return itoa(g.Columns) + "x" + itoa(g.Rows)
}
