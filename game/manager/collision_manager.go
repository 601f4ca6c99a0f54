package manager

import (
	"glitch-phone/game/entity"
	"glitch-phone/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// CollisionManager owns the board topology. There are no walls: heads wrap
// around the edges and the only deadly cell is the snake's own body.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// NextHead computes where the head lands after moving by delta.
func (cm *CollisionManager) NextHead(head, delta types.Point) types.Point {
	return cm.grid.Wrap(head, delta)
}

// CheckCollision tests pos against the body as it is before the move, tail
// included.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) CollisionType {
	if snake != nil && snake.Occupies(pos) {
		return SelfCollision
	}
	return NoCollision
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
