package game

import (
	"fmt"
	"time"

	"glitch-phone/game/entity"
	"glitch-phone/game/manager"
	"glitch-phone/game/types"

	"golang.org/x/exp/rand"
)

// ErrGridTooSmall is returned when a grid cannot host a snake and its food.
var ErrGridTooSmall = fmt.Errorf("grid must be at least %dx%d", types.MinGridSize, types.MinGridSize)

// Frame is what a renderer needs to paint one step of the game.
type Frame struct {
	SessionID string
	Tick      uint64
	Grid      types.Grid
	Snake     []types.Point // head first
	Food      types.Point
	HasFood   bool
	Direction types.Direction
	Alive     bool
	Ate       bool
}

// Head returns the head cell of the snake in this frame.
func (f Frame) Head() types.Point {
	if len(f.Snake) == 0 {
		return types.Point{}
	}
	return f.Snake[0]
}

// State is the deterministic simulation of one session. It is not safe
// for concurrent use; Engine serializes access to it.
type State struct {
	grid         types.Grid
	snake        *entity.Snake
	food         types.Point
	hasFood      bool
	tick         uint64
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
}

// NewState places a one-cell snake at the center heading right and drops
// the first food on a free cell.
func NewState(grid types.Grid, rng *rand.Rand, now func() time.Time) (*State, error) {
	if !grid.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrGridTooSmall, grid)
	}
	collisionMgr := manager.NewCollisionManager(grid)
	s := &State{
		grid:         grid,
		snake:        entity.NewSnake(grid.Center(), types.Right),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, collisionMgr),
		stateMgr:     manager.NewStateManager(now),
	}
	s.food, s.hasFood = s.foodMgr.GenerateFood(s.snake)
	return s, nil
}

// RequestDirection buffers a heading for the next Advance. Reversals of the
// committed heading and requests after death are ignored.
func (s *State) RequestDirection(dir types.Direction) bool {
	return s.snake.SetDirection(dir)
}

// Advance runs one tick: commit the heading, move with wrap-around, check
// the body, then either grow onto the food or drop the tail.
func (s *State) Advance() Frame {
	if s.snake.Dead {
		return s.frame(false)
	}
	s.tick++

	delta := s.snake.Commit()
	newHead := s.collisionMgr.NextHead(s.snake.GetHead(), delta)

	if c := s.collisionMgr.CheckCollision(newHead, s.snake); c != manager.NoCollision {
		s.snake.Dead = true
		s.stateMgr.RecordDeath(c)
		return s.frame(false)
	}

	s.snake.Move(newHead)

	ate := s.hasFood && s.collisionMgr.IsFoodCollision(newHead, s.food)
	if ate {
		s.stateMgr.RecordMeal()
		s.food, s.hasFood = s.foodMgr.GenerateFood(s.snake)
	} else {
		s.snake.RemoveTail()
	}
	s.stateMgr.RecordTick(s.snake.Len())

	return s.frame(ate)
}

// Frame describes the current state without advancing it.
func (s *State) Frame() Frame {
	return s.frame(false)
}

func (s *State) frame(ate bool) Frame {
	return Frame{
		Tick:      s.tick,
		Grid:      s.grid,
		Snake:     s.snake.Cells(),
		Food:      s.food,
		HasFood:   s.hasFood,
		Direction: s.snake.Direction,
		Alive:     !s.snake.Dead,
		Ate:       ate,
	}
}

func (s *State) Alive() bool { return !s.snake.Dead }
func (s *State) Len() int { return s.snake.Len() }
func (s *State) Head() types.Point { return s.snake.GetHead() }
func (s *State) Food() types.Point { return s.food }
func (s *State) Grid() types.Grid { return s.grid }
func (s *State) Tick() uint64 { return s.tick }
func (s *State) Stats() manager.SessionStats {
	return s.stateMgr.Stats()
}

// close finalizes the stats of a session that ends without a death.
func (s *State) close() {
	s.stateMgr.Close()
}
