package manager

import (
	"glitch-phone/game/entity"
	"glitch-phone/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager places the single food cell. Placement picks uniformly among
// the free cells, so it terminates at every fill level.
type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
	occupied     []bool
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
		occupied:     make([]bool, grid.Cells()),
	}
}

// GenerateFood returns a random cell not covered by the snake. ok is false
// when the snake fills the whole board.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (food types.Point, ok bool) {
	for i := range fm.occupied {
		fm.occupied[i] = false
	}
	free := len(fm.occupied)
	if snake != nil {
		for _, part := range snake.Body {
			idx := fm.index(part)
			if idx < 0 || fm.occupied[idx] {
				continue
			}
			fm.occupied[idx] = true
			free--
		}
	}
	if free <= 0 {
		return types.Point{}, false
	}

	pick := fm.rng.Intn(free)
	for idx, taken := range fm.occupied {
		if taken {
			continue
		}
		if pick == 0 {
			food = types.Point{X: idx % fm.grid.Columns, Y: idx / fm.grid.Columns}
			break
		}
		pick--
	}
	if !fm.collisionMgr.ValidateSpawnPosition(food, snake) {
		return types.Point{}, false
	}
	return food, true
}

func (fm *FoodManager) index(p types.Point) int {
	if !fm.grid.Contains(p) {
		return -1
	}
	return p.Y*fm.grid.Columns + p.X
}
