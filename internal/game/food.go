package game

import "golang.org/x/exp/rand"

// Rand is the randomness food placement draws from.
type Rand interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// NewRand returns the default source seeded with seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewSource(seed))
}

// FindFoodPosition picks a uniformly random free cell, or reports false when
// the snake covers the whole grid. It scans the grid row by row, so it costs
// O(width*height) per call; grids are small enough for that.
func (g *Game) FindFoodPosition() (Vec2, bool) {
	free := g.xSlices*g.ySlices - g.snake.Len()
	if free <= 0 {
		return Vec2{}, false
	}

	skip := g.rng.Intn(free)
	for y := 0; y < g.ySlices; y++ {
		for x := 0; x < g.xSlices; x++ {
			p := Vec2{X: x, Y: y}
			if g.snake.Occupied(p) {
				continue
			}
			if skip == 0 {
				return p, true
			}
			skip--
		}
	}

	// unreachable while free counts the cells above.
	return Vec2{}, false
}
