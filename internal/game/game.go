package game

import "fmt"

// Game is the grid simulation: one snake, one food cell, a status and the scores.
type Game struct {
	xSlices, ySlices int

	snake   *Snake
	food    Vec2
	hasFood bool
	status  Status

	score        int
	maximumScore int

	rng Rand
}

// NewGame builds a game on an x by y grid with the snake's head in the middle
// moving right. The grid must fit the initial snake (x >= 4, y >= 1);
// anything smaller is a programming error and panics.
func NewGame(x, y int, rng Rand) *Game {
	g := &Game{rng: rng}
	g.init(x, y)
	return g
}

func (g *Game) init(x, y int) {
	if x < InitialLength+1 || y < 1 {
		panic(fmt.Sprintf("game: %dx%d grid cannot hold a %d-segment snake", x, y, InitialLength))
	}

	g.xSlices = x
	g.ySlices = y
	g.snake = NewSnake(Vec2{X: x / 2, Y: y / 2}, Right)
	g.food, g.hasFood = g.FindFoodPosition()
	g.status = Going
	g.score = 0
}

// Reset starts over on an x by y grid. The maximum score survives.
func (g *Game) Reset(x, y int) {
	g.init(x, y)
}

func (g *Game) Size() (x, y int)   { return g.xSlices, g.ySlices }
func (g *Game) Status() Status     { return g.status }
func (g *Game) Score() int         { return g.score }
func (g *Game) MaximumScore() int  { return g.maximumScore }
func (g *Game) Snake() *Snake      { return g.snake }
func (g *Game) Food() (Vec2, bool) { return g.food, g.hasFood }

// ValidHeadPosition reports whether the head may move to p: p must be on the
// grid and off every segment except the current head. The tail is checked
// too, even though it would vacate its cell this tick.
func (g *Game) ValidHeadPosition(p Vec2) bool {
	if g.snake.occupiedBehindHead(p) {
		return false
	}
	return p.X >= 0 && p.X < g.xSlices && p.Y >= 0 && p.Y < g.ySlices
}

// Move advances the simulation one tick. It does nothing once the game has
// reached Defeat or Victory.
func (g *Game) Move() {
	if g.status.Terminal() {
		return
	}

	head := g.snake.Head()
	candidate := head.Position.Add(head.Direction.Vec())

	if g.hasFood && candidate.Equal(g.food) {
		g.score++
		if g.maximumScore < g.score {
			g.maximumScore = g.score
		}

		g.snake.Grow(candidate)

		// On victory food keeps its last value even though the head now covers it.
		if food, ok := g.FindFoodPosition(); ok {
			g.food = food
		} else {
			g.status = Victory
		}
		return
	}

	if g.ValidHeadPosition(candidate) {
		g.snake.Move()
	} else {
		g.status = Defeat
	}
}

// SetDirection points the head in d unless that would turn it back onto the
// segment right behind it. Rejected requests are dropped; the result only
// reports what happened.
func (g *Game) SetDirection(d Direction) bool {
	if g.snake.Len() < 2 {
		return false
	}

	head := g.snake.Head()
	if head.Position.Add(d.Vec()).Equal(g.snake.At(1).Position) {
		return false
	}

	g.snake.setHeadDirection(d)
	return true
}
