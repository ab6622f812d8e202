package game

import "fmt"

// Vec2 is an integer grid position.
type Vec2 struct {
	X, Y int
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Equal(o Vec2) bool { return v.X == o.X && v.Y == o.Y }

func (v Vec2) String() string { return fmt.Sprintf("(%d,%d)", v.X, v.Y) }

// Direction is one of the four grid unit vectors.
// The zero value is Right.
type Direction uint8

const (
	Right Direction = iota
	Left
	Up // +y, toward the top of the projection
	Down
)

var directionVecs = [...]Vec2{
	Right: {X: 1, Y: 0},
	Left:  {X: -1, Y: 0},
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
}

var directionNames = [...]string{
	Right: "right",
	Left:  "left",
	Up:    "up",
	Down:  "down",
}

// Vec returns the unit vector of d.
func (d Direction) Vec() Vec2 { return directionVecs[d&3] }

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string { return directionNames[d&3] }
