package render

import (
	"fmt"

	"gridsnake/internal/game"
)

const (
	BodyScale = 0.92
	FoodScale = 0.5
)

// BodyColor is the snake colour for a game status.
func BodyColor(s game.Status) Color {
	switch s {
	case game.Defeat:
		return Palette.Defeat.Color()
	case game.Victory:
		return Palette.Victory.Color()
	}
	return Palette.Default.Color()
}

// DrawGame draws the grid, the snake and, unless the game is won, the food.
// grid is the line batch from GridLines for the game's current size.
func DrawGame(s Surface, g *game.Game, grid []float32) error {
	if err := s.DrawLines(Palette.Default.Color(), grid); err != nil {
		return fmt.Errorf("grid: %w", err)
	}

	vp := s.Viewport()
	columns, rows := g.Size()
	width, height := vp.Cell(columns, rows)
	status := g.Status()
	body := BodyColor(status)

	for _, seg := range g.Snake().Segments() {
		s.DrawRectCentered(vp.ToWorld(seg.Position, columns, rows), body, width, height, BodyScale)
	}

	// After a victory the last food cell is under the head.
	if status != game.Victory {
		if food, ok := g.Food(); ok {
			s.DrawRectCentered(vp.ToWorld(food, columns, rows), Palette.Food.Color(), width, height, FoodScale)
		}
	}
	return nil
}
