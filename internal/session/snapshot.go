package session

import (
	"fmt"
	"strings"

	"gridsnake/internal/game"
)

// Snapshot is a copy of everything observers may show. It shares no memory
// with the running game.
type Snapshot struct {
	Columns, Rows int
	Snake         []game.Vec2 // head first
	Food          *game.Vec2  // nil once the grid is full
	Status        game.Status
	Score         int
	MaximumScore  int
	Speed         int

	Pending Settings
	Message string
}

func (c *Context) Snapshot() Snapshot {
	columns, rows := c.game.Size()
	segments := c.game.Snake().Segments()

	s := Snapshot{
		Columns:      columns,
		Rows:         rows,
		Snake:        make([]game.Vec2, len(segments)),
		Status:       c.game.Status(),
		Score:        c.game.Score(),
		MaximumScore: c.game.MaximumScore(),
		Speed:        c.applied.Speed,
		Pending:      c.pending,
		Message:      c.message,
	}
	for i, seg := range segments {
		s.Snake[i] = seg.Position
	}
	if food, ok := c.game.Food(); ok && s.Status != game.Victory {
		s.Food = &food
	}
	return s
}

// Summary is the one-line HUD text shown by both frontends.
func (s Snapshot) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "score %d  max %d  speed %d", s.Score, s.MaximumScore, s.Speed)
	switch s.Status {
	case game.Defeat:
		b.WriteString("  defeat, R to restart")
	case game.Victory:
		b.WriteString("  victory, R to restart")
	}
	fmt.Fprintf(&b, "  | next %dx%d speed %d %dx%d",
		s.Pending.Columns, s.Pending.Rows, s.Pending.Speed, s.Pending.Width, s.Pending.Height)
	if s.Message != "" {
		b.WriteString("  | ")
		b.WriteString(s.Message)
	}
	return b.String()
}
