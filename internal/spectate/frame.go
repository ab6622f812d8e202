package spectate

import "gridsnake/internal/session"

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Frame is the JSON document pushed to viewers on every move.
type Frame struct {
	Columns      int     `json:"columns"`
	Rows         int     `json:"rows"`
	Snake        []Point `json:"snake"`
	Food         *Point  `json:"food"`
	Status       string  `json:"status"`
	Score        int     `json:"score"`
	MaximumScore int     `json:"maximum_score"`
}

func FrameOf(s session.Snapshot) Frame {
	f := Frame{
		Columns:      s.Columns,
		Rows:         s.Rows,
		Snake:        make([]Point, len(s.Snake)),
		Status:       s.Status.String(),
		Score:        s.Score,
		MaximumScore: s.MaximumScore,
	}
	for i, p := range s.Snake {
		f.Snake[i] = Point{X: p.X, Y: p.Y}
	}
	if s.Food != nil {
		f.Food = &Point{X: s.Food.X, Y: s.Food.Y}
	}
	return f
}
