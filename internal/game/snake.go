package game

import "github.com/gammazero/deque"

// InitialLength is the number of segments a new snake starts with.
const InitialLength = 3

// Segment is one occupied cell of the body and the direction that cell last moved in.
type Segment struct {
	Position  Vec2
	Direction Direction
}

// Snake is the segment chain, head first. Segments are stored by value;
// callers only ever receive copies.
type Snake struct {
	body deque.Deque[Segment]
}

// NewSnake lays out InitialLength segments behind head, all moving in dir.
// The caller is responsible for keeping them inside the grid.
func NewSnake(head Vec2, dir Direction) *Snake {
	s := &Snake{}
	step := dir.Vec()
	p := head
	for i := 0; i < InitialLength; i++ {
		s.body.PushBack(Segment{Position: p, Direction: dir})
		p = p.Sub(step)
	}
	return s
}

func (s *Snake) Len() int { return s.body.Len() }

func (s *Snake) Head() Segment { return s.body.Front() }

func (s *Snake) Tail() Segment { return s.body.Back() }

// At returns the i-th segment counted from the head.
func (s *Snake) At(i int) Segment { return s.body.At(i) }

// Segments returns a head-first copy of the body.
func (s *Snake) Segments() []Segment {
	out := make([]Segment, s.body.Len())
	for i := range out {
		out[i] = s.body.At(i)
	}
	return out
}

// Move advances every segment one cell. The walk runs tail to head so that
// each segment adopts the direction its head-ward neighbour had before this
// tick; reversing it breaks the follow relationship.
func (s *Snake) Move() {
	for i := s.body.Len() - 1; i > 0; i-- {
		seg := s.body.At(i)
		seg.Position = seg.Position.Add(seg.Direction.Vec())
		seg.Direction = s.body.At(i - 1).Direction
		s.body.Set(i, seg)
	}

	head := s.body.Front()
	head.Position = head.Position.Add(head.Direction.Vec())
	s.body.Set(0, head)
}

// Grow pushes a new head at p carrying the current head's direction.
func (s *Snake) Grow(p Vec2) {
	s.body.PushFront(Segment{Position: p, Direction: s.body.Front().Direction})
}

// Occupied reports whether any segment, head included, sits on p.
func (s *Snake) Occupied(p Vec2) bool {
	for i := 0; i < s.body.Len(); i++ {
		if s.body.At(i).Position.Equal(p) {
			return true
		}
	}
	return false
}

// occupiedBehindHead is Occupied with the head exempted.
func (s *Snake) occupiedBehindHead(p Vec2) bool {
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i).Position.Equal(p) {
			return true
		}
	}
	return false
}

func (s *Snake) setHeadDirection(d Direction) {
	head := s.body.Front()
	head.Direction = d
	s.body.Set(0, head)
}
