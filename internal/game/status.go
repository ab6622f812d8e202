package game

type Status int

const (
	Going   Status = iota // simulation advancing
	Defeat                // head left the grid or hit the body
	Victory               // no free cell left for food
)

func (s Status) String() string {
	switch s {
	case Going:
		return "going"
	case Defeat:
		return "defeat"
	case Victory:
		return "victory"
	}
	return "unknown"
}

// Terminal reports whether Move has become a no-op.
func (s Status) Terminal() bool { return s != Going }
