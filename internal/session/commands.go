package session

import "gridsnake/internal/game"

// Command is a frontend-independent user action.
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdApply
	CmdColumnsDown
	CmdColumnsUp
	CmdRowsDown
	CmdRowsUp
	CmdSpeedDown
	CmdSpeedUp
	CmdCanvasDown
	CmdCanvasUp
)

// Direction returns the steering direction of a movement command.
func (cmd Command) Direction() (game.Direction, bool) {
	switch cmd {
	case CmdUp:
		return game.Up, true
	case CmdDown:
		return game.Down, true
	case CmdLeft:
		return game.Left, true
	case CmdRight:
		return game.Right, true
	}
	return 0, false
}

// Do performs cmd. Only CmdApply can fail, with the error Apply returns.
func (c *Context) Do(cmd Command) error {
	if d, ok := cmd.Direction(); ok {
		c.Steer(d)
		return nil
	}

	switch cmd {
	case CmdApply:
		return c.Apply()
	case CmdColumnsDown:
		c.AdjustColumns(-GridStep)
	case CmdColumnsUp:
		c.AdjustColumns(GridStep)
	case CmdRowsDown:
		c.AdjustRows(-GridStep)
	case CmdRowsUp:
		c.AdjustRows(GridStep)
	case CmdSpeedDown:
		c.AdjustSpeed(-SpeedStep)
	case CmdSpeedUp:
		c.AdjustSpeed(SpeedStep)
	case CmdCanvasDown:
		c.AdjustCanvas(-CanvasStep, -CanvasStep)
	case CmdCanvasUp:
		c.AdjustCanvas(CanvasStep, CanvasStep)
	}
	return nil
}
