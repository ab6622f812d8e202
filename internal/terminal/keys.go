package terminal

import (
	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/session"
)

var runeCommands = map[rune]session.Command{
	'w': session.CmdUp,
	's': session.CmdDown,
	'a': session.CmdLeft,
	'd': session.CmdRight,
	'r': session.CmdApply,
	'[': session.CmdColumnsDown,
	']': session.CmdColumnsUp,
	'-': session.CmdRowsDown,
	'=': session.CmdRowsUp,
	',': session.CmdSpeedDown,
	'.': session.CmdSpeedUp,
	'9': session.CmdCanvasDown,
	'0': session.CmdCanvasUp,
}

var keyCommands = map[tcell.Key]session.Command{
	tcell.KeyUp:    session.CmdUp,
	tcell.KeyDown:  session.CmdDown,
	tcell.KeyLeft:  session.CmdLeft,
	tcell.KeyRight: session.CmdRight,
	tcell.KeyEnter: session.CmdApply,
}

// translate maps a key event to a command, or reports quit.
func translate(ev *tcell.EventKey) (cmd session.Command, quit bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.CmdNone, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' || r == 'Q' {
			return session.CmdNone, true
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return runeCommands[r], false
	}
	return keyCommands[ev.Key()], false
}
