package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/session"
)

type binding struct {
	key glfw.Key
	cmd session.Command
}

var bindings = []binding{
	{glfw.KeyW, session.CmdUp},
	{glfw.KeyUp, session.CmdUp},
	{glfw.KeyS, session.CmdDown},
	{glfw.KeyDown, session.CmdDown},
	{glfw.KeyA, session.CmdLeft},
	{glfw.KeyLeft, session.CmdLeft},
	{glfw.KeyD, session.CmdRight},
	{glfw.KeyRight, session.CmdRight},
	{glfw.KeyR, session.CmdApply},
	{glfw.KeyLeftBracket, session.CmdColumnsDown},
	{glfw.KeyRightBracket, session.CmdColumnsUp},
	{glfw.KeyMinus, session.CmdRowsDown},
	{glfw.KeyEqual, session.CmdRowsUp},
	{glfw.KeyComma, session.CmdSpeedDown},
	{glfw.KeyPeriod, session.CmdSpeedUp},
	{glfw.Key9, session.CmdCanvasDown},
	{glfw.Key0, session.CmdCanvasUp},
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Commands returns the commands whose key went down since the last call,
// in binding order.
func (in *Input) Commands(window *glfw.Window) []session.Command {
	var cmds []session.Command
	for _, b := range bindings {
		if in.JustPressed(window, b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
