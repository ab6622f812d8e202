package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/session"
)

// hud shows the session summary in the window title.
type hud struct {
	window *glfw.Window
	last   string
}

func (h *hud) update(s session.Snapshot) {
	title := windowTitle + " | " + s.Summary()
	if title == h.last {
		return
	}
	h.window.SetTitle(title)
	h.last = title
}
