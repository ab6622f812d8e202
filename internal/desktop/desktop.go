// Package desktop runs a session in an OpenGL window.
package desktop

import (
	"context"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gridsnake/internal/render"
	"gridsnake/internal/render/glsurface"
	"gridsnake/internal/session"
)

// Run blocks until the window closes or ctx is done. It must be called from
// the main goroutine.
func Run(ctx context.Context, cfg session.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	window, err := initWindow(cfg.Settings.Width, cfg.Settings.Height)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	if cfg.Logger != nil {
		cfg.Logger.Printf("desktop: OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	}

	surface, err := glsurface.New(cfg.Settings.Width, cfg.Settings.Height, func(w, h int) {
		window.SetSize(w, h)
	})
	if err != nil {
		return fmt.Errorf("surface: %w", err)
	}
	defer surface.Destroy()

	sc := cfg.Start(surface)
	input := NewInput()
	title := &hud{window: window}

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		for _, cmd := range input.Commands(window) {
			cfg.Handle(sc, cmd)
		}
		cfg.Tick(sc)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		surface.BeginFrame(fbW, fbH, render.Palette.Background.Color())
		if err := sc.Draw(); err != nil {
			return fmt.Errorf("draw: %w", err)
		}
		title.update(sc.Snapshot())

		window.SwapBuffers()
	}
	return nil
}
