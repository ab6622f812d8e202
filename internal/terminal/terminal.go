// Package terminal runs a session on a character terminal.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridsnake/internal/render"
	"gridsnake/internal/render/termsurface"
	"gridsnake/internal/session"
)

// FrameInterval paces frames like a 60 Hz display refresh.
const FrameInterval = time.Second / 60

// Run takes over the terminal until the user quits or ctx is done.
func Run(ctx context.Context, cfg session.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	screen.HideCursor()
	return run(ctx, screen, cfg)
}

func run(ctx context.Context, screen tcell.Screen, cfg session.Config) error {
	surface := termsurface.New(screen)
	sc := cfg.Start(surface)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)

	// The poller steers directly through the mailbox; everything else is
	// handed to the loop.
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			if key, ok := ev.(*tcell.EventKey); ok {
				cmd, quit := translate(key)
				if d, ok := cmd.Direction(); ok && !quit {
					sc.Steer(d)
					continue
				}
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	if err := draw(screen, surface, sc); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd, quit := translate(ev)
				if quit {
					return nil
				}
				cfg.Handle(sc, cmd)
			case *tcell.EventResize:
				screen.Sync()
				surface.Resize()
			}

		case <-ticker.C:
			cfg.Tick(sc)
			if err := draw(screen, surface, sc); err != nil {
				return err
			}
		}
	}
}

func draw(screen tcell.Screen, surface *termsurface.Surface, sc *session.Context) error {
	surface.BeginFrame(render.Palette.Background.Color())
	if err := sc.Draw(); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	surface.SetStatus(sc.Snapshot().Summary())
	surface.Show()
	return nil
}
