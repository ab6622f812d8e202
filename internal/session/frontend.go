package session

import (
	"log"

	"gridsnake/internal/game"
	"gridsnake/internal/render"
)

// Config is what a frontend needs to start a session.
type Config struct {
	Settings Settings // already validated
	Rand     game.Rand
	Logger   *log.Logger

	// Attach runs once the context exists, before the first frame.
	Attach func(*Context)
	// Publish receives a snapshot after every move and every reset.
	Publish func(Snapshot)
}

func (cfg Config) publish(c *Context) {
	if cfg.Publish != nil {
		cfg.Publish(c.Snapshot())
	}
}

// Start builds the context on surface, attaches observers and publishes the
// opening position.
func (cfg Config) Start(surface render.Surface) *Context {
	c := New(surface, cfg.Settings, cfg.Rand)
	if cfg.Attach != nil {
		cfg.Attach(c)
	}
	cfg.publish(c)
	return c
}

// Tick runs one frame, publishing when the game moved.
func (cfg Config) Tick(c *Context) {
	if c.Frame() {
		cfg.publish(c)
	}
}

// Handle performs cmd, publishing after a reset. Rejected settings are
// reported through EventSettingsRejected, not here.
func (cfg Config) Handle(c *Context, cmd Command) {
	if cmd == CmdApply {
		_ = c.Apply()
		cfg.publish(c)
		return
	}
	c.Do(cmd)
}
