// Package session owns a running game: the frame counter that paces it, the
// steering mailbox, the applied and pending settings, and the events other
// subsystems listen to.
package session

import (
	"strings"

	"gridsnake/internal/game"
	"gridsnake/internal/render"
)

// Context is driven by exactly one loop goroutine. Only Steer may be called
// from elsewhere.
type Context struct {
	game    *game.Game
	surface render.Surface
	grid    []float32

	applied Settings
	pending Settings

	ticks   int
	intents chan game.Direction
	message string

	Events *EventBus
}

// New starts a game with settings, which must already be valid, and fits
// surface to it.
func New(surface render.Surface, settings Settings, rng game.Rand) *Context {
	c := &Context{
		game:    game.NewGame(settings.Columns, settings.Rows, rng),
		surface: surface,
		applied: settings,
		pending: settings,
		intents: make(chan game.Direction, 1),
		Events:  NewEventBus(),
	}
	c.rescale()
	return c
}

func (c *Context) Game() *game.Game  { return c.game }
func (c *Context) Applied() Settings { return c.applied }
func (c *Context) Pending() Settings { return c.pending }
func (c *Context) Ticks() int        { return c.ticks }
func (c *Context) Message() string   { return c.message }

// SetPending replaces the settings the next Apply will use.
func (c *Context) SetPending(s Settings) { c.pending = s }

// Steer records d as the direction to take at the next move, replacing any
// intent not yet consumed.
func (c *Context) Steer(d game.Direction) {
	for {
		select {
		case c.intents <- d:
			return
		default:
		}
		select {
		case <-c.intents:
		default:
		}
	}
}

func (c *Context) drainIntents() {
	select {
	case <-c.intents:
	default:
	}
}

// Frame advances the frame counter and, on frames that fall on the move
// cadence of a game still going, applies the latest intent and moves. It
// reports whether the game moved.
func (c *Context) Frame() bool {
	defer func() { c.ticks++ }()

	if c.game.Status() != game.Going {
		return false
	}
	if c.ticks%c.applied.MovesPerTick() != 0 {
		return false
	}

	select {
	case d := <-c.intents:
		c.game.SetDirection(d)
	default:
	}

	score := c.game.Score()
	c.game.Move()

	e := Event{
		Head:         c.game.Snake().Head().Position,
		Score:        c.game.Score(),
		MaximumScore: c.game.MaximumScore(),
	}
	if e.Score > score {
		e.Type = EventFoodEaten
		c.Events.Emit(e)
	}
	switch c.game.Status() {
	case game.Defeat:
		e.Type = EventDefeat
		c.Events.Emit(e)
	case game.Victory:
		e.Type = EventVictory
		c.Events.Emit(e)
	}
	return true
}

// Apply validates the pending settings, reverting each invalid group to
// its applied value, then refits the surface and restarts the game. A
// rejected canvas size reverts to the surface's current pixel size. The
// returned error lists what was rejected; the reset happens regardless.
func (c *Context) Apply() error {
	fallback := c.applied
	if canvas, ok := c.surface.(render.Canvas); ok {
		fallback.Width, fallback.Height = canvas.CanvasSize()
	}

	resolved, err := c.pending.Resolve(fallback)
	if err != nil {
		c.message = strings.ReplaceAll(err.Error(), "\n", "; ")
		c.Events.Emit(Event{Type: EventSettingsRejected, Err: err})
	} else {
		c.message = ""
	}

	c.applied, c.pending = resolved, resolved
	c.drainIntents()
	c.rescale()
	c.game.Reset(resolved.Columns, resolved.Rows)
	c.ticks = 0

	c.Events.Emit(Event{
		Type:         EventReset,
		Head:         c.game.Snake().Head().Position,
		MaximumScore: c.game.MaximumScore(),
	})
	return err
}

func (c *Context) rescale() {
	ratio := c.applied.Ratio()
	if canvas, ok := c.surface.(render.Canvas); ok {
		canvas.SetCanvasSize(c.applied.Width, c.applied.Height)
	}
	c.surface.RescaleCanvas(ratio)
	c.surface.RescaleProjection(ratio)
	c.grid = render.GridLines(c.surface.Viewport(), c.applied.Columns, c.applied.Rows)
}

// Draw renders the current game onto the surface.
func (c *Context) Draw() error {
	return render.DrawGame(c.surface, c.game, c.grid)
}

func (c *Context) AdjustRows(delta int)    { c.pending.Rows += delta }
func (c *Context) AdjustColumns(delta int) { c.pending.Columns += delta }
func (c *Context) AdjustSpeed(delta int)   { c.pending.Speed += delta }

func (c *Context) AdjustCanvas(dw, dh int) {
	c.pending.Width += dw
	c.pending.Height += dh
}
