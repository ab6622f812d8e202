package session

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/game"
	"gridsnake/internal/render/rendertest"
)

// lastRand always places food on the last free cell in row-major order.
type lastRand struct{}

func (lastRand) Intn(n int) int { return n - 1 }

func newTestContext(t *testing.T, settings Settings) (*Context, *rendertest.Recorder) {
	t.Helper()
	rec := rendertest.NewRecorder()
	return New(rec, settings, lastRand{}), rec
}

func fastSettings() Settings {
	s := DefaultSettings()
	s.Speed = MaxSpeed
	return s
}

func headOf(c *Context) game.Vec2 {
	return c.Game().Snake().Head().Position
}

func countEvents(c *Context) map[EventType]int {
	counts := make(map[EventType]int)
	c.Events.SubscribeAll(func(e Event) { counts[e.Type]++ })
	return counts
}

func TestNewFitsSurface(t *testing.T) {
	c, rec := newTestContext(t, DefaultSettings())

	if rec.Width != DefaultWidth || rec.Height != DefaultHeight {
		t.Errorf("expected canvas %dx%d, got %dx%d", DefaultWidth, DefaultHeight, rec.Width, rec.Height)
	}
	if x, y := c.Game().Size(); x != DefaultColumns || y != DefaultRows {
		t.Errorf("expected %dx%d grid, got %dx%d", DefaultColumns, DefaultRows, x, y)
	}
	if c.Ticks() != 0 {
		t.Errorf("expected ticks 0, got %d", c.Ticks())
	}
}

func TestFrameCadence(t *testing.T) {
	c, _ := newTestContext(t, DefaultSettings())
	perMove := DefaultSettings().MovesPerTick()

	if !c.Frame() {
		t.Fatal("expected the first frame to move")
	}
	if got := headOf(c); got != (game.Vec2{X: 5, Y: 3}) {
		t.Fatalf("expected head at (5,3), got %v", got)
	}

	for i := 1; i < perMove; i++ {
		if c.Frame() {
			t.Fatalf("unexpected move on frame %d", i)
		}
	}
	if got := headOf(c); got != (game.Vec2{X: 5, Y: 3}) {
		t.Errorf("expected head to wait at (5,3), got %v", got)
	}

	if !c.Frame() {
		t.Fatalf("expected a move on frame %d", perMove)
	}
	if got := headOf(c); got != (game.Vec2{X: 6, Y: 3}) {
		t.Errorf("expected head at (6,3), got %v", got)
	}
	if c.Ticks() != perMove+1 {
		t.Errorf("expected ticks %d, got %d", perMove+1, c.Ticks())
	}
}

func TestSteerLatestWins(t *testing.T) {
	c, _ := newTestContext(t, fastSettings())

	c.Steer(game.Up)
	c.Steer(game.Down)
	c.Frame()

	if got := headOf(c); got != (game.Vec2{X: 4, Y: 2}) {
		t.Errorf("expected the later intent to win, head at %v", got)
	}
}

func TestSteerReversalIgnored(t *testing.T) {
	c, _ := newTestContext(t, fastSettings())

	c.Steer(game.Left)
	c.Frame()

	if got := headOf(c); got != (game.Vec2{X: 5, Y: 3}) {
		t.Errorf("expected the snake to keep going right, head at %v", got)
	}
}

func TestFrameEmitsDefeatOnce(t *testing.T) {
	c, _ := newTestContext(t, fastSettings())
	counts := countEvents(c)

	// (4,3) moving right on 8 columns: the fourth move leaves the grid.
	for i := 0; i < 4; i++ {
		c.Frame()
	}
	if c.Game().Status() != game.Defeat {
		t.Fatalf("expected defeat, got %v", c.Game().Status())
	}
	if c.Frame() {
		t.Error("expected no move after defeat")
	}
	if counts[EventDefeat] != 1 {
		t.Errorf("expected one defeat event, got %d", counts[EventDefeat])
	}
}

func TestApplyKeepsMaximumScore(t *testing.T) {
	c, _ := newTestContext(t, fastSettings())
	counts := countEvents(c)

	// Food sits on the last free cell, (7,5).
	if food, ok := c.Game().Food(); !ok || food != (game.Vec2{X: 7, Y: 5}) {
		t.Fatalf("expected food at (7,5), got %v", food)
	}
	c.Steer(game.Up)
	c.Frame()
	c.Frame()
	c.Steer(game.Right)
	c.Frame()
	c.Frame()
	c.Frame()

	if c.Game().Score() != 1 || counts[EventFoodEaten] != 1 {
		t.Fatalf("expected one food eaten, score %d events %d", c.Game().Score(), counts[EventFoodEaten])
	}

	if err := c.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if c.Game().Score() != 0 {
		t.Errorf("expected score 0 after reset, got %d", c.Game().Score())
	}
	if c.Game().MaximumScore() != 1 {
		t.Errorf("expected maximum score 1 to survive, got %d", c.Game().MaximumScore())
	}
	if c.Ticks() != 0 {
		t.Errorf("expected ticks 0 after apply, got %d", c.Ticks())
	}
	if counts[EventReset] != 1 {
		t.Errorf("expected one reset event, got %d", counts[EventReset])
	}
}

func TestApplyRescalesSurface(t *testing.T) {
	c, rec := newTestContext(t, DefaultSettings())

	c.AdjustColumns(8)
	c.AdjustRows(2)
	c.AdjustCanvas(-200, 0)
	if err := c.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if x, y := c.Game().Size(); x != 16 || y != 8 {
		t.Errorf("expected 16x8 grid, got %dx%d", x, y)
	}
	if got := rec.Canvas[len(rec.Canvas)-1]; got != 2 {
		t.Errorf("expected canvas ratio 2, got %v", got)
	}
	if rec.Width != 600 || rec.Height != 300 {
		t.Errorf("expected canvas 600x300, got %dx%d", rec.Width, rec.Height)
	}
	if !mgl32.FloatEqual(rec.VP.Bottom, -4) || !mgl32.FloatEqual(rec.VP.Top, 4) {
		t.Errorf("expected projection y -4..4, got %v..%v", rec.VP.Bottom, rec.VP.Top)
	}

	if err := c.Draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := len(rec.Lines[0].Points); got != (17+9)*4 {
		t.Errorf("expected grid for 16x8, got %d values", got)
	}
}

func TestApplyRejectsInvalidGroups(t *testing.T) {
	c, _ := newTestContext(t, DefaultSettings())
	counts := countEvents(c)
	for i := 0; i < 10; i++ {
		c.Frame()
	}

	pending := c.Pending()
	pending.Rows = 40
	c.SetPending(pending)
	c.AdjustSpeed(SpeedStep)

	err := c.Apply()
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) || rangeErr.Field != "rows" {
		t.Fatalf("expected a rows RangeError, got %v", err)
	}

	applied := c.Applied()
	if applied.Rows != DefaultRows || applied.Columns != DefaultColumns {
		t.Errorf("expected grid to revert, got %dx%d", applied.Columns, applied.Rows)
	}
	if applied.Speed != DefaultSpeed+1 {
		t.Errorf("expected the valid speed to apply, got %d", applied.Speed)
	}
	if c.Pending() != applied {
		t.Errorf("expected pending to match applied, got %+v", c.Pending())
	}
	if !strings.Contains(c.Message(), "rows (40)") {
		t.Errorf("expected the rejection in the message, got %q", c.Message())
	}
	if counts[EventSettingsRejected] != 1 || counts[EventReset] != 1 {
		t.Errorf("expected one rejection and one reset, got %v", counts)
	}
	if c.Ticks() != 0 {
		t.Errorf("expected ticks 0, got %d", c.Ticks())
	}

	if err := c.Apply(); err != nil {
		t.Errorf("expected the reverted settings to apply cleanly, got %v", err)
	}
	if c.Message() != "" {
		t.Errorf("expected the message to clear, got %q", c.Message())
	}
}

func TestApplyRevertsCanvasToCurrentSize(t *testing.T) {
	c, rec := newTestContext(t, DefaultSettings())

	// 16x8 at 600 wide derives a 600x300 canvas, though 600 high was asked for.
	c.AdjustColumns(8)
	c.AdjustRows(2)
	c.AdjustCanvas(-200, 0)
	if err := c.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if rec.Width != 600 || rec.Height != 300 {
		t.Fatalf("expected canvas 600x300, got %dx%d", rec.Width, rec.Height)
	}

	pending := c.Pending()
	pending.Width = MaxWidth + 100
	c.SetPending(pending)

	var rangeErr *RangeError
	if err := c.Apply(); !errors.As(err, &rangeErr) || rangeErr.Field != "width" {
		t.Fatalf("expected a width RangeError, got %v", err)
	}

	applied := c.Applied()
	if applied.Width != 600 || applied.Height != 300 {
		t.Errorf("expected the canvas size 600x300 as fallback, got %dx%d", applied.Width, applied.Height)
	}
	if c.Pending().Height != rec.Height {
		t.Errorf("expected pending height %d to match the canvas, got %d", rec.Height, c.Pending().Height)
	}
}

func TestApplyDropsStaleIntent(t *testing.T) {
	c, _ := newTestContext(t, fastSettings())

	c.Steer(game.Down)
	c.Apply()
	c.Frame()

	if got := headOf(c); got != (game.Vec2{X: 5, Y: 3}) {
		t.Errorf("expected the new game to start going right, head at %v", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c, _ := newTestContext(t, DefaultSettings())

	snap := c.Snapshot()
	if len(snap.Snake) != game.InitialLength || snap.Snake[0] != (game.Vec2{X: 4, Y: 3}) {
		t.Fatalf("unexpected snake %v", snap.Snake)
	}
	if snap.Food == nil || *snap.Food != (game.Vec2{X: 7, Y: 5}) {
		t.Fatalf("expected food at (7,5), got %v", snap.Food)
	}

	snap.Snake[0] = game.Vec2{X: 0, Y: 0}
	*snap.Food = game.Vec2{X: 1, Y: 1}
	if headOf(c) != (game.Vec2{X: 4, Y: 3}) {
		t.Error("expected the snapshot to share no memory with the game")
	}
	if food, _ := c.Game().Food(); food != (game.Vec2{X: 7, Y: 5}) {
		t.Error("expected food to be unaffected by the snapshot")
	}

	if !strings.Contains(snap.Summary(), "score 0  max 0  speed 1") {
		t.Errorf("unexpected summary %q", snap.Summary())
	}
}
