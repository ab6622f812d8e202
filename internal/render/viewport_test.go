package render

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/game"
)

func TestViewportRescale(t *testing.T) {
	vp := DefaultViewport()

	same := vp.Rescale(16.0 / 12.0)
	if !mgl32.FloatEqual(same.Bottom, vp.Bottom) || !mgl32.FloatEqual(same.Top, vp.Top) {
		t.Errorf("expected 4:3 rescale to keep %+v, got %+v", vp, same)
	}

	wide := vp.Rescale(2)
	if wide.Left != -8 || wide.Right != 8 {
		t.Errorf("expected x extent to stay -8..8, got %v..%v", wide.Left, wide.Right)
	}
	if wide.Bottom != -4 || wide.Top != 4 {
		t.Errorf("expected y extent -4..4, got %v..%v", wide.Bottom, wide.Top)
	}

	// Rescaling compounds from the current bounds, not the defaults.
	tall := wide.Rescale(0.5)
	if tall.Bottom != -16 || tall.Top != 16 {
		t.Errorf("expected y extent -16..16, got %v..%v", tall.Bottom, tall.Top)
	}
}

func TestViewportProjection(t *testing.T) {
	vp := DefaultViewport().Rescale(32.0 / 6.0)
	proj := vp.Projection()

	corners := []struct {
		world mgl32.Vec4
		clip  mgl32.Vec2
	}{
		{mgl32.Vec4{vp.Left, vp.Bottom, 0, 1}, mgl32.Vec2{-1, -1}},
		{mgl32.Vec4{vp.Right, vp.Top, 0, 1}, mgl32.Vec2{1, 1}},
		{mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec2{0, 0}},
	}
	for _, c := range corners {
		got := proj.Mul4x1(c.world)
		if !mgl32.FloatEqual(got.X(), c.clip.X()) || !mgl32.FloatEqual(got.Y(), c.clip.Y()) {
			t.Errorf("expected %v to project to %v, got %v", c.world, c.clip, got)
		}
	}
}

func TestViewportToWorld(t *testing.T) {
	vp := DefaultViewport()

	w, h := vp.Cell(8, 6)
	if w != 2 || h != 2 {
		t.Fatalf("expected 2x2 cells, got %vx%v", w, h)
	}

	got := vp.ToWorld(game.Vec2{X: 3, Y: 1}, 8, 6)
	if got != (mgl32.Vec2{-2, -4}) {
		t.Errorf("expected (-2,-4), got %v", got)
	}
}

func TestGridLines(t *testing.T) {
	vp := DefaultViewport()
	grid := GridLines(vp, 8, 6)

	if len(grid) != (9+7)*4 {
		t.Fatalf("expected %d values, got %d", (9+7)*4, len(grid))
	}

	first := grid[:4]
	if first[0] != -8 || first[1] != -6 || first[2] != -8 || first[3] != 6 {
		t.Errorf("expected left edge line, got %v", first)
	}
	lastVertical := grid[8*4 : 9*4]
	if lastVertical[0] != 8 {
		t.Errorf("expected last vertical line at x=8, got %v", lastVertical)
	}
	lastHorizontal := grid[len(grid)-4:]
	if lastHorizontal[1] != 6 || lastHorizontal[0] != -8 || lastHorizontal[2] != 8 {
		t.Errorf("expected top edge line, got %v", lastHorizontal)
	}

	if err := CheckLines(GridLines(vp, 32, 32)); err != nil {
		t.Errorf("expected the largest grid to fit the line buffer: %v", err)
	}
}

func TestCentered(t *testing.T) {
	pos, w, h := Centered(mgl32.Vec2{0, 0}, 2, 4, 0.5)

	if w != 1 || h != 2 {
		t.Errorf("expected 1x2, got %vx%v", w, h)
	}
	if pos != (mgl32.Vec2{0.5, 1}) {
		t.Errorf("expected (0.5,1), got %v", pos)
	}
}

func TestCheckLines(t *testing.T) {
	if err := CheckLines(make([]float32, 6)); !errors.Is(err, ErrLineStride) {
		t.Errorf("expected ErrLineStride, got %v", err)
	}
	if err := CheckLines(make([]float32, MaxLineFloats+4)); !errors.Is(err, ErrLineOverflow) {
		t.Errorf("expected ErrLineOverflow, got %v", err)
	}
	if err := CheckLines(make([]float32, MaxLineFloats)); err != nil {
		t.Errorf("expected a full buffer to be accepted, got %v", err)
	}
}
