// Package rendertest provides a Surface that records draw calls for tests.
package rendertest

import (
	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/render"
)

type Rect struct {
	Pos           mgl32.Vec2
	Color         render.Color
	Width, Height float32
}

type Lines struct {
	Color  render.Color
	Points []float32
}

// Recorder implements render.Surface by remembering every call.
type Recorder struct {
	VP     render.Viewport
	Rects  []Rect
	Lines  []Lines
	Canvas []float32 // ratios passed to RescaleCanvas

	Width, Height int
}

func NewRecorder() *Recorder {
	return &Recorder{VP: render.DefaultViewport()}
}

func (r *Recorder) DrawRect(pos mgl32.Vec2, color render.Color, width, height float32) {
	r.Rects = append(r.Rects, Rect{Pos: pos, Color: color, Width: width, Height: height})
}

func (r *Recorder) DrawRectCentered(pos mgl32.Vec2, color render.Color, width, height, scale float32) {
	p, w, h := render.Centered(pos, width, height, scale)
	r.DrawRect(p, color, w, h)
}

func (r *Recorder) DrawLines(color render.Color, points []float32) error {
	if err := render.CheckLines(points); err != nil {
		return err
	}
	r.Lines = append(r.Lines, Lines{Color: color, Points: append([]float32(nil), points...)})
	return nil
}

func (r *Recorder) RescaleProjection(widthToHeight float32) {
	r.VP = r.VP.Rescale(widthToHeight)
}

func (r *Recorder) RescaleCanvas(widthToHeight float32) {
	r.Canvas = append(r.Canvas, widthToHeight)
	r.Height = int(float32(r.Width)/widthToHeight + 0.5)
}

func (r *Recorder) SetCanvasSize(width, height int) {
	r.Width, r.Height = width, height
}

func (r *Recorder) CanvasSize() (width, height int) { return r.Width, r.Height }

func (r *Recorder) Viewport() render.Viewport { return r.VP }

// Clear drops recorded draw calls, keeping the viewport.
func (r *Recorder) Clear() {
	r.Rects = r.Rects[:0]
	r.Lines = r.Lines[:0]
}
