package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/game"
)

// Viewport is the visible world rectangle of an orthographic projection.
type Viewport struct {
	Left, Right float32
	Bottom, Top float32
}

// DefaultViewport is the 4:3 world the surfaces start with.
func DefaultViewport() Viewport {
	return Viewport{Left: -8, Right: 8, Bottom: -6, Top: 6}
}

func (v Viewport) Width() float32  { return v.Right - v.Left }
func (v Viewport) Height() float32 { return v.Top - v.Bottom }

// Rescale keeps the horizontal extent and stretches bottom and top so that
// Width()/Height() equals widthToHeight. Assumes the projection is centred.
func (v Viewport) Rescale(widthToHeight float32) Viewport {
	oldHeight := v.Height()
	newHeight := v.Width() / widthToHeight
	scale := newHeight / oldHeight
	v.Bottom *= scale
	v.Top *= scale
	return v
}

// Projection returns the orthographic matrix mapping the viewport to clip space.
func (v Viewport) Projection() mgl32.Mat4 {
	return mgl32.Ortho2D(v.Left, v.Right, v.Bottom, v.Top)
}

// Cell returns the world size of one cell of a columns by rows grid.
func (v Viewport) Cell(columns, rows int) (width, height float32) {
	return v.Width() / float32(columns), v.Height() / float32(rows)
}

// ToWorld returns the bottom-left world corner of grid cell p.
func (v Viewport) ToWorld(p game.Vec2, columns, rows int) mgl32.Vec2 {
	w, h := v.Cell(columns, rows)
	return mgl32.Vec2{float32(p.X)*w + v.Left, float32(p.Y)*h + v.Bottom}
}

// GridLines returns columns+1 vertical then rows+1 horizontal lines spanning
// the viewport, packed for DrawLines.
func GridLines(v Viewport, columns, rows int) []float32 {
	xLines := columns + 1
	yLines := rows + 1
	xOffset := v.Width() / float32(columns)
	yOffset := v.Height() / float32(rows)

	grid := make([]float32, 0, (xLines+yLines)*4)
	for i := 0; i < xLines; i++ {
		x := v.Left + float32(i)*xOffset
		grid = append(grid, x, v.Bottom, x, v.Top)
	}
	for i := 0; i < yLines; i++ {
		y := v.Bottom + float32(i)*yOffset
		grid = append(grid, v.Left, y, v.Right, y)
	}
	return grid
}
