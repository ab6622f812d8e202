// Package render holds the drawing contract the game is rendered through,
// the world-space viewport behind it, and the scene built on top of both.
package render

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA colour with components in [0,1].
type Color = mgl32.Vec4

// LineBufferSize is the capacity, in bytes, of the dynamic line buffer.
const LineBufferSize = 4 * 1024

// MaxLineFloats is how many float32 components fit into one DrawLines call.
const MaxLineFloats = LineBufferSize / 4

var (
	ErrLineStride   = errors.New("expected 4 values per line (start.x, start.y, end.x, end.y)")
	ErrLineOverflow = errors.New("drawing too many lines")
)

// Surface is an immediate-mode 2D rasterizer working in world coordinates.
type Surface interface {
	// DrawRect fills the axis-aligned rectangle whose bottom-left corner is pos.
	DrawRect(pos mgl32.Vec2, color Color, width, height float32)
	// DrawRectCentered draws the rectangle shrunk by scale toward its own centre.
	DrawRectCentered(pos mgl32.Vec2, color Color, width, height, scale float32)
	// DrawLines draws independent segments packed as x1,y1,x2,y2.
	DrawLines(color Color, points []float32) error
	RescaleProjection(widthToHeight float32)
	RescaleCanvas(widthToHeight float32)
	Viewport() Viewport
}

// Canvas is implemented by surfaces whose pixel size is set from settings.
// RescaleCanvas then derives the height from the stored width.
type Canvas interface {
	SetCanvasSize(width, height int)
	CanvasSize() (width, height int)
}

// Centered returns the rectangle of size width*scale by height*scale sharing
// its centre with the one at pos.
func Centered(pos mgl32.Vec2, width, height, scale float32) (mgl32.Vec2, float32, float32) {
	halfInverse := (1 - scale) / 2
	return mgl32.Vec2{pos.X() + width*halfInverse, pos.Y() + height*halfInverse}, width * scale, height * scale
}

// CheckLines validates a DrawLines batch.
func CheckLines(points []float32) error {
	if len(points)%4 != 0 {
		return fmt.Errorf("%w: got %d values", ErrLineStride, len(points))
	}
	if len(points) > MaxLineFloats {
		return fmt.Errorf("%w: %d values, buffer holds %d", ErrLineOverflow, len(points), MaxLineFloats)
	}
	return nil
}
