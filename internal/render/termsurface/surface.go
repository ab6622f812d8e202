// Package termsurface rasterizes render.Surface primitives onto the
// character cells of a tcell screen.
package termsurface

import (
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/render"
)

// cellAspect is how many times taller than wide a terminal cell is.
const cellAspect = 2

const (
	runeHorizontal = '─'
	runeVertical   = '│'
	runeCross      = '┼'
	runeDot        = '·'
)

// Surface draws into a centred rectangle of cells with one status line
// beneath it. World y grows up, screen rows grow down.
type Surface struct {
	screen   tcell.Screen
	viewport render.Viewport

	ratio       float32 // world width to height, what the area is fitted to
	x, y, w, h  int     // drawing area in cells
	background  tcell.Color
	statusStyle tcell.Style
}

var _ render.Surface = (*Surface)(nil)

func New(screen tcell.Screen) *Surface {
	vp := render.DefaultViewport()
	s := &Surface{
		screen:      screen,
		viewport:    vp,
		ratio:       vp.Width() / vp.Height(),
		background:  toTcell(render.Palette.Background.Color()),
		statusStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
	}
	s.fit()
	return s
}

// Area returns the drawing rectangle in cells.
func (s *Surface) Area() (x, y, w, h int) { return s.x, s.y, s.w, s.h }

// Resize refits the drawing area after the terminal changed size.
func (s *Surface) Resize() { s.fit() }

func (s *Surface) fit() {
	sw, sh := s.screen.Size()
	h := sh - 1
	if h < 1 {
		h = 1
	}
	w := int(float32(cellAspect*h)*s.ratio + 0.5)
	if w > sw {
		w = sw
		h = int(float32(w)/(cellAspect*s.ratio) + 0.5)
		if h > sh-1 {
			h = sh - 1
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	s.w, s.h = w, h
	s.x = (sw - w) / 2
	s.y = 0
}

// BeginFrame clears the screen and paints the area in color.
func (s *Surface) BeginFrame(color render.Color) {
	s.screen.Clear()
	s.background = toTcell(color)
	style := tcell.StyleDefault.Background(s.background)
	for row := s.y; row < s.y+s.h; row++ {
		for col := s.x; col < s.x+s.w; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// SetStatus writes text on the line under the area, clipped to the screen.
func (s *Surface) SetStatus(text string) {
	sw, _ := s.screen.Size()
	row := s.y + s.h
	col := s.x
	for _, r := range text {
		if col >= sw {
			break
		}
		s.screen.SetContent(col, row, r, nil, s.statusStyle)
		col++
	}
}

func (s *Surface) Show() { s.screen.Show() }

func (s *Surface) DrawRect(pos mgl32.Vec2, color render.Color, width, height float32) {
	style := tcell.StyleDefault.Background(toTcell(color))
	for row := 0; row < s.h; row++ {
		cy := s.rowCenter(row)
		if cy < pos.Y() || cy >= pos.Y()+height {
			continue
		}
		for col := 0; col < s.w; col++ {
			cx := s.colCenter(col)
			if cx < pos.X() || cx >= pos.X()+width {
				continue
			}
			s.screen.SetContent(s.x+col, s.y+row, ' ', nil, style)
		}
	}
}

func (s *Surface) DrawRectCentered(pos mgl32.Vec2, color render.Color, width, height, scale float32) {
	p, w, h := render.Centered(pos, width, height, scale)
	s.DrawRect(p, color, w, h)
}

func (s *Surface) DrawLines(color render.Color, points []float32) error {
	if err := render.CheckLines(points); err != nil {
		return err
	}

	style := tcell.StyleDefault.Foreground(toTcell(color)).Background(s.background)
	for i := 0; i < len(points); i += 4 {
		c1, r1 := s.toCell(points[i], points[i+1])
		c2, r2 := s.toCell(points[i+2], points[i+3])
		s.line(c1, r1, c2, r2, style)
	}
	return nil
}

// line steps from one cell to the other, one cell per step along the
// longer axis.
func (s *Surface) line(c1, r1, c2, r2 int, style tcell.Style) {
	glyph := runeDot
	switch {
	case r1 == r2:
		glyph = runeHorizontal
	case c1 == c2:
		glyph = runeVertical
	}

	dc, dr := c2-c1, r2-r1
	steps := max(abs(dc), abs(dr))
	for i := 0; i <= steps; i++ {
		col, row := c1, r1
		if steps > 0 {
			col = c1 + (dc*i+sign(dc)*steps/2)/steps
			row = r1 + (dr*i+sign(dr)*steps/2)/steps
		}
		s.plot(col, row, glyph, style)
	}
}

func (s *Surface) plot(col, row int, glyph rune, style tcell.Style) {
	if col < 0 || col >= s.w || row < 0 || row >= s.h {
		return
	}
	x, y := s.x+col, s.y+row
	prev, _, _, _ := s.screen.GetContent(x, y)
	if (prev == runeHorizontal && glyph == runeVertical) || (prev == runeVertical && glyph == runeHorizontal) || prev == runeCross {
		glyph = runeCross
	}
	s.screen.SetContent(x, y, glyph, nil, style)
}

func (s *Surface) RescaleProjection(widthToHeight float32) {
	s.viewport = s.viewport.Rescale(widthToHeight)
}

// RescaleCanvas refits the area so cells keep the grid's proportions.
func (s *Surface) RescaleCanvas(widthToHeight float32) {
	s.ratio = widthToHeight
	s.fit()
}

func (s *Surface) Viewport() render.Viewport { return s.viewport }

// toCell maps a world point to area-relative cell coordinates. Points on the
// right or top edge land on the last column or first row.
func (s *Surface) toCell(x, y float32) (col, row int) {
	vp := s.viewport
	col = int((x - vp.Left) / vp.Width() * float32(s.w))
	row = int((vp.Top - y) / vp.Height() * float32(s.h))
	return clamp(col, 0, s.w-1), clamp(row, 0, s.h-1)
}

func (s *Surface) colCenter(col int) float32 {
	vp := s.viewport
	return vp.Left + (float32(col)+0.5)/float32(s.w)*vp.Width()
}

func (s *Surface) rowCenter(row int) float32 {
	vp := s.viewport
	return vp.Top - (float32(row)+0.5)/float32(s.h)*vp.Height()
}

func toTcell(c render.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float32) int32 {
	return int32(clamp(int(v*255+0.5), 0, 255))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
