// Package glsurface draws the render.Surface primitives with OpenGL 4.1 core.
// Every call must come from the goroutine holding the current context.
package glsurface

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"gridsnake/internal/render"
)

var ErrMissingUniform = errors.New("missing uniform")

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

const (
	quadBuffer = iota
	lineBuffer
)

type Surface struct {
	program uint32
	vao     [2]uint32
	vbo     [2]uint32

	uTransform  int32
	uProjection int32
	uColor      int32

	viewport render.Viewport

	width, height int
	resize        func(width, height int)
}

var _ render.Surface = (*Surface)(nil)
var _ render.Canvas = (*Surface)(nil)

// New builds the program and both vertex buffers. gl.Init must already have
// run on the current context. resize is called with the new canvas size
// whenever RescaleCanvas changes it; it may be nil.
func New(width, height int, resize func(width, height int)) (*Surface, error) {
	program, err := linkProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}

	s := &Surface{
		program:  program,
		viewport: render.DefaultViewport(),
		width:    width,
		height:   height,
		resize:   resize,
	}

	gl.UseProgram(program)
	for _, u := range []struct {
		name string
		loc  *int32
	}{
		{"transform", &s.uTransform},
		{"projection", &s.uProjection},
		{"color", &s.uColor},
	} {
		if *u.loc, err = uniformLocation(program, u.name); err != nil {
			gl.DeleteProgram(program)
			return nil, err
		}
	}

	gl.GenVertexArrays(2, &s.vao[0])
	gl.GenBuffers(2, &s.vbo[0])

	// Unit quad as a triangle strip.
	gl.BindVertexArray(s.vao[quadBuffer])
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo[quadBuffer])
	quadVerts := [8]float32{
		0, 0, 1, 0,
		0, 1, 1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	// Line endpoints, rewritten on every DrawLines.
	gl.BindVertexArray(s.vao[lineBuffer])
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo[lineBuffer])
	gl.BufferData(gl.ARRAY_BUFFER, render.LineBufferSize, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.BindVertexArray(0)

	s.uploadProjection()
	return s, nil
}

func (s *Surface) Destroy() {
	gl.DeleteBuffers(2, &s.vbo[0])
	gl.DeleteVertexArrays(2, &s.vao[0])
	if s.program != 0 {
		gl.DeleteProgram(s.program)
	}
}

// BeginFrame sets the pixel viewport and clears to color.
func (s *Surface) BeginFrame(fbW, fbH int, color render.Color) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(color[0], color[1], color[2], color[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.UseProgram(s.program)
}

func (s *Surface) DrawRect(pos mgl32.Vec2, color render.Color, width, height float32) {
	transform := mgl32.Translate3D(pos.X(), pos.Y(), 0).Mul4(mgl32.Scale3D(width, height, 1))

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uTransform, 1, false, &transform[0])
	gl.Uniform4fv(s.uColor, 1, &color[0])
	gl.BindVertexArray(s.vao[quadBuffer])
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

func (s *Surface) DrawRectCentered(pos mgl32.Vec2, color render.Color, width, height, scale float32) {
	p, w, h := render.Centered(pos, width, height, scale)
	s.DrawRect(p, color, w, h)
}

func (s *Surface) DrawLines(color render.Color, points []float32) error {
	if err := render.CheckLines(points); err != nil {
		return err
	}
	if len(points) == 0 {
		return nil
	}

	identity := mgl32.Ident4()
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uTransform, 1, false, &identity[0])
	gl.Uniform4fv(s.uColor, 1, &color[0])

	gl.BindVertexArray(s.vao[lineBuffer])
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo[lineBuffer])
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(points)*4, gl.Ptr(points))
	gl.DrawArrays(gl.LINES, 0, int32(len(points)/2))
	return nil
}

func (s *Surface) RescaleProjection(widthToHeight float32) {
	s.viewport = s.viewport.Rescale(widthToHeight)
	s.uploadProjection()
}

func (s *Surface) SetCanvasSize(width, height int) {
	s.width, s.height = width, height
}

// RescaleCanvas keeps the canvas width and derives its height from the ratio.
func (s *Surface) RescaleCanvas(widthToHeight float32) {
	s.height = int(float32(s.width)/widthToHeight + 0.5)
	if s.resize != nil {
		s.resize(s.width, s.height)
	}
}

func (s *Surface) CanvasSize() (width, height int) { return s.width, s.height }

func (s *Surface) Viewport() render.Viewport { return s.viewport }

func (s *Surface) uploadProjection() {
	proj := s.viewport.Projection()
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uProjection, 1, false, &proj[0])
}
