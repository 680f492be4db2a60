//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// maxQuads bounds the streaming buffer; a frame draws three.
const maxQuads = 64

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer fills coloured rectangles in playfield coordinates. Rects are
// queued by FillRect and drawn in one call by Flush.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32

	// Reused every frame to avoid per-frame allocations.
	buf []float32
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(rectVertSrc, rectFragSrc)
	if err != nil {
		return nil, fmt.Errorf("rect program: %w", err)
	}
	r := &Renderer{
		prog: prog,
		buf:  make([]float32, 0, maxQuads*vertsPerQuad*floatsPerVertex),
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxQuads*vertsPerQuad*int(stride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	gl.Uniform2f(r.uResolution, PlayfieldWidth, PlayfieldHeight)

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	*r = Renderer{}
}

// Clear sets the viewport to the framebuffer, fills it with c and drops any
// queued rects.
func (r *Renderer) Clear(c RGB, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := c.Floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.buf = r.buf[:0]
}

func (r *Renderer) FillRect(rect Rect, c RGB) {
	if len(r.buf) >= maxQuads*vertsPerQuad*floatsPerVertex {
		return
	}
	r.buf = appendQuad(r.buf, rect, c)
}

// Flush draws every queued rect, in queue order.
func (r *Renderer) Flush() {
	if len(r.buf) == 0 {
		return
	}
	count := len(r.buf) / floatsPerVertex

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.buf)*4, gl.Ptr(r.buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)

	r.buf = r.buf[:0]
}
