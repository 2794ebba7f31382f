package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// floatsPerTile is the sprite layout in the streaming VBO:
// x, y, size, r, g, b, a.
const floatsPerTile = 7

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the board as one point sprite per cell. The sprite buffer
// is persistent: it is filled once and then patched from tile diffs, so an
// idle frame uploads the same buffer without rebuilding it.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uCamera     int32
	uZoom       int32
	uResolution int32

	grid    Grid
	tileBuf []float32
	prev    []TileKind // last applied layout; nil forces a full repaint
	scratch []TileUpdate
}

func NewRenderer(grid Grid) (*Renderer, error) {
	prog, err := linkProgram(tileVertSrc, tileFragSrc)
	if err != nil {
		return nil, fmt.Errorf("tile program: %w", err)
	}

	r := &Renderer{
		prog:    prog,
		grid:    grid,
		tileBuf: make([]float32, grid.Cells()*floatsPerTile),
	}

	// Static sprite geometry: centre of each cell, y flipped because world
	// y grows upward while the shader's NDC flip puts +y down-screen.
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			base := (y*grid.Width + x) * floatsPerTile
			r.tileBuf[base] = float32(x) + 0.5
			r.tileBuf[base+1] = float32(grid.Height-1-y) + 0.5
			r.tileBuf[base+2] = TileSpriteSize
			r.setTileColor(Position{X: x, Y: y}, TileEmpty)
		}
	}

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(floatsPerTile * 4)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.tileBuf)*4, nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.vao = vao
	r.vbo = vbo

	gl.UseProgram(prog)
	r.uCamera = gl.GetUniformLocation(prog, gl.Str("uCamera\x00"))
	r.uZoom = gl.GetUniformLocation(prog, gl.Str("uZoom\x00"))
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))

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
}

func (r *Renderer) setTileColor(p Position, k TileKind) {
	col := TileColor(k)
	base := r.grid.Index(p)*floatsPerTile + 3
	r.tileBuf[base] = float32(col.R) / 255
	r.tileBuf[base+1] = float32(col.G) / 255
	r.tileBuf[base+2] = float32(col.B) / 255
	r.tileBuf[base+3] = 1
}

// SetTiles patches the sprite buffer with the cells that changed since the
// last call. The first call repaints everything.
func (r *Renderer) SetTiles(layout []TileKind) {
	r.scratch = DiffLayouts(r.scratch[:0], r.prev, layout, r.grid)
	for _, u := range r.scratch {
		r.setTileColor(u.Pos, u.Kind)
	}
	if r.prev == nil {
		r.prev = make([]TileKind, len(layout))
	}
	copy(r.prev, layout)
}

// Draw uploads the sprite buffer and renders the frame.
func (r *Renderer) Draw(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	cx, cy := cam.EffectivePos()
	gl.Uniform2f(r.uCamera, float32(cx), float32(cy))
	gl.Uniform1f(r.uZoom, float32(cam.Zoom))
	gl.Uniform2f(r.uResolution, float32(fbW), float32(fbH))

	gl.BufferData(gl.ARRAY_BUFFER, len(r.tileBuf)*4, gl.Ptr(r.tileBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(r.grid.Cells()))
}
