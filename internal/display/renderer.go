package display

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"invaders/internal/game"
)

// Renderer uploads the game buffer into a texture and stretches it over the
// framebuffer, letterboxed to the buffer's aspect ratio.
type Renderer struct {
	prog uint32
	vao  uint32
	tex  uint32

	uBuffer int32

	width, height int
	pix           []uint8 // RGBA8 staging copy of the buffer
}

func NewRenderer(width, height int) (*Renderer, error) {
	prog, err := linkProgram(screenVertSrc, screenFragSrc)
	if err != nil {
		return nil, fmt.Errorf("screen program: %w", err)
	}
	r := &Renderer{
		prog:   prog,
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}

	// Attribute-less draw still needs a bound VAO in a core profile.
	gl.GenVertexArrays(1, &r.vao)

	gl.GenTextures(1, &r.tex)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.pix),
	)

	gl.UseProgram(prog)
	r.uBuffer = gl.GetUniformLocation(prog, gl.Str("uBuffer\x00"))
	gl.Uniform1i(r.uBuffer, 0)

	return r, nil
}

func (r *Renderer) Destroy() {
	if r.tex != 0 {
		gl.DeleteTextures(1, &r.tex)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// Upload copies the buffer contents into the texture.
func (r *Renderer) Upload(b *game.Buffer) {
	r.pix = b.RGBA(r.pix)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.TexSubImage2D(
		gl.TEXTURE_2D, 0, 0, 0,
		int32(r.width), int32(r.height),
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(r.pix),
	)
}

// Draw paints the texture into the largest centred viewport that keeps the
// buffer's aspect ratio.
func (r *Renderer) Draw(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	vx, vy, vw, vh := fitViewport(fbW, fbH, r.width, r.height)
	gl.Viewport(int32(vx), int32(vy), int32(vw), int32(vh))

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// fitViewport returns the centred rectangle of aspect w:h inside fbW x fbH.
func fitViewport(fbW, fbH, w, h int) (x, y, vw, vh int) {
	vw, vh = fbW, fbW*h/w
	if vh > fbH {
		vw, vh = fbH*w/h, fbH
	}
	return (fbW - vw) / 2, (fbH - vh) / 2, vw, vh
}
