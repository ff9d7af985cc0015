package game

// Buffer is the software render target: Width*Height packed pixels, row 0 at
// the bottom of the screen. It is sized once and never reallocated.
type Buffer struct {
	Width, Height int

	Pixels []uint32 // packed, see RGB.Pack
}

func NewBuffer(width, height int) *Buffer {
	if width <= 0 || height <= 0 {
		panic("game: buffer dimensions must be positive")
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

func (b *Buffer) idx(x, y int) int {
	return y*b.Width + x
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// Clear sets every pixel to color.
func (b *Buffer) Clear(color uint32) {
	for i := range b.Pixels {
		b.Pixels[i] = color
	}
}

// Set writes a single pixel. Out-of-range coordinates are ignored.
func (b *Buffer) Set(x, y int, color uint32) {
	if !b.InBounds(x, y) {
		return
	}
	b.Pixels[b.idx(x, y)] = color
}

// At returns the pixel at (x, y), or 0 outside the buffer.
func (b *Buffer) At(x, y int) uint32 {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.Pixels[b.idx(x, y)]
}

// RGBA writes the buffer as RGBA8 bytes (4 per pixel, bottom row first) into
// dst, growing it if needed, and returns the filled slice.
func (b *Buffer) RGBA(dst []uint8) []uint8 {
	n := len(b.Pixels) * 4
	if cap(dst) < n {
		dst = make([]uint8, n)
	}
	dst = dst[:n]
	for i, p := range b.Pixels {
		o := i * 4
		dst[o+0] = uint8(p >> 24)
		dst[o+1] = uint8(p >> 16)
		dst[o+2] = uint8(p >> 8)
		dst[o+3] = uint8(p)
	}
	return dst
}
