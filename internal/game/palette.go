package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Pack returns the colour as a buffer pixel: R, G, B in the top three bytes,
// the unused alpha byte fixed at 255.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | 255
}

// Unpack splits a packed buffer pixel back into its colour channels.
func Unpack(p uint32) RGB {
	return RGB{R: uint8(p >> 24), G: uint8(p >> 16), B: uint8(p >> 8)}
}

var Palette = struct {
	Background RGB
	Alien      RGB
	Death      RGB
	Player     RGB
	Bullet     RGB
	Text       RGB
	Separator  RGB
}{
	Background: RGB{R: 0, G: 128, B: 0},
	Alien:      RGB{R: 128, G: 0, B: 0},
	Death:      RGB{R: 128, G: 0, B: 0},
	Player:     RGB{R: 128, G: 0, B: 0},
	Bullet:     RGB{R: 128, G: 0, B: 0},
	Text:       RGB{R: 128, G: 0, B: 0},
	Separator:  RGB{R: 128, G: 0, B: 0},
}
