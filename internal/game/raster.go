package game

// DrawSprite blits the set cells of s with its bottom-left corner at (x, y).
// Mask row 0 lands on the sprite's top row: yi maps to y + s.Height-1 - yi.
// Pixels falling outside the buffer are dropped.
func DrawSprite(b *Buffer, s Sprite, x, y int, color uint32) {
	for xi := 0; xi < s.Width; xi++ {
		dx := x + xi
		if dx < 0 || dx >= b.Width {
			continue
		}
		for yi := 0; yi < s.Height; yi++ {
			dy := s.Height - 1 + y - yi
			if dy < 0 || dy >= b.Height {
				continue
			}
			if s.At(xi, yi) {
				b.Pixels[b.idx(dx, dy)] = color
			}
		}
	}
}

// DrawText draws text left to right starting at (x, y). Characters without a
// glyph are skipped and do not advance the cursor.
func DrawText(b *Buffer, f *Font, text string, x, y int, color uint32) {
	advance := f.GlyphW() + 1
	for _, ch := range text {
		g, ok := f.Glyph(ch)
		if !ok {
			continue
		}
		DrawSprite(b, g, x, y, color)
		x += advance
	}
}

// DrawNumber draws the decimal representation of value using a digit sheet.
func DrawNumber(b *Buffer, digits *Atlas, value uint, x, y int, color uint32) {
	var buf [20]int // enough for any uint64
	n := 0
	for {
		buf[n] = int(value % 10)
		n++
		value /= 10
		if value == 0 {
			break
		}
	}

	advance := digits.CellW + 1
	for i := n - 1; i >= 0; i-- {
		g, _ := digits.Cell(buf[i])
		DrawSprite(b, g, x, y, color)
		x += advance
	}
}

// DrawHLine fills row y between x0 and x1 (exclusive), clipped to the buffer.
func DrawHLine(b *Buffer, y, x0, x1 int, color uint32) {
	if y < 0 || y >= b.Height {
		return
	}
	x0 = clamp(x0, 0, b.Width)
	x1 = clamp(x1, 0, b.Width)
	for x := x0; x < x1; x++ {
		b.Pixels[b.idx(x, y)] = color
	}
}
