package game

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// SpriteRect is the box covered by s drawn at (x, y).
func SpriteRect(s Sprite, x, y int) Rect {
	return Rect{X: x, Y: y, W: s.Width, H: s.Height}
}

// Overlaps reports whether a and b share any area. Boxes that only touch
// along an edge do not overlap.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X && a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
