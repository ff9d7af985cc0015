package game

import (
	"errors"
	"fmt"
)

var (
	ErrSpriteSize = errors.New("sprite data does not match its dimensions")
	ErrSpriteCell = errors.New("sprite cell is not 0 or 1")
)

// Sprite is an immutable on/off mask. Row 0 is the top row of the sprite on
// screen. A sprite may be a window into a larger sheet: cell (x, y) lives at
// data[off+y*stride+x].
type Sprite struct {
	Width, Height int

	data   []uint8
	off    int
	stride int
}

// NewSprite wraps a row-major width*height mask. The slice is not copied and
// must not be modified afterwards.
func NewSprite(width, height int, data []uint8) (Sprite, error) {
	if width <= 0 || height <= 0 || len(data) != width*height {
		return Sprite{}, fmt.Errorf("%dx%d with %d cells: %w", width, height, len(data), ErrSpriteSize)
	}
	for i, v := range data {
		if v > 1 {
			return Sprite{}, fmt.Errorf("cell %d = %d: %w", i, v, ErrSpriteCell)
		}
	}
	return Sprite{Width: width, Height: height, data: data, stride: width}, nil
}

// At reports whether the mask cell (x, y) is on. Cells outside the sprite are off.
func (s Sprite) At(x, y int) bool {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return false
	}
	return s.data[s.off+y*s.stride+x] != 0
}

// view returns the w*h window of s whose top-left cell is (x, 0).
func (s Sprite) view(x, w int) Sprite {
	return Sprite{Width: w, Height: s.Height, data: s.data, off: s.off + x, stride: s.stride}
}

// Atlas is a horizontal strip of equally sized cells sharing one sheet.
type Atlas struct {
	sheet Sprite
	CellW int
	Count int
}

func NewAtlas(sheet Sprite, cellW int) (*Atlas, error) {
	if cellW <= 0 || sheet.Width%cellW != 0 {
		return nil, fmt.Errorf("atlas width %d not a multiple of cell width %d: %w", sheet.Width, cellW, ErrSpriteSize)
	}
	return &Atlas{sheet: sheet, CellW: cellW, Count: sheet.Width / cellW}, nil
}

// CellH is the height shared by every cell.
func (a *Atlas) CellH() int { return a.sheet.Height }

// Cell returns the i-th cell as a view into the sheet.
func (a *Atlas) Cell(i int) (Sprite, bool) {
	if i < 0 || i >= a.Count {
		return Sprite{}, false
	}
	return a.sheet.view(i*a.CellW, a.CellW), true
}

// Slice returns an atlas over cells [first, first+n) without copying.
func (a *Atlas) Slice(first, n int) (*Atlas, error) {
	if first < 0 || n <= 0 || first+n > a.Count {
		return nil, fmt.Errorf("slice [%d,%d) of %d cells: %w", first, first+n, a.Count, ErrSpriteSize)
	}
	return &Atlas{
		sheet: a.sheet.view(first*a.CellW, n*a.CellW),
		CellW: a.CellW,
		Count: n,
	}, nil
}

// Font maps ASCII codes FontFirst..FontLast onto atlas cells.
type Font struct {
	atlas  *Atlas
	digits *Atlas
	lookup [128]int16
}

func NewFont(atlas *Atlas) (*Font, error) {
	if atlas.Count != FontGlyphCount {
		return nil, fmt.Errorf("font atlas has %d glyphs, want %d: %w", atlas.Count, FontGlyphCount, ErrSpriteSize)
	}
	digits, err := atlas.Slice('0'-FontFirst, DigitCount)
	if err != nil {
		return nil, err
	}
	f := &Font{atlas: atlas, digits: digits}
	for i := range f.lookup {
		f.lookup[i] = -1
	}
	for ch := FontFirst; ch <= FontLast; ch++ {
		f.lookup[ch] = int16(ch - FontFirst)
	}
	return f, nil
}

// Glyph returns the sprite for ch, or false when ch has no glyph.
func (f *Font) Glyph(ch rune) (Sprite, bool) {
	if ch < 0 || int(ch) >= len(f.lookup) || f.lookup[ch] < 0 {
		return Sprite{}, false
	}
	return f.atlas.Cell(int(f.lookup[ch]))
}

// Digits is the 10-glyph numeric sheet ('0'..'9'), aliasing the font atlas.
func (f *Font) Digits() *Atlas { return f.digits }

// GlyphW and GlyphH are the cell dimensions.
func (f *Font) GlyphW() int { return f.atlas.CellW }
func (f *Font) GlyphH() int { return f.atlas.CellH() }

// SpriteID is a handle into a SpriteTable.
type SpriteID int

// SpriteTable owns every sprite used by the game; entities and animations
// refer to entries by SpriteID.
type SpriteTable struct {
	sprites []Sprite
}

func NewSpriteTable() *SpriteTable {
	return &SpriteTable{}
}

func (t *SpriteTable) Add(s Sprite) SpriteID {
	t.sprites = append(t.sprites, s)
	return SpriteID(len(t.sprites) - 1)
}

// Get returns the sprite for id. id must come from Add on the same table.
func (t *SpriteTable) Get(id SpriteID) Sprite {
	return t.sprites[id]
}

func (t *SpriteTable) Has(id SpriteID) bool {
	return id >= 0 && int(id) < len(t.sprites)
}

func (t *SpriteTable) Len() int { return len(t.sprites) }

// Resources is the immutable asset set a Game is built from.
type Resources struct {
	Sprites *SpriteTable

	// AlienFrames holds the animation frames per alien type, indexed by
	// AlienType-1 (TypeA, TypeB, TypeC).
	AlienFrames [3][]SpriteID
	AlienDeath  SpriteID
	Player      SpriteID
	Bullet      SpriteID

	Font *Font
}

// Validate checks that every handle resolves and that each alien type has at
// least one frame.
func (r *Resources) Validate() error {
	if r == nil || r.Sprites == nil {
		return errors.New("resources: no sprite table")
	}
	if r.Font == nil {
		return errors.New("resources: no font")
	}
	for i, frames := range r.AlienFrames {
		if len(frames) == 0 {
			return fmt.Errorf("resources: alien type %s has no frames", AlienType(i+1))
		}
		for _, id := range frames {
			if !r.Sprites.Has(id) {
				return fmt.Errorf("resources: alien type %s frame %d not in table", AlienType(i+1), id)
			}
		}
	}
	for name, id := range map[string]SpriteID{"death": r.AlienDeath, "player": r.Player, "bullet": r.Bullet} {
		if !r.Sprites.Has(id) {
			return fmt.Errorf("resources: %s sprite %d not in table", name, id)
		}
	}
	return nil
}
