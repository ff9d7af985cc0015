// Package assets builds the game's sprite resources from the embedded
// sprites.yaml sheet.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"invaders/internal/game"
)

//go:embed sprites.yaml
var defaultSheet []byte

var ErrBadSprite = errors.New("bad sprite")

// Sheet mirrors sprites.yaml.
type Sheet struct {
	Aliens []AlienDef `yaml:"aliens"`
	Death  []string   `yaml:"death"`
	Player []string   `yaml:"player"`
	Bullet []string   `yaml:"bullet"`
	Font   FontDef    `yaml:"font"`
}

type AlienDef struct {
	Type   string     `yaml:"type"`
	Frames [][]string `yaml:"frames"`
}

type FontDef struct {
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Glyphs []GlyphDef `yaml:"glyphs"`
}

type GlyphDef struct {
	Char string   `yaml:"char"`
	Rows []string `yaml:"rows"`
}

// Default returns resources built from the embedded sheet.
func Default() (*game.Resources, error) {
	return Parse(defaultSheet)
}

// Load reads a sprite sheet from path; an empty path selects the embedded one.
func Load(path string) (*game.Resources, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sprite sheet %s: %w", path, err)
	}
	res, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("sprite sheet %s: %w", path, err)
	}
	return res, nil
}

// Parse decodes a YAML sheet and builds validated resources.
func Parse(data []byte) (*game.Resources, error) {
	var sh Sheet
	if err := yaml.Unmarshal(data, &sh); err != nil {
		return nil, fmt.Errorf("parse sprite sheet: %w", err)
	}
	return sh.Build()
}

// Build converts the masks into a sprite table and font atlas.
func (sh *Sheet) Build() (*game.Resources, error) {
	res := &game.Resources{Sprites: game.NewSpriteTable()}

	seen := [3]bool{}
	for _, def := range sh.Aliens {
		t, err := parseType(def.Type)
		if err != nil {
			return nil, err
		}
		if seen[t-1] {
			return nil, fmt.Errorf("alien type %s defined twice: %w", t, ErrBadSprite)
		}
		seen[t-1] = true
		for i, rows := range def.Frames {
			s, err := maskSprite(rows)
			if err != nil {
				return nil, fmt.Errorf("alien %s frame %d: %w", t, i, err)
			}
			res.AlienFrames[t-1] = append(res.AlienFrames[t-1], res.Sprites.Add(s))
		}
	}

	var err error
	if res.AlienDeath, err = addMask(res.Sprites, "death", sh.Death); err != nil {
		return nil, err
	}
	if res.Player, err = addMask(res.Sprites, "player", sh.Player); err != nil {
		return nil, err
	}
	if res.Bullet, err = addMask(res.Sprites, "bullet", sh.Bullet); err != nil {
		return nil, err
	}
	if res.Font, err = sh.Font.build(); err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

func parseType(s string) (game.AlienType, error) {
	switch s {
	case "A", "a":
		return game.AlienTypeA, nil
	case "B", "b":
		return game.AlienTypeB, nil
	case "C", "c":
		return game.AlienTypeC, nil
	}
	return game.AlienDead, fmt.Errorf("unknown alien type %q: %w", s, ErrBadSprite)
}

func addMask(t *game.SpriteTable, name string, rows []string) (game.SpriteID, error) {
	s, err := maskSprite(rows)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return t.Add(s), nil
}

// maskSprite turns ASCII-art rows into a sprite.
func maskSprite(rows []string) (game.Sprite, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return game.Sprite{}, fmt.Errorf("empty mask: %w", ErrBadSprite)
	}
	w, h := len(rows[0]), len(rows)
	data := make([]uint8, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return game.Sprite{}, fmt.Errorf("row %d is %d wide, want %d: %w", y, len(row), w, ErrBadSprite)
		}
		for x := 0; x < len(row); x++ {
			v, err := cell(row[x])
			if err != nil {
				return game.Sprite{}, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			data = append(data, v)
		}
	}
	return game.NewSprite(w, h, data)
}

func cell(c byte) (uint8, error) {
	switch c {
	case '@', '#', '1':
		return 1, nil
	case '.', ' ', '0':
		return 0, nil
	}
	return 0, fmt.Errorf("unexpected cell %q: %w", c, ErrBadSprite)
}

// build packs every glyph side by side into one strip so the font and its
// digit sheet are views into a single allocation.
func (fd *FontDef) build() (*game.Font, error) {
	if fd.Width <= 0 || fd.Height <= 0 {
		return nil, fmt.Errorf("glyph size %dx%d: %w", fd.Width, fd.Height, ErrBadSprite)
	}
	if len(fd.Glyphs) != game.FontGlyphCount {
		return nil, fmt.Errorf("%d glyphs, want %d: %w", len(fd.Glyphs), game.FontGlyphCount, ErrBadSprite)
	}

	stride := fd.Width * len(fd.Glyphs)
	strip := make([]uint8, stride*fd.Height)
	for i, g := range fd.Glyphs {
		want := rune(game.FontFirst + i)
		if r := []rune(g.Char); len(r) != 1 || r[0] != want {
			return nil, fmt.Errorf("glyph %d is %q, want %q: %w", i, g.Char, want, ErrBadSprite)
		}
		s, err := maskSprite(g.Rows)
		if err != nil {
			return nil, fmt.Errorf("glyph %q: %w", want, err)
		}
		if s.Width != fd.Width || s.Height != fd.Height {
			return nil, fmt.Errorf("glyph %q is %dx%d, want %dx%d: %w", want, s.Width, s.Height, fd.Width, fd.Height, ErrBadSprite)
		}
		for y := 0; y < fd.Height; y++ {
			for x := 0; x < fd.Width; x++ {
				if s.At(x, y) {
					strip[y*stride+i*fd.Width+x] = 1
				}
			}
		}
	}

	sheet, err := game.NewSprite(stride, fd.Height, strip)
	if err != nil {
		return nil, err
	}
	atlas, err := game.NewAtlas(sheet, fd.Width)
	if err != nil {
		return nil, err
	}
	return game.NewFont(atlas)
}
