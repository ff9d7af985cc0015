package game

import "testing"

func solid(t *testing.T, w, h int) Sprite {
	t.Helper()
	data := make([]uint8, w*h)
	for i := range data {
		data[i] = 1
	}
	s, err := NewSprite(w, h, data)
	if err != nil {
		t.Fatalf("NewSprite(%d, %d): %v", w, h, err)
	}
	return s
}

// testFont is a 5x7 font whose glyphs are solid blocks, except space.
func testFont(t *testing.T) *Font {
	t.Helper()
	const w, h = 5, 7
	stride := w * FontGlyphCount
	strip := make([]uint8, stride*h)
	for i := 1; i < FontGlyphCount; i++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				strip[y*stride+i*w+x] = 1
			}
		}
	}
	sheet, err := NewSprite(stride, h, strip)
	if err != nil {
		t.Fatalf("font sheet: %v", err)
	}
	atlas, err := NewAtlas(sheet, w)
	if err != nil {
		t.Fatalf("font atlas: %v", err)
	}
	f, err := NewFont(atlas)
	if err != nil {
		t.Fatalf("NewFont: %v", err)
	}
	return f
}

// testResources mirrors the shipped sprite sizes with solid masks.
func testResources(t *testing.T) *Resources {
	t.Helper()
	st := NewSpriteTable()
	res := &Resources{Sprites: st, Font: testFont(t)}
	for i, w := range [3]int{8, 11, 12} {
		res.AlienFrames[i] = []SpriteID{st.Add(solid(t, w, 8)), st.Add(solid(t, w, 8))}
	}
	res.AlienDeath = st.Add(solid(t, 13, 7))
	res.Player = st.Add(solid(t, 11, 7))
	res.Bullet = st.Add(solid(t, 1, 3))
	return res
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := NewGame(testResources(t), opts)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

// eventLog records every event of the given types.
func eventLog(g *Game, types ...EventType) *[]Event {
	var got []Event
	for _, et := range types {
		g.Events().Subscribe(et, func(e Event) { got = append(got, e) })
	}
	return &got
}
