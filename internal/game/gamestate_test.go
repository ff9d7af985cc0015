package game

import "testing"

func TestNewGameFormation(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	aliens := g.Aliens()
	if len(aliens) != AlienCount {
		t.Fatalf("%d aliens, want %d", len(aliens), AlienCount)
	}

	widths := map[AlienType]int{AlienTypeA: 8, AlienTypeB: 11, AlienTypeC: 12}
	for r := 0; r < AlienRows; r++ {
		for c := 0; c < AlienCols; c++ {
			a := aliens[r*AlienCols+c]
			wantType := RowType(r)
			wantX := 16*c + 20 + (13-widths[wantType])/2
			wantY := 17*r + 128
			if a.Type != wantType || a.X != wantX || a.Y != wantY || a.DeathCounter != DeathLinger {
				t.Errorf("alien r%d c%d = %+v, want type %s at (%d, %d) linger %d",
					r, c, a, wantType, wantX, wantY, DeathLinger)
			}
		}
	}

	p := g.Player()
	if p.X != PlayerStartX || p.Y != PlayerStartY || p.Lives != PlayerStartLives {
		t.Errorf("player = %+v", p)
	}
	if g.Score() != 0 || g.BulletCount() != 0 || !g.Running() || g.Ticks() != 0 {
		t.Error("new game should start empty and running")
	}
}

func TestNewGameRejectsBadInput(t *testing.T) {
	tests := []struct {
		name   string
		res    func(t *testing.T) *Resources
		mutate func(o *Options)
	}{
		{"nil resources", func(*testing.T) *Resources { return nil }, func(*Options) {}},
		{"zero bullet speed", testResources, func(o *Options) { o.BulletSpeed = 0 }},
		{"zero player speed", testResources, func(o *Options) { o.PlayerSpeed = 0 }},
		{"negative credits", testResources, func(o *Options) { o.Credits = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			if _, err := NewGame(tt.res(t), opts); err == nil {
				t.Error("NewGame() succeeded, want error")
			}
		})
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	g := newTestGame(t, DefaultOptions())

	g.Tick(InputState{MoveDir: -1})
	if got := g.Player().X; got != PlayerStartX-1 {
		t.Fatalf("X after one left step = %d, want %d", got, PlayerStartX-1)
	}
	for i := 0; i < 300; i++ {
		g.Tick(InputState{MoveDir: -1})
	}
	if got := g.Player().X; got != 0 {
		t.Errorf("X after moving far left = %d, want 0", got)
	}
	for i := 0; i < 300; i++ {
		g.Tick(InputState{MoveDir: 5})
	}
	if got := g.Player().X; got != BufferWidth-11 {
		t.Errorf("X after moving far right = %d, want %d", got, BufferWidth-11)
	}
}

func TestFireSpawnsBulletAbovePlayer(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	fired := eventLog(g, EventBulletFired)

	g.Tick(InputState{Fire: true})
	if g.BulletCount() != 1 {
		t.Fatalf("BulletCount = %d, want 1", g.BulletCount())
	}
	b := g.Bullets()[0]
	if b.X != PlayerStartX+5 || b.Y != PlayerStartY+7 || b.Dir != BulletSpeed {
		t.Errorf("bullet = %+v, want (%d, %d) dir %d", b, PlayerStartX+5, PlayerStartY+7, BulletSpeed)
	}
	if len(*fired) != 1 {
		t.Errorf("%d fire events, want 1", len(*fired))
	}

	g.Tick(InputState{})
	if got := g.Bullets()[0].Y; got != PlayerStartY+7+BulletSpeed {
		t.Errorf("bullet Y after one tick = %d, want %d", got, PlayerStartY+7+BulletSpeed)
	}
	if g.BulletCount() != 1 {
		t.Error("no fire input should not spawn a bullet")
	}
}

func TestBulletExpiresAtTop(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	expired := eventLog(g, EventBulletExpired)

	// From the start position the bullet flies through a column gap.
	g.Tick(InputState{Fire: true})
	ticks := 1
	for g.BulletCount() > 0 && ticks < 200 {
		g.Tick(InputState{})
		ticks++
	}
	if g.BulletCount() != 0 {
		t.Fatal("bullet never expired")
	}
	// 39 + 2n >= 256 first holds for n = 109.
	if ticks != 110 {
		t.Errorf("bullet expired after %d ticks, want 110", ticks)
	}
	if len(*expired) != 1 || (*expired)[0].Y < BufferHeight {
		t.Errorf("expired events = %+v", *expired)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, want 0", g.Score())
	}
}

func TestColumnKillsScoreByTier(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	kills := eventLog(g, EventAlienKilled)

	for g.Player().X > 100 {
		g.Tick(InputState{MoveDir: -1})
	}
	// Each bullet from x = 105 takes the lowest live alien of column 5.
	for shot := 0; shot < AlienRows; shot++ {
		g.Tick(InputState{Fire: true})
		for i := 0; g.BulletCount() > 0 && i < 200; i++ {
			g.Tick(InputState{})
		}
		if len(*kills) != shot+1 {
			t.Fatalf("after shot %d: %d kills", shot+1, len(*kills))
		}
	}

	wantPoints := []int{10, 10, 20, 20, 30}
	for r, e := range *kills {
		if e.Data != wantPoints[r] {
			t.Errorf("kill %d scored %d, want %d", r, e.Data, wantPoints[r])
		}
		// The death sprite is recentred onto the column origin.
		if e.X != 100 || e.Y != 17*r+128 {
			t.Errorf("kill %d at (%d, %d), want (100, %d)", r, e.X, e.Y, 17*r+128)
		}
		a := g.Aliens()[r*AlienCols+5]
		if a.Alive() {
			t.Errorf("alien r%d c5 still alive", r)
		}
	}
	if g.Score() != 90 {
		t.Errorf("Score = %d, want 90", g.Score())
	}

	alive := 0
	for _, a := range g.Aliens() {
		if a.Alive() {
			alive++
		}
	}
	if alive != AlienCount-AlienRows {
		t.Errorf("%d aliens alive, want %d", alive, AlienCount-AlienRows)
	}
}

func TestBulletKillsOnlyOnce(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	kills := eventLog(g, EventAlienKilled)
	for g.Player().X > 100 {
		g.Tick(InputState{MoveDir: -1})
	}
	g.Tick(InputState{Fire: true})
	for i := 0; i < 200 && len(*kills) == 0; i++ {
		g.Tick(InputState{})
	}
	if len(*kills) != 1 {
		t.Fatalf("%d kills, want 1", len(*kills))
	}
	if g.BulletCount() != 0 {
		t.Error("bullet survived its hit")
	}
	if g.Score() != 10 {
		t.Errorf("Score = %d, want 10", g.Score())
	}
}

func TestOverlappingAliensOneKillPerBullet(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	kills := eventLog(g, EventAlienKilled)

	// Two live aliens stacked on top of each other, both under one bullet.
	g.aliens[0].X, g.aliens[0].Y = 50, 60
	g.aliens[1].X, g.aliens[1].Y = 52, 60
	g.bullets.Push(Bullet{X: 55, Y: 60, Dir: BulletSpeed})

	g.Tick(InputState{})

	if len(*kills) != 1 {
		t.Fatalf("%d kills, want 1", len(*kills))
	}
	if g.aliens[0].Alive() || !g.aliens[1].Alive() {
		t.Errorf("alive = (%v, %v), want only the first alien killed", g.aliens[0].Alive(), g.aliens[1].Alive())
	}
	if g.Score() != 10 {
		t.Errorf("Score = %d, want 10", g.Score())
	}
	if g.BulletCount() != 0 {
		t.Errorf("BulletCount = %d, want 0", g.BulletCount())
	}
}

func TestDeathLinger(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	kills := eventLog(g, EventAlienKilled)
	for g.Player().X > 100 {
		g.Tick(InputState{MoveDir: -1})
	}
	g.Tick(InputState{Fire: true})
	for len(*kills) == 0 {
		g.Tick(InputState{})
	}

	a := &g.Aliens()[5]
	if a.DeathCounter != DeathLinger || !a.Visible() {
		t.Fatalf("freshly killed alien = %+v", *a)
	}
	if got := g.AlienSprite(a).Width; got != 13 {
		t.Errorf("dead alien sprite width = %d, want death sprite 13", got)
	}
	death := Palette.Death.Pack()
	if g.Buffer().At(a.X+12, a.Y) != death {
		t.Error("death sprite not rendered")
	}

	for i := 0; i < DeathLinger; i++ {
		g.Tick(InputState{})
	}
	if a.DeathCounter != 0 || a.Visible() {
		t.Errorf("after %d ticks alien = %+v, want invisible", DeathLinger, *a)
	}
	if g.Buffer().At(a.X+12, a.Y) != Palette.Background.Pack() {
		t.Error("expired death sprite still rendered")
	}
}

func TestFireDroppedWhenPoolFull(t *testing.T) {
	opts := DefaultOptions()
	opts.BulletSpeed = 1
	g := newTestGame(t, opts)
	dropped := eventLog(g, EventFireDropped)

	for i := 0; i < BulletCapacity+1; i++ {
		g.Tick(InputState{Fire: true})
	}
	if g.BulletCount() != BulletCapacity {
		t.Errorf("BulletCount = %d, want %d", g.BulletCount(), BulletCapacity)
	}
	if len(*dropped) != 1 {
		t.Errorf("%d dropped shots, want 1", len(*dropped))
	}
}

func TestAlienAnimationAdvancesPerTick(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	anim := g.Animation(AlienTypeB)
	for i := 0; i < AlienFrameDuration; i++ {
		g.Tick(InputState{})
	}
	if anim.FrameIndex() != 1 {
		t.Errorf("FrameIndex after %d ticks = %d, want 1", AlienFrameDuration, anim.FrameIndex())
	}
	if g.Animation(AlienDead) != nil {
		t.Error("dead aliens have no animation")
	}
}

func TestCoinAndQuit(t *testing.T) {
	opts := DefaultOptions()
	opts.Credits = 2
	g := newTestGame(t, opts)

	g.Tick(InputState{Coin: true})
	if g.Credits() != 3 {
		t.Errorf("Credits = %d, want 3", g.Credits())
	}
	g.Tick(InputState{Quit: true})
	if g.Running() {
		t.Error("game still running after quit")
	}
	if g.Ticks() != 2 {
		t.Errorf("Ticks = %d, want 2 (the quitting tick completes)", g.Ticks())
	}

	g.Reset()
	if !g.Running() || g.Credits() != 2 || g.Ticks() != 0 {
		t.Error("Reset did not restore the starting state")
	}
}

func TestRenderLayout(t *testing.T) {
	g := newTestGame(t, DefaultOptions())
	b := g.Buffer()
	bg := Palette.Background.Pack()

	tests := []struct {
		name string
		x, y int
		want uint32
	}{
		{"background", 0, 0, bg},
		{"separator", 100, SeparatorY, Palette.Separator.Pack()},
		{"above separator", 100, SeparatorY + 1, bg},
		{"player", PlayerStartX, PlayerStartY, Palette.Player.Pack()},
		{"left of player", PlayerStartX - 1, PlayerStartY, bg},
		{"alien r0 c0", 20, 128, Palette.Alien.Pack()},
		{"SCORE label", 4, BufferHeight - 14, Palette.Text.Pack()},
		{"score digit", 14, BufferHeight - 26, Palette.Text.Pack()},
		{"CREDIT label", 164, 7, Palette.Text.Pack()},
		{"credit digit", 164 + 42, 7, Palette.Text.Pack()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.At(tt.x, tt.y); got != tt.want {
				t.Errorf("At(%d, %d) = %#08x, want %#08x", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	script := func(i int) InputState {
		return InputState{MoveDir: (i/30)%3 - 1, Fire: i%7 == 0}
	}
	a := newTestGame(t, DefaultOptions())
	b := newTestGame(t, DefaultOptions())
	for i := 0; i < 500; i++ {
		a.Tick(script(i))
		b.Tick(script(i))
	}
	if a.Score() != b.Score() {
		t.Fatalf("scores differ: %d vs %d", a.Score(), b.Score())
	}
	for i := range a.Buffer().Pixels {
		if a.Buffer().Pixels[i] != b.Buffer().Pixels[i] {
			t.Fatalf("buffers differ at pixel %d", i)
		}
	}
}
