package game

import "fmt"

// Options tunes a Game at construction.
type Options struct {
	ClearColor  RGB
	BulletSpeed int
	PlayerSpeed int
	Lives       int
	Credits     int
}

func DefaultOptions() Options {
	return Options{
		ClearColor:  Palette.Background,
		BulletSpeed: BulletSpeed,
		PlayerSpeed: PlayerSpeed,
		Lives:       PlayerStartLives,
	}
}

// Game is the authoritative simulation state plus its render target.
// It is owned by a single loop; nothing in it is safe for concurrent use.
type Game struct {
	res  *Resources
	buf  *Buffer
	opts Options

	aliens     []Alien
	alienAnims [3]*Animation // per AlienType-1
	bullets    BulletList
	player     Player

	score   int
	credits int

	clearColor uint32
	running    bool
	ticks      uint64

	events *EventBus
}

// NewGame builds the starting formation and renders the first frame.
func NewGame(res *Resources, opts Options) (*Game, error) {
	if err := res.Validate(); err != nil {
		return nil, err
	}
	if opts.BulletSpeed <= 0 {
		return nil, fmt.Errorf("bullet speed must be positive, got %d", opts.BulletSpeed)
	}
	if opts.PlayerSpeed <= 0 {
		return nil, fmt.Errorf("player speed must be positive, got %d", opts.PlayerSpeed)
	}
	if opts.Lives < 0 || opts.Credits < 0 {
		return nil, fmt.Errorf("lives and credits must not be negative, got %d and %d", opts.Lives, opts.Credits)
	}

	g := &Game{
		res:        res,
		buf:        NewBuffer(BufferWidth, BufferHeight),
		opts:       opts,
		aliens:     make([]Alien, AlienCount),
		clearColor: opts.ClearColor.Pack(),
		running:    true,
		events:     NewEventBus(),
	}
	for i, frames := range res.AlienFrames {
		g.alienAnims[i] = NewAnimation(frames, AlienFrameDuration, true)
	}
	g.Reset()
	return g, nil
}

// Reset restores the starting formation, player and counters.
func (g *Game) Reset() {
	death := g.res.Sprites.Get(g.res.AlienDeath)
	for r := 0; r < AlienRows; r++ {
		t := RowType(r)
		frame := g.res.Sprites.Get(g.res.AlienFrames[t-1][0])
		for c := 0; c < AlienCols; c++ {
			g.aliens[r*AlienCols+c] = Alien{
				X:            AlienSpacingX*c + AlienOriginX + (death.Width-frame.Width)/2,
				Y:            AlienSpacingY*r + AlienOriginY,
				Type:         t,
				DeathCounter: DeathLinger,
			}
		}
	}
	for _, a := range g.alienAnims {
		a.Reset()
	}
	g.bullets.Clear()
	g.player = Player{X: PlayerStartX, Y: PlayerStartY, Lives: g.opts.Lives}
	g.score = 0
	g.credits = g.opts.Credits
	g.ticks = 0
	g.running = true
	g.Render()
}

func (g *Game) Buffer() *Buffer       { return g.buf }
func (g *Game) Running() bool         { return g.running }
func (g *Game) Score() int            { return g.score }
func (g *Game) Credits() int          { return g.credits }
func (g *Game) Player() Player        { return g.player }
func (g *Game) Ticks() uint64         { return g.ticks }
func (g *Game) Events() *EventBus     { return g.events }
func (g *Game) Resources() *Resources { return g.res }
func (g *Game) Bullets() []Bullet     { return g.bullets.Active() }
func (g *Game) BulletCount() int      { return g.bullets.Len() }
func (g *Game) Aliens() []Alien       { return g.aliens }
func (g *Game) Animation(t AlienType) *Animation {
	if t == AlienDead || t > AlienTypeC {
		return nil
	}
	return g.alienAnims[t-1]
}

// AlienSprite is the sprite an alien currently shows: its animated frame
// while alive, the death sprite once destroyed.
func (g *Game) AlienSprite(a *Alien) Sprite {
	if a.Type == AlienDead {
		return g.res.Sprites.Get(g.res.AlienDeath)
	}
	return g.res.Sprites.Get(g.alienAnims[a.Type-1].Frame())
}

// Tick advances the simulation one step and renders the result.
func (g *Game) Tick(in InputState) {
	g.running = !in.Quit

	g.animate()
	g.decayDeaths()
	g.moveBullets()
	g.resolveHits()
	g.movePlayer(in.MoveDir)
	if in.Fire {
		g.fire()
	}
	if in.Coin {
		g.credits++
	}
	g.ticks++

	g.Render()
}

func (g *Game) animate() {
	for _, a := range g.alienAnims {
		a.Advance()
	}
}

func (g *Game) decayDeaths() {
	for i := range g.aliens {
		a := &g.aliens[i]
		if a.Type == AlienDead && a.DeathCounter > 0 {
			a.DeathCounter--
		}
	}
}

func (g *Game) moveBullets() {
	minY := g.res.Sprites.Get(g.res.Bullet).Height
	for i := 0; i < g.bullets.Len(); {
		b := g.bullets.At(i)
		b.Y += b.Dir
		if b.Y >= g.buf.Height || b.Y < minY {
			g.events.Emit(Event{Type: EventBulletExpired, X: b.X, Y: b.Y, Data: g.bullets.Len() - 1})
			g.bullets.Remove(i)
			continue
		}
		i++
	}
}

// resolveHits lets each bullet destroy at most one alien per tick.
func (g *Game) resolveHits() {
	bullet := g.res.Sprites.Get(g.res.Bullet)
	death := g.res.Sprites.Get(g.res.AlienDeath)

	for bi := 0; bi < g.bullets.Len(); {
		b := g.bullets.At(bi)
		br := SpriteRect(bullet, b.X, b.Y)
		hit := false
		for ai := range g.aliens {
			a := &g.aliens[ai]
			if !a.Alive() {
				continue
			}
			frame := g.AlienSprite(a)
			if !Overlaps(br, SpriteRect(frame, a.X, a.Y)) {
				continue
			}
			t := a.kill()
			g.score += t.Points()
			a.X -= (death.Width - frame.Width) / 2
			g.events.Emit(Event{Type: EventAlienKilled, X: a.X, Y: a.Y, Data: t.Points()})
			g.bullets.Remove(bi)
			hit = true
			break
		}
		if !hit {
			bi++
		}
	}
}

func (g *Game) movePlayer(dir int) {
	dir = sign(dir)
	if dir == 0 {
		return
	}
	w := g.res.Sprites.Get(g.res.Player).Width
	g.player.X = clamp(g.player.X+dir*g.opts.PlayerSpeed, 0, g.buf.Width-w)
}

func (g *Game) fire() {
	if g.bullets.Full() {
		g.events.Emit(Event{Type: EventFireDropped, X: g.player.X, Y: g.player.Y, Data: g.bullets.Len()})
		return
	}
	ps := g.res.Sprites.Get(g.res.Player)
	b := Bullet{
		X:   g.player.X + ps.Width/2,
		Y:   g.player.Y + ps.Height,
		Dir: g.opts.BulletSpeed,
	}
	g.bullets.Push(b)
	g.events.Emit(Event{Type: EventBulletFired, X: b.X, Y: b.Y, Data: g.bullets.Len()})
}
