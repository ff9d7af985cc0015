package game

// Render redraws the whole frame from the current state.
func (g *Game) Render() {
	b := g.buf
	font := g.res.Font
	text := Palette.Text.Pack()

	b.Clear(g.clearColor)

	// HUD: score top-left, credits bottom-right under the separator.
	gh := font.GlyphH()
	DrawText(b, font, "SCORE", HUDMargin, b.Height-gh-ScoreTextTopY, text)
	DrawNumber(b, font.Digits(), uint(g.score), HUDMargin+2*font.GlyphW(), b.Height-2*gh-ScoreNumTopY, text)
	DrawText(b, font, "CREDIT", CreditTextX, CreditTextY, text)
	DrawNumber(b, font.Digits(), uint(g.credits), CreditTextX+7*(font.GlyphW()+1), CreditTextY, text)
	DrawHLine(b, SeparatorY, 0, b.Width, Palette.Separator.Pack())

	death := g.res.Sprites.Get(g.res.AlienDeath)
	for i := range g.aliens {
		a := &g.aliens[i]
		switch {
		case a.Type == AlienDead && a.DeathCounter > 0:
			DrawSprite(b, death, a.X, a.Y, Palette.Death.Pack())
		case a.Alive():
			DrawSprite(b, g.AlienSprite(a), a.X, a.Y, Palette.Alien.Pack())
		}
	}

	bullet := g.res.Sprites.Get(g.res.Bullet)
	for _, bl := range g.bullets.Active() {
		DrawSprite(b, bullet, bl.X, bl.Y, Palette.Bullet.Pack())
	}

	DrawSprite(b, g.res.Sprites.Get(g.res.Player), g.player.X, g.player.Y, Palette.Player.Pack())
}
