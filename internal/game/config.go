package game

// Play-field dimensions (in buffer pixels).
// The arcade cabinet's rotated 224x256 raster.
const (
	BufferWidth  = 224
	BufferHeight = 256
)

// Alien formation.
const (
	AlienCols  = 11
	AlienRows  = 5
	AlienCount = AlienCols * AlienRows // 55

	AlienSpacingX = 16
	AlienSpacingY = 17
	AlienOriginX  = 20
	AlienOriginY  = 128

	// Ticks a destroyed alien keeps showing its death sprite.
	DeathLinger = 10
)

// Alien animation.
const (
	AlienFrameDuration = 10 // ticks per frame
)

// Bullets.
const (
	BulletCapacity = 128
	BulletSpeed    = 2
)

// Player defaults.
const (
	PlayerStartX     = BufferWidth/2 - 5
	PlayerStartY     = 32
	PlayerStartLives = 3
	PlayerSpeed      = 1
)

// HUD layout. Glyph cells are 5x7.
const (
	HUDMargin     = 4
	SeparatorY    = 16
	CreditTextX   = 164
	CreditTextY   = 7
	ScoreTextTopY = 7  // distance from the top edge to the top of "SCORE"
	ScoreNumTopY  = 12 // extra gap above the score digits
)

// Font atlas layout: one glyph per ASCII code in [FontFirst, FontLast].
const (
	FontFirst      = 32
	FontLast       = 96
	FontGlyphCount = FontLast - FontFirst + 1 // 65
	DigitCount     = 10
)
