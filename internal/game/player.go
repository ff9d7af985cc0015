package game

// Player is the cannon at the bottom of the play-field.
// Lives is tracked but no rule consumes it yet.
type Player struct {
	X, Y  int
	Lives int
}
