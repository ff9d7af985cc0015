package game

// InputState is everything a tick needs from the player. The presentation
// layer builds one per tick; Fire is edge-triggered and must be reported to
// exactly one tick per press.
type InputState struct {
	MoveDir int  // -1 left, 0 none, +1 right
	Fire    bool // fire pressed since the previous tick
	Coin    bool // coin inserted since the previous tick
	Quit    bool // host asked to stop after this tick
}

// Controls accumulates input events between ticks. Presentation backends
// feed it from their event callbacks and call Take once per tick.
type Controls struct {
	move int
	fire bool
	coin bool
	quit bool
}

// Press records a held direction key: -1 for left, +1 for right.
func (c *Controls) Press(dir int) {
	c.move += sign(dir)
}

// Release undoes a previous Press of the same direction.
func (c *Controls) Release(dir int) {
	c.move -= sign(dir)
}

// Fire latches the fire edge until the next Take.
func (c *Controls) Fire() {
	c.fire = true
}

// Coin latches a coin insert until the next Take.
func (c *Controls) Coin() {
	c.coin = true
}

func (c *Controls) Quit() {
	c.quit = true
}

// Take returns the input for the next tick and clears the latched edges.
// Held directions persist until released.
func (c *Controls) Take() InputState {
	in := InputState{
		MoveDir: sign(c.move),
		Fire:    c.fire,
		Coin:    c.coin,
		Quit:    c.quit,
	}
	c.fire = false
	c.coin = false
	return in
}

// Reset drops all held keys and latched edges.
func (c *Controls) Reset() {
	*c = Controls{}
}
