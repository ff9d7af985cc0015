package game

// AlienType doubles as the tier value used for scoring.
type AlienType uint8

const (
	AlienDead  AlienType = iota
	AlienTypeA           // top row, 30 points
	AlienTypeB           // 20 points
	AlienTypeC           // 10 points
)

func (t AlienType) String() string {
	switch t {
	case AlienDead:
		return "dead"
	case AlienTypeA:
		return "A"
	case AlienTypeB:
		return "B"
	case AlienTypeC:
		return "C"
	}
	return "unknown"
}

// Points awarded for destroying an alien of this type.
func (t AlienType) Points() int {
	if t == AlienDead || t > AlienTypeC {
		return 0
	}
	return 10 * (4 - int(t))
}

// RowType is the alien type of formation row r (row 0 is drawn lowest).
func RowType(r int) AlienType {
	return AlienType((AlienRows-r)/2 + 1)
}

// Alien is a formation member. Aliens are never removed: a destroyed alien
// turns Dead, shows its death sprite while DeathCounter > 0 and then stays
// in place, inert and invisible.
type Alien struct {
	X, Y         int
	Type         AlienType
	DeathCounter int
}

func (a *Alien) Alive() bool { return a.Type != AlienDead }

// Visible reports whether the alien still draws anything.
func (a *Alien) Visible() bool {
	return a.Type != AlienDead || a.DeathCounter > 0
}

// kill marks the alien dead and returns the type it had.
func (a *Alien) kill() AlienType {
	t := a.Type
	a.Type = AlienDead
	return t
}
