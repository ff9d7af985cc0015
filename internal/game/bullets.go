package game

// Bullet moves Dir pixels vertically per tick.
type Bullet struct {
	X, Y int
	Dir  int
}

// BulletList is a fixed-capacity, unordered bullet pool. Removal swaps the
// last active bullet into the freed slot, so indices are not stable across a
// removal and iteration order is not preserved.
type BulletList struct {
	items [BulletCapacity]Bullet
	n     int
}

func (l *BulletList) Len() int  { return l.n }
func (l *BulletList) Cap() int  { return len(l.items) }
func (l *BulletList) Full() bool { return l.n == len(l.items) }

// Push appends b, returning false when the list is full.
func (l *BulletList) Push(b Bullet) bool {
	if l.Full() {
		return false
	}
	l.items[l.n] = b
	l.n++
	return true
}

// At returns a pointer to the i-th active bullet.
func (l *BulletList) At(i int) *Bullet {
	if i < 0 || i >= l.n {
		panic("game: bullet index out of range")
	}
	return &l.items[i]
}

// Remove deletes the i-th bullet in O(1) by moving the last bullet into its slot.
func (l *BulletList) Remove(i int) {
	if i < 0 || i >= l.n {
		panic("game: bullet index out of range")
	}
	l.n--
	l.items[i] = l.items[l.n]
	l.items[l.n] = Bullet{}
}

// Active returns the live bullets. The slice aliases the pool.
func (l *BulletList) Active() []Bullet {
	return l.items[:l.n]
}

func (l *BulletList) Clear() {
	for i := 0; i < l.n; i++ {
		l.items[i] = Bullet{}
	}
	l.n = 0
}
