package game

// Animation cycles through sprite handles, holding each for FrameDuration
// ticks. The current frame is derived from the elapsed tick count, which
// always stays below len(Frames)*FrameDuration.
type Animation struct {
	Frames        []SpriteID
	FrameDuration int
	Loop          bool

	elapsed int
	ended   bool
}

func NewAnimation(frames []SpriteID, frameDuration int, loop bool) *Animation {
	if len(frames) == 0 || frameDuration <= 0 {
		panic("game: animation needs frames and a positive frame duration")
	}
	return &Animation{Frames: frames, FrameDuration: frameDuration, Loop: loop}
}

func (a *Animation) period() int {
	return len(a.Frames) * a.FrameDuration
}

// Advance moves the animation forward one tick. It returns true once a
// one-shot animation has played out; the animation then holds its last frame.
func (a *Animation) Advance() bool {
	if a.ended {
		return true
	}
	a.elapsed++
	if a.elapsed == a.period() {
		if a.Loop {
			a.elapsed = 0
		} else {
			a.elapsed = a.period() - 1
			a.ended = true
		}
	}
	return a.ended
}

// FrameIndex is elapsed / FrameDuration.
func (a *Animation) FrameIndex() int {
	return a.elapsed / a.FrameDuration
}

// Frame returns the handle of the current frame.
func (a *Animation) Frame() SpriteID {
	return a.Frames[a.FrameIndex()]
}

func (a *Animation) Elapsed() int { return a.elapsed }
func (a *Animation) Ended() bool  { return a.ended }

// Reset rewinds to the first frame.
func (a *Animation) Reset() {
	a.elapsed = 0
	a.ended = false
}
