package game

import (
	"context"
	"fmt"
)

// Presenter is the boundary between the simulation and a display backend.
// PollInput is called before every tick and must return every event received
// since the previous call; PresentFrame shows the finished buffer and paces
// the loop (vsync, ticker).
type Presenter interface {
	PollInput() InputState
	PresentFrame(b *Buffer) error
}

// Run drives poll -> tick -> present until the game stops running, ctx is
// cancelled or presenting fails. The tick in progress always completes.
func Run(ctx context.Context, g *Game, p Presenter) error {
	for g.Running() {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.Tick(p.PollInput())
		if err := p.PresentFrame(g.Buffer()); err != nil {
			return fmt.Errorf("present frame %d: %w", g.Ticks(), err)
		}
	}
	return nil
}
