// Package termview presents the game buffer in a terminal using tcell,
// packing two buffer rows into each cell with upper half blocks.
package termview

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"invaders/internal/config"
	"invaders/internal/game"
)

const halfBlock = '▀'

// Terminal is a game.Presenter drawing into a tcell screen.
type Terminal struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}
	ticker *time.Ticker
	log    *zap.Logger

	ctrl game.Controls

	// Terminals only report presses, so a direction stays held for
	// holdTicks after its most recent (auto-repeated) key press.
	holdTicks int
	held      int
	holdLeft  int
}

// Open initialises the controlling terminal.
func Open(cfg config.TerminalConfig, log *zap.Logger) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}
	return New(screen, cfg, log)
}

// New takes ownership of screen, initialises it and starts reading events.
func New(screen tcell.Screen, cfg config.TerminalConfig, log *zap.Logger) (*Terminal, error) {
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("terminal fps must be positive, got %d", cfg.FPS)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	t := &Terminal{
		screen:    screen,
		events:    make(chan tcell.Event, 100),
		done:      make(chan struct{}),
		ticker:    time.NewTicker(time.Second / time.Duration(cfg.FPS)),
		log:       log,
		holdTicks: cfg.HoldTicks,
	}
	go t.readEvents()
	return t, nil
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return // screen finalised
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// PollInput applies every event queued since the last tick.
func (t *Terminal) PollInput() game.InputState {
	for drained := false; !drained; {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			drained = true
		}
	}
	in := t.ctrl.Take()
	t.decayHold()
	return in
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		t.handleKey(ev)
	case *tcell.EventResize:
		t.screen.Sync()
		w, h := ev.Size()
		t.log.Debug("terminal resized", zap.Int("cols", w), zap.Int("rows", h))
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.ctrl.Quit()
		return
	case tcell.KeyLeft:
		t.hold(-1)
		return
	case tcell.KeyRight:
		t.hold(1)
		return
	case tcell.KeyRune:
	default:
		return
	}
	switch ev.Rune() {
	case ' ':
		t.ctrl.Fire()
	case 'a', 'A':
		t.hold(-1)
	case 'd', 'D':
		t.hold(1)
	case 'c', 'C', '5':
		t.ctrl.Coin()
	case 'q', 'Q':
		t.ctrl.Quit()
	}
}

func (t *Terminal) hold(dir int) {
	if t.held != dir {
		if t.held != 0 {
			t.ctrl.Release(t.held)
		}
		t.ctrl.Press(dir)
		t.held = dir
	}
	t.holdLeft = t.holdTicks
}

func (t *Terminal) decayHold() {
	if t.held == 0 {
		return
	}
	if t.holdLeft > 0 {
		t.holdLeft--
		return
	}
	t.ctrl.Release(t.held)
	t.held = 0
}

// PresentFrame draws the buffer and waits for the next frame slot.
func (t *Terminal) PresentFrame(b *game.Buffer) error {
	t.draw(b)
	t.screen.Show()
	<-t.ticker.C
	return nil
}

// draw samples the buffer down to the terminal size. Buffer row 0 is the
// bottom of the screen, terminal row 0 the top.
func (t *Terminal) draw(b *game.Buffer) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	step := scaleStep(b.Width, b.Height, cols, rows)
	outW := (b.Width + step - 1) / step
	outH := (b.Height + 2*step - 1) / (2 * step)
	offX := max(0, (cols-outW)/2)
	offY := max(0, (rows-outH)/2)

	t.screen.Clear()
	for cy := 0; cy < outH && cy+offY < rows; cy++ {
		top := b.Height - 1 - 2*cy*step
		bot := top - step
		for cx := 0; cx < outW && cx+offX < cols; cx++ {
			x := cx * step
			st := tcell.StyleDefault.
				Foreground(color(b.At(x, top))).
				Background(color(b.At(x, bot)))
			t.screen.SetContent(cx+offX, cy+offY, halfBlock, nil, st)
		}
	}
}

// scaleStep is the smallest integer downsampling factor that fits a w x h
// buffer into cols x rows half-block cells.
func scaleStep(w, h, cols, rows int) int {
	step := 1
	for (w+step-1)/step > cols || (h+2*step-1)/(2*step) > rows {
		step++
	}
	return step
}

func color(p uint32) tcell.Color {
	c := game.Unpack(p)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) Close() {
	close(t.done)
	t.ticker.Stop()
	t.screen.Fini()
}
