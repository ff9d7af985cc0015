// Package display presents the game buffer in a GLFW window through OpenGL
// and turns keyboard events into game input.
package display

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"invaders/internal/config"
	"invaders/internal/game"
)

// Display is a game.Presenter backed by a GLFW window. All methods must be
// called from the goroutine that called Open.
type Display struct {
	window *glfw.Window
	rend   *Renderer
	ctrl   game.Controls
	log    *zap.Logger
}

// Open creates the window, GL context and buffer texture.
func Open(cfg config.WindowConfig, log *zap.Logger) (*Display, error) {
	runtime.LockOSThread()

	window, err := initWindow(cfg)
	if err != nil {
		return nil, err
	}
	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Info("opengl ready",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(0, 0, 0, 1)

	rend, err := NewRenderer(game.BufferWidth, game.BufferHeight)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("renderer: %w", err)
	}

	d := &Display{window: window, rend: rend, log: log}
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		handleKey(&d.ctrl, key, action)
	})
	return d, nil
}

// PollInput processes pending window events; the key callback runs inside
// glfw.PollEvents, so every event up to now is in the returned state.
func (d *Display) PollInput() game.InputState {
	glfw.PollEvents()
	if d.window.ShouldClose() {
		d.ctrl.Quit()
	}
	return d.ctrl.Take()
}

// PresentFrame uploads the buffer and swaps; with vsync on this blocks until
// the next refresh.
func (d *Display) PresentFrame(b *game.Buffer) error {
	fbW, fbH := d.window.GetFramebufferSize()
	if fbW <= 0 || fbH <= 0 {
		time.Sleep(time.Second / 60) // minimised: no vsync to pace us
		return nil
	}
	d.rend.Upload(b)
	d.rend.Draw(fbW, fbH)
	d.window.SwapBuffers()
	if code := gl.GetError(); code != gl.NO_ERROR {
		d.log.Warn("gl error", zap.Uint32("code", code))
	}
	return nil
}

func (d *Display) Close() {
	d.rend.Destroy()
	d.window.Destroy()
	glfw.Terminate()
}
