package display

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"invaders/internal/game"
)

// keyDir maps movement keys to a direction.
func keyDir(key glfw.Key) int {
	switch key {
	case glfw.KeyLeft, glfw.KeyA:
		return -1
	case glfw.KeyRight, glfw.KeyD:
		return 1
	}
	return 0
}

// handleKey feeds one GLFW key event into the controls. Key repeats are
// ignored so holding a direction counts once; fire triggers on release so
// one press spawns one bullet however long it is held.
func handleKey(c *game.Controls, key glfw.Key, action glfw.Action) {
	if action == glfw.Repeat {
		return
	}
	if dir := keyDir(key); dir != 0 {
		if action == glfw.Press {
			c.Press(dir)
		} else {
			c.Release(dir)
		}
		return
	}
	switch key {
	case glfw.KeySpace:
		if action == glfw.Release {
			c.Fire()
		}
	case glfw.KeyC, glfw.Key5:
		if action == glfw.Press {
			c.Coin()
		}
	case glfw.KeyEscape, glfw.KeyQ:
		if action == glfw.Press {
			c.Quit()
		}
	}
}
