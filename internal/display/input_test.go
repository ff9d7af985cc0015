package display

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"invaders/internal/game"
)

type keyEvent struct {
	key    glfw.Key
	action glfw.Action
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name   string
		events []keyEvent
		want   game.InputState
	}{
		{"hold left", []keyEvent{{glfw.KeyLeft, glfw.Press}}, game.InputState{MoveDir: -1}},
		{"hold d", []keyEvent{{glfw.KeyD, glfw.Press}, {glfw.KeyD, glfw.Repeat}}, game.InputState{MoveDir: 1}},
		{"released", []keyEvent{{glfw.KeyRight, glfw.Press}, {glfw.KeyRight, glfw.Release}}, game.InputState{}},
		{"both held", []keyEvent{{glfw.KeyLeft, glfw.Press}, {glfw.KeyRight, glfw.Press}}, game.InputState{}},
		{"fire press only", []keyEvent{{glfw.KeySpace, glfw.Press}}, game.InputState{}},
		{"fire on release", []keyEvent{{glfw.KeySpace, glfw.Press}, {glfw.KeySpace, glfw.Release}}, game.InputState{Fire: true}},
		{"coin", []keyEvent{{glfw.KeyC, glfw.Press}}, game.InputState{Coin: true}},
		{"escape", []keyEvent{{glfw.KeyEscape, glfw.Press}}, game.InputState{Quit: true}},
		{"unbound", []keyEvent{{glfw.KeyZ, glfw.Press}}, game.InputState{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c game.Controls
			for _, ev := range tt.events {
				handleKey(&c, ev.key, ev.action)
			}
			if got := c.Take(); got != tt.want {
				t.Errorf("input = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFitViewport(t *testing.T) {
	tests := []struct {
		fbW, fbH   int
		x, y, w, h int
	}{
		{224, 256, 0, 0, 224, 256},
		{448, 512, 0, 0, 448, 512},
		{1000, 256, 388, 0, 224, 256},
		{224, 1000, 0, 372, 224, 256},
	}
	for _, tt := range tests {
		x, y, w, h := fitViewport(tt.fbW, tt.fbH, game.BufferWidth, game.BufferHeight)
		if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
			t.Errorf("fitViewport(%d, %d) = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
				tt.fbW, tt.fbH, x, y, w, h, tt.x, tt.y, tt.w, tt.h)
		}
	}
}
