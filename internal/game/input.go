//go:build !android

package game

import "github.com/go-gl/glfw/v3.3/glfw"

var keyBindings = map[glfw.Key]Action{
	glfw.KeyW: ActionUp,
	glfw.KeyS: ActionDown,
	glfw.KeyR: ActionReset,
}

// Input collects key events delivered by glfw.PollEvents into held flags.
type Input struct {
	held InputState
	quit bool
}

func NewInput(window *glfw.Window) *Input {
	in := &Input{}
	window.SetKeyCallback(in.onKey)
	return in
}

func (in *Input) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		in.quit = true
		return
	}
	a, ok := keyBindings[key]
	if !ok {
		return
	}
	// Repeats leave the held state as it is.
	switch action {
	case glfw.Press:
		in.held.Set(a, true)
	case glfw.Release:
		in.held.Set(a, false)
	}
}
