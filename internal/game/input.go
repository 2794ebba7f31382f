package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input tracks previous key state so turns fire on key edges
// (pressed-this-frame), not on held keys.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// turnKeys maps directional keys to heading requests. Arrows and WASD both
// work; the turn policy itself (perpendicular only) lives on the snake.
var turnKeys = []struct {
	key     glfw.Key
	heading Heading
}{
	{glfw.KeyUp, HeadingUp},
	{glfw.KeyDown, HeadingDown},
	{glfw.KeyLeft, HeadingLeft},
	{glfw.KeyRight, HeadingRight},
	{glfw.KeyW, HeadingUp},
	{glfw.KeyS, HeadingDown},
	{glfw.KeyA, HeadingLeft},
	{glfw.KeyD, HeadingRight},
}

// ApplyTurns feeds this frame's key edges to the session in order, so the
// last accepted request wins. Reports whether any turn was accepted.
func (in *Input) ApplyTurns(window *glfw.Window, session *Session) bool {
	turned := false
	for _, tk := range turnKeys {
		if in.JustPressed(window, tk.key) && session.Turn(tk.heading) {
			turned = true
		}
	}
	return turned
}
