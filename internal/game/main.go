package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SNAKE_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(
		float32(Palette.Background.R)/255.0,
		float32(Palette.Background.G)/255.0,
		float32(Palette.Background.B)/255.0,
		1.0,
	)

	cfg := DefaultConfig()
	cfg.Seed = seed

	bus := NewEventBus()
	session := NewSession(cfg, bus)
	cam := NewCamera(session.Grid)
	input := NewInput()

	rend, err := NewRenderer(session.Grid)
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	// Presentation reactions to core events.
	bus.Subscribe(EventFoodEaten, func(e Event) {
		PlaySound(SoundEat)
		window.SetTitle(fmt.Sprintf("Snake (score %d)", e.Score))
	})
	bus.Subscribe(EventBlocked, func(e Event) {
		PlaySound(SoundGameOver)
		cam.AddShake(0.3, 0.4)
		window.SetTitle(fmt.Sprintf("Snake (game over, score %d)", e.Score))
	})
	bus.Subscribe(EventBoardFull, func(e Event) {
		PlaySound(SoundBoardFull)
	})

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		if input.ApplyTurns(window, session) {
			PlaySound(SoundTurn)
		}
		session.Update(dt)
		cam.UpdateShake(dt, seed^uint64(now*1000))
		cam.FitZoom(session.Grid, fbW, fbH)

		rend.SetTiles(session.Tiles())
		rend.Draw(cam, fbW, fbH)

		window.SwapBuffers()
	}
}
