//go:build !android

package game

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// desktopSurface drives one glfw window and its GL renderer.
type desktopSurface struct {
	window *glfw.Window
	rend   *Renderer
	input  *Input
}

func (s *desktopSurface) Poll(in *InputState) bool {
	glfw.PollEvents()
	*in = s.input.held
	return !s.window.ShouldClose() && !s.input.quit
}

func (s *desktopSurface) Clear(c RGB) {
	fbW, fbH := s.window.GetFramebufferSize()
	s.rend.Clear(c, fbW, fbH)
}

func (s *desktopSurface) FillRect(r Rect, c RGB) { s.rend.FillRect(r, c) }

func (s *desktopSurface) Present() {
	s.rend.Flush()
	s.window.SwapBuffers()
}

// RunDesktop opens the window and plays until it is closed. Every acquired
// resource is released before it returns.
func RunDesktop() error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("PONG_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		} else {
			log.Printf("ignoring PONG_SEED %q: %v", s, err)
		}
	}

	g := NewGame(NewRand(seed))
	if os.Getenv("PONG_DEBUG") != "" {
		g.Bus = NewEventBus()
		g.Bus.SubscribeAll(func(e Event) {
			log.Printf("%s ball=(%.1f,%.1f) vel=(%.2f,%.2f)", e.Type, e.X, e.Y, e.VX, e.VY)
		})
		log.Printf("seed %d", seed)
	}

	surface := &desktopSurface{window: window, rend: rend, input: NewInput(window)}
	frames := Run(surface, g, time.Sleep)
	if g.Bus != nil {
		log.Printf("closed after %d frames", frames)
	}
	return nil
}
