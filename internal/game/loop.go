package game

import "time"

// Surface is the windowing/rendering service the loop drives.
type Surface interface {
	Canvas
	// Poll drains pending input events into in. It returns false once a
	// quit has been requested.
	Poll(in *InputState) bool
	Present()
}

// Run executes frames until the surface reports quit. It returns the number
// of frames simulated.
func Run(s Surface, g *Game, sleep func(time.Duration)) int {
	var in InputState
	frames := 0
	for s.Poll(&in) {
		g.Step(in)
		g.Draw(s)
		s.Present()
		frames++
		sleep(FrameDelay)
	}
	return frames
}
