package game

import "math"

// fixedRand returns mag from RangeF (clamped to the range) and cycles
// through signs.
type fixedRand struct {
	mag   float64
	signs []float64
	n     int
}

func (f *fixedRand) RangeF(min, max float64) float64 {
	return clampF(f.mag, min, max)
}

func (f *fixedRand) Sign() float64 {
	if len(f.signs) == 0 {
		return 1
	}
	s := f.signs[f.n%len(f.signs)]
	f.n++
	return s
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// newTestGame returns a game at rest with the ball placed explicitly.
func newTestGame(b Ball) *Game {
	g := NewGame(&fixedRand{mag: 3, signs: []float64{1, 1}})
	g.Player.Vel = 0
	g.Ball = b
	return g
}

func recordEvents(g *Game) *[]Event {
	var got []Event
	g.Bus = NewEventBus()
	g.Bus.SubscribeAll(func(e Event) { got = append(got, e) })
	return &got
}
