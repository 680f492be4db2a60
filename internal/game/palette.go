package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// Floats returns the colour as normalized GL components.
func (c RGB) Floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Background RGB
	Player     RGB
	Ball       RGB
	Opponent   RGB
}{
	Background: RGB{R: 0, G: 0, B: 0},
	Player:     RGB{R: 255, G: 255, B: 255},
	Ball:       RGB{R: 255, G: 0, B: 0},
	Opponent:   RGB{R: 0, G: 255, B: 255},
}
