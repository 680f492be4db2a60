package game

// RandSource supplies the randomness a ball launch needs.
// *Rand satisfies it; tests substitute fixed values.
type RandSource interface {
	RangeF(min, max float64) float64
	Sign() float64
}

type Ball struct {
	X, Y   float64
	VX, VY float64
}

func (b *Ball) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: BallSize, H: BallSize}
}

// Launch puts the ball at the centre of the playfield with a fresh velocity.
// The vertical component is drawn first; the horizontal one gets what is
// left of BallSpeed. Each axis gets its own random sign.
func (b *Ball) Launch(rng RandSource) {
	b.X = PlayfieldWidth / 2.0
	b.Y = PlayfieldHeight / 2.0
	b.VY = rng.RangeF(0, BallSpeed) * rng.Sign()
	b.VX = (BallSpeed - absF(b.VY)) * rng.Sign()
}

func (b *Ball) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceWalls reflects the vertical velocity when the ball crosses the top or
// bottom edge. The position is left alone, so the ball may overlap the wall
// for a frame. Reports whether a bounce happened.
func (b *Ball) BounceWalls() bool {
	if b.Y+BallSize > PlayfieldHeight || b.Y < 0 {
		b.VY = -b.VY
		return true
	}
	return false
}

// OutOfBounds reports whether the ball has left the field horizontally.
func (b *Ball) OutOfBounds() bool {
	return b.X > PlayfieldWidth || b.X < 0
}

// DeflectOffPlayer sends the ball back toward the opponent with a vertical
// speed proportional to where it struck the paddle.
func (b *Ball) DeflectOffPlayer(paddle Rect) {
	b.VY = (b.Rect().CenterY() - paddle.CenterY()) * DeflectScale
	b.VX = absF(b.VX)
}

func (b *Ball) DeflectOffOpponent() {
	b.VX = -b.VX
}
