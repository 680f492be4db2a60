package game

// paddleRestY is the top of a paddle centred on the playfield.
const paddleRestY = PlayfieldHeight/2 - PaddleHeight/2

// paddleMaxY is the lowest top edge that keeps a paddle on the playfield.
const paddleMaxY = PlayfieldHeight - PaddleHeight

// PlayerPaddle is the keyboard-driven paddle on the left edge.
// Y is the top edge and the only stored position.
type PlayerPaddle struct {
	Y   float64
	Vel float64
}

func NewPlayerPaddle() PlayerPaddle {
	return PlayerPaddle{Y: paddleRestY, Vel: PlayerStartVel}
}

// Offset is the displacement from the centred rest position.
func (p *PlayerPaddle) Offset() float64 { return p.Y - paddleRestY }

func (p *PlayerPaddle) Rect() Rect {
	return Rect{X: PlayerX, Y: p.Y, W: PaddleWidth, H: PaddleHeight}
}

// Update applies one frame of acceleration or friction, integrates the
// velocity and keeps the paddle on the playfield. Up wins over down.
func (p *PlayerPaddle) Update(in InputState) {
	switch {
	case in.Up:
		p.Vel -= PlayerAccel
		if p.Vel < -PlayerMaxSpeed {
			p.Vel = -PlayerMaxSpeed
		}
	case in.Down:
		p.Vel += PlayerAccel
		if p.Vel > PlayerMaxSpeed {
			p.Vel = PlayerMaxSpeed
		}
	default:
		p.Vel = approach(p.Vel, 0, PlayerFriction)
	}

	p.Y = clampF(p.Y+p.Vel, 0, paddleMaxY)
}

// OpponentPaddle is the AI-controlled paddle on the right edge.
type OpponentPaddle struct {
	Y float64
}

func NewOpponentPaddle() OpponentPaddle {
	return OpponentPaddle{Y: paddleRestY}
}

func (o *OpponentPaddle) Rect() Rect {
	return Rect{X: OpponentX, Y: o.Y, W: PaddleWidth, H: PaddleHeight}
}

// Track eases the paddle toward the ball's vertical centre, but only while
// the ball is past the first third of the field and moving toward it.
func (o *OpponentPaddle) Track(b Ball) {
	if b.X > PlayfieldWidth/3.0 && b.VX > 0 {
		delta := b.Rect().CenterY() - o.Rect().CenterY()
		o.Y += delta * AIResponsiveness
	}
	o.Y = clampF(o.Y, 0, paddleMaxY)
}
