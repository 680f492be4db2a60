package game

import "time"

// Playfield dimensions (in pixels). The window is the same size.
const (
	PlayfieldWidth  = 500
	PlayfieldHeight = 500
	WindowTitle     = "Pong"
)

// Paddles. Both sides share the same size.
const (
	PaddleWidth  = 10
	PaddleHeight = 100
	PlayerX      = 10
	OpponentX    = PlayfieldWidth - 20
)

// Player paddle kinematics, per frame.
const (
	PlayerMaxSpeed = 5.0
	PlayerAccel    = 0.1
	PlayerFriction = 0.2
	PlayerStartVel = 1.2
)

// Ball.
const (
	BallSize  = 10
	BallSpeed = 5.0 // |vx| + |vy| at every launch
)

// Opponent AI and paddle deflection.
const (
	AIResponsiveness = 0.05
	DeflectScale     = 0.1
)

// FrameDelay is the flat sleep at the end of every frame (~60 FPS).
const FrameDelay = 16 * time.Millisecond
