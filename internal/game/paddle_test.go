package game

import (
	"math"
	"testing"
)

func TestFrictionNeverOvershoots(t *testing.T) {
	for _, start := range []float64{3.1, -2.7, PlayerStartVel, 0.05} {
		p := PlayerPaddle{Y: paddleRestY, Vel: start}
		prev := math.Abs(p.Vel)
		frames := 0
		for p.Vel != 0 {
			p.Update(InputState{})
			cur := math.Abs(p.Vel)
			if cur >= prev {
				t.Fatalf("start %v: |vel| went %v -> %v", start, prev, cur)
			}
			if p.Vel*start < 0 {
				t.Fatalf("start %v: velocity changed sign to %v", start, p.Vel)
			}
			prev = cur
			if frames++; frames > 100 {
				t.Fatalf("start %v: friction did not reach zero", start)
			}
		}
		for i := 0; i < 10; i++ {
			p.Update(InputState{})
			if p.Vel != 0 {
				t.Fatalf("start %v: velocity drifted to %v after stopping", start, p.Vel)
			}
		}
	}
}

func TestUpTakesPriorityOverDown(t *testing.T) {
	p := PlayerPaddle{Y: paddleRestY}
	p.Update(InputState{Up: true, Down: true})
	if !almostEqual(p.Vel, -PlayerAccel) {
		t.Fatalf("vel = %v, want %v", p.Vel, -PlayerAccel)
	}
}

func TestHeldKeyAcceleratesToCap(t *testing.T) {
	p := PlayerPaddle{Y: paddleRestY}
	for i := 0; i < 200; i++ {
		p.Update(InputState{Down: true})
	}
	if p.Vel != PlayerMaxSpeed {
		t.Fatalf("vel = %v, want %v", p.Vel, PlayerMaxSpeed)
	}
	if p.Y != paddleMaxY {
		t.Fatalf("y = %v, want %v", p.Y, float64(paddleMaxY))
	}

	for i := 0; i < 200; i++ {
		p.Update(InputState{Up: true})
	}
	if p.Vel != -PlayerMaxSpeed {
		t.Fatalf("vel = %v, want %v", p.Vel, -PlayerMaxSpeed)
	}
	if p.Y != 0 || p.Offset() != -paddleRestY {
		t.Fatalf("y = %v offset = %v, want 0 and %v", p.Y, p.Offset(), float64(-paddleRestY))
	}
}

func TestPlayerStaysOnField(t *testing.T) {
	rng := NewRand(7)
	p := NewPlayerPaddle()
	var in InputState
	for i := 0; i < 5000; i++ {
		if i%40 == 0 {
			in = InputState{Up: rng.Sign() > 0, Down: rng.Sign() > 0}
		}
		p.Update(in)
		r := p.Rect()
		if r.Y < 0 || r.Y+r.H > PlayfieldHeight {
			t.Fatalf("frame %d: paddle spans [%v, %v]", i, r.Y, r.Y+r.H)
		}
	}
}

func TestOpponentIgnoresBallOnNearSide(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
	}{
		{"left third moving right", Ball{X: PlayfieldWidth / 3.0, Y: 10, VX: 3}},
		{"near left edge", Ball{X: 50, Y: 480, VX: 4}},
		{"right side moving left", Ball{X: 400, Y: 10, VX: -2}},
		{"right side no horizontal speed", Ball{X: 400, Y: 480, VX: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOpponentPaddle()
			for i := 0; i < 30; i++ {
				o.Track(tt.ball)
				if o.Y != paddleRestY {
					t.Fatalf("frame %d: opponent moved to %v", i, o.Y)
				}
			}
		})
	}
}

func TestOpponentTracksWithLag(t *testing.T) {
	o := NewOpponentPaddle() // centre 250
	b := Ball{X: 300, Y: 345, VX: 2} // centre 350
	o.Track(b)
	if !almostEqual(o.Y, paddleRestY+100*AIResponsiveness) {
		t.Fatalf("y = %v, want %v", o.Y, paddleRestY+100*AIResponsiveness)
	}
}

func TestOpponentStaysOnField(t *testing.T) {
	o := NewOpponentPaddle()
	for i := 0; i < 1000; i++ {
		o.Track(Ball{X: 400, Y: 2000, VX: 1})
		if o.Y+PaddleHeight > PlayfieldHeight {
			t.Fatalf("frame %d: bottom at %v", i, o.Y+PaddleHeight)
		}
	}
	if o.Y != paddleMaxY {
		t.Fatalf("y = %v, want %v", o.Y, float64(paddleMaxY))
	}
	for i := 0; i < 1000; i++ {
		o.Track(Ball{X: 400, Y: -2000, VX: 1})
		if o.Y < 0 {
			t.Fatalf("frame %d: top at %v", i, o.Y)
		}
	}
}
