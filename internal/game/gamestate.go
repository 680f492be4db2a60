package game

// Action is a simulation-level key meaning; physical keys map onto it.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionReset
)

// InputState mirrors which actions are currently held.
type InputState struct {
	Up    bool
	Down  bool
	Reset bool
}

// Set records a key-down (held=true) or key-up for an action.
func (in *InputState) Set(a Action, held bool) {
	switch a {
	case ActionUp:
		in.Up = held
	case ActionDown:
		in.Down = held
	case ActionReset:
		in.Reset = held
	}
}

// Game owns all mutable simulation state.
type Game struct {
	Player   PlayerPaddle
	Opponent OpponentPaddle
	Ball     Ball

	rng RandSource
	Bus *EventBus // optional
}

// NewGame creates the entities at their start positions and launches the ball.
func NewGame(rng RandSource) *Game {
	g := &Game{
		Player:   NewPlayerPaddle(),
		Opponent: NewOpponentPaddle(),
		rng:      rng,
	}
	g.Ball.Launch(rng)
	return g
}

// Step advances the simulation by one frame.
func (g *Game) Step(in InputState) {
	g.Player.Update(in)
	g.Opponent.Track(g.Ball)

	b := &g.Ball
	b.Integrate()
	if b.BounceWalls() {
		g.emit(EventWallBounce)
	}

	if b.OutOfBounds() || in.Reset {
		b.Launch(g.rng)
		g.emit(EventBallReset)
	}

	// Both checks always run; player first.
	if pr := g.Player.Rect(); pr.Intersects(b.Rect()) {
		b.DeflectOffPlayer(pr)
		g.emit(EventPlayerHit)
	}
	if g.Opponent.Rect().Intersects(b.Rect()) {
		b.DeflectOffOpponent()
		g.emit(EventOpponentHit)
	}
}

func (g *Game) emit(t EventType) {
	g.Bus.Emit(Event{Type: t, X: g.Ball.X, Y: g.Ball.Y, VX: g.Ball.VX, VY: g.Ball.VY})
}

// Canvas is the drawing half of a Surface.
type Canvas interface {
	Clear(c RGB)
	FillRect(r Rect, c RGB)
}

// Draw clears the frame and fills the three rectangles.
func (g *Game) Draw(c Canvas) {
	c.Clear(Palette.Background)
	c.FillRect(g.Player.Rect(), Palette.Player)
	c.FillRect(g.Ball.Rect(), Palette.Ball)
	c.FillRect(g.Opponent.Rect(), Palette.Opponent)
}
