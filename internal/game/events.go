package game

type EventType int

const (
	EventWallBounce EventType = iota
	EventBallReset
	EventPlayerHit
	EventOpponentHit
)

func (t EventType) String() string {
	switch t {
	case EventWallBounce:
		return "wall-bounce"
	case EventBallReset:
		return "ball-reset"
	case EventPlayerHit:
		return "player-hit"
	case EventOpponentHit:
		return "opponent-hit"
	}
	return "unknown"
}

// Event carries the ball state right after the change that triggered it.
type Event struct {
	Type   EventType
	X, Y   float64
	VX, VY float64
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

// SubscribeAll registers fn for every event type.
func (eb *EventBus) SubscribeAll(fn EventHandler) {
	for t := EventWallBounce; t <= EventOpponentHit; t++ {
		eb.Subscribe(t, fn)
	}
}

// Emit is safe on a nil bus.
func (eb *EventBus) Emit(e Event) {
	if eb == nil {
		return
	}
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
