package sim

type EventType int

const (
	EventObstacleHit EventType = iota
	EventBoundaryHit
)

type Event struct {
	Type     EventType
	X, Z     float64
	Speed    float64  // vehicle speed before the contact damped it
	Category Category // for EventObstacleHit
}

type EventHandler func(Event)

// EventBus fans events out to subscribers synchronously, on the tick thread.
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

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
