package game

type EventType int

const (
	EventFoodEaten EventType = iota // Pos = eaten food cell, Score = new score
	EventBlocked                    // Pos = the candidate cell that ended the run
	EventBoardFull                  // snake covers every cell; no food can be placed
)

type Event struct {
	Type  EventType
	Pos   Position
	Score int
}

type EventHandler func(Event)

// EventBus decouples the session from presentation concerns (audio, window
// title, camera shake). Synchronous dispatch; handlers run on the caller's
// goroutine during the tick.
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
