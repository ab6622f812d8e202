package session

import "gridsnake/internal/game"

type EventType int

const (
	EventFoodEaten EventType = iota
	EventDefeat
	EventVictory
	EventReset
	EventSettingsRejected
)

var eventNames = [...]string{"food", "defeat", "victory", "reset", "rejected"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

type Event struct {
	Type         EventType
	Head         game.Vec2
	Score        int
	MaximumScore int
	Err          error // set for EventSettingsRejected
}

type EventHandler func(Event)

// EventBus dispatches synchronously on the emitting goroutine.
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
	for t := range eventNames {
		eb.Subscribe(EventType(t), fn)
	}
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
