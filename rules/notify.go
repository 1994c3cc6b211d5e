package rules

// EventType names something that happened in the engine.
type EventType string

// Event types.
const (
	EventRoundStarted  EventType = "round-started"
	EventFoodEaten     EventType = "food-eaten"
	EventCollision     EventType = "collision"
	EventStarved       EventType = "starved"
	EventSnakeRemoved  EventType = "snake-removed"
	EventPoisonSpawned EventType = "poison-spawned"
	EventSpeedUp       EventType = "speed-up"
	EventRoundOver     EventType = "round-over"
)

// Event is sent to observers as the engine runs. Snake and Food are only set
// for the event types they apply to. Winner is set on EventRoundOver when a
// single snake survived.
type Event struct {
	Type    EventType
	RoundID string
	Frame   int
	Snake   *Snake
	Food    *Food
	Cause   Cause
	Winner  *Snake
}

// Observer receives engine events. Observe is called on the goroutine that
// runs the engine and must not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

// Observe calls f(e).
func (f ObserverFunc) Observe(e Event) { f(e) }

func (e *Engine) notify(ev Event) {
	if e.round != nil {
		ev.RoundID = e.round.ID
		ev.Frame = e.round.Frame
	}
	for _, o := range e.observers {
		o.Observe(ev)
	}
}
