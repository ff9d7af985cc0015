package game

type EventType int

const (
	EventAlienKilled EventType = iota
	EventBulletFired
	EventBulletExpired
	EventFireDropped // fire pressed with the bullet pool full
)

func (t EventType) String() string {
	switch t {
	case EventAlienKilled:
		return "alien_killed"
	case EventBulletFired:
		return "bullet_fired"
	case EventBulletExpired:
		return "bullet_expired"
	case EventFireDropped:
		return "fire_dropped"
	}
	return "unknown"
}

type Event struct {
	Type EventType
	X, Y int
	Data int // Generic payload (points for a kill, bullet count otherwise).
}

type EventHandler func(Event)

// EventBus delivers game events synchronously, inside the tick that raised them.
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
