package nova

// EventType identifies a kind of scene mutation.
type EventType uint8

const (
	EventEntityAdded   EventType = iota // a World created an entity
	EventCameraChanged                  // a Camera changed scale or offset
)

// String returns a short name for the event type.
func (t EventType) String() string {
	switch t {
	case EventEntityAdded:
		return "entity-added"
	case EventCameraChanged:
		return "camera-changed"
	default:
		return "unknown"
	}
}

// Event describes a completed mutation of a World or Camera.
type Event struct {
	Type EventType

	// Entity fields (valid for EventEntityAdded)
	EntityID int
	Kind     ShapeKind

	// Camera fields (valid for EventCameraChanged)
	Scale  float64
	Offset Vec2
}

// EventSink receives scene events. World and Camera call EmitEvent
// synchronously, after the mutation is complete, on the caller's goroutine.
type EventSink interface {
	EmitEvent(event Event)
}

// EventSinkFunc adapts a plain function to the EventSink interface.
type EventSinkFunc func(Event)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event Event) {
	f(event)
}
