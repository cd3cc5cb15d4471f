package ecs

import (
	"github.com/phanxgames/nova"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for nova scene events.
// Subscribe to this in your ECS systems to receive entity and camera changes.
var SceneEventType = events.NewEventType[nova.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on SceneEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) nova.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event nova.Event) {
	SceneEventType.Publish(s.world, event)
}
