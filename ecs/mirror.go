package ecs

import (
	"github.com/phanxgames/nova"

	"github.com/yohamta/donburi"
)

// EntityRefData links a Donburi entity to a nova entity by id.
type EntityRefData struct {
	ID   int
	Kind nova.ShapeKind
}

// EntityRef is the component attached to mirrored entities.
var EntityRef = donburi.NewComponentType[EntityRefData]()

// Mirror creates one Donburi entity with an EntityRef component for every
// nova entity added, so ECS systems can query scene entities by kind.
// Mirroring happens when SceneEventType events are processed.
type Mirror struct {
	byID map[int]donburi.Entity
}

// NewMirror subscribes a Mirror to SceneEventType on world.
func NewMirror(world donburi.World) *Mirror {
	m := &Mirror{byID: make(map[int]donburi.Entity)}
	SceneEventType.Subscribe(world, m.onEvent)
	return m
}

func (m *Mirror) onEvent(w donburi.World, e nova.Event) {
	if e.Type != nova.EventEntityAdded {
		return
	}
	if _, ok := m.byID[e.EntityID]; ok {
		return
	}
	ent := w.Create(EntityRef)
	EntityRef.SetValue(w.Entry(ent), EntityRefData{ID: e.EntityID, Kind: e.Kind})
	m.byID[e.EntityID] = ent
}

// Lookup returns the Donburi entity mirroring the nova entity id.
func (m *Mirror) Lookup(id int) (donburi.Entity, bool) {
	ent, ok := m.byID[id]
	return ent, ok
}

// Len returns the number of mirrored entities.
func (m *Mirror) Len() int {
	return len(m.byID)
}
