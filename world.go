package nova

import "log/slog"

// World owns the entity collection and is the only source of entity ids.
//
// A World is not safe for concurrent use. It is driven from a single event
// loop; readers observe it between mutations.
type World struct {
	entities []*Entity
	nextID   int

	sink  EventSink
	debug bool
}

// NewWorld creates an empty world. The first entity gets id 1.
func NewWorld() *World {
	return &World{nextID: 1}
}

// AddBox creates a box of the given size with its top-left corner at pos.
// Zero or negative sizes are accepted and produce degenerate geometry.
func (w *World) AddBox(pos, size Vec2) *Entity {
	return w.add(pos, newBox(size))
}

// AddCircle creates an ellipse centered at pos. radiusY is optional and
// defaults to radiusX, giving a circle. Extra values are ignored.
func (w *World) AddCircle(pos Vec2, radiusX float64, radiusY ...float64) *Entity {
	ry := radiusX
	if len(radiusY) > 0 {
		ry = radiusY[0]
	}
	return w.add(pos, newCircle(radiusX, ry))
}

// AddTriangle creates an isosceles triangle whose bounding box has its
// top-left corner at pos and the given size.
func (w *World) AddTriangle(pos, size Vec2) *Entity {
	return w.add(pos, newTriangle(size))
}

// add issues the next id and appends the entity in one step.
func (w *World) add(pos Vec2, shape Shape) *Entity {
	e := newEntity(w.nextID, pos, shape)
	w.nextID++
	w.entities = append(w.entities, e)

	if w.debug {
		slog.Debug("nova: entity added",
			"id", e.id, "kind", e.name, "x", pos.X, "y", pos.Y, "count", len(w.entities))
	}
	if w.sink != nil {
		w.sink.EmitEvent(Event{Type: EventEntityAdded, EntityID: e.id, Kind: shape.Kind()})
	}
	return e
}

// Entities returns the entities in creation order, which is also draw order.
// The returned slice MUST NOT be mutated by the caller.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Len returns the number of entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Entity returns the entity with the given id.
func (w *World) Entity(id int) (*Entity, bool) {
	// Ids are issued in increasing order and never removed, so the entity
	// with id n sits at index n-1.
	i := id - 1
	if i < 0 || i >= len(w.entities) {
		return nil, false
	}
	e := w.entities[i]
	if e.id != id {
		return nil, false
	}
	return e, true
}

// EntityAt returns the topmost entity containing the world-space point p.
// Later entities are drawn on top, so the search runs back to front.
func (w *World) EntityAt(p Vec2) (*Entity, bool) {
	for i := len(w.entities) - 1; i >= 0; i-- {
		e := w.entities[i]
		if !e.Bounds().Contains(p.X, p.Y) {
			continue
		}
		if e.Contains(p) {
			return e, true
		}
	}
	return nil, false
}

// SetEventSink sets the receiver of EventEntityAdded events. Pass nil to stop.
func (w *World) SetEventSink(sink EventSink) {
	w.sink = sink
}

// SetDebugMode enables or disables debug logging of mutations via slog.
func (w *World) SetDebugMode(enabled bool) {
	w.debug = enabled
}
