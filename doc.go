// Package nova is the scene and geometry core of a 2D visual editor.
//
// A [World] owns an ordered list of [Entity] values and hands out their ids.
// A [Camera] maps between world space and screen space and zooms around an
// arbitrary screen point.
//
// # Quick start
//
//	world := nova.NewWorld()
//	cam := nova.NewCamera()
//
//	// A click at screen (320, 240) creates a box under the pointer.
//	p := cam.ScreenToWorld(nova.Vec2{X: 320, Y: 240})
//	box := world.AddBox(p, nova.Vec2{X: 40, Y: 20})
//
//	// Wheel up over the same point: the box stays under the pointer.
//	cam.ZoomAt(nova.Vec2{X: 320, Y: 240}, 1.1)
//
// # Entities
//
// Entities are created only through [World.AddBox], [World.AddCircle] and
// [World.AddTriangle]. Ids start at 1 and are never reused. Each entity
// carries a [Transform] and one [Shape] payload: [*Box], [*Circle] or
// [*Triangle]. Vertex data is local to the entity; the world position is
// local + Transform.Position. Rotation and Scale on Transform are stored
// but not applied.
//
//	switch s := e.Shape().(type) {
//	case *nova.Box:
//		// s.Vertices
//	case *nova.Circle:
//		// s.RadiusX, s.RadiusY
//	case *nova.Triangle:
//		// s.Vertices
//	}
//
// # Camera
//
//	screen = world*scale + offset
//
// Every scale change goes through the anchored zoom behind [Camera.ZoomAt],
// which keeps the scale within [MinScale, MaxScale]. [Camera.ZoomTo] and
// [Camera.PanTo] animate the camera with [gween] tweens, advanced by
// [Camera.Update].
//
// # Observing changes
//
// There is no implicit reactivity. Callers that need to react to mutations
// set an [EventSink] on the World or Camera; it is called synchronously after
// each mutation. The ecs subpackage forwards these events into a [Donburi]
// world.
//
// # Editor collaborators
//
// [DrawWorld] renders a World through a Camera with ebiten, and [Controller]
// turns pointer input into World and Camera calls. Both sit on top of the
// core types and can be replaced.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package nova
