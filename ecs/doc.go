// Package ecs provides ECS adapters for nova's scene events.
//
// The primary adapter is [NewDonburiSink], which bridges world and camera
// events (entity added, camera changed) into a [Donburi] world as typed
// events. Subscribe to [SceneEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(ecsWorld)
//	world.SetEventSink(sink)
//	camera.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
