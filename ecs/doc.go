// Package ecs connects a holga camera to a [Donburi] world.
//
// Entities carrying both [Position] and [SpriteRef] are placed through the
// camera by [SyncSprites], which hides the ones the viewport culls. A
// [CameraTracker] publishes a [CameraEvent] whenever the viewport or zoom
// changes, so systems can react to camera movement without polling it.
//
// Usage:
//
//	world := donburi.NewWorld()
//	tracker := ecs.NewCameraTracker(world)
//
//	// each tick
//	tracker.Update(cam)
//	ecs.SyncSprites(world, cam)
//	events.ProcessAllEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
