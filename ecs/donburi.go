package ecs

import (
	"github.com/phanxgames/holga"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// Position is an entity's world cell.
var Position = donburi.NewComponentType[holga.Point]()

// SpriteRef is the sprite an entity is drawn with. The sprite belongs to a
// host outside the camera pool, such as an overlay layer.
var SpriteRef = donburi.NewComponentType[*holga.Sprite]()

// CameraEvent describes the camera after a change.
type CameraEvent struct {
	Viewport holga.Rect
	Zoom     int
}

// CameraEventType is the Donburi event type for camera changes.
// Subscribe to this in your ECS systems to follow pans and zooms.
var CameraEventType = events.NewEventType[CameraEvent]()

var placed = donburi.NewQuery(filter.Contains(Position, SpriteRef))

// SyncSprites moves every entity with a Position and a SpriteRef to its screen
// position under cam, hiding the ones outside the viewport. It returns how
// many entities are visible.
func SyncSprites(world donburi.World, cam *holga.Camera) int {
	visible := 0
	placed.Each(world, func(entry *donburi.Entry) {
		s := *SpriteRef.Get(entry)
		if s == nil || s.IsDisposed() {
			return
		}
		p := Position.Get(entry)
		cam.TranslateSprite(s, p.X, p.Y)
		if s.Visible {
			visible++
		}
	})
	return visible
}

// CameraTracker publishes a CameraEvent when the camera it is updated with
// has moved or zoomed since the last update.
type CameraTracker struct {
	world donburi.World
	last  CameraEvent
	seen  bool
}

// NewCameraTracker creates a tracker publishing into world.
func NewCameraTracker(world donburi.World) *CameraTracker {
	return &CameraTracker{world: world}
}

// Update compares cam with the last state seen and publishes on a change.
// The first update always publishes. It reports whether an event was queued.
func (t *CameraTracker) Update(cam *holga.Camera) bool {
	ev := CameraEvent{Viewport: cam.Viewport(), Zoom: cam.Zoom()}
	if t.seen && ev == t.last {
		return false
	}
	t.seen = true
	t.last = ev
	CameraEventType.Publish(t.world, ev)
	return true
}
