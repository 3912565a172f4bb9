package holga

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action is something the user can ask the camera to do.
type Action uint8

const (
	ActionPanUp    Action = iota // one cell up
	ActionPanDown                // one cell down
	ActionPanLeft                // one cell left
	ActionPanRight               // one cell right
	ActionZoomIn                 // one zoom level in
	ActionZoomOut                // one zoom level out

	actionCount
)

// DefaultBindings maps arrow keys, WASD and +/- to camera actions.
func DefaultBindings() map[ebiten.Key]Action {
	return map[ebiten.Key]Action{
		ebiten.KeyArrowUp:    ActionPanUp,
		ebiten.KeyArrowDown:  ActionPanDown,
		ebiten.KeyArrowLeft:  ActionPanLeft,
		ebiten.KeyArrowRight: ActionPanRight,

		ebiten.KeyW: ActionPanUp,
		ebiten.KeyS: ActionPanDown,
		ebiten.KeyA: ActionPanLeft,
		ebiten.KeyD: ActionPanRight,

		ebiten.KeyEqual:          ActionZoomIn,
		ebiten.KeyNumpadAdd:      ActionZoomIn,
		ebiten.KeyMinus:          ActionZoomOut,
		ebiten.KeyNumpadSubtract: ActionZoomOut,
	}
}

// Controller turns keyboard, wheel and pointer input into camera operations.
// Update reads Ebitengine's input state once per tick; the Do, Wheel and
// Pointer* methods can also be called directly to inject input.
type Controller struct {
	// Bindings maps held keys to actions.
	Bindings map[ebiten.Key]Action
	// RepeatDelay is how many ticks a key is held before it repeats, and
	// RepeatInterval the ticks between repeats.
	RepeatDelay    int
	RepeatInterval int

	// Layer, when set, converts pointer positions from screen pixels to
	// the layer's local pixels before they reach the camera.
	Layer *Layer

	// OnStep, when set, receives pan actions as a cell step instead of the
	// camera panning directly. Use it to move a followed object.
	OnStep func(dx, dy int)

	cam          *Camera
	dragging     bool
	lastX, lastY float64 // screen position of the last pointer event
}

// NewController binds a controller with DefaultBindings to cam.
func NewController(cam *Camera) *Controller {
	return &Controller{
		Bindings:       DefaultBindings(),
		RepeatDelay:    12,
		RepeatInterval: 3,
		cam:            cam,
	}
}

// Do performs a single action.
func (c *Controller) Do(a Action) {
	switch a {
	case ActionPanUp:
		c.step(0, -1)
	case ActionPanDown:
		c.step(0, 1)
	case ActionPanLeft:
		c.step(-1, 0)
	case ActionPanRight:
		c.step(1, 0)
	case ActionZoomIn:
		c.cam.ApplyZoom(1)
	case ActionZoomOut:
		c.cam.ApplyZoom(-1)
	}
}

func (c *Controller) step(dx, dy int) {
	if c.OnStep != nil {
		c.OnStep(dx, dy)
		return
	}
	c.cam.Pan(float64(dx), float64(dy))
}

// Wheel zooms in for a positive delta and out for a negative one.
func (c *Controller) Wheel(dy float64) {
	switch {
	case dy > 0:
		c.cam.ApplyZoom(1)
	case dy < 0:
		c.cam.ApplyZoom(-1)
	}
}

// PointerDown starts a drag at screen position (sx, sy).
func (c *Controller) PointerDown(sx, sy float64) {
	c.dragging = true
	c.lastX, c.lastY = sx, sy
}

// PointerMove pans the camera one cell against the direction the pointer
// crossed cells in, so the world follows the pointer while dragging.
func (c *Controller) PointerMove(sx, sy float64) {
	if !c.dragging {
		return
	}
	prev := c.toWorld(c.lastX, c.lastY)
	cur := c.toWorld(sx, sy)
	c.lastX, c.lastY = sx, sy

	dx, dy := -sign(cur.X-prev.X), -sign(cur.Y-prev.Y)
	if dx != 0 || dy != 0 {
		c.cam.Pan(dx, dy)
	}
}

// PointerUp ends a drag.
func (c *Controller) PointerUp() {
	c.dragging = false
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.dragging
}

func (c *Controller) toWorld(sx, sy float64) Point {
	if l := c.Layer; l != nil && l.Zoom != 0 {
		sx = (sx - l.X) / l.Zoom
		sy = (sy - l.Y) / l.Zoom
	}
	return c.cam.ScreenToWorld(sx, sy)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// repeats reports whether a key held for d ticks fires this tick.
func repeats(d, delay, interval int) bool {
	if d == 1 {
		return true
	}
	if interval <= 0 || d <= delay {
		return false
	}
	return (d-delay)%interval == 0
}

// fired returns the actions whose bound keys fire this tick, once each and in
// Action order, however many keys share an action. held reports how many
// ticks a key has been down.
func (c *Controller) fired(held func(ebiten.Key) int) []Action {
	var on [actionCount]bool
	for key, action := range c.Bindings {
		if action < actionCount && repeats(held(key), c.RepeatDelay, c.RepeatInterval) {
			on[action] = true
		}
	}
	var actions []Action
	for a, ok := range on {
		if ok {
			actions = append(actions, Action(a))
		}
	}
	return actions
}

// Update reads keyboard, wheel and mouse state. Call it from ebiten.Game.Update.
func (c *Controller) Update() {
	for _, action := range c.fired(inpututil.KeyPressDuration) {
		c.Do(action)
	}

	_, wy := ebiten.Wheel()
	c.Wheel(wy)

	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		c.PointerDown(sx, sy)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		c.PointerUp()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		c.PointerMove(sx, sy)
	}
}
