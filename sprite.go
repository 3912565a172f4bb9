package holga

// Host is anything that can display sprites: an Ebitengine Layer, a terminal
// screen, a test recorder. The pool and camera only ever add and remove
// children; they never look inside a host.
type Host interface {
	AddChild(s *Sprite)
	RemoveChild(s *Sprite)
}

// Sprite is a reusable draw handle. The core writes Visible, X, Y and Scale;
// Frame and Tint are the visual payload and belong to whoever renders cells.
// A single flat struct keeps the render loop free of interface dispatch.
type Sprite struct {
	// Visible hides the sprite without detaching it from its host.
	Visible bool
	// X and Y are the screen-space position in pixels, relative to the host.
	X, Y float64
	// Scale is the uniform scale factor applied when drawing.
	Scale float64

	// Frame indexes a frame in the host's sheet (or glyph table).
	Frame int
	// Tint multiplies the frame's color.
	Tint Color

	host     Host
	disposed bool
}

// NewSprite creates a hidden sprite with unit scale and a white tint.
func NewSprite() *Sprite {
	return &Sprite{Scale: 1, Tint: ColorWhite}
}

// Host returns the host the sprite is attached to, or nil.
func (s *Sprite) Host() Host {
	return s.host
}

// attachTo adds s to h unless it is already there. A sprite attached
// elsewhere is removed from its old host first.
func (s *Sprite) attachTo(h Host) {
	if s.host == h {
		return
	}
	if s.host != nil {
		s.host.RemoveChild(s)
	}
	s.host = h
	h.AddChild(s)
}

// detachFrom removes s from h. No-op if s is not attached to h.
func (s *Sprite) detachFrom(h Host) {
	if s.host == nil || s.host != h {
		return
	}
	s.host = nil
	h.RemoveChild(s)
}

// Dispose detaches the sprite from its host and marks it unusable.
func (s *Sprite) Dispose() {
	if s.disposed {
		return
	}
	if s.host != nil {
		s.detachFrom(s.host)
	}
	s.disposed = true
	s.Visible = false
}

// IsDisposed returns true if this sprite has been disposed.
func (s *Sprite) IsDisposed() bool {
	return s.disposed
}
