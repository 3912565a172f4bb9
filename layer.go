package holga

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/zyedidia/generic/mapset"
)

// Layer is an Ebitengine host for sprites. It draws its children, in the
// order they were added, with frames looked up in Sheet. The camera lays
// sprites out relative to the layer origin; move or scale the layer to place
// the whole view on screen.
type Layer struct {
	Name string

	// X and Y position the layer on the destination image.
	X, Y float64
	// Zoom scales the whole layer, on top of each sprite's own scale.
	Zoom float64
	// Visible hides the whole layer.
	Visible bool

	// Sheet resolves Sprite.Frame to an image. Nothing is drawn without one.
	Sheet *Sheet

	children []*Sprite
	members  mapset.Set[*Sprite]
	stale    bool // children holds removed sprites awaiting compaction

	op ebiten.DrawImageOptions
}

// NewLayer creates an empty, visible layer at the origin with unit zoom.
func NewLayer(name string) *Layer {
	return &Layer{
		Name:    name,
		Zoom:    1,
		Visible: true,
		members: mapset.New[*Sprite](),
	}
}

// AddChild appends s. Adding a sprite that is already a child is a no-op.
// Panics if s is nil.
func (l *Layer) AddChild(s *Sprite) {
	if s == nil {
		panic("holga: cannot add nil sprite")
	}
	if l.members.Has(s) {
		return
	}
	l.compact()
	l.members.Put(s)
	l.children = append(l.children, s)
}

// RemoveChild drops s. Removing a sprite that is not a child is a no-op.
func (l *Layer) RemoveChild(s *Sprite) {
	if s == nil || !l.members.Has(s) {
		return
	}
	l.members.Remove(s)
	l.stale = true
}

// Has reports whether s is a child of the layer.
func (l *Layer) Has(s *Sprite) bool {
	return l.members.Has(s)
}

// Len returns the number of children.
func (l *Layer) Len() int {
	return l.members.Size()
}

// Children returns the children in draw order. The returned slice MUST NOT be
// mutated by the caller.
func (l *Layer) Children() []*Sprite {
	l.compact()
	return l.children
}

// compact drops removed sprites from the draw list, keeping order.
func (l *Layer) compact() {
	if !l.stale {
		return
	}
	kept := l.children[:0]
	for _, s := range l.children {
		if l.members.Has(s) {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(l.children); i++ {
		l.children[i] = nil
	}
	l.children = kept
	l.stale = false
}

// Centre positions the layer so content of the given pixel size sits in the
// middle of a w x h screen.
func (l *Layer) Centre(w, h int, size Point) {
	l.X = float64(w)*0.5 - size.X*l.Zoom*0.5
	l.Y = float64(h)*0.5 - size.Y*l.Zoom*0.5
}

// Draw renders every visible child onto dst.
func (l *Layer) Draw(dst *ebiten.Image) {
	if !l.Visible || l.Sheet == nil {
		return
	}
	op := &l.op
	for _, s := range l.Children() {
		if !s.Visible {
			continue
		}
		img := l.Sheet.Frame(s.Frame)

		op.GeoM.Reset()
		op.GeoM.Scale(s.Scale, s.Scale)
		op.GeoM.Translate(s.X, s.Y)
		op.GeoM.Scale(l.Zoom, l.Zoom)
		op.GeoM.Translate(l.X, l.Y)

		op.ColorScale.Reset()
		a := float32(s.Tint.A)
		op.ColorScale.Scale(float32(s.Tint.R)*a, float32(s.Tint.G)*a, float32(s.Tint.B)*a, a)

		dst.DrawImage(img, op)
	}
}
