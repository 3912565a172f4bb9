package holga

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Sprite simultaneously.
// Create one with TweenTint or TweenAlpha and call Update(dt) each frame.
// If the target sprite is disposed, the group stops immediately.
//
// Position and scale are owned by the camera and are not tweenable; there is
// no global animation manager, callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Sprite
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields. If the target has been disposed, Done is set and nothing is
// written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenTint animates all four components of s.Tint to the target color over
// duration seconds.
func TweenTint(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: s}
	g.tweens[0] = gween.New(float32(s.Tint.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(s.Tint.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(s.Tint.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(s.Tint.A), float32(to.A), duration, fn)
	g.fields[0] = &s.Tint.R
	g.fields[1] = &s.Tint.G
	g.fields[2] = &s.Tint.B
	g.fields[3] = &s.Tint.A
	return g
}

// TweenAlpha animates only the tint's alpha.
func TweenAlpha(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: s}
	g.tweens[0] = gween.New(float32(s.Tint.A), float32(to), duration, fn)
	g.fields[0] = &s.Tint.A
	return g
}
