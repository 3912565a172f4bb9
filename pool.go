package holga

import "fmt"

// Pool is an ordered, growable set of hidden-by-default sprites. Renderers
// walk it by linear index, so the lowest indices stay stable: Grow appends
// and Shrink frees from the tail.
type Pool struct {
	sprites []*Sprite
	host    Host
}

// NewPool allocates length hidden sprites. If host is non-nil they are
// attached to it straight away.
func NewPool(length int, host Host) *Pool {
	p := &Pool{host: host}
	if length > 0 {
		p.Grow(length)
	}
	return p
}

// Len returns the number of sprites in the pool.
func (p *Pool) Len() int {
	return len(p.sprites)
}

// Host returns the host new sprites are attached to, or nil.
func (p *Pool) Host() Host {
	return p.host
}

// Get returns the sprite at index i.
func (p *Pool) Get(i int) (*Sprite, error) {
	if i < 0 || i >= len(p.sprites) {
		return nil, fmt.Errorf("%w: pool index %d not in [0, %d)", ErrIndexOutOfRange, i, len(p.sprites))
	}
	return p.sprites[i], nil
}

// Attach adds every sprite to host and makes it the host for future growth.
// Sprites already attached to host are left alone; sprites attached to a
// different host are moved.
func (p *Pool) Attach(host Host) {
	if host == nil {
		return
	}
	p.host = host
	for _, s := range p.sprites {
		s.attachTo(host)
	}
}

// Detach removes every sprite from host. Sprites not attached to host are
// skipped. If host is the pool's current host it is forgotten.
func (p *Pool) Detach(host Host) {
	if host == nil {
		return
	}
	for i := len(p.sprites) - 1; i >= 0; i-- {
		p.sprites[i].detachFrom(host)
	}
	if p.host == host {
		p.host = nil
	}
}

// Grow appends n hidden sprites, attaches them to the pool's host if one is
// set, and returns them.
func (p *Pool) Grow(n int) []*Sprite {
	if n <= 0 {
		return nil
	}
	fresh := make([]*Sprite, n)
	for i := range fresh {
		fresh[i] = NewSprite()
	}
	p.sprites = append(p.sprites, fresh...)
	if p.host != nil {
		for _, s := range fresh {
			s.attachTo(p.host)
		}
	}
	return fresh
}

// Shrink removes the last n sprites, detaches them from their host, disposes
// them and returns them. n is clamped to [0, Len()].
func (p *Pool) Shrink(n int) []*Sprite {
	n = clampInt(n, 0, len(p.sprites))
	if n == 0 {
		return nil
	}
	start := len(p.sprites) - n
	freed := make([]*Sprite, n)
	copy(freed, p.sprites[start:])
	for i := range p.sprites[start:] {
		p.sprites[start+i] = nil
	}
	p.sprites = p.sprites[:start]

	for i := len(freed) - 1; i >= 0; i-- {
		// Dispose detaches first, so no host keeps a reference.
		freed[i].Dispose()
	}
	return freed
}

// Each calls fn for every sprite in index order.
func (p *Pool) Each(fn func(i int, s *Sprite)) {
	for i, s := range p.sprites {
		fn(i, s)
	}
}

// HideAll marks every sprite invisible.
func (p *Pool) HideAll() {
	for _, s := range p.sprites {
		s.Visible = false
	}
}

// Visible counts the sprites currently marked visible.
func (p *Pool) Visible() int {
	n := 0
	for _, s := range p.sprites {
		if s.Visible {
			n++
		}
	}
	return n
}
