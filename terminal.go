package holga

import (
	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

// cp437 maps code page 437 bytes to runes, so sheet frame numbers written for
// a cp437 spritesheet draw the same glyphs in a terminal.
var cp437 = []rune(
	" ☺☻♥♦♣♠•◘○◙♂♀♪♫☼►◄↕‼¶§▬↨↑↓→←∟↔▲▼" +
		" !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~⌂" +
		"ÇüéâäàåçêëèïîìÄÅÉæÆôöòûùÿÖÜ¢£¥₧ƒáíóúñÑªº¿⌐¬½¼¡«»" +
		"░▒▓│┤╡╢╖╕╣║╗╝╜╛┐└┴┬├─┼╞╟╚╔╩╦╠═╬╧╨╤╥╙╘╒╓╫╪┘┌█▄▌▐▀" +
		"αßΓπΣσµτΦΘΩδ∞φε∩≡±≥≤⌠⌡÷≈°∙·√ⁿ²■ ",
)

// CP437 returns the glyph for a code page 437 frame number, or '?' outside
// [0, 255].
func CP437(frame int) rune {
	if frame < 0 || frame >= len(cp437) {
		return '?'
	}
	return cp437[frame]
}

// TerminalHost draws sprites into a tcell screen, one terminal cell per world
// cell at scale 1. Sprite pixel positions are divided by the cell size to find
// the terminal cell; a sprite at scale n covers an n x n block.
type TerminalHost struct {
	// OriginX and OriginY offset everything drawn, in terminal cells.
	OriginX, OriginY int
	// Glyph maps Sprite.Frame to a rune. Defaults to CP437.
	Glyph func(frame int) rune
	// Background is the style for cells no sprite covers.
	Background tcell.Style

	screen   tcell.Screen
	cellSize Point
	children []*Sprite
	members  mapset.Set[*Sprite]
	stale    bool // children holds removed sprites awaiting compaction
}

// NewTerminalHost creates a host drawing into screen. cellSize must match the
// camera's cell size.
func NewTerminalHost(screen tcell.Screen, cellSize Point) *TerminalHost {
	if cellSize.X <= 0 || cellSize.Y <= 0 {
		cellSize = DefaultCellSize
	}
	return &TerminalHost{
		Glyph:      CP437,
		Background: tcell.StyleDefault,
		screen:     screen,
		cellSize:   cellSize,
		members:    mapset.New[*Sprite](),
	}
}

// Screen returns the tcell screen drawn into.
func (t *TerminalHost) Screen() tcell.Screen {
	return t.screen
}

// AddChild adds s. Adding a child twice is a no-op. Panics if s is nil.
func (t *TerminalHost) AddChild(s *Sprite) {
	if s == nil {
		panic("holga: cannot add nil sprite")
	}
	if t.members.Has(s) {
		return
	}
	t.compact()
	t.members.Put(s)
	t.children = append(t.children, s)
}

// RemoveChild removes s. Removing a non-child is a no-op.
func (t *TerminalHost) RemoveChild(s *Sprite) {
	if s == nil || !t.members.Has(s) {
		return
	}
	t.members.Remove(s)
	t.stale = true
}

// Len returns the number of children.
func (t *TerminalHost) Len() int {
	return t.members.Size()
}

// Children returns the children in draw order. The returned slice MUST NOT be
// mutated by the caller.
func (t *TerminalHost) Children() []*Sprite {
	t.compact()
	return t.children
}

// compact drops removed sprites from the draw list, keeping order.
func (t *TerminalHost) compact() {
	if !t.stale {
		return
	}
	kept := t.children[:0]
	for _, s := range t.children {
		if t.members.Has(s) {
			kept = append(kept, s)
		}
	}
	for i := len(kept); i < len(t.children); i++ {
		t.children[i] = nil
	}
	t.children = kept
	t.stale = false
}

// Draw clears the screen, draws every visible child and shows the result.
func (t *TerminalHost) Draw() {
	t.screen.Fill(' ', t.Background)
	w, h := t.screen.Size()

	for _, s := range t.Children() {
		if !s.Visible {
			continue
		}
		col := t.OriginX + int(s.X/t.cellSize.X)
		row := t.OriginY + int(s.Y/t.cellSize.Y)
		span := max(1, int(s.Scale))

		r, g, b := s.Tint.rgb8()
		style := t.Background.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		glyph := t.Glyph(s.Frame)

		for dy := 0; dy < span; dy++ {
			y := row + dy
			if y < 0 || y >= h {
				continue
			}
			for dx := 0; dx < span; dx++ {
				x := col + dx
				if x < 0 || x >= w {
					continue
				}
				t.screen.SetContent(x, y, glyph, nil, style)
			}
		}
	}
	t.screen.Show()
}
