package holga

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// warnf writes a non-fatal configuration warning to the camera's log.
func (c *Camera) warnf(format string, args ...any) {
	if c.log == nil {
		return
	}
	_, _ = fmt.Fprintf(c.log, "[holga] %s %s\n", color.Yellow.Sprint("warning:"), fmt.Sprintf(format, args...))
}

// DebugString summarises camera and pool state on a few lines.
func DebugString(c *Camera, stats RenderStats) string {
	vp := c.Viewport()
	return fmt.Sprintf(
		"zoom: %d (x%g) | viewport: %v %gx%g\npool: %d sprites, %d visible\ncells: %d visited, %d drawn, %d absent",
		c.Zoom(), c.Scale(), vp, vp.Width(), vp.Height(),
		c.Pool().Len(), c.Pool().Visible(),
		stats.Visited, stats.Drawn, stats.Absent,
	)
}

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// DrawDebug prints DebugString plus the current FPS onto dst at (x, y) over a
// translucent backdrop.
func DrawDebug(dst *ebiten.Image, x, y float64, c *Camera, stats RenderStats) {
	msg := fmt.Sprintf("FPS: %.1f\n%s", ebiten.ActualFPS(), DebugString(c, stats))

	w, h := text.Measure(msg, debugFace, debugLineHeight)
	vector.DrawFilledRect(dst, float32(x-4), float32(y-4), float32(w+8), float32(h+8), Color{0, 0, 0, 0.5}.toRGBA(), false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = debugLineHeight
	text.Draw(dst, msg, debugFace, op)
}

const debugLineHeight = 15
