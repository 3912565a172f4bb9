package holga

import (
	"fmt"
	"io"
	"math"
	"os"
)

// Defaults applied to zero-valued Config fields.
var (
	DefaultViewport  = R(0, 0, 16, 16)
	DefaultBounds    = R(0, 0, 16, 16)
	DefaultZoomRange = [2]int{1, 4}
	DefaultCellSize  = Pt(10, 10)
)

// Config describes a Camera. Every field is optional; zero values take the
// package defaults.
type Config struct {
	// Viewport is the initial window into the world, in cells.
	Viewport Rect
	// Bounds is the world extent the viewport is clamped to, in cells.
	Bounds Rect
	// ZoomRange is the closed [min, max] range of zoom levels.
	ZoomRange [2]int
	// CellSize is the size of one cell in pixels at scale 1.
	CellSize Point
	// Zoom, when non-zero, is applied with SetZoom after construction.
	Zoom int

	// Pool supplies the sprites. When nil a pool sized for the unzoomed
	// viewport is created.
	Pool *Pool
	// Host, when non-nil, receives the pool's sprites.
	Host Host

	// Log receives configuration warnings. Defaults to os.Stderr.
	Log io.Writer
}

// Camera maps a rectangular window of a cell grid onto the screen. It owns the
// viewport, the zoom level and the sprite pool used to draw visible cells.
//
// Zoom is exponential: scale = 2^(zoom-1). Zooming in shrinks the viewport
// about its centre, zooming out grows it, and the pool grows whenever the
// viewport holds more cells than there are sprites. Pan and zoom snap; there
// is no easing.
type Camera struct {
	viewport    Rect
	maxViewport Rect
	bounds      Rect

	zoom      int
	zoomRange [2]int
	scale     float64
	cellSize  Point

	pool *Pool
	log  io.Writer
}

// NewCamera creates a camera from cfg. It returns an error wrapping
// ErrInvalidArgument if a rect is inverted, the zoom range is reversed or
// does not start at 1, or the cell size is not positive.
func NewCamera(cfg Config) (*Camera, error) {
	if cfg.Viewport == (Rect{}) {
		cfg.Viewport = DefaultViewport
	}
	if cfg.Bounds == (Rect{}) {
		cfg.Bounds = DefaultBounds
	}
	if cfg.ZoomRange == [2]int{} {
		cfg.ZoomRange = DefaultZoomRange
	}
	if cfg.CellSize == (Point{}) {
		cfg.CellSize = DefaultCellSize
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}

	if !cfg.Viewport.Valid() {
		return nil, fmt.Errorf("%w: viewport %v is inverted", ErrInvalidArgument, cfg.Viewport)
	}
	if !cfg.Bounds.Valid() {
		return nil, fmt.Errorf("%w: bounds %v is inverted", ErrInvalidArgument, cfg.Bounds)
	}
	if cfg.ZoomRange[0] > cfg.ZoomRange[1] {
		return nil, fmt.Errorf("%w: zoom range [%d, %d] is reversed", ErrInvalidArgument, cfg.ZoomRange[0], cfg.ZoomRange[1])
	}
	// The camera starts at zoom 1, and the max viewport is the footprint at the
	// lowest zoom, so the range must start there.
	if cfg.ZoomRange[0] != 1 {
		return nil, fmt.Errorf("%w: zoom range [%d, %d] must start at 1", ErrInvalidArgument, cfg.ZoomRange[0], cfg.ZoomRange[1])
	}
	if cfg.CellSize.X <= 0 || cfg.CellSize.Y <= 0 {
		return nil, fmt.Errorf("%w: cell size %v must be positive", ErrInvalidArgument, cfg.CellSize)
	}

	c := &Camera{
		viewport:  cfg.Viewport.Snap(),
		bounds:    cfg.Bounds,
		zoom:      1,
		zoomRange: cfg.ZoomRange,
		cellSize:  cfg.CellSize,
		log:       cfg.Log,
	}
	c.scale = zoomScale(c.zoom)
	c.CheckViewportBounds()
	c.maxViewport = c.viewport.Scale(c.scale)

	c.pool = cfg.Pool
	if c.pool == nil {
		c.pool = NewPool(int(c.maxViewport.Area()), cfg.Host)
	} else if cfg.Host != nil {
		c.pool.Attach(cfg.Host)
	}
	c.ensureCapacity()

	if cfg.Zoom != 0 {
		c.SetZoom(cfg.Zoom)
	}
	return c, nil
}

// zoomScale converts a zoom level to a draw scale.
func zoomScale(zoom int) float64 {
	return math.Ldexp(1, zoom-1)
}

// Viewport returns the visible window, in cells.
func (c *Camera) Viewport() Rect { return c.viewport }

// MaxViewport returns the viewport footprint at scale 1.
func (c *Camera) MaxViewport() Rect { return c.maxViewport }

// Bounds returns the world extent the viewport is clamped to.
func (c *Camera) Bounds() Rect { return c.bounds }

// Zoom returns the current zoom level.
func (c *Camera) Zoom() int { return c.zoom }

// ZoomRange returns the configured [min, max] zoom levels.
func (c *Camera) ZoomRange() [2]int { return c.zoomRange }

// Scale returns the draw scale for the current zoom level.
func (c *Camera) Scale() float64 { return c.scale }

// CellSize returns the pixel size of one cell at scale 1.
func (c *Camera) CellSize() Point { return c.cellSize }

// Pool returns the camera's sprite pool.
func (c *Camera) Pool() *Pool { return c.pool }

// Attach hands the pool's sprites to host.
func (c *Camera) Attach(host Host) {
	c.pool.Attach(host)
}

// ScreenBounds returns the pixel size of the area the viewport draws into.
func (c *Camera) ScreenBounds() Point {
	return Point{
		X: c.viewport.Width() * c.scale * c.cellSize.X,
		Y: c.viewport.Height() * c.scale * c.cellSize.Y,
	}
}

// SetBounds replaces the world extent and re-clamps the viewport.
func (c *Camera) SetBounds(bounds Rect) error {
	if !bounds.Valid() {
		return fmt.Errorf("%w: bounds %v is inverted", ErrInvalidArgument, bounds)
	}
	c.bounds = bounds
	c.CheckViewportBounds()
	return nil
}

// Resize installs r as the unzoomed viewport. At scale 1 it becomes both the
// viewport and the max viewport. While zoomed the camera drops to zoom 1,
// installs r, recomputes the max viewport and zooms back, so resizing with the
// current unzoomed footprint leaves the viewport dimensions unchanged.
func (c *Camera) Resize(r Rect) error {
	if !r.Valid() {
		return fmt.Errorf("%w: viewport %v is inverted", ErrInvalidArgument, r)
	}
	if c.scale == 1 {
		c.setViewport(r)
		c.maxViewport = c.viewport
		return nil
	}

	c.warnf("resizing while zoomed (zoom %d) can give unexpected viewport dimensions", c.zoom)

	cached := c.zoom
	c.SetZoom(1)
	c.setViewport(r)
	c.maxViewport = c.viewport.Scale(c.scale)
	c.SetZoom(cached)
	return nil
}

// setViewport installs r, clamps it to the bounds, grows the pool to cover it
// and hides every sprite so nothing lingers where the viewport used to be.
// The next render pass re-shows what is still visible.
//
// TODO: release spare sprites when the viewport shrinks; the pool only grows.
func (c *Camera) setViewport(r Rect) {
	c.viewport = r.Snap()
	c.CheckViewportBounds()
	c.ensureCapacity()
	c.pool.HideAll()
}

func (c *Camera) ensureCapacity() {
	need := int(c.viewport.Area())
	if deficit := need - c.pool.Len(); deficit > 0 {
		c.pool.Grow(deficit)
	}
}

// SetZoom changes the zoom level, clamped to the zoom range. The viewport is
// resized about its centre to the max viewport scaled by 1/scale.
func (c *Camera) SetZoom(zoom int) {
	if zoom == c.zoom {
		return
	}
	c.zoom = clampInt(zoom, c.zoomRange[0], c.zoomRange[1])
	c.scale = zoomScale(c.zoom)

	// Scale keeps the first corner, so anchor the footprint at the origin;
	// otherwise a max viewport away from the origin scales to the wrong size.
	desired := R(0, 0, c.maxViewport.Width(), c.maxViewport.Height()).Scale(1 / c.scale)
	diffX := c.viewport.Width() - desired.Width()
	diffY := c.viewport.Height() - desired.Height()
	c.setViewport(c.viewport.Constrict(diffX*0.5, diffY*0.5))
}

// ApplyZoom changes the zoom level by delta.
func (c *Camera) ApplyZoom(delta int) {
	c.SetZoom(c.zoom + delta)
}

// CheckViewportBounds translates the viewport so its first corner is not
// negative and its second corner does not pass the bounds. Dimensions are
// preserved. Each axis is corrected independently in a single pass.
func (c *Camera) CheckViewportBounds() {
	vp := c.viewport
	if vp.X1 < 0 {
		vp = vp.Translate(-vp.X1, 0)
	}
	if vp.Y1 < 0 {
		vp = vp.Translate(0, -vp.Y1)
	}
	if vp.X2 > c.bounds.X2 {
		vp = vp.Translate(-(vp.X2 - c.bounds.X2), 0)
	}
	if vp.Y2 > c.bounds.Y2 {
		vp = vp.Translate(0, -(vp.Y2 - c.bounds.Y2))
	}
	c.viewport = vp
}

// Pan moves the viewport by (dx, dy) cells, then clamps it. Fractional moves
// round to the nearest whole cell, halves away from zero, so +0.5 and -0.5
// both move one cell.
func (c *Camera) Pan(dx, dy float64) {
	c.viewport = c.viewport.Translate(math.Round(dx), math.Round(dy)).Snap()
	c.CheckViewportBounds()
}

// PanBy moves the viewport by d cells, then clamps it.
func (c *Camera) PanBy(d Point) {
	c.Pan(d.X, d.Y)
}

// PanTo moves the viewport so its first corner sits at (x, y), then clamps it.
func (c *Camera) PanTo(x, y float64) {
	c.Pan(x-c.viewport.X1, y-c.viewport.Y1)
}

// PanToPoint moves the viewport so its first corner sits at p, then clamps it.
func (c *Camera) PanToPoint(p Point) {
	c.PanTo(p.X, p.Y)
}

// IsCulled reports whether the world point p lies outside the viewport.
// The viewport is half-open: its second corner is outside.
func (c *Camera) IsCulled(p Point) bool {
	return !c.viewport.Contains(p)
}

// WorldToScreen converts a world cell coordinate to a pixel position relative
// to the viewport origin, and returns the scale to draw at.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy, scale float64) {
	sx = (wx - c.viewport.X1) * c.cellSize.X * c.scale
	sy = (wy - c.viewport.Y1) * c.cellSize.Y * c.scale
	return sx, sy, c.scale
}

// ScreenToWorld converts a pixel position relative to the viewport origin to
// the world cell containing it.
func (c *Camera) ScreenToWorld(sx, sy float64) Point {
	return Point{
		X: sx/(c.cellSize.X*c.scale) + c.viewport.X1,
		Y: sy/(c.cellSize.Y*c.scale) + c.viewport.Y1,
	}.Floor()
}

// TranslateSprite places s at the screen position of world cell (wx, wy).
// A culled sprite is hidden and keeps its last position.
func (c *Camera) TranslateSprite(s *Sprite, wx, wy float64) {
	if c.IsCulled(Point{X: wx, Y: wy}) {
		s.Visible = false
		return
	}
	s.Visible = true
	s.X, s.Y, s.Scale = c.WorldToScreen(wx, wy)
}
