package holga

import "fmt"

// Grid is a read-only 2D world of cells. At reports false for "no cell".
type Grid[T any] interface {
	Shape() (w, h int)
	At(x, y int) (T, bool)
}

// CellFunc assigns the visual payload (Frame, Tint) of a sprite that the
// camera has already positioned for cell.
type CellFunc[T any] func(cell T, s *Sprite)

// RenderStats counts what a render pass did.
type RenderStats struct {
	Visited int // cells walked, always the viewport area
	Drawn   int // present and inside the viewport
	Culled  int // present but hidden by the camera
	Absent  int // no cell at that position
}

// RenderTiles draws the visible part of grid through cam's sprite pool.
//
// Cells are walked row by row across the viewport and each one takes the next
// pool sprite by a running linear index, so the pool is consumed in allocation
// order. Present cells are positioned by the camera and handed to fn; absent
// cells hide their sprite. Every viewport cell consumes one sprite, which hides
// sprites left over from a larger previous viewport.
//
// The viewport is read once at the start, so camera changes made from fn take
// effect on the next pass.
func RenderTiles[T any](cam *Camera, grid Grid[T], fn CellFunc[T]) (RenderStats, error) {
	var stats RenderStats
	if cam == nil {
		return stats, fmt.Errorf("%w: render tiles without a camera", ErrInvalidArgument)
	}
	if grid == nil {
		return stats, fmt.Errorf("%w: render tiles without a grid", ErrInvalidArgument)
	}
	if fn == nil {
		return stats, fmt.Errorf("%w: render tiles without a cell func", ErrInvalidArgument)
	}

	vp := cam.Viewport()
	pool := cam.Pool()
	gw, gh := grid.Shape()
	x1, y1 := int(vp.X1), int(vp.Y1)
	x2, y2 := int(vp.X2), int(vp.Y2)

	i := 0
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			s, err := pool.Get(i)
			if err != nil {
				return stats, err
			}
			i++
			stats.Visited++

			var cell T
			ok := false
			if x >= 0 && y >= 0 && x < gw && y < gh {
				cell, ok = grid.At(x, y)
			}
			if !ok {
				s.Visible = false
				stats.Absent++
				continue
			}

			cam.TranslateSprite(s, float64(x), float64(y))
			if !s.Visible {
				stats.Culled++
				continue
			}
			fn(cell, s)
			stats.Drawn++
		}
	}
	return stats, nil
}

// TileRenderer binds a camera, a grid and a cell func for per-frame use.
type TileRenderer[T any] struct {
	cam   *Camera
	grid  Grid[T]
	fn    CellFunc[T]
	stats RenderStats
}

// NewTileRenderer validates its arguments up front so a bad setup fails at
// construction rather than on the first frame.
func NewTileRenderer[T any](cam *Camera, grid Grid[T], fn CellFunc[T]) (*TileRenderer[T], error) {
	if cam == nil || grid == nil || fn == nil {
		return nil, fmt.Errorf("%w: tile renderer needs a camera, a grid and a cell func", ErrInvalidArgument)
	}
	return &TileRenderer[T]{cam: cam, grid: grid, fn: fn}, nil
}

// Render runs one pass. Call it once per frame.
func (r *TileRenderer[T]) Render() error {
	stats, err := RenderTiles(r.cam, r.grid, r.fn)
	r.stats = stats
	return err
}

// SetGrid swaps the world being drawn.
func (r *TileRenderer[T]) SetGrid(grid Grid[T]) {
	r.grid = grid
}

// Stats returns the counts from the last Render.
func (r *TileRenderer[T]) Stats() RenderStats {
	return r.stats
}

// NoTile marks an empty cell in a TileMap.
const NoTile = -1

// TileMap is a row-major grid of tile numbers. Cells holding NoTile are
// absent.
type TileMap struct {
	width, height int
	data          []int
}

// NewTileMap creates a w x h map with every cell set to NoTile.
func NewTileMap(w, h int) *TileMap {
	m := &TileMap{width: w, height: h, data: make([]int, w*h)}
	for i := range m.data {
		m.data[i] = NoTile
	}
	return m
}

// NewTileMapFromRows builds a map from rows of tile numbers. Rows shorter than
// the longest row are padded with NoTile.
func NewTileMapFromRows(rows [][]int) *TileMap {
	w := 0
	for _, row := range rows {
		w = max(w, len(row))
	}
	m := NewTileMap(w, len(rows))
	for y, row := range rows {
		copy(m.data[y*w:], row)
	}
	return m
}

// Shape returns the map dimensions.
func (m *TileMap) Shape() (w, h int) {
	return m.width, m.height
}

// At returns the tile at (x, y). ok is false outside the map or for NoTile.
func (m *TileMap) At(x, y int) (tile int, ok bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return NoTile, false
	}
	tile = m.data[y*m.width+x]
	return tile, tile != NoTile
}

// Set writes a tile. Out-of-range writes are ignored.
func (m *TileMap) Set(x, y, tile int) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return
	}
	m.data[y*m.width+x] = tile
}

// Fill sets every cell to fn(x, y).
func (m *TileMap) Fill(fn func(x, y int) int) {
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x := range row {
			row[x] = fn(x, y)
		}
	}
}
