package holga

import (
	"errors"
	"testing"
)

func setFrame(tile int, s *Sprite) {
	s.Frame = tile
}

func TestRenderTilesHidesAbsentCells(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 2, 2), Bounds: R(0, 0, 2, 2), CellSize: Pt(10, 10)})
	world := NewTileMapFromRows([][]int{
		{1, NoTile},
		{NoTile, 1},
	})
	cam.Pool().Each(func(_ int, s *Sprite) { s.Visible = true })

	stats, err := RenderTiles(cam, world, setFrame)
	if err != nil {
		t.Fatal(err)
	}
	if stats != (RenderStats{Visited: 4, Drawn: 2, Absent: 2}) {
		t.Errorf("stats = %+v, want 4 visited, 2 drawn, 2 absent", stats)
	}

	tests := []struct {
		index   int
		wx, wy  float64
		visible bool
	}{
		{0, 0, 0, true},
		{1, 1, 0, false},
		{2, 0, 1, false},
		{3, 1, 1, true},
	}
	for _, tt := range tests {
		s, _ := cam.Pool().Get(tt.index)
		if s.Visible != tt.visible {
			t.Errorf("sprite %d visible = %v, want %v", tt.index, s.Visible, tt.visible)
			continue
		}
		if !tt.visible {
			continue
		}
		sx, sy, scale := cam.WorldToScreen(tt.wx, tt.wy)
		if s.X != sx || s.Y != sy || s.Scale != scale {
			t.Errorf("sprite %d at (%v,%v) x%v, want (%v,%v) x%v", tt.index, s.X, s.Y, s.Scale, sx, sy, scale)
		}
		if s.Frame != 1 {
			t.Errorf("sprite %d frame = %d, want 1", tt.index, s.Frame)
		}
	}
}

func TestRenderTilesRowMajorOrder(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 3, 2), Bounds: R(0, 0, 3, 2)})
	world := NewTileMap(3, 2)
	world.Fill(func(x, y int) int { return y*10 + x })

	if _, err := RenderTiles(cam, world, setFrame); err != nil {
		t.Fatal(err)
	}
	want := []int{0, 1, 2, 10, 11, 12}
	for i, f := range want {
		s, _ := cam.Pool().Get(i)
		if s.Frame != f {
			t.Errorf("sprite %d frame = %d, want %d", i, s.Frame, f)
		}
	}
}

func TestRenderTilesOffsetViewport(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 2, 2), Bounds: R(0, 0, 10, 10), CellSize: Pt(16, 16)})
	cam.PanTo(3, 4)
	world := NewTileMap(10, 10)
	world.Fill(func(x, y int) int { return y*10 + x })

	if _, err := RenderTiles(cam, world, setFrame); err != nil {
		t.Fatal(err)
	}
	s, _ := cam.Pool().Get(0)
	if s.Frame != 43 || s.X != 0 || s.Y != 0 {
		t.Errorf("first sprite frame %d at (%v,%v), want 43 at (0,0)", s.Frame, s.X, s.Y)
	}
	s, _ = cam.Pool().Get(3)
	if s.Frame != 54 || s.X != 16 || s.Y != 16 {
		t.Errorf("last sprite frame %d at (%v,%v), want 54 at (16,16)", s.Frame, s.X, s.Y)
	}
}

func TestRenderTilesOutsideGridIsAbsent(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 4, 4), Bounds: R(0, 0, 4, 4)})
	world := NewTileMap(2, 2)
	world.Fill(func(x, y int) int { return 7 })

	stats, err := RenderTiles(cam, world, setFrame)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Visited != 16 || stats.Drawn != 4 || stats.Absent != 12 {
		t.Errorf("stats = %+v, want 16 visited, 4 drawn, 12 absent", stats)
	}
	if cam.Pool().Visible() != 4 {
		t.Errorf("visible sprites = %d, want 4", cam.Pool().Visible())
	}
}

func TestRenderTilesVisitsViewportArea(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 8, 6), Bounds: R(0, 0, 64, 64)})
	world := NewTileMap(64, 64)
	world.Fill(func(x, y int) int { return 1 })

	for _, z := range []int{1, 2, 3, 1} {
		cam.SetZoom(z)
		stats, err := RenderTiles(cam, world, setFrame)
		if err != nil {
			t.Fatal(err)
		}
		if want := int(cam.Viewport().Area()); stats.Visited != want || stats.Drawn != want {
			t.Errorf("zoom %d: stats = %+v, want %d visited and drawn", z, stats, want)
		}
		if cam.Pool().Visible() != stats.Drawn {
			t.Errorf("zoom %d: %d sprites visible, want %d", z, cam.Pool().Visible(), stats.Drawn)
		}
	}
}

func TestRenderTilesAfterShrinkLeavesNoStaleSprites(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 4, 4), Bounds: R(0, 0, 16, 16)})
	world := NewTileMap(16, 16)
	world.Fill(func(x, y int) int { return 1 })

	if _, err := RenderTiles(cam, world, setFrame); err != nil {
		t.Fatal(err)
	}
	if cam.Pool().Visible() != 16 {
		t.Fatalf("visible = %d, want 16", cam.Pool().Visible())
	}
	if err := cam.Resize(R(0, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if _, err := RenderTiles(cam, world, setFrame); err != nil {
		t.Fatal(err)
	}
	if cam.Pool().Visible() != 4 {
		t.Errorf("visible after shrink = %d, want 4", cam.Pool().Visible())
	}
}

func TestRenderTilesInvalidArguments(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 2, 2), Bounds: R(0, 0, 2, 2)})
	world := NewTileMap(2, 2)
	world.Fill(func(x, y int) int { return 1 })

	if _, err := RenderTiles[int](cam, world, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil fn err = %v, want ErrInvalidArgument", err)
	}
	if _, err := RenderTiles[int](cam, nil, setFrame); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil grid err = %v, want ErrInvalidArgument", err)
	}
	if _, err := RenderTiles[int](nil, world, setFrame); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil camera err = %v, want ErrInvalidArgument", err)
	}
	if cam.Pool().Visible() != 0 {
		t.Error("sprites touched by a rejected render")
	}
}

func TestRenderTilesCameraChangedFromCallback(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 4, 4), Bounds: R(0, 0, 32, 32)})
	world := NewTileMap(32, 32)
	world.Fill(func(x, y int) int { return 1 })

	zoomed := false
	stats, err := RenderTiles(cam, world, func(tile int, s *Sprite) {
		if !zoomed {
			zoomed = true
			cam.SetZoom(2)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if stats.Visited != 16 {
		t.Errorf("Visited = %d, want 16", stats.Visited)
	}

	stats, err = RenderTiles(cam, world, setFrame)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Visited != 4 || stats.Drawn != 4 {
		t.Errorf("next pass stats = %+v, want 4 visited and drawn", stats)
	}
}

func TestTileRenderer(t *testing.T) {
	cam := newTestCamera(t, Config{Viewport: R(0, 0, 2, 2), Bounds: R(0, 0, 2, 2)})
	world := NewTileMapFromRows([][]int{{1, 2}, {3}})

	if _, err := NewTileRenderer[int](cam, world, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("NewTileRenderer(nil fn) err = %v, want ErrInvalidArgument", err)
	}

	r, err := NewTileRenderer(cam, Grid[int](world), setFrame)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if got := r.Stats(); got.Drawn != 3 || got.Absent != 1 {
		t.Errorf("Stats = %+v, want 3 drawn, 1 absent", got)
	}

	empty := NewTileMap(2, 2)
	r.SetGrid(empty)
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if got := r.Stats(); got.Drawn != 0 || got.Absent != 4 {
		t.Errorf("Stats after SetGrid = %+v, want 0 drawn, 4 absent", got)
	}
	if cam.Pool().Visible() != 0 {
		t.Errorf("visible = %d, want 0", cam.Pool().Visible())
	}
}

func TestTileMap(t *testing.T) {
	m := NewTileMap(3, 2)
	if w, h := m.Shape(); w != 3 || h != 2 {
		t.Errorf("Shape = %d,%d, want 3,2", w, h)
	}
	if _, ok := m.At(0, 0); ok {
		t.Error("new map cell present")
	}

	m.Set(2, 1, 5)
	if tile, ok := m.At(2, 1); !ok || tile != 5 {
		t.Errorf("At(2,1) = %d,%v, want 5,true", tile, ok)
	}

	// Out-of-range writes are dropped and reads are absent.
	m.Set(3, 0, 9)
	m.Set(-1, 0, 9)
	for _, p := range [][2]int{{3, 0}, {-1, 0}, {0, 2}, {0, -1}} {
		if _, ok := m.At(p[0], p[1]); ok {
			t.Errorf("At(%d,%d) present outside the map", p[0], p[1])
		}
	}

	m.Set(2, 1, NoTile)
	if _, ok := m.At(2, 1); ok {
		t.Error("NoTile cell reported present")
	}
}

func TestNewTileMapFromRowsPads(t *testing.T) {
	m := NewTileMapFromRows([][]int{{1}, {2, 3, 4}})
	if w, h := m.Shape(); w != 3 || h != 2 {
		t.Fatalf("Shape = %d,%d, want 3,2", w, h)
	}
	if _, ok := m.At(1, 0); ok {
		t.Error("padded cell present")
	}
	if tile, ok := m.At(2, 1); !ok || tile != 4 {
		t.Errorf("At(2,1) = %d,%v, want 4,true", tile, ok)
	}
}
