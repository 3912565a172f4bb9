// Package holga is a tile camera for [Ebitengine]: it maps a window of a large
// cell grid onto a bounded, zoomable, pannable viewport and draws only the
// visible cells through a pool of reusable sprites.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop around a [View]:
//
//	cam, err := holga.NewCamera(holga.Config{
//		Viewport: holga.R(0, 0, 64, 48),
//		Bounds:   holga.R(0, 0, 4096, 4096),
//	})
//	// handle err
//	world := holga.NewTileMap(4096, 4096)
//	// ... fill the world ...
//	tiles, _ := holga.NewTileRenderer(cam, world, func(tile int, s *holga.Sprite) {
//		s.Frame = tile
//	})
//
//	layer := holga.NewLayer("world")
//	layer.Sheet = sheet
//	view := holga.NewView(cam, layer)
//	view.Renderer = tiles
//	view.Controller = holga.NewController(cam)
//	holga.Run(view, holga.RunConfig{Title: "World", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [TileRenderer.Render] from Update and [Layer.Draw] from Draw.
//
// # Camera
//
// The viewport is measured in cells and always snapped to whole cells. Zoom is
// exponential, scale = 2^(zoom-1): zooming in shrinks the viewport about its
// centre, zooming out grows it back towards the unzoomed footprint
// ([Camera.MaxViewport]). The viewport is clamped to the world bounds by
// translation after every pan, zoom and resize.
//
// # Hosts
//
// Sprites are drawn by a [Host]. [Layer] draws them with Ebitengine using
// frames from a [Sheet]; [TerminalHost] draws them into a tcell screen as code
// page 437 glyphs. Any type with AddChild and RemoveChild works.
//
// [Ebitengine]: https://ebitengine.org
package holga
