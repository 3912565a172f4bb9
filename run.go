package holga

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before the layer draws.
	Background Color
	// ShowDebug draws the camera overlay in the top-left corner.
	ShowDebug bool
	// Resizable lets the user resize the window. The layer is re-centred on
	// every size change.
	Resizable bool
}

// Renderer is a per-frame render pass, such as a TileRenderer.
type Renderer interface {
	Render() error
	Stats() RenderStats
}

// View ties a camera to the Ebitengine loop: each tick it steps the script,
// reads input, runs the update hook and renders; each frame it draws the
// layer. Only Camera and Layer are required.
type View struct {
	Camera     *Camera
	Layer      *Layer
	Renderer   Renderer
	Controller *Controller
	Script     *ScriptRunner

	// Overlays are drawn after Layer, at its position and zoom. Put sprites
	// that must stay above the tiles here, such as a player marker.
	Overlays []*Layer

	// OnUpdate runs after input, before rendering.
	OnUpdate func() error
	// OnDraw runs after the layers, before the debug overlay.
	OnDraw func(screen *ebiten.Image)
	// OnResize runs when the outside size changes. Defaults to centring the
	// layer on the screen.
	OnResize func(w, h int)

	background Color
	debug      bool
	w, h       int
}

// NewView creates a view over cam drawing into layer. The camera's sprites
// are attached to the layer.
func NewView(cam *Camera, layer *Layer) *View {
	cam.Attach(layer)
	return &View{Camera: cam, Layer: layer}
}

// Update implements ebiten.Game.
func (v *View) Update() error {
	if v.Script != nil && !v.Script.Done() {
		if err := v.Script.Step(v.Camera); err != nil {
			return err
		}
	}
	if v.Controller != nil {
		v.Controller.Update()
	}
	if v.OnUpdate != nil {
		if err := v.OnUpdate(); err != nil {
			return err
		}
	}
	if v.Renderer != nil {
		if err := v.Renderer.Render(); err != nil {
			return fmt.Errorf("holga: render: %w", err)
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (v *View) Draw(screen *ebiten.Image) {
	screen.Fill(v.background.toRGBA())
	v.Layer.Draw(screen)
	for _, o := range v.Overlays {
		o.X, o.Y, o.Zoom = v.Layer.X, v.Layer.Y, v.Layer.Zoom
		o.Draw(screen)
	}
	if v.OnDraw != nil {
		v.OnDraw(screen)
	}
	if v.debug {
		var stats RenderStats
		if v.Renderer != nil {
			stats = v.Renderer.Stats()
		}
		DrawDebug(screen, 8, 8, v.Camera, stats)
	}
}

// Layout implements ebiten.Game. The screen matches the window size.
func (v *View) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != v.w || outsideHeight != v.h {
		v.w, v.h = outsideWidth, outsideHeight
		v.resized()
	}
	return outsideWidth, outsideHeight
}

func (v *View) resized() {
	if v.OnResize != nil {
		v.OnResize(v.w, v.h)
		return
	}
	v.Centre()
}

// Centre positions the layer so the unzoomed viewport sits in the middle of
// the screen.
func (v *View) Centre() {
	cs := v.Camera.CellSize()
	mv := v.Camera.MaxViewport()
	v.Layer.Centre(v.w, v.h, Pt(mv.Width()*cs.X, mv.Height()*cs.Y))
}

// Run opens a window and runs v until the window closes or an update fails.
func Run(v *View, cfg RunConfig) error {
	if v == nil || v.Camera == nil || v.Layer == nil {
		return fmt.Errorf("%w: run needs a view with a camera and a layer", ErrInvalidArgument)
	}
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	if cfg.Background == (Color{}) {
		cfg.Background = Color{0, 0, 0, 1}
	}
	v.background = cfg.Background
	v.debug = cfg.ShowDebug

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(v)
}
