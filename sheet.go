package holga

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sheet slices a spritesheet into equally sized frames, numbered row by row
// from the top-left. Frame n of a 16x16 code page 437 sheet is the glyph for
// byte n.
type Sheet struct {
	// Image is the whole sheet.
	Image *ebiten.Image

	cellW, cellH int
	frames       []*ebiten.Image
	placeholder  *ebiten.Image
}

// NewSheet slices img into cellW x cellH frames. Partial cells at the right
// and bottom edges are ignored.
func NewSheet(img *ebiten.Image, cellW, cellH int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: sheet image is nil", ErrInvalidArgument)
	}
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("%w: sheet cell size %dx%d must be positive", ErrInvalidArgument, cellW, cellH)
	}
	b := img.Bounds()
	cols, rows := b.Dx()/cellW, b.Dy()/cellH
	if cols == 0 || rows == 0 {
		return nil, fmt.Errorf("%w: sheet %dx%d is smaller than one %dx%d cell",
			ErrInvalidArgument, b.Dx(), b.Dy(), cellW, cellH)
	}

	sh := &Sheet{
		Image:  img,
		cellW:  cellW,
		cellH:  cellH,
		frames: make([]*ebiten.Image, 0, cols*rows),
	}
	for v := 0; v < rows; v++ {
		for u := 0; u < cols; u++ {
			x, y := b.Min.X+u*cellW, b.Min.Y+v*cellH
			sh.frames = append(sh.frames, img.SubImage(image.Rect(x, y, x+cellW, y+cellH)).(*ebiten.Image))
		}
	}
	return sh, nil
}

// NewSheetFromImage uploads src and slices it.
func NewSheetFromImage(src image.Image, cellW, cellH int) (*Sheet, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: sheet image is nil", ErrInvalidArgument)
	}
	return NewSheet(ebiten.NewImageFromImage(src), cellW, cellH)
}

// LoadSheet decodes a PNG (or any registered image format) from r and
// slices it.
func LoadSheet(r io.Reader, cellW, cellH int) (*Sheet, error) {
	img, _, err := ebitenutil.NewImageFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("holga: failed to decode sheet: %w", err)
	}
	return NewSheet(img, cellW, cellH)
}

// Len returns the number of frames.
func (sh *Sheet) Len() int {
	return len(sh.frames)
}

// CellSize returns the frame size in pixels.
func (sh *Sheet) CellSize() (w, h int) {
	return sh.cellW, sh.cellH
}

// Frame returns frame i, or a magenta placeholder of the same size when i is
// out of range.
func (sh *Sheet) Frame(i int) *ebiten.Image {
	if i >= 0 && i < len(sh.frames) {
		return sh.frames[i]
	}
	if sh.placeholder == nil {
		sh.placeholder = ebiten.NewImage(sh.cellW, sh.cellH)
		sh.placeholder.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return sh.placeholder
}
