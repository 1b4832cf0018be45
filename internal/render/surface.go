// Package render holds the backing raster that circles are painted onto.
package render

import (
	"image"
	"image/color"
	"io"
	"log"
	"sync"

	"CircleBoard/internal/state"

	"github.com/fogleman/gg"
)

// Surface is a gg-backed raster at backing resolution. It is safe for use
// from the editor and from a UI thread reading frames.
type Surface struct {
	mu sync.RWMutex
	dc *gg.Context
}

func NewSurface(width, height int) *Surface {
	return &Surface{dc: newContext(width, height)}
}

func newContext(width, height int) *gg.Context {
	// gg cannot allocate an empty image
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return gg.NewContext(width, height)
}

func (s *Surface) Bounds() image.Rectangle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dc.Image().Bounds()
}

func (s *Surface) PaintDisk(c state.Circle) {
	col, err := state.ParseColor(c.Color)
	if err != nil {
		log.Printf("[RENDER] Painting circle %s black: %v", c.ID, err)
		col = color.NRGBA{A: 0xff}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc.DrawCircle(c.X, c.Y, c.Radius)
	s.dc.SetColor(col)
	s.dc.Fill()
}

func (s *Surface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc.SetColor(color.Transparent)
	s.dc.Clear()
}

// Resize replaces the backing store, discarding everything painted.
func (s *Surface) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dc = newContext(width, height)
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.dc.Image().(*image.RGBA)
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// At reports the pixel at backing coordinates.
func (s *Surface) At(x, y int) color.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dc.Image().At(x, y)
}

func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dc.EncodePNG(w)
}
