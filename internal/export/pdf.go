package export

import (
	"fmt"
	"io"
	"log"
	"math"

	"CircleBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const pageMargin = 10.0 // mm

// WritePDF renders the circles onto a single A4 landscape page, scaling the
// backing canvas (width x height units) to fit inside the margins.
func WritePDF(w io.Writer, circles []state.Circle, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %.0fx%.0f", width, height)
	}

	p := gofpdf.New("L", "mm", "A4", "")
	p.SetTitle("CircleBoard", true)
	p.AddPage()

	pw, ph := p.GetPageSize()
	scale := math.Min((pw-2*pageMargin)/width, (ph-2*pageMargin-6)/height)
	ox, oy := pageMargin, pageMargin+6

	p.SetFont("Helvetica", "", 9)
	p.Text(pageMargin, pageMargin+2, fmt.Sprintf("CircleBoard - %d circles", len(circles)))

	p.SetDrawColor(200, 200, 200)
	p.SetLineWidth(0.2)
	p.ClipRect(ox, oy, width*scale, height*scale, true)
	for _, c := range circles {
		col, err := state.ParseColor(c.Color)
		if err != nil {
			log.Printf("[EXPORT] Circle %s: %v", c.ID, err)
		}
		p.SetFillColor(int(col.R), int(col.G), int(col.B))
		p.Circle(ox+c.X*scale, oy+c.Y*scale, c.Radius*scale, "F")
	}
	p.ClipEnd()

	if err := p.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
