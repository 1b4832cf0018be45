package script

import (
	"fmt"
	"io"

	"CircleBoard/internal/render"
	"CircleBoard/internal/state"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed, color.Bold)
	green  = color.New(color.FgGreen, color.Bold)
	yellow = color.New(color.FgYellow)
	faint  = color.New(color.Faint)
)

// Console is a headless Presenter: raster effects go to a Surface, the
// notification and confirm prompt are printed to Out.
type Console struct {
	Surface *render.Surface
	Out     io.Writer
}

var _ state.Presenter = (*Console)(nil)

func NewConsole(s *render.Surface, out io.Writer) *Console {
	return &Console{Surface: s, Out: out}
}

func (c *Console) PaintDisk(circle state.Circle) { c.Surface.PaintDisk(circle) }

func (c *Console) ClearSurface() { c.Surface.Clear() }

func (c *Console) ResizeSurface(w, h int) {
	c.Surface.Resize(w, h)
	faint.Fprintf(c.Out, "surface %dx%d\n", w, h)
}

func (c *Console) ShowNotification(n state.Notification) {
	p := green
	if n.Color == state.HitNotification.Color {
		p = red
	}
	p.Fprintln(c.Out, n.Text)
}

func (c *Console) HideNotification() {}

func (c *Console) ShowConfirmPrompt(at state.Point) {
	yellow.Fprintf(c.Out, "delete circle at (%s)? confirm/cancel\n", formatPoint(at))
}

func (c *Console) HidePrompt() {}

func formatPoint(p state.Point) string {
	return fmt.Sprintf("%.0f, %.0f", p.X, p.Y)
}
