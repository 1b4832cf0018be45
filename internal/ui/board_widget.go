package ui

import (
	"image"
	"image/color"

	"CircleBoard/internal/render"
	"CircleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget shows the backing raster at half its pixel size and forwards
// primary-button presses to the Editor.
type BoardWidget struct {
	widget.BaseWidget
	surface *render.Surface
	editor  *state.Editor
	raster  *canvas.Raster
	display fyne.Size
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(s *render.Surface) *BoardWidget {
	b := &BoardWidget{surface: s, display: fyne.NewSize(300, state.CanvasHeight)}
	b.raster = canvas.NewRaster(func(w, h int) image.Image {
		return b.surface.Snapshot()
	})
	b.ExtendBaseWidget(b)
	return b
}

// Attach connects the widget to the editor it drives.
func (b *BoardWidget) Attach(e *state.Editor) {
	b.editor = e
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || b.editor == nil {
		return
	}
	b.editor.SetOrigin(toPoint(e.AbsolutePosition.Subtract(e.Position)))
	b.editor.PointerDown(toPoint(e.AbsolutePosition))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || b.editor == nil {
		return
	}
	b.editor.SetOrigin(toPoint(e.AbsolutePosition.Subtract(e.Position)))
	b.editor.PointerUp(toPoint(e.AbsolutePosition))
}

// SetBackingSize sizes the widget for a backing raster of w x h pixels.
func (b *BoardWidget) SetBackingSize(w, h int) {
	b.display = fyne.NewSize(float32(w)/state.DeviceScale, float32(h)/state.DeviceScale)
	b.Refresh()
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.NRGBA{R: 245, G: 246, B: 248, A: 255})
	return &boardWidgetRenderer{board: b, background: bg}
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.raster.Move(fyne.NewPos(0, 0))
	r.board.raster.Resize(r.board.display)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.display
}

func (r *boardWidgetRenderer) Refresh() {
	r.Layout(r.board.Size())
	r.board.raster.Refresh()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}
