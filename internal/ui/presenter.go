package ui

import (
	"CircleBoard/internal/render"
	"CircleBoard/internal/state"

	"fyne.io/fyne/v2"
)

// presenter applies editor effects to the fyne widgets. The editor may call
// it from a timer goroutine, so every widget change goes through fyne.Do.
type presenter struct {
	surface *render.Surface
	board   *BoardWidget
	notify  *notifyBadge
	prompt  *confirmPrompt
}

var _ state.Presenter = (*presenter)(nil)

func (p *presenter) PaintDisk(c state.Circle) {
	p.surface.PaintDisk(c)
	fyne.Do(p.board.Refresh)
}

func (p *presenter) ClearSurface() {
	p.surface.Clear()
	fyne.Do(p.board.Refresh)
}

func (p *presenter) ResizeSurface(w, h int) {
	p.surface.Resize(w, h)
	fyne.Do(func() { p.board.SetBackingSize(w, h) })
}

func (p *presenter) ShowNotification(n state.Notification) {
	fyne.Do(func() { p.notify.Set(n) })
}

func (p *presenter) HideNotification() {
	fyne.Do(p.notify.Hide)
}

func (p *presenter) ShowConfirmPrompt(at state.Point) {
	pos := fyne.NewPos(float32(at.X), float32(at.Y))
	fyne.Do(func() { p.prompt.ShowAt(pos) })
}

func (p *presenter) HidePrompt() {
	fyne.Do(p.prompt.Hide)
}
