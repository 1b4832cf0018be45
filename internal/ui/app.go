package ui

import (
	"fmt"

	"CircleBoard/internal/render"
	"CircleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Board wires the editor to a fyne window.
type Board struct {
	Window    fyne.Window
	Editor    *state.Editor
	Surface   *render.Surface
	Widget    *BoardWidget
	statusBar *widget.Label
	presenter *presenter
}

// NewBoard builds the window content for w. The surface has no size until
// Load is called.
func NewBoard(w fyne.Window, cfg state.Config) *Board {
	b := &Board{
		Window:    w,
		Surface:   render.NewSurface(1, 1),
		statusBar: widget.NewLabel("Ready"),
	}
	b.Widget = NewBoardWidget(b.Surface)
	b.presenter = &presenter{surface: b.Surface, board: b.Widget}
	b.Editor = state.NewEditor(cfg, b.presenter)
	b.Widget.Attach(b.Editor)

	b.presenter.notify = newNotifyBadge(b.Editor.Dismiss)
	b.presenter.prompt = newConfirmPrompt(w.Canvas(), b.Editor.Confirm, b.Editor.Cancel)

	b.Editor.OnChange = func(circles []state.Circle) {
		text := fmt.Sprintf("Circles: %d", len(circles))
		fyne.Do(func() { b.statusBar.SetText(text) })
	}

	toolbar := NewToolbar(b)
	bottom := container.NewHBox(b.statusBar)
	w.SetContent(container.NewBorder(toolbar, bottom, nil, nil, container.NewScroll(b.Widget)))
	return b
}

// Load sizes the surface for the current window width.
func (b *Board) Load() {
	b.Editor.Resize(float64(b.Window.Canvas().Size().Width))
}

// SetStatus updates the status bar from any goroutine.
func (b *Board) SetStatus(text string) {
	fyne.Do(func() { b.statusBar.SetText(text) })
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg state.Config) {
	a := app.New()
	w := a.NewWindow("CircleBoard")
	w.Resize(fyne.NewSize(1024, 820))

	board := NewBoard(w, cfg)
	a.Lifecycle().SetOnStarted(board.Load)

	w.ShowAndRun()
}
