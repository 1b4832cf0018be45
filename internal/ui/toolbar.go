package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

func NewToolbar(b *Board) fyne.CanvasObject {
	reset := widget.NewButtonWithIcon("Reset", theme.ContentClearIcon(), b.Editor.Reset)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentSaveIcon(), b.ExportPDF),
		widget.NewToolbarAction(theme.FileImageIcon(), b.ExportPNG),
	)

	return container.NewHBox(
		reset,
		widget.NewSeparator(),
		widget.NewLabel("Export:"),
		tb,
		layout.NewSpacer(),
		b.presenter.notify,
	)
}
