package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// confirmPrompt is the floating "delete?" box shown where a circle was hit.
type confirmPrompt struct {
	popup *widget.PopUp
}

func newConfirmPrompt(c fyne.Canvas, onYes, onNo func()) *confirmPrompt {
	yes := widget.NewButton("Yes", onYes)
	yes.Importance = widget.DangerImportance
	no := widget.NewButton("No", onNo)
	content := container.NewVBox(
		widget.NewLabel("Delete this circle?"),
		container.NewGridWithColumns(2, yes, no),
	)
	return &confirmPrompt{popup: widget.NewPopUp(content, c)}
}

func (p *confirmPrompt) ShowAt(pos fyne.Position) {
	p.popup.ShowAtPosition(pos)
}

func (p *confirmPrompt) Hide() {
	p.popup.Hide()
}

func (p *confirmPrompt) Visible() bool {
	return p.popup.Visible()
}
