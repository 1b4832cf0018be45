package ui

import (
	"image/color"

	"CircleBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

var notifyColors = map[string]color.Color{
	"red":   color.NRGBA{R: 220, G: 30, B: 30, A: 255},
	"green": color.NRGBA{R: 20, G: 160, B: 60, A: 255},
}

// notifyBadge is the Hit/Miss indicator. Tapping it hides it.
type notifyBadge struct {
	widget.BaseWidget
	text     *canvas.Text
	OnTapped func()
}

func newNotifyBadge(tapped func()) *notifyBadge {
	n := &notifyBadge{OnTapped: tapped}
	n.text = canvas.NewText("", color.Black)
	n.text.TextStyle = fyne.TextStyle{Bold: true}
	n.text.TextSize = 18
	n.ExtendBaseWidget(n)
	n.Hide()
	return n
}

func (n *notifyBadge) CreateRenderer() fyne.WidgetRenderer {
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1
	border.CornerRadius = 4
	return widget.NewSimpleRenderer(container.NewStack(border, container.NewPadded(n.text)))
}

func (n *notifyBadge) Tapped(_ *fyne.PointEvent) {
	if n.OnTapped != nil {
		n.OnTapped()
	}
}

func (n *notifyBadge) Set(msg state.Notification) {
	n.text.Text = msg.Text
	if c, ok := notifyColors[msg.Color]; ok {
		n.text.Color = c
	} else {
		n.text.Color = color.Black
	}
	n.text.Refresh()
	n.Show()
}
