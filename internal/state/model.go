package state

import (
	"github.com/google/uuid"
)

type Point struct{ X, Y float64 }

// Circle is a committed shape. It is never modified after creation, only removed.
type Circle struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"` // "#rrggbb"
}

func NewCircle(center Point, radius float64, color string) Circle {
	return Circle{
		ID:     uuid.NewString(),
		X:      center.X,
		Y:      center.Y,
		Radius: radius,
		Color:  color,
	}
}

func (c Circle) Center() Point { return Point{X: c.X, Y: c.Y} }

type Mode int

const (
	Idle Mode = iota
	Dragging
	PendingDelete
)

func (m Mode) String() string {
	switch m {
	case Dragging:
		return "dragging"
	case PendingDelete:
		return "pending-delete"
	}
	return "idle"
}

// Interaction is the pointer state. Start is only meaningful while Dragging,
// Target only while PendingDelete.
type Interaction struct {
	Mode   Mode
	Start  Point
	Target int
}

type EventKind string

const (
	EventDown    EventKind = "down"
	EventUp      EventKind = "up"
	EventConfirm EventKind = "confirm"
	EventCancel  EventKind = "cancel"
	EventReset   EventKind = "reset"
	EventResize  EventKind = "resize"
	EventDismiss EventKind = "dismiss"
)

// Event is one discrete input. X/Y are screen coordinates for down/up,
// Width is the viewport width for resize.
type Event struct {
	Kind  EventKind `json:"type"`
	X     float64   `json:"x,omitempty"`
	Y     float64   `json:"y,omitempty"`
	Width float64   `json:"width,omitempty"`
}

// Notification is the transient Hit/Miss indicator.
type Notification struct {
	Text  string
	Color string
}

var (
	HitNotification  = Notification{Text: "Hit", Color: "red"}
	MissNotification = Notification{Text: "Miss", Color: "green"}
)
