package state

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"time"
)

// Presenter receives every visible side effect of the Editor. Methods are
// called with the Editor lock held and must not call back into the Editor.
type Presenter interface {
	PaintDisk(c Circle)
	ClearSurface()
	ResizeSurface(width, height int)
	ShowNotification(n Notification)
	HideNotification()
	ShowConfirmPrompt(at Point)
	HidePrompt()
}

type stopper interface{ Stop() bool }

func afterFunc(d time.Duration, f func()) stopper { return time.AfterFunc(d, f) }

// Editor owns the shape list and the pointer state machine. All transitions
// are serialized through mu.
type Editor struct {
	mu        sync.Mutex
	cfg       Config
	presenter Presenter
	circles   []Circle
	state     Interaction
	origin    Point
	size      Size
	rng       *rand.Rand

	timer    stopper
	timerGen uint64
	schedule func(time.Duration, func()) stopper

	// OnChange is called after the shape list is modified, with a copy.
	OnChange func(circles []Circle)
}

func NewEditor(cfg Config, p Presenter) *Editor {
	return &Editor{
		cfg:       cfg,
		presenter: p,
		circles:   make([]Circle, 0),
		schedule:  afterFunc,
	}
}

// SetRand fixes the colour source; nil restores the global generator.
func (e *Editor) SetRand(r *rand.Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rng = r
}

// SetOrigin records the top-left of the displayed canvas in screen units.
func (e *Editor) SetOrigin(p Point) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.origin = p
}

func (e *Editor) Circles() []Circle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshot()
}

func (e *Editor) State() Interaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Editor) Size() Size {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.size
}

func (e *Editor) snapshot() []Circle {
	out := make([]Circle, len(e.circles))
	copy(out, e.circles)
	return out
}

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.snapshot())
	}
}

// Dispatch routes a discrete input event to its handler.
func (e *Editor) Dispatch(ev Event) error {
	switch ev.Kind {
	case EventDown:
		e.PointerDown(Point{X: ev.X, Y: ev.Y})
	case EventUp:
		e.PointerUp(Point{X: ev.X, Y: ev.Y})
	case EventConfirm:
		e.Confirm()
	case EventCancel:
		e.Cancel()
	case EventReset:
		e.Reset()
	case EventResize:
		e.Resize(ev.Width)
	case EventDismiss:
		e.Dismiss()
	default:
		return fmt.Errorf("unknown event type %q", ev.Kind)
	}
	return nil
}

// PointerDown starts an interaction at a screen position: a press inside a
// circle asks for deletion, anywhere else starts a drag.
func (e *Editor) PointerDown(screen Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancelTimer()
	p := MapPointer(e.origin, screen)

	if idx, hit := FindHit(p, e.circles); hit {
		e.state = Interaction{Mode: PendingDelete, Target: idx}
		e.notify(HitNotification)
		e.presenter.ShowConfirmPrompt(screen)
		return
	}

	e.state = Interaction{Mode: Dragging, Start: p}
	e.notify(MissNotification)
	e.presenter.HidePrompt()
}

// PointerUp completes a drag. Drags whose radius does not exceed the
// threshold create nothing.
func (e *Editor) PointerUp(screen Point) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mode != Dragging {
		return
	}
	start := e.state.Start
	e.state = Interaction{Mode: Idle}

	center, radius := CircleFromDrag(start, MapPointer(e.origin, screen))
	if radius <= e.cfg.MinRadius {
		return
	}

	c := NewCircle(center, radius, RandomColor(e.rng))
	e.circles = append(e.circles, c)
	e.presenter.PaintDisk(c)
	log.Printf("[EDITOR] Circle %s added at (%.1f, %.1f) r=%.1f %s", c.ID, c.X, c.Y, c.Radius, c.Color)
	e.changed()
}

// Confirm deletes the circle awaiting confirmation and repaints the rest.
func (e *Editor) Confirm() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mode != PendingDelete {
		return
	}
	idx := e.state.Target
	e.state = Interaction{Mode: Idle}
	e.presenter.HidePrompt()

	if idx < 0 || idx >= len(e.circles) {
		log.Printf("[EDITOR] Ignoring delete of stale index %d (%d circles)", idx, len(e.circles))
		return
	}
	removed := e.circles[idx]
	e.circles = append(e.circles[:idx], e.circles[idx+1:]...)
	e.redraw()
	log.Printf("[EDITOR] Circle %s deleted, %d remaining", removed.ID, len(e.circles))
	e.changed()
}

// Cancel abandons a pending delete.
func (e *Editor) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Mode != PendingDelete {
		return
	}
	e.state = Interaction{Mode: Idle}
	e.presenter.HidePrompt()
}

// Reset clears the surface. The shape list survives unless
// Config.ResetClearsShapes is set, so hidden circles can still be hit.
func (e *Editor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.presenter.ClearSurface()
	if !e.cfg.ResetClearsShapes {
		return
	}
	if e.state.Mode == PendingDelete {
		e.presenter.HidePrompt()
	}
	e.state = Interaction{Mode: Idle}
	e.circles = e.circles[:0]
	log.Println("[EDITOR] Shapes cleared by reset")
	e.changed()
}

// Resize sizes the backing raster for a viewport width. Resizing wipes the
// painted pixels; they are only restored when Config.RedrawOnResize is set.
func (e *Editor) Resize(viewportWidth float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.size = SizeFor(e.cfg, viewportWidth)
	e.presenter.ResizeSurface(e.size.BackingWidth, e.size.BackingHeight)
	if e.cfg.RedrawOnResize {
		e.redraw()
	}
}

// RedrawAll clears the surface and repaints every circle in list order.
func (e *Editor) RedrawAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.redraw()
}

// Dismiss hides the notification and drops any pending dismiss timer.
func (e *Editor) Dismiss() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimer()
	e.presenter.HideNotification()
}

func (e *Editor) redraw() {
	e.presenter.ClearSurface()
	for _, c := range e.circles {
		e.presenter.PaintDisk(c)
	}
}

func (e *Editor) notify(n Notification) {
	e.presenter.ShowNotification(n)
	if e.cfg.NotifyDismiss <= 0 {
		return
	}
	gen := e.timerGen
	e.timer = e.schedule(e.cfg.NotifyDismiss, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		// a newer interaction has superseded this timer
		if gen != e.timerGen {
			return
		}
		e.timer = nil
		e.presenter.HideNotification()
	})
}

func (e *Editor) cancelTimer() {
	e.timerGen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
