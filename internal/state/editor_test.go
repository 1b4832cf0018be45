package state

import (
	"math/rand/v2"
	"reflect"
	"testing"
	"time"
)

// recorder is a Presenter that logs every call.
type recorder struct {
	calls        []string
	painted      []Circle
	notification *Notification
	prompt       *Point
	width        int
	height       int
}

func (r *recorder) PaintDisk(c Circle) {
	r.calls = append(r.calls, "paint")
	r.painted = append(r.painted, c)
}

func (r *recorder) ClearSurface() {
	r.calls = append(r.calls, "clear")
	r.painted = nil
}

func (r *recorder) ResizeSurface(w, h int) {
	r.calls = append(r.calls, "resize")
	r.width, r.height = w, h
	r.painted = nil
}

func (r *recorder) ShowNotification(n Notification) {
	r.calls = append(r.calls, "notify:"+n.Text)
	r.notification = &n
}

func (r *recorder) HideNotification() {
	r.calls = append(r.calls, "hide-notify")
	r.notification = nil
}

func (r *recorder) ShowConfirmPrompt(at Point) {
	r.calls = append(r.calls, "prompt")
	r.prompt = &at
}

func (r *recorder) HidePrompt() {
	r.calls = append(r.calls, "hide-prompt")
	r.prompt = nil
}

func newTestEditor(cfg Config) (*Editor, *recorder) {
	rec := &recorder{}
	e := NewEditor(cfg, rec)
	e.SetRand(rand.New(rand.NewPCG(7, 7)))
	return e, rec
}

// drag performs a down/up pair in canvas units (origin at zero, so screen
// coordinates are half the canvas ones).
func drag(e *Editor, x1, y1, x2, y2 float64) {
	e.PointerDown(Point{x1 / DeviceScale, y1 / DeviceScale})
	e.PointerUp(Point{x2 / DeviceScale, y2 / DeviceScale})
}

func TestEditor_RadiusThreshold(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())

	drag(e, 0, 0, 0, 50)
	if n := len(e.Circles()); n != 0 {
		t.Fatalf("radius 50 created %d circles", n)
	}
	if len(rec.painted) != 0 {
		t.Errorf("radius 50 painted %d disks", len(rec.painted))
	}

	drag(e, 0, 0, 0, 51)
	circles := e.Circles()
	if len(circles) != 1 {
		t.Fatalf("radius 51 created %d circles, want 1", len(circles))
	}
	c := circles[0]
	if c.X != 0 || c.Y != 25.5 || c.Radius != 51 {
		t.Errorf("circle = %+v, want centre (0,25.5) r=51", c)
	}
	if !hexPattern.MatchString(c.Color) {
		t.Errorf("colour %q", c.Color)
	}
	if c.ID == "" {
		t.Error("circle has no ID")
	}
	if len(rec.painted) != 1 || rec.painted[0] != c {
		t.Errorf("painted = %+v, want the new circle", rec.painted)
	}
	if st := e.State(); st.Mode != Idle {
		t.Errorf("state after drag = %v, want idle", st.Mode)
	}
}

func TestEditor_MissShowsGreenAndHidesPrompt(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	e.PointerDown(Point{10, 10})

	if rec.notification == nil || *rec.notification != MissNotification {
		t.Errorf("notification = %v, want Miss/green", rec.notification)
	}
	want := []string{"notify:Miss", "hide-prompt"}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	st := e.State()
	if st.Mode != Dragging || st.Start != (Point{20, 20}) {
		t.Errorf("state = %+v, want dragging from {20 20}", st)
	}
}

func TestEditor_HitPromptsAtScreenPosition(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	drag(e, 0, 0, 200, 0) // centre (100,0) r=200
	before := e.Circles()
	e.SetOrigin(Point{5, 5})

	e.PointerDown(Point{55, 5})
	if rec.notification == nil || *rec.notification != HitNotification {
		t.Errorf("notification = %v, want Hit/red", rec.notification)
	}
	if rec.prompt == nil || *rec.prompt != (Point{55, 5}) {
		t.Errorf("prompt at %v, want {55 5}", rec.prompt)
	}
	st := e.State()
	if st.Mode != PendingDelete || st.Target != 0 {
		t.Errorf("state = %+v, want pending-delete of 0", st)
	}

	// pointer-up in pending-delete must not draw
	e.PointerUp(Point{500, 500})
	if got := e.Circles(); !reflect.DeepEqual(got, before) {
		t.Errorf("pointer-up during pending delete changed list: %v", got)
	}
	if e.State().Mode != PendingDelete {
		t.Error("pointer-up left pending-delete")
	}
}

func threeCircles(e *Editor) []Circle {
	drag(e, 0, 0, 0, 100)
	drag(e, 1000, 0, 1000, 100)
	drag(e, 2000, 0, 2000, 100)
	return e.Circles()
}

func TestEditor_ConfirmDeletesAndRedraws(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	orig := threeCircles(e)
	if len(orig) != 3 {
		t.Fatalf("setup created %d circles", len(orig))
	}

	var changed []Circle
	e.OnChange = func(c []Circle) { changed = c }

	e.PointerDown(Point{500, 25}) // canvas (1000,50), inside the middle circle
	if st := e.State(); st.Mode != PendingDelete || st.Target != 1 {
		t.Fatalf("state = %+v, want pending-delete of 1", st)
	}
	rec.calls = nil
	e.Confirm()

	want := []Circle{orig[0], orig[2]}
	if got := e.Circles(); !reflect.DeepEqual(got, want) {
		t.Errorf("circles = %v, want %v", got, want)
	}
	if !reflect.DeepEqual(rec.painted, want) {
		t.Errorf("redraw painted %v, want %v", rec.painted, want)
	}
	if wantCalls := []string{"hide-prompt", "clear", "paint", "paint"}; !reflect.DeepEqual(rec.calls, wantCalls) {
		t.Errorf("calls = %v, want %v", rec.calls, wantCalls)
	}
	if !reflect.DeepEqual(changed, want) {
		t.Errorf("OnChange got %v", changed)
	}
	if e.State().Mode != Idle {
		t.Errorf("state = %v, want idle", e.State().Mode)
	}
}

func TestEditor_CancelIsNoOp(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	orig := threeCircles(e)

	e.PointerDown(Point{0, 25})
	if e.State().Mode != PendingDelete {
		t.Fatal("expected pending delete")
	}
	rec.calls = nil
	e.Cancel()

	if got := e.Circles(); !reflect.DeepEqual(got, orig) {
		t.Errorf("cancel changed list: %v", got)
	}
	if st := e.State(); st.Mode != Idle {
		t.Errorf("state = %+v, want idle", st)
	}
	if want := []string{"hide-prompt"}; !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestEditor_ConfirmCancelOutsidePendingDelete(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	orig := threeCircles(e)
	rec.calls = nil

	e.Confirm()
	e.Cancel()
	if len(rec.calls) != 0 {
		t.Errorf("idle confirm/cancel produced %v", rec.calls)
	}
	if got := e.Circles(); !reflect.DeepEqual(got, orig) {
		t.Errorf("list changed: %v", got)
	}
}

func TestEditor_ConfirmStaleIndex(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())
	threeCircles(e)

	e.mu.Lock()
	e.state = Interaction{Mode: PendingDelete, Target: 7}
	e.mu.Unlock()

	e.Confirm()
	if n := len(e.Circles()); n != 3 {
		t.Errorf("stale confirm left %d circles, want 3", n)
	}
	if e.State().Mode != Idle {
		t.Error("stale confirm did not return to idle")
	}
}

func TestEditor_RedrawIdempotent(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	threeCircles(e)

	e.RedrawAll()
	once := append([]Circle(nil), rec.painted...)
	e.RedrawAll()
	if !reflect.DeepEqual(rec.painted, once) {
		t.Errorf("second redraw painted %v, want %v", rec.painted, once)
	}
}

func TestEditor_ResetKeepsShapes(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	orig := threeCircles(e)

	e.Reset()
	if len(rec.painted) != 0 {
		t.Errorf("surface not cleared: %v", rec.painted)
	}
	if got := e.Circles(); !reflect.DeepEqual(got, orig) {
		t.Errorf("reset changed list: %v", got)
	}

	// invisible circles are still hit
	e.PointerDown(Point{0, 25})
	if e.State().Mode != PendingDelete {
		t.Error("hidden circle was not hit after reset")
	}
}

func TestEditor_ResetClearsShapes(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ResetClearsShapes = true
	e, rec := newTestEditor(cfg)
	threeCircles(e)
	e.PointerDown(Point{0, 25})

	e.Reset()
	if n := len(e.Circles()); n != 0 {
		t.Errorf("reset left %d circles", n)
	}
	if rec.prompt != nil {
		t.Error("prompt still visible after reset")
	}
	if e.State().Mode != Idle {
		t.Error("reset did not return to idle")
	}
}

func TestEditor_Resize(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	e.Resize(1018)
	if rec.width != 2000 || rec.height != 1478 {
		t.Errorf("resize = %dx%d, want 2000x1478", rec.width, rec.height)
	}
	threeCircles(e)

	e.Resize(818)
	if len(rec.painted) != 0 {
		t.Errorf("resize repainted %d circles without RedrawOnResize", len(rec.painted))
	}
	if n := len(e.Circles()); n != 3 {
		t.Errorf("resize changed list to %d circles", n)
	}

	e.cfg.RedrawOnResize = true
	e.Resize(1018)
	if len(rec.painted) != 3 {
		t.Errorf("RedrawOnResize painted %d circles, want 3", len(rec.painted))
	}
}

func TestEditor_Dispatch(t *testing.T) {
	e, _ := newTestEditor(DefaultConfig())
	events := []Event{
		{Kind: EventResize, Width: 1018},
		{Kind: EventDown, X: 0, Y: 0},
		{Kind: EventUp, X: 0, Y: 100},
		{Kind: EventDown, X: 0, Y: 50},
		{Kind: EventConfirm},
	}
	for _, ev := range events {
		if err := e.Dispatch(ev); err != nil {
			t.Fatalf("Dispatch(%+v): %v", ev, err)
		}
	}
	if n := len(e.Circles()); n != 0 {
		t.Errorf("circles = %d, want 0", n)
	}
	if err := e.Dispatch(Event{Kind: "wiggle"}); err == nil {
		t.Error("unknown event accepted")
	}
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	f.stopped = true
	return true
}

func TestEditor_DismissTimer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NotifyDismiss = time.Second
	e, rec := newTestEditor(cfg)

	var timers []*fakeTimer
	e.schedule = func(d time.Duration, f func()) stopper {
		if d != time.Second {
			t.Errorf("scheduled after %v", d)
		}
		ft := &fakeTimer{fn: f}
		timers = append(timers, ft)
		return ft
	}

	e.PointerDown(Point{10, 10})
	e.PointerUp(Point{10, 10})
	e.PointerDown(Point{20, 20})
	if len(timers) != 2 {
		t.Fatalf("scheduled %d timers, want 2", len(timers))
	}
	if !timers[0].stopped {
		t.Error("new pointer-down did not cancel the previous timer")
	}

	// a timer that fires late must not hide the newer notification
	timers[0].fn()
	if rec.notification == nil {
		t.Fatal("stale timer hid the notification")
	}

	timers[1].fn()
	if rec.notification != nil {
		t.Error("current timer did not hide the notification")
	}
}

func TestEditor_NoTimerByDefault(t *testing.T) {
	e, rec := newTestEditor(DefaultConfig())
	e.schedule = func(time.Duration, func()) stopper {
		t.Error("timer scheduled with NotifyDismiss = 0")
		return &fakeTimer{}
	}
	e.PointerDown(Point{10, 10})
	e.Dismiss()
	if rec.notification != nil {
		t.Error("Dismiss left the notification visible")
	}
}
