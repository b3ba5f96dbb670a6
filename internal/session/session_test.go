package session

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"chaser/internal/motion"
)

func newTestSession(t *testing.T, bounds motion.Size) (*Session, *observer.ObservedLogs) {
	t.Helper()
	ctrl, err := motion.NewController(motion.Params{
		Easing:         0.5,
		MaxSpeed:       1000,
		ArrivalEpsilon: 0.5,
		Sprite:         motion.Size{W: 20, H: 20},
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	core, recorded := observer.New(zapcore.DebugLevel)
	return New(ctrl, bounds, 2, zap.New(core)), recorded
}

func TestNewCentersSprite(t *testing.T) {
	s, _ := newTestSession(t, motion.Size{W: 200, H: 100})

	if got := s.Position(); got != (motion.Vec2{X: 90, Y: 40}) {
		t.Errorf("Position = %+v, want {90 40}", got)
	}
	if got := s.Pointer(); got != (motion.Vec2{X: 100, Y: 50}) {
		t.Errorf("Pointer = %+v, want {100 50}", got)
	}
}

func TestTickArrivesAtCenteredPointer(t *testing.T) {
	s, logs := newTestSession(t, motion.Size{W: 200, H: 200})

	f := s.Tick()
	if !f.Arrived {
		t.Fatal("expected arrival on first tick")
	}
	if !f.CursorHidden {
		t.Error("expected cursor hidden on arrival")
	}
	if n := logs.FilterMessage("arrived at pointer").Len(); n != 1 {
		t.Errorf("arrival logged %d times, want 1", n)
	}

	// Staying put must not log the transition again.
	s.Tick()
	if n := logs.FilterMessage("arrived at pointer").Len(); n != 1 {
		t.Errorf("arrival logged %d times after second tick, want 1", n)
	}
}

func TestTickChasesPointerCenter(t *testing.T) {
	s, logs := newTestSession(t, motion.Size{W: 200, H: 200})
	s.Tick()

	s.Apply(Event{Kind: PointerMoved, X: 170, Y: 100})
	f := s.Tick()

	// target top-left is (160, 90); half the distance from (90, 90).
	if f.Position != (motion.Vec2{X: 125, Y: 90}) {
		t.Errorf("Position = %+v, want {125 90}", f.Position)
	}
	if f.Arrived {
		t.Error("unexpected arrival")
	}
	if f.CursorHidden {
		t.Error("cursor hidden while pointer is away from sprite")
	}
	if logs.FilterMessage("chasing pointer").Len() != 1 {
		t.Error("expected departure to be logged")
	}
}

func TestCursorHiddenOverSprite(t *testing.T) {
	s, _ := newTestSession(t, motion.Size{W: 200, H: 200})
	s.Tick()

	s.Apply(Event{Kind: PointerMoved, X: 108, Y: 100})
	f := s.Tick()
	if f.Arrived {
		t.Fatal("unexpected arrival")
	}
	if !f.CursorHidden {
		t.Errorf("expected cursor hidden with pointer over sprite at %+v", f.Position)
	}
}

func TestTickArrivesAtWallNearEdgePointer(t *testing.T) {
	s, logs := newTestSession(t, motion.Size{W: 200, H: 200})
	s.Tick()

	// Centering the sprite on (3, 100) would need x = -7.
	s.Apply(Event{Kind: PointerMoved, X: 3, Y: 100})
	var f Frame
	for i := 0; i < 200 && !f.Arrived; i++ {
		f = s.Tick()
	}
	if !f.Arrived {
		t.Fatalf("never arrived, parked at %+v", f.Position)
	}
	if f.Position.X >= 0.5 || f.Position.Y != 90 {
		t.Errorf("Position = %+v, want against the left wall near {0 90}", f.Position)
	}
	if !f.CursorHidden {
		t.Error("expected cursor hidden on arrival")
	}
	if n := logs.FilterMessage("arrived at pointer").Len(); n != 2 {
		t.Errorf("arrival logged %d times, want 2", n)
	}
}

func TestCursorShownOutsideWindow(t *testing.T) {
	s, _ := newTestSession(t, motion.Size{W: 200, H: 200})

	s.Apply(Event{Kind: PointerMoved, X: -5, Y: 100})
	for i := 0; i < 50; i++ {
		if f := s.Tick(); f.CursorHidden {
			t.Fatalf("tick %d: cursor hidden with pointer outside window", i)
		}
	}
}

func TestResizeReclamps(t *testing.T) {
	s, logs := newTestSession(t, motion.Size{W: 200, H: 200})

	s.Apply(Event{Kind: Resized, X: 50, Y: 50})
	if got := s.Position(); got != (motion.Vec2{X: 30, Y: 30}) {
		t.Errorf("Position = %+v, want {30 30}", got)
	}
	if got := s.Bounds(); got != (motion.Size{W: 50, H: 50}) {
		t.Errorf("Bounds = %+v, want {50 50}", got)
	}

	entries := logs.FilterMessage("window resized").All()
	if len(entries) != 1 {
		t.Fatalf("resize logged %d times, want 1", len(entries))
	}
	if !entries[0].ContextMap()["reclamped"].(bool) {
		t.Error("expected reclamped=true")
	}
}

func TestResizeBelowSpriteSize(t *testing.T) {
	s, _ := newTestSession(t, motion.Size{W: 200, H: 200})

	s.Apply(Event{Kind: Resized, X: 10, Y: 10})
	s.Apply(Event{Kind: PointerMoved, X: 5, Y: 5})
	if f := s.Tick(); f.Position != (motion.Vec2{}) {
		t.Errorf("Position = %+v, want origin", f.Position)
	}
}

func TestQuitStopsSession(t *testing.T) {
	s, _ := newTestSession(t, motion.Size{W: 200, H: 200})

	s.Apply(Event{Kind: Quit})
	if !s.Done() {
		t.Fatal("expected session done after quit")
	}

	before := s.Position()
	s.Apply(Event{Kind: PointerMoved, X: 0, Y: 0})
	s.Tick()
	if s.Position() != before {
		t.Errorf("sprite moved after quit: %+v -> %+v", before, s.Position())
	}
	if s.Pointer() == (motion.Vec2{}) {
		t.Error("pointer updated after quit")
	}
}

func TestEventKindString(t *testing.T) {
	for k, want := range map[EventKind]string{
		PointerMoved:  "pointer-moved",
		Resized:       "resized",
		Quit:          "quit",
		EventKind(99): "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(k), got, want)
		}
	}
}
