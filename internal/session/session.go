// Package session holds the state of one chase: where the sprite is, where
// the pointer is, and how large the window is. Input is fed in as Events and
// the sprite is moved once per Tick.
package session

import (
	"go.uber.org/zap"

	"chaser/internal/motion"
)

type EventKind int

const (
	PointerMoved EventKind = iota // X, Y: pointer in window coordinates
	Resized                       // X, Y: new window width and height
	Quit
)

func (k EventKind) String() string {
	switch k {
	case PointerMoved:
		return "pointer-moved"
	case Resized:
		return "resized"
	case Quit:
		return "quit"
	}
	return "unknown"
}

type Event struct {
	Kind EventKind
	X, Y float64
}

// Frame is what the renderer needs after a tick.
type Frame struct {
	Position     motion.Vec2 // sprite top-left
	Arrived      bool
	CursorHidden bool
}

type Session struct {
	ctrl    *motion.Controller
	sprite  motion.Size
	padding float64
	log     *zap.Logger

	pos     motion.Vec2
	pointer motion.Vec2
	bounds  motion.Size

	arrived      bool
	cursorHidden bool
	done         bool
}

// New starts a session with the sprite centered in bounds and the pointer
// assumed to be at the window center.
func New(ctrl *motion.Controller, bounds motion.Size, padding float64, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	sprite := ctrl.Params().Sprite
	center := motion.Vec2{X: bounds.W / 2, Y: bounds.H / 2}
	return &Session{
		ctrl:    ctrl,
		sprite:  sprite,
		padding: padding,
		log:     log,
		pos:     motion.Clamp(center.Sub(motion.Vec2{X: sprite.W / 2, Y: sprite.H / 2}), bounds, sprite),
		pointer: center,
		bounds:  bounds,
	}
}

func (s *Session) Position() motion.Vec2 { return s.pos }
func (s *Session) Pointer() motion.Vec2 { return s.pointer }
func (s *Session) Bounds() motion.Size { return s.bounds }
func (s *Session) Done() bool { return s.done }

// Apply records an input event. Events after Quit are ignored.
func (s *Session) Apply(ev Event) {
	if s.done {
		return
	}
	switch ev.Kind {
	case PointerMoved:
		s.pointer = motion.Vec2{X: ev.X, Y: ev.Y}
	case Resized:
		s.bounds = motion.Size{W: ev.X, H: ev.Y}
		prev := s.pos
		s.pos = motion.Clamp(s.pos, s.bounds, s.sprite)
		s.log.Debug("window resized",
			zap.Float64("width", ev.X),
			zap.Float64("height", ev.Y),
			zap.Bool("reclamped", prev != s.pos))
	case Quit:
		s.done = true
		s.log.Info("quit requested")
	default:
		s.log.Warn("ignoring unknown event", zap.Int("kind", int(ev.Kind)))
	}
}

// Tick moves the sprite one step so that its center chases the pointer.
func (s *Session) Tick() Frame {
	if s.done {
		return s.frame()
	}

	target := s.pointer.Sub(motion.Vec2{X: s.sprite.W / 2, Y: s.sprite.H / 2})
	next, arrived := s.ctrl.Advance(s.pos, target, s.bounds)
	s.pos = next

	if arrived != s.arrived {
		if arrived {
			s.log.Debug("arrived at pointer", zap.Float64("x", next.X), zap.Float64("y", next.Y))
		} else {
			s.log.Debug("chasing pointer", zap.Float64("x", s.pointer.X), zap.Float64("y", s.pointer.Y))
		}
		s.arrived = arrived
	}

	s.cursorHidden = s.pointerInWindow() && (arrived || s.pointerOverSprite())
	return s.frame()
}

func (s *Session) frame() Frame {
	return Frame{Position: s.pos, Arrived: s.arrived, CursorHidden: s.cursorHidden}
}

func (s *Session) pointerOverSprite() bool {
	x0, y0 := s.pos.X-s.padding, s.pos.Y-s.padding
	x1, y1 := s.pos.X+s.sprite.W+s.padding, s.pos.Y+s.sprite.H+s.padding
	return s.pointer.X >= x0 && s.pointer.X <= x1 && s.pointer.Y >= y0 && s.pointer.Y <= y1
}

func (s *Session) pointerInWindow() bool {
	return s.pointer.X >= 0 && s.pointer.Y >= 0 && s.pointer.X < s.bounds.W && s.pointer.Y < s.bounds.H
}
