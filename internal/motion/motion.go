// Package motion computes where the chaser sprite moves on each tick.
package motion

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidParams = errors.New("invalid motion params")

// Vec2 is a point or displacement in window coordinates.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Size is a width/height pair, used for both window bounds and sprite dimensions.
type Size struct {
	W, H float64
}

type Params struct {
	Easing         float64 // fraction of the remaining distance closed per tick, (0, 1]
	MaxSpeed       float64 // pixels per tick
	ArrivalEpsilon float64 // distance under which the sprite counts as arrived
	Sprite         Size
}

// Controller advances a sprite position toward a target one tick at a time.
type Controller struct {
	p Params
}

func NewController(p Params) (*Controller, error) {
	switch {
	case !(p.Easing > 0 && p.Easing <= 1):
		return nil, fmt.Errorf("%w: easing %v not in (0, 1]", ErrInvalidParams, p.Easing)
	case !(p.MaxSpeed > 0):
		return nil, fmt.Errorf("%w: max speed %v must be positive", ErrInvalidParams, p.MaxSpeed)
	case !(p.ArrivalEpsilon >= 0):
		return nil, fmt.Errorf("%w: arrival epsilon %v must not be negative", ErrInvalidParams, p.ArrivalEpsilon)
	case p.Sprite.W < 0 || p.Sprite.H < 0:
		return nil, fmt.Errorf("%w: sprite size %vx%v", ErrInvalidParams, p.Sprite.W, p.Sprite.H)
	}
	return &Controller{p: p}, nil
}

func (c *Controller) Params() Params { return c.p }

// Advance returns the next top-left position of the sprite and whether it
// has arrived at target. An arrived sprite does not move, so repeated calls
// with a fixed target return the same position. A target the sprite cannot
// reach is pulled into bounds first, so the sprite arrives at the wall.
func (c *Controller) Advance(current, target Vec2, bounds Size) (Vec2, bool) {
	target = Clamp(target, bounds, c.p.Sprite)
	delta := target.Sub(current)
	if delta.Len() < c.p.ArrivalEpsilon {
		return Clamp(current, bounds, c.p.Sprite), true
	}

	step := delta.Mul(c.p.Easing)
	if n := step.Len(); n > c.p.MaxSpeed {
		step = step.Mul(c.p.MaxSpeed / n)
	}

	return Clamp(current.Add(step), bounds, c.p.Sprite), false
}

// Clamp keeps a sprite of the given size inside bounds. When bounds are
// smaller than the sprite the legal range collapses to 0.
func Clamp(p Vec2, bounds, sprite Size) Vec2 {
	return Vec2{
		X: clamp(p.X, 0, math.Max(0, bounds.W-sprite.W)),
		Y: clamp(p.Y, 0, math.Max(0, bounds.H-sprite.H)),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
