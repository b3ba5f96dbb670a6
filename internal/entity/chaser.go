package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"chaser/internal/motion"
	"chaser/internal/session"
)

const (
	pulseFrom     = 1.15
	pulseDuration = 0.35 // seconds
)

// Pulse is the little pounce the sprite does when it catches the pointer.
type Pulse struct {
	tween *gween.Tween
	scale float64
}

func (p *Pulse) Start() {
	p.tween = gween.New(pulseFrom, 1, pulseDuration, ease.OutElastic)
	p.scale = pulseFrom
}

func (p *Pulse) Update(dt float32) {
	if p.tween == nil {
		return
	}
	v, done := p.tween.Update(dt)
	p.scale = float64(v)
	if done {
		p.tween = nil
	}
}

func (p *Pulse) Active() bool { return p.tween != nil }

// Scale is the current draw scale; 1 when idle.
func (p *Pulse) Scale() float64 {
	if p.tween == nil {
		return 1
	}
	return p.scale
}

// Chaser is the sprite that follows the pointer. X, Y is its top-left corner.
type Chaser struct {
	X, Y float64

	img     *ebiten.Image
	pulse   Pulse
	arrived bool
}

func NewChaser(img *ebiten.Image) *Chaser {
	return &Chaser{img: img}
}

func (c *Chaser) Size() motion.Size {
	b := c.img.Bounds()
	return motion.Size{W: float64(b.Dx()), H: float64(b.Dy())}
}

// Update takes the session's frame and advances the arrival pulse by dt seconds.
func (c *Chaser) Update(f session.Frame, dt float32) {
	c.X, c.Y = f.Position.X, f.Position.Y
	if f.Arrived && !c.arrived {
		c.pulse.Start()
	}
	c.arrived = f.Arrived
	c.pulse.Update(dt)
}

func (c *Chaser) Pulsing() bool { return c.pulse.Active() }

func (c *Chaser) Draw(screen *ebiten.Image) {
	size := c.Size()
	s := c.pulse.Scale()

	// Scale about the sprite center so the pulse does not shift it.
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size.W/2, -size.H/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(c.X+size.W/2, c.Y+size.H/2)
	op.Filter = ebiten.FilterLinear

	screen.DrawImage(c.img, op)
}
