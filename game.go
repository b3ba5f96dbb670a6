package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"chaser/internal/assets"
	"chaser/internal/config"
	"chaser/internal/entity"
	"chaser/internal/gamemode"
	"chaser/internal/motion"
	"chaser/internal/session"
)

// Define Modes
type GameMode int

const (
	ModeChoose GameMode = iota
	ModeChase
)

// Game holds global state
type Game struct {
	Mode GameMode
	Tick int

	cfg config.Config
	log *zap.Logger
	bg  color.RGBA

	chooser *gamemode.Chooser
	chaser  *entity.Chaser
	sess    *session.Session

	// Latest sizes seen by Layout
	width, height int
	cursor        cursorTracker
	cursorHidden  bool

	fpsText string
}

// fpsRefreshTicks is how often the FPS overlay text is rebuilt.
const fpsRefreshTicks = 30

// cursorTracker reports pointer moves. The first observation only seeds it,
// so the sprite waits for a real move instead of chasing wherever the
// platform parks the cursor before it enters the window.
type cursorTracker struct {
	x, y   int
	seeded bool
}

func (c *cursorTracker) Observe(x, y int) bool {
	if !c.seeded {
		c.x, c.y, c.seeded = x, y, true
		return false
	}
	if x == c.x && y == c.y {
		return false
	}
	c.x, c.y = x, y
	return true
}

// NewGame starts in the chooser unless a sprite was already picked.
func NewGame(cfg config.Config, log *zap.Logger, sprite *ebiten.Image) (*Game, error) {
	bg, err := config.ParseHexColor(cfg.Window.Background)
	if err != nil {
		return nil, err
	}
	g := &Game{
		Mode:   ModeChoose,
		cfg:    cfg,
		log:    log,
		bg:     bg,
		width:  cfg.Window.Width,
		height: cfg.Window.Height,
	}
	if sprite != nil {
		if err := g.startChase(sprite); err != nil {
			return nil, err
		}
		return g, nil
	}
	g.chooser = gamemode.NewChooser(assets.Choices())
	return g, nil
}

func (g *Game) startChase(sprite *ebiten.Image) error {
	g.chaser = entity.NewChaser(sprite)

	m := g.cfg.Motion
	ctrl, err := motion.NewController(motion.Params{
		Easing:         m.Easing,
		MaxSpeed:       m.MaxSpeed,
		ArrivalEpsilon: m.ArrivalEpsilon,
		Sprite:         g.chaser.Size(),
	})
	if err != nil {
		return fmt.Errorf("start chase: %w", err)
	}

	bounds := motion.Size{W: float64(g.width), H: float64(g.height)}
	g.sess = session.New(ctrl, bounds, m.PointerPadding, g.log)
	g.cursor = cursorTracker{}

	pos := g.sess.Position()
	g.chaser.X, g.chaser.Y = pos.X, pos.Y
	g.Mode = ModeChase

	g.log.Info("chase started",
		zap.Float64("sprite_w", g.chaser.Size().W),
		zap.Float64("sprite_h", g.chaser.Size().H),
		zap.Float64("easing", m.Easing),
		zap.Float64("max_speed", m.MaxSpeed))
	return nil
}

// Update: Logic (fixed TPS)
func (g *Game) Update() error {
	g.Tick++
	if g.fpsDue() {
		g.fpsText = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
	}

	switch g.Mode {
	case ModeChoose:
		return g.updateChoose()
	case ModeChase:
		return g.updateChase()
	}
	return nil
}

// fpsDue reports whether the overlay text should be rebuilt this tick.
func (g *Game) fpsDue() bool {
	return g.cfg.Window.ShowFPS && (g.fpsText == "" || g.Tick%fpsRefreshTicks == 0)
}

func (g *Game) updateChoose() error {
	g.chooser.Update()

	switch g.chooser.State {
	case gamemode.ChooserCancelled:
		g.log.Info("sprite choice cancelled")
		return ebiten.Termination
	case gamemode.ChooserConfirmed:
		choice, _ := g.chooser.Result()
		g.log.Info("sprite chosen", zap.String("sprite", choice.Name))
		return g.startChase(assets.Scale(choice.Image(), g.cfg.Sprite.Scale))
	}
	return nil
}

func (g *Game) updateChase() error {
	for _, ev := range g.pollEvents() {
		g.sess.Apply(ev)
	}
	if g.sess.Done() {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
		return ebiten.Termination
	}

	f := g.sess.Tick()
	g.chaser.Update(f, 1/float32(ebiten.TPS()))

	if f.CursorHidden != g.cursorHidden {
		g.cursorHidden = f.CursorHidden
		if f.CursorHidden {
			ebiten.SetCursorMode(ebiten.CursorModeHidden)
		} else {
			ebiten.SetCursorMode(ebiten.CursorModeVisible)
		}
	}
	return nil
}

// pollEvents turns this tick's Ebiten input into session events.
func (g *Game) pollEvents() []session.Event {
	var events []session.Event

	b := g.sess.Bounds()
	if float64(g.width) != b.W || float64(g.height) != b.H {
		events = append(events, session.Event{Kind: session.Resized, X: float64(g.width), Y: float64(g.height)})
	}

	if x, y := ebiten.CursorPosition(); g.cursor.Observe(x, y) {
		events = append(events, session.Event{Kind: session.PointerMoved, X: float64(x), Y: float64(y)})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		events = append(events, session.Event{Kind: session.Quit})
	}
	return events
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)

	switch g.Mode {
	case ModeChoose:
		g.chooser.Draw(screen)
	case ModeChase:
		g.chaser.Draw(screen)
	}

	if g.cfg.Window.ShowFPS {
		ebitenutil.DebugPrintAt(screen, g.fpsText, 4, g.height-36)
	}
}

// Layout: one logical pixel per window pixel, so bounds follow resizes
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
